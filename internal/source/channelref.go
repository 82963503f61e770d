package source

import (
	"fmt"
	"regexp"
	"strings"
)

// Channel reference kinds. A bare UC… ID needs no upstream lookup; the
// others resolve through the transcript source.
const (
	RefChannelID = "id"
	RefUsername  = "user"
	RefHandle    = "handle"
	RefCustomURL = "custom"
)

// ChannelRef is a parsed channel reference.
type ChannelRef struct {
	Kind  string
	Value string
}

var (
	channelIDRe   = regexp.MustCompile(`^UC[a-zA-Z0-9_-]{22}$`)
	channelPathRe = regexp.MustCompile(`channel/([^/?&]+)`)
	userPathRe    = regexp.MustCompile(`user/([^/?&]+)`)
	customPathRe  = regexp.MustCompile(`c/([^/?&]+)`)
	handleRe      = regexp.MustCompile(`@([^/?&]+)`)
)

// ParseChannelRef extracts a channel reference from the supported forms:
// a bare UC… channel ID, a /channel/ URL, a /user/ URL, a /c/ custom URL,
// or an @handle (bare or inside a URL).
func ParseChannelRef(raw string) (ChannelRef, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ChannelRef{}, fmt.Errorf("channel reference is empty")
	}

	if m := channelPathRe.FindStringSubmatch(raw); m != nil {
		return ChannelRef{Kind: RefChannelID, Value: m[1]}, nil
	}
	if m := userPathRe.FindStringSubmatch(raw); m != nil {
		return ChannelRef{Kind: RefUsername, Value: m[1]}, nil
	}
	if m := handleRe.FindStringSubmatch(raw); m != nil {
		return ChannelRef{Kind: RefHandle, Value: m[1]}, nil
	}
	if channelIDRe.MatchString(raw) {
		return ChannelRef{Kind: RefChannelID, Value: raw}, nil
	}
	if m := customPathRe.FindStringSubmatch(raw); m != nil {
		return ChannelRef{Kind: RefCustomURL, Value: m[1]}, nil
	}

	return ChannelRef{}, fmt.Errorf("could not extract channel reference from %q", raw)
}

// String returns the reference in kind:value form, used for cache keys
// and logging.
func (r ChannelRef) String() string {
	return r.Kind + ":" + r.Value
}
