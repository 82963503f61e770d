// Package source defines the contracts for the external transcript source
// and candidate filter, plus the default HTTP-backed implementation.
package source

import (
	"context"
	"errors"

	"github.com/BlakeDanielson/CrowdWork/internal/model"
)

// ErrChannelNotFound marks a structural failure: the referenced channel
// does not resolve to anything. Tasks abort on it instead of skipping.
var ErrChannelNotFound = errors.New("channel not found")

// Channel is a resolved channel.
type Channel struct {
	ChannelID string `json:"channelId"`
	Title     string `json:"title"`
}

// VideoListing is the raw per-video metadata a channel resolves to, before
// candidate filtering. Duration is an ISO 8601 string (PT#H#M#S) as
// upstream APIs report it.
type VideoListing struct {
	VideoID     string `json:"videoId"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Duration    string `json:"duration"`
}

// FetchOutcome is the tagged result of a transcript fetch. Either Cues is
// populated, or Unavailable is set with a reason (no captions, disabled,
// wrong language). Unavailable is a skip, never a task failure; transport
// errors are returned separately and retried.
type FetchOutcome struct {
	Cues        []model.Cue
	Unavailable bool
	Reason      string
}

// Source is the external transcript source contract.
type Source interface {
	// ResolveChannel resolves a channel reference to its metadata and
	// video listing. Returns ErrChannelNotFound when the reference does
	// not resolve.
	ResolveChannel(ctx context.Context, ref ChannelRef) (*Channel, []VideoListing, error)

	// FetchTranscript returns the timed cues for one video, or an
	// unavailable outcome with a reason.
	FetchTranscript(ctx context.Context, videoID string) (*FetchOutcome, error)
}
