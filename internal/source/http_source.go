package source

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/BlakeDanielson/CrowdWork/internal/model"
)

// HTTPSource talks to a transcript API service over JSON. It is the
// default Source implementation; the orchestrator only sees the interface.
type HTTPSource struct {
	baseURL string
	client  *http.Client
}

// NewHTTPSource creates a source against the given base URL with a
// per-request timeout.
func NewHTTPSource(baseURL string, timeout time.Duration) *HTTPSource {
	return &HTTPSource{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

type resolveResponse struct {
	Channel Channel        `json:"channel"`
	Videos  []VideoListing `json:"videos"`
}

// ResolveChannel looks up a channel reference and returns its metadata and
// video listing. A 404 from upstream is a structural failure
// (ErrChannelNotFound), not a retryable transport error.
func (s *HTTPSource) ResolveChannel(ctx context.Context, ref ChannelRef) (*Channel, []VideoListing, error) {
	endpoint := fmt.Sprintf("%s/channels/resolve?kind=%s&ref=%s",
		s.baseURL, url.QueryEscape(ref.Kind), url.QueryEscape(ref.Value))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, nil, err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, nil, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return nil, nil, ErrChannelNotFound
	default:
		return nil, nil, fmt.Errorf("resolve channel %s: unexpected status %d", ref, resp.StatusCode)
	}

	var out resolveResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, nil, fmt.Errorf("resolve channel %s: decode: %w", ref, err)
	}
	return &out.Channel, out.Videos, nil
}

type transcriptResponse struct {
	Cues []model.Cue `json:"cues"`
}

type unavailableResponse struct {
	Reason string `json:"reason"`
}

// FetchTranscript returns the timed cues for a video. A 404 means the
// transcript does not exist (disabled captions, no track in language) and
// maps to an unavailable outcome; any other failure is a transport error
// the caller may retry.
func (s *HTTPSource) FetchTranscript(ctx context.Context, videoID string) (*FetchOutcome, error) {
	endpoint := fmt.Sprintf("%s/videos/%s/transcript", s.baseURL, url.PathEscape(videoID))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		var out transcriptResponse
		if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
			return nil, fmt.Errorf("fetch transcript %s: decode: %w", videoID, err)
		}
		return &FetchOutcome{Cues: out.Cues}, nil
	case http.StatusNotFound:
		var out unavailableResponse
		reason := "transcript not available"
		if err := json.NewDecoder(resp.Body).Decode(&out); err == nil && out.Reason != "" {
			reason = out.Reason
		}
		return &FetchOutcome{Unavailable: true, Reason: reason}, nil
	default:
		return nil, fmt.Errorf("fetch transcript %s: unexpected status %d", videoID, resp.StatusCode)
	}
}
