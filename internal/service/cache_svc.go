package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache TTLs. Transcripts of published videos never change, but a bounded
// TTL keeps the keyspace from growing without limit.
const (
	TranscriptCacheTTL = 30 * time.Minute
	ListingCacheTTL    = 15 * time.Minute
)

// CacheService is a Redis cache-aside layer in front of the external
// transcript source: fetched transcripts and resolved channel listings.
type CacheService struct {
	rdb *redis.Client
}

// NewCacheService creates a new CacheService. If redisURL is empty or the
// connection fails, it returns a CacheService with a nil client (cache
// operations become no-ops and every fetch goes upstream).
func NewCacheService(redisURL string) *CacheService {
	if redisURL == "" {
		log.Println("redis: no URL configured, caching disabled")
		return &CacheService{}
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Printf("redis: invalid URL %q, caching disabled: %v", redisURL, err)
		return &CacheService{}
	}

	rdb := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Printf("redis: connection failed, caching disabled: %v", err)
		return &CacheService{}
	}

	log.Println("redis: connected, caching enabled")
	return &CacheService{rdb: rdb}
}

// Client returns the underlying Redis client (for health checks). May be nil.
func (c *CacheService) Client() *redis.Client {
	return c.rdb
}

// GetTranscript retrieves cached transcript cues for a video. Returns nil
// if not cached or cache is disabled.
func (c *CacheService) GetTranscript(ctx context.Context, videoID string) ([]byte, error) {
	if c.rdb == nil {
		return nil, nil
	}
	data, err := c.rdb.Get(ctx, transcriptKey(videoID)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	return data, err
}

// SetTranscript stores transcript cues for a video.
func (c *CacheService) SetTranscript(ctx context.Context, videoID string, data interface{}) error {
	if c.rdb == nil {
		return nil
	}
	b, err := json.Marshal(data)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, transcriptKey(videoID), b, TranscriptCacheTTL).Err()
}

// GetListing retrieves a cached channel video listing. Returns nil if not
// cached.
func (c *CacheService) GetListing(ctx context.Context, ref string) ([]byte, error) {
	if c.rdb == nil {
		return nil, nil
	}
	data, err := c.rdb.Get(ctx, listingKey(ref)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	return data, err
}

// SetListing stores a resolved channel video listing.
func (c *CacheService) SetListing(ctx context.Context, ref string, data interface{}) error {
	if c.rdb == nil {
		return nil
	}
	b, err := json.Marshal(data)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, listingKey(ref), b, ListingCacheTTL).Err()
}

// Close shuts down the Redis connection.
func (c *CacheService) Close() error {
	if c.rdb == nil {
		return nil
	}
	return c.rdb.Close()
}

func transcriptKey(videoID string) string {
	return fmt.Sprintf("transcript:%s", videoID)
}

func listingKey(ref string) string {
	return fmt.Sprintf("listing:%s", ref)
}
