// Package cache keeps video metadata around so that repeated lookups of the
// same video do not hit the provider again.
package cache

import (
	"context"
	"fmt"
	"log/slog"

	"ewintr.nl/ytcatalog/model"
	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/sync/singleflight"
)

const DefaultSize = 1024

type FetchFunc func(ctx context.Context, ytID model.YoutubeVideoID) (model.VideoDetail, error)

// Cache is a bounded lookup-or-fetch store for video metadata. A stored
// entry is never replaced while it is resident; it only disappears when it
// is evicted as least recently used. Failed fetches are not stored.
// Concurrent misses for the same video share a single fetch.
type Cache struct {
	entries *lru.Cache[model.YoutubeVideoID, model.VideoDetail]
	flight  singleflight.Group
	logger  *slog.Logger
}

func New(size int, logger *slog.Logger) (*Cache, error) {
	if size <= 0 {
		return nil, fmt.Errorf("cache size must be positive, got %d", size)
	}
	entries, err := lru.New[model.YoutubeVideoID, model.VideoDetail](size)
	if err != nil {
		return nil, err
	}

	return &Cache{
		entries: entries,
		logger:  logger,
	}, nil
}

func (c *Cache) Resolve(ctx context.Context, ytID model.YoutubeVideoID, fetch FetchFunc) (model.VideoDetail, error) {
	if detail, ok := c.entries.Get(ytID); ok {
		c.logger.Debug("cache hit", slog.String("video", string(ytID)))
		return detail, nil
	}

	// The fetch is shared, so it must not die with the caller that happened
	// to start it. Each caller still gives up on its own context.
	fetchCtx := context.WithoutCancel(ctx)
	resCh := c.flight.DoChan(string(ytID), func() (any, error) {
		// another flight may have finished between the miss and this call
		if detail, ok := c.entries.Get(ytID); ok {
			return detail, nil
		}

		c.logger.Debug("cache miss", slog.String("video", string(ytID)))
		detail, err := fetch(fetchCtx, ytID)
		if err != nil {
			return model.VideoDetail{}, err
		}
		if previous, ok, _ := c.entries.PeekOrAdd(ytID, detail); ok {
			return previous, nil
		}

		return detail, nil
	})

	var res singleflight.Result
	select {
	case <-ctx.Done():
		return model.VideoDetail{}, ctx.Err()
	case res = <-resCh:
	}
	if res.Err != nil {
		return model.VideoDetail{}, res.Err
	}
	if res.Shared {
		c.logger.Debug("shared in-flight fetch", slog.String("video", string(ytID)))
	}

	return res.Val.(model.VideoDetail), nil
}

func (c *Cache) Len() int {
	return c.entries.Len()
}
