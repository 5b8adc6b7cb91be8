package cmd

import (
	"context"
	"fmt"

	"ewintr.nl/ytcatalog/cache"
	"ewintr.nl/ytcatalog/catalog"
	"ewintr.nl/ytcatalog/client"
	"ewintr.nl/ytcatalog/fetcher"
	"ewintr.nl/ytcatalog/process"
	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"
)

func newPipeline(ctx context.Context) (*process.Pipeline, error) {
	if conf.YoutubeAPIKey == "" {
		return nil, fmt.Errorf("YOUTUBE_API_KEY is required to add projects")
	}
	ytClient, err := youtube.NewService(ctx, option.WithAPIKey(conf.YoutubeAPIKey))
	if err != nil {
		return nil, fmt.Errorf("unable to create youtube service: %w", err)
	}
	metadataCache, err := cache.New(conf.CacheSize, logger)
	if err != nil {
		return nil, err
	}
	keywords, err := process.LoadKeywords(conf.KeywordsFile)
	if err != nil {
		return nil, err
	}
	policy, err := process.NewDifficultyPolicy(conf.DifficultyPolicy)
	if err != nil {
		return nil, err
	}
	procs := process.NewProcessors(metadataCache, fetcher.NewYoutube(ytClient), keywords, policy)

	return process.NewPipeline(procs, logger), nil
}

// newSession connects to the catalog API and loads its contents. The
// enricher may be nil for read only use.
func newSession(ctx context.Context, enricher catalog.Enricher) (*catalog.Session, error) {
	remote, err := client.New(conf.CatalogURL, nil)
	if err != nil {
		return nil, err
	}
	session := catalog.NewSession(enricher, remote, logger)
	if err := session.Load(ctx); err != nil {
		return nil, err
	}

	return session, nil
}
