package process

import (
	"context"
	"fmt"

	"ewintr.nl/ytcatalog/duration"
	"ewintr.nl/ytcatalog/fetcher"
	"ewintr.nl/ytcatalog/model"
)

type VideoIDResolver struct{}

func NewVideoIDResolver() *VideoIDResolver { return &VideoIDResolver{} }

func (r *VideoIDResolver) Name() string { return "video id resolver" }

func (r *VideoIDResolver) Do(_ context.Context, draft *Draft) error {
	ytID, ok := fetcher.ExtractVideoID(draft.URL)
	if !ok {
		return fmt.Errorf("%w: %q", model.ErrInvalidURL, draft.URL)
	}
	draft.VideoID = ytID

	return nil
}

// MetadataResolver looks the video up through the cache. This is the only
// step that talks to the network.
type MetadataResolver struct {
	cache   MetadataCache
	fetcher fetcher.MetadataFetcher
}

func NewMetadataResolver(metadataCache MetadataCache, metadataFetcher fetcher.MetadataFetcher) *MetadataResolver {
	return &MetadataResolver{
		cache:   metadataCache,
		fetcher: metadataFetcher,
	}
}

func (r *MetadataResolver) Name() string { return "metadata resolver" }

func (r *MetadataResolver) Do(ctx context.Context, draft *Draft) error {
	detail, err := r.cache.Resolve(ctx, draft.VideoID, r.fetcher.FetchVideo)
	if err != nil {
		return err
	}
	draft.Detail = detail
	draft.Project.VideoName = detail.Title
	draft.Project.YoutubeChannel = detail.ChannelTitle

	return nil
}

type LengthCalculator struct{}

func NewLengthCalculator() *LengthCalculator { return &LengthCalculator{} }

func (c *LengthCalculator) Name() string { return "length calculator" }

func (c *LengthCalculator) Do(_ context.Context, draft *Draft) error {
	draft.Project.LengthInHours = duration.ToFractionalHours(draft.Detail.Duration)

	return nil
}

type TechStackMatcher struct {
	keywords []string
}

func NewTechStackMatcher(keywords []string) *TechStackMatcher {
	return &TechStackMatcher{keywords: keywords}
}

func (m *TechStackMatcher) Name() string { return "tech stack matcher" }

func (m *TechStackMatcher) Do(_ context.Context, draft *Draft) error {
	draft.Project.TechStack = MatchKeywords(draft.Detail.Description, m.keywords)

	return nil
}

type DifficultyAssigner struct {
	policy DifficultyPolicy
}

func NewDifficultyAssigner(policy DifficultyPolicy) *DifficultyAssigner {
	return &DifficultyAssigner{policy: policy}
}

func (a *DifficultyAssigner) Name() string { return "difficulty assigner" }

func (a *DifficultyAssigner) Do(_ context.Context, draft *Draft) error {
	if draft.Override != "" {
		draft.Project.Difficulty = draft.Override
		return nil
	}
	draft.Project.Difficulty = a.policy.Difficulty(draft.Project)

	return nil
}

// Linker keeps the URL exactly as it was given.
type Linker struct{}

func NewLinker() *Linker { return &Linker{} }

func (l *Linker) Name() string { return "linker" }

func (l *Linker) Do(_ context.Context, draft *Draft) error {
	draft.Project.Link = draft.URL

	return nil
}
