package process

import (
	"context"
	"log/slog"

	"ewintr.nl/ytcatalog/cache"
	"ewintr.nl/ytcatalog/fetcher"
	"ewintr.nl/ytcatalog/model"
)

// Draft carries a project through the pipeline while it is being assembled.
type Draft struct {
	URL      string
	Override model.Difficulty
	VideoID  model.YoutubeVideoID
	Detail   model.VideoDetail
	Project  model.Project
}

type VideoProcessor interface {
	Name() string
	Do(ctx context.Context, draft *Draft) error
}

type MetadataCache interface {
	Resolve(ctx context.Context, ytID model.YoutubeVideoID, fetch cache.FetchFunc) (model.VideoDetail, error)
}

// NewProcessors returns the enrichment steps in the order they must run.
func NewProcessors(metadataCache MetadataCache, metadataFetcher fetcher.MetadataFetcher, keywords []string, policy DifficultyPolicy) []VideoProcessor {
	return []VideoProcessor{
		NewVideoIDResolver(),
		NewMetadataResolver(metadataCache, metadataFetcher),
		NewLengthCalculator(),
		NewTechStackMatcher(keywords),
		NewDifficultyAssigner(policy),
		NewLinker(),
	}
}

type Pipeline struct {
	procs  []VideoProcessor
	logger *slog.Logger
}

func NewPipeline(procs []VideoProcessor, logger *slog.Logger) *Pipeline {
	return &Pipeline{
		procs:  procs,
		logger: logger,
	}
}

// Enrich turns a bare YouTube URL into a complete project. override, when
// not empty, takes precedence over the difficulty policy and is checked
// before anything is fetched. Enrich does not
// check for duplicates and does not store anything.
func (p *Pipeline) Enrich(ctx context.Context, rawURL string, override model.Difficulty) (model.Project, error) {
	if override != "" && !override.Valid() {
		return model.Project{}, &model.ValidationError{Field: "difficulty", Reason: "must be one of Beginner, Intermediate, Advanced"}
	}
	draft := &Draft{
		URL:      rawURL,
		Override: override,
	}

	p.logger.Info("enriching project", slog.String("url", rawURL))
	for _, next := range p.procs {
		p.logger.Debug("running processor", slog.String("url", rawURL), slog.String("processor", next.Name()))
		if err := next.Do(ctx, draft); err != nil {
			p.logger.Error("failed to enrich project", slog.String("url", rawURL), slog.String("processor", next.Name()), slog.String("error", err.Error()))
			return model.Project{}, err
		}
	}
	p.logger.Info("enriched project", slog.String("url", rawURL), slog.String("video", string(draft.VideoID)))

	return draft.Project, nil
}
