// Package catalog holds the in-memory view of the project catalog that the
// command line works against.
package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"ewintr.nl/ytcatalog/filter"
	"ewintr.nl/ytcatalog/model"
)

type Enricher interface {
	Enrich(ctx context.Context, rawURL string, override model.Difficulty) (model.Project, error)
}

type Remote interface {
	List(ctx context.Context) ([]model.Project, error)
	Create(ctx context.Context, project model.Project) (model.Project, error)
}

// Session keeps the catalog and the active filters together so that every
// evaluation sees one consistent snapshot of both.
type Session struct {
	mu       sync.RWMutex
	projects []model.Project
	filters  filter.State

	enricher Enricher
	remote   Remote
	logger   *slog.Logger
}

func NewSession(enricher Enricher, remote Remote, logger *slog.Logger) *Session {
	return &Session{
		projects: []model.Project{},
		enricher: enricher,
		remote:   remote,
		logger:   logger,
	}
}

// Load replaces the catalog with the remote contents.
func (s *Session) Load(ctx context.Context) error {
	projects, err := s.remote.List(ctx)
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}
	if projects == nil {
		projects = []model.Project{}
	}

	s.mu.Lock()
	s.projects = projects
	s.mu.Unlock()
	s.logger.Info("catalog loaded", slog.Int("projects", len(projects)))

	return nil
}

// Add enriches rawURL and stores the result. A project that is already in
// the catalog, locally or remotely, gives model.ErrDuplicate and leaves the
// catalog untouched.
func (s *Session) Add(ctx context.Context, rawURL string, override model.Difficulty) (model.Project, error) {
	project, err := s.enricher.Enrich(ctx, rawURL, override)
	if err != nil {
		return model.Project{}, err
	}
	if s.contains(project) {
		s.logger.Info("project already in catalog", slog.String("videoName", project.VideoName), slog.String("channel", project.YoutubeChannel))
		return model.Project{}, fmt.Errorf("%w: %q by %q", model.ErrDuplicate, project.VideoName, project.YoutubeChannel)
	}

	stored, err := s.remote.Create(ctx, project)
	if err != nil {
		return model.Project{}, err
	}

	s.mu.Lock()
	s.projects = append(s.projects, stored)
	s.mu.Unlock()
	s.logger.Info("project added", slog.String("id", stored.ID.String()), slog.String("videoName", stored.VideoName))

	return stored, nil
}

func (s *Session) contains(project model.Project) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.projects {
		if p.SameAs(project) {
			return true
		}
	}
	return false
}

func (s *Session) SetFilters(state filter.State) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filters = state
}

func (s *Session) Filters() filter.State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filters
}

// Displayed returns the projects that pass the active filters, in catalog
// order.
func (s *Session) Displayed() []model.Project {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return filter.Apply(s.projects, s.filters)
}

// Records returns a copy of the full catalog.
func (s *Session) Records() []model.Project {
	s.mu.RLock()
	defer s.mu.RUnlock()
	projects := make([]model.Project, len(s.projects))
	copy(projects, s.projects)
	return projects
}

func (s *Session) Facets() filter.Facets {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return filter.NewFacets(s.projects)
}
