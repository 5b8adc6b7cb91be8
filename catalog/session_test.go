package catalog

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"ewintr.nl/ytcatalog/filter"
	"ewintr.nl/ytcatalog/model"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memEnricher struct {
	projects map[string]model.Project
}

func (m *memEnricher) Enrich(_ context.Context, rawURL string, override model.Difficulty) (model.Project, error) {
	p, ok := m.projects[rawURL]
	if !ok {
		return model.Project{}, fmt.Errorf("%w: %q", model.ErrInvalidURL, rawURL)
	}
	if override != "" {
		p.Difficulty = override
	}
	return p, nil
}

type memRemote struct {
	stored  []model.Project
	created int
	listErr error
}

func (m *memRemote) List(_ context.Context) ([]model.Project, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return append([]model.Project{}, m.stored...), nil
}

func (m *memRemote) Create(_ context.Context, project model.Project) (model.Project, error) {
	for _, p := range m.stored {
		if p.SameAs(project) {
			return model.Project{}, model.ErrDuplicate
		}
	}
	m.created++
	project.ID = uuid.New()
	project.CreatedAt = time.Now()
	m.stored = append(m.stored, project)
	return project, nil
}

func proj(name, channel string, hours float64, tech ...string) model.Project {
	return model.Project{
		VideoName:      name,
		YoutubeChannel: channel,
		LengthInHours:  hours,
		TechStack:      tech,
		Difficulty:     model.DifficultyIntermediate,
		Link:           "https://youtu.be/" + name,
	}
}

func newTestSession(remote *memRemote) *Session {
	enricher := &memEnricher{projects: map[string]model.Project{
		"https://youtu.be/a": proj("A", "X", 3, "React", "Node"),
		"https://youtu.be/b": proj("B", "Y", 8, "Vue"),
		"https://youtu.be/c": proj("A", "X", 3, "React"),
	}}
	return NewSession(enricher, remote, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestSessionLoad(t *testing.T) {
	remote := &memRemote{stored: []model.Project{proj("Stored", "Z", 1)}}
	s := newTestSession(remote)

	assert.Empty(t, s.Records())
	require.NoError(t, s.Load(context.Background()))
	require.Len(t, s.Records(), 1)
	assert.Equal(t, "Stored", s.Records()[0].VideoName)

	failing := newTestSession(&memRemote{listErr: errors.New("connection refused")})
	assert.Error(t, failing.Load(context.Background()))
}

func TestSessionAdd(t *testing.T) {
	remote := &memRemote{}
	s := newTestSession(remote)
	ctx := context.Background()

	added, err := s.Add(ctx, "https://youtu.be/a", "")
	require.NoError(t, err)
	assert.NotEmpty(t, added.ID)
	assert.Len(t, s.Records(), 1)

	t.Run("local duplicate", func(t *testing.T) {
		_, err := s.Add(ctx, "https://youtu.be/c", "")
		assert.ErrorIs(t, err, model.ErrDuplicate)
		assert.Len(t, s.Records(), 1)
		assert.Equal(t, 1, remote.created)
	})

	t.Run("remote duplicate", func(t *testing.T) {
		remote.stored = append(remote.stored, proj("B", "Y", 8))
		_, err := s.Add(ctx, "https://youtu.be/b", "")
		assert.ErrorIs(t, err, model.ErrDuplicate)
		assert.Len(t, s.Records(), 1)
	})

	t.Run("enrichment failure", func(t *testing.T) {
		_, err := s.Add(ctx, "https://example.com", "")
		assert.ErrorIs(t, err, model.ErrInvalidURL)
		assert.Len(t, s.Records(), 1)
	})
}

func TestSessionAddOverride(t *testing.T) {
	s := newTestSession(&memRemote{})

	added, err := s.Add(context.Background(), "https://youtu.be/b", model.DifficultyAdvanced)
	require.NoError(t, err)
	assert.Equal(t, model.DifficultyAdvanced, added.Difficulty)
}

func TestSessionDisplayed(t *testing.T) {
	s := newTestSession(&memRemote{})
	ctx := context.Background()
	_, err := s.Add(ctx, "https://youtu.be/a", "")
	require.NoError(t, err)
	_, err = s.Add(ctx, "https://youtu.be/b", "")
	require.NoError(t, err)

	assert.Len(t, s.Displayed(), 2)

	state := filter.State{MaxHoursBucket: filter.BucketUpToFive, TechStack: "react"}
	s.SetFilters(state)
	assert.Equal(t, state, s.Filters())
	displayed := s.Displayed()
	require.Len(t, displayed, 1)
	assert.Equal(t, "A", displayed[0].VideoName)

	s.SetFilters(filter.State{})
	assert.Len(t, s.Displayed(), 2)
}

func TestSessionFacets(t *testing.T) {
	s := newTestSession(&memRemote{})
	ctx := context.Background()
	_, err := s.Add(ctx, "https://youtu.be/b", "")
	require.NoError(t, err)
	_, err = s.Add(ctx, "https://youtu.be/a", "")
	require.NoError(t, err)

	f := s.Facets()
	assert.Equal(t, []string{"B", "A"}, f.VideoNames)
	assert.Equal(t, []string{"Y", "X"}, f.Channels)
	assert.Equal(t, []string{"node", "react", "vue"}, f.TechStack)
}
