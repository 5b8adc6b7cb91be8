package storage

import (
	"context"

	"ewintr.nl/ytcatalog/model"
)

// ProjectRepository stores projects. Save rejects a project that has the
// same video name and channel as a stored one with model.ErrDuplicate.
type ProjectRepository interface {
	Save(ctx context.Context, project model.Project) (model.Project, error)
	FindAll(ctx context.Context) ([]model.Project, error)
}
