package process

import (
	"fmt"

	"ewintr.nl/ytcatalog/model"
)

const (
	PolicyFixed    = "fixed"
	PolicyDuration = "duration"
)

// DifficultyPolicy decides the difficulty of a project when the caller did
// not choose one.
type DifficultyPolicy interface {
	Difficulty(project model.Project) model.Difficulty
}

// FixedPolicy assigns the same difficulty to every project.
type FixedPolicy struct {
	Level model.Difficulty
}

func (p FixedPolicy) Difficulty(_ model.Project) model.Difficulty {
	return p.Level
}

// DurationPolicy infers difficulty from length: up to 5 hours is Beginner,
// over 10 hours is Advanced, anything in between Intermediate.
type DurationPolicy struct{}

func (DurationPolicy) Difficulty(project model.Project) model.Difficulty {
	switch {
	case project.LengthInHours <= 5:
		return model.DifficultyBeginner
	case project.LengthInHours > 10:
		return model.DifficultyAdvanced
	default:
		return model.DifficultyIntermediate
	}
}

func NewDifficultyPolicy(name string) (DifficultyPolicy, error) {
	switch name {
	case "", PolicyFixed:
		return FixedPolicy{Level: model.DifficultyIntermediate}, nil
	case PolicyDuration:
		return DurationPolicy{}, nil
	default:
		return nil, fmt.Errorf("unknown difficulty policy %q", name)
	}
}
