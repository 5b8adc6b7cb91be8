package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type Difficulty string

const (
	DifficultyBeginner     Difficulty = "Beginner"
	DifficultyIntermediate Difficulty = "Intermediate"
	DifficultyAdvanced     Difficulty = "Advanced"
)

var Difficulties = []Difficulty{DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced}

func (d Difficulty) Valid() bool {
	for _, known := range Difficulties {
		if d == known {
			return true
		}
	}
	return false
}

// ParseDifficulty accepts a difficulty in any casing. An empty string parses
// to the empty Difficulty, meaning no difficulty was given.
func ParseDifficulty(s string) (Difficulty, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", nil
	}
	d := Difficulty(cases.Title(language.English).String(s))
	if !d.Valid() {
		return "", &ValidationError{Field: "difficulty", Reason: "must be one of Beginner, Intermediate, Advanced"}
	}
	return d, nil
}

// Project is a single learning project in the catalog. ID and CreatedAt are
// assigned by storage.
type Project struct {
	ID             uuid.UUID  `json:"id"`
	VideoName      string     `json:"videoName"`
	YoutubeChannel string     `json:"youtubeChannel"`
	LengthInHours  float64    `json:"lengthInHours"`
	TechStack      []string   `json:"techStack"`
	Difficulty     Difficulty `json:"difficulty"`
	Link           string     `json:"link"`
	CreatedAt      time.Time  `json:"createdAt"`
}

// SameAs reports whether both projects have the same identity, which is
// the combination of video name and channel.
func (p Project) SameAs(other Project) bool {
	return p.VideoName == other.VideoName && p.YoutubeChannel == other.YoutubeChannel
}

func (p Project) Validate() error {
	switch {
	case strings.TrimSpace(p.VideoName) == "":
		return &ValidationError{Field: "videoName", Reason: "is required"}
	case strings.TrimSpace(p.YoutubeChannel) == "":
		return &ValidationError{Field: "youtubeChannel", Reason: "is required"}
	case p.LengthInHours < 0:
		return &ValidationError{Field: "lengthInHours", Reason: "must not be negative"}
	case p.Difficulty == "":
		return &ValidationError{Field: "difficulty", Reason: "is required"}
	case !p.Difficulty.Valid():
		return &ValidationError{Field: "difficulty", Reason: "must be one of Beginner, Intermediate, Advanced"}
	case strings.TrimSpace(p.Link) == "":
		return &ValidationError{Field: "link", Reason: "is required"}
	}
	return nil
}
