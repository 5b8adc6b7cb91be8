// Package filter selects the projects that match a set of user supplied
// criteria. All criteria must hold for a project to be selected; an empty
// criterion selects everything.
package filter

import (
	"fmt"
	"sort"
	"strings"

	"ewintr.nl/ytcatalog/model"
)

type Bucket string

const (
	BucketAny       Bucket = ""
	BucketUpToFive  Bucket = "0-5 hours"
	BucketFiveToTen Bucket = "5-10 hours"
	BucketAboveTen  Bucket = "Above 10 hours"
)

var Buckets = []Bucket{BucketUpToFive, BucketFiveToTen, BucketAboveTen}

func ParseBucket(s string) (Bucket, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return BucketAny, nil
	}
	for _, b := range Buckets {
		if strings.EqualFold(s, string(b)) {
			return b, nil
		}
	}

	return "", fmt.Errorf("unknown hours range %q, expected one of %q, %q or %q", s, BucketUpToFive, BucketFiveToTen, BucketAboveTen)
}

// Contains reports whether a length falls in the bucket. The three named
// buckets do not overlap and together cover every length from zero up. An
// unknown bucket contains nothing.
func (b Bucket) Contains(hours float64) bool {
	switch b {
	case BucketAny:
		return true
	case BucketUpToFive:
		return hours <= 5
	case BucketFiveToTen:
		return hours > 5 && hours <= 10
	case BucketAboveTen:
		return hours > 10
	default:
		return false
	}
}

type State struct {
	VideoName      string
	YoutubeChannel string
	MinHours       float64
	MaxHoursBucket Bucket
	// TechStack holds free text; every whitespace separated word is a keyword
	TechStack  string
	Difficulty model.Difficulty
}

// Keywords returns the lowercased tech stack keywords.
func (s State) Keywords() []string {
	return strings.Fields(strings.ToLower(s.TechStack))
}

func (s State) Match(p model.Project) bool {
	return s.match(p, s.Keywords())
}

func (s State) match(p model.Project, keywords []string) bool {
	return (s.VideoName == "" || p.VideoName == s.VideoName) &&
		(s.YoutubeChannel == "" || p.YoutubeChannel == s.YoutubeChannel) &&
		p.LengthInHours >= s.MinHours &&
		s.MaxHoursBucket.Contains(p.LengthInHours) &&
		matchTechStack(p.TechStack, keywords) &&
		(s.Difficulty == "" || p.Difficulty == s.Difficulty)
}

// matchTechStack passes when any keyword is part of any tag.
func matchTechStack(tags, keywords []string) bool {
	if len(keywords) == 0 {
		return true
	}
	for _, tag := range tags {
		tag = strings.ToLower(tag)
		for _, keyword := range keywords {
			if strings.Contains(tag, keyword) {
				return true
			}
		}
	}

	return false
}

// Apply returns the projects that match state, in their original order.
func Apply(projects []model.Project, state State) []model.Project {
	keywords := state.Keywords()
	res := make([]model.Project, 0, len(projects))
	for _, p := range projects {
		if state.match(p, keywords) {
			res = append(res, p)
		}
	}

	return res
}

// Facets lists the values a user can pick from when filtering.
type Facets struct {
	VideoNames []string
	Channels   []string
	TechStack  []string
}

// NewFacets collects unique names and channels in the order they first
// appear, and the unique lowercased tech stack tags in alphabetical order.
func NewFacets(projects []model.Project) Facets {
	f := Facets{
		VideoNames: []string{},
		Channels:   []string{},
		TechStack:  []string{},
	}
	names, channels, tags := map[string]bool{}, map[string]bool{}, map[string]bool{}
	for _, p := range projects {
		if !names[p.VideoName] {
			names[p.VideoName] = true
			f.VideoNames = append(f.VideoNames, p.VideoName)
		}
		if !channels[p.YoutubeChannel] {
			channels[p.YoutubeChannel] = true
			f.Channels = append(f.Channels, p.YoutubeChannel)
		}
		for _, tag := range p.TechStack {
			tag = strings.ToLower(tag)
			if !tags[tag] {
				tags[tag] = true
				f.TechStack = append(f.TechStack, tag)
			}
		}
	}
	sort.Strings(f.TechStack)

	return f
}
