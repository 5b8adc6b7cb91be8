package model

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDifficulty(t *testing.T) {
	for _, tc := range []struct {
		in      string
		exp     Difficulty
		wantErr bool
	}{
		{in: "", exp: ""},
		{in: "beginner", exp: DifficultyBeginner},
		{in: "INTERMEDIATE", exp: DifficultyIntermediate},
		{in: " Advanced ", exp: DifficultyAdvanced},
		{in: "expert", wantErr: true},
	} {
		t.Run(tc.in, func(t *testing.T) {
			act, err := ParseDifficulty(tc.in)
			if tc.wantErr {
				assert.ErrorIs(t, err, ErrValidation)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.exp, act)
		})
	}
}

func TestProjectValidate(t *testing.T) {
	valid := Project{
		VideoName:      "Build a chat app",
		YoutubeChannel: "Some Channel",
		LengthInHours:  2.5,
		Difficulty:     DifficultyBeginner,
		Link:           "https://youtu.be/abc123",
	}
	require.NoError(t, valid.Validate())

	for _, tc := range []struct {
		name  string
		mod   func(p *Project)
		field string
	}{
		{name: "no name", mod: func(p *Project) { p.VideoName = "" }, field: "videoName"},
		{name: "no channel", mod: func(p *Project) { p.YoutubeChannel = " " }, field: "youtubeChannel"},
		{name: "negative length", mod: func(p *Project) { p.LengthInHours = -1 }, field: "lengthInHours"},
		{name: "no difficulty", mod: func(p *Project) { p.Difficulty = "" }, field: "difficulty"},
		{name: "unknown difficulty", mod: func(p *Project) { p.Difficulty = "Hard" }, field: "difficulty"},
		{name: "no link", mod: func(p *Project) { p.Link = "" }, field: "link"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			p := valid
			tc.mod(&p)
			err := p.Validate()
			require.ErrorIs(t, err, ErrValidation)
			var vErr *ValidationError
			require.True(t, errors.As(err, &vErr))
			assert.Equal(t, tc.field, vErr.Field)
		})
	}
}

func TestProjectSameAs(t *testing.T) {
	a := Project{VideoName: "A", YoutubeChannel: "X", Link: "one"}
	assert.True(t, a.SameAs(Project{VideoName: "A", YoutubeChannel: "X", Link: "two"}))
	assert.False(t, a.SameAs(Project{VideoName: "A", YoutubeChannel: "Y"}))
}

func TestProviderError(t *testing.T) {
	cause := errors.New("connection reset")
	err := error(&ProviderError{VideoID: "abc123", Err: cause})
	assert.ErrorIs(t, err, ErrProvider)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "fetch metadata for abc123: connection reset", err.Error())
}
