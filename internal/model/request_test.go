package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRequest(t *testing.T) {
	req, err := NewRequest("Searching...", "#FF0000", nil, KindSearching)
	require.NoError(t, err)

	assert.NotEmpty(t, req.ID)
	assert.Equal(t, "Searching...", req.Title)
	assert.Equal(t, "#FF0000", req.Color)
	assert.Equal(t, KindSearching, req.Kind)
	assert.False(t, req.HasImage())
	assert.False(t, req.Animated())
}

func TestNewRequest_EmptyTitleAllowed(t *testing.T) {
	req, err := NewRequest("", "#000000", nil, KindDefault)
	require.NoError(t, err)
	assert.Empty(t, req.Title)
}

func TestNewRequest_InvalidKind(t *testing.T) {
	_, err := NewRequest("x", "#000000", nil, Kind(42))
	assert.ErrorIs(t, err, ErrInvalidKind)
}

func TestNewRequest_CopiesImages(t *testing.T) {
	frames := []Image{{Name: "a"}, {Name: "b"}}
	req, err := NewRequest("x", "#000000", frames, KindDefault)
	require.NoError(t, err)

	frames[0].Name = "mutated"
	assert.Equal(t, "a", req.Images[0].Name)
}

func TestRequest_ImageModes(t *testing.T) {
	tests := []struct {
		name     string
		images   []Image
		hasImage bool
		animated bool
	}{
		{"no image", nil, false, false},
		{"static icon", []Image{{Name: "icon"}}, true, false},
		{"animated sequence", []Image{{Name: "f1"}, {Name: "f2"}}, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := NewRequest("x", "#000000", tt.images, KindDefault)
			require.NoError(t, err)
			assert.Equal(t, tt.hasImage, req.HasImage())
			assert.Equal(t, tt.animated, req.Animated())
		})
	}
}

func TestParseKind(t *testing.T) {
	k, err := ParseKind("searching")
	require.NoError(t, err)
	assert.Equal(t, KindSearching, k)

	k, err = ParseKind("default")
	require.NoError(t, err)
	assert.Equal(t, KindDefault, k)

	_, err = ParseKind("bogus")
	assert.Error(t, err)
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "default", KindDefault.String())
	assert.Equal(t, "searching", KindSearching.String())
	assert.Equal(t, "unknown", Kind(42).String())
}
