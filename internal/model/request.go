// Package model defines the core data structures for banner.
package model

import (
	"crypto/rand"
	"errors"
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"
)

// Kind selects the content mode of a notification.
type Kind int

const (
	// KindDefault shows the image if one is present, otherwise title only.
	KindDefault Kind = iota
	// KindSearching shows a loading spinner next to the title.
	KindSearching
)

// KindNames maps kinds to the names used in config and demo scripts.
var KindNames = map[Kind]string{
	KindDefault:   "default",
	KindSearching: "searching",
}

// String returns the human-readable kind name.
func (k Kind) String() string {
	if name, ok := KindNames[k]; ok {
		return name
	}
	return "unknown"
}

// ParseKind converts a kind name to a Kind. Unknown names return an error.
func ParseKind(name string) (Kind, error) {
	for k, n := range KindNames {
		if n == name {
			return k, nil
		}
	}
	return KindDefault, fmt.Errorf("unknown kind %q", name)
}

// Image is a single renderable frame. The terminal host renders it as a rune
// cell; other hosts may interpret Name as a path or icon identifier.
type Image struct {
	Name string `yaml:"name"`
}

// Validation errors.
var (
	ErrInvalidKind = errors.New("kind must be default or searching")
)

// Request is an immutable description of one banner notification.
// Zero images means no icon, one is a static icon, and more than one is an
// animated sequence cycled by the host.
type Request struct {
	// ID identifies the request for logging and queue bookkeeping.
	ID string

	Title  string
	Color  string
	Images []Image
	Kind   Kind
}

// NewRequest creates a Request with a generated ULID.
// Title may be empty (renders blank); Color is passed through to the host
// unvalidated, matching the caller's-responsibility contract.
func NewRequest(title, color string, images []Image, kind Kind) (Request, error) {
	if kind != KindDefault && kind != KindSearching {
		return Request{}, ErrInvalidKind
	}

	id, err := ulid.New(ulid.Timestamp(time.Now()), rand.Reader)
	if err != nil {
		return Request{}, fmt.Errorf("failed to generate ULID: %w", err)
	}

	return Request{
		ID:     id.String(),
		Title:  title,
		Color:  color,
		Images: append([]Image(nil), images...),
		Kind:   kind,
	}, nil
}

// HasImage reports whether the request carries at least one image frame.
func (r Request) HasImage() bool {
	return len(r.Images) > 0
}

// Animated reports whether the request carries an animated image sequence.
func (r Request) Animated() bool {
	return len(r.Images) > 1
}
