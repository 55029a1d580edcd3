package domain

import (
	"fmt"
	"strings"
)

type Genre string

const (
	GenreTragedy Genre = "tragedy"
	GenreComedy  Genre = "comedy"
	GenreHistory Genre = "history"
)

// Genres lists every genre the pricing engine knows about.
var Genres = []Genre{GenreTragedy, GenreComedy, GenreHistory}

func (g Genre) String() string {
	return string(g)
}

func (g Genre) Valid() bool {
	_, ok := strategies[g]
	return ok
}

// ParseGenre accepts a genre name in any letter case.
func ParseGenre(s string) (Genre, error) {
	g := Genre(strings.ToLower(strings.TrimSpace(s)))
	if !g.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownGenre, s)
	}

	return g, nil
}

// Play is an immutable work that can be performed. Copies are safe to share.
type Play struct {
	name  string
	lines int
	genre Genre
}

func NewPlay(name string, lines int, genre Genre) (Play, error) {
	if strings.TrimSpace(name) == "" {
		return Play{}, fmt.Errorf("%w: name must not be empty", ErrInvalidPlay)
	}

	if lines < 1 {
		return Play{}, fmt.Errorf("%w: lines must be positive, got %d", ErrInvalidPlay, lines)
	}

	if !genre.Valid() {
		return Play{}, fmt.Errorf("%w: %q", ErrUnknownGenre, genre)
	}

	return Play{name: name, lines: lines, genre: genre}, nil
}

func NewTragedyPlay(name string, lines int) (Play, error) {
	return NewPlay(name, lines, GenreTragedy)
}

func NewComedyPlay(name string, lines int) (Play, error) {
	return NewPlay(name, lines, GenreComedy)
}

func NewHistoryPlay(name string, lines int) (Play, error) {
	return NewPlay(name, lines, GenreHistory)
}

func (p Play) Name() string {
	return p.name
}

func (p Play) Lines() int {
	return p.lines
}

func (p Play) Genre() Genre {
	return p.genre
}
