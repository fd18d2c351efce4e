// Package guard wraps a random source and flags consecutive duplicate draws.
package guard

import (
	"fmt"

	"github.com/glizzus/randstream/internal/draw"
	"github.com/glizzus/randstream/internal/result"
)

// ConsecutiveDrawError indicates that a draw was equal to the one
// immediately before it.
type ConsecutiveDrawError struct {
	Value any
}

func (e *ConsecutiveDrawError) Error() string {
	return fmt.Sprintf("two consecutive random values: %v", e.Value)
}

var _ error = (*ConsecutiveDrawError)(nil)

// Guard draws from an underlying source and reports an error whenever a
// value equals the immediately preceding one. A duplicate is an expected
// event, not a terminal one: the Guard stays usable after a failure, and
// stopping is the caller's policy.
//
// A Guard is not safe for concurrent use; confine it to one goroutine.
type Guard[T comparable] struct {
	src    draw.Source[T]
	last   T
	primed bool
}

// New returns a Guard over src with no prior value, so its first Draw
// can never fail.
func New[T comparable](src draw.Source[T]) *Guard[T] {
	return &Guard[T]{src: src}
}

// Draw produces the next value. The new value always replaces the stored
// one, even when it collides with it.
func (g *Guard[T]) Draw() result.Result[T] {
	v := g.src.Draw()
	dup := g.primed && v == g.last
	g.last = v
	g.primed = true
	if dup {
		return result.Err[T](&ConsecutiveDrawError{Value: v})
	}
	return result.Ok(v)
}

// Last returns the most recently drawn value and whether one exists yet.
func (g *Guard[T]) Last() (T, bool) {
	return g.last, g.primed
}
