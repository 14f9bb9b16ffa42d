// SPDX-License-Identifier: MIT
// Package: labyrinth/generate
//
// errors.go — sentinel errors for the generate package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Implementations attach method context with %w (see wrapf).
//   • Generators never panic; option constructors may.

package generate

import (
	"errors"
	"fmt"
)

// ErrNilGrid indicates a nil *maze.Grid was passed to a generator.
var ErrNilGrid = errors.New("generate: grid is nil")

// ErrNoEntrance indicates the grid has no designated entrance.
var ErrNoEntrance = errors.New("generate: entrance not designated")

// ErrNoExit indicates the grid has no designated exit.
var ErrNoExit = errors.New("generate: exit not designated")

// ErrGridNotFresh indicates the grid already has open walls.
// Call Reset on the grid before generating into it again.
var ErrGridNotFresh = errors.New("generate: grid already carved")

// ErrStepLimit indicates a random walk drew more directions than allowed
// by WithMaxSteps.
var ErrStepLimit = errors.New("generate: random walk step limit exceeded")

// ErrUnknownAlgorithm indicates an unsupported Algorithm value or name.
var ErrUnknownAlgorithm = errors.New("generate: unknown algorithm")

// wrapf prefixes err with the method name, keeping it matchable by errors.Is.
func wrapf(method string, err error) error {
	return fmt.Errorf("%s: %w", method, err)
}
