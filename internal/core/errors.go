package core

import "github.com/pkg/errors"

var (
	// ErrOutOfRange is returned when a cell coordinate lies outside the grid.
	ErrOutOfRange = errors.New("cell out of range")
	// ErrInvalidGrid is returned for nil, ragged or non-binary grids and for
	// grids whose dimensions do not match the operation.
	ErrInvalidGrid = errors.New("invalid grid")
	// ErrUnknownMode is returned when a reset mode has no registered seeder.
	ErrUnknownMode = errors.New("unknown reset mode")
)
