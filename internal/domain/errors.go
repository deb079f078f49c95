package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors shared by the engine and the presentation layer.
var (
	ErrUnknownUnit          = errors.New("unknown unit")
	ErrUnknownFromUnit      = fmt.Errorf("source %w", ErrUnknownUnit)
	ErrUnknownToUnit        = fmt.Errorf("target %w", ErrUnknownUnit)
	ErrCrossCategory        = errors.New("units belong to different categories")
	ErrParseNumber          = errors.New("invalid number")
	ErrPersistence          = errors.New("history persistence failed")
	ErrRetryBudgetExhausted = errors.New("too many failed attempts")
	ErrRegistry             = errors.New("unit registry")
)
