package textgen

import (
	"context"
	"errors"
	"fmt"
)

// Generator turns one prompt into free text. Implementations make a single
// upstream call per Generate and never retry.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Func adapts a plain function to Generator.
type Func func(ctx context.Context, prompt string) (string, error)

func (f Func) Generate(ctx context.Context, prompt string) (string, error) { return f(ctx, prompt) }

// ErrEmptyOutput is returned (wrapped) when the upstream answered with no text.
var ErrEmptyOutput = errors.New("empty generator output")

// GenerationError is the only error kind a Generator returns.
type GenerationError struct {
	Provider string
	Err      error
}

func (e *GenerationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Err == nil {
		return fmt.Sprintf("%s: generation failed", e.Provider)
	}
	return fmt.Sprintf("%s: %v", e.Provider, e.Err)
}

func (e *GenerationError) Unwrap() error { return e.Err }

// Wrap returns err as a *GenerationError for provider, leaving nil and
// already-wrapped errors alone.
func Wrap(provider string, err error) error {
	if err == nil {
		return nil
	}
	var ge *GenerationError
	if errors.As(err, &ge) {
		return err
	}
	return &GenerationError{Provider: provider, Err: err}
}
