package generation

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/yungbote/lessongen/internal/platform/apierr"
)

var (
	// ErrInvalidRequest: a required parameter is missing or out of range.
	ErrInvalidRequest = errors.New("invalid request")
	// ErrGenerationFailure: the generator call failed.
	ErrGenerationFailure = errors.New("generation failure")
	// ErrExtractionEmpty: generation succeeded but nothing could be parsed.
	ErrExtractionEmpty = errors.New("extraction empty")
)

// kindError carries a human message while matching one of the sentinels above.
type kindError struct {
	kind  error
	msg   string
	cause error
}

func (e *kindError) Error() string        { return e.msg }
func (e *kindError) Is(target error) bool { return target == e.kind }
func (e *kindError) Unwrap() error        { return e.cause }

func invalidRequest(format string, args ...any) error {
	return apierr.New(http.StatusBadRequest, "invalid_request", &kindError{
		kind: ErrInvalidRequest,
		msg:  fmt.Sprintf(format, args...),
	})
}

func generationFailed(cause error) error {
	return apierr.New(http.StatusInternalServerError, "generation_failed", &kindError{
		kind:  ErrGenerationFailure,
		msg:   "failed to generate content: " + cause.Error(),
		cause: cause,
	})
}

func extractionEmpty(msg string) error {
	return apierr.New(http.StatusInternalServerError, "extraction_empty", &kindError{
		kind: ErrExtractionEmpty,
		msg:  msg,
	})
}
