package services

import (
	"context"
	"fmt"

	"github.com/desertthunder/wis/internal/models"
	"github.com/desertthunder/wis/internal/shared"
)

// Source provides the sheet collection and resolves the links inside it.
type Source interface {
	// Load performs the single fetch of the collection.
	Load(ctx context.Context) ([]models.SheetRecord, error)

	// Resolve turns a (possibly relative) sheet link into an absolute URL.
	Resolve(link string) string

	// Location describes where the collection is read from.
	Location() string
}

// LoadErrorKind distinguishes the two recognized load failures.
type LoadErrorKind int

const (
	HTTPStatus LoadErrorKind = iota
	ParseError
)

// LoadError is returned by [Source.Load] when the collection cannot be used.
type LoadError struct {
	Kind    LoadErrorKind
	Status  int    // HTTP status code for [HTTPStatus]
	Message string // decoder message for [ParseError]
}

func (e *LoadError) Error() string {
	switch e.Kind {
	case HTTPStatus:
		return fmt.Sprintf("HTTP error! status: %d", e.Status)
	case ParseError:
		return fmt.Sprintf("%v: %s", shared.ErrParse, e.Message)
	default:
		return "load error"
	}
}

// Unwrap maps the error onto the shared sentinels so callers can use [errors.Is].
func (e *LoadError) Unwrap() error {
	switch e.Kind {
	case HTTPStatus:
		return shared.ErrHTTPStatus
	case ParseError:
		return shared.ErrParse
	default:
		return nil
	}
}
