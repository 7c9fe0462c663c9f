package domain

import (
	"errors"
	"fmt"
)

// Domain errors.
var (
	ErrParse           = errors.New("malformed catalog")
	ErrDuplicateEntry  = errors.New("duplicate catalog entry")
	ErrCatalogNotFound = errors.New("catalog not found")
	ErrNoCatalogs      = errors.New("no catalog loaded")
	ErrNoStore         = errors.New("catalog store not configured")
)

// ParseError reports a structural or syntax problem in a serialized catalog.
// Line is 0 when the position is unknown.
type ParseError struct {
	Path string
	Line int
	Msg  string
	Err  error
}

func (e *ParseError) Error() string {
	where := e.Path
	if where == "" {
		where = "<input>"
	}
	if e.Line > 0 {
		where = fmt.Sprintf("%s:%d", where, e.Line)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", where, e.Msg, e.Err)
	}
	return fmt.Sprintf("%s: %s", where, e.Msg)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Is makes every ParseError match ErrParse.
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

// DuplicateError names the key that occurred twice while the catalog was built
// with the reject policy.
type DuplicateError struct {
	Context       string
	Source        string
	Disambiguator string
}

func (e *DuplicateError) Error() string {
	if e.Disambiguator != "" {
		return fmt.Sprintf("%v: context %q, source %q, disambiguation %q", ErrDuplicateEntry, e.Context, e.Source, e.Disambiguator)
	}
	return fmt.Sprintf("%v: context %q, source %q", ErrDuplicateEntry, e.Context, e.Source)
}

func (e *DuplicateError) Is(target error) bool {
	return target == ErrDuplicateEntry
}

// Code returns a stable identifier for a domain error, or "" for foreign errors.
func Code(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrParse):
		return "malformed_catalog"
	case errors.Is(err, ErrDuplicateEntry):
		return "duplicate_entry"
	case errors.Is(err, ErrCatalogNotFound):
		return "catalog_not_found"
	case errors.Is(err, ErrNoCatalogs):
		return "no_catalogs"
	case errors.Is(err, ErrNoStore):
		return "no_store"
	default:
		return ""
	}
}
