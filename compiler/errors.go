package compiler

import (
	"errors"
	"io/fs"

	"github.com/c360studio/ricdraw/classify"
	"github.com/c360studio/ricdraw/config"
	"github.com/c360studio/ricdraw/diagram"
	"github.com/c360studio/ricdraw/facts"
	"github.com/c360studio/ricdraw/identifier"
	"github.com/c360studio/ricdraw/resolve"
)

// ErrorKind names a class of compilation failure. Kinds are stable strings
// suitable for metric labels.
type ErrorKind string

const (
	KindNone          ErrorKind = ""
	KindFormat        ErrorKind = "format"
	KindShape         ErrorKind = "shape"
	KindDangling      ErrorKind = "dangling"
	KindMetacharacter ErrorKind = "metacharacter"
	KindCollision     ErrorKind = "collision"
	KindPredicate     ErrorKind = "predicate"
	KindClass         ErrorKind = "class"
	KindConfig        ErrorKind = "config"
	KindIO            ErrorKind = "io"
	KindInternal      ErrorKind = "internal"
)

// Kind classifies err by the pipeline error it wraps.
func Kind(err error) ErrorKind {
	if err == nil {
		return KindNone
	}

	var (
		formatErr   *diagram.FormatError
		shapeErr    *classify.UnrecognizedShapeError
		classErr    *classify.UnknownClassError
		danglingErr *resolve.DanglingConnectionError
		predErr     *facts.UnknownPredicateError
		configErr   *config.ValidationError
		pathErr     *fs.PathError
	)
	switch {
	case errors.As(err, &formatErr), errors.Is(err, diagram.ErrEmptyDiagram):
		return KindFormat
	case errors.As(err, &shapeErr):
		return KindShape
	case errors.As(err, &classErr):
		return KindClass
	case errors.As(err, &danglingErr):
		return KindDangling
	case identifier.IsMetacharacter(err), errors.Is(err, identifier.ErrEmptyName):
		return KindMetacharacter
	case identifier.IsCollision(err):
		return KindCollision
	case errors.As(err, &predErr):
		return KindPredicate
	case errors.As(err, &configErr):
		return KindConfig
	case errors.As(err, &pathErr):
		return KindIO
	default:
		return KindInternal
	}
}
