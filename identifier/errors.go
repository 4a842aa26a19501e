package identifier

import (
	"errors"
	"fmt"
)

// ErrEmptyName is returned when a label yields no characters at all.
var ErrEmptyName = errors.New("label yields an empty local name")

// MetacharacterError reports a character that is forbidden in a local name
// and has no configured substitute.
type MetacharacterError struct {
	Char  rune
	Label string
	// Trailing is set when Char is only forbidden at the end of a name.
	Trailing bool
}

func (e *MetacharacterError) Error() string {
	if e.Trailing {
		return fmt.Sprintf("label %q yields an identifier ending in %q, which is not allowed and has no substitute configured", e.Label, e.Char)
	}
	return fmt.Sprintf("label %q contains %q, which is not allowed in an identifier and has no substitute configured", e.Label, e.Char)
}

// CollisionError reports two different labels that synthesize the same
// local name.
type CollisionError struct {
	Name   string
	First  string
	Second string
}

func (e *CollisionError) Error() string {
	return fmt.Sprintf("labels %q and %q both produce the identifier %q", e.First, e.Second, e.Name)
}

// IsMetacharacter reports whether err is, or wraps, a MetacharacterError.
func IsMetacharacter(err error) bool {
	var me *MetacharacterError
	return errors.As(err, &me)
}

// IsCollision reports whether err is, or wraps, a CollisionError.
func IsCollision(err error) bool {
	var ce *CollisionError
	return errors.As(err, &ce)
}
