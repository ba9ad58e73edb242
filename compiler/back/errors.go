package back

import (
	"fmt"

	"github.com/sty00a4-code/lerp/compiler/ast"
	"github.com/sty00a4-code/lerp/compiler/tp"
)

type (
	// Error is a compile failure tagged with the source position
	// of the node that triggered it.
	Error struct {
		Pos ast.Pos
		Err error
	}

	NotFoundError struct {
		Word string
	}

	ArgsError struct {
		Want int
	}

	InvalidHeadError struct{}

	InvalidTypeError struct {
		Type tp.Type
	}

	TypeMismatchError struct {
		Want tp.Type
		Got  tp.Type
	}

	UnknownSizeError struct{}

	UnsupportedError struct {
		What string
	}
)

func (e Error) Error() string {
	return fmt.Sprintf("%v: %v", e.Pos, e.Err)
}

func (e Error) Unwrap() error { return e.Err }

func (e NotFoundError) Error() string {
	return fmt.Sprintf("%q not found", e.Word)
}

func (e ArgsError) Error() string {
	return fmt.Sprintf("expected %d arguments", e.Want)
}

func (e InvalidHeadError) Error() string {
	return "invalid head"
}

func (e InvalidTypeError) Error() string {
	return fmt.Sprintf("invalid type %v", e.Type)
}

func (e TypeMismatchError) Error() string {
	return fmt.Sprintf("expected %v, got %v", e.Want, e.Got)
}

func (e UnknownSizeError) Error() string {
	return "unknown size"
}

func (e UnsupportedError) Error() string {
	return fmt.Sprintf("%v is not supported", e.What)
}
