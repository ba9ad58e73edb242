package tp

import (
	"fmt"
	"strconv"
)

type (
	// Type is a scalar or array type descriptor.
	// Descriptors are plain comparable values.
	Type interface {
		String() string
	}

	// None is the absence of a value.
	None struct{}

	Never struct{}

	// Int is a signed or unsigned integer.
	// Bits is 8, 16, 32 or 64, or 0 for the platform word size.
	Int struct {
		Bits   int
		Signed bool
	}

	Float struct {
		Bits int
	}

	Array struct {
		Elem Type
		Len  int

		// Sized is false when the element count is not statically known.
		Sized bool
	}

	InvalidTypeError struct {
		Token string
	}
)

// Parse resolves a type name token into a descriptor.
func Parse(s string) (Type, error) {
	switch s {
	case "none":
		return None{}, nil
	case "!":
		return Never{}, nil
	case "usz":
		return Int{}, nil
	case "u8":
		return Int{Bits: 8}, nil
	case "u16":
		return Int{Bits: 16}, nil
	case "u32":
		return Int{Bits: 32}, nil
	case "u64":
		return Int{Bits: 64}, nil
	case "isz":
		return Int{Signed: true}, nil
	case "i8":
		return Int{Bits: 8, Signed: true}, nil
	case "i16":
		return Int{Bits: 16, Signed: true}, nil
	case "i32":
		return Int{Bits: 32, Signed: true}, nil
	case "i64":
		return Int{Bits: 64, Signed: true}, nil
	case "f32":
		return Float{Bits: 32}, nil
	case "f64":
		return Float{Bits: 64}, nil
	default:
		return nil, InvalidTypeError{Token: s}
	}
}

func (t None) String() string  { return "none" }
func (t Never) String() string { return "!" }

func (t Int) String() string {
	p := "u"
	if t.Signed {
		p = "i"
	}

	if t.Bits == 0 {
		return p + "sz"
	}

	return p + strconv.Itoa(t.Bits)
}

func (t Float) String() string {
	return "f" + strconv.Itoa(t.Bits)
}

func (t Array) String() string {
	size := ""
	if t.Sized {
		size = strconv.Itoa(t.Len)
	}

	return fmt.Sprintf("%v[%s]", t.Elem, size)
}

func (e InvalidTypeError) Error() string {
	return fmt.Sprintf("invalid type %q", e.Token)
}
