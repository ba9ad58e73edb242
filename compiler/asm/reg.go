package asm

import (
	"fmt"

	"github.com/sty00a4-code/lerp/compiler/tp"
)

type (
	RegName int

	// Size is a register width in bytes.
	Size int

	// Reg is an architectural register at a particular width.
	Reg struct {
		Name RegName
		Size Size
	}

	InvalidRegError struct {
		Name string
	}
)

const (
	A RegName = iota
	C
	D
	B
	SP
	BP
	SI
	DI
	R8
	R9
	R10
	R11
	R12
	R13
	R14
	R15
)

const (
	S8  Size = 1
	S16 Size = 2
	S32 Size = 4
	S64 Size = 8
)

func (s Size) Bytes() int { return int(s) }

// Keyword is the operand size keyword used in memory operands.
func (s Size) Keyword() string {
	switch s {
	case S8:
		return "BYTE"
	case S16:
		return "WORD"
	case S32:
		return "DWORD"
	case S64:
		return "QWORD"
	default:
		panic(s)
	}
}

// SizeOf maps a type to the register width holding one scalar of it.
// None and Never have no width, which is how invalid operand types
// are rejected. Word sized integers map to 32 bits.
func SizeOf(t tp.Type) (Size, bool) {
	switch t := t.(type) {
	case tp.Int:
		switch t.Bits {
		case 0, 32:
			return S32, true
		case 8:
			return S8, true
		case 16:
			return S16, true
		case 64:
			return S64, true
		}
	case tp.Float:
		if t.Bits == 64 {
			return S64, true
		}

		return S32, true
	case tp.Array:
		return SizeOf(t.Elem)
	}

	return 0, false
}

func (n RegName) String() string {
	switch n {
	case A:
		return "a"
	case C:
		return "c"
	case D:
		return "d"
	case B:
		return "b"
	case SP:
		return "sp"
	case BP:
		return "bp"
	case SI:
		return "si"
	case DI:
		return "di"
	default:
		return fmt.Sprintf("r%d", 8+int(n-R8))
	}
}

// String renders the architectural spelling of the register.
// The four legacy registers have distinct spellings per width (rax,
// eax, ax, al), sp/bp/si/di follow the legacy prefixes with an l
// suffix at 8 bits, and r8-r15 take the d/w/b suffixes.
func (r Reg) String() string {
	n := r.Name.String()

	switch {
	case r.Name <= B:
		switch r.Size {
		case S64:
			return "r" + n + "x"
		case S32:
			return "e" + n + "x"
		case S16:
			return n + "x"
		default:
			return n + "l"
		}
	case r.Name <= DI:
		switch r.Size {
		case S64:
			return "r" + n
		case S32:
			return "e" + n
		case S16:
			return n
		default:
			return n + "l"
		}
	default:
		switch r.Size {
		case S64:
			return n
		case S32:
			return n + "d"
		case S16:
			return n + "w"
		default:
			return n + "b"
		}
	}
}

// ParseReg is the inverse of Reg.String.
func ParseReg(s string) (Reg, error) {
	for name := A; name <= R15; name++ {
		for _, size := range []Size{S64, S32, S16, S8} {
			r := Reg{Name: name, Size: size}

			if r.String() == s {
				return r, nil
			}
		}
	}

	return Reg{}, InvalidRegError{Name: s}
}

func (e InvalidRegError) Error() string {
	return fmt.Sprintf("invalid register %q", e.Name)
}
