package asm

import (
	"github.com/sty00a4-code/lerp/compiler/tp"
)

type (
	// Src is an operand usable in source position: Reg, Mem, MemReg,
	// MemOff, Int (immediate), Name (symbol) or Amount (raw number).
	Src any

	// Dst is a Src without the Int, Name and Amount forms.
	Dst any

	// Mem addresses memory at an absolute address.
	Mem struct {
		Size Size
		At   uint64
	}

	// MemReg addresses memory through a register.
	MemReg struct {
		Size Size
		Reg  Reg
	}

	// MemOff addresses memory at Reg plus a scaled offset.
	MemOff struct {
		Size  Size
		Reg   Reg
		Off   int
		Scale int
	}

	// Int is an immediate value. It renders with a $ prefix.
	Int int32

	// Name is a label or constant reference, rendered verbatim.
	Name string

	// Amount is a raw byte count used for stack adjustment.
	Amount int

	// Instr is one of the instruction structs below.
	// Instructions are pure data, rendering never fails.
	Instr any

	Nop struct{}

	Mov struct {
		Dst Dst
		Src Src
	}

	Push struct {
		Src Src
	}

	Pop struct {
		Dst Dst
	}

	Call struct {
		Func string
	}

	Leave struct{}

	Ret struct{}

	// Label marks a jump target. It renders dot prefixed.
	Label string

	Jmp struct {
		Label string
	}

	JmpIf struct {
		Cond  Cond
		Label string
	}

	Cmp struct {
		A Src
		B Src
	}

	Add struct {
		Dst Dst
		Src Src
	}

	Mul struct {
		Src Src
	}

	Div struct {
		Src Src
	}

	// Cond is a comparison operator encoded as its jump mnemonic suffix.
	Cond string

	// Func is one finished function: its instructions and the
	// string constants pooled while compiling it.
	Func struct {
		Name     string
		Reserved int // stack bytes given back before leave
		RetType  tp.Type
		Body     []Instr
		Strings  []string
	}

	Program struct {
		Externs []string
		Funcs   []*Func
	}
)

const (
	Eq Cond = "e"
	Ne Cond = "ne"
	Lt Cond = "l"
	Gt Cond = "g"
	Le Cond = "le"
	Ge Cond = "ge"

	Below   Cond = "b"
	Above   Cond = "a"
	BelowEq Cond = "be"
	AboveEq Cond = "ae"
)
