package asm

import (
	"fmt"

	"github.com/nikandfor/hacked/hfmt"
)

// Render appends the program text: extern lines, the fixed header,
// then each function in the order they were finished.
func (p *Program) Render(b []byte) []byte {
	for _, name := range p.Externs {
		b = hfmt.Appendf(b, "extern %s\n", name)
	}

	b = append(b, "global main\n"...)
	b = append(b, "section .text\n"...)

	for _, f := range p.Funcs {
		b = f.Render(b)
	}

	return b
}

func (p *Program) String() string {
	return string(p.Render(nil))
}

func (f *Func) Render(b []byte) []byte {
	b = hfmt.Appendf(b, "%s:\n", f.Name)

	for _, x := range f.Body {
		b = AppendInstr(b, x)
		b = append(b, '\n')
	}

	for i, s := range f.Strings {
		b = hfmt.Appendf(b, "%s db `%s`, 0\n", StringName(f.Name, i), s)
	}

	return b
}

// StringName is the symbol of the i-th pooled string constant of fn.
func StringName(fn string, i int) string {
	return fmt.Sprintf("%s_c%d", fn, i)
}

func AppendInstr(b []byte, x Instr) []byte {
	switch x := x.(type) {
	case Nop:
		b = append(b, "\tnop"...)
	case Mov:
		b = append(b, "\tmov "...)
		b = appendOperand(b, x.Dst)
		b = append(b, ", "...)
		b = appendOperand(b, x.Src)
	case Push:
		b = append(b, "\tpush "...)
		b = appendOperand(b, x.Src)
	case Pop:
		b = append(b, "\tpop "...)
		b = appendOperand(b, x.Dst)
	case Call:
		b = hfmt.Appendf(b, "\tcall %s", x.Func)
	case Leave:
		b = append(b, "\tleave"...)
	case Ret:
		b = append(b, "\tret"...)
	case Label:
		b = hfmt.Appendf(b, ".%s:", string(x))
	case Jmp:
		b = hfmt.Appendf(b, "\tjmp %s", x.Label)
	case JmpIf:
		b = hfmt.Appendf(b, "\tj%s %s", string(x.Cond), x.Label)
	case Cmp:
		b = append(b, "\tcmp "...)
		b = appendOperand(b, x.A)
		b = append(b, ", "...)
		b = appendOperand(b, x.B)
	case Add:
		b = append(b, "\tadd "...)
		b = appendOperand(b, x.Dst)
		b = append(b, ", "...)
		b = appendOperand(b, x.Src)
	case Mul:
		b = append(b, "\tmul "...)
		b = appendOperand(b, x.Src)
	case Div:
		b = append(b, "\tdiv "...)
		b = appendOperand(b, x.Src)
	default:
		panic(x)
	}

	return b
}

func appendOperand(b []byte, x Src) []byte {
	switch x := x.(type) {
	case Reg:
		b = append(b, x.String()...)
	case Mem:
		b = hfmt.Appendf(b, "%s PTR [%d]", x.Size.Keyword(), x.At)
	case MemReg:
		b = hfmt.Appendf(b, "%s PTR [%v]", x.Size.Keyword(), x.Reg)
	case MemOff:
		b = hfmt.Appendf(b, "%s PTR [%v+%d*%d]", x.Size.Keyword(), x.Reg, x.Off, x.Scale)
	case Int:
		b = hfmt.Appendf(b, "$%d", int32(x))
	case Name:
		b = append(b, x...)
	case Amount:
		b = hfmt.Appendf(b, "%d", int(x))
	default:
		panic(x)
	}

	return b
}
