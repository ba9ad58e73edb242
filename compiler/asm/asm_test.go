package asm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sty00a4-code/lerp/compiler/tp"
)

func TestRegSpelling(t *testing.T) {
	for r, want := range map[Reg]string{
		{A, S64}:   "rax",
		{A, S32}:   "eax",
		{A, S16}:   "ax",
		{A, S8}:    "al",
		{B, S64}:   "rbx",
		{B, S32}:   "ebx",
		{C, S16}:   "cx",
		{D, S8}:    "dl",
		{SP, S64}:  "rsp",
		{SP, S32}:  "esp",
		{SP, S16}:  "sp",
		{SP, S8}:   "spl",
		{BP, S32}:  "ebp",
		{SI, S8}:   "sil",
		{DI, S64}:  "rdi",
		{R8, S64}:  "r8",
		{R8, S32}:  "r8d",
		{R8, S16}:  "r8w",
		{R8, S8}:   "r8b",
		{R15, S64}: "r15",
		{R15, S8}:  "r15b",
	} {
		assert.Equal(t, want, r.String())
	}
}

func TestParseReg(t *testing.T) {
	for name := A; name <= R15; name++ {
		for _, size := range []Size{S64, S32, S16, S8} {
			r := Reg{Name: name, Size: size}

			back, err := ParseReg(r.String())
			require.NoError(t, err, "%v", r)
			assert.Equal(t, r, back)
		}
	}

	_, err := ParseReg("xyz")
	require.Error(t, err)
}

func TestSizeOf(t *testing.T) {
	for typ, want := range map[tp.Type]Size{
		tp.Int{Bits: 8}:                              S8,
		tp.Int{Bits: 16, Signed: true}:               S16,
		tp.Int{Bits: 32, Signed: true}:               S32,
		tp.Int{Bits: 64}:                             S64,
		tp.Int{}:                                     S32, // word size maps to 32 bits
		tp.Int{Signed: true}:                         S32,
		tp.Float{Bits: 32}:                           S32,
		tp.Float{Bits: 64}:                           S64,
		tp.Array{Elem: tp.Int{Bits: 8}, Len: 3, Sized: true}: S8,
	} {
		got, ok := SizeOf(typ)
		require.True(t, ok, "%v", typ)
		assert.Equal(t, want, got, "%v", typ)
	}

	for _, typ := range []tp.Type{tp.None{}, tp.Never{}, tp.Array{Elem: tp.None{}}} {
		_, ok := SizeOf(typ)
		assert.False(t, ok, "%v", typ)
	}
}

func TestInstrRender(t *testing.T) {
	for _, tc := range []struct {
		x    Instr
		want string
	}{
		{Nop{}, "\tnop"},
		{Mov{Dst: Reg{A, S32}, Src: Int(1)}, "\tmov eax, $1"},
		{Mov{Dst: Reg{BP, S32}, Src: Reg{SP, S32}}, "\tmov ebp, esp"},
		{Push{Src: Reg{A, S32}}, "\tpush eax"},
		{Push{Src: Name("main_c0")}, "\tpush main_c0"},
		{Pop{Dst: Reg{A, S16}}, "\tpop ax"},
		{Call{Func: "foo"}, "\tcall foo"},
		{Leave{}, "\tleave"},
		{Ret{}, "\tret"},
		{Label("loop"), ".loop:"},
		{Jmp{Label: "loop"}, "\tjmp loop"},
		{JmpIf{Cond: Ne, Label: "done"}, "\tjne done"},
		{JmpIf{Cond: AboveEq, Label: "done"}, "\tjae done"},
		{Cmp{A: Reg{A, S32}, B: Int(0)}, "\tcmp eax, $0"},
		{Add{Dst: Reg{SP, S32}, Src: Amount(3)}, "\tadd esp, 3"},
		{Mul{Src: Reg{B, S32}}, "\tmul ebx"},
		{Div{Src: Reg{B, S32}}, "\tdiv ebx"},
	} {
		assert.Equal(t, tc.want, string(AppendInstr(nil, tc.x)), "%T", tc.x)
	}
}

func TestOperandRender(t *testing.T) {
	for _, tc := range []struct {
		x    Src
		want string
	}{
		{Mem{Size: S8, At: 1024}, "BYTE PTR [1024]"},
		{MemReg{Size: S32, Reg: Reg{BP, S64}}, "DWORD PTR [rbp]"},
		{MemOff{Size: S64, Reg: Reg{SI, S64}, Off: 2, Scale: 8}, "QWORD PTR [rsi+2*8]"},
		{Int(-5), "$-5"},
		{Name("puts"), "puts"},
		{Amount(16), "16"},
	} {
		assert.Equal(t, tc.want, string(appendOperand(nil, tc.x)))
	}
}

func TestProgramRender(t *testing.T) {
	p := &Program{
		Externs: []string{"b", "a"},
		Funcs: []*Func{
			{
				Name: "main",
				Body: []Instr{
					Push{Src: Reg{BP, S32}},
					Mov{Dst: Reg{BP, S32}, Src: Reg{SP, S32}},
					Leave{},
					Ret{},
				},
			},
		},
	}

	assert.Equal(t, `extern b
extern a
global main
section .text
main:
	push ebp
	mov ebp, esp
	leave
	ret
`, p.String())
}

// Every pooled string directive goes on its own line.
func TestProgramRenderStringPool(t *testing.T) {
	p := &Program{
		Funcs: []*Func{
			{
				Name:    "main",
				Body:    []Instr{Ret{}},
				Strings: []string{"hi", "there"},
			},
		},
	}

	assert.Equal(t, "global main\nsection .text\nmain:\n\tret\nmain_c0 db `hi`, 0\nmain_c1 db `there`, 0\n", p.String())
}
