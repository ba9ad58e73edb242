package back

import (
	"context"

	"tlog.app/go/tlog"

	"github.com/sty00a4-code/lerp/compiler/asm"
	"github.com/sty00a4-code/lerp/compiler/ast"
	"github.com/sty00a4-code/lerp/compiler/tp"
)

type (
	// Compiler walks parsed nodes and assembles the program.
	// Intermediate values live in a fixed accumulator (a) with one
	// scratch register (b); nested evaluation spills to the stack.
	Compiler struct {
		prog   *asm.Program
		frames []*Frame
	}

	// Frame is the bookkeeping for one function under construction.
	// Only the top frame is mutable.
	Frame struct {
		Func     *asm.Func
		Scopes   []*Scope
		Reserved int
	}

	// Scope tracks local variable byte offsets.
	// No construct populates one yet.
	Scope struct {
		Locals map[string]int
		Offset int
	}
)

// CompileProgram compiles top level nodes into a single implicit
// main function and returns the assembled program.
func CompileProgram(ctx context.Context, nodes []ast.Node) (*asm.Program, error) {
	c := New()

	err := c.CompileProgram(ctx, nodes)
	if err != nil {
		return nil, err
	}

	return c.prog, nil
}

func New() *Compiler {
	return &Compiler{prog: &asm.Program{}}
}

func (c *Compiler) CompileProgram(ctx context.Context, nodes []ast.Node) error {
	c.pushFrame("main")

	for _, x := range nodes {
		_, err := c.compile(ctx, x)
		if err != nil {
			return err
		}
	}

	c.popFrame(ctx)

	return nil
}

func (c *Compiler) compile(ctx context.Context, x ast.Node) (tp.Type, error) {
	switch x := x.(type) {
	case ast.List:
		return c.compileList(ctx, x)
	case ast.Word:
		// variable lookup is not implemented yet
		return nil, Error{Pos: x.Pos, Err: NotFoundError{Word: x.Value}}
	case ast.Int:
		c.write(asm.Mov{
			Dst: asm.Reg{Name: asm.A, Size: asm.S32},
			Src: asm.Int(x.Value),
		})

		return tp.Int{Bits: 32, Signed: true}, nil
	case ast.Float:
		return nil, Error{Pos: x.Pos, Err: UnsupportedError{What: "float literal"}}
	case ast.String:
		size := len(x.Value) + 1 // trailing NUL

		name := c.newString(x.Value)

		c.write(asm.Push{Src: asm.Name(name)})

		return tp.Array{Elem: tp.Int{Bits: 8}, Len: size, Sized: true}, nil
	default:
		panic(x)
	}
}

func (c *Compiler) compileList(ctx context.Context, x ast.List) (tp.Type, error) {
	if len(x.Items) == 0 {
		return tp.None{}, nil
	}

	head := x.Items[0]
	rest := x.Items[1:]

	w, ok := head.(ast.Word)
	if !ok {
		return nil, Error{Pos: head.Position(), Err: InvalidHeadError{}}
	}

	switch w.Value {
	case "+":
		return c.compileAdd(ctx, x.Pos, rest)
	case "extern":
		return c.compileExtern(ctx, rest)
	default:
		return c.compileCall(ctx, w.Value, rest)
	}
}

// compileAdd is the binary operator protocol: the left operand is
// computed and spilled, the right is computed into the accumulator,
// then both are combined through the scratch register.
func (c *Compiler) compileAdd(ctx context.Context, pos ast.Pos, args []ast.Node) (tp.Type, error) {
	if len(args) != 2 {
		return nil, Error{Pos: pos, Err: ArgsError{Want: 2}}
	}

	left, right := args[0], args[1]

	ltyp, err := c.compile(ctx, left)
	if err != nil {
		return nil, err
	}

	size, ok := asm.SizeOf(ltyp)
	if !ok {
		return nil, Error{Pos: left.Position(), Err: InvalidTypeError{Type: ltyp}}
	}

	c.write(asm.Push{Src: asm.Reg{Name: asm.A, Size: size}})

	rtyp, err := c.compile(ctx, right)
	if err != nil {
		return nil, err
	}

	if rtyp != ltyp {
		return nil, Error{Pos: right.Position(), Err: TypeMismatchError{Want: ltyp, Got: rtyp}}
	}

	c.write(asm.Mov{
		Dst: asm.Reg{Name: asm.B, Size: size},
		Src: asm.Reg{Name: asm.A, Size: size},
	})
	c.write(asm.Pop{Dst: asm.Reg{Name: asm.A, Size: size}})
	c.write(asm.Add{
		Dst: asm.Reg{Name: asm.A, Size: size},
		Src: asm.Reg{Name: asm.B, Size: size},
	})

	return ltyp, nil
}

func (c *Compiler) compileExtern(ctx context.Context, args []ast.Node) (tp.Type, error) {
	for i := len(args) - 1; i >= 0; i-- {
		switch a := args[i].(type) {
		case ast.Word:
			c.newExtern(a.Value)
		case ast.String:
			c.newExtern(a.Value)
		default:
			// no valid non-name argument exists; compile it to
			// surface its own error, or report the type it has
			typ, err := c.compile(ctx, a)
			if err != nil {
				return nil, err
			}

			return nil, Error{Pos: a.Position(), Err: InvalidTypeError{Type: typ}}
		}
	}

	tlog.SpanFromContext(ctx).Printw("extern", "names", c.prog.Externs)

	return tp.None{}, nil
}

// compileCall lays the arguments on the stack rightmost first and
// restores the stack pointer afterwards; the caller cleans up.
func (c *Compiler) compileCall(ctx context.Context, fn string, args []ast.Node) (tp.Type, error) {
	bytes := 0

	for i := len(args) - 1; i >= 0; i-- {
		a := args[i]

		typ, err := c.compile(ctx, a)
		if err != nil {
			return nil, err
		}

		if arr, ok := typ.(tp.Array); ok {
			if !arr.Sized {
				return nil, Error{Pos: a.Position(), Err: UnknownSizeError{}}
			}

			size, ok := asm.SizeOf(arr.Elem)
			if !ok {
				return nil, Error{Pos: a.Position(), Err: InvalidTypeError{Type: arr.Elem}}
			}

			// compiling the argument already pushed its address
			bytes += size.Bytes() * arr.Len

			continue
		}

		size, ok := asm.SizeOf(typ)
		if !ok {
			return nil, Error{Pos: a.Position(), Err: InvalidTypeError{Type: typ}}
		}

		bytes += size.Bytes()

		c.write(asm.Push{Src: asm.Reg{Name: asm.A, Size: size}})
	}

	c.write(asm.Call{Func: fn})
	c.write(asm.Add{
		Dst: asm.Reg{Name: asm.SP, Size: asm.S32},
		Src: asm.Amount(bytes),
	})

	tlog.SpanFromContext(ctx).Printw("call", "func", fn, "args", len(args), "bytes", bytes)

	return tp.None{}, nil
}

func (c *Compiler) frame() *Frame {
	return c.frames[len(c.frames)-1]
}

func (c *Compiler) pushFrame(name string) {
	c.frames = append(c.frames, &Frame{
		Func:   &asm.Func{Name: name, RetType: tp.None{}},
		Scopes: []*Scope{{Locals: map[string]int{}}},
	})

	c.write(asm.Push{Src: asm.Reg{Name: asm.BP, Size: asm.S32}})
	c.write(asm.Mov{
		Dst: asm.Reg{Name: asm.BP, Size: asm.S32},
		Src: asm.Reg{Name: asm.SP, Size: asm.S32},
	})
}

func (c *Compiler) popFrame(ctx context.Context) {
	f := c.frame()

	if f.Reserved > 0 {
		c.write(asm.Add{
			Dst: asm.Reg{Name: asm.SP, Size: asm.S32},
			Src: asm.Amount(f.Reserved),
		})
	}

	c.write(asm.Leave{})
	c.write(asm.Ret{})

	c.frames = c.frames[:len(c.frames)-1]
	c.prog.Funcs = append(c.prog.Funcs, f.Func)

	tlog.SpanFromContext(ctx).Printw("func", "name", f.Func.Name, "instrs", len(f.Func.Body), "strings", len(f.Func.Strings))
}

func (c *Compiler) write(x asm.Instr) int {
	f := c.frame()

	addr := len(f.Func.Body)
	f.Func.Body = append(f.Func.Body, x)

	return addr
}

func (c *Compiler) newString(s string) string {
	f := c.frame()

	i := len(f.Func.Strings)
	f.Func.Strings = append(f.Func.Strings, s)

	return asm.StringName(f.Func.Name, i)
}

func (c *Compiler) newExtern(name string) {
	c.prog.Externs = append(c.prog.Externs, name)
}
