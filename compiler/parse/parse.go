package parse

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"tlog.app/go/errors"
	"tlog.app/go/loc"
	"tlog.app/go/tlog"

	"github.com/sty00a4-code/lerp/compiler/ast"
)

type (
	// State is a single pass scanner over the source text
	// with one byte of lookahead.
	State struct {
		b []byte

		i    int
		line int
		col  int
	}

	// Error is a parse failure tagged with the source position
	// that triggered it.
	Error struct {
		Pos ast.Pos
		Err error
	}

	UnexpectedError struct {
		Char byte
	}

	UnclosedError struct {
		Char byte
	}

	UnclosedStringError struct{}
)

func ParseFile(ctx context.Context, name string) ([]ast.Node, error) {
	text, err := os.ReadFile(name)
	if err != nil {
		return nil, errors.Wrap(err, "read file")
	}

	return Parse(ctx, text)
}

func Parse(ctx context.Context, text []byte) ([]ast.Node, error) {
	return New(text).Parse(ctx)
}

func New(text []byte) *State {
	return &State{b: text}
}

func (s *State) Parse(ctx context.Context) (nodes []ast.Node, err error) {
	for {
		x, ok, err := s.parseNext(ctx)
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}

		nodes = append(nodes, x)
	}

	tlog.SpanFromContext(ctx).Printw("parsed", "nodes", len(nodes))

	return nodes, nil
}

func (s *State) parseNext(ctx context.Context) (x ast.Node, ok bool, err error) {
	if tr := tlog.SpanFromContext(ctx); tr.If("next_node") {
		defer func(st int) {
			tr.Printw("next node", "st", st, "i", s.i, "node", x, "err", err, "from", loc.Callers(1, 3))
		}(s.i)
	}

	s.skipSpaces()

	pos := s.pos()

	c, ok := s.next()
	if !ok {
		return nil, false, nil
	}

	switch {
	case c == '(':
		return s.parseList(ctx, pos)
	case c == '"':
		return s.parseString(pos)
	case c >= '0' && c <= '9':
		return s.parseNumber(pos)
	case !reserved(c):
		return s.parseWord(pos), true, nil
	default:
		return nil, false, Error{Pos: pos, Err: UnexpectedError{Char: c}}
	}
}

func (s *State) parseList(ctx context.Context, pos ast.Pos) (ast.Node, bool, error) {
	x := ast.List{Base: ast.Base{Pos: pos}}

	for {
		c, ok := s.peek()
		if !ok || c == ')' {
			break
		}

		it, ok, err := s.parseNext(ctx)
		if err != nil {
			return nil, false, err
		}
		if !ok {
			return nil, false, Error{Pos: pos, Err: UnclosedError{Char: '('}}
		}

		x.Items = append(x.Items, it)

		s.skipSpaces()
	}

	if c, ok := s.next(); !ok || c != ')' {
		return nil, false, Error{Pos: pos, Err: UnclosedError{Char: '('}}
	}

	return x, true, nil
}

func (s *State) parseString(pos ast.Pos) (ast.Node, bool, error) {
	st := s.i

	for {
		c, ok := s.peek()
		if !ok || c == '"' {
			break
		}

		s.next()
	}

	val := string(s.b[st:s.i])

	if c, ok := s.next(); !ok || c != '"' {
		return nil, false, Error{Pos: s.pos(), Err: UnclosedStringError{}}
	}

	return ast.String{Base: ast.Base{Pos: pos}, Value: val}, true, nil
}

func (s *State) parseNumber(pos ast.Pos) (ast.Node, bool, error) {
	st := s.i - 1 // first digit is consumed already

	s.skipDigits()

	if c, ok := s.peek(); ok && c == '.' {
		s.next()
		s.skipDigits()

		v, err := strconv.ParseFloat(string(s.b[st:s.i]), 32)
		if err != nil {
			return nil, false, Error{Pos: pos, Err: errors.Wrap(err, "parse float")}
		}

		return ast.Float{Base: ast.Base{Pos: pos}, Value: float32(v)}, true, nil
	}

	v, err := strconv.ParseInt(string(s.b[st:s.i]), 10, 32)
	if err != nil {
		return nil, false, Error{Pos: pos, Err: errors.Wrap(err, "parse int")}
	}

	return ast.Int{Base: ast.Base{Pos: pos}, Value: int32(v)}, true, nil
}

func (s *State) parseWord(pos ast.Pos) ast.Node {
	st := s.i - 1

	for {
		c, ok := s.peek()
		if !ok || space(c) || reserved(c) {
			break
		}

		s.next()
	}

	return ast.Word{Base: ast.Base{Pos: pos}, Value: string(s.b[st:s.i])}
}

func (s *State) next() (byte, bool) {
	if s.i == len(s.b) {
		return 0, false
	}

	c := s.b[s.i]
	s.i++

	if c == '\n' {
		s.line++
		s.col = 0
	} else {
		s.col++
	}

	return c, true
}

func (s *State) peek() (byte, bool) {
	if s.i == len(s.b) {
		return 0, false
	}

	return s.b[s.i], true
}

func (s *State) pos() ast.Pos {
	return ast.Pos{Line: s.line, Col: s.col}
}

func (s *State) skipSpaces() {
	for {
		c, ok := s.peek()
		if !ok || !space(c) {
			return
		}

		s.next()
	}
}

func (s *State) skipDigits() {
	for {
		c, ok := s.peek()
		if !ok || c < '0' || c > '9' {
			return
		}

		s.next()
	}
}

func space(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f'
}

func reserved(c byte) bool {
	return c == '(' || c == ')' || c == '"'
}

func (e Error) Error() string {
	return fmt.Sprintf("%v: %v", e.Pos, e.Err)
}

func (e Error) Unwrap() error { return e.Err }

func (e UnexpectedError) Error() string {
	return fmt.Sprintf("unexpected %q", rune(e.Char))
}

func (e UnclosedError) Error() string {
	return fmt.Sprintf("unclosed %q", rune(e.Char))
}

func (e UnclosedStringError) Error() string {
	return "unclosed string"
}
