package ast

import (
	"fmt"
	"strconv"
	"strings"
)

type (
	// Pos is a source position. Line and Col are zero based,
	// diagnostics render them one based.
	Pos struct {
		Line int
		Col  int
	}

	Base struct {
		Pos Pos
	}

	// Node is a positioned symbolic expression.
	// It is one of List, Word, Int, Float or String.
	Node interface {
		Position() Pos
		String() string
	}

	List struct {
		Base `tlog:",embed"`

		Items []Node
	}

	Word struct {
		Base `tlog:",embed"`

		Value string
	}

	Int struct {
		Base `tlog:",embed"`

		Value int32
	}

	Float struct {
		Base `tlog:",embed"`

		Value float32
	}

	String struct {
		Base `tlog:",embed"`

		Value string
	}
)

func (b Base) Position() Pos { return b.Pos }

func (p Pos) String() string {
	return fmt.Sprintf("%d:%d", p.Line+1, p.Col+1)
}

func (x List) String() string {
	l := make([]string, len(x.Items))

	for i, it := range x.Items {
		l[i] = it.String()
	}

	return "(" + strings.Join(l, " ") + ")"
}

func (x Word) String() string { return x.Value }

func (x Int) String() string { return strconv.FormatInt(int64(x.Value), 10) }

func (x Float) String() string {
	s := strconv.FormatFloat(float64(x.Value), 'f', -1, 32)

	if !strings.Contains(s, ".") {
		s += ".0" // keep it a float when parsed back
	}

	return s
}

func (x String) String() string { return strconv.Quote(x.Value) }
