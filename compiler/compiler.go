package compiler

import (
	"context"
	"os"

	"tlog.app/go/errors"
	"tlog.app/go/tlog"

	"github.com/sty00a4-code/lerp/compiler/back"
	"github.com/sty00a4-code/lerp/compiler/parse"
)

func CompileFile(ctx context.Context, name string) (obj []byte, err error) {
	text, err := os.ReadFile(name)
	if err != nil {
		return nil, errors.Wrap(err, "read file")
	}

	tlog.SpanFromContext(ctx).Printw("read file", "size", len(text), "name", name)

	return Compile(ctx, text)
}

func Compile(ctx context.Context, text []byte) (obj []byte, err error) {
	nodes, err := parse.Parse(ctx, text)
	if err != nil {
		return nil, errors.Wrap(err, "parse text")
	}

	p, err := back.CompileProgram(ctx, nodes)
	if err != nil {
		return nil, errors.Wrap(err, "compile")
	}

	return p.Render(nil), nil
}
