package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"
	"nikand.dev/go/cli"
	"tlog.app/go/errors"
	"tlog.app/go/tlog"

	"github.com/sty00a4-code/lerp/compiler"
	"github.com/sty00a4-code/lerp/compiler/parse"
)

func main() {
	compileCmd := &cli.Command{
		Name:        "compile",
		Description: "compile a source file into assembly text",
		Action:      compileAct,
		Args:        cli.Args{},
	}

	parseCmd := &cli.Command{
		Name:        "parse",
		Description: "parse source files and print the node trees",
		Action:      parseAct,
		Args:        cli.Args{},
	}

	replCmd := &cli.Command{
		Name:        "repl",
		Description: "compile expressions interactively",
		Action:      replAct,
	}

	app := &cli.Command{
		Name:        "lerp",
		Description: "lerp is a compiler from s-expressions to x86-64 assembly",
		Commands: []*cli.Command{
			compileCmd,
			parseCmd,
			replCmd,
		},
	}

	cli.RunAndExit(app, os.Args, os.Environ())
}

func compileAct(c *cli.Command) (err error) {
	ctx := context.Background()
	ctx = tlog.ContextWithSpan(ctx, tlog.Root())

	if len(c.Args) != 2 {
		return errors.New("usage: lerp compile <input> <output>")
	}

	input, output := c.Args[0], c.Args[1]

	obj, err := compiler.CompileFile(ctx, input)
	if err != nil {
		return errors.Wrap(err, "%v", input)
	}

	err = os.WriteFile(output, obj, 0o644)
	if err != nil {
		return errors.Wrap(err, "write %v", output)
	}

	return nil
}

func parseAct(c *cli.Command) (err error) {
	ctx := context.Background()
	ctx = tlog.ContextWithSpan(ctx, tlog.Root())

	for _, a := range c.Args {
		nodes, err := parse.ParseFile(ctx, a)
		if err != nil {
			return errors.Wrap(err, "%v", a)
		}

		for _, x := range nodes {
			fmt.Printf("%v\n", x)
		}
	}

	return nil
}

func replAct(c *cli.Command) (err error) {
	ctx := context.Background()
	ctx = tlog.ContextWithSpan(ctx, tlog.Root())

	home, _ := os.UserHomeDir()
	hist := filepath.Join(home, ".lerp_history")

	ln := liner.NewLiner()
	defer ln.Close()

	ln.SetCtrlCAborts(true)

	if f, e := os.Open(hist); e == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}

	defer func() {
		if f, e := os.Create(hist); e == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	for {
		line, err := ln.Prompt("lerp> ")
		if errors.Is(err, io.EOF) || errors.Is(err, liner.ErrPromptAborted) {
			fmt.Println()
			return nil
		}
		if err != nil {
			return errors.Wrap(err, "prompt")
		}

		if strings.TrimSpace(line) == "" {
			continue
		}

		obj, err := compiler.Compile(ctx, []byte(line))
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			continue
		}

		fmt.Printf("%s", obj)

		ln.AppendHistory(line)
	}
}
