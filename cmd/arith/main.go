package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/alecthomas/kong"
	"github.com/fatih/color"

	"github.com/zephyrtronium/arith"
)

// CLI is the command line of arith.
var CLI struct {
	Prec    uint     `help:"Precision in bits of float results." short:"p" default:"53"`
	Echo    bool     `help:"Print parse trees before results."`
	NoColor bool     `help:"Disable colored diagnostics."`
	Exprs   []string `arg:"" help:"Expressions to evaluate."`
}

var errFailed = errors.New("some expressions failed")

func main() {
	kctx := kong.Parse(&CLI,
		kong.Name("arith"),
		kong.Description("Evaluate arithmetic expressions."),
	)
	if CLI.Prec == 0 {
		kctx.Fatalf("precision must be positive")
	}
	if CLI.NoColor {
		color.NoColor = true
	}
	if err := evalAll(os.Stdout, os.Stderr, CLI.Exprs, CLI.Echo, CLI.Prec); err != nil {
		os.Exit(1)
	}
}

// evalAll evaluates each expression, writing results to stdout and rendered
// diagnostics to stderr. The error is non-nil if any expression failed.
func evalAll(stdout, stderr io.Writer, exprs []string, echo bool, prec uint) error {
	diag := color.New(color.FgRed)
	var failed bool
	for i, src := range exprs {
		name := "<arg " + strconv.Itoa(i+1) + ">"
		r, err := eval(stdout, src, name, echo, prec)
		if err != nil {
			failed = true
			diag.Fprintln(stderr, arith.Render(err))
			continue
		}
		fmt.Fprintln(stdout, r)
	}
	if failed {
		return errFailed
	}
	return nil
}

func eval(stdout io.Writer, src, name string, echo bool, prec uint) (arith.Number, error) {
	if !echo {
		return arith.Run(src, name, arith.Prec(prec))
	}
	toks, err := arith.Lex(src, name)
	if err != nil {
		return arith.Number{}, err
	}
	e, err := arith.Parse(toks)
	if err != nil {
		return arith.Number{}, err
	}
	fmt.Fprintf(stdout, "%v : ", e)
	return e.Eval(arith.NewContext(arith.ProgramName, arith.Prec(prec)))
}
