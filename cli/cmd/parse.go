package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/Mwandia/schemer/lang"
	"github.com/Mwandia/schemer/log"
)

// Parse parses an expression and reports the verdict on stdout.
//
// A successful parse prints "Found value". A failed parse prints "No match"
// followed by the syntax error. The verdict is the command output, so the
// process exits zero in both cases.
type Parse struct {
	Expr   []string `arg:"" help:"Expression to parse"               name:"expr" optional:""`
	Source string   `       help:"Source input file or '-' for stdin"                         short:"f"`
}

// Run executes the parse command.
func (p *Parse) Run(ctx context.Context) (err error) {
	_, cancel := context.WithCancelCause(ctx)

	defer func(err *error) {
		cancel(*err)
	}(&err)

	return p.report(ctx, stdout(ctx))
}

// report parses the configured input and writes the verdict to w.
func (p *Parse) report(ctx context.Context, w io.Writer) error {
	ast, err := p.parseInput(ctx)

	switch {
	case err == nil:
		log.DebugContext(ctx, "parse ok",
			slog.String("value", ast.String()),
		)

		_, err = fmt.Fprintln(w, "Found value")

		return err

	case isSyntaxError(err):
		log.DebugContext(ctx, "parse failed", slog.Any("error", err))

		_, werr := fmt.Fprintf(w, "No match: %v\n", err)

		return werr

	default:
		// Input could not be read at all
		return err
	}
}

// parseInput parses the expression from positional arguments, or from the
// source file or stdin when no arguments were given.
func (p *Parse) parseInput(ctx context.Context) (*lang.Expression, error) {
	if len(p.Expr) > 0 {
		return lang.ParseString(ctx, strings.Join(p.Expr, " "))
	}

	var file *os.File

	switch p.Source {
	case "":
		return nil, ErrNoInput

	case "-":
		file = os.Stdin

	default:
		var err error

		file, err = os.Open(p.Source)
		if err != nil {
			return nil, ErrOpenSource.Wrap(err)
		}
		defer file.Close()
	}

	return lang.ParseReader(ctx, file)
}

// isSyntaxError reports whether err is a parse failure rather than an input
// error.
func isSyntaxError(err error) bool {
	var se *lang.SyntaxError

	return errors.As(err, &se)
}
