package cmd

import (
	"context"
	"log/slog"
	"os"

	"github.com/Mwandia/schemer/lang"
)

// Fmt parses an expression and renders it in the chosen format.
type Fmt struct {
	Native Native `cmd:"" default:"withargs" help:"Format in canonical literal syntax (default)."`
	JSON   JSON   `cmd:""                    help:"Format as JSON."`
	YAML   YAML   `cmd:""                    help:"Format as YAML."`
	AST    AST    `cmd:""                    help:"Format as abstract syntax tree."`
}

// parseSource parses an expression from the given source path, reading stdin
// when the path is "-".
func parseSource(ctx context.Context, source string) (*lang.Expression, error) {
	var file *os.File

	if source == "-" {
		file = os.Stdin
	} else {
		var err error

		file, err = os.Open(source)
		if err != nil {
			return nil, ErrOpenSource.Wrap(err)
		}
		defer file.Close()
	}

	return lang.ParseReader(ctx, file)
}

// Native formats input in canonical literal syntax.
type Native struct {
	Indent int `default:"2" help:"Indent width for formatted output" short:"i"`

	Source string `arg:"" default:"-" help:"Source input file or '-' for default stdin." name:"source"`
}

// Run executes the fmt command.
func (f *Native) Run(ctx context.Context) (err error) {
	_, cancel := context.WithCancelCause(ctx)

	defer func(err *error) {
		cancel(*err)
	}(&err)

	ast, err := parseSource(ctx, f.Source)
	if err != nil {
		return lang.WrapError(err).
			With(slog.String("format", "native"))
	}

	return ast.Format(stdout(ctx), f.Indent)
}

// JSON reads input, parses it, and outputs as JSON.
type JSON struct {
	Indent int `default:"2" help:"Indent width for JSON output" short:"i"`

	Source string `arg:"" default:"-" help:"Source input file or '-' for default stdin." name:"source"`
}

// Run executes the json command.
func (j *JSON) Run(ctx context.Context) (err error) {
	_, cancel := context.WithCancelCause(ctx)

	defer func(err *error) {
		cancel(*err)
	}(&err)

	ast, err := parseSource(ctx, j.Source)
	if err != nil {
		return lang.WrapError(err).
			With(slog.String("format", "json"))
	}

	return ast.FormatJSON(stdout(ctx), j.Indent)
}

// YAML reads input, parses it, and outputs as YAML.
type YAML struct {
	Indent int `default:"2" help:"Indent width for YAML output" short:"i"`

	Source string `arg:"" default:"-" help:"Source input file or '-' for default stdin." name:"source"`
}

// Run executes the yaml command.
func (y *YAML) Run(ctx context.Context) (err error) {
	_, cancel := context.WithCancelCause(ctx)

	defer func(err *error) {
		cancel(*err)
	}(&err)

	ast, err := parseSource(ctx, y.Source)
	if err != nil {
		return lang.WrapError(err).
			With(slog.String("format", "yaml"))
	}

	return ast.FormatYAML(stdout(ctx), y.Indent)
}

// AST formats input as an abstract syntax tree representation.
type AST struct {
	Source string `arg:"" default:"-" help:"Source input file or '-' for default stdin." name:"source"`
}

// Run executes the ast command.
func (a *AST) Run(ctx context.Context) (err error) {
	_, cancel := context.WithCancelCause(ctx)

	defer func(err *error) {
		cancel(*err)
	}(&err)

	ast, err := parseSource(ctx, a.Source)
	if err != nil {
		return lang.WrapError(err).
			With(slog.String("format", "ast"))
	}

	return ast.Print(stdout(ctx))
}
