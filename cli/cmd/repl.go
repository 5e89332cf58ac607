package cmd

import (
	"context"

	"github.com/Mwandia/schemer/cli/cmd/repl"
	"github.com/Mwandia/schemer/log"
)

// Repl starts an interactive session that parses expressions as they are
// submitted.
type Repl struct {
	Cache string `default:"${cache}" help:"Cache directory for session history" type:"path"`
}

// Run executes the repl command.
func (r *Repl) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) {
		cancel(*err)
	}(&err)

	return repl.Run(ctx, r.Cache, log.Default())
}
