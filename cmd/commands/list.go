// Copyright 2024 Silvio Böhler
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package commands

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sboehler/teller/cmd/flags"
	"github.com/sboehler/teller/lib/config"
	"github.com/sboehler/teller/lib/ledger"
	"github.com/sboehler/teller/lib/table"
)

// CreateListCommand creates the command.
func CreateListCommand() *cobra.Command {
	var r listRunner

	c := &cobra.Command{
		Use:   "list",
		Short: "list all accounts",
		Long:  `List all accounts ordered by account number. Balances below the minimum balance are highlighted.`,

		Args: cobra.NoArgs,

		Run: r.run,
	}
	r.setupFlags(c)
	return c
}

type listRunner struct {
	flags.LedgerFlags
	csv bool
}

func (r *listRunner) setupFlags(c *cobra.Command) {
	r.LedgerFlags.Setup(c)
	c.Flags().BoolVar(&r.csv, "csv", false, "render as CSV")
}

func (r *listRunner) run(cmd *cobra.Command, args []string) {
	if err := r.execute(cmd, args); err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), err)
		os.Exit(1)
	}
}

func (r *listRunner) execute(cmd *cobra.Command, args []string) error {
	return withLedger(cmd, &r.LedgerFlags, func(l *ledger.Ledger, cfg config.Config) error {
		out := bufio.NewWriter(cmd.OutOrStdout())
		defer out.Flush()
		t := accountTable(l.List())
		if r.csv {
			var renderer table.CSVRenderer
			return renderer.Render(t, out)
		}
		renderer := table.TextRenderer{
			Color: cfg.Color,
			Round: cfg.Round,
		}
		return renderer.Render(t, out)
	})
}
