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
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sboehler/teller/cmd/flags"
	"github.com/sboehler/teller/lib/config"
	"github.com/sboehler/teller/lib/ledger"
)

// CreateOpenCommand creates the command.
func CreateOpenCommand() *cobra.Command {
	var r openRunner

	c := &cobra.Command{
		Use:   "open FIRST_NAME LAST_NAME",
		Short: "open an account",
		Long:  `Open an account for the given holder. The initial balance is not checked against the minimum balance.`,

		Args: cobra.ExactArgs(2),

		Run: r.run,
	}
	r.setupFlags(c)
	return c
}

type openRunner struct {
	flags.LedgerFlags
	balance flags.DecimalFlag
}

func (r *openRunner) setupFlags(c *cobra.Command) {
	r.LedgerFlags.Setup(c)
	c.Flags().Var(&r.balance, "balance", "initial balance")
}

func (r *openRunner) run(cmd *cobra.Command, args []string) {
	if err := r.execute(cmd, args); err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), err)
		os.Exit(1)
	}
}

func (r *openRunner) execute(cmd *cobra.Command, args []string) error {
	return withLedger(cmd, &r.LedgerFlags, func(l *ledger.Ledger, _ config.Config) error {
		a, err := l.Open(args[0], args[1], r.balance.Value())
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Congratulation Account is Created")
		return printAccount(cmd.OutOrStdout(), a)
	})
}
