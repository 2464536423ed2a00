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

// CreateCloseCommand creates the command.
func CreateCloseCommand() *cobra.Command {
	var r closeRunner

	c := &cobra.Command{
		Use:   "close NUMBER",
		Short: "close an account",
		Long:  `Close an account. Its number is never assigned again.`,

		Args: cobra.ExactArgs(1),

		Run: r.run,
	}
	r.setupFlags(c)
	return c
}

type closeRunner struct {
	flags.LedgerFlags
}

func (r *closeRunner) setupFlags(c *cobra.Command) {
	r.LedgerFlags.Setup(c)
}

func (r *closeRunner) run(cmd *cobra.Command, args []string) {
	if err := r.execute(cmd, args); err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), err)
		os.Exit(1)
	}
}

func (r *closeRunner) execute(cmd *cobra.Command, args []string) error {
	n, err := flags.ParseNumber(args[0])
	if err != nil {
		return err
	}
	return withLedger(cmd, &r.LedgerFlags, func(l *ledger.Ledger, _ config.Config) error {
		a, err := l.CloseAccount(n)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Account Deleted")
		if err := printAccount(cmd.OutOrStdout(), a); err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), "Account is Closed")
		return err
	})
}
