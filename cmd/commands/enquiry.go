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

// CreateEnquiryCommand creates the command.
func CreateEnquiryCommand() *cobra.Command {
	var r enquiryRunner

	c := &cobra.Command{
		Use:   "enquiry NUMBER",
		Short: "show an account",
		Long:  `Show the holder and the balance of an account.`,

		Args: cobra.ExactArgs(1),

		Run: r.run,
	}
	r.setupFlags(c)
	return c
}

type enquiryRunner struct {
	flags.LedgerFlags
}

func (r *enquiryRunner) setupFlags(c *cobra.Command) {
	r.LedgerFlags.Setup(c)
}

func (r *enquiryRunner) run(cmd *cobra.Command, args []string) {
	if err := r.execute(cmd, args); err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), err)
		os.Exit(1)
	}
}

func (r *enquiryRunner) execute(cmd *cobra.Command, args []string) error {
	n, err := flags.ParseNumber(args[0])
	if err != nil {
		return err
	}
	return withLedger(cmd, &r.LedgerFlags, func(l *ledger.Ledger, _ config.Config) error {
		a, err := l.Enquire(n)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Your Account Details")
		return printAccount(cmd.OutOrStdout(), a)
	})
}
