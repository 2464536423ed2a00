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

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/sboehler/teller/cmd/flags"
	"github.com/sboehler/teller/lib/account"
	"github.com/sboehler/teller/lib/config"
	"github.com/sboehler/teller/lib/ledger"
)

// CreateDepositCommand creates the command.
func CreateDepositCommand() *cobra.Command {
	r := transferRunner{
		message: "Amount is Deposited",
		op:      (*ledger.Ledger).Deposit,
	}

	c := &cobra.Command{
		Use:   "deposit NUMBER AMOUNT",
		Short: "deposit an amount",
		Long:  `Deposit an amount into an account.`,

		Args: cobra.ExactArgs(2),

		Run: r.run,
	}
	r.setupFlags(c)
	return c
}

// CreateWithdrawCommand creates the command.
func CreateWithdrawCommand() *cobra.Command {
	r := transferRunner{
		message: "Amount Withdrawn",
		op:      (*ledger.Ledger).Withdraw,
	}

	c := &cobra.Command{
		Use:   "withdraw NUMBER AMOUNT",
		Short: "withdraw an amount",
		Long:  `Withdraw an amount from an account. The balance must not drop below the minimum balance.`,

		Args: cobra.ExactArgs(2),

		Run: r.run,
	}
	r.setupFlags(c)
	return c
}

type transferRunner struct {
	flags.LedgerFlags
	message string
	op      func(*ledger.Ledger, account.Number, decimal.Decimal) (account.Account, error)
}

func (r *transferRunner) setupFlags(c *cobra.Command) {
	r.LedgerFlags.Setup(c)
}

func (r *transferRunner) run(cmd *cobra.Command, args []string) {
	if err := r.execute(cmd, args); err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), err)
		os.Exit(1)
	}
}

func (r *transferRunner) execute(cmd *cobra.Command, args []string) error {
	n, err := flags.ParseNumber(args[0])
	if err != nil {
		return err
	}
	amount, err := flags.ParseAmount(args[1])
	if err != nil {
		return err
	}
	return withLedger(cmd, &r.LedgerFlags, func(l *ledger.Ledger, _ config.Config) error {
		a, err := r.op(l, n, amount)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), r.message)
		return printAccount(cmd.OutOrStdout(), a)
	})
}
