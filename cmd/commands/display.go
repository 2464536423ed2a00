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
	"io"
	"strconv"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"go.uber.org/multierr"

	"github.com/sboehler/teller/cmd/flags"
	"github.com/sboehler/teller/lib/account"
	"github.com/sboehler/teller/lib/config"
	"github.com/sboehler/teller/lib/ledger"
	"github.com/sboehler/teller/lib/table"
)

// withLedger opens the ledger, calls f and closes the ledger, which saves
// it a final time.
func withLedger(cmd *cobra.Command, lf *flags.LedgerFlags, f func(*ledger.Ledger, config.Config) error) (err error) {
	l, cfg, err := lf.Open(cmd)
	if err != nil {
		return err
	}
	defer func() {
		err = multierr.Append(err, l.Close())
	}()
	return f(l, cfg)
}

func printAccount(w io.Writer, a account.Account) error {
	_, err := fmt.Fprintf(w, "First Name:%s\nLast Name:%s\nAccount Number:%d\nBalance:%s\n",
		a.FirstName(), a.LastName(), a.Number(), a.Balance())
	return err
}

func printAccounts(w io.Writer, accounts []account.Account) error {
	for _, a := range accounts {
		if _, err := fmt.Fprintf(w, "Account %d\n", a.Number()); err != nil {
			return err
		}
		if err := printAccount(w, a); err != nil {
			return err
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
	return nil
}

func accountTable(accounts []account.Account) *table.Table {
	t := table.New(4)
	t.AddSeparatorRow()
	t.AddRow().
		AddText("Number", table.Left).
		AddText("First Name", table.Left).
		AddText("Last Name", table.Left).
		AddText("Balance", table.Right)
	t.AddSeparatorRow()
	total := decimal.Zero
	for _, a := range accounts {
		t.AddRow().
			AddText(strconv.FormatInt(int64(a.Number()), 10), table.Right).
			AddText(a.FirstName(), table.Left).
			AddText(a.LastName(), table.Left).
			AddBalance(a.Balance(), account.MinBalance)
		total = total.Add(a.Balance())
	}
	t.AddSeparatorRow()
	t.AddRow().AddText("Total", table.Left).AddEmpty().AddEmpty().AddNumber(total)
	t.AddSeparatorRow()
	return t
}
