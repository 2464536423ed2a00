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
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/sboehler/teller/cmd/flags"
	"github.com/sboehler/teller/lib/account"
	"github.com/sboehler/teller/lib/config"
	"github.com/sboehler/teller/lib/ledger"
)

// CreateMenuCommand creates the interactive menu command.
func CreateMenuCommand() *cobra.Command {
	var r menuRunner

	c := &cobra.Command{
		Use:   "menu",
		Short: "interactive menu",
		Long: `Manage accounts through an interactive menu. Input is read word by word,
so names must not contain spaces. Any choice other than 1 to 7 ends the session.`,

		Args: cobra.NoArgs,

		Run: r.run,
	}
	r.setupFlags(c)
	return c
}

type menuRunner struct {
	flags.LedgerFlags
}

func (r *menuRunner) setupFlags(c *cobra.Command) {
	r.LedgerFlags.Setup(c)
}

func (r *menuRunner) run(cmd *cobra.Command, args []string) {
	if err := r.execute(cmd, args); err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), err)
		os.Exit(1)
	}
}

func (r *menuRunner) execute(cmd *cobra.Command, args []string) error {
	return withLedger(cmd, &r.LedgerFlags, func(l *ledger.Ledger, cfg config.Config) error {
		in := bufio.NewScanner(cmd.InOrStdin())
		in.Split(bufio.ScanWords)
		red := color.New(color.FgRed)
		if cfg.Color {
			red.EnableColor()
		} else {
			red.DisableColor()
		}
		s := &session{
			ledger: l,
			in:     in,
			out:    cmd.OutOrStdout(),
			errOut: cmd.ErrOrStderr(),
			red:    red,
		}
		return s.loop()
	})
}

const menu = "\n\tSelect one option below " +
	"\n\t1 Open an Account" +
	"\n\t2 Balance Enquiry" +
	"\n\t3 Deposit" +
	"\n\t4 Withdrawal" +
	"\n\t5 Close an Account" +
	"\n\t6 Show All Accounts" +
	"\n\t7 Quit" +
	"\nEnter your choice: "

// errEndOfInput signals that the input ended in the middle of an operation.
var errEndOfInput = errors.New("end of input")

type session struct {
	ledger      *ledger.Ledger
	in          *bufio.Scanner
	out, errOut io.Writer
	red         *color.Color
}

func (s *session) loop() error {
	fmt.Fprintln(s.out, "***Banking System***")
	for {
		choice, err := s.read(menu)
		if err != nil {
			return s.endOfInput(err)
		}
		switch choice {
		case "1":
			err = s.open()
		case "2":
			err = s.enquire()
		case "3":
			err = s.transfer("\nAmount is Deposited\n", s.ledger.Deposit)
		case "4":
			err = s.transfer("\nAmount Withdrawn\n", s.ledger.Withdraw)
		case "5":
			err = s.close()
		case "6":
			err = printAccounts(s.out, s.ledger.List())
		case "7":
			return nil
		default:
			fmt.Fprint(s.out, "\nEnter correct choice\n")
			return nil
		}
		if errors.Is(err, errEndOfInput) {
			return s.endOfInput(err)
		}
		if err != nil {
			s.red.Fprintf(s.errOut, "\nError: %v\n", err)
		}
	}
}

// endOfInput ends the session. Running out of input behaves like quitting.
func (s *session) endOfInput(err error) error {
	if errors.Is(err, errEndOfInput) {
		return s.in.Err()
	}
	return err
}

func (s *session) read(prompt string) (string, error) {
	fmt.Fprint(s.out, prompt)
	if !s.in.Scan() {
		return "", errEndOfInput
	}
	return s.in.Text(), nil
}

func (s *session) readNumber() (account.Number, error) {
	v, err := s.read("Enter Account Number:")
	if err != nil {
		return 0, err
	}
	return flags.ParseNumber(v)
}

func (s *session) open() error {
	firstName, err := s.read("Enter First Name: ")
	if err != nil {
		return err
	}
	lastName, err := s.read("Enter Last Name: ")
	if err != nil {
		return err
	}
	v, err := s.read("Enter initial Balance: ")
	if err != nil {
		return err
	}
	balance, err := flags.ParseAmount(v)
	if err != nil {
		return err
	}
	a, err := s.ledger.Open(firstName, lastName, balance)
	if err != nil {
		return err
	}
	fmt.Fprint(s.out, "\nCongratulation Account is Created\n")
	return printAccount(s.out, a)
}

func (s *session) enquire() error {
	n, err := s.readNumber()
	if err != nil {
		return err
	}
	a, err := s.ledger.Enquire(n)
	if err != nil {
		return err
	}
	fmt.Fprint(s.out, "\nYour Account Details\n")
	return printAccount(s.out, a)
}

func (s *session) transfer(message string, op func(account.Number, decimal.Decimal) (account.Account, error)) error {
	n, err := s.readNumber()
	if err != nil {
		return err
	}
	v, err := s.read("Enter Balance:")
	if err != nil {
		return err
	}
	amount, err := flags.ParseAmount(v)
	if err != nil {
		return err
	}
	a, err := op(n, amount)
	if err != nil {
		return err
	}
	fmt.Fprint(s.out, message)
	return printAccount(s.out, a)
}

func (s *session) close() error {
	n, err := s.readNumber()
	if err != nil {
		return err
	}
	a, err := s.ledger.CloseAccount(n)
	if err != nil {
		return err
	}
	fmt.Fprint(s.out, "\nAccount Deleted\n")
	if err := printAccount(s.out, a); err != nil {
		return err
	}
	_, err = fmt.Fprint(s.out, "\nAccount is Closed\n")
	return err
}
