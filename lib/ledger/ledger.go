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

// Package ledger manages the accounts of a bank and keeps them in sync with
// a store.
package ledger

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/sboehler/teller/lib/account"
)

// ErrNotFound is returned for operations on a nonexistent account.
var ErrNotFound = errors.New("account not found")

// ErrNumbersExhausted is returned by Open once the highest possible account
// number has been assigned.
var ErrNumbersExhausted = errors.New("no account numbers left")

// Store persists all accounts at once.
type Store interface {
	Load() ([]account.Account, error)
	Save([]account.Account) error
}

// Ledger owns a set of accounts. Every mutation writes all accounts to the
// store. A Ledger is not safe for concurrent use.
type Ledger struct {
	store    Store
	accounts map[account.Number]*account.Account
	next     account.Number
}

// New loads a ledger from the given store. The next account number is one
// above the highest number loaded, or 1 if the store is empty. If the highest
// number is math.MaxInt64, no further accounts can be opened.
func New(s Store) (*Ledger, error) {
	accounts, err := s.Load()
	if err != nil {
		return nil, err
	}
	l := &Ledger{
		store:    s,
		accounts: make(map[account.Number]*account.Account, len(accounts)),
		next:     1,
	}
	for _, a := range accounts {
		a := a
		if _, ok := l.accounts[a.Number()]; ok {
			return nil, fmt.Errorf("duplicate account number %d", a.Number())
		}
		l.accounts[a.Number()] = &a
		if !l.exhausted() && a.Number() >= l.next {
			l.next = a.Number() + 1
		}
	}
	return l, nil
}

// Next returns the number the next opened account will get, or zero if no
// numbers are left.
func (l *Ledger) Next() account.Number {
	if l.exhausted() {
		return 0
	}
	return l.next
}

// exhausted reports whether the counter has run past the highest number.
func (l *Ledger) exhausted() bool {
	return l.next <= 0
}

// Open creates a new account and saves the ledger. If saving fails, the
// account is not opened, but its number is not reused.
func (l *Ledger) Open(firstName, lastName string, balance decimal.Decimal) (account.Account, error) {
	if l.exhausted() {
		return account.Account{}, ErrNumbersExhausted
	}
	a := account.New(l.next, firstName, lastName, balance)
	l.next++
	l.accounts[a.Number()] = &a
	if err := l.save(); err != nil {
		delete(l.accounts, a.Number())
		return account.Account{}, err
	}
	return a, nil
}

// Enquire returns the account with the given number.
func (l *Ledger) Enquire(n account.Number) (account.Account, error) {
	a, err := l.lookup(n)
	if err != nil {
		return account.Account{}, err
	}
	return *a, nil
}

// Deposit deposits the amount and saves the ledger.
func (l *Ledger) Deposit(n account.Number, amount decimal.Decimal) (account.Account, error) {
	a, err := l.lookup(n)
	if err != nil {
		return account.Account{}, err
	}
	a.Deposit(amount)
	if err := l.save(); err != nil {
		return account.Account{}, err
	}
	return *a, nil
}

// Withdraw withdraws the amount and saves the ledger. A withdrawal which
// would breach the minimum balance fails with account.ErrInsufficientFunds
// and changes nothing.
func (l *Ledger) Withdraw(n account.Number, amount decimal.Decimal) (account.Account, error) {
	a, err := l.lookup(n)
	if err != nil {
		return account.Account{}, err
	}
	if err := a.Withdraw(amount); err != nil {
		return account.Account{}, err
	}
	if err := l.save(); err != nil {
		return account.Account{}, err
	}
	return *a, nil
}

// CloseAccount removes the account, saves the ledger and returns the
// removed account.
func (l *Ledger) CloseAccount(n account.Number) (account.Account, error) {
	a, err := l.lookup(n)
	if err != nil {
		return account.Account{}, err
	}
	delete(l.accounts, n)
	if err := l.save(); err != nil {
		return account.Account{}, err
	}
	return *a, nil
}

// List returns all accounts ordered by number.
func (l *Ledger) List() []account.Account {
	numbers := maps.Keys(l.accounts)
	slices.Sort(numbers)
	res := make([]account.Account, 0, len(numbers))
	for _, n := range numbers {
		res = append(res, *l.accounts[n])
	}
	return res
}

// Close saves the ledger a final time.
func (l *Ledger) Close() error {
	if err := l.save(); err != nil {
		return fmt.Errorf("closing ledger: %w", err)
	}
	return nil
}

func (l *Ledger) lookup(n account.Number) (*account.Account, error) {
	a, ok := l.accounts[n]
	if !ok {
		return nil, fmt.Errorf("account %d: %w", n, ErrNotFound)
	}
	return a, nil
}

func (l *Ledger) save() error {
	return l.store.Save(l.List())
}
