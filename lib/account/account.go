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

// Package account contains the account entity and its balance rules.
package account

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// MinBalance is the balance an account must retain after a withdrawal.
var MinBalance = decimal.RequireFromString("500")

// ErrInsufficientFunds is returned when a withdrawal would take the
// balance below MinBalance.
var ErrInsufficientFunds = errors.New("insufficient funds")

// Number identifies an account.
type Number int64

// Account is a bank account. The zero value is not a valid account.
type Account struct {
	number    Number
	firstName string
	lastName  string
	balance   decimal.Decimal
}

// New creates an account. The initial balance is not checked against
// MinBalance.
func New(number Number, firstName, lastName string, balance decimal.Decimal) Account {
	return Account{
		number:    number,
		firstName: firstName,
		lastName:  lastName,
		balance:   balance,
	}
}

// Number returns the account number.
func (a Account) Number() Number {
	return a.number
}

// FirstName returns the first name of the holder.
func (a Account) FirstName() string {
	return a.firstName
}

// LastName returns the last name of the holder.
func (a Account) LastName() string {
	return a.lastName
}

// Balance returns the balance.
func (a Account) Balance() decimal.Decimal {
	return a.balance
}

// Deposit adds the amount to the balance. The amount is not validated.
func (a *Account) Deposit(amount decimal.Decimal) {
	a.balance = a.balance.Add(amount)
}

// Withdraw subtracts the amount from the balance, unless the remaining
// balance would drop below MinBalance. In that case, the balance is left
// unchanged and an error wrapping ErrInsufficientFunds is returned.
func (a *Account) Withdraw(amount decimal.Decimal) error {
	remaining := a.balance.Sub(amount)
	if remaining.LessThan(MinBalance) {
		return fmt.Errorf("%w: withdrawing %s from account %d would leave %s, minimum is %s",
			ErrInsufficientFunds, amount, a.number, remaining, MinBalance)
	}
	a.balance = remaining
	return nil
}

func (a Account) String() string {
	return fmt.Sprintf("%d %s %s %s", a.number, a.firstName, a.lastName, a.balance)
}
