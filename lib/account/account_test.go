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

package account

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestNew(t *testing.T) {
	a := New(7, "Alice", "Smith", d("100"))

	if a.Number() != 7 || a.FirstName() != "Alice" || a.LastName() != "Smith" {
		t.Fatalf("New() = %v, want 7 Alice Smith 100", a)
	}
	// The minimum balance does not apply at creation.
	if !a.Balance().Equal(d("100")) {
		t.Fatalf("a.Balance() = %s, want 100", a.Balance())
	}
}

func TestDeposit(t *testing.T) {
	for _, test := range []struct {
		desc    string
		initial string
		amount  string
		want    string
	}{
		{desc: "positive", initial: "1000", amount: "50", want: "1050"},
		{desc: "zero", initial: "1000", amount: "0", want: "1000"},
		{desc: "negative", initial: "1000", amount: "-700", want: "300"},
		{desc: "fraction", initial: "0.1", amount: "0.2", want: "0.3"},
	} {
		t.Run(test.desc, func(t *testing.T) {
			a := New(1, "A", "B", d(test.initial))

			a.Deposit(d(test.amount))

			if !a.Balance().Equal(d(test.want)) {
				t.Fatalf("a.Deposit(%s) -> balance %s, want %s", test.amount, a.Balance(), test.want)
			}
		})
	}
}

func TestWithdraw(t *testing.T) {
	for _, test := range []struct {
		desc    string
		initial string
		amount  string
		want    string
		wantErr bool
	}{
		{desc: "leaves more than minimum", initial: "1000", amount: "400", want: "600"},
		{desc: "leaves exactly minimum", initial: "1000", amount: "500", want: "500"},
		{desc: "breaches minimum", initial: "1000", amount: "600", want: "1000", wantErr: true},
		{desc: "breaches by a cent", initial: "1000", amount: "500.01", want: "1000", wantErr: true},
		{desc: "negative amount", initial: "1000", amount: "-10", want: "1010"},
		{desc: "already below minimum", initial: "100", amount: "0", want: "100", wantErr: true},
	} {
		t.Run(test.desc, func(t *testing.T) {
			a := New(1, "A", "B", d(test.initial))

			err := a.Withdraw(d(test.amount))

			if test.wantErr != errors.Is(err, ErrInsufficientFunds) {
				t.Fatalf("a.Withdraw(%s) = %v, want ErrInsufficientFunds: %t", test.amount, err, test.wantErr)
			}
			if !test.wantErr && err != nil {
				t.Fatalf("a.Withdraw(%s) returned unexpected error: %v", test.amount, err)
			}
			if !a.Balance().Equal(d(test.want)) {
				t.Fatalf("a.Withdraw(%s) -> balance %s, want %s", test.amount, a.Balance(), test.want)
			}
		})
	}
}

func TestBalanceIsSumOfSuccessfulOperations(t *testing.T) {
	var (
		a        = New(1, "A", "B", d("800"))
		want     = d("800")
		deposits = []string{"100", "0.5", "250"}
		withdraw = []string{"300", "900", "10", "1000"}
	)
	for i := 0; i < len(deposits) || i < len(withdraw); i++ {
		if i < len(deposits) {
			a.Deposit(d(deposits[i]))
			want = want.Add(d(deposits[i]))
		}
		if i < len(withdraw) {
			if err := a.Withdraw(d(withdraw[i])); err == nil {
				want = want.Sub(d(withdraw[i]))
			}
		}
	}
	if !a.Balance().Equal(want) {
		t.Fatalf("balance = %s, want %s", a.Balance(), want)
	}
}

func TestString(t *testing.T) {
	a := New(3, "Bob", "Jones", d("12.5"))

	if got, want := a.String(), "3 Bob Jones 12.5"; got != want {
		t.Fatalf("a.String() = %q, want %q", got, want)
	}
}
