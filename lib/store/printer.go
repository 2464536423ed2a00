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

package store

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/sboehler/teller/lib/account"
)

// Print writes the accounts in the given order.
func Print(w io.Writer, accounts []account.Account) (int, error) {
	var n int
	for _, a := range accounts {
		c, err := PrintAccount(w, a)
		n += c
		if err != nil {
			return n, err
		}
	}
	return n, nil
}

// PrintAccount writes a single record.
func PrintAccount(w io.Writer, a account.Account) (int, error) {
	for _, name := range []string{a.FirstName(), a.LastName()} {
		if err := validateName(name); err != nil {
			return 0, fmt.Errorf("account %d: %w", a.Number(), err)
		}
	}
	return fmt.Fprintf(w, "%d\n%s\n%s\n%s\n", a.Number(), a.FirstName(), a.LastName(), a.Balance())
}

func validateName(name string) error {
	if name == "" {
		return fmt.Errorf("empty name")
	}
	if strings.ContainsAny(name, "\r\n") {
		return fmt.Errorf("name %q contains a line break", name)
	}
	if !utf8.ValidString(name) {
		return fmt.Errorf("name %q is not valid UTF-8", name)
	}
	// The scanner reads NUL as the end of the text.
	if strings.ContainsRune(name, 0) {
		return fmt.Errorf("name %q contains a NUL character", name)
	}
	return nil
}
