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

// Package store reads and writes the backing file of a ledger.
package store

import (
	"bufio"
	"errors"
	"io"
	"io/fs"
	"os"

	"github.com/natefinch/atomic"
	"go.uber.org/multierr"

	"github.com/sboehler/teller/lib/account"
)

// File stores accounts in a single text file. Every save replaces the whole
// file.
type File struct {
	Path string
}

// Load reads all accounts from the file. A missing file yields no accounts.
func (f File) Load() ([]account.Account, error) {
	text, err := os.ReadFile(f.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return Parse(string(text), f.Path)
}

// Save replaces the file with the given accounts.
func (f File) Save(accounts []account.Account) error {
	r, w := io.Pipe()
	go func() {
		buf := bufio.NewWriter(w)
		_, err := Print(buf, accounts)
		w.CloseWithError(multierr.Append(err, buf.Flush()))
	}()
	return multierr.Append(atomic.WriteFile(f.Path, r), r.Close())
}
