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

package ledger

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"go.uber.org/multierr"
	"golang.org/x/sync/errgroup"

	"github.com/sboehler/teller/lib/account"
	"github.com/sboehler/teller/lib/scanner"
	"github.com/sboehler/teller/lib/store"
)

const concurrency = 10

// Summary describes a valid ledger file.
type Summary struct {
	Path     string
	Accounts int
	Total    decimal.Decimal
	Next     account.Number
}

// Check loads the given ledger files concurrently, without writing them.
// It returns a summary for every valid file, in the order of paths, and the
// errors of all invalid files combined. If done is not nil, it is called
// once per file.
func Check(ctx context.Context, paths []string, done func(path string)) ([]Summary, error) {
	var (
		summaries = make([]*Summary, len(paths))
		errs      = make([]error, len(paths))
	)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			summaries[i], errs[i] = checkFile(path)
			if done != nil {
				done(path)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	var res []Summary
	for _, s := range summaries {
		if s != nil {
			res = append(res, *s)
		}
	}
	return res, multierr.Combine(errs...)
}

func checkFile(path string) (*Summary, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, err
	}
	l, err := New(store.File{Path: path})
	if err != nil {
		var located scanner.Error
		if errors.As(err, &located) {
			return nil, err
		}
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	s := &Summary{Path: path, Next: l.Next()}
	for _, a := range l.List() {
		s.Accounts++
		s.Total = s.Total.Add(a.Balance())
	}
	return s, nil
}
