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
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/sboehler/teller/lib/account"
)

func writeFile(t *testing.T, dir, name string, lines ...string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestCheck(t *testing.T) {
	var (
		dir   = t.TempDir()
		good  = writeFile(t, dir, "good.data", "1", "Alice", "Smith", "650", "3", "Bob", "Jones", "1000.5", "")
		empty = writeFile(t, dir, "empty.data")
		bad   = writeFile(t, dir, "bad.data", "1", "Alice", "Smith", "many", "")
		dup   = writeFile(t, dir, "dup.data", "1", "A", "A", "1", "1", "B", "B", "2", "")
		miss  = filepath.Join(dir, "missing.data")

		mu   sync.Mutex
		done []string
	)

	got, err := Check(context.Background(), []string{good, bad, empty, dup, miss}, func(p string) {
		mu.Lock()
		defer mu.Unlock()
		done = append(done, p)
	})

	want := []Summary{
		{Path: good, Accounts: 2, Total: d("1650.5"), Next: account.Number(4)},
		{Path: empty, Accounts: 0, Next: 1},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Check() mismatch (-want +got):\n%s", diff)
	}
	if err == nil {
		t.Fatalf("Check() returned no error, want errors for invalid files")
	}
	for _, s := range []string{bad + ":4:1", dup + ": duplicate account number 1", "missing.data"} {
		if !strings.Contains(err.Error(), s) {
			t.Errorf("Check() error %q does not mention %q", err, s)
		}
	}
	if len(done) != 5 {
		t.Errorf("done called %d times, want 5", len(done))
	}
}

func TestCheckCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := Check(ctx, []string{"a", "b"}, nil); err != context.Canceled {
		t.Fatalf("Check() = %v, want context.Canceled", err)
	}
}
