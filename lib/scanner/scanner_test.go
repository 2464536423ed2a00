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

package scanner

import (
	"testing"
	"unicode"

	"github.com/google/go-cmp/cmp"
)

func setupScanner(t *testing.T, text string) *Scanner {
	t.Helper()
	s := New(text, "")
	if err := s.Advance(); err != nil {
		t.Fatalf("s.Advance() = %v, want nil", err)
	}
	return s
}

func TestNewScanner(t *testing.T) {
	s := setupScanner(t, "")
	if c := s.Current(); c != EOF {
		t.Fatalf("s.Current() = %c, want EOF", c)
	}
}

func TestReadWhile(t *testing.T) {
	for _, test := range []struct {
		text string
		pred func(rune) bool
		want string
	}{
		{
			text: "ooobar",
			pred: func(r rune) bool { return r == 'o' },
			want: "ooo",
		},
		{
			text: "ASDFasdf",
			pred: unicode.IsUpper,
			want: "ASDF",
		},
		{
			text: "ASDF",
			pred: unicode.IsUpper,
			want: "ASDF",
		},
		{
			text: "asdf",
			pred: unicode.IsUpper,
			want: "",
		},
	} {
		t.Run(test.text, func(t *testing.T) {
			s := setupScanner(t, test.text)

			got, err := s.ReadWhile(test.pred)

			if err != nil {
				t.Fatalf("s.ReadWhile() returned unexpected error: %v", err)
			}
			if got.Extract() != test.want {
				t.Fatalf("s.ReadWhile() = %q, want %q", got.Extract(), test.want)
			}
		})
	}
}

func TestReadLine(t *testing.T) {
	s := setupScanner(t, "first\n\nthird")

	var got []string
	for s.Current() != EOF {
		r, err := s.ReadLine()
		if err != nil {
			t.Fatalf("s.ReadLine() returned unexpected error: %v", err)
		}
		got = append(got, r.Extract())
	}
	if diff := cmp.Diff([]string{"first", "", "third"}, got); diff != "" {
		t.Fatalf("s.ReadLine() mismatch (-want +got):\n%s", diff)
	}
}

func TestLocation(t *testing.T) {
	s := New("ab\ncd", "file.txt")
	if err := s.Advance(); err != nil {
		t.Fatal(err)
	}
	var got []Location
	for s.Current() != EOF {
		got = append(got, s.Location())
		if err := s.Advance(); err != nil {
			t.Fatal(err)
		}
	}
	want := []Location{
		{Path: "file.txt", Line: 1, Col: 1},
		{Path: "file.txt", Line: 1, Col: 2},
		{Path: "file.txt", Line: 1, Col: 3},
		{Path: "file.txt", Line: 2, Col: 1},
		{Path: "file.txt", Line: 2, Col: 2},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("locations mismatch (-want +got):\n%s", diff)
	}
}

func TestErrorf(t *testing.T) {
	s := setupScanner(t, "x\ny")
	if _, err := s.ReadLine(); err != nil {
		t.Fatal(err)
	}

	got := s.Errorf("bad %s", "thing").Error()

	if want := "2:1: bad thing"; got != want {
		t.Fatalf("s.Errorf() = %q, want %q", got, want)
	}
}
