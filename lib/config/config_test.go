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

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDecode(t *testing.T) {
	for _, test := range []struct {
		desc string
		text string
		want Config
	}{
		{
			desc: "empty",
			text: "",
			want: Default(),
		},
		{
			desc: "partial",
			text: "color: true\n",
			want: Config{File: DefaultFile, Color: true, Round: 2},
		},
		{
			desc: "complete",
			text: "file: accounts.txt\ncolor: true\nround: 0\n",
			want: Config{File: "accounts.txt", Color: true, Round: 0},
		},
	} {
		t.Run(test.desc, func(t *testing.T) {
			got, err := Decode(strings.NewReader(test.text))

			if err != nil {
				t.Fatalf("Decode() returned unexpected error: %v", err)
			}
			if diff := cmp.Diff(test.want, got); diff != "" {
				t.Fatalf("Decode() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDecodeErrors(t *testing.T) {
	for _, text := range []string{
		"unknown: 1\n",
		"round: -1\n",
		"file: \"\"\n",
		"round: many\n",
	} {
		if _, err := Decode(strings.NewReader(text)); err == nil {
			t.Errorf("Decode(%q) = nil, want error", text)
		}
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "teller.yaml")
	if err := os.WriteFile(path, []byte("file: other.data\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := Load(path)

	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}
	if diff := cmp.Diff(Config{File: "other.data", Round: 2}, got); diff != "" {
		t.Fatalf("Load() mismatch (-want +got):\n%s", diff)
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("Load() of missing file = nil, want error")
	}
}
