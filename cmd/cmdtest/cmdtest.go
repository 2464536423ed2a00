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

// Package cmdtest runs commands in tests.
package cmdtest

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

// Run executes the command with the given arguments and returns everything
// it wrote to its output and error streams.
func Run(t *testing.T, cmd *cobra.Command, args []string) []byte {
	t.Helper()
	return RunWithInput(t, cmd, args, "")
}

// RunWithInput is like Run, but provides input on the command's standard
// input.
func RunWithInput(t *testing.T, cmd *cobra.Command, args []string, input string) []byte {
	t.Helper()
	var b bytes.Buffer
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(input))
	cmd.SetOut(&b)
	cmd.SetErr(&b)
	if err := cmd.Execute(); err != nil {
		t.Fatalf("cmd.Execute() returned unexpected error: %v", err)
	}
	return b.Bytes()
}
