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

package commands

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/cheggaaa/pb/v3"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/sboehler/teller/cmd/flags"
	"github.com/sboehler/teller/lib/ledger"
	"github.com/sboehler/teller/lib/table"
)

// CreateCheckCommand creates the command.
func CreateCheckCommand() *cobra.Command {
	var r checkRunner

	c := &cobra.Command{
		Use:   "check FILE...",
		Short: "check ledger files",
		Long:  `Check that the given ledger files can be loaded, without modifying them. All errors are reported. Negative totals are highlighted.`,

		Args: cobra.MinimumNArgs(1),

		Run: r.run,
	}
	r.setupFlags(c)
	return c
}

type checkRunner struct {
	flags.OutputFlags
	progress bool
}

func (r *checkRunner) setupFlags(c *cobra.Command) {
	r.OutputFlags.Setup(c)
	c.Flags().BoolVar(&r.progress, "progress", false, "show a progress bar")
}

func (r *checkRunner) run(cmd *cobra.Command, args []string) {
	if err := r.execute(cmd, args); err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), err)
		os.Exit(1)
	}
}

func (r *checkRunner) execute(cmd *cobra.Command, args []string) error {
	cfg, err := r.Config(cmd)
	if err != nil {
		return err
	}
	var done func(string)
	if r.progress {
		bar := pb.New(len(args)).SetWriter(cmd.ErrOrStderr()).Start()
		defer bar.Finish()
		done = func(string) { bar.Increment() }
	}
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	summaries, err := ledger.Check(ctx, args, done)

	t := table.New(4)
	t.AddSeparatorRow()
	t.AddRow().
		AddText("File", table.Left).
		AddText("Accounts", table.Right).
		AddText("Next", table.Right).
		AddText("Total", table.Right)
	t.AddSeparatorRow()
	for _, s := range summaries {
		t.AddRow().
			AddText(s.Path, table.Left).
			AddText(strconv.Itoa(s.Accounts), table.Right).
			AddText(strconv.FormatInt(int64(s.Next), 10), table.Right).
			AddBalance(s.Total, decimal.Zero)
	}
	t.AddSeparatorRow()

	out := bufio.NewWriter(cmd.OutOrStdout())
	defer out.Flush()
	renderer := table.TextRenderer{
		Color: cfg.Color,
		Round: cfg.Round,
	}
	if rerr := renderer.Render(t, out); rerr != nil {
		return rerr
	}
	return err
}
