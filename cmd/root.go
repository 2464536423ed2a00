// Copyright 2020 Silvio Böhler
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

// Package cmd is the main command file for Cobra
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sboehler/teller/cmd/commands"
	"github.com/sboehler/teller/cmd/completion"
)

// CreateCmd creates the root command. Without a subcommand, it runs the
// interactive menu.
func CreateCmd(version string) *cobra.Command {
	c := commands.CreateMenuCommand()
	c.Use = "teller"
	c.Short = "teller is a console bank account ledger"
	c.Long = `teller manages bank accounts in a plain text file. Without a subcommand, it starts an interactive menu.`
	c.Version = version

	c.AddCommand(commands.CreateOpenCommand())
	c.AddCommand(commands.CreateEnquiryCommand())
	c.AddCommand(commands.CreateDepositCommand())
	c.AddCommand(commands.CreateWithdrawCommand())
	c.AddCommand(commands.CreateCloseCommand())
	c.AddCommand(commands.CreateListCommand())
	c.AddCommand(commands.CreateCheckCommand())
	c.AddCommand(completion.CreateCmd(c))
	return c
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute(version string) {
	c := CreateCmd(version)
	if err := c.Execute(); err != nil {
		fmt.Fprintln(c.ErrOrStderr(), err)
		os.Exit(1)
	}
}
