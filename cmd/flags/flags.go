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

package flags

import (
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/sboehler/teller/lib/account"
	"github.com/sboehler/teller/lib/config"
	"github.com/sboehler/teller/lib/ledger"
	"github.com/sboehler/teller/lib/store"
)

// DecimalFlag manages a flag holding an amount.
type DecimalFlag decimal.Decimal

var _ pflag.Value = (*DecimalFlag)(nil)

func (df DecimalFlag) String() string {
	return df.Value().String()
}

// Set implements pflag.Value.
func (df *DecimalFlag) Set(v string) error {
	d, err := ParseAmount(v)
	if err != nil {
		return err
	}
	*df = DecimalFlag(d)
	return nil
}

// Type implements pflag.Value.
func (df DecimalFlag) Type() string {
	return "<amount>"
}

// Value returns the flag value.
func (df DecimalFlag) Value() decimal.Decimal {
	return decimal.Decimal(df)
}

// ParseAmount parses a decimal amount.
func ParseAmount(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q", s)
	}
	return d, nil
}

// ParseNumber parses an account number.
func ParseNumber(s string) (account.Number, error) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid account number %q", s)
	}
	return account.Number(n), nil
}

// OutputFlags manages the flags which configure the output: the
// configuration file, colors and rounding.
type OutputFlags struct {
	config string
	color  bool
	round  int32
}

// Setup configures the flags.
func (of *OutputFlags) Setup(cmd *cobra.Command) {
	def := config.Default()
	cmd.Flags().StringVar(&of.config, "config", "", "configuration file (YAML)")
	cmd.Flags().BoolVar(&of.color, "color", def.Color, "print colored output")
	cmd.Flags().Int32Var(&of.round, "round", def.Round, "number of decimal places in tables")
}

// Config returns the configuration. Flags which have been set explicitly
// override the configuration file.
func (of *OutputFlags) Config(cmd *cobra.Command) (config.Config, error) {
	cfg := config.Default()
	if of.config != "" {
		var err error
		if cfg, err = config.Load(of.config); err != nil {
			return config.Config{}, err
		}
	}
	if of.override(cmd, "color") {
		cfg.Color = of.color
	}
	if of.override(cmd, "round") {
		cfg.Round = of.round
	}
	if cfg.Round < 0 {
		return config.Config{}, fmt.Errorf("round must not be negative, got %d", cfg.Round)
	}
	return cfg, nil
}

func (of *OutputFlags) override(cmd *cobra.Command, name string) bool {
	return of.config == "" || cmd.Flags().Changed(name)
}

// LedgerFlags manages the flags which select and configure the ledger.
type LedgerFlags struct {
	OutputFlags
	file string
}

// Setup configures the flags.
func (lf *LedgerFlags) Setup(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&lf.file, "file", "f", config.DefaultFile, "ledger file")
	lf.OutputFlags.Setup(cmd)
}

// Config returns the configuration. Flags which have been set explicitly
// override the configuration file.
func (lf *LedgerFlags) Config(cmd *cobra.Command) (config.Config, error) {
	cfg, err := lf.OutputFlags.Config(cmd)
	if err != nil {
		return config.Config{}, err
	}
	if lf.override(cmd, "file") {
		cfg.File = lf.file
	}
	return cfg, nil
}

// Open loads the ledger selected by the flags.
func (lf *LedgerFlags) Open(cmd *cobra.Command) (*ledger.Ledger, config.Config, error) {
	cfg, err := lf.Config(cmd)
	if err != nil {
		return nil, config.Config{}, err
	}
	l, err := ledger.New(store.File{Path: cfg.File})
	if err != nil {
		return nil, config.Config{}, err
	}
	return l, cfg, nil
}
