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

// Package config reads the configuration file.
package config

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v2"
)

// DefaultFile is the default path of the ledger file.
const DefaultFile = "Bank.data"

// Config is the configuration.
type Config struct {
	// File is the path of the ledger file.
	File string `yaml:"file"`
	// Color enables colored output.
	Color bool `yaml:"color"`
	// Round is the number of decimal places in tables.
	Round int32 `yaml:"round"`
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		File:  DefaultFile,
		Round: 2,
	}
}

// Load reads the configuration file at path. Settings missing from the file
// keep their default values.
func Load(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, err
	}
	defer f.Close()
	c, err := Decode(f)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Decode decodes a configuration.
func Decode(r io.Reader) (Config, error) {
	c := Default()
	dec := yaml.NewDecoder(r)
	dec.SetStrict(true)
	if err := dec.Decode(&c); err != nil && err != io.EOF {
		return Config{}, err
	}
	if c.File == "" {
		return Config{}, fmt.Errorf("file must not be empty")
	}
	if c.Round < 0 {
		return Config{}, fmt.Errorf("round must not be negative, got %d", c.Round)
	}
	return c, nil
}
