// Copyright 2021 Silvio Böhler
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

package main

import (
	"os"
	"strings"
	"text/template"

	"github.com/sboehler/teller/cmd"
)

const exampleFile = "doc/example.data"

type config struct {
	ExampleFile string
	Commands    map[string]string
}

func main() {
	c, err := createConfig()
	if err != nil {
		panic(err)
	}
	err = generate(c)
	if err != nil {
		panic(err)
	}
}

func createConfig() (*config, error) {
	var c = &config{
		Commands: make(map[string]string),
	}
	content, err := os.ReadFile(exampleFile)
	if err != nil {
		return nil, err
	}
	c.ExampleFile = string(content)

	c.Commands["help"] = run([]string{"--help"})
	c.Commands["HelpOpen"] = run([]string{"open", "--help"})
	c.Commands["List"] = run([]string{"list", "-f", exampleFile})
	c.Commands["ListCSV"] = run([]string{"list", "--csv", "-f", exampleFile})
	c.Commands["ListRound"] = run([]string{"list", "--round", "0", "-f", exampleFile})
	c.Commands["Enquiry"] = run([]string{"enquiry", "2", "-f", exampleFile})
	c.Commands["Check"] = run([]string{"check", exampleFile})
	return c, nil
}

func generate(c *config) error {
	tpl, err := template.ParseFiles("doc/README.md")
	if err != nil {
		return err
	}
	if err = tpl.Execute(os.Stdout, c); err != nil {
		return err
	}
	return nil
}

func run(args []string) string {
	var c = cmd.CreateCmd("development")
	c.SetArgs(args)
	var b strings.Builder
	b.WriteString("$ teller")
	for _, a := range args {
		b.WriteRune(' ')
		b.WriteString(a)
	}
	b.WriteRune('\n')
	c.SetOut(&b)
	c.Execute()
	return b.String()
}
