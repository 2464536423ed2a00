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

package store

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/sboehler/teller/lib/account"
	"github.com/sboehler/teller/lib/scanner"
)

// Parser parses account records. A record consists of four lines: the
// account number, the first name, the last name and the balance.
type Parser struct {
	scanner.Scanner
}

// NewParser creates a new parser.
func NewParser(text, path string) *Parser {
	return &Parser{Scanner: *scanner.New(text, path)}
}

// Parse parses all records in the given text.
func Parse(text, path string) ([]account.Account, error) {
	p := NewParser(text, path)
	if err := p.Advance(); err != nil {
		return nil, err
	}
	return p.ParseAll()
}

// ParseAll parses records until the end of the text. Blank lines after the
// last record are ignored.
func (p *Parser) ParseAll() ([]account.Account, error) {
	var res []account.Account
	for {
		if err := p.skipBlankLines(); err != nil {
			return nil, err
		}
		if p.Current() == scanner.EOF {
			return res, nil
		}
		a, err := p.parseRecord()
		if err != nil {
			return nil, err
		}
		res = append(res, a)
	}
}

func (p *Parser) skipBlankLines() error {
	for p.Current() == '\n' || p.Current() == '\r' {
		if err := p.Advance(); err != nil {
			return err
		}
	}
	return nil
}

func (p *Parser) parseRecord() (account.Account, error) {
	number, err := p.parseNumber()
	if err != nil {
		return account.Account{}, err
	}
	firstName, err := p.parseName("first name")
	if err != nil {
		return account.Account{}, err
	}
	lastName, err := p.parseName("last name")
	if err != nil {
		return account.Account{}, err
	}
	balance, err := p.parseBalance()
	if err != nil {
		return account.Account{}, err
	}
	return account.New(number, firstName, lastName, balance), nil
}

func (p *Parser) parseNumber() (account.Number, error) {
	loc := p.Location()
	s, err := p.readField()
	if err != nil {
		return 0, err
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil || n <= 0 {
		return 0, scanner.Error{Location: loc, Message: "invalid account number " + strconv.Quote(s)}
	}
	return account.Number(n), nil
}

func (p *Parser) parseName(field string) (string, error) {
	loc := p.Location()
	s, err := p.readField()
	if err != nil {
		return "", err
	}
	if s == "" {
		return "", scanner.Error{Location: loc, Message: "empty " + field}
	}
	return s, nil
}

func (p *Parser) parseBalance() (decimal.Decimal, error) {
	loc := p.Location()
	s, err := p.readField()
	if err != nil {
		return decimal.Zero, err
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, scanner.Error{Location: loc, Message: "invalid balance " + strconv.Quote(s)}
	}
	return d, nil
}

func (p *Parser) readField() (string, error) {
	r, err := p.ReadLine()
	if err != nil {
		return "", err
	}
	return strings.TrimSuffix(r.Extract(), "\r"), nil
}
