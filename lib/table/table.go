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

// Package table lays out rows of cells and renders them as text or CSV.
package table

import (
	"github.com/shopspring/decimal"
)

// Table is a matrix of table cells.
type Table struct {
	width int
	rows  []*Row
}

// New creates a new table with the given number of columns.
func New(width int) *Table {
	return &Table{width: width}
}

// Width returns the width of this table.
func (t *Table) Width() int {
	return t.width
}

// AddRow adds a row.
func (t *Table) AddRow() *Row {
	row := &Row{cells: make([]cell, 0, t.width)}
	t.rows = append(t.rows, row)
	return row
}

// AddSeparatorRow adds a separator row.
func (t *Table) AddSeparatorRow() {
	r := t.AddRow()
	for i := 0; i < t.width; i++ {
		r.addCell(separatorCell{})
	}
}

// Row is a table row.
type Row struct {
	cells []cell
}

func (r *Row) addCell(c cell) {
	r.cells = append(r.cells, c)
}

// AddEmpty adds an empty cell.
func (r *Row) AddEmpty() *Row {
	r.addCell(emptyCell{})
	return r
}

// AddText adds a text cell.
func (r *Row) AddText(content string, align Alignment) *Row {
	r.addCell(textCell{Content: content, Align: align})
	return r
}

// AddNumber adds a number cell.
func (r *Row) AddNumber(n decimal.Decimal) *Row {
	r.addCell(numberCell{n: n})
	return r
}

// AddBalance adds a number cell which is highlighted according to whether
// it lies below the given floor.
func (r *Row) AddBalance(n, floor decimal.Decimal) *Row {
	s := good
	if n.LessThan(floor) {
		s = bad
	}
	r.addCell(numberCell{n: n, style: s})
	return r
}

// FillEmpty fills the row with empty cells.
func (r *Row) FillEmpty() {
	for i := len(r.cells); i < cap(r.cells); i++ {
		r.AddEmpty()
	}
}

type cell interface {
	isSep() bool
}

// Alignment is the alignment of a table cell.
type Alignment int

const (
	// Left aligns to the left.
	Left Alignment = iota
	// Right align to the right.
	Right
)

type textCell struct {
	Content string
	Align   Alignment
}

func (textCell) isSep() bool {
	return false
}

type style int

const (
	plain style = iota
	good
	bad
)

type numberCell struct {
	n     decimal.Decimal
	style style
}

func (numberCell) isSep() bool {
	return false
}

type separatorCell struct{}

func (separatorCell) isSep() bool {
	return true
}

type emptyCell struct{}

func (emptyCell) isSep() bool {
	return false
}
