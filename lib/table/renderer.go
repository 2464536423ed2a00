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

package table

import (
	"fmt"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/fatih/color"
	"github.com/shopspring/decimal"
)

// TextRenderer renders a table to text.
type TextRenderer struct {
	Color bool
	Round int32

	green, red *color.Color
}

// Render renders the table.
func (r *TextRenderer) Render(t *Table, w io.Writer) error {
	r.green, r.red = color.New(color.FgGreen), color.New(color.FgRed)
	if r.Color {
		r.green.EnableColor()
		r.red.EnableColor()
	} else {
		r.green.DisableColor()
		r.red.DisableColor()
	}

	widths := make([]int, t.Width())
	for _, row := range t.rows {
		for i, c := range row.cells {
			if l := r.minLengthCell(c); widths[i] < l {
				widths[i] = l
			}
		}
	}
	for _, row := range t.rows {
		if len(row.cells) == 0 {
			continue
		}
		start, end := "| ", " |\n"
		if row.cells[0].isSep() {
			start = "+-"
		}
		if row.cells[len(row.cells)-1].isSep() {
			end = "-+\n"
		}
		if err := writeString(w, start); err != nil {
			return err
		}
		for i, c := range row.cells {
			if err := r.renderCell(c, widths[i], w); err != nil {
				return err
			}
			if i < len(row.cells)-1 {
				if err := writeString(w, createSep(c, row.cells[i+1])); err != nil {
					return err
				}
			}
		}
		if err := writeString(w, end); err != nil {
			return err
		}
	}
	return nil
}

func (r *TextRenderer) renderCell(c cell, l int, w io.Writer) error {
	switch t := c.(type) {

	case emptyCell:
		return writeSpace(w, l)

	case separatorCell:
		return writeString(w, strings.Repeat("-", l))

	case textCell:
		var before int
		if t.Align == Right {
			before = l - utf8.RuneCountInString(t.Content)
		}
		if err := writeSpace(w, before); err != nil {
			return err
		}
		if err := writeString(w, t.Content); err != nil {
			return err
		}
		return writeSpace(w, l-before-utf8.RuneCountInString(t.Content))

	case numberCell:
		s := r.numToString(t.n)
		if err := writeSpace(w, l-utf8.RuneCountInString(s)); err != nil {
			return err
		}
		var err error
		switch t.style {
		case good:
			_, err = r.green.Fprint(w, s)
		case bad:
			_, err = r.red.Fprint(w, s)
		default:
			_, err = fmt.Fprint(w, s)
		}
		return err
	}
	return fmt.Errorf("%v is not a valid cell type", c)
}

func writeString(w io.Writer, s string) error {
	_, err := io.WriteString(w, s)
	return err
}

func writeSpace(w io.Writer, l int) error {
	if l <= 0 {
		return nil
	}
	return writeString(w, strings.Repeat(" ", l))
}

func (r *TextRenderer) minLengthCell(c cell) int {
	switch t := c.(type) {
	case textCell:
		return utf8.RuneCountInString(t.Content)
	case numberCell:
		return utf8.RuneCountInString(r.numToString(t.n))
	}
	return 0
}

func createSep(c1, c2 cell) string {
	switch {
	case c1.isSep() && c2.isSep():
		return "-+-"
	case c1.isSep():
		return "-+ "
	case c2.isSep():
		return " +-"
	default:
		return " | "
	}
}

func (r *TextRenderer) numToString(d decimal.Decimal) string {
	return addThousandsSep(d.StringFixed(r.Round))
}

func addThousandsSep(e string) string {
	index := strings.Index(e, ".")
	if index < 0 {
		index = len(e)
	}
	var (
		b  strings.Builder
		ok bool
	)
	for i, ch := range e {
		if i >= index {
			b.WriteString(e[i:])
			break
		}
		if (index-i)%3 == 0 && ok {
			b.WriteRune(',')
		}
		b.WriteRune(ch)
		if unicode.IsDigit(ch) {
			ok = true
		}
	}
	return b.String()
}
