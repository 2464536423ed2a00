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
	"encoding/csv"
	"fmt"
	"io"
)

// CSVRenderer renders a table as comma-separated values. Separator rows
// are skipped.
type CSVRenderer struct{}

// Render renders the table.
func (r *CSVRenderer) Render(t *Table, w io.Writer) error {
	writer := csv.NewWriter(w)
	for _, row := range t.rows {
		if len(row.cells) > 0 && row.cells[0].isSep() {
			continue
		}
		var rec []string
		for _, c := range row.cells {
			s, err := r.renderCell(c)
			if err != nil {
				return err
			}
			rec = append(rec, s)
		}
		if err := writer.Write(rec); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

func (r *CSVRenderer) renderCell(c cell) (string, error) {
	switch t := c.(type) {

	case emptyCell, separatorCell:
		return "", nil

	case textCell:
		return t.Content, nil

	case numberCell:
		return t.n.String(), nil
	}
	return "", fmt.Errorf("%v is not a valid cell type", c)
}
