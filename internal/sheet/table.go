package sheet

import (
	"errors"
	"strings"
)

// WaybillHeader is the header of the column holding the waybill codes.
const WaybillHeader = "waybill"

var ErrMissingWaybillColumn = errors.New("table has no waybill column")

// Table is the content of a route table: the header row and the data rows.
// Rows may be shorter than the header.
type Table struct {
	Header []string
	Rows   [][]string
}

// NewTable splits values into the header and the data rows.
func NewTable(values [][]string) Table {
	if len(values) == 0 {
		return Table{Header: []string{}, Rows: [][]string{}}
	}
	return Table{Header: values[0], Rows: values[1:]}
}

// WaybillIndex returns the position of the column whose header is exactly "waybill".
func (t Table) WaybillIndex() (int, error) {
	for i, h := range t.Header {
		if h == WaybillHeader {
			return i, nil
		}
	}
	return -1, ErrMissingWaybillColumn
}

// Find returns the first row whose waybill cell equals code. Rows too short to
// hold the waybill cell never match.
func (t Table) Find(code string) ([]string, bool, error) {
	idx, err := t.WaybillIndex()
	if err != nil {
		return nil, false, err
	}

	code = strings.TrimSpace(code)
	for _, row := range t.Rows {
		if len(row) > idx && strings.TrimSpace(row[idx]) == code {
			return row, true, nil
		}
	}
	return nil, false, nil
}

// Index maps every waybill code to its first row. It pays off when a table is
// looked up many times, like in the CLI batch mode.
func (t Table) Index() (map[string][]string, error) {
	idx, err := t.WaybillIndex()
	if err != nil {
		return nil, err
	}

	index := make(map[string][]string, len(t.Rows))
	for _, row := range t.Rows {
		if len(row) <= idx {
			continue
		}
		code := strings.TrimSpace(row[idx])
		if _, found := index[code]; found {
			continue
		}
		index[code] = row
	}
	return index, nil
}
