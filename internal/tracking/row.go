package tracking

import "strings"

// Row is one record of a route table. Cells have no schema; meaning is
// assigned positionally by the route rules.
type Row []string

// Cell returns the trimmed text of the cell at index, or an empty string when
// the row is too short to hold it.
func (r Row) Cell(index int) string {
	if index < 0 || index >= len(r) {
		return ""
	}
	return strings.TrimSpace(r[index])
}
