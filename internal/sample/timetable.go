// Package sample builds the demo timetable shared by the example and the
// screenshot generator.
package sample

import (
	"fmt"

	"github.com/go-theft-auto/xytable"
)

// Timetable returns twenty columns 240 wide, twenty rows 80 tall, and one
// line per column holding five cells 120 long and 200 apart.
func Timetable() (xytable.Header[xytable.Label], xytable.Header[xytable.Label], []xytable.Line[string]) {
	columns := xytable.Header[xytable.Label]{Size: 240, CrossSize: 54}
	rows := xytable.Header[xytable.Label]{Size: 80, CrossSize: 110, Spacing: 10}
	var lines []xytable.Line[string]

	for i := range 20 {
		column := xytable.NewLabel(fmt.Sprintf("Column %d", i))
		columns.Items = append(columns.Items, column)
		rows.Items = append(rows.Items, xytable.NewLabel(fmt.Sprintf("Row %d", i)))

		line := xytable.NewLine[string](column.ID)
		for j := range 5 {
			line.Append(float32(200*j), 120, fmt.Sprintf("Cell %d.%d", i, j))
		}
		lines = append(lines, line)
	}
	return columns, rows, lines
}
