package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/RubachokBoss/studentctl/internal/models"
)

const (
	dateLayout        = "2006-01-02"
	noRowsPlaceholder = "(no rows)"
)

// studentColumns is the display order; the names double as table headers and
// match the column names of the students table.
var studentColumns = []string{"student_id", "first_name", "last_name", "email", "enrollment_date"}

// renderStudents prints the students as a pipe table, or a placeholder line
// when there are none.
func renderStudents(w io.Writer, students []models.Student) {
	if len(students) == 0 {
		fmt.Fprintln(w, noRowsPlaceholder)
		return
	}

	rows := make([][]string, 0, len(students))
	for _, s := range students {
		rows = append(rows, []string{
			strconv.FormatInt(s.ID, 10),
			s.FirstName,
			s.LastName,
			s.Email,
			formatDate(s.EnrollmentDate),
		})
	}

	renderTable(w, studentColumns, rows)
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(dateLayout)
}

// renderTable writes a GitHub-style pipe table with every column padded to
// its widest cell.
func renderTable(w io.Writer, headers []string, rows [][]string) {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	printRow(w, headers, widths)

	sep := make([]string, len(headers))
	for i, width := range widths {
		sep[i] = strings.Repeat("-", width+2)
	}
	fmt.Fprintf(w, "|%s|\n", strings.Join(sep, "|"))

	for _, row := range rows {
		printRow(w, row, widths)
	}
}

func printRow(w io.Writer, cells []string, widths []int) {
	padded := make([]string, len(cells))
	for i, cell := range cells {
		padded[i] = fmt.Sprintf(" %-*s ", widths[i], cell)
	}
	fmt.Fprintf(w, "|%s|\n", strings.Join(padded, "|"))
}
