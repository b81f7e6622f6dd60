package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"

	"github.com/trezcool/marksheet/core"
	"github.com/trezcool/marksheet/core/student"
)

var (
	headerColor  = color.New(color.FgCyan, color.Bold)
	successColor = color.New(color.FgGreen)
	errorColor   = color.New(color.FgRed)
	warnColor    = color.New(color.FgYellow)

	studentHeader = []string{"ID", "Name", "Coursework", "Exam", "Percent", "Grade"}
)

func studentRow(s student.Student) []string {
	if !s.Valid() {
		flds := s.Fields()
		return []string{s.ID, s.Name, fmt.Sprintf("%s/%s/%s", flds[2], flds[3], flds[4]), flds[5], "-", "invalid"}
	}
	return []string{
		s.ID,
		s.Name,
		strconv.Itoa(s.CourseworkTotal()),
		strconv.Itoa(s.Exam),
		formatPercent(s.Percent()),
		s.Grade(),
	}
}

func formatPercent(p float64) string {
	return strconv.FormatFloat(p, 'f', -1, 64)
}

func renderStudents(w io.Writer, students []student.Student) {
	table := tablewriter.NewWriter(w)
	table.SetHeader(studentHeader)
	table.SetAutoFormatHeaders(false)
	for _, s := range students {
		table.Append(studentRow(s))
	}
	table.Render()
}

// renderList prints the full listing followed by the summary line.
func renderList(w io.Writer, students []student.Student) {
	headerColor.Fprintln(w, "=== Student Records ===")
	if len(students) == 0 {
		warnColor.Fprintln(w, "No student records.")
	} else {
		renderStudents(w, students)
	}
	fmt.Fprintf(w, "Total Students: %d        Average Percentage: %s%%\n",
		len(students), formatPercent(student.Average(students)))
}

// renderStudent prints a single record, eg. the highest or lowest scoring one.
func renderStudent(w io.Writer, title string, s student.Student) {
	if title != "" {
		headerColor.Fprintln(w, title)
	}
	renderStudents(w, []student.Student{s})
}

func renderSummary(w io.Writer, sum student.Summary) {
	headerColor.Fprintln(w, "=== Statistics ===")
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Metric", "Value"})
	table.SetAutoFormatHeaders(false)
	table.Append([]string{"Total Students", strconv.Itoa(sum.Count)})
	table.Append([]string{"Valid Records", strconv.Itoa(sum.Valid)})
	table.Append([]string{"Average Percentage", formatPercent(sum.Average) + "%"})
	if sum.Highest != nil {
		table.Append([]string{"Highest", fmt.Sprintf("%s %s (%s%%)", sum.Highest.ID, sum.Highest.Name, formatPercent(sum.Highest.Percent()))})
	}
	if sum.Lowest != nil {
		table.Append([]string{"Lowest", fmt.Sprintf("%s %s (%s%%)", sum.Lowest.ID, sum.Lowest.Name, formatPercent(sum.Lowest.Percent()))})
	}
	for _, g := range student.AllGrades {
		table.Append([]string{"Grade " + g, strconv.Itoa(sum.Grades[g])})
	}
	table.Render()
}

func renderMatches(w io.Writer, matches []student.Match) {
	if len(matches) == 0 {
		warnColor.Fprintln(w, "Student not found")
		return
	}
	table := tablewriter.NewWriter(w)
	table.SetHeader(append(append([]string{}, studentHeader...), "Match"))
	table.SetAutoFormatHeaders(false)
	for _, m := range matches {
		table.Append(append(studentRow(m.Student), strconv.Itoa(int(m.Ratio*100))+"%"))
	}
	table.Render()
}

func printSuccess(w io.Writer, format string, args ...interface{}) {
	successColor.Fprintf(w, format+"\n", args...)
}

// printError renders err for the user; validation errors list every failing field.
func printError(w io.Writer, err error) {
	var vErr *core.ValidationError
	if errors.As(err, &vErr) && len(vErr.Fields) > 0 {
		errorColor.Fprintln(w, "Error: invalid input")
		for _, fe := range vErr.Fields {
			errorColor.Fprintf(w, "  %s: %s\n", fe.Field, fe.Error)
		}
		return
	}
	switch cause := errors.Cause(err); {
	case cause == core.ErrEmptyStore:
		errorColor.Fprintln(w, "Error: there are no valid student records")
	default:
		errorColor.Fprintf(w, "Error: %v\n", err)
	}
}
