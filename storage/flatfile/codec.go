package flatfile

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/trezcool/marksheet/core"
	"github.com/trezcool/marksheet/core/student"
)

const (
	fieldSep  = ","
	numFields = 6
	padField  = "0"
)

// Decode reads the marks file format:
//
//	<record_count>
//	<id>,<name>,<cw1>,<cw2>,<cw3>,<exam>
//	...
//
// The count line is advisory and skipped when present. Blank lines are ignored
// and lines have no length limit.
func Decode(r io.Reader) ([]student.Student, error) {
	var students []student.Student
	br := bufio.NewReader(r)
	for first := true; ; first = false {
		line, err := br.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, errors.Wrap(err, "reading student records")
		}
		if line = strings.TrimSpace(line); line != "" && !(first && core.IsDigits(line)) {
			students = append(students, ParseLine(line))
		}
		if err == io.EOF {
			return students, nil
		}
	}
}

// ParseLine turns one record line into a Student. Lines with fewer than 6 fields are padded with "0"
// and extra fields are dropped. A line whose marks are not whole numbers within range is kept
// as raw fields and flagged invalid.
func ParseLine(line string) student.Student {
	flds := strings.Split(line, fieldSep)
	for len(flds) < numFields {
		flds = append(flds, padField)
	}
	flds = flds[:numFields]

	s := student.Student{ID: flds[0], Name: flds[1]}
	valid := true
	for i := 0; i < student.CourseworkCount; i++ {
		n, ok := parseMark(flds[2+i], student.MaxCoursework)
		s.Coursework[i] = n
		valid = valid && ok
	}
	n, ok := parseMark(flds[5], student.MaxExam)
	s.Exam = n
	valid = valid && ok

	if !valid {
		s.Raw = flds
	}
	return s
}

func parseMark(fld string, max int) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(fld))
	if err != nil {
		return 0, false
	}
	return n, n >= 0 && n <= max
}

// FormatLine is the inverse of ParseLine.
func FormatLine(s student.Student) string {
	return strings.Join(s.Fields(), fieldSep)
}

// Encode writes the record count followed by one line per student, in order.
func Encode(w io.Writer, students []student.Student) error {
	bw := bufio.NewWriter(w)
	if _, err := bw.WriteString(strconv.Itoa(len(students)) + "\n"); err != nil {
		return err
	}
	for _, s := range students {
		if _, err := bw.WriteString(FormatLine(s) + "\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// EncodeToString is Encode into a string.
func EncodeToString(students []student.Student) string {
	var sb strings.Builder
	_ = Encode(&sb, students) // strings.Builder never fails
	return sb.String()
}
