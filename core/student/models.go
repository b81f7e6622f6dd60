package student

import (
	"strconv"

	"github.com/trezcool/marksheet/core"
)

const (
	CourseworkCount = 3
	MaxCoursework   = 20
	MaxExam         = 100
	MaxPoints       = CourseworkCount*MaxCoursework + MaxExam // 160
)

// Grades
const (
	GradeA = "A"
	GradeB = "B"
	GradeC = "C"
	GradeD = "D"
	GradeF = "F"
)

var (
	AllGrades = []string{GradeA, GradeB, GradeC, GradeD, GradeF}

	// evaluated in order, first match wins
	gradeThresholds = []struct {
		min   float64
		grade string
	}{
		{70, GradeA},
		{60, GradeB},
		{50, GradeC},
		{40, GradeD},
	}
)

// GradeFor returns the letter grade of a percentage.
func GradeFor(percent float64) string {
	for _, th := range gradeThresholds {
		if percent >= th.min {
			return th.grade
		}
	}
	return GradeF
}

// Student is one line of the marks file.
type Student struct {
	ID         string               `json:"id" yaml:"id"`
	Name       string               `json:"name" yaml:"name"`
	Coursework [CourseworkCount]int `json:"coursework" yaml:"coursework"`
	Exam       int                  `json:"exam" yaml:"exam"`
	Raw        []string             `json:"-" yaml:"-"` // set when the stored line could not be parsed
}

// Valid reports whether the record was parsed cleanly and can take part in statistics.
func (s Student) Valid() bool {
	return s.Raw == nil
}

func (s Student) CourseworkTotal() int {
	var total int
	for _, cw := range s.Coursework {
		total += cw
	}
	return total
}

func (s Student) Points() int {
	return s.CourseworkTotal() + s.Exam
}

// Percent is (coursework total + exam) / 160 * 100, rounded to 2 decimal places.
func (s Student) Percent() float64 {
	return percentOf(s.Points())
}

func (s Student) Grade() string {
	return GradeFor(s.Percent())
}

// Fields returns the record as stored on disk: id, name, cw1, cw2, cw3, exam.
func (s Student) Fields() []string {
	if s.Raw != nil {
		return s.Raw
	}
	flds := make([]string, 0, 2+CourseworkCount+1)
	flds = append(flds, s.ID, s.Name)
	for _, cw := range s.Coursework {
		flds = append(flds, strconv.Itoa(cw))
	}
	return append(flds, strconv.Itoa(s.Exam))
}

func percentOf(points int) float64 {
	return core.Round2(float64(points) / MaxPoints * 100)
}

// Scorecard is a Student together with its derived fields.
type Scorecard struct {
	ID              string               `json:"id" yaml:"id"`
	Name            string               `json:"name" yaml:"name"`
	Coursework      [CourseworkCount]int `json:"coursework" yaml:"coursework"`
	CourseworkTotal int                  `json:"coursework_total" yaml:"coursework_total"`
	Exam            int                  `json:"exam" yaml:"exam"`
	Percent         float64              `json:"percent" yaml:"percent"`
	Grade           string               `json:"grade" yaml:"grade"`
	Valid           bool                 `json:"valid" yaml:"valid"`
}

func (s Student) Scorecard() Scorecard {
	sc := Scorecard{
		ID:         s.ID,
		Name:       s.Name,
		Coursework: s.Coursework,
		Exam:       s.Exam,
		Valid:      s.Valid(),
	}
	if sc.Valid {
		sc.CourseworkTotal = s.CourseworkTotal()
		sc.Percent = s.Percent()
		sc.Grade = s.Grade()
	}
	return sc
}

// NewStudent contains the raw input needed to create or replace a Student.
type NewStudent struct {
	ID   string `json:"id" validate:"required,studentid"`
	Name string `json:"name" validate:"notblank,nodelim"`
	CW1  string `json:"cw1" validate:"required,mark=20"`
	CW2  string `json:"cw2" validate:"required,mark=20"`
	CW3  string `json:"cw3" validate:"required,mark=20"`
	Exam string `json:"exam" validate:"required,mark=100"`
}

// Validate cleans and checks the input, and converts it into a Student.
// Uniqueness of the ID is checked by the Service.
func (ns *NewStudent) Validate() (Student, error) {
	ns.ID = core.CleanString(ns.ID)
	ns.Name = core.CleanString(ns.Name)
	ns.CW1 = core.CleanString(ns.CW1)
	ns.CW2 = core.CleanString(ns.CW2)
	ns.CW3 = core.CleanString(ns.CW3)
	ns.Exam = core.CleanString(ns.Exam)

	if err := core.Validate.Struct(ns); err != nil {
		return Student{}, core.NewValidationErrorFrom(err)
	}

	// marks are known to be in range at this point
	s := Student{ID: ns.ID, Name: ns.Name}
	for i, raw := range []string{ns.CW1, ns.CW2, ns.CW3} {
		s.Coursework[i], _ = strconv.Atoi(raw)
	}
	s.Exam, _ = strconv.Atoi(ns.Exam)
	return s, nil
}
