package student

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/marksheet/core"
)

func TestGradeFor(t *testing.T) {
	tests := []struct {
		percent float64
		want    string
	}{
		{100, GradeA},
		{70, GradeA},
		{69.99, GradeB},
		{60, GradeB},
		{59.99, GradeC},
		{50, GradeC},
		{49.99, GradeD},
		{40, GradeD},
		{39.99, GradeF},
		{0, GradeF},
	}
	for _, tt := range tests {
		if got := GradeFor(tt.percent); got != tt.want {
			t.Errorf("GradeFor(%v) = %s, want %s", tt.percent, got, tt.want)
		}
	}
}

func TestStudent_Percent(t *testing.T) {
	tests := []struct {
		name      string
		s         Student
		wantTotal int
		want      float64
		wantGrade string
	}{
		{name: "full marks", s: Student{Coursework: [3]int{20, 20, 20}, Exam: 100}, wantTotal: 60, want: 100, wantGrade: GradeA},
		{name: "zero", s: Student{}, wantTotal: 0, want: 0, wantGrade: GradeF},
		{name: "Jake Hobbs", s: Student{Coursework: [3]int{10, 11, 10}, Exam: 43}, wantTotal: 31, want: 46.25, wantGrade: GradeD},
		{name: "Gareth Southgate", s: Student{Coursework: [3]int{5, 6, 8}, Exam: 33}, wantTotal: 19, want: 32.5, wantGrade: GradeF},
		{name: "exact half rounds to even", s: Student{Coursework: [3]int{8, 15, 7}, Exam: 45}, wantTotal: 30, want: 46.88, wantGrade: GradeD},
		{name: "23 points rounds down", s: Student{Exam: 23}, want: 14.37, wantGrade: GradeF},
		{name: "49 points rounds up", s: Student{Exam: 49}, want: 30.63, wantGrade: GradeF},
		{name: "51 points rounds down", s: Student{Coursework: [3]int{20, 20, 11}}, wantTotal: 51, want: 31.87, wantGrade: GradeF},
		{name: "87 points rounds down", s: Student{Coursework: [3]int{5, 1, 1}, Exam: 80}, wantTotal: 7, want: 54.37, wantGrade: GradeC},
		{name: "93 points rounds up", s: Student{Coursework: [3]int{1, 1, 1}, Exam: 90}, wantTotal: 3, want: 58.13, wantGrade: GradeC},
		{name: "grade boundary", s: Student{Coursework: [3]int{20, 20, 20}, Exam: 52}, wantTotal: 60, want: 70, wantGrade: GradeA},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantTotal, tt.s.CourseworkTotal())
			assert.Equal(t, tt.want, tt.s.Percent())
			assert.Equal(t, tt.wantGrade, tt.s.Grade())
		})
	}
}

func TestStudent_Scorecard(t *testing.T) {
	s := Student{ID: "8327", Name: "Alan Shearer", Coursework: [3]int{20, 20, 20}, Exam: 100}
	assert.Equal(t, Scorecard{
		ID:              "8327",
		Name:            "Alan Shearer",
		Coursework:      [3]int{20, 20, 20},
		CourseworkTotal: 60,
		Exam:            100,
		Percent:         100,
		Grade:           GradeA,
		Valid:           true,
	}, s.Scorecard())

	bad := Student{ID: "1111", Name: "Bad Row", Raw: []string{"1111", "Bad Row", "x", "1", "2", "3"}}
	sc := bad.Scorecard()
	assert.False(t, sc.Valid)
	assert.Empty(t, sc.Grade)
	assert.Equal(t, bad.Raw, bad.Fields())
}

func TestNewStudent_Validate(t *testing.T) {
	valid := func() NewStudent {
		return NewStudent{ID: "4521", Name: "Ada Lovelace", CW1: "18", CW2: "19", CW3: "20", Exam: "95"}
	}
	with := func(f func(ns *NewStudent)) NewStudent {
		ns := valid()
		f(&ns)
		return ns
	}

	tests := []struct {
		name      string
		ns        NewStudent
		wantField string
	}{
		{name: "valid", ns: valid()},
		{name: "valid with padding", ns: with(func(ns *NewStudent) { ns.ID, ns.Exam = " 4521 ", " 0 " })},
		{name: "missing id", ns: with(func(ns *NewStudent) { ns.ID = "" }), wantField: "id"},
		{name: "short id", ns: with(func(ns *NewStudent) { ns.ID = "123" }), wantField: "id"},
		{name: "long id", ns: with(func(ns *NewStudent) { ns.ID = "12345" }), wantField: "id"},
		{name: "non numeric id", ns: with(func(ns *NewStudent) { ns.ID = "12a4" }), wantField: "id"},
		{name: "blank name", ns: with(func(ns *NewStudent) { ns.Name = "   " }), wantField: "name"},
		{name: "name with comma", ns: with(func(ns *NewStudent) { ns.Name = "Lovelace, Ada" }), wantField: "name"},
		{name: "coursework too high", ns: with(func(ns *NewStudent) { ns.CW1 = "21" }), wantField: "cw1"},
		{name: "negative coursework", ns: with(func(ns *NewStudent) { ns.CW2 = "-1" }), wantField: "cw2"},
		{name: "non numeric coursework", ns: with(func(ns *NewStudent) { ns.CW3 = "ten" }), wantField: "cw3"},
		{name: "exam too high", ns: with(func(ns *NewStudent) { ns.Exam = "101" }), wantField: "exam"},
		{name: "decimal exam", ns: with(func(ns *NewStudent) { ns.Exam = "50.5" }), wantField: "exam"},
		{name: "missing exam", ns: with(func(ns *NewStudent) { ns.Exam = "" }), wantField: "exam"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := tt.ns.Validate()
			if tt.wantField == "" {
				require.NoError(t, err)
				assert.True(t, ValidID(s.ID))
				assert.True(t, s.Valid())
				return
			}
			var vErr *core.ValidationError
			require.True(t, errors.As(err, &vErr), "want *core.ValidationError, got %v", err)
			assert.True(t, vErr.HasField(tt.wantField), "fields = %+v", vErr.Fields)
			assert.Len(t, vErr.Fields, 1)
		})
	}
}

func TestNewStudent_Validate_messages(t *testing.T) {
	ns := NewStudent{ID: "12", Name: "", CW1: "25", CW2: "1", CW3: "1", Exam: "200"}
	_, err := ns.Validate()

	var vErr *core.ValidationError
	require.True(t, errors.As(err, &vErr))
	msgs := make(map[string]string, len(vErr.Fields))
	for _, fe := range vErr.Fields {
		msgs[fe.Field] = fe.Error
	}
	assert.Equal(t, map[string]string{
		"id":   "student ID must be exactly 4 digits",
		"name": "this field cannot be blank",
		"cw1":  "must be a whole number between 0 and 20",
		"exam": "must be a whole number between 0 and 100",
	}, msgs)
}

func TestParseDirection(t *testing.T) {
	for in, want := range map[string]Direction{"asc": Ascending, "DESC": Descending, " Asc ": Ascending} {
		got, err := ParseDirection(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := ParseDirection("up")
	assert.True(t, core.IsValidation(err))
}
