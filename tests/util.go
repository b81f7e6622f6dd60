package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/trezcool/marksheet/core/student"
	logsvc "github.com/trezcool/marksheet/services/logger"
	"github.com/trezcool/marksheet/storage/dummy"
)

// SeedService returns a Service over an in-memory store holding `students`,
// or the default dataset when none are given.
func SeedService(t *testing.T, students ...student.Student) (*student.Service, *dummydb.DB) {
	t.Helper()
	if len(students) == 0 {
		students = student.Seed()
	}
	db, err := dummydb.Open(students...)
	if err != nil {
		t.Fatalf("SeedService() failed: %v", err)
	}
	return student.NewService(dummydb.NewStudentRepository(db), logsvc.NopLogger{}), db
}

// EmptyService returns a Service over an in-memory store that was never saved.
func EmptyService(t *testing.T) (*student.Service, *dummydb.DB) {
	t.Helper()
	db, err := dummydb.Open()
	if err != nil {
		t.Fatalf("EmptyService() failed: %v", err)
	}
	return student.NewService(dummydb.NewStudentRepository(db), logsvc.NopLogger{}), db
}

// TempDataFile writes content to a marks file in a fresh temp dir and returns its path.
func TempDataFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "studentMarks.txt")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("TempDataFile() failed: %v", err)
	}
	return path
}

// ReadFile returns the content of path as a string.
func ReadFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() failed: %v", err)
	}
	return string(data)
}

// SeedFile is the marks file the default dataset is saved as.
const SeedFile = `10
1345,John Curry,8,15,7,45
2345,Sam Sturtivant,14,15,14,77
9876,Lee Scott,17,11,16,99
3724,Matt Thompson,19,11,15,81
1212,Ron Herrema,14,17,18,66
8439,Jake Hobbs,10,11,10,43
2344,Jo Hyde,6,15,10,55
9384,Gareth Southgate,5,6,8,33
8327,Alan Shearer,20,20,20,100
2983,Les Ferdinand,15,17,18,92
`
