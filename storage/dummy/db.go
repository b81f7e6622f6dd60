package dummydb

import (
	"sync"

	"github.com/trezcool/marksheet/core"
	"github.com/trezcool/marksheet/core/student"
)

type (
	DB struct {
		student *studentTable
	}

	studentTable struct {
		sync.RWMutex
		rows    []student.Student
		exists  bool  // false until the first save, like a missing file
		saveErr error // returned by the next saves when set
	}
)

// Open returns an in-memory store. With no seed it behaves like a missing data file.
func Open(seed ...student.Student) (*DB, error) {
	db := &DB{
		student: &studentTable{exists: len(seed) > 0},
	}
	db.student.rows = append(db.student.rows, seed...)
	return db, nil
}

// FailSaves makes every following save fail with an IOError wrapping err; nil restores normal saves.
func (db *DB) FailSaves(err error) {
	db.student.Lock()
	defer db.student.Unlock()
	db.student.saveErr = err
}

// Snapshot returns a copy of the stored rows.
func (db *DB) Snapshot() []student.Student {
	db.student.RLock()
	defer db.student.RUnlock()
	return db.student.copyRows()
}

func (t *studentTable) copyRows() []student.Student {
	rows := make([]student.Student, len(t.rows))
	copy(rows, t.rows)
	return rows
}

var errNoFile = core.NewNotFoundError("data file", "memory")
