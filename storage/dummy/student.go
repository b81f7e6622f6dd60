package dummydb

import (
	"github.com/trezcool/marksheet/core"
	"github.com/trezcool/marksheet/core/student"
)

type studentRepository struct {
	db *studentTable
}

var _ student.Repository = (*studentRepository)(nil) // interface compliance check

func NewStudentRepository(db *DB) student.Repository {
	return &studentRepository{db: db.student}
}

func (repo *studentRepository) Load() ([]student.Student, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	if !repo.db.exists {
		return nil, errNoFile
	}
	return repo.db.copyRows(), nil
}

func (repo *studentRepository) Save(students []student.Student) error {
	repo.db.Lock()
	defer repo.db.Unlock()

	if repo.db.saveErr != nil {
		return core.NewIOError("save", "memory", repo.db.saveErr)
	}
	repo.db.rows = make([]student.Student, len(students))
	copy(repo.db.rows, students)
	repo.db.exists = true
	return nil
}
