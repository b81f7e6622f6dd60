package flatfile

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/trezcool/marksheet/core"
	"github.com/trezcool/marksheet/core/student"
)

var (
	// mockable
	createTempFunc = os.CreateTemp
	renameFunc     = os.Rename
)

// newFileMode is the mode of a marks file written for the first time.
const newFileMode os.FileMode = 0o644

type studentRepository struct {
	path string
}

var _ student.Repository = (*studentRepository)(nil) // interface compliance check

// NewStudentRepository returns a repository backed by the marks file at path.
func NewStudentRepository(path string) student.Repository {
	return &studentRepository{path: path}
}

func (repo *studentRepository) Load() ([]student.Student, error) {
	f, err := os.Open(repo.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, core.NewNotFoundError("data file", repo.path)
		}
		return nil, core.NewIOError("load", repo.path, errors.WithStack(err))
	}
	defer func() { _ = f.Close() }()

	students, err := Decode(f)
	if err != nil {
		return nil, core.NewIOError("load", repo.path, err)
	}
	return students, nil
}

// Save rewrites the whole file. The content goes to a temp file first, then replaces the
// original, so a failed write leaves the previous content in place.
func (repo *studentRepository) Save(students []student.Student) error {
	if err := writeFile(repo.path, students); err != nil {
		return core.NewIOError("save", repo.path, err)
	}
	return nil
}

func writeFile(path string, students []student.Student) (err error) {
	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}
	tmp, err := createTempFunc(dir, "."+base+".*.tmp")
	if err != nil {
		return errors.Wrap(err, "creating temp file")
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	// the temp file is created 0600; keep the mode of the file it replaces
	mode := newFileMode
	if fi, serr := os.Stat(path); serr == nil {
		mode = fi.Mode().Perm()
	}
	if err = tmp.Chmod(mode); err != nil {
		return errors.Wrap(err, "setting file mode")
	}

	if err = Encode(tmp, students); err != nil {
		return errors.Wrap(err, "writing student records")
	}
	if err = tmp.Sync(); err != nil {
		return errors.Wrap(err, "syncing temp file")
	}
	if err = tmp.Close(); err != nil {
		return errors.Wrap(err, "closing temp file")
	}
	if err = renameFunc(tmp.Name(), path); err != nil {
		return errors.Wrap(err, "replacing data file")
	}
	return nil
}
