package flatfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"

	"github.com/trezcool/marksheet/core"
	"github.com/trezcool/marksheet/core/student"
	"github.com/trezcool/marksheet/tests"
)

func TestStudentRepository_Load(t *testing.T) {
	repo := NewStudentRepository(testutil.TempDataFile(t, testutil.SeedFile))
	got, err := repo.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if diff := cmp.Diff(student.Seed(), got); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}
}

func TestStudentRepository_Load_missing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.txt")
	_, err := NewStudentRepository(path).Load()

	var nf *core.NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("Load() error = %v, want *core.NotFoundError", err)
	}
	if nf.ID != path {
		t.Errorf("NotFoundError.ID = %s, want %s", nf.ID, path)
	}
}

func TestStudentRepository_Load_unreadable(t *testing.T) {
	// a directory can be opened but not read as a file
	_, err := NewStudentRepository(t.TempDir()).Load()
	if !core.IsIO(err) {
		t.Errorf("Load() error = %v, want *core.IOError", err)
	}
}

func TestStudentRepository_Save(t *testing.T) {
	path := filepath.Join(t.TempDir(), "studentMarks.txt")
	repo := NewStudentRepository(path)

	if err := repo.Save(student.Seed()); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if got := testutil.ReadFile(t, path); got != testutil.SeedFile {
		t.Errorf("Save() wrote %q, want %q", got, testutil.SeedFile)
	}

	got, err := repo.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if diff := cmp.Diff(student.Seed(), got); diff != "" {
		t.Errorf("Load() after Save() mismatch (-want +got):\n%s", diff)
	}

	// no temp files are left behind
	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("directory holds %d entries, want 1", len(entries))
	}
}

func TestStudentRepository_Save_keepsMalformedRows(t *testing.T) {
	content := "2\n1345,John Curry,8,abc,7,45\n2345,Sam Sturtivant,14,15,14,77\n"
	path := testutil.TempDataFile(t, content)
	repo := NewStudentRepository(path)

	students, err := repo.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if err := repo.Save(students); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if got := testutil.ReadFile(t, path); got != content {
		t.Errorf("Save() wrote %q, want %q", got, content)
	}
}

func TestStudentRepository_Save_failure(t *testing.T) {
	defer func() { renameFunc = os.Rename }()
	renameFunc = func(string, string) error { return errors.New("device busy") }

	path := testutil.TempDataFile(t, testutil.SeedFile)
	err := NewStudentRepository(path).Save(nil)

	var ioErr *core.IOError
	if !errors.As(err, &ioErr) {
		t.Fatalf("Save() error = %v, want *core.IOError", err)
	}
	if ioErr.Op != "save" {
		t.Errorf("IOError.Op = %s, want save", ioErr.Op)
	}
	if got := testutil.ReadFile(t, path); got != testutil.SeedFile {
		t.Errorf("a failed Save() changed the file to %q", got)
	}
	entries, _ := os.ReadDir(filepath.Dir(path))
	if len(entries) != 1 {
		t.Errorf("directory holds %d entries after a failed save, want 1", len(entries))
	}
}

func TestStudentRepository_Save_noDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "studentMarks.txt")
	if err := NewStudentRepository(path).Save(student.Seed()); !core.IsIO(err) {
		t.Errorf("Save() error = %v, want *core.IOError", err)
	}
}

func TestStudentRepository_Save_fileMode(t *testing.T) {
	tests := []struct {
		name     string
		existing os.FileMode // 0 for no file yet
		want     os.FileMode
	}{
		{name: "new file", want: newFileMode},
		{name: "keeps 0644", existing: 0o644, want: 0o644},
		{name: "keeps 0640", existing: 0o640, want: 0o640},
		{name: "keeps 0666", existing: 0o666, want: 0o666},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "studentMarks.txt")
			if tt.existing != 0 {
				if err := os.WriteFile(path, []byte(testutil.SeedFile), tt.existing); err != nil {
					t.Fatal(err)
				}
				// WriteFile is subject to the umask
				if err := os.Chmod(path, tt.existing); err != nil {
					t.Fatal(err)
				}
			}
			if err := NewStudentRepository(path).Save(student.Seed()); err != nil {
				t.Fatalf("Save() error = %v", err)
			}
			fi, err := os.Stat(path)
			if err != nil {
				t.Fatal(err)
			}
			if got := fi.Mode().Perm(); got != tt.want {
				t.Errorf("file mode = %v, want %v", got, tt.want)
			}
		})
	}
}
