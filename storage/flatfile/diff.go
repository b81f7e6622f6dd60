package flatfile

import (
	"github.com/pmezard/go-difflib/difflib"

	"github.com/trezcool/marksheet/core/student"
)

// Diff returns a unified diff between the file contents of `before` and `after`.
// It is empty when both encode to the same file.
func Diff(name string, before, after []student.Student) (string, error) {
	return difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(EncodeToString(before)),
		B:        difflib.SplitLines(EncodeToString(after)),
		FromFile: name,
		ToFile:   name + " (new)",
		Context:  2,
	})
}
