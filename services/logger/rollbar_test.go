package logsvc

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/marksheet/core/student"
)

func TestRollbarLogger_prepare(t *testing.T) {
	l := RollbarLogger{next: NopLogger{}}
	errSave := errors.New("disk full")
	s := student.Seed()[0]

	tests := []struct {
		name string
		args []interface{}
		want []interface{}
	}{
		{
			name: "no args",
			want: []interface{}{"msg", map[string]interface{}{}},
		},
		{
			name: "key values",
			args: []interface{}{"id", "1345", "count", 3},
			want: []interface{}{"msg", map[string]interface{}{"id": "1345", "count": 3}},
		},
		{
			name: "first error is reported",
			args: []interface{}{"error", errSave, "cause", errors.New("other")},
			want: []interface{}{errSave, "msg", map[string]interface{}{"error": "disk full", "cause": "other"}},
		},
		{
			name: "student is sent as its scorecard",
			args: []interface{}{"student", s},
			want: []interface{}{"msg", map[string]interface{}{"student": s.Scorecard()}},
		},
		{
			name: "odd and non string keys are dropped",
			args: []interface{}{42, "x", "id"},
			want: []interface{}{"msg", map[string]interface{}{}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := l.prepare("msg", tt.args)
			require.Len(t, got, len(tt.want))
			assert.Equal(t, tt.want, got)
		})
	}
}
