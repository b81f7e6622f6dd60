package core

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsDigits(t *testing.T) {
	for s, want := range map[string]bool{"": false, "0": true, "0123": true, "12a": false, "-1": false, " 1": false} {
		assert.Equal(t, want, IsDigits(s), "IsDigits(%q)", s)
	}
}

func TestValidate_customTags(t *testing.T) {
	type form struct {
		Label string `json:"label" validate:"notblank,nodelim"`
		Mark  string `json:"mark" validate:"required,mark=20"`
	}

	tests := []struct {
		name    string
		f       form
		wantMsg map[string]string
	}{
		{name: "valid", f: form{Label: "ok", Mark: "20"}},
		{name: "zero mark", f: form{Label: "ok", Mark: "0"}},
		{name: "blank", f: form{Label: "  ", Mark: "1"}, wantMsg: map[string]string{"label": "this field cannot be blank"}},
		{name: "delimiter", f: form{Label: "a,b", Mark: "1"}, wantMsg: map[string]string{"label": "commas and line breaks are not allowed"}},
		{name: "newline", f: form{Label: "a\nb", Mark: "1"}, wantMsg: map[string]string{"label": "commas and line breaks are not allowed"}},
		{name: "missing mark", f: form{Label: "ok"}, wantMsg: map[string]string{"mark": "this field is required"}},
		{name: "mark too high", f: form{Label: "ok", Mark: "21"}, wantMsg: map[string]string{"mark": "must be a whole number between 0 and 20"}},
		{name: "signed mark", f: form{Label: "ok", Mark: "+5"}, wantMsg: map[string]string{"mark": "must be a whole number between 0 and 20"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate.Struct(tt.f)
			if tt.wantMsg == nil {
				assert.NoError(t, err)
				return
			}
			var vErr *ValidationError
			require.True(t, errors.As(NewValidationErrorFrom(err), &vErr))
			got := make(map[string]string)
			for _, fe := range vErr.Fields {
				got[fe.Field] = fe.Error
			}
			assert.Equal(t, tt.wantMsg, got)
		})
	}
}

func TestErrors(t *testing.T) {
	nf := errors.Wrap(NewNotFoundError("student", "1345"), "finding")
	assert.True(t, IsNotFound(nf))
	assert.False(t, IsValidation(nf))
	assert.EqualError(t, nf, `finding: student "1345" not found`)

	cause := errors.New("permission denied")
	ioErr := NewIOError("save", "/tmp/marks.txt", cause)
	assert.True(t, IsIO(ioErr))
	assert.True(t, errors.Is(ioErr, cause))
	assert.EqualError(t, ioErr, "save /tmp/marks.txt: permission denied")

	vErr := NewValidationError(nil, FieldError{Field: "id", Error: "bad"}, FieldError{Field: "exam", Error: "too high"})
	assert.EqualError(t, vErr, "id: bad; exam: too high")
	assert.True(t, IsValidation(errors.WithStack(vErr)))
}
