package rest

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/wodnd0131/kiwes-api/internal/model"
	"github.com/wodnd0131/kiwes-api/util/values"
)

func TestStatusForError(t *testing.T) {
	testCases := []struct {
		name string
		err  error
		want string
	}{
		{"club not found", model.ErrClubNotFound, values.NotFound},
		{"member not found", model.ErrMemberNotFound, values.NotFound},
		{"language not found", model.ErrLanguageNotFound, values.NotFound},
		{"host not found", model.ErrHostNotFound, values.NotFound},
		{"over capacity", model.ErrOverCapacity, values.Conflict},
		{"already approved", model.ErrAlreadyApproved, values.Conflict},
		{"already applied", model.ErrAlreadyApplied, values.Conflict},
		{"not host", model.ErrNotHost, values.NotAllowed},
		{"invalid gender", model.ErrInvalidGender, values.Unprocessable},
		{"wrapped sentinel", errors.Wrap(model.ErrOverCapacity, "approving member"), values.Conflict},
		{"unknown error", errors.New("boom"), values.Error},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := statusForError(tc.err); got != tc.want {
				t.Errorf("statusForError(%v) = %q; want %q", tc.err, got, tc.want)
			}
		})
	}
}
