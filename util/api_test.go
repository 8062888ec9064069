package util

import (
	"context"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/wodnd0131/kiwes-api/util/values"
)

func TestStatusCode(t *testing.T) {
	testCases := []struct {
		status string
		want   int
	}{
		{values.Success, http.StatusOK},
		{values.Created, http.StatusCreated},
		{values.Error, http.StatusInternalServerError},
		{values.BadRequestBody, http.StatusBadRequest},
		{values.Unprocessable, http.StatusUnprocessableEntity},
		{values.NotAllowed, http.StatusForbidden},
		{values.Conflict, http.StatusConflict},
		{values.NotFound, http.StatusNotFound},
		{values.NotAuthorised, http.StatusUnauthorized},
		{values.TokenExpired, http.StatusUnauthorized},
		{"something else", http.StatusOK},
	}

	for _, tc := range testCases {
		t.Run(tc.status, func(t *testing.T) {
			if got := StatusCode(tc.status); got != tc.want {
				t.Errorf("StatusCode(%q) = %d; want %d", tc.status, got, tc.want)
			}
		})
	}
}

func TestGetMemberIDFromContext(t *testing.T) {
	id := uuid.New()

	ctx := context.WithValue(context.Background(), "member_id", id.String())
	got, err := GetMemberIDFromContext(ctx)
	if err != nil {
		t.Fatalf("GetMemberIDFromContext returned error %v", err)
	}
	if got != id {
		t.Errorf("GetMemberIDFromContext = %v; want %v", got, id)
	}

	if _, err := GetMemberIDFromContext(context.Background()); err == nil {
		t.Error("expected error for context without member ID")
	}

	badCtx := context.WithValue(context.Background(), "member_id", "not-a-uuid")
	if _, err := GetMemberIDFromContext(badCtx); err == nil {
		t.Error("expected error for malformed member ID")
	}
}
