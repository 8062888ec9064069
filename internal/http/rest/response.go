package rest

import (
	"log"
	"net/http"

	"github.com/pkg/errors"
	"github.com/wodnd0131/kiwes-api/internal/model"
	"github.com/wodnd0131/kiwes-api/util"
	"github.com/wodnd0131/kiwes-api/util/tracing"
	"github.com/wodnd0131/kiwes-api/util/values"
)

type ServerResponse struct {
	Message    string      `json:"message"`
	Status     string      `json:"status"`
	StatusCode int         `json:"-"`
	Data       interface{} `json:"data,omitempty"`
}

func respondWithError(err error, message string, status string, tc *tracing.Context) *ServerResponse {
	if tc != nil {
		log.Printf("[%s] %s: %v", tc.RequestID, message, err)
	} else {
		log.Printf("%s: %v", message, err)
	}

	return &ServerResponse{
		Message:    message,
		Status:     status,
		StatusCode: util.StatusCode(status),
	}
}

// respondWithDomainError picks the response status from the business-rule
// error rather than making every call site repeat the mapping.
func respondWithDomainError(err error, message string, tc *tracing.Context) *ServerResponse {
	return respondWithError(err, message, statusForError(err), tc)
}

func statusForError(err error) string {
	switch {
	case errors.Is(err, model.ErrClubNotFound),
		errors.Is(err, model.ErrMemberNotFound),
		errors.Is(err, model.ErrLanguageNotFound),
		errors.Is(err, model.ErrCategoryNotFound),
		errors.Is(err, model.ErrHostNotFound):
		return values.NotFound
	case errors.Is(err, model.ErrOverCapacity),
		errors.Is(err, model.ErrAlreadyApproved),
		errors.Is(err, model.ErrAlreadyApplied):
		return values.Conflict
	case errors.Is(err, model.ErrNotHost):
		return values.NotAllowed
	case errors.Is(err, model.ErrInvalidGender):
		return values.Unprocessable
	default:
		return values.Error
	}
}

func writeJSONResponse(w http.ResponseWriter, resp []byte, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_, _ = w.Write(resp)
}

func writeErrorResponse(w http.ResponseWriter, err error, status string, message string) {
	log.Printf("%s: %v", message, err)

	writeJSONResponse(w, []byte(`{"message":"`+message+`","status":"`+status+`"}`), util.StatusCode(status))
}
