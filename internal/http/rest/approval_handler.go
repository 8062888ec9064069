package rest

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/wodnd0131/kiwes-api/util"
	"github.com/wodnd0131/kiwes-api/util/tracing"
	"github.com/wodnd0131/kiwes-api/util/values"
)

func (api *API) ApprovalRoutes() chi.Router {
	mux := chi.NewRouter()

	mux.Group(func(r chi.Router) {
		r.Use(api.RequireLogin)

		r.Method(http.MethodGet, "/simple", Handler(api.ApprovalSimpleHandler))
		r.Method(http.MethodGet, "/my-club", Handler(api.HostedClubsHandler))
		r.Method(http.MethodGet, "/my-waitings", Handler(api.WaitingClubsHandler))
		r.Method(http.MethodGet, "/my-club/waiting/{clubID}", Handler(api.WaitingMembersHandler))
	})

	return mux
}

// parseCursor reads the cursor query param; anything unusable means the
// first page.
func parseCursor(r *http.Request) int {
	cursor, err := strconv.Atoi(r.URL.Query().Get("cursor"))
	if err != nil || cursor < 0 {
		return 0
	}
	return cursor
}

func (api *API) ApprovalSimpleHandler(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	memberID, err := util.GetMemberIDFromContext(r.Context())
	if err != nil {
		return respondWithError(err, "unable to get member ID from context", values.NotAuthorised, &tc)
	}

	response, err := api.GetApprovalSimple(r.Context(), memberID)
	if err != nil {
		return respondWithError(err, "Failed to build approval summary", values.Error, &tc)
	}

	return &ServerResponse{
		Message:    "Approval summary returned successfully",
		Status:     values.Success,
		StatusCode: util.StatusCode(values.Success),
		Data:       response,
	}
}

func (api *API) HostedClubsHandler(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	memberID, err := util.GetMemberIDFromContext(r.Context())
	if err != nil {
		return respondWithError(err, "unable to get member ID from context", values.NotAuthorised, &tc)
	}

	clubs, err := api.ListHostedClubs(r.Context(), memberID, parseCursor(r))
	if err != nil {
		return respondWithError(err, "Failed to list hosted clubs", values.Error, &tc)
	}

	return &ServerResponse{
		Message:    "Hosted clubs returned successfully",
		Status:     values.Success,
		StatusCode: util.StatusCode(values.Success),
		Data:       clubs,
	}
}

func (api *API) WaitingClubsHandler(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	memberID, err := util.GetMemberIDFromContext(r.Context())
	if err != nil {
		return respondWithError(err, "unable to get member ID from context", values.NotAuthorised, &tc)
	}

	clubs, err := api.ListWaitingClubs(r.Context(), memberID, parseCursor(r))
	if err != nil {
		return respondWithError(err, "Failed to list waiting clubs", values.Error, &tc)
	}

	return &ServerResponse{
		Message:    "Waiting clubs returned successfully",
		Status:     values.Success,
		StatusCode: util.StatusCode(values.Success),
		Data:       clubs,
	}
}

func (api *API) WaitingMembersHandler(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	clubID, err := util.StringToUUID(chi.URLParam(r, "clubID"))
	if err != nil {
		return respondWithError(err, "invalid club id", values.BadRequestBody, &tc)
	}
	memberID, err := util.GetMemberIDFromContext(r.Context())
	if err != nil {
		return respondWithError(err, "unable to get member ID from context", values.NotAuthorised, &tc)
	}

	// Only the host may see who is waiting on their club.
	if err := api.requireHost(r.Context(), clubID, memberID); err != nil {
		return respondWithDomainError(err, "Only the host may list applicants", &tc)
	}

	members, err := api.ListWaitingMembers(r.Context(), clubID, parseCursor(r))
	if err != nil {
		return respondWithError(err, "Failed to list waiting members", values.Error, &tc)
	}

	return &ServerResponse{
		Message:    "Waiting members returned successfully",
		Status:     values.Success,
		StatusCode: util.StatusCode(values.Success),
		Data:       members,
	}
}
