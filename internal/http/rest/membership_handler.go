package rest

import (
	"fmt"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/wodnd0131/kiwes-api/internal/model"
	"github.com/wodnd0131/kiwes-api/util"
	"github.com/wodnd0131/kiwes-api/util/tracing"
	"github.com/wodnd0131/kiwes-api/util/values"
)

func (api *API) ApplyClubHandler(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	clubID, err := util.StringToUUID(chi.URLParam(r, "clubID"))
	if err != nil {
		return respondWithError(err, "invalid club id", values.BadRequestBody, &tc)
	}
	memberID, err := util.GetMemberIDFromContext(r.Context())
	if err != nil {
		return respondWithError(err, "unable to get member ID from context", values.NotAuthorised, &tc)
	}

	club, err := api.GetClubByID(r.Context(), clubID)
	if err != nil {
		return respondWithDomainError(err, "Failed to load club", &tc)
	}

	// Existing row means the member is the host, already approved, or
	// already waiting; the unique constraint backs this check up either way.
	if _, err := api.GetClubMember(r.Context(), clubID, memberID); err == nil {
		return respondWithDomainError(model.ErrAlreadyApplied, "Already applied to this club", &tc)
	} else if !errors.Is(err, model.ErrMemberNotFound) {
		return respondWithDomainError(err, "Failed to check membership", &tc)
	}

	if err := api.ApplyToClub(r.Context(), clubID, memberID); err != nil {
		return respondWithDomainError(err, "Failed to apply to club", &tc)
	}

	if host, err := api.FindClubHost(r.Context(), clubID); err == nil {
		api.postAlarm(r.Context(), host.MemberID, clubID, model.AlarmApply,
			fmt.Sprintf("A new member applied to %s", club.Title))
	} else {
		log.Printf("[%s] no host for club %s: %v", tc.RequestID, clubID, err)
	}

	return &ServerResponse{
		Message:    "Applied to club",
		Status:     values.Created,
		StatusCode: util.StatusCode(values.Created),
	}
}

func (api *API) ApproveMemberHandler(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	clubID, targetID, resp := api.membershipTarget(r, &tc)
	if resp != nil {
		return resp
	}

	joined, err := api.ApproveMember(r.Context(), clubID, targetID)
	if err != nil {
		return respondWithDomainError(err, "Failed to approve member", &tc)
	}

	api.postAlarm(r.Context(), targetID, clubID, model.AlarmApproved,
		fmt.Sprintf("You were approved into %s", joined.ClubTitle))

	return &ServerResponse{
		Message:    "Member approved",
		Status:     values.Success,
		StatusCode: util.StatusCode(values.Success),
		Data:       joined,
	}
}

func (api *API) DenyMemberHandler(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	clubID, targetID, resp := api.membershipTarget(r, &tc)
	if resp != nil {
		return resp
	}

	if err := api.DenyMember(r.Context(), clubID, targetID); err != nil {
		return respondWithDomainError(err, "Failed to deny member", &tc)
	}

	return &ServerResponse{
		Message:    "Application denied",
		Status:     values.Success,
		StatusCode: util.StatusCode(values.Success),
	}
}

func (api *API) KickMemberHandler(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	clubID, targetID, resp := api.membershipTarget(r, &tc)
	if resp != nil {
		return resp
	}

	if err := api.KickMember(r.Context(), clubID, targetID); err != nil {
		return respondWithDomainError(err, "Failed to kick member", &tc)
	}

	api.postAlarm(r.Context(), targetID, clubID, model.AlarmKicked, "You were removed from a club")

	return &ServerResponse{
		Message:    "Member kicked",
		Status:     values.Success,
		StatusCode: util.StatusCode(values.Success),
	}
}

// membershipTarget parses the club and target member from the URL and
// rejects requesters that are not the club's host.
func (api *API) membershipTarget(r *http.Request, tc *tracing.Context) (uuid.UUID, uuid.UUID, *ServerResponse) {
	clubID, err := util.StringToUUID(chi.URLParam(r, "clubID"))
	if err != nil {
		return uuid.Nil, uuid.Nil, respondWithError(err, "invalid club id", values.BadRequestBody, tc)
	}
	targetID, err := util.StringToUUID(chi.URLParam(r, "memberID"))
	if err != nil {
		return uuid.Nil, uuid.Nil, respondWithError(err, "invalid member id", values.BadRequestBody, tc)
	}
	requesterID, err := util.GetMemberIDFromContext(r.Context())
	if err != nil {
		return uuid.Nil, uuid.Nil, respondWithError(err, "unable to get member ID from context", values.NotAuthorised, tc)
	}
	if err := api.requireHost(r.Context(), clubID, requesterID); err != nil {
		return uuid.Nil, uuid.Nil, respondWithDomainError(err, "Only the host may manage applicants", tc)
	}
	return clubID, targetID, nil
}
