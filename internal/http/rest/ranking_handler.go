package rest

import (
	"net/http"

	"github.com/wodnd0131/kiwes-api/util"
	"github.com/wodnd0131/kiwes-api/util/tracing"
	"github.com/wodnd0131/kiwes-api/util/values"
)

func (api *API) PopularClubsHandler(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	viewerID, err := util.GetMemberIDFromContext(r.Context())
	if err != nil {
		return respondWithError(err, "unable to get member ID from context", values.NotAuthorised, &tc)
	}

	clubs, err := api.ListClubsByHeartCount(r.Context(), false)
	if err != nil {
		return respondWithError(err, "Failed to list popular clubs", values.Error, &tc)
	}
	if len(clubs) == 0 {
		clubs, err = api.ListClubsByHeartCount(r.Context(), true)
		if err != nil {
			return respondWithError(err, "Failed to list popular clubs", values.Error, &tc)
		}
	}

	response, err := api.decorateRankedClubs(r.Context(), clubs, viewerID)
	if err != nil {
		return respondWithDomainError(err, "Failed to build popular club list", &tc)
	}

	return &ServerResponse{
		Message:    "Popular clubs returned successfully",
		Status:     values.Success,
		StatusCode: util.StatusCode(values.Success),
		Data:       response,
	}
}

func (api *API) RecommendedClubsHandler(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	viewerID, err := util.GetMemberIDFromContext(r.Context())
	if err != nil {
		return respondWithError(err, "unable to get member ID from context", values.NotAuthorised, &tc)
	}

	languageIDs, err := api.GetMemberLanguageIDs(r.Context(), viewerID)
	if err != nil {
		return respondWithError(err, "Failed to load member languages", values.Error, &tc)
	}

	clubs, err := api.ListClubsByLanguageMatch(r.Context(), languageIDs, false)
	if err != nil {
		return respondWithError(err, "Failed to list recommended clubs", values.Error, &tc)
	}
	if len(clubs) == 0 {
		clubs, err = api.ListClubsByLanguageMatch(r.Context(), languageIDs, true)
		if err != nil {
			return respondWithError(err, "Failed to list recommended clubs", values.Error, &tc)
		}
	}

	response, err := api.decorateRankedClubs(r.Context(), clubs, viewerID)
	if err != nil {
		return respondWithDomainError(err, "Failed to build recommended club list", &tc)
	}

	return &ServerResponse{
		Message:    "Recommended clubs returned successfully",
		Status:     values.Success,
		StatusCode: util.StatusCode(values.Success),
		Data:       response,
	}
}

func (api *API) PopularRandomClubsHandler(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	viewerID, err := util.GetMemberIDFromContext(r.Context())
	if err != nil {
		return respondWithError(err, "unable to get member ID from context", values.NotAuthorised, &tc)
	}

	clubs, err := api.ListRandomPopularClubs(r.Context())
	if err != nil {
		return respondWithError(err, "Failed to list random popular clubs", values.Error, &tc)
	}

	response, err := api.decorateRankedClubs(r.Context(), clubs, viewerID)
	if err != nil {
		return respondWithDomainError(err, "Failed to build random popular club list", &tc)
	}

	return &ServerResponse{
		Message:    "Random popular clubs returned successfully",
		Status:     values.Success,
		StatusCode: util.StatusCode(values.Success),
		Data:       response,
	}
}
