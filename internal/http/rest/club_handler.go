package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/wodnd0131/kiwes-api/internal/model"
	"github.com/wodnd0131/kiwes-api/util"
	"github.com/wodnd0131/kiwes-api/util/tracing"
	"github.com/wodnd0131/kiwes-api/util/values"
)

func (api *API) ClubRoutes() chi.Router {
	mux := chi.NewRouter()

	mux.Group(func(r chi.Router) {
		r.Use(api.RequireLogin)

		r.Method(http.MethodPost, "/", Handler(api.CreateClubHandler))
		r.Method(http.MethodPut, "/{clubID}", Handler(api.UpdateClubHandler))
		r.Method(http.MethodDelete, "/{clubID}", Handler(api.DeleteClubHandler))
		r.Method(http.MethodPatch, "/{clubID}/thumbnail", Handler(api.SetClubThumbnailHandler))

		r.Method(http.MethodPost, "/{clubID}/apply", Handler(api.ApplyClubHandler))
		r.Method(http.MethodPost, "/{clubID}/approve/{memberID}", Handler(api.ApproveMemberHandler))
		r.Method(http.MethodDelete, "/{clubID}/deny/{memberID}", Handler(api.DenyMemberHandler))
		r.Method(http.MethodDelete, "/{clubID}/kick/{memberID}", Handler(api.KickMemberHandler))

		r.Method(http.MethodGet, "/popular", Handler(api.PopularClubsHandler))
		r.Method(http.MethodGet, "/recommended", Handler(api.RecommendedClubsHandler))
		r.Method(http.MethodGet, "/popular-random", Handler(api.PopularRandomClubsHandler))
	})

	return mux
}

func (api *API) CreateClubHandler(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	var req model.ClubArticleRequest
	if err := util.DecodeJSONBody(&tc, r.Body, &req); err != nil {
		return respondWithError(err, "Invalid request payload", values.BadRequestBody, &tc)
	}
	if err := util.ValidateStruct(req); err != nil {
		return respondWithError(err, "Invalid club article", values.Unprocessable, &tc)
	}

	memberID, err := util.GetMemberIDFromContext(r.Context())
	if err != nil {
		return respondWithError(err, "unable to get member ID from context", values.NotAuthorised, &tc)
	}
	host, err := api.GetMemberByID(r.Context(), memberID.String())
	if err != nil {
		return respondWithDomainError(err, "Failed to load member", &tc)
	}

	club, err := clubFromRequest(req)
	if err != nil {
		return respondWithDomainError(err, "Unrecognized gender value", &tc)
	}

	created, err := api.CreateClub(r.Context(), club, req.Languages, req.Category, host)
	if err != nil {
		return respondWithDomainError(err, "Failed to create club", &tc)
	}

	return &ServerResponse{
		Message:    "Club created successfully",
		Status:     values.Created,
		StatusCode: util.StatusCode(values.Created),
		Data:       created,
	}
}

func (api *API) UpdateClubHandler(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	clubID, err := util.StringToUUID(chi.URLParam(r, "clubID"))
	if err != nil {
		return respondWithError(err, "invalid club id", values.BadRequestBody, &tc)
	}

	var req model.ClubArticleRequest
	if err := util.DecodeJSONBody(&tc, r.Body, &req); err != nil {
		return respondWithError(err, "Invalid request payload", values.BadRequestBody, &tc)
	}
	if err := util.ValidateStruct(req); err != nil {
		return respondWithError(err, "Invalid club article", values.Unprocessable, &tc)
	}

	memberID, err := util.GetMemberIDFromContext(r.Context())
	if err != nil {
		return respondWithError(err, "unable to get member ID from context", values.NotAuthorised, &tc)
	}
	if err := api.requireHost(r.Context(), clubID, memberID); err != nil {
		return respondWithDomainError(err, "Only the host may edit the club", &tc)
	}
	host, err := api.GetMemberByID(r.Context(), memberID.String())
	if err != nil {
		return respondWithDomainError(err, "Failed to load member", &tc)
	}

	club, err := clubFromRequest(req)
	if err != nil {
		return respondWithDomainError(err, "Unrecognized gender value", &tc)
	}

	updated, err := api.UpdateClub(r.Context(), clubID, club, req.Languages, req.Category, host)
	if err != nil {
		return respondWithDomainError(err, "Failed to update club", &tc)
	}

	return &ServerResponse{
		Message:    "Club updated successfully",
		Status:     values.Success,
		StatusCode: util.StatusCode(values.Success),
		Data:       updated,
	}
}

func (api *API) DeleteClubHandler(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	clubID, err := util.StringToUUID(chi.URLParam(r, "clubID"))
	if err != nil {
		return respondWithError(err, "invalid club id", values.BadRequestBody, &tc)
	}
	memberID, err := util.GetMemberIDFromContext(r.Context())
	if err != nil {
		return respondWithError(err, "unable to get member ID from context", values.NotAuthorised, &tc)
	}
	if err := api.requireHost(r.Context(), clubID, memberID); err != nil {
		return respondWithDomainError(err, "Only the host may delete the club", &tc)
	}

	if err := api.DeleteClub(r.Context(), clubID); err != nil {
		return respondWithDomainError(err, "Failed to delete club", &tc)
	}

	return &ServerResponse{
		Message:    "Club deleted successfully",
		Status:     values.Success,
		StatusCode: util.StatusCode(values.Success),
	}
}

func (api *API) SetClubThumbnailHandler(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	clubID, err := util.StringToUUID(chi.URLParam(r, "clubID"))
	if err != nil {
		return respondWithError(err, "invalid club id", values.BadRequestBody, &tc)
	}
	memberID, err := util.GetMemberIDFromContext(r.Context())
	if err != nil {
		return respondWithError(err, "unable to get member ID from context", values.NotAuthorised, &tc)
	}
	if err := api.requireHost(r.Context(), clubID, memberID); err != nil {
		return respondWithDomainError(err, "Only the host may change the thumbnail", &tc)
	}

	thumbnail, err := api.SetClubThumbnail(r.Context(), clubID)
	if err != nil {
		return respondWithDomainError(err, "Failed to set thumbnail", &tc)
	}

	return &ServerResponse{
		Message:    "Thumbnail updated",
		Status:     values.Success,
		StatusCode: util.StatusCode(values.Success),
		Data:       map[string]string{"thumbnail_url": thumbnail},
	}
}
