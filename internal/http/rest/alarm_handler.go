package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/wodnd0131/kiwes-api/util"
	"github.com/wodnd0131/kiwes-api/util/tracing"
	"github.com/wodnd0131/kiwes-api/util/values"
)

func (api *API) AlarmRoutes() chi.Router {
	mux := chi.NewRouter()

	mux.Group(func(r chi.Router) {
		r.Use(api.RequireLogin)

		r.Method(http.MethodGet, "/", Handler(api.ListAlarmsHandler))
		r.Method(http.MethodGet, "/unseen", Handler(api.UnseenAlarmHandler))
	})

	return mux
}

func (api *API) ListAlarmsHandler(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	memberID, err := util.GetMemberIDFromContext(r.Context())
	if err != nil {
		return respondWithError(err, "unable to get member ID from context", values.NotAuthorised, &tc)
	}

	alarms, err := api.ListAlarms(r.Context(), memberID)
	if err != nil {
		return respondWithError(err, "Failed to list alarms", values.Error, &tc)
	}

	return &ServerResponse{
		Message:    "Alarms returned successfully",
		Status:     values.Success,
		StatusCode: util.StatusCode(values.Success),
		Data:       alarms,
	}
}

func (api *API) UnseenAlarmHandler(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	memberID, err := util.GetMemberIDFromContext(r.Context())
	if err != nil {
		return respondWithError(err, "unable to get member ID from context", values.NotAuthorised, &tc)
	}

	unseen, err := api.HasUnseenAlarm(r.Context(), memberID)
	if err != nil {
		return respondWithError(err, "Failed to check alarms", values.Error, &tc)
	}

	return &ServerResponse{
		Message:    "Alarm flag returned successfully",
		Status:     values.Success,
		StatusCode: util.StatusCode(values.Success),
		Data:       map[string]bool{"unseen": unseen},
	}
}
