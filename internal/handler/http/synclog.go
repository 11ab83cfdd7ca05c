package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-read-sync/internal/logger"
	"github.com/MKhiriev/go-read-sync/internal/store"
	"github.com/MKhiriev/go-read-sync/internal/utils"
	"github.com/MKhiriev/go-read-sync/models"
)

func (h *Handler) pullLog(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.pullLog").Msg("no user ID was given")
		http.Error(w, "no user ID was given", http.StatusBadRequest)
		return
	}
	deviceID, _ := utils.GetDeviceIDFromContext(ctx)

	since, err := parseCursorParam(r, "since")
	if err != nil {
		log.Err(err).Str("func", "*Handler.pullLog").Msg("invalid `since` query parameter")
		http.Error(w, "invalid `since` query parameter", http.StatusBadRequest)
		return
	}
	limit, err := parseLimitParam(r)
	if err != nil {
		log.Err(err).Str("func", "*Handler.pullLog").Msg("invalid `limit` query parameter")
		http.Error(w, "invalid `limit` query parameter", http.StatusBadRequest)
		return
	}

	response, err := h.services.SyncService.PullLog(ctx, store.LogPullQuery{
		Table:         chi.URLParam(r, "table"),
		UserID:        userID,
		Since:         since,
		EntityID:      r.URL.Query().Get("entityId"),
		ExcludeDevice: deviceID,
		Limit:         limit,
	})
	if err != nil {
		log.Err(err).Str("func", "*Handler.pullLog").Msg("error pulling log entries")
		http.Error(w, "error pulling log entries", statusFromError(err))
		return
	}

	utils.WriteJSON(w, response, http.StatusOK)
}

func (h *Handler) appendLog(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.appendLog").Msg("no user ID was given")
		http.Error(w, "no user ID was given", http.StatusBadRequest)
		return
	}

	var pushRequest models.LogPushRequest
	if err := json.NewDecoder(r.Body).Decode(&pushRequest); err != nil {
		log.Err(err).Str("func", "*Handler.appendLog").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	response, err := h.services.SyncService.AppendLog(ctx, chi.URLParam(r, "table"), userID, pushRequest)
	if err != nil {
		log.Err(err).Str("func", "*Handler.appendLog").Msg("error appending log entries")
		http.Error(w, "error appending log entries", statusFromError(err))
		return
	}

	utils.WriteJSON(w, response, http.StatusOK)
}
