package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-read-sync/internal/logger"
	"github.com/MKhiriev/go-read-sync/internal/store"
	"github.com/MKhiriev/go-read-sync/internal/utils"
	"github.com/MKhiriev/go-read-sync/models"
)

func (h *Handler) pullRows(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.pullRows").Msg("no user ID was given")
		http.Error(w, "no user ID was given", http.StatusBadRequest)
		return
	}
	deviceID, _ := utils.GetDeviceIDFromContext(ctx)

	since, err := parseCursorParam(r, "since")
	if err != nil {
		log.Err(err).Str("func", "*Handler.pullRows").Msg("invalid `since` query parameter")
		http.Error(w, "invalid `since` query parameter", http.StatusBadRequest)
		return
	}
	limit, err := parseLimitParam(r)
	if err != nil {
		log.Err(err).Str("func", "*Handler.pullRows").Msg("invalid `limit` query parameter")
		http.Error(w, "invalid `limit` query parameter", http.StatusBadRequest)
		return
	}

	response, err := h.services.SyncService.PullRows(ctx, store.PullQuery{
		Table:         chi.URLParam(r, "table"),
		UserID:        userID,
		Since:         since,
		EntityID:      r.URL.Query().Get("entityId"),
		ExcludeDevice: deviceID,
		Limit:         limit,
	})
	if err != nil {
		log.Err(err).Str("func", "*Handler.pullRows").Msg("error pulling rows")
		http.Error(w, "error pulling rows", statusFromError(err))
		return
	}

	utils.WriteJSON(w, response, http.StatusOK)
}

func (h *Handler) pushRows(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.pushRows").Msg("no user ID was given")
		http.Error(w, "no user ID was given", http.StatusBadRequest)
		return
	}

	var pushRequest models.PushRequest
	if err := json.NewDecoder(r.Body).Decode(&pushRequest); err != nil {
		log.Err(err).Str("func", "*Handler.pushRows").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	response, err := h.services.SyncService.PushRows(ctx, chi.URLParam(r, "table"), userID, pushRequest)
	if err != nil {
		log.Err(err).Str("func", "*Handler.pushRows").Msg("error merging pushed rows")
		http.Error(w, "error merging pushed rows", statusFromError(err))
		return
	}

	utils.WriteJSON(w, response, http.StatusOK)
}

func (h *Handler) currentTimestamp(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	response, err := h.services.SyncService.CurrentTimestamp(ctx)
	if err != nil {
		log.Err(err).Str("func", "*Handler.currentTimestamp").Msg("error getting current server timestamp")
		http.Error(w, "error getting current server timestamp", statusFromError(err))
		return
	}

	utils.WriteJSON(w, response, http.StatusOK)
}

// parseCursorParam reads an int64 query parameter, defaulting to 0 when it
// is absent.
func parseCursorParam(r *http.Request, name string) (int64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, nil
	}
	return strconv.ParseInt(raw, 10, 64)
}

// parseLimitParam reads the `limit` query parameter. Zero means "use the
// server default"; the service clamps whatever comes in.
func parseLimitParam(r *http.Request) (int, error) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return 0, nil
	}
	return strconv.Atoi(raw)
}
