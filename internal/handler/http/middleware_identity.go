// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-read-sync/internal/logger"
	"github.com/MKhiriev/go-read-sync/internal/utils"
)

const (
	deviceIDHeader = "X-Device-ID"
	userIDHeader   = "X-User-ID"
)

// defaultUserID is assumed when the client sends no X-User-ID header.
// Single-user installations never set the header at all.
const defaultUserID int64 = 1

// withDeviceIdentity extracts the calling device's identity from the request
// headers and stores it in the request context.
//
// X-Device-ID is mandatory: the merge protocol cannot attribute writes or
// exclude a device's own rows from pulls without it. X-User-ID is optional
// and falls back to defaultUserID.
func (h *Handler) withDeviceIdentity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		deviceID := r.Header.Get(deviceIDHeader)
		if deviceID == "" {
			log.Error().Str("func", "*Handler.withDeviceIdentity").Msg("no device ID was given")
			http.Error(w, ErrEmptyDeviceIDHeader.Error(), http.StatusBadRequest)
			return
		}

		userID := defaultUserID
		if raw := r.Header.Get(userIDHeader); raw != "" {
			parsed, err := strconv.ParseInt(raw, 10, 64)
			if err != nil || parsed <= 0 {
				log.Error().Str("func", "*Handler.withDeviceIdentity").Str("user_id", raw).Msg("invalid user ID header")
				http.Error(w, ErrInvalidUserIDHeader.Error(), http.StatusBadRequest)
				return
			}
			userID = parsed
		}

		ctx := context.WithValue(r.Context(), utils.DeviceIDCtxKey, deviceID)
		ctx = context.WithValue(ctx, utils.UserIDCtxKey, userID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
