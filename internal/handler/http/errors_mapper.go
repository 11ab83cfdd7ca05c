package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-read-sync/internal/service"
	"github.com/MKhiriev/go-read-sync/internal/store"
)

var errorStatusMap = map[error]int{
	store.ErrUnknownTable:     http.StatusBadRequest,
	store.ErrPolicyViolation:  http.StatusBadRequest,
	service.ErrNoItems:        http.StatusBadRequest,
	service.ErrInvalidCursor:  http.StatusBadRequest,
	service.ErrInvalidItems:   http.StatusBadRequest,
	store.ErrRowNotFound:      http.StatusNotFound,
	store.ErrNoDeviceIdentity: http.StatusInternalServerError,

	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrExecutingStatement:   http.StatusInternalServerError,
	store.ErrScanningRow:          http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
