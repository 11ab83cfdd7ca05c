package store

import (
	"database/sql"

	"github.com/MKhiriev/go-read-sync/internal/logger"
)

// DB wraps the standard database handle together with the logger and the
// driver-specific error classifier used by repositories built on top of it.
type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// ErrorClassificator decides whether a failed database operation is worth
// retrying. Implementations are driver specific.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
