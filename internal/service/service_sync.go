package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-read-sync/internal/logger"
	"github.com/MKhiriev/go-read-sync/internal/registry"
	"github.com/MKhiriev/go-read-sync/internal/store"
	"github.com/MKhiriev/go-read-sync/internal/validators"
	"github.com/MKhiriev/go-read-sync/models"
)

// Page limit bounds applied to pull requests. A request above the cap is
// clamped rather than rejected.
const (
	DefaultPullPageLimit = 500
	MaxPullPageLimit     = 5000
)

type syncService struct {
	merge     store.MergeStorage
	log       store.LogStorage
	tables    *registry.Registry
	validator validators.Validator
	logger    *logger.Logger
}

// NewSyncService constructs the server-side [SyncService] over the two
// storage repositories and the table registry.
func NewSyncService(merge store.MergeStorage, logStore store.LogStorage, tables *registry.Registry, logger *logger.Logger) SyncService {
	return &syncService{
		merge:     merge,
		log:       logStore,
		tables:    tables,
		validator: validators.NewSyncRowValidator(),
		logger:    logger,
	}
}

// PushRows implements [SyncService].
func (s *syncService) PushRows(ctx context.Context, table string, userID int64, req models.PushRequest) (models.PushResponse, error) {
	if err := s.checkTable(table, registry.PolicyLWW); err != nil {
		return models.PushResponse{}, err
	}
	if len(req.Items) == 0 {
		return models.PushResponse{}, ErrNoItems
	}

	// Malformed rows are rejected individually so one bad row never blocks
	// the rest of the batch; the client keeps them pending and reports the
	// reason through the sync result.
	verdicts := make([]models.PushResult, len(req.Items))
	valid := make([]models.SyncRow, 0, len(req.Items))
	validIdx := make([]int, 0, len(req.Items))
	for i, row := range req.Items {
		if err := s.validator.Validate(ctx, row); err != nil {
			verdicts[i] = models.PushResult{ID: row.ID, Error: err.Error()}
			continue
		}
		valid = append(valid, row)
		validIdx = append(validIdx, i)
	}

	if len(valid) > 0 {
		results, err := s.merge.MergeRows(ctx, table, userID, valid)
		if err != nil {
			return models.PushResponse{}, fmt.Errorf("merge pushed rows: %w", err)
		}
		for j, result := range results {
			verdicts[validIdx[j]] = result
		}
	}

	return models.PushResponse{Results: verdicts}, nil
}

// PullRows implements [SyncService].
func (s *syncService) PullRows(ctx context.Context, query store.PullQuery) (models.PullResponse, error) {
	if err := s.checkTable(query.Table, registry.PolicyLWW); err != nil {
		return models.PullResponse{}, err
	}
	if query.Since < 0 {
		return models.PullResponse{}, ErrInvalidCursor
	}
	query.Limit = clampLimit(query.Limit)

	items, hasMore, err := s.merge.PullRows(ctx, query)
	if err != nil {
		return models.PullResponse{}, fmt.Errorf("pull rows: %w", err)
	}

	cursor := query.Since
	if len(items) > 0 {
		cursor = items[len(items)-1].ServerTimestamp
	}

	return models.PullResponse{
		Items:           items,
		ServerTimestamp: cursor,
		HasMore:         hasMore,
	}, nil
}

// CurrentTimestamp implements [SyncService].
func (s *syncService) CurrentTimestamp(ctx context.Context) (models.TimestampResponse, error) {
	ts, err := s.merge.CurrentTimestamp(ctx)
	if err != nil {
		return models.TimestampResponse{}, fmt.Errorf("current timestamp: %w", err)
	}

	return models.TimestampResponse{ServerTimestamp: ts}, nil
}

// AppendLog implements [SyncService].
func (s *syncService) AppendLog(ctx context.Context, table string, userID int64, req models.LogPushRequest) (models.LogPushResponse, error) {
	if err := s.checkTable(table, registry.PolicyAppendLog); err != nil {
		return models.LogPushResponse{}, err
	}
	if len(req.Items) == 0 {
		return models.LogPushResponse{}, ErrNoItems
	}
	if err := s.validator.Validate(ctx, req); err != nil {
		return models.LogPushResponse{}, fmt.Errorf("%w: %w", ErrInvalidItems, err)
	}

	results, err := s.log.AppendEntries(ctx, table, userID, req.Items)
	if err != nil {
		return models.LogPushResponse{}, fmt.Errorf("append log entries: %w", err)
	}

	return models.LogPushResponse{Results: results}, nil
}

// PullLog implements [SyncService].
func (s *syncService) PullLog(ctx context.Context, query store.LogPullQuery) (models.LogPullResponse, error) {
	if err := s.checkTable(query.Table, registry.PolicyAppendLog); err != nil {
		return models.LogPullResponse{}, err
	}
	if query.Since < 0 {
		return models.LogPullResponse{}, ErrInvalidCursor
	}
	query.Limit = clampLimit(query.Limit)

	items, hasMore, err := s.log.PullEntries(ctx, query)
	if err != nil {
		return models.LogPullResponse{}, fmt.Errorf("pull log entries: %w", err)
	}

	cursor := query.Since
	if len(items) > 0 {
		cursor = items[len(items)-1].Seq
	}

	return models.LogPullResponse{
		Items:   items,
		Seq:     cursor,
		HasMore: hasMore,
	}, nil
}

// checkTable verifies the table is registered and served by the requested
// endpoint family.
func (s *syncService) checkTable(table string, want registry.MergePolicy) error {
	cfg, ok := s.tables.Lookup(table)
	if !ok {
		return fmt.Errorf("%w: %s", store.ErrUnknownTable, table)
	}
	if cfg.Policy != want {
		return fmt.Errorf("%w: table %s is served by the %s endpoints", store.ErrPolicyViolation, table, cfg.Policy)
	}

	return nil
}

func clampLimit(limit int) int {
	switch {
	case limit <= 0:
		return DefaultPullPageLimit
	case limit > MaxPullPageLimit:
		return MaxPullPageLimit
	default:
		return limit
	}
}
