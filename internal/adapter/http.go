package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-read-sync/internal/config"
	"github.com/MKhiriev/go-read-sync/internal/logger"
	"github.com/MKhiriev/go-read-sync/internal/utils"
	"github.com/MKhiriev/go-read-sync/models"
	"github.com/go-resty/resty/v2"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	deviceID string
	userID   int64

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter]. It normalises and validates the base URL from
// adapterCfg.HTTPAddress and configures the underlying HTTP client with the
// resolved base URL and request timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as
// a valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	return &httpServerAdapter{client: client, userID: 1, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetDeviceID implements [ServerAdapter]. It stores deviceID
// (whitespace-trimmed) for use in the X-Device-ID header of all subsequent
// requests.
func (h *httpServerAdapter) SetDeviceID(deviceID string) {
	h.deviceID = strings.TrimSpace(deviceID)
}

// DeviceID implements [ServerAdapter]. It returns the device identifier
// currently held by the adapter, or an empty string if none has been set.
func (h *httpServerAdapter) DeviceID() string {
	return h.deviceID
}

// SetUserID overrides the account the adapter acts for. The default of 1
// fits a single-user deployment.
func (h *httpServerAdapter) SetUserID(userID int64) {
	h.userID = userID
}

// identityRequest returns a request builder carrying the device and user
// identity headers the server's middleware requires.
func (h *httpServerAdapter) identityRequest(ctx context.Context) *resty.Request {
	return h.client.R().
		SetContext(ctx).
		SetHeader("X-Device-ID", h.deviceID).
		SetHeader("X-User-ID", strconv.FormatInt(h.userID, 10))
}

// Push implements [ServerAdapter]. It POSTs the batch to
// POST /api/sync/{table} and decodes the per-row verdicts. Returns an error
// if the request fails, the server returns a non-2xx status, or the response
// cannot be decoded.
func (h *httpServerAdapter) Push(ctx context.Context, table string, req models.PushRequest) (models.PushResponse, error) {
	resp, err := h.identityRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/sync/" + url.PathEscape(table))
	if err != nil {
		return models.PushResponse{}, fmt.Errorf("push request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.PushResponse{}, err
	}

	var pushResp models.PushResponse
	if err = json.Unmarshal(resp.Body(), &pushResp); err != nil {
		return models.PushResponse{}, fmt.Errorf("decode push response: %w", err)
	}

	return pushResp, nil
}

// Pull implements [ServerAdapter]. It GETs one page from
// GET /api/sync/{table}?since=&limit=[&entityId=] and decodes the response.
func (h *httpServerAdapter) Pull(ctx context.Context, table string, since int64, entityID string, limit int) (models.PullResponse, error) {
	request := h.identityRequest(ctx).
		SetQueryParam("since", strconv.FormatInt(since, 10)).
		SetQueryParam("limit", strconv.Itoa(limit))
	if entityID != "" {
		request.SetQueryParam("entityId", entityID)
	}

	resp, err := request.Get("/api/sync/" + url.PathEscape(table))
	if err != nil {
		return models.PullResponse{}, fmt.Errorf("pull request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.PullResponse{}, err
	}

	var pullResp models.PullResponse
	if err = json.Unmarshal(resp.Body(), &pullResp); err != nil {
		return models.PullResponse{}, fmt.Errorf("decode pull response: %w", err)
	}

	return pullResp, nil
}

// CurrentTimestamp implements [ServerAdapter]. It GETs
// GET /api/sync/timestamp and returns the server's pull high-water mark.
func (h *httpServerAdapter) CurrentTimestamp(ctx context.Context) (int64, error) {
	resp, err := h.identityRequest(ctx).Get("/api/sync/timestamp")
	if err != nil {
		return 0, fmt.Errorf("timestamp request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return 0, err
	}

	var tsResp models.TimestampResponse
	if err = json.Unmarshal(resp.Body(), &tsResp); err != nil {
		return 0, fmt.Errorf("decode timestamp response: %w", err)
	}

	return tsResp.ServerTimestamp, nil
}

// PushLog implements [ServerAdapter]. It POSTs the batch to
// POST /api/synclog/{table} and decodes the per-entry verdicts.
func (h *httpServerAdapter) PushLog(ctx context.Context, table string, req models.LogPushRequest) (models.LogPushResponse, error) {
	resp, err := h.identityRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/synclog/" + url.PathEscape(table))
	if err != nil {
		return models.LogPushResponse{}, fmt.Errorf("push log request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.LogPushResponse{}, err
	}

	var pushResp models.LogPushResponse
	if err = json.Unmarshal(resp.Body(), &pushResp); err != nil {
		return models.LogPushResponse{}, fmt.Errorf("decode push log response: %w", err)
	}

	return pushResp, nil
}

// PullLog implements [ServerAdapter]. It GETs one page from
// GET /api/synclog/{table}?since=&limit=[&entityId=] and decodes the response.
func (h *httpServerAdapter) PullLog(ctx context.Context, table string, since int64, entityID string, limit int) (models.LogPullResponse, error) {
	request := h.identityRequest(ctx).
		SetQueryParam("since", strconv.FormatInt(since, 10)).
		SetQueryParam("limit", strconv.Itoa(limit))
	if entityID != "" {
		request.SetQueryParam("entityId", entityID)
	}

	resp, err := request.Get("/api/synclog/" + url.PathEscape(table))
	if err != nil {
		return models.LogPullResponse{}, fmt.Errorf("pull log request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.LogPullResponse{}, err
	}

	var pullResp models.LogPullResponse
	if err = json.Unmarshal(resp.Body(), &pullResp); err != nil {
		return models.LogPullResponse{}, fmt.Errorf("decode pull log response: %w", err)
	}

	return pullResp, nil
}
