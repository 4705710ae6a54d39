// Package carrier implements the tracking provider port over a carrier
// gateway's HTTP API.
package carrier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"freight/internal/core/ports"
	"freight/internal/pkg/errs"
)

const defaultTimeout = 10 * time.Second

// HTTPTrackingProvider fetches per-parcel tracking statuses from a carrier
// gateway. Network failures and non-2xx responses surface as TransientError;
// retry stays with the caller.
type HTTPTrackingProvider struct {
	client  *http.Client
	baseURL string
}

// NewHTTPTrackingProvider creates a provider against the gateway at baseURL.
// A non-positive timeout falls back to the default.
func NewHTTPTrackingProvider(baseURL string, timeout time.Duration) (*HTTPTrackingProvider, error) {
	if baseURL == "" {
		return nil, errs.NewValueIsRequiredError("baseURL")
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &HTTPTrackingProvider{
		client:  &http.Client{Timeout: timeout},
		baseURL: baseURL,
	}, nil
}

type trackingRequest struct {
	Carrier      string `json:"carrier"`
	TrackingCode string `json:"trackingCode"`
}

type trackingResponse struct {
	Updates []struct {
		ParcelTrackingCode string `json:"parcelTrackingCode"`
		Status             string `json:"status"`
	} `json:"updates"`
}

// FetchUpdates queries the gateway for the parcels travelling under the
// given carrier tracking code.
func (p *HTTPTrackingProvider) FetchUpdates(
	ctx context.Context,
	carrier, trackingCode string,
) ([]ports.TrackingUpdate, error) {
	if carrier == "" {
		return nil, errs.NewValueIsRequiredError("carrier")
	}
	if trackingCode == "" {
		return nil, errs.NewValueIsRequiredError("trackingCode")
	}

	body, err := json.Marshal(trackingRequest{Carrier: carrier, TrackingCode: trackingCode})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		p.baseURL+"/tracking/refresh",
		bytes.NewReader(body),
	)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, errs.NewTransientError("fetch tracking updates", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, errs.NewTransientError(
			"fetch tracking updates",
			fmt.Errorf("carrier gateway returned %d: %s", resp.StatusCode, raw),
		)
	}

	var payload trackingResponse
	if err = json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, errs.NewTransientError("decode tracking updates", err)
	}

	updates := make([]ports.TrackingUpdate, 0, len(payload.Updates))
	for _, u := range payload.Updates {
		updates = append(updates, ports.TrackingUpdate{
			ParcelTrackingCode: u.ParcelTrackingCode,
			Status:             u.Status,
		})
	}

	return updates, nil
}
