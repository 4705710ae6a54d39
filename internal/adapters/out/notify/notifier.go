// Package notify implements the client notification port over a messaging
// gateway's HTTP API.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"
)

const defaultTimeout = 10 * time.Second

// HTTPNotifier pushes departure updates to clients through a messaging
// gateway. Delivery failures surface as TransientError so the operator can
// retry; nothing is retried here.
type HTTPNotifier struct {
	client  *http.Client
	baseURL string
}

// NewHTTPNotifier creates a notifier against the gateway at baseURL. A
// non-positive timeout falls back to the default.
func NewHTTPNotifier(baseURL string, timeout time.Duration) (*HTTPNotifier, error) {
	if baseURL == "" {
		return nil, errs.NewValueIsRequiredError("baseURL")
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &HTTPNotifier{
		client:  &http.Client{Timeout: timeout},
		baseURL: baseURL,
	}, nil
}

type notifyRequest struct {
	DepartureID string `json:"departureId"`
	Target      string `json:"target"`
}

// NotifyDeparture pushes a departure update over the given channel.
func (n *HTTPNotifier) NotifyDeparture(ctx context.Context, departureID kernel.UUID, target string) error {
	if err := departureID.Validate(); err != nil {
		return err
	}
	if target == "" {
		return errs.NewValueIsRequiredError("target")
	}

	body, err := json.Marshal(notifyRequest{DepartureID: departureID.String(), Target: target})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		n.baseURL+"/notifications/departure",
		bytes.NewReader(body),
	)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return errs.NewTransientError("notify departure", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return errs.NewTransientError(
			"notify departure",
			fmt.Errorf("notification gateway returned %d: %s", resp.StatusCode, raw),
		)
	}

	return nil
}
