package notify

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPNotifier_NotifyDeparture(t *testing.T) {
	departureID := kernel.NewUUID()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/notifications/departure", r.URL.Path)

		var req notifyRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, departureID.String(), req.DepartureID)
		assert.Equal(t, "sms", req.Target)

		w.WriteHeader(http.StatusAccepted)
	}))
	defer server.Close()

	notifier, err := NewHTTPNotifier(server.URL, time.Second)
	require.NoError(t, err)

	err = notifier.NotifyDeparture(t.Context(), departureID, "sms")
	assert.NoError(t, err)
}

func TestHTTPNotifier_GatewayErrorIsTransient(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer server.Close()

	notifier, err := NewHTTPNotifier(server.URL, time.Second)
	require.NoError(t, err)

	err = notifier.NotifyDeparture(t.Context(), kernel.NewUUID(), "email")
	assert.ErrorIs(t, err, errs.ErrTransient)
}

func TestHTTPNotifier_RequiresTarget(t *testing.T) {
	notifier, err := NewHTTPNotifier("http://localhost:1", time.Second)
	require.NoError(t, err)

	err = notifier.NotifyDeparture(t.Context(), kernel.NewUUID(), "")
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}
