package http

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"courtbook/config"
	"courtbook/transport/http/router"

	"github.com/stretchr/testify/assert"
)

func TestHealth_FollowsServerState(t *testing.T) {
	tests := []struct {
		name     string
		state    ServerState
		wantCode int
	}{
		{name: "not started", wantCode: http.StatusServiceUnavailable},
		{name: "ready", state: ServerStateReady, wantCode: http.StatusOK},
		{name: "grace period", state: ServerStateInGracePeriod, wantCode: http.StatusServiceUnavailable},
		{name: "cleanup period", state: ServerStateInCleanupPeriod, wantCode: http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := New(&config.Config{}, router.Router{})
			h.setState(tt.state)

			recorder := httptest.NewRecorder()
			h.health(recorder, httptest.NewRequest(http.MethodGet, "/health", nil))

			assert.Equal(t, tt.wantCode, recorder.Code)
		})
	}
}

func TestRejectWhenShuttingDown(t *testing.T) {
	next := http.HandlerFunc(func(writer http.ResponseWriter, _ *http.Request) {
		writer.WriteHeader(http.StatusNoContent)
	})

	h := New(&config.Config{}, router.Router{})
	handler := h.rejectWhenShuttingDown(next)

	h.setState(ServerStateInGracePeriod)

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/v1/courts", nil))
	assert.Equal(t, http.StatusNoContent, recorder.Code)

	h.setState(ServerStateInCleanupPeriod)

	recorder = httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/v1/courts", nil))
	assert.Equal(t, http.StatusServiceUnavailable, recorder.Code)
}

func TestState_ConcurrentReadersAndWriter(t *testing.T) {
	h := New(&config.Config{}, router.Router{})
	h.setState(ServerStateReady)

	handler := h.rejectWhenShuttingDown(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))

	var wg sync.WaitGroup

	for range 8 {
		wg.Add(1)

		go func() {
			defer wg.Done()

			for range 100 {
				handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health", nil))
			}
		}()
	}

	h.setState(ServerStateInGracePeriod)
	h.setState(ServerStateInCleanupPeriod)

	wg.Wait()

	assert.Equal(t, ServerStateInCleanupPeriod, h.State())
}
