package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInstrumentHandler_LabelsByRoutePattern(t *testing.T) {
	r := chi.NewRouter()
	r.Use(InstrumentHandler)
	r.Get("/api/boards/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	before := testutil.ToFloat64(httpRequests.WithLabelValues("GET", "/api/boards/{id}", "418"))

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/boards/42", nil))

	assert.Equal(t, http.StatusTeapot, rr.Code)
	after := testutil.ToFloat64(httpRequests.WithLabelValues("GET", "/api/boards/{id}", "418"))
	assert.Equal(t, before+1, after)
}

func TestRelayCounters(t *testing.T) {
	conns := testutil.ToFloat64(relayConnections)
	RelayConnected()
	RelayConnected()
	RelayDisconnected()
	assert.Equal(t, conns+1, testutil.ToFloat64(relayConnections))

	malformed := testutil.ToFloat64(relayFrames.WithLabelValues("malformed"))
	RelayFrame("malformed")
	assert.Equal(t, malformed+1, testutil.ToFloat64(relayFrames.WithLabelValues("malformed")))

	dropped := testutil.ToFloat64(relayDropped)
	RelayDropped()
	assert.Equal(t, dropped+1, testutil.ToFloat64(relayDropped))

	published := testutil.ToFloat64(eventsPublished.WithLabelValues("board.created", "true"))
	EventPublished("board.created", true)
	assert.Equal(t, published+1, testutil.ToFloat64(eventsPublished.WithLabelValues("board.created", "true")))
}

func TestHandler_ExposesRegistry(t *testing.T) {
	RelayFrame("broadcast")

	srv := httptest.NewServer(Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "cultureschool_relay_frames_total")
}
