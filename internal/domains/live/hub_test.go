package live_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Fivegen-LLC/coffee-fleet/internal/domains/live"
	"github.com/Fivegen-LLC/coffee-fleet/internal/domains/live/live_mocks"
	"github.com/Fivegen-LLC/coffee-fleet/internal/entities"
)

func startHub(t *testing.T, facilityID entities.FacilityID) (*live.Hub, string) {
	t.Helper()

	metricsService := live_mocks.NewMockIMetricsService(t)
	metricsService.EXPECT().SetLiveClients(mock.Anything).Return().Maybe()

	hub := live.NewHub(metricsService)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = hub.Serve(w, r, facilityID)
	}))
	t.Cleanup(server.Close)

	return hub, "ws" + strings.TrimPrefix(server.URL, "http")
}

func dial(t *testing.T, url string) *websocket.Conn {
	t.Helper()

	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	resp.Body.Close()
	t.Cleanup(func() { conn.Close() })

	return conn
}

func TestHub_BroadcastToFacility(t *testing.T) {
	t.Parallel()

	hub, url := startHub(t, 1)
	conn := dial(t, url)

	require.Eventually(t, func() bool {
		return hub.Count() == 1
	}, time.Second, 5*time.Millisecond)

	hub.BroadcastTelemetry(entities.TelemetryMessage{MachineID: 9, FacilityID: 2, BrewType: entities.BrewTypeLatte})
	hub.BroadcastTelemetry(entities.TelemetryMessage{MachineID: 1, FacilityID: 1, BrewType: entities.BrewTypeAmericano})
	hub.BroadcastAlert(entities.Alert{ID: "a1", MachineID: 1, FacilityID: 1, Type: entities.AlertTypeLowWater})

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(time.Second)))

	var event struct {
		Type    string                    `json:"type"`
		Payload entities.TelemetryMessage `json:"payload"`
	}
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, &event))
	assert.Equal(t, live.EventTelemetry, event.Type)
	assert.Equal(t, 1, event.Payload.MachineID)

	var alertEvent struct {
		Type    string         `json:"type"`
		Payload entities.Alert `json:"payload"`
	}
	_, data, err = conn.ReadMessage()
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, &alertEvent))
	assert.Equal(t, live.EventAlert, alertEvent.Type)
	assert.Equal(t, entities.AlertTypeLowWater, alertEvent.Payload.Type)
}

func TestHub_ClientDisconnect(t *testing.T) {
	t.Parallel()

	hub, url := startHub(t, 3)
	conn := dial(t, url)

	require.Eventually(t, func() bool {
		return hub.Count() == 1
	}, time.Second, 5*time.Millisecond)

	require.NoError(t, conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")))
	require.NoError(t, conn.Close())

	require.Eventually(t, func() bool {
		return hub.Count() == 0
	}, time.Second, 5*time.Millisecond)
}

func TestHub_Close(t *testing.T) {
	t.Parallel()

	hub, url := startHub(t, 1)
	conn := dial(t, url)

	require.Eventually(t, func() bool {
		return hub.Count() == 1
	}, time.Second, 5*time.Millisecond)

	hub.Close()
	assert.Equal(t, 0, hub.Count())

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(time.Second)))
	_, _, err := conn.ReadMessage()
	assert.True(t, websocket.IsCloseError(err, websocket.CloseNormalClosure))
}
