package notifications

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

func dialHub(t *testing.T, url string) *websocket.Conn {
	t.Helper()

	wsURL := "ws" + strings.TrimPrefix(url, "http")
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("dial error: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func waitForClients(t *testing.T, hub *Hub, want int) {
	t.Helper()

	deadline := time.Now().Add(2 * time.Second)
	for hub.ClientCount() != want {
		if time.Now().After(deadline) {
			t.Fatalf("expected %d clients, got %d", want, hub.ClientCount())
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestHub_BroadcastReachesAllClients(t *testing.T) {
	hub := NewHub(nil)
	ts := httptest.NewServer(http.HandlerFunc(hub.HandleWS))
	defer ts.Close()

	c1 := dialHub(t, ts.URL)
	c2 := dialHub(t, ts.URL)
	waitForClients(t, hub, 2)

	hub.BroadcastVetCancel("v1")

	for i, conn := range []*websocket.Conn{c1, c2} {
		_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
		var n Notice
		if err := conn.ReadJSON(&n); err != nil {
			t.Fatalf("client %d: read error: %v", i, err)
		}
		if n.Kind != KindVetCancel || n.VetID != "v1" {
			t.Fatalf("client %d: unexpected notice %+v", i, n)
		}
		if n.Message == "" {
			t.Fatalf("client %d: expected a toast message", i)
		}
	}
}

func TestHub_DisconnectedClientForgotten(t *testing.T) {
	hub := NewHub(nil)
	ts := httptest.NewServer(http.HandlerFunc(hub.HandleWS))
	defer ts.Close()

	conn := dialHub(t, ts.URL)
	waitForClients(t, hub, 1)

	_ = conn.Close()
	waitForClients(t, hub, 0)

	// broadcast sin clientes no debe entrar en pánico
	hub.BroadcastVetCancel("v1")
}
