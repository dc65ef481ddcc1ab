package clinicapi

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

// sseServer entrega los eventos dados y cierra el stream.
func sseServer(t *testing.T, events []string) *httptest.Server {
	t.Helper()

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/events" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/event-stream")
		for _, ev := range events {
			fmt.Fprint(w, ev)
		}
	}))
}

func TestSubscriber_DispatchesVetCancel(t *testing.T) {
	ts := sseServer(t, []string{
		"event: vet-cancel\ndata: {\"vetId\":\"v1\"}\n\n",
		"event: vet-cancel\ndata: {\"vetId\":\"v2\"}\n\n",
	})
	defer ts.Close()

	got := make(chan VetCancelEvent, 2)
	sub := NewSubscriber(NewClient(Config{BaseURL: ts.URL}), nil, func(ev VetCancelEvent) {
		got <- ev
	})

	if err := sub.consume(context.Background()); err != nil {
		t.Fatalf("consume error: %v", err)
	}

	for _, want := range []string{"v1", "v2"} {
		select {
		case ev := <-got:
			if ev.VetID != want {
				t.Fatalf("expected vet %s, got %s", want, ev.VetID)
			}
		default:
			t.Fatalf("missing event for vet %s", want)
		}
	}
}

func TestSubscriber_IgnoresOtherEventsAndMalformedPayloads(t *testing.T) {
	ts := sseServer(t, []string{
		"event: heartbeat\ndata: {}\n\n",
		"event: vet-cancel\ndata: not-json\n\n",
		"event: vet-cancel\ndata: {\"vetId\":\"v9\"}\n\n",
	})
	defer ts.Close()

	got := make(chan VetCancelEvent, 3)
	sub := NewSubscriber(NewClient(Config{BaseURL: ts.URL}), nil, func(ev VetCancelEvent) {
		got <- ev
	})

	if err := sub.consume(context.Background()); err != nil {
		t.Fatalf("consume error: %v", err)
	}

	select {
	case ev := <-got:
		if ev.VetID != "v9" {
			t.Fatalf("expected v9, got %s", ev.VetID)
		}
	default:
		t.Fatalf("expected one dispatched event")
	}
	if len(got) != 0 {
		t.Fatalf("expected heartbeat/malformed to be ignored")
	}
}

func TestSubscriber_RunStopsOnContextCancel(t *testing.T) {
	ts := sseServer(t, nil)
	defer ts.Close()

	sub := NewSubscriber(NewClient(Config{BaseURL: ts.URL}), nil, nil)
	sub.reconnectWait = 10 * time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		sub.Run(ctx)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("Run did not stop after cancel")
	}
}

func TestSubscriber_ConsumeReportsHTTPError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer ts.Close()

	sub := NewSubscriber(NewClient(Config{BaseURL: ts.URL}), nil, nil)
	if err := sub.consume(context.Background()); err == nil {
		t.Fatalf("expected error for non-2xx stream")
	}
}
