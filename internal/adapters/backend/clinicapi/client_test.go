package clinicapi

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestClient_Login_ParsesAuthResponse(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/auth/login" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"token":"tok-1","user":{"id":"u1","name":"Juan","email":"j@x.com","role":"CLIENTE"}}`))
	}))
	defer ts.Close()

	c := NewClient(Config{BaseURL: ts.URL})
	resp, err := c.Login(context.Background(), LoginInput{Email: "j@x.com", Password: "pw"})
	if err != nil {
		t.Fatalf("Login error: %v", err)
	}
	if resp.Token != "tok-1" || resp.User.Role != "CLIENTE" {
		t.Fatalf("unexpected response %+v", resp)
	}
}

func TestClient_ErrorSurfacesRawBody(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Credenciales inválidas", http.StatusUnauthorized)
	}))
	defer ts.Close()

	c := NewClient(Config{BaseURL: ts.URL})
	_, err := c.Login(context.Background(), LoginInput{Email: "j@x.com", Password: "bad"})

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if apiErr.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", apiErr.StatusCode)
	}
	if apiErr.Error() != "Credenciales inválidas" {
		t.Fatalf("expected upstream body as message, got %q", apiErr.Error())
	}
}

func TestClient_ErrorWithoutBody(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer ts.Close()

	c := NewClient(Config{BaseURL: ts.URL})
	_, err := c.Vets(context.Background(), "tok")

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if apiErr.Error() != "HTTP 503" {
		t.Fatalf("expected fallback message, got %q", apiErr.Error())
	}
}

func TestClient_ForwardsBearerToken(t *testing.T) {
	var gotAuth string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[]`))
	}))
	defer ts.Close()

	c := NewClient(Config{BaseURL: ts.URL})
	if _, err := c.Vets(context.Background(), "tok-xyz"); err != nil {
		t.Fatalf("Vets error: %v", err)
	}
	if gotAuth != "Bearer tok-xyz" {
		t.Fatalf("expected bearer header, got %q", gotAuth)
	}
}

func TestClient_Slots_SendsQueryParams(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("vetId") != "v1" || q.Get("date") != "2026-03-05" {
			t.Errorf("unexpected query %s", r.URL.RawQuery)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`["2026-03-05T14:00:00Z"]`))
	}))
	defer ts.Close()

	c := NewClient(Config{BaseURL: ts.URL})
	slots, err := c.Slots(context.Background(), "tok", "v1", "2026-03-05")
	if err != nil {
		t.Fatalf("Slots error: %v", err)
	}
	if len(slots) != 1 || slots[0] != "2026-03-05T14:00:00Z" {
		t.Fatalf("unexpected slots %#v", slots)
	}
}

func TestClient_Cancel_SendsCanceledBy(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete {
			t.Errorf("expected DELETE, got %s", r.Method)
		}
		if r.URL.Query().Get("canceledBy") != "vet" {
			t.Errorf("expected canceledBy=vet, got %q", r.URL.Query().Get("canceledBy"))
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"a1","status":"CANCELADA"}`))
	}))
	defer ts.Close()

	c := NewClient(Config{BaseURL: ts.URL})
	a, err := c.CancelAppointment(context.Background(), "tok", "a1", "vet")
	if err != nil {
		t.Fatalf("CancelAppointment error: %v", err)
	}
	if a.Status != "CANCELADA" {
		t.Fatalf("unexpected appointment %+v", a)
	}
}
