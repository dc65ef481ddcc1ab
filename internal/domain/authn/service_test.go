package authn

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"pochita-clinic/internal/adapters/backend/clinicapi"
	"pochita-clinic/internal/adapters/session/memory"
	"pochita-clinic/internal/ports/auth"
)

// fakeUpstream acepta un solo par de credenciales.
func fakeUpstream(t *testing.T) *httptest.Server {
	t.Helper()

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/auth/login":
			var in struct {
				Email    string `json:"email"`
				Password string `json:"password"`
			}
			decodeBody(r, &in)
			if in.Email != "juan@example.com" || in.Password != "secreto" {
				http.Error(w, "Credenciales inválidas", http.StatusUnauthorized)
				return
			}
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"token":"tok-juan","user":{"id":"u1","name":"Juan","email":"juan@example.com","role":"CLIENTE"}}`))
		case "/auth/register":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"token":"tok-new","user":{"id":"u2","name":"Nuevo","email":"n@example.com","role":"CLIENTE"}}`))
		default:
			http.NotFound(w, r)
		}
	}))
}

func decodeBody(r *http.Request, out any) {
	dec := json.NewDecoder(r.Body)
	_ = dec.Decode(out)
}

func TestService_Login_CachesSession(t *testing.T) {
	ts := fakeUpstream(t)
	defer ts.Close()

	sessions := memory.NewStore()
	svc := NewService(clinicapi.NewClient(clinicapi.Config{BaseURL: ts.URL}), sessions)

	sess, err := svc.Login(context.Background(), Credentials{Email: "juan@example.com", Password: "secreto"})
	if err != nil {
		t.Fatalf("Login error: %v", err)
	}
	if sess.Token != "tok-juan" {
		t.Fatalf("unexpected token %q", sess.Token)
	}
	if sess.User.Role != auth.RoleCliente {
		t.Fatalf("expected role normalized to cliente, got %s", sess.User.Role)
	}

	cached, err := sessions.Get(context.Background(), "tok-juan")
	if err != nil {
		t.Fatalf("expected session cached: %v", err)
	}
	if cached.User.UserID != "u1" {
		t.Fatalf("unexpected cached claims %#v", cached.User)
	}
}

func TestService_Login_FailureThenSuccess(t *testing.T) {
	ts := fakeUpstream(t)
	defer ts.Close()

	sessions := memory.NewStore()
	svc := NewService(clinicapi.NewClient(clinicapi.Config{BaseURL: ts.URL}), sessions)

	_, err := svc.Login(context.Background(), Credentials{Email: "juan@example.com", Password: "mal"})
	var apiErr *clinicapi.APIError
	if !errors.As(err, &apiErr) || apiErr.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected upstream 401, got %v", err)
	}

	// el fallo no deja estado: el siguiente intento funciona limpio
	sess, err := svc.Login(context.Background(), Credentials{Email: "juan@example.com", Password: "secreto"})
	if err != nil {
		t.Fatalf("Login after failure error: %v", err)
	}
	if sess.Token != "tok-juan" {
		t.Fatalf("unexpected token %q", sess.Token)
	}
}

func TestService_Login_RejectsEmptyInput(t *testing.T) {
	svc := NewService(clinicapi.NewClient(clinicapi.Config{BaseURL: "http://127.0.0.1:0"}), memory.NewStore())

	_, err := svc.Login(context.Background(), Credentials{Email: "", Password: "x"})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestService_Register_LogsUserIn(t *testing.T) {
	ts := fakeUpstream(t)
	defer ts.Close()

	sessions := memory.NewStore()
	svc := NewService(clinicapi.NewClient(clinicapi.Config{BaseURL: ts.URL}), sessions)

	sess, err := svc.Register(context.Background(), RegisterInput{
		Name: "Nuevo", Email: "n@example.com", Password: "pw",
	})
	if err != nil {
		t.Fatalf("Register error: %v", err)
	}
	if _, err := sessions.Get(context.Background(), sess.Token); err != nil {
		t.Fatalf("expected session cached after register: %v", err)
	}
}

func TestService_Logout_DeletesSession(t *testing.T) {
	ts := fakeUpstream(t)
	defer ts.Close()

	sessions := memory.NewStore()
	svc := NewService(clinicapi.NewClient(clinicapi.Config{BaseURL: ts.URL}), sessions)

	sess, err := svc.Login(context.Background(), Credentials{Email: "juan@example.com", Password: "secreto"})
	if err != nil {
		t.Fatalf("Login error: %v", err)
	}
	if err := svc.Logout(context.Background(), sess.Token); err != nil {
		t.Fatalf("Logout error: %v", err)
	}
	if _, err := sessions.Get(context.Background(), sess.Token); !errors.Is(err, auth.ErrSessionNotFound) {
		t.Fatalf("expected session gone, got %v", err)
	}
}
