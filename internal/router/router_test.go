package router_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	"pochita-clinic/internal/adapters/backend/clinicapi"
	"pochita-clinic/internal/adapters/session/memory"
	"pochita-clinic/internal/router"
)

// fakeBackend simula el servicio clínico remoto: un usuario por rol,
// password "secreto" para todos.
func fakeBackend(t *testing.T) *httptest.Server {
	t.Helper()

	users := map[string]struct {
		token string
		role  string
	}{
		"cliente@x.com":   {"tok-cliente", "CLIENTE"},
		"recepcion@x.com": {"tok-recepcion", "RECEPCIONISTA"},
		"vet@x.com":       {"tok-vet", "VETERINARIO"},
		"admin@x.com":     {"tok-admin", "ADMIN"},
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/auth/login", func(w http.ResponseWriter, r *http.Request) {
		var in struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		_ = json.NewDecoder(r.Body).Decode(&in)

		u, ok := users[in.Email]
		if !ok || in.Password != "secreto" {
			http.Error(w, "Credenciales inválidas", http.StatusUnauthorized)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"token": u.token,
			"user": map[string]any{
				"id":    "id-" + in.Email,
				"name":  in.Email,
				"email": in.Email,
				"role":  u.role,
			},
		})
	})
	mux.HandleFunc("/admin/users", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":"u1","name":"Juan","email":"cliente@x.com","role":"CLIENTE","active":true}]`))
	})
	mux.HandleFunc("/vets", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":"rv1","name":"Dra. Remota"}]`))
	})

	ts := httptest.NewServer(mux)
	t.Cleanup(ts.Close)
	return ts
}

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	backend := fakeBackend(t)
	lima, err := time.LoadLocation("America/Lima")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}

	handler := router.NewRouter(router.Options{
		Logger:   zap.NewNop(),
		Sessions: memory.NewStore(),
		API:      clinicapi.NewClient(clinicapi.Config{BaseURL: backend.URL}),
		Location: lima,
	})

	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)
	return ts
}

func login(t *testing.T, baseURL, email string) string {
	t.Helper()

	st, body := doReq(t, baseURL, "POST", "/auth/login", "", map[string]any{
		"email": email, "password": "secreto",
	})
	if st != http.StatusOK {
		t.Fatalf("login %s: expected 200, got %d body=%s", email, st, string(body))
	}

	var resp struct {
		Token string `json:"token"`
	}
	_ = json.Unmarshal(body, &resp)
	if resp.Token == "" {
		t.Fatalf("login %s: missing token", email)
	}
	return resp.Token
}

func TestHTTP_RoleGates(t *testing.T) {
	ts := newTestServer(t)

	// sin sesión
	if st, _ := doReq(t, ts.URL, "GET", "/booking/appointments", "", nil); st != http.StatusUnauthorized {
		t.Fatalf("expected 401 without session, got %d", st)
	}
	if st, _ := doReq(t, ts.URL, "GET", "/clients", "", nil); st != http.StatusUnauthorized {
		t.Fatalf("expected 401 without session, got %d", st)
	}

	cliente := login(t, ts.URL, "cliente@x.com")

	// rol equivocado => 403
	if st, _ := doReq(t, ts.URL, "GET", "/clients", cliente, nil); st != http.StatusForbidden {
		t.Fatalf("expected 403 for cliente on /clients, got %d", st)
	}
	if st, _ := doReq(t, ts.URL, "GET", "/admin/users", cliente, nil); st != http.StatusForbidden {
		t.Fatalf("expected 403 for cliente on /admin/users, got %d", st)
	}

	// rol correcto
	recep := login(t, ts.URL, "recepcion@x.com")
	if st, body := doReq(t, ts.URL, "GET", "/clients", recep, nil); st != http.StatusOK {
		t.Fatalf("expected 200 for recepcionista on /clients, got %d body=%s", st, string(body))
	}

	admin := login(t, ts.URL, "admin@x.com")
	if st, body := doReq(t, ts.URL, "GET", "/admin/users", admin, nil); st != http.StatusOK {
		t.Fatalf("expected 200 for admin on /admin/users, got %d body=%s", st, string(body))
	}
}

func TestHTTP_LoginFailureThenSuccess(t *testing.T) {
	ts := newTestServer(t)

	st, body := doReq(t, ts.URL, "POST", "/auth/login", "", map[string]any{
		"email": "cliente@x.com", "password": "mal",
	})
	if st != http.StatusUnauthorized {
		t.Fatalf("expected upstream 401, got %d", st)
	}
	if !strings.Contains(string(body), "Credenciales inválidas") {
		t.Fatalf("expected upstream message passed through, got %s", string(body))
	}

	// el error no queda pegado: el siguiente login funciona
	login(t, ts.URL, "cliente@x.com")
}

func TestHTTP_LocalAgendaFlow(t *testing.T) {
	ts := newTestServer(t)
	recep := login(t, ts.URL, "recepcion@x.com")
	vet := login(t, ts.URL, "vet@x.com")

	// alta de cliente y mascota
	st, body := doReq(t, ts.URL, "POST", "/clients", recep, map[string]any{
		"name": "Pedro Gómez", "phone": "988-777-666",
	})
	if st != http.StatusCreated {
		t.Fatalf("create client: expected 201, got %d body=%s", st, string(body))
	}
	clientID := extractID(t, body)

	st, body = doReq(t, ts.URL, "POST", "/pets", recep, map[string]any{
		"name": "Rocky", "species": "Perro", "breed": "Boxer", "age_years": 3, "owner_id": clientID,
	})
	if st != http.StatusCreated {
		t.Fatalf("create pet: expected 201, got %d body=%s", st, string(body))
	}
	petID := extractID(t, body)

	// vet local sembrado
	st, body = doReq(t, ts.URL, "GET", "/vets", recep, nil)
	if st != http.StatusOK {
		t.Fatalf("list vets: expected 200, got %d body=%s", st, string(body))
	}
	var vetsList []struct {
		ID string `json:"id"`
	}
	_ = json.Unmarshal(body, &vetsList)
	if len(vetsList) == 0 {
		t.Fatalf("expected seeded vets")
	}
	vetID := vetsList[0].ID

	// cita a las 10:00 del 2026-06-10 (hora de Lima)
	st, body = doReq(t, ts.URL, "POST", "/appointments", recep, map[string]any{
		"client_id": clientID,
		"pet_id":    petID,
		"vet_id":    vetID,
		"reason":    "Cirugía menor programada",
		"date":      "2026-06-10T10:00:00-05:00",
	})
	if st != http.StatusCreated {
		t.Fatalf("create appointment: expected 201, got %d body=%s", st, string(body))
	}
	aptID := extractID(t, body)

	// el slot de las 10:00 desaparece de la grilla
	st, body = doReq(t, ts.URL, "GET", "/appointments/slots?vetId="+vetID+"&date=2026-06-10", recep, nil)
	if st != http.StatusOK {
		t.Fatalf("slots: expected 200, got %d body=%s", st, string(body))
	}
	var slots []string
	_ = json.Unmarshal(body, &slots)
	if len(slots) != 8 {
		t.Fatalf("expected 8 slots after booking, got %d (%v)", len(slots), slots)
	}
	for _, s := range slots {
		if strings.Contains(s, "T10:00:00") {
			t.Fatalf("booked slot still offered: %s", s)
		}
	}

	// la recepción no puede completar citas
	if st, _ := doReq(t, ts.URL, "POST", "/appointments/"+aptID+"/complete", recep, nil); st != http.StatusForbidden {
		t.Fatalf("expected 403 for recepcionista completing, got %d", st)
	}

	// el vet sí
	st, body = doReq(t, ts.URL, "POST", "/appointments/"+aptID+"/complete", vet, nil)
	if st != http.StatusOK {
		t.Fatalf("complete: expected 200, got %d body=%s", st, string(body))
	}

	// cirugía => tres follow-ups a las 10:00
	st, body = doReq(t, ts.URL, "POST", "/appointments/"+aptID+"/treatments", vet, map[string]any{
		"procedure": "Cirugía menor", "approved_by_owner": true,
	})
	if st != http.StatusCreated {
		t.Fatalf("create treatment: expected 201, got %d body=%s", st, string(body))
	}

	var created struct {
		FollowUps []struct {
			ID   string `json:"id"`
			Date string `json:"date"`
		} `json:"follow_ups"`
	}
	_ = json.Unmarshal(body, &created)
	if len(created.FollowUps) != 3 {
		t.Fatalf("expected 3 follow-ups, got %d body=%s", len(created.FollowUps), string(body))
	}
	wantDates := []string{"2026-06-11", "2026-06-17", "2026-06-24"}
	for i, f := range created.FollowUps {
		if !strings.HasPrefix(f.Date, wantDates[i]+"T10:00:00") {
			t.Fatalf("follow-up %d: expected %s 10:00, got %s", i, wantDates[i], f.Date)
		}
	}
}

func TestHTTP_InventoryFlow(t *testing.T) {
	ts := newTestServer(t)
	cliente := login(t, ts.URL, "cliente@x.com")
	recep := login(t, ts.URL, "recepcion@x.com")

	// catálogo sembrado
	st, body := doReq(t, ts.URL, "GET", "/products", cliente, nil)
	if st != http.StatusOK {
		t.Fatalf("products: expected 200, got %d body=%s", st, string(body))
	}
	var products []struct {
		ID    string `json:"id"`
		Name  string `json:"name"`
		Stock int    `json:"stock"`
	}
	_ = json.Unmarshal(body, &products)
	if len(products) != 3 {
		t.Fatalf("expected 3 seeded products, got %d", len(products))
	}

	var withStock, zeroStock string
	var before int
	for _, p := range products {
		if p.Stock > 0 && withStock == "" {
			withStock, before = p.ID, p.Stock
		}
		if p.Stock == 0 {
			zeroStock = p.ID
		}
	}

	// checkout es de mostrador
	if st, _ := doReq(t, ts.URL, "POST", "/checkout", cliente, map[string]any{
		"cart": []map[string]any{{"product_id": withStock, "quantity": 1}},
	}); st != http.StatusForbidden {
		t.Fatalf("expected 403 for cliente on /checkout, got %d", st)
	}

	st, body = doReq(t, ts.URL, "POST", "/checkout", recep, map[string]any{
		"cart": []map[string]any{{"product_id": withStock, "quantity": 2}},
	})
	if st != http.StatusNoContent {
		t.Fatalf("checkout: expected 204, got %d body=%s", st, string(body))
	}

	st, body = doReq(t, ts.URL, "GET", "/products", cliente, nil)
	if st != http.StatusOK {
		t.Fatalf("products: expected 200, got %d", st)
	}
	var after []struct {
		ID    string `json:"id"`
		Stock int    `json:"stock"`
	}
	_ = json.Unmarshal(body, &after)
	for _, p := range after {
		if p.ID == withStock && p.Stock != before-2 {
			t.Fatalf("expected stock %d, got %d", before-2, p.Stock)
		}
	}

	// apartado sobre el producto agotado: nace pendiente
	st, body = doReq(t, ts.URL, "POST", "/products/"+zeroStock+"/reservations", cliente, map[string]any{
		"client_name": "Juan Pérez", "phone": "999-111-222",
	})
	if st != http.StatusCreated {
		t.Fatalf("reservation: expected 201, got %d body=%s", st, string(body))
	}
	var res struct {
		ID     string `json:"id"`
		Status string `json:"status"`
	}
	_ = json.Unmarshal(body, &res)
	if res.Status != "pendiente" {
		t.Fatalf("expected pendiente, got %s", res.Status)
	}

	// el mostrador lo marca notificado
	st, body = doReq(t, ts.URL, "POST", "/reservations/"+res.ID+"/status", recep, map[string]any{
		"status": "notificado",
	})
	if st != http.StatusOK {
		t.Fatalf("set status: expected 200, got %d body=%s", st, string(body))
	}
	_ = json.Unmarshal(body, &res)
	if res.Status != "notificado" {
		t.Fatalf("expected notificado, got %s", res.Status)
	}
}

func extractID(t *testing.T, body []byte) string {
	t.Helper()

	var resp struct {
		ID string `json:"id"`
	}
	_ = json.Unmarshal(body, &resp)
	if resp.ID == "" {
		t.Fatalf("missing id in body=%s", string(body))
	}
	return resp.ID
}

func doReq(t *testing.T, baseURL, method, path, token string, body any) (int, []byte) {
	t.Helper()

	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("json marshal: %v", err)
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, baseURL+path, rdr)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer res.Body.Close()

	respBody, _ := io.ReadAll(res.Body)
	return res.StatusCode, respBody
}
