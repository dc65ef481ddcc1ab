// Package clinicapi es el cliente del servicio clínico remoto (auth,
// vets, citas "live", usuarios admin). Passthrough de bearer token, sin
// refresh ni retry: un token rechazado upstream llega al caller como
// APIError genérico.
package clinicapi

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

type Config struct {
	BaseURL string
	Timeout time.Duration
}

type Client struct {
	http *resty.Client
}

func NewClient(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	rc := resty.New().
		SetBaseURL(strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")).
		SetHeader("Content-Type", "application/json").
		SetTimeout(timeout)

	return &Client{http: rc}
}

// BaseURL expone la URL configurada (la usa el suscriptor de eventos).
func (c *Client) BaseURL() string {
	return c.http.BaseURL
}

// APIError es una respuesta no-2xx del servicio remoto. El body crudo se
// expone tal cual como mensaje (el front lo muestra en el toast de error).
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	if strings.TrimSpace(e.Body) == "" {
		return fmt.Sprintf("HTTP %d", e.StatusCode)
	}
	return e.Body
}

// User es el usuario tal como lo entrega el servicio remoto
// (rol en mayúsculas; se normaliza recién en la capa de dominio).
type User struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	Phone  string `json:"phone,omitempty"`
	Active *bool  `json:"active,omitempty"`
}

type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type Vet struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Appointment struct {
	ID       string `json:"id"`
	UserID   string `json:"userId"`
	VetID    string `json:"vetId"`
	Reason   string `json:"reason"`
	DateTime string `json:"dateTime"`
	Status   string `json:"status"`
	Vet      *Vet   `json:"vet,omitempty"`
	User     *User  `json:"user,omitempty"`
}

type RegisterInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone,omitempty"`
}

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type CreateAppointmentInput struct {
	VetID   string `json:"vetId"`
	DateISO string `json:"dateISO"`
	Reason  string `json:"reason"`
}

type RescheduleInput struct {
	VetID   string `json:"vetId"`
	DateISO string `json:"dateISO"`
}

type CreateUserInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
	Phone    string `json:"phone,omitempty"`
}

type ManageAppointmentInput struct {
	UserEmail string `json:"userEmail"`
	VetID     string `json:"vetId"`
	DateISO   string `json:"dateISO"`
	Reason    string `json:"reason"`
}

func (c *Client) Register(ctx context.Context, in RegisterInput) (AuthResponse, error) {
	var out AuthResponse
	err := c.do(ctx, "", resty.MethodPost, "/auth/register", in, &out, nil)
	return out, err
}

func (c *Client) Login(ctx context.Context, in LoginInput) (AuthResponse, error) {
	var out AuthResponse
	err := c.do(ctx, "", resty.MethodPost, "/auth/login", in, &out, nil)
	return out, err
}

func (c *Client) Vets(ctx context.Context, token string) ([]Vet, error) {
	var out []Vet
	err := c.do(ctx, token, resty.MethodGet, "/vets", nil, &out, nil)
	return out, err
}

func (c *Client) Slots(ctx context.Context, token, vetID, date string) ([]string, error) {
	var out []string
	err := c.do(ctx, token, resty.MethodGet, "/slots", nil, &out, map[string]string{
		"vetId": vetID,
		"date":  date,
	})
	return out, err
}

func (c *Client) Appointments(ctx context.Context, token string) ([]Appointment, error) {
	var out []Appointment
	err := c.do(ctx, token, resty.MethodGet, "/appointments", nil, &out, nil)
	return out, err
}

func (c *Client) CreateAppointment(ctx context.Context, token string, in CreateAppointmentInput) (Appointment, error) {
	var out Appointment
	err := c.do(ctx, token, resty.MethodPost, "/appointments", in, &out, nil)
	return out, err
}

func (c *Client) RescheduleAppointment(ctx context.Context, token, id string, in RescheduleInput) (Appointment, error) {
	var out Appointment
	err := c.do(ctx, token, resty.MethodPatch, "/appointments/"+id+"/reschedule", in, &out, nil)
	return out, err
}

// CancelAppointment usa DELETE con canceledBy=vet|client, igual que el
// contrato remoto.
func (c *Client) CancelAppointment(ctx context.Context, token, id, canceledBy string) (Appointment, error) {
	var out Appointment
	err := c.do(ctx, token, resty.MethodDelete, "/appointments/"+id, nil, &out, map[string]string{
		"canceledBy": canceledBy,
	})
	return out, err
}

func (c *Client) AdminUsers(ctx context.Context, token string) ([]User, error) {
	var out []User
	err := c.do(ctx, token, resty.MethodGet, "/admin/users", nil, &out, nil)
	return out, err
}

func (c *Client) AdminCreateUser(ctx context.Context, token string, in CreateUserInput) (User, error) {
	var out User
	err := c.do(ctx, token, resty.MethodPost, "/admin/users", in, &out, nil)
	return out, err
}

func (c *Client) AdminActivateUser(ctx context.Context, token, id string) error {
	return c.do(ctx, token, resty.MethodPost, "/admin/users/"+id+"/activate", nil, nil, nil)
}

// ManageCreateAppointment crea una cita a nombre de un cliente por email
// (flujo de recepción).
func (c *Client) ManageCreateAppointment(ctx context.Context, token string, in ManageAppointmentInput) (Appointment, error) {
	var out Appointment
	err := c.do(ctx, token, resty.MethodPost, "/manage/appointments", in, &out, nil)
	return out, err
}

func (c *Client) do(ctx context.Context, token, method, path string, body, out any, query map[string]string) error {
	req := c.http.R().SetContext(ctx)

	if token != "" {
		req.SetAuthToken(token)
	}
	if body != nil {
		req.SetBody(body)
	}
	if out != nil {
		req.SetResult(out)
	}
	if len(query) > 0 {
		req.SetQueryParams(query)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		return err
	}
	if resp.IsError() {
		return &APIError{
			StatusCode: resp.StatusCode(),
			Body:       strings.TrimSpace(string(resp.Body())),
		}
	}
	return nil
}
