package clinicapi

import (
	"bufio"
	"context"
	"encoding/json"
	"strings"
	"time"

	"go.uber.org/zap"
)

// VetCancelEvent llega por el stream de server-push cuando un vet
// cancela un horario.
type VetCancelEvent struct {
	VetID string `json:"vetId"`
}

// Subscriber mantiene abierta la suscripción a GET /events (SSE) y
// entrega cada vet-cancel al handler. Si el stream se corta, reconecta
// con una espera plana; no hay backoff ni merge incremental (el
// consumidor refresca la lista completa).
type Subscriber struct {
	client  *Client
	logger  *zap.Logger
	handler func(VetCancelEvent)

	reconnectWait time.Duration
}

func NewSubscriber(client *Client, logger *zap.Logger, handler func(VetCancelEvent)) *Subscriber {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Subscriber{
		client:        client,
		logger:        logger,
		handler:       handler,
		reconnectWait: 5 * time.Second,
	}
}

// Run bloquea hasta que ctx se cancele.
func (s *Subscriber) Run(ctx context.Context) {
	for {
		if err := s.consume(ctx); err != nil && ctx.Err() == nil {
			s.logger.Warn("event stream dropped", zap.Error(err))
		}

		select {
		case <-ctx.Done():
			return
		case <-time.After(s.reconnectWait):
		}
	}
}

func (s *Subscriber) consume(ctx context.Context) error {
	resp, err := s.client.http.R().
		SetContext(ctx).
		SetDoNotParseResponse(true).
		SetHeader("Accept", "text/event-stream").
		Get("/events")
	if err != nil {
		return err
	}

	body := resp.RawBody()
	defer body.Close()

	if resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		return &APIError{StatusCode: resp.StatusCode()}
	}

	var eventType string
	var data strings.Builder

	scanner := bufio.NewScanner(body)
	for scanner.Scan() {
		line := scanner.Text()

		switch {
		case line == "":
			s.dispatch(eventType, data.String())
			eventType = ""
			data.Reset()
		case strings.HasPrefix(line, "event:"):
			eventType = strings.TrimSpace(strings.TrimPrefix(line, "event:"))
		case strings.HasPrefix(line, "data:"):
			data.WriteString(strings.TrimSpace(strings.TrimPrefix(line, "data:")))
		}
	}
	return scanner.Err()
}

func (s *Subscriber) dispatch(eventType, payload string) {
	if eventType != "vet-cancel" || s.handler == nil {
		return
	}

	var ev VetCancelEvent
	if err := json.Unmarshal([]byte(payload), &ev); err != nil {
		// payload malformado: se ignora, igual que hacía el front
		return
	}
	s.handler(ev)
}
