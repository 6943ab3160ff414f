// Package services file: services/ticket_service.go
package services

import (
	"context"
	"encoding/json"
	"strings"

	"ticket-office/logger"
	"ticket-office/models"
)

// TicketServiceInterface covers the ticket list/detail views plus the two
// multi-step flows: purchase and validation.
type TicketServiceInterface interface {
	List(ctx context.Context, token string) ([]models.Ticket, error)
	Get(ctx context.Context, token string, id models.ID) (models.Ticket, error)
	Purchase(ctx context.Context, token string, eventID models.ID) (models.ID, error)
	Validate(ctx context.Context, token string, input models.ValidationInput) (models.Ticket, error)
}

// TicketService calls the backend ticket endpoints.
type TicketService struct {
	client *BackendClient
}

// NewTicketService builds a TicketService over the shared backend client.
func NewTicketService(client *BackendClient) *TicketService {
	return &TicketService{client: client}
}

// List fetches the current user's tickets.
func (s *TicketService) List(ctx context.Context, token string) ([]models.Ticket, error) {
	env, err := s.client.Get(ctx, "/ticket", token)
	if err != nil {
		return nil, err
	}
	if !env.OK() {
		return nil, appError(env, "could not load your tickets")
	}

	var tickets []models.Ticket
	if err := env.DecodeData(&tickets); err != nil {
		return nil, appError(env, "could not load your tickets")
	}
	return tickets, nil
}

// Get fetches one ticket. A ticket without its denormalized event is still
// returned; the view shows placeholders for the missing fields.
func (s *TicketService) Get(ctx context.Context, token string, id models.ID) (models.Ticket, error) {
	env, err := s.client.Get(ctx, "/ticket/"+id.String(), token)
	if err != nil {
		return models.Ticket{}, err
	}
	if !env.OK() {
		return models.Ticket{}, appError(env, "could not load the ticket")
	}

	var ticket models.Ticket
	if err := env.DecodeData(&ticket); err != nil {
		return models.Ticket{}, appError(env, "could not load the ticket")
	}
	if ticket.Event == nil {
		logger.Warn.Printf("Get: ticket %s arrived without its event", id)
	}
	return ticket, nil
}

// purchaseShape captures the two id placements the purchase endpoint has
// been seen using: nested under data, or next to the envelope status.
type purchaseShape struct {
	Data struct {
		ID models.ID `json:"id"`
	} `json:"data"`
	ID models.ID `json:"id"`
}

// Purchase buys a ticket for the event and returns the new ticket's id.
// The backend's response shape is not stable: the id is preferred from
// `data.id`, falling back to a top-level `id`. An empty id with a success
// status is not an error; the caller lands on the ticket list instead.
func (s *TicketService) Purchase(ctx context.Context, token string, eventID models.ID) (models.ID, error) {
	env, err := s.client.Post(ctx, "/ticket", token, models.PurchaseInput{EventID: eventID})
	if err != nil {
		return "", err
	}
	if !env.OK() {
		return "", appError(env, "purchase failed, please try again")
	}

	var shape purchaseShape
	if err := json.Unmarshal(env.Raw, &shape); err != nil {
		logger.Warn.Printf("Purchase: could not inspect response for ticket id: %v", err)
		return "", nil
	}
	if shape.Data.ID != "" {
		return shape.Data.ID, nil
	}
	if shape.ID != "" {
		logger.Debug.Println("Purchase: ticket id found at the envelope top level")
		return shape.ID, nil
	}

	logger.Warn.Println("Purchase: success response carried no ticket id")
	return "", nil
}

// Validate marks a ticket as entered at the door.
func (s *TicketService) Validate(ctx context.Context, token string, input models.ValidationInput) (models.Ticket, error) {
	env, err := s.client.Post(ctx, "/ticket/validate", token, input)
	if err != nil {
		return models.Ticket{}, err
	}
	if !env.OK() {
		return models.Ticket{}, appError(env, "validation failed")
	}

	var ticket models.Ticket
	if len(env.Data) > 0 {
		if err := env.DecodeData(&ticket); err != nil {
			logger.Warn.Printf("Validate: success envelope with undecodable ticket: %v", err)
		}
	}
	return ticket, nil
}

// alreadyUsedPhrases are the fragments, across the two languages the
// backend answers in, that mark a "ticket already used" rejection.
var alreadyUsedPhrases = []string{"已入场", "entered", "used", "already"}

// IsAlreadyUsedMessage reports whether a validation failure message means
// the ticket was already used, so the operator sees a distinct message
// instead of the generic failure.
func IsAlreadyUsedMessage(message string) bool {
	lowered := strings.ToLower(message)
	for _, phrase := range alreadyUsedPhrases {
		if strings.Contains(lowered, phrase) {
			return true
		}
	}
	return false
}
