// Package services file: services/event_service.go
package services

import (
	"context"

	"ticket-office/models"
)

// EventServiceInterface covers event browsing plus the admin-only CRUD.
type EventServiceInterface interface {
	List(ctx context.Context, token string) ([]models.Event, error)
	Get(ctx context.Context, token string, id models.ID) (models.Event, error)
	Create(ctx context.Context, token string, input models.EventInput) error
	Update(ctx context.Context, token string, id models.ID, input models.EventInput) error
	Delete(ctx context.Context, token string, id models.ID) error
}

// EventService calls the backend event endpoints.
type EventService struct {
	client *BackendClient
}

// NewEventService builds an EventService over the shared backend client.
func NewEventService(client *BackendClient) *EventService {
	return &EventService{client: client}
}

// List fetches all events.
func (s *EventService) List(ctx context.Context, token string) ([]models.Event, error) {
	env, err := s.client.Get(ctx, "/event", token)
	if err != nil {
		return nil, err
	}
	if !env.OK() {
		return nil, appError(env, "could not load events")
	}

	var events []models.Event
	if err := env.DecodeData(&events); err != nil {
		return nil, appError(env, "could not load events")
	}
	return events, nil
}

// Get fetches one event by id.
func (s *EventService) Get(ctx context.Context, token string, id models.ID) (models.Event, error) {
	env, err := s.client.Get(ctx, "/event/"+id.String(), token)
	if err != nil {
		return models.Event{}, err
	}
	if !env.OK() {
		return models.Event{}, appError(env, "could not load the event")
	}

	var event models.Event
	if err := env.DecodeData(&event); err != nil {
		return models.Event{}, appError(env, "could not load the event")
	}
	return event, nil
}

// Create adds a new event (admin only; the backend enforces it too).
func (s *EventService) Create(ctx context.Context, token string, input models.EventInput) error {
	env, err := s.client.Post(ctx, "/event", token, input)
	if err != nil {
		return err
	}
	if !env.OK() {
		return appError(env, "could not create the event")
	}
	return nil
}

// Update rewrites an existing event.
func (s *EventService) Update(ctx context.Context, token string, id models.ID, input models.EventInput) error {
	env, err := s.client.Put(ctx, "/event/"+id.String(), token, input)
	if err != nil {
		return err
	}
	if !env.OK() {
		return appError(env, "could not update the event")
	}
	return nil
}

// Delete removes an event.
func (s *EventService) Delete(ctx context.Context, token string, id models.ID) error {
	env, err := s.client.Delete(ctx, "/event/"+id.String(), token)
	if err != nil {
		return err
	}
	if !env.OK() {
		return appError(env, "could not delete the event")
	}
	return nil
}
