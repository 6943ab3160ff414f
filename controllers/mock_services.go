// file: controllers/mock_services.go
package controllers

import (
	"context"

	"github.com/stretchr/testify/mock"

	"ticket-office/models"
)

// Testify mocks for the backend services, used by the controller tests.

// MockAuthService implements services.AuthServiceInterface.
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(ctx context.Context, creds models.Credentials) (models.AuthPayload, error) {
	args := m.Called(ctx, creds)
	return args.Get(0).(models.AuthPayload), args.Error(1)
}

func (m *MockAuthService) Register(ctx context.Context, reg models.Registration) (models.AuthPayload, error) {
	args := m.Called(ctx, reg)
	return args.Get(0).(models.AuthPayload), args.Error(1)
}

func (m *MockAuthService) Logout(ctx context.Context, token string) {
	m.Called(ctx, token)
}

// MockEventService implements services.EventServiceInterface.
type MockEventService struct {
	mock.Mock
}

func (m *MockEventService) List(ctx context.Context, token string) ([]models.Event, error) {
	args := m.Called(ctx, token)
	return args.Get(0).([]models.Event), args.Error(1)
}

func (m *MockEventService) Get(ctx context.Context, token string, id models.ID) (models.Event, error) {
	args := m.Called(ctx, token, id)
	return args.Get(0).(models.Event), args.Error(1)
}

func (m *MockEventService) Create(ctx context.Context, token string, input models.EventInput) error {
	args := m.Called(ctx, token, input)
	return args.Error(0)
}

func (m *MockEventService) Update(ctx context.Context, token string, id models.ID, input models.EventInput) error {
	args := m.Called(ctx, token, id, input)
	return args.Error(0)
}

func (m *MockEventService) Delete(ctx context.Context, token string, id models.ID) error {
	args := m.Called(ctx, token, id)
	return args.Error(0)
}

// MockTicketService implements services.TicketServiceInterface.
type MockTicketService struct {
	mock.Mock
}

func (m *MockTicketService) List(ctx context.Context, token string) ([]models.Ticket, error) {
	args := m.Called(ctx, token)
	return args.Get(0).([]models.Ticket), args.Error(1)
}

func (m *MockTicketService) Get(ctx context.Context, token string, id models.ID) (models.Ticket, error) {
	args := m.Called(ctx, token, id)
	return args.Get(0).(models.Ticket), args.Error(1)
}

func (m *MockTicketService) Purchase(ctx context.Context, token string, eventID models.ID) (models.ID, error) {
	args := m.Called(ctx, token, eventID)
	return args.Get(0).(models.ID), args.Error(1)
}

func (m *MockTicketService) Validate(ctx context.Context, token string, input models.ValidationInput) (models.Ticket, error) {
	args := m.Called(ctx, token, input)
	return args.Get(0).(models.Ticket), args.Error(1)
}

// MockStatisticsService implements services.StatisticsServiceInterface.
type MockStatisticsService struct {
	mock.Mock
}

func (m *MockStatisticsService) Dashboard(ctx context.Context, token string) (models.DashboardStats, error) {
	args := m.Called(ctx, token)
	return args.Get(0).(models.DashboardStats), args.Error(1)
}
