// file: services/ticket_service_test.go
package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ticket-office/models"
)

// stubBackend answers every request with the given body and status.
func stubBackend(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(backend.Close)
	return backend
}

func TestPurchasePrefersNestedID(t *testing.T) {
	backend := stubBackend(t, http.StatusOK, `{"status":"success","data":{"id":42},"id":99}`)
	svc := NewTicketService(NewBackendClient(backend.URL))

	id, err := svc.Purchase(context.Background(), "tok", "7")

	require.NoError(t, err)
	assert.Equal(t, models.ID("42"), id)
}

func TestPurchaseFallsBackToTopLevelID(t *testing.T) {
	backend := stubBackend(t, http.StatusOK, `{"status":"success","id":42}`)
	svc := NewTicketService(NewBackendClient(backend.URL))

	id, err := svc.Purchase(context.Background(), "tok", "7")

	require.NoError(t, err)
	assert.Equal(t, models.ID("42"), id)
}

func TestPurchaseWithoutIDSucceedsEmpty(t *testing.T) {
	backend := stubBackend(t, http.StatusOK, `{"status":"success"}`)
	svc := NewTicketService(NewBackendClient(backend.URL))

	id, err := svc.Purchase(context.Background(), "tok", "7")

	require.NoError(t, err)
	assert.Equal(t, models.ID(""), id)
}

func TestPurchaseStringIDDecodes(t *testing.T) {
	backend := stubBackend(t, http.StatusOK, `{"status":"success","data":{"id":"abc123"}}`)
	svc := NewTicketService(NewBackendClient(backend.URL))

	id, err := svc.Purchase(context.Background(), "tok", "7")

	require.NoError(t, err)
	assert.Equal(t, models.ID("abc123"), id)
}

func TestPurchaseEnvelopeFailureCarriesMessage(t *testing.T) {
	backend := stubBackend(t, http.StatusOK, `{"status":"error","message":"sold out"}`)
	svc := NewTicketService(NewBackendClient(backend.URL))

	_, err := svc.Purchase(context.Background(), "tok", "7")

	require.Error(t, err)
	assert.Equal(t, "sold out", FriendlyMessage(err, "fallback"))
}

func TestGetTicketToleratesMissingEvent(t *testing.T) {
	backend := stubBackend(t, http.StatusOK,
		`{"status":"success","data":{"id":1,"eventId":2,"ownerId":3,"entered":false}}`)
	svc := NewTicketService(NewBackendClient(backend.URL))

	ticket, err := svc.Get(context.Background(), "tok", "1")

	require.NoError(t, err)
	assert.Nil(t, ticket.Event)
	assert.Equal(t, models.ID("1"), ticket.ID)
}

func TestListDecodesTickets(t *testing.T) {
	backend := stubBackend(t, http.StatusOK,
		`{"status":"success","data":[{"id":1,"eventId":2,"entered":true,"event":{"id":2,"name":"Concert"}}]}`)
	svc := NewTicketService(NewBackendClient(backend.URL))

	tickets, err := svc.List(context.Background(), "tok")

	require.NoError(t, err)
	require.Len(t, tickets, 1)
	assert.True(t, tickets[0].Entered)
	require.NotNil(t, tickets[0].Event)
	assert.Equal(t, "Concert", tickets[0].Event.Name)
}

func TestValidateDecodesTicket(t *testing.T) {
	backend := stubBackend(t, http.StatusOK,
		`{"status":"success","data":{"id":1,"entered":true,"event":{"name":"Concert","date":"2026-09-01","location":"Hall A"}}}`)
	svc := NewTicketService(NewBackendClient(backend.URL))

	ticket, err := svc.Validate(context.Background(), "tok", models.ValidationInput{TicketID: "1", OwnerID: "2"})

	require.NoError(t, err)
	require.NotNil(t, ticket.Event)
	assert.Equal(t, "Hall A", ticket.Event.Location)
}

func TestIsAlreadyUsedMessage(t *testing.T) {
	cases := []struct {
		message string
		want    bool
	}{
		{"该票已入场", true},
		{"ticket already validated", true},
		{"This ticket was already used", true},
		{"Ticket has ENTERED the venue", true},
		{"ticket not found", false},
		{"owner mismatch", false},
		{"", false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, IsAlreadyUsedMessage(tc.message), "message: %q", tc.message)
	}
}
