// Package models file: models/ticket.go
package models

// ------------------------ ticket model -----------------------

// Ticket is a purchased ticket. The backend denormalizes the event onto the
// ticket; it is occasionally missing, so views must tolerate a nil Event.
// QRCode, when present, is a base64-encoded PNG.
type Ticket struct {
	ID        ID     `json:"id"`
	EventID   ID     `json:"eventId"`
	OwnerID   ID     `json:"ownerId"`
	Entered   bool   `json:"entered"`
	CreatedAt string `json:"createdAt,omitempty"`
	UpdatedAt string `json:"updatedAt,omitempty"`
	Event     *Event `json:"event,omitempty"`
	QRCode    string `json:"qrcode,omitempty"`
}

// PurchaseInput is the ticket purchase request body.
type PurchaseInput struct {
	EventID ID `json:"eventId"`
}

// ValidationInput is the ticket validation request body.
type ValidationInput struct {
	TicketID ID `json:"ticketId"`
	OwnerID  ID `json:"ownerId"`
}
