// Package services file: services/qrcode_service.go
package services

import (
	"fmt"
	"net/url"

	"github.com/skip2/go-qrcode"

	"ticket-office/models"
)

// QRCodeEncoder matches qrcode.Encode; injectable so tests can fail it.
type QRCodeEncoder func(content string, level qrcode.RecoveryLevel, size int) ([]byte, error)

// GenerateTicketQR renders a PNG QR code for a ticket. It encodes a link to
// the validation page with the ticket and owner prefilled, so an operator
// scanning it lands on /validate ready to submit. Used when the backend
// did not attach its own qrcode to the ticket.
func GenerateTicketQR(appURL string, ticket models.Ticket, size int, encode QRCodeEncoder) ([]byte, error) {
	if ticket.ID == "" {
		return nil, fmt.Errorf("ticket has no id")
	}
	if encode == nil {
		encode = qrcode.Encode
	}

	content := fmt.Sprintf("%s/validate?ticketId=%s&ownerId=%s",
		appURL,
		url.QueryEscape(ticket.ID.String()),
		url.QueryEscape(ticket.OwnerID.String()))

	png, err := encode(content, qrcode.Medium, size)
	if err != nil {
		return nil, err
	}
	return png, nil
}
