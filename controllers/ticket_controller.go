// Package controllers file: controllers/ticket_controller.go
package controllers

import (
	"encoding/base64"
	"net/http"

	"github.com/gin-gonic/gin"

	"ticket-office/logger"
	"ticket-office/models"
	"ticket-office/monitoring"
	"ticket-office/services"
)

// ------------------ ticket views ------------------

// TicketList renders the signed-in user's tickets.
func TicketList(c *gin.Context) {
	s, ok := mustSession(c)
	if !ok {
		return
	}

	tickets, err := ticketService.List(c.Request.Context(), s.Token)
	if err != nil {
		if failClosedIfUnauthorized(c, err) {
			return
		}
		logger.Error.Printf("TicketList: %v", err)
		renderError(c, http.StatusOK, "tickets.html", gin.H{"Tickets": []models.Ticket{}},
			friendly(err, "Could not load your tickets."))
		return
	}

	c.HTML(http.StatusOK, "tickets.html", pageData(c, gin.H{"Tickets": tickets}))
}

// TicketDetail renders one ticket. The QR comes from the backend when it
// sent one (base64 PNG rendered inline); otherwise the template points at
// the locally generated /tickets/:id/qrcode image. A missing denormalized
// event renders as placeholders, not an error.
func TicketDetail(c *gin.Context) {
	s, ok := mustSession(c)
	if !ok {
		return
	}

	id := models.ID(c.Param("id"))
	ticket, err := ticketService.Get(c.Request.Context(), s.Token, id)
	if err != nil {
		if failClosedIfUnauthorized(c, err) {
			return
		}
		logger.Error.Printf("TicketDetail: ticket %s: %v", id, err)
		renderError(c, http.StatusNotFound, "ticket_detail.html", gin.H{},
			friendly(err, "Could not load the ticket."))
		return
	}

	data := gin.H{"Ticket": ticket}
	if ticket.QRCode != "" {
		// sanity-check the backend's base64 before inlining it
		if _, err := base64.StdEncoding.DecodeString(ticket.QRCode); err == nil {
			data["QRDataURI"] = "data:image/png;base64," + ticket.QRCode
		} else {
			logger.Warn.Printf("TicketDetail: ticket %s carried invalid base64 qrcode", id)
		}
	}

	c.HTML(http.StatusOK, "ticket_detail.html", pageData(c, data))
}

// TicketQRCode serves a locally generated QR PNG for a ticket, for when
// the backend did not attach one.
func TicketQRCode(c *gin.Context) {
	s, ok := mustSession(c)
	if !ok {
		return
	}

	id := models.ID(c.Param("id"))
	ticket, err := ticketService.Get(c.Request.Context(), s.Token, id)
	if err != nil {
		if failClosedIfUnauthorized(c, err) {
			return
		}
		c.String(http.StatusNotFound, "ticket not found")
		return
	}

	png, err := services.GenerateTicketQR(ApplicationURL, ticket, 300, nil)
	if err != nil {
		logger.Error.Printf("TicketQRCode: ticket %s: %v", id, err)
		c.String(http.StatusInternalServerError, "QR generation failed")
		return
	}

	c.Header("Content-Type", "image/png")
	c.Header("Content-Disposition", "inline; filename=\"ticket-"+id.String()+".png\"")
	if _, err := c.Writer.Write(png); err != nil {
		logger.Warn.Printf("TicketQRCode: writing PNG for ticket %s: %v", id, err)
	}
}

// ------------------ purchase flow ------------------

// BuyTicket handles the confirmed purchase from the event detail page. On
// success it lands on the new ticket when the backend said which one it
// was, and on the ticket list when it did not.
func BuyTicket(c *gin.Context) {
	s, ok := mustSession(c)
	if !ok {
		return
	}

	eventID := models.ID(c.Param("id"))
	ticketID, err := ticketService.Purchase(c.Request.Context(), s.Token, eventID)
	if err != nil {
		if failClosedIfUnauthorized(c, err) {
			return
		}
		monitoring.RecordPurchase("failed")
		logger.Warn.Printf("BuyTicket: event %s: %v", eventID, err)

		// re-render the event page with the failure banner
		event, getErr := eventService.Get(c.Request.Context(), s.Token, eventID)
		if getErr != nil {
			if failClosedIfUnauthorized(c, getErr) {
				return
			}
			renderError(c, http.StatusOK, "event_detail.html", gin.H{},
				friendly(err, "Purchase failed, please try again."))
			return
		}
		renderError(c, http.StatusOK, "event_detail.html", gin.H{"Event": event},
			friendly(err, "Purchase failed, please try again."))
		return
	}

	monitoring.RecordPurchase("success")
	logger.Info.Printf("BuyTicket: %s bought a ticket for event %s (ticket=%q)", s.User.Email, eventID, ticketID)

	if ticketID != "" {
		c.Redirect(http.StatusFound, "/tickets/"+ticketID.String())
		return
	}
	c.Redirect(http.StatusFound, "/tickets")
}
