// Package controllers file: controllers/validation_controller.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ticket-office/logger"
	"ticket-office/models"
	"ticket-office/monitoring"
	"ticket-office/services"
)

// AlreadyUsedMessage is the distinct banner for a ticket that was rejected
// because it has been used before.
const AlreadyUsedMessage = "This ticket has already been used."

// ShowValidationPage renders the operator's validation form. Ticket and
// owner ids may arrive prefilled in the query, which is how scanned ticket
// QR codes land here.
func ShowValidationPage(c *gin.Context) {
	c.HTML(http.StatusOK, "validate.html", pageData(c, gin.H{
		"TicketID": c.Query("ticketId"),
		"OwnerID":  c.Query("ownerId"),
	}))
}

// PerformValidation submits the ticket/owner pair to the backend. A success
// shows the ticket's event, time and location in a validated state. A
// failure whose message marks the ticket as already used gets its own
// banner; every other failure shows the backend's message.
func PerformValidation(c *gin.Context) {
	s, ok := mustSession(c)
	if !ok {
		return
	}

	ticketID := c.PostForm("ticketId")
	ownerID := c.PostForm("ownerId")
	form := gin.H{"TicketID": ticketID, "OwnerID": ownerID}

	if ticketID == "" || ownerID == "" {
		renderError(c, http.StatusBadRequest, "validate.html", form,
			"Please provide both the ticket id and the owner id.")
		return
	}

	ticket, err := ticketService.Validate(c.Request.Context(), s.Token, models.ValidationInput{
		TicketID: models.ID(ticketID),
		OwnerID:  models.ID(ownerID),
	})
	if err != nil {
		if failClosedIfUnauthorized(c, err) {
			return
		}

		message := friendly(err, "Validation failed.")
		if services.IsAlreadyUsedMessage(message) {
			monitoring.RecordValidation("already_used")
			logger.Info.Printf("PerformValidation: ticket %s already used", ticketID)
			renderError(c, http.StatusOK, "validate.html", form, AlreadyUsedMessage)
			return
		}

		monitoring.RecordValidation("failed")
		logger.Warn.Printf("PerformValidation: ticket %s: %v", ticketID, err)
		renderError(c, http.StatusOK, "validate.html", form, message)
		return
	}

	monitoring.RecordValidation("validated")
	logger.Info.Printf("PerformValidation: ticket %s validated by %s", ticketID, s.User.Email)
	c.HTML(http.StatusOK, "validate.html", pageData(c, gin.H{
		"Validated": true,
		"Ticket":    ticket,
	}))
}
