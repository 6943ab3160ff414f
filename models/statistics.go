// Package models file: models/statistics.go
package models

// ---------------------- dashboard statistics ----------------------

// DashboardStats are the aggregate counts shown on the statistics page.
type DashboardStats struct {
	EventCount      int `json:"eventCount"`
	TicketCount     int `json:"ticketCount"`
	ValidationCount int `json:"validationCount"`
}
