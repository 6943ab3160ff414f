// Package models file: models/event.go
package models

// ------------------------ event model -----------------------

// Event is a ticketed event as the backend serves it. Date fields stay as
// the backend's strings; the front end renders them without reformatting.
type Event struct {
	ID                    ID     `json:"id"`
	Name                  string `json:"name"`
	Location              string `json:"location"`
	Date                  string `json:"date"`
	EndDate               string `json:"endDate,omitempty"`
	TotalTicketsPurchased int    `json:"totalTicketsPurchased"`
	TotalTicketsEntered   int    `json:"totalTicketsEntered"`
}

// EventInput is the create/update request body for event management.
type EventInput struct {
	Name     string `json:"name"`
	Location string `json:"location"`
	Date     string `json:"date"`
	EndDate  string `json:"endDate,omitempty"`
}
