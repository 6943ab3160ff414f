// Package controllers file: controllers/event_controller.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ticket-office/logger"
	"ticket-office/models"
)

// ------------------ browsing ------------------

// EventList renders all events. Shared between roles; the template shows
// management actions only to admins.
func EventList(c *gin.Context) {
	s, ok := mustSession(c)
	if !ok {
		return
	}

	events, err := eventService.List(c.Request.Context(), s.Token)
	if err != nil {
		if failClosedIfUnauthorized(c, err) {
			return
		}
		logger.Error.Printf("EventList: %v", err)
		renderError(c, http.StatusOK, "events.html", gin.H{"Events": []models.Event{}},
			friendly(err, "Could not load events."))
		return
	}

	c.HTML(http.StatusOK, "events.html", pageData(c, gin.H{"Events": events}))
}

// EventDetail renders one event with the purchase confirmation for
// ordinary users.
func EventDetail(c *gin.Context) {
	s, ok := mustSession(c)
	if !ok {
		return
	}

	id := models.ID(c.Param("id"))
	event, err := eventService.Get(c.Request.Context(), s.Token, id)
	if err != nil {
		if failClosedIfUnauthorized(c, err) {
			return
		}
		logger.Error.Printf("EventDetail: event %s: %v", id, err)
		renderError(c, http.StatusNotFound, "event_detail.html", gin.H{},
			friendly(err, "Could not load the event."))
		return
	}

	c.HTML(http.StatusOK, "event_detail.html", pageData(c, gin.H{"Event": event}))
}

// ------------------ management (admin only) ------------------

// ShowEventForm renders the create form, or the edit form when an id is in
// the route.
func ShowEventForm(c *gin.Context) {
	s, ok := mustSession(c)
	if !ok {
		return
	}

	data := gin.H{}
	if id := c.Param("id"); id != "" {
		event, err := eventService.Get(c.Request.Context(), s.Token, models.ID(id))
		if err != nil {
			if failClosedIfUnauthorized(c, err) {
				return
			}
			renderError(c, http.StatusNotFound, "event_form.html", gin.H{},
				friendly(err, "Could not load the event."))
			return
		}
		data["Event"] = event
	}

	c.HTML(http.StatusOK, "event_form.html", pageData(c, data))
}

func eventInputFromForm(c *gin.Context) (models.EventInput, bool) {
	input := models.EventInput{
		Name:     c.PostForm("name"),
		Location: c.PostForm("location"),
		Date:     c.PostForm("date"),
		EndDate:  c.PostForm("endDate"),
	}
	if input.Name == "" || input.Location == "" || input.Date == "" {
		renderError(c, http.StatusBadRequest, "event_form.html", gin.H{"Form": input},
			"Name, location and date are required.")
		return input, false
	}
	return input, true
}

// CreateEvent adds an event and returns to the list.
func CreateEvent(c *gin.Context) {
	s, ok := mustSession(c)
	if !ok {
		return
	}
	input, ok := eventInputFromForm(c)
	if !ok {
		return
	}

	if err := eventService.Create(c.Request.Context(), s.Token, input); err != nil {
		if failClosedIfUnauthorized(c, err) {
			return
		}
		logger.Error.Printf("CreateEvent: %v", err)
		renderError(c, http.StatusBadRequest, "event_form.html", gin.H{"Form": input},
			friendly(err, "Could not create the event."))
		return
	}

	logger.Info.Printf("CreateEvent: %s created %q", s.User.Email, input.Name)
	c.Redirect(http.StatusFound, "/events")
}

// UpdateEvent rewrites an event and returns to its detail page.
func UpdateEvent(c *gin.Context) {
	s, ok := mustSession(c)
	if !ok {
		return
	}
	input, ok := eventInputFromForm(c)
	if !ok {
		return
	}

	id := models.ID(c.Param("id"))
	if err := eventService.Update(c.Request.Context(), s.Token, id, input); err != nil {
		if failClosedIfUnauthorized(c, err) {
			return
		}
		logger.Error.Printf("UpdateEvent: event %s: %v", id, err)
		renderError(c, http.StatusBadRequest, "event_form.html", gin.H{"Form": input},
			friendly(err, "Could not update the event."))
		return
	}

	c.Redirect(http.StatusFound, "/events/"+id.String())
}

// DeleteEvent removes an event and returns to the list.
func DeleteEvent(c *gin.Context) {
	s, ok := mustSession(c)
	if !ok {
		return
	}

	id := models.ID(c.Param("id"))
	if err := eventService.Delete(c.Request.Context(), s.Token, id); err != nil {
		if failClosedIfUnauthorized(c, err) {
			return
		}
		logger.Error.Printf("DeleteEvent: event %s: %v", id, err)
		renderError(c, http.StatusOK, "events.html", gin.H{},
			friendly(err, "Could not delete the event."))
		return
	}

	logger.Info.Printf("DeleteEvent: %s deleted event %s", s.User.Email, id)
	c.Redirect(http.StatusFound, "/events")
}
