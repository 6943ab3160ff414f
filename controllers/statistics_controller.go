// Package controllers file: controllers/statistics_controller.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ticket-office/logger"
)

// StatisticsPage renders the aggregate counts for staff. The service
// already substitutes fallback numbers for anything but a rejected
// session, so this page never comes up blank.
func StatisticsPage(c *gin.Context) {
	s, ok := mustSession(c)
	if !ok {
		return
	}

	stats, err := statisticsService.Dashboard(c.Request.Context(), s.Token)
	if err != nil {
		if failClosedIfUnauthorized(c, err) {
			return
		}
		logger.Error.Printf("StatisticsPage: unexpected stats error: %v", err)
	}

	c.HTML(http.StatusOK, "statistics.html", pageData(c, gin.H{"Stats": stats}))
}
