package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// severityReport is the API for the severity overview of the agency dashboard
func (s *Server) severityReport(c *gin.Context) {
	summary, err := s.helps.Summary()
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, summary)
}

// locationReport is the API for the mean urgency of every location
func (s *Server) locationReport(c *gin.Context) {
	means, err := s.helps.AggregateByLocation()
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, means)
}

// typeReport is the API for the mean urgency of every request type
func (s *Server) typeReport(c *gin.Context) {
	means, err := s.helps.AggregateByType()
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, means)
}
