package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// metricHelps reports the number of help requests in every status
func (s *Server) metricHelps(c *gin.Context) {
	summary, err := s.helps.Summary()
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"total":     summary.Total,
		"by_status": summary.ByStatus,
	})
}
