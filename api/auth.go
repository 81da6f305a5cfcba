package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bitmark-inc/relief-api/lifecycle"
	"github.com/bitmark-inc/relief-api/schema"
)

type actorHeader struct {
	ID   string `header:"Actor-Id" binding:"required"`
	Role string `header:"Actor-Role" binding:"required"`
}

// actorMiddleware recognizes the actor a request is made on behalf of.
// It attaches an "actor" key in gin's context.
// Header format:
// - Actor-Id: identifier of the caller
// - Actor-Role: one of requester, volunteer, relief_provider, government_agency, admin
func (s *Server) actorMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		var h actorHeader
		if err := c.ShouldBindHeader(&h); err != nil {
			abortWithEncoding(c, http.StatusBadRequest, errorInvalidActor, err)
			return
		}

		role, err := schema.ParseRole(h.Role)
		if err != nil {
			abortWithEncoding(c, http.StatusBadRequest, errorInvalidActor, err)
			return
		}

		c.Set("actor", lifecycle.Actor{
			ID:   h.ID,
			Role: role,
		})
		c.Next()
	}
}

// triageRoleMiddleware only lets roles which may read every help request through
func (s *Server) triageRoleMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !lifecycle.CanViewAll(actorOf(c).Role) {
			abortWithEncoding(c, http.StatusForbidden, errorForbiddenRole)
			return
		}
		c.Next()
	}
}

func (s *Server) apikeyAuthentication(key string) gin.HandlerFunc {
	return func(c *gin.Context) {
		apiToken := c.GetHeader("Api-Token")
		if apiToken == "" || apiToken != key {
			c.AbortWithStatus(http.StatusForbidden)
			return
		}
		c.Next()
	}
}

func actorOf(c *gin.Context) lifecycle.Actor {
	return c.MustGet("actor").(lifecycle.Actor)
}
