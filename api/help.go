package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bitmark-inc/relief-api/lifecycle"
	"github.com/bitmark-inc/relief-api/schema"
)

// abortWithLifecycleError maps an error of the help request lifecycle to its
// response
func abortWithLifecycleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, lifecycle.ErrValidation):
		abortWithEncoding(c, http.StatusBadRequest, withDetail(errorInvalidHelpRequest, err), err)
	case errors.Is(err, lifecycle.ErrNotFound):
		abortWithEncoding(c, http.StatusNotFound, errorRequestNotExist, err)
	case errors.Is(err, lifecycle.ErrInvalidTransition):
		abortWithEncoding(c, http.StatusConflict, withDetail(errorInvalidTransition, err), err)
	case errors.Is(err, lifecycle.ErrConcurrentConflict):
		abortWithEncoding(c, http.StatusConflict, withDetail(errorConcurrentConflict, err), err)
	default:
		log.Error(err)
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
	}
}

// createHelp is the API for filing a new help request
func (s *Server) createHelp(c *gin.Context) {
	actor := actorOf(c)

	var params struct {
		RequesterID string `json:"requesterId"`
		Type        string `json:"type"`
		Description string `json:"description"`
		Location    string `json:"location"`
		Urgency     int    `json:"urgency"`
	}

	if err := c.ShouldBindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	if params.RequesterID == "" {
		params.RequesterID = actor.ID
	}

	// requesters only file requests for themselves
	if actor.Role == schema.RoleRequester && params.RequesterID != actor.ID {
		abortWithEncoding(c, http.StatusForbidden, errorForbiddenRole)
		return
	}

	help, err := s.helps.Create(params.RequesterID, params.Type, params.Description, params.Location, params.Urgency)
	if err != nil {
		abortWithLifecycleError(c, err)
		return
	}

	s.dispatcher.HelpCreated(help)

	c.JSON(http.StatusOK, help)
}

// listHelps is the API for listing help requests. Requesters always get
// their own requests. Other roles either query the requests of a requester
// or every request narrowed by `status` and `type`.
func (s *Server) listHelps(c *gin.Context) {
	actor := actorOf(c)

	var params struct {
		RequesterID string   `form:"requesterId"`
		Statuses    []string `form:"status"`
		Types       []string `form:"type"`
	}

	if err := c.ShouldBindQuery(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	filter := lifecycle.Filter{
		Types: params.Types,
	}
	for _, raw := range params.Statuses {
		status, err := schema.ParseHelpStatus(raw)
		if err != nil {
			abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
			return
		}
		filter.Statuses = append(filter.Statuses, status)
	}

	if !lifecycle.CanViewAll(actor.Role) {
		if params.RequesterID != "" && params.RequesterID != actor.ID {
			abortWithEncoding(c, http.StatusForbidden, errorForbiddenRole)
			return
		}
		params.RequesterID = actor.ID
	}

	filter.RequesterID = params.RequesterID

	var helps []schema.HelpRequest
	var err error
	if filter.RequesterID != "" && len(filter.Statuses) == 0 && len(filter.Types) == 0 {
		helps, err = s.helps.ListForRequester(filter.RequesterID)
	} else {
		helps, err = s.helps.ListAll(filter)
	}

	if err != nil {
		abortWithLifecycleError(c, err)
		return
	}

	c.JSON(http.StatusOK, helps)
}

// getHelp is the API for reading a single help request
func (s *Server) getHelp(c *gin.Context) {
	help, ok := s.visibleHelp(c, c.Param("helpID"))
	if !ok {
		return
	}

	c.JSON(http.StatusOK, help)
}

// transitionHelp is the API for moving a help request to another status
func (s *Server) transitionHelp(c *gin.Context) {
	actor := actorOf(c)

	var params struct {
		ID           string `json:"id" binding:"required"`
		TargetStatus string `json:"targetStatus" binding:"required"`
	}

	if err := c.ShouldBindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	// an unknown target is rejected by the lifecycle as an invalid transition
	target, err := schema.ParseHelpStatus(params.TargetStatus)
	if err != nil {
		target = schema.HelpStatus(params.TargetStatus)
	}

	help, err := s.helps.Transition(params.ID, target, actor)
	if err != nil {
		abortWithLifecycleError(c, err)
		return
	}

	s.dispatcher.HelpTransitioned(help)

	c.JSON(http.StatusOK, help)
}

// helpHistory is the API for reading the audit trail of a help request
func (s *Server) helpHistory(c *gin.Context) {
	help, ok := s.visibleHelp(c, c.Param("helpID"))
	if !ok {
		return
	}

	history, err := s.helps.History(help.ID)
	if err != nil {
		abortWithLifecycleError(c, err)
		return
	}

	c.JSON(http.StatusOK, history)
}

// visibleHelp loads a help request the actor is allowed to read. Requests of
// other requesters are reported as not existing to a requester.
func (s *Server) visibleHelp(c *gin.Context, helpID string) (*schema.HelpRequest, bool) {
	actor := actorOf(c)

	help, err := s.helps.Get(helpID)
	if err != nil {
		abortWithLifecycleError(c, err)
		return nil, false
	}

	if !lifecycle.CanViewAll(actor.Role) && help.RequesterID != actor.ID {
		abortWithEncoding(c, http.StatusNotFound, errorRequestNotExist)
		return nil, false
	}

	return help, true
}
