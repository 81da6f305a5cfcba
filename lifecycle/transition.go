package lifecycle

import (
	"github.com/bitmark-inc/relief-api/schema"
)

type edge struct {
	from schema.HelpStatus
	to   schema.HelpStatus
}

// transitionTable is the single source of which role may move a help request
// along which edge. Terminal statuses have no outgoing edge.
var transitionTable = map[edge][]schema.Role{
	{schema.HelpPending, schema.HelpInProgress}:   {schema.RoleReliefProvider, schema.RoleAdmin},
	{schema.HelpPending, schema.HelpCancelled}:    {schema.RoleRequester, schema.RoleReliefProvider, schema.RoleAdmin},
	{schema.HelpInProgress, schema.HelpResolved}:  {schema.RoleReliefProvider, schema.RoleAdmin},
	{schema.HelpInProgress, schema.HelpCancelled}: {schema.RoleReliefProvider, schema.RoleAdmin},
}

// CanTransition reports whether the role may move a request from one status
// to another
func CanTransition(from, to schema.HelpStatus, role schema.Role) bool {
	roles, ok := transitionTable[edge{from, to}]
	if !ok {
		return false
	}

	for _, r := range roles {
		if r == role {
			return true
		}
	}
	return false
}

// NextStatuses returns the statuses the role may move a request to from the
// given status, in lifecycle order
func NextStatuses(from schema.HelpStatus, role schema.Role) []schema.HelpStatus {
	next := make([]schema.HelpStatus, 0)
	for _, to := range schema.HelpStatuses {
		if CanTransition(from, to, role) {
			next = append(next, to)
		}
	}
	return next
}

// CanViewAll reports whether the role may read every help request. Requesters
// only see their own.
func CanViewAll(role schema.Role) bool {
	switch role {
	case schema.RoleVolunteer, schema.RoleReliefProvider, schema.RoleGovernmentAgency, schema.RoleAdmin:
		return true
	default:
		return false
	}
}
