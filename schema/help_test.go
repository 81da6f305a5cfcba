package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseHelpStatus(t *testing.T) {
	cases := map[string]HelpStatus{
		"Pending":     HelpPending,
		"pending":     HelpPending,
		"InProgress":  HelpInProgress,
		"In Progress": HelpInProgress,
		"in progress": HelpInProgress,
		"RESOLVED":    HelpResolved,
		" Cancelled ": HelpCancelled,
	}

	for label, expected := range cases {
		status, err := ParseHelpStatus(label)
		assert.NoError(t, err, label)
		assert.Equal(t, expected, status, label)
	}

	_, err := ParseHelpStatus("Expired")
	assert.Error(t, err)

	_, err = ParseHelpStatus("")
	assert.Error(t, err)
}

func TestHelpStatusTerminal(t *testing.T) {
	assert.False(t, HelpPending.Terminal())
	assert.False(t, HelpInProgress.Terminal())
	assert.True(t, HelpResolved.Terminal())
	assert.True(t, HelpCancelled.Terminal())
}

func TestParseRole(t *testing.T) {
	cases := map[string]Role{
		"requester":         RoleRequester,
		"Volunteer":         RoleVolunteer,
		"relief_provider":   RoleReliefProvider,
		"relief-provider":   RoleReliefProvider,
		"Government Agency": RoleGovernmentAgency,
		"ADMIN":             RoleAdmin,
	}

	for name, expected := range cases {
		role, err := ParseRole(name)
		assert.NoError(t, err, name)
		assert.Equal(t, expected, role, name)
		assert.True(t, role.Valid())
	}

	_, err := ParseRole("superuser")
	assert.Error(t, err)
	assert.False(t, Role("Admin").Valid())
}
