package escalation

import (
	"context"
	"errors"

	"go.uber.org/cadence/activity"
	"go.uber.org/zap"

	"github.com/bitmark-inc/relief-api/background"
	"github.com/bitmark-inc/relief-api/lifecycle"
	"github.com/bitmark-inc/relief-api/schema"
)

// CheckHelpPendingActivity reports whether a help request is still waiting
// to be picked up. Unknown requests are never escalated.
func (e *EscalationWorker) CheckHelpPendingActivity(ctx context.Context, helpID string) (bool, error) {
	logger := activity.GetLogger(ctx)

	help, err := e.helps.Get(helpID)
	if err != nil {
		if errors.Is(err, lifecycle.ErrNotFound) {
			logger.Warn("help request not found", zap.String("helpID", helpID))
			return false, nil
		}
		return false, err
	}

	return help.Status == schema.HelpPending, nil
}

// NotifyEscalationActivity alerts admins about a help request nobody has picked up
func (e *EscalationWorker) NotifyEscalationActivity(ctx context.Context, helpID string) error {
	logger := activity.GetLogger(ctx)

	help, err := e.helps.Get(helpID)
	if err != nil {
		return err
	}

	headings, contents, err := background.LocalizedMessage("help_escalation", func(string) map[string]interface{} {
		return map[string]interface{}{
			"Location": help.Location,
			"Urgency":  help.Urgency,
		}
	})
	if err != nil {
		logger.Error("can not generate escalation message", zap.Error(err))
		return err
	}

	return e.NotificationCenter.NotifyRoles([]schema.Role{schema.RoleAdmin}, headings, contents, map[string]interface{}{
		"notification_type": "HELP_ESCALATION",
		"help_id":           helpID,
	})
}
