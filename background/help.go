package background

import (
	"errors"

	"github.com/bitmark-inc/relief-api/lifecycle"
	"github.com/bitmark-inc/relief-api/schema"
)

const (
	TaskBroadcastUrgentHelp = "broadcast_urgent_help"
	TaskNotifyHelpStatus    = "notify_help_status"
)

// urgentHelpReceivers are the roles able to pick up an urgent request
var urgentHelpReceivers = []schema.Role{schema.RoleReliefProvider, schema.RoleAdmin}

// BroadcastUrgentHelp is a background job to notify relief providers and admins
// about a new urgent help request. Requests which are no longer pending by the
// time the job runs are skipped.
func (m *BackgroundManager) BroadcastUrgentHelp(helpID, location string, urgency int64) error {
	help, err := m.helps.Get(helpID)
	if err != nil {
		if errors.Is(err, lifecycle.ErrNotFound) {
			log.WithField("help_id", helpID).Warn("skip broadcasting an unknown help request")
			return nil
		}
		return err
	}

	if help.Status != schema.HelpPending {
		log.WithField("help_id", helpID).
			WithField("status", help.Status).
			Info("skip broadcasting a help request which is no longer pending")
		return nil
	}

	headings, contents, err := LocalizedMessage("urgent_help", func(string) map[string]interface{} {
		return map[string]interface{}{
			"Location": location,
			"Urgency":  urgency,
		}
	})
	if err != nil {
		return err
	}

	return m.NotificationCenter.NotifyRoles(urgentHelpReceivers, headings, contents, map[string]interface{}{
		"notification_type": "BROADCAST_URGENT_HELP",
		"help_id":           helpID,
	})
}

// NotifyHelpStatus is a background job to tell a requester the new status of
// the help request
func (m *BackgroundManager) NotifyHelpStatus(helpID, requesterID, status string) error {
	helpStatus, err := schema.ParseHelpStatus(status)
	if err != nil {
		return err
	}

	headings, contents, err := LocalizedMessage("help_status", func(lang string) map[string]interface{} {
		return map[string]interface{}{
			"Status": LocalizedStatus(lang, helpStatus),
		}
	})
	if err != nil {
		return err
	}

	return m.NotificationCenter.NotifyRequester(requesterID, headings, contents, map[string]interface{}{
		"notification_type": "NOTIFY_HELP_STATUS",
		"help_id":           helpID,
		"status":            string(helpStatus),
	})
}
