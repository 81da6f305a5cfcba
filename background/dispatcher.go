package background

import (
	"context"
	"time"

	"github.com/RichardKnop/machinery/v1/backends/result"
	"github.com/RichardKnop/machinery/v1/tasks"

	"github.com/bitmark-inc/relief-api/schema"
	"github.com/bitmark-inc/relief-api/utils"
)

const (
	DefaultUrgencyThreshold = 4
	DefaultEscalationWindow = 30 * time.Minute
)

// Dispatcher fans the side effects of help request writes out to the
// background workers. Failures are logged and never returned, so a write
// which has been committed is never reported as failed.
type Dispatcher interface {
	HelpCreated(help *schema.HelpRequest)
	HelpTransitioned(help *schema.HelpRequest)
}

// TaskSender enqueues machinery tasks. It is satisfied by *machinery.Server.
type TaskSender interface {
	SendTask(signature *tasks.Signature) (*result.AsyncResult, error)
}

// MachineryDispatcher enqueues notification tasks to machinery and starts
// escalation workflows on cadence
type MachineryDispatcher struct {
	taskSender TaskSender
	escalation utils.WorkflowStarter

	urgencyThreshold int
	escalationWindow time.Duration
}

// NewMachineryDispatcher returns a dispatcher. A nil escalation starter
// disables escalation workflows.
func NewMachineryDispatcher(taskSender TaskSender, escalation utils.WorkflowStarter, urgencyThreshold int, escalationWindow time.Duration) *MachineryDispatcher {
	if urgencyThreshold <= 0 {
		urgencyThreshold = DefaultUrgencyThreshold
	}
	if escalationWindow <= 0 {
		escalationWindow = DefaultEscalationWindow
	}

	return &MachineryDispatcher{
		taskSender:       taskSender,
		escalation:       escalation,
		urgencyThreshold: urgencyThreshold,
		escalationWindow: escalationWindow,
	}
}

// HelpCreated broadcasts urgent requests and schedules their escalation
func (d *MachineryDispatcher) HelpCreated(help *schema.HelpRequest) {
	if help.Urgency < d.urgencyThreshold {
		return
	}

	if _, err := d.taskSender.SendTask(&tasks.Signature{
		Name: TaskBroadcastUrgentHelp,
		Args: []tasks.Arg{
			{Type: "string", Value: help.ID},
			{Type: "string", Value: help.Location},
			{Type: "int64", Value: int64(help.Urgency)},
		},
	}); err != nil {
		log.WithField("help_id", help.ID).WithError(err).Error("fail to enqueue urgent help broadcast")
	}

	if d.escalation == nil {
		return
	}

	if err := utils.TriggerHelpEscalation(d.escalation, context.Background(), help.ID, d.escalationWindow); err != nil {
		log.WithField("help_id", help.ID).WithError(err).Error("fail to start help escalation workflow")
	}
}

// HelpTransitioned notifies the requester about the new status
func (d *MachineryDispatcher) HelpTransitioned(help *schema.HelpRequest) {
	if _, err := d.taskSender.SendTask(&tasks.Signature{
		Name: TaskNotifyHelpStatus,
		Args: []tasks.Arg{
			{Type: "string", Value: help.ID},
			{Type: "string", Value: help.RequesterID},
			{Type: "string", Value: string(help.Status)},
		},
	}); err != nil {
		log.WithField("help_id", help.ID).WithError(err).Error("fail to enqueue help status notification")
	}
}
