package escalation

import (
	"time"

	"github.com/getsentry/sentry-go"
	"go.uber.org/cadence/workflow"
	"go.uber.org/zap"
)

var activityOptions = workflow.ActivityOptions{
	ScheduleToStartTimeout: time.Minute,
	StartToCloseTimeout:    time.Minute,
	HeartbeatTimeout:       time.Second * 20,
}

// HelpEscalationWorkflow waits for the escalation window of a help request and
// alerts admins if nobody has picked the request up by then
func (e *EscalationWorker) HelpEscalationWorkflow(ctx workflow.Context, helpID string, window time.Duration) error {
	ctx = workflow.WithActivityOptions(ctx, activityOptions)

	logger := workflow.GetLogger(ctx)

	selector := workflow.NewSelector(ctx)

	timerFuture := workflow.NewTimer(ctx, window)
	selector.AddFuture(timerFuture, func(f workflow.Future) {
		logger.Info("Escalation window elapsed", zap.String("helpID", helpID))
	})

	selector.Select(ctx)

	var pending bool
	if err := workflow.ExecuteActivity(ctx, e.CheckHelpPendingActivity, helpID).Get(ctx, &pending); err != nil {
		logger.Error("Fail to check help status", zap.Error(err), zap.String("helpID", helpID))
		sentry.CaptureException(err)
		return err
	}

	if !pending {
		logger.Info("Help request has been picked up", zap.String("helpID", helpID))
		return nil
	}

	if err := workflow.ExecuteActivity(ctx, e.NotifyEscalationActivity, helpID).Get(ctx, nil); err != nil {
		logger.Error("Fail to notify admins", zap.Error(err), zap.String("helpID", helpID))
		sentry.CaptureException(err)
		return err
	}

	return nil
}
