package escalation

import (
	"github.com/uber-go/tally"
	"go.uber.org/cadence/.gen/go/cadence/workflowserviceclient"
	"go.uber.org/cadence/activity"
	"go.uber.org/cadence/worker"
	"go.uber.org/cadence/workflow"
	"go.uber.org/zap"

	"github.com/bitmark-inc/relief-api/background"
	"github.com/bitmark-inc/relief-api/external/cadence"
	"github.com/bitmark-inc/relief-api/lifecycle"
	"github.com/bitmark-inc/relief-api/utils"
)

const TaskListName = utils.EscalationTaskListName

type EscalationWorker struct {
	background.Background
	domain string
	helps  lifecycle.Lifecycle
}

func NewEscalationWorker(domain string, helps lifecycle.Lifecycle, notificationCenter background.NotificationCenter) *EscalationWorker {
	return &EscalationWorker{
		Background: background.Background{
			NotificationCenter: notificationCenter,
		},
		domain: domain,
		helps:  helps,
	}
}

func (e *EscalationWorker) Register() {
	workflow.RegisterWithOptions(e.HelpEscalationWorkflow, workflow.RegisterOptions{Name: "HelpEscalationWorkflow"})

	activity.RegisterWithOptions(e.CheckHelpPendingActivity, activity.RegisterOptions{Name: "CheckHelpPendingActivity"})
	activity.RegisterWithOptions(e.NotifyEscalationActivity, activity.RegisterOptions{Name: "NotifyEscalationActivity"})
}

func (e *EscalationWorker) Start(service workflowserviceclient.Interface, logger *zap.Logger) {
	workerOptions := worker.Options{
		Logger:        logger,
		MetricsScope:  tally.NewTestScope(TaskListName, map[string]string{}),
		DataConverter: cadence.NewMsgPackDataConverter(),
	}

	worker := worker.New(
		service,
		e.domain,
		TaskListName,
		workerOptions)

	if err := worker.Start(); err != nil {
		panic("Failed to start worker")
	}

	logger.Info("Started Worker.", zap.String("worker", TaskListName))

	select {}
}
