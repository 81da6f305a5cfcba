package utils

import (
	"context"
	"fmt"
	"time"

	cadenceClient "go.uber.org/cadence/client"
	"go.uber.org/cadence/workflow"
)

// FIXME: there will be an import cycle if we use `github.com/bitmark-inc/relief-api/background/escalation`
const EscalationTaskListName = "relief-escalation-tasks"

// WorkflowStarter starts cadence workflows. It is satisfied by *cadence.CadenceClient.
type WorkflowStarter interface {
	StartWorkflow(ctx context.Context, options cadenceClient.StartWorkflowOptions, workflow interface{}, args ...interface{}) (*workflow.Execution, error)
}

// EscalationWorkflowID returns the id of the escalation workflow of a help request
func EscalationWorkflowID(helpID string) string {
	return fmt.Sprintf("help-escalation-%s", helpID)
}

// TriggerHelpEscalation is a helper function to start the workflow which
// escalates a help request still pending after the given window.
func TriggerHelpEscalation(client WorkflowStarter, c context.Context, helpID string, window time.Duration) error {
	_, err := client.StartWorkflow(c,
		cadenceClient.StartWorkflowOptions{
			ID:                           EscalationWorkflowID(helpID),
			TaskList:                     EscalationTaskListName,
			ExecutionStartToCloseTimeout: window + time.Hour,
			WorkflowIDReusePolicy:        cadenceClient.WorkflowIDReusePolicyRejectDuplicate,
		}, "HelpEscalationWorkflow", helpID, window)
	return err
}
