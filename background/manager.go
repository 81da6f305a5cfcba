package background

import (
	"errors"

	"github.com/RichardKnop/machinery/v1"

	"github.com/bitmark-inc/relief-api/lifecycle"
)

// BackgroundManager is a struct for relief background manager
type BackgroundManager struct {
	Background

	helps lifecycle.Lifecycle

	taskServer *machinery.Server

	worker *machinery.Worker
}

func New(helps lifecycle.Lifecycle, notificationCenter NotificationCenter, taskServer *machinery.Server) *BackgroundManager {
	return &BackgroundManager{
		Background: Background{
			NotificationCenter: notificationCenter,
		},
		helps:      helps,
		taskServer: taskServer,
	}
}

func (m *BackgroundManager) RegisterTask(name string, taskFunc interface{}) error {
	return m.taskServer.RegisterTask(name, taskFunc)
}

// RegisterTasks registers every help request task the worker is able to run
func (m *BackgroundManager) RegisterTasks() error {
	if err := m.RegisterTask(TaskBroadcastUrgentHelp, m.BroadcastUrgentHelp); err != nil {
		return err
	}
	return m.RegisterTask(TaskNotifyHelpStatus, m.NotifyHelpStatus)
}

// Run spawn workers to execute background jobs
func (m *BackgroundManager) Run() error {
	if m.worker != nil {
		return errors.New("background worker has started")
	}
	m.worker = m.taskServer.NewWorker("relief-worker", 5)
	return m.worker.Launch()
}
