package background

import (
	"github.com/sirupsen/logrus"
)

var log *logrus.Entry

func init() {
	log = logrus.WithField("prefix", "background")
}

// Background is a struct to maintain common clients
// and functions for all background workers
type Background struct {
	NotificationCenter NotificationCenter
}
