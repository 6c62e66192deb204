package commands

import (
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// newInvocationLogger tags one CLI invocation (a single `lint` or `fix` run)
// with a correlation id, so log lines from concurrent file processing in the
// same run can be tied back together. It logs at debug level only — normal
// runs stay quiet, matching --verbose being the progress-detail switch, not
// the logging-detail switch.
func newInvocationLogger(command string) (*logrus.Entry, string) {
	id := uuid.NewString()
	entry := logrus.WithFields(logrus.Fields{
		"command":        command,
		"correlation_id": id,
	})
	entry.Debug("invocation started")
	return entry, id
}
