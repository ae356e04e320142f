package log

import (
	"os"

	"github.com/sirupsen/logrus"
)

// NewLogger returns a text logger on stderr. Unknown level names fall back to info.
func NewLogger(level string) *logrus.Logger {
	var log = logrus.New()
	log.Formatter = new(logrus.TextFormatter)
	log.Formatter.(*logrus.TextFormatter).FullTimestamp = true
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	log.Level = lvl
	log.Out = os.Stderr
	return log
}
