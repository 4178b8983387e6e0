// Package log configures the application wide logger.
package log

import (
	"github.com/sirupsen/logrus"
	"github.com/suzuki-shunsuke/logrus-util/log"
)

func New(version string) *logrus.Entry {
	return log.New("pincheck", version)
}

func SetLevel(level string, logE *logrus.Entry) {
	if err := log.Set(logE, level, ""); err != nil {
		logE.WithError(err).Warn("set the log level")
	}
}
