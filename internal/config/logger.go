package config

import (
	"os"

	"github.com/sirupsen/logrus"
)

var logg *logrus.Logger

func GetLogger() *logrus.Logger {
	return logg
}

func init() {
	logg = logrus.New()
	logg.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	logg.SetLevel(logrus.InfoLevel)
	logg.SetOutput(os.Stdout)
}

// SetVerbose lowers the log level to debug for per-stage detail.
func SetVerbose(verbose bool) {
	if verbose {
		logg.SetLevel(logrus.DebugLevel)
	}
}
