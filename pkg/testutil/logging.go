package testutil

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// Importing testutil silences logrus unless tests run with -v.
func init() {
	for _, arg := range os.Args {
		if arg == "-test.v=true" {
			logrus.SetLevel(logrus.DebugLevel)
			return
		}
	}

	logrus.StandardLogger().Out = io.Discard
}
