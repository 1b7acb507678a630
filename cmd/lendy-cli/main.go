package main

import (
	"os"

	"github.com/sirupsen/logrus"

	"github.com/lendy-labs/lendy-go/pkg/solana"
)

func main() {
	if err := newRootCmd(solana.New, os.Stdout).Execute(); err != nil {
		logrus.StandardLogger().WithField("type", "lendy-cli").WithError(err).Error("command failed")
		os.Exit(1)
	}
}
