package main

import (
	"os"

	"github.com/sirupsen/logrus"

	"github.com/invincible-jha/aumai-chaos/pkg/cli"
	"github.com/invincible-jha/aumai-chaos/pkg/log"
)

func init() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:          true,
		DisableSorting:         true,
		DisableLevelTruncation: true,
	})
}

func main() {
	if err := cli.New().Execute(); err != nil {
		log.Errorf("%v", err)
		os.Exit(1)
	}
}
