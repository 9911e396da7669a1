package main

import (
	"os"

	log "github.com/sirupsen/logrus"
)

func main() {
	if err := NewRootCmd().Execute(); err != nil {
		log.WithFields(log.Fields{
			"action": "execute",
			"status": "error",
			"error":  err,
		}).Error("Command failed")
		os.Exit(1)
	}
}
