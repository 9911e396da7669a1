package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/aalpern/exposure"
	"github.com/jawher/mow.cli"
	log "github.com/sirupsen/logrus"
)

func main() {
	app := cli.App("exposure", "Print shutter times behind stacked ND filters")

	app.Spec = "[--verbose]"

	verbose := app.BoolOpt("v verbose", false, "Enable debug logging")

	app.Before = func() {
		if *verbose {
			log.SetLevel(log.DebugLevel)
		}
	}

	// With no command, print both tables
	app.Action = func() {
		run(func(w io.Writer) error {
			return writeTables(w, exposure.NewTable())
		})
	}

	CmdGrid(app)
	CmdCSV(app)
	CmdJSON(app)

	app.Run(os.Args)
}

func writeTables(w io.Writer, t *exposure.Table) error {
	if err := t.WriteGrid(w); err != nil {
		return err
	}
	return t.WriteCSV(w)
}

// run renders to stdout and exits non-zero if stdout cannot be written.
func run(render func(io.Writer) error) {
	if err := render(os.Stdout); err != nil {
		log.WithFields(log.Fields{
			"action": "render",
			"status": "error",
			"error":  err,
		}).Error("Error writing table")
		cli.Exit(1)
	}
}

func dump(w io.Writer, data interface{}, prettyPrint bool) error {
	var js []byte
	var err error
	if prettyPrint {
		js, err = json.MarshalIndent(data, "", "  ")
	} else {
		js, err = json.Marshal(data)
	}
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(js))
	return err
}
