package main

import (
	"io"

	"github.com/aalpern/exposure"
	"github.com/jawher/mow.cli"
	log "github.com/sirupsen/logrus"
)

func CmdGrid(app *cli.Cli) {
	app.Command("grid", "Print the table as markdown", func(cmd *cli.Cmd) {
		cmd.Action = func() {
			run(exposure.NewTable().WriteGrid)
		}
	})
}

func CmdCSV(app *cli.Cli) {
	app.Command("csv", "Print the table as comma separated rows for spreadsheets", func(cmd *cli.Cmd) {
		cmd.Action = func() {
			run(exposure.NewTable().WriteCSV)
		}
	})
}

func CmdJSON(app *cli.Cli) {
	app.Command("json", "Dump the filter columns and rendered rows as JSON", func(cmd *cli.Cmd) {

		cmd.Spec = "[--pretty-print]"

		prettyPrint := cmd.BoolOpt("p pretty-print", false,
			"Format the JSON output indented for human readability")

		cmd.Action = func() {
			doc := exposure.NewTable().Document()
			log.WithFields(log.Fields{
				"action":  "dump",
				"rows":    len(doc.Rows),
				"filters": len(doc.Filters),
			}).Debug("Writing JSON")
			run(func(w io.Writer) error {
				return dump(w, doc, *prettyPrint)
			})
		}
	})
}
