package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/aalpern/exposure"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func NewRootCmd() *cobra.Command {
	var verbose bool

	// Errors are logged once by main
	cmd := &cobra.Command{
		Use:           "exposure",
		Short:         "Print shutter times behind stacked ND filters",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"Enable debug logging")

	cmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if verbose {
			log.SetLevel(log.DebugLevel)
		}
	}

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		t := exposure.NewTable()
		if err := t.WriteGrid(cmd.OutOrStdout()); err != nil {
			return err
		}
		return t.WriteCSV(cmd.OutOrStdout())
	}

	cmd.AddCommand(CmdGrid(), CmdCSV(), CmdJSON())
	return cmd
}

func CmdGrid() *cobra.Command {
	return &cobra.Command{
		Use:   "grid",
		Short: "Print the table as markdown",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return exposure.NewTable().WriteGrid(cmd.OutOrStdout())
		},
	}
}

func CmdCSV() *cobra.Command {
	return &cobra.Command{
		Use:   "csv",
		Short: "Print the table as comma separated rows for spreadsheets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return exposure.NewTable().WriteCSV(cmd.OutOrStdout())
		},
	}
}

func CmdJSON() *cobra.Command {
	var prettyPrint bool

	cmd := &cobra.Command{
		Use:   "json",
		Short: "Dump the filter columns and rendered rows as JSON",
		Args:  cobra.NoArgs,
	}

	cmd.Flags().BoolVarP(&prettyPrint, "pretty-print", "p", false,
		"Format the JSON output indented for human readability")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		doc := exposure.NewTable().Document()
		log.WithFields(log.Fields{
			"action":  "dump",
			"rows":    len(doc.Rows),
			"filters": len(doc.Filters),
		}).Debug("Writing JSON")
		return dump(cmd.OutOrStdout(), doc, prettyPrint)
	}

	return cmd
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
