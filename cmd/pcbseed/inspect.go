package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ukaji3/pcbseed-go/pkg/pcbseed/parser"
)

func newInspectCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect [workbook.xlsx]",
		Short: "List the sheets of a workbook with their parts and row counts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read workbook: %w", err)
			}
			wb, err := parser.OpenWorkbook(data)
			if err != nil {
				return err
			}
			return printInspection(cmd, wb)
		},
	}
}

func printInspection(cmd *cobra.Command, wb *parser.Workbook) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "SHEET\tPART\tROWS")
	for _, name := range wb.SheetNames() {
		part, _ := wb.PartPath(name)
		rows, err := wb.ReadSheet(name)
		if err != nil {
			return fmt.Errorf("sheet %q: %w", name, err)
		}
		fmt.Fprintf(w, "%s\t%s\t%d\n", name, part, len(rows))
	}
	fmt.Fprintf(w, "\nshared strings: %d\n", len(wb.SharedStrings()))
	return w.Flush()
}
