package main

import (
	"io"

	"github.com/olekukonko/tablewriter"
)

// printMessageTable renders decoded messages in the same plain,
// border-free table style dittofs uses for its own CLI output.
func printMessageTable(w io.Writer, messages []decodedMessage) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Procedure", "Direction", "Message"})

	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("  ")
	table.SetNoWhiteSpace(true)

	for _, m := range messages {
		table.Append([]string{m.Procedure, m.Direction, m.Summary})
	}

	table.Render()
}
