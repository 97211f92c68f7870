// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package cli

import (
	"cipherbox/internal/cipher"
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// reportSeparator bounds every result report, top and bottom.
const reportSeparator = "=================================================="

// reportRow is one "Label:  value" line of a result report.
type reportRow struct {
	Label string
	Value string
}

// formatReport renders the fixed result report: a separator line, one
// aligned row per entry, and a closing separator.
func formatReport(rows []reportRow) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(reportSeparator)
	b.WriteString("\n")
	for _, row := range rows {
		// Pad labels to a common column so values line up.
		b.WriteString(fmt.Sprintf("%-15s %s\n", row.Label+":", row.Value))
	}
	b.WriteString(reportSeparator)
	b.WriteString("\n")
	return b.String()
}

func printReport(rows []reportRow) {
	if color.NoColor {
		fmt.Print(formatReport(rows))
		return
	}
	fmt.Print("\n" + reportSeparator + "\n")
	for _, row := range rows {
		labelColor.Printf("%-15s", row.Label+":")
		fmt.Printf(" %s\n", row.Value)
	}
	fmt.Println(reportSeparator)
}

func printSteps(steps []cipher.Step) {
	fmt.Println()
	for _, s := range steps {
		stepColor.Printf("[%3d] %s", s.Number, s.Title)
		fmt.Printf(": %s", s.Description)
		if s.Details != "" {
			fmt.Printf(" (%s)", s.Details)
		}
		fmt.Println()
	}
}
