// Copyright (c) 2026 John Dewey

// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to
// deal in the Software without restriction, including without limitation the
// rights to use, copy, modify, merge, publish, distribute, sublicense, and/or
// sell copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:

// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.

// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING
// FROM, OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER
// DEALINGS IN THE SOFTWARE.

package cli

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"golang.org/x/term"
)

// Theme colors for terminal UI rendering.
var (
	Purple    = lipgloss.Color("99")
	Gray      = lipgloss.Color("245")
	LightGray = lipgloss.Color("241")
	White     = lipgloss.Color("15")
	Teal      = lipgloss.Color("#06ffa5")
)

// Reusable inline styles for compact key-value output.
var (
	labelStyle = lipgloss.NewStyle().Bold(true).Foreground(Purple)
	valueStyle = lipgloss.NewStyle().Foreground(Teal)

	// DimStyle is a muted style for secondary text.
	DimStyle = lipgloss.NewStyle().Foreground(Gray)
)

// Section represents a header with its corresponding rows.
type Section struct {
	Title   string
	Headers []string
	Rows    [][]string
}

// PrintKV prints a single styled "label: value" line.
func PrintKV(
	label string,
	value string,
) {
	fmt.Println(labelStyle.Render(label+":") + " " + valueStyle.Render(value))
}

// PrintStyledTable renders styled tables with dynamic column widths,
// constrained to the terminal width.
func PrintStyledTable(
	sections []Section,
) {
	re := lipgloss.NewRenderer(os.Stdout)

	termWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		termWidth = 120
	}

	for _, section := range sections {
		columnWidths := calculateColumnWidths(section.Headers, section.Rows, 1)

		totalWidth := 0
		for _, width := range columnWidths {
			totalWidth += width
		}
		totalWidth += len(columnWidths) * 3 // borders and spacing

		if totalWidth > termWidth-4 {
			scale := float64(termWidth-4) / float64(totalWidth)
			for i := range columnWidths {
				columnWidths[i] = int(float64(columnWidths[i]) * scale)
				if columnWidths[i] < 8 {
					columnWidths[i] = 8
				}
			}
		}

		var (
			headerStyle  = re.NewStyle().Foreground(White).Bold(true).Align(lipgloss.Center)
			cellStyle    = re.NewStyle().PaddingLeft(1)
			oddRowStyle  = cellStyle.Foreground(Gray)
			evenRowStyle = cellStyle.Foreground(LightGray)
			borderStyle  = re.NewStyle().Foreground(Purple)
			titleStyle   = re.NewStyle().Bold(true).Foreground(Purple).PaddingLeft(2).PaddingTop(1)
		)

		if section.Title != "" {
			fmt.Println(titleStyle.Render(section.Title) + ":")
		}

		t := table.New().
			Border(lipgloss.ThickBorder()).
			BorderStyle(borderStyle).
			StyleFunc(func(row, col int) lipgloss.Style {
				var style lipgloss.Style
				switch {
				case row == table.HeaderRow:
					style = headerStyle
				case row%2 == 0:
					style = evenRowStyle
				default:
					style = oddRowStyle
				}
				return style.Width(columnWidths[col])
			}).
			Headers(section.Headers...).
			Rows(section.Rows...)

		fmt.Println(t)
	}
}

// calculateColumnWidths returns the widest cell per column plus padding.
func calculateColumnWidths(
	headers []string,
	rows [][]string,
	padding int,
) []int {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h) + padding
	}

	for _, row := range rows {
		for i, cell := range row {
			if i >= len(widths) {
				continue
			}
			if len(cell)+padding > widths[i] {
				widths[i] = len(cell) + padding
			}
		}
	}

	return widths
}
