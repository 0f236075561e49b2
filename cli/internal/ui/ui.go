// Package ui provides terminal output helpers for the CLI.
package ui

import (
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/pterm/pterm"
)

var (
	// Colors
	PrimaryColor   = lipgloss.Color("#00A8CC")
	SuccessColor   = lipgloss.Color("#00CC66")
	WarningColor   = lipgloss.Color("#FFB800")
	ErrorColor     = lipgloss.Color("#FF4444")
	SecondaryColor = lipgloss.Color("#6C757D")

	// Styles
	TitleStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor).
			Bold(true)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(SuccessColor).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)

	WarningStyle = lipgloss.NewStyle().
			Foreground(WarningColor).
			Bold(true)

	InfoStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor)

	SecondaryStyle = lipgloss.NewStyle().
			Foreground(SecondaryColor)

	labelStyle = lipgloss.NewStyle().
			Foreground(SecondaryColor).
			Width(18)
)

// PrintHeader prints a bordered header with a title and subtitle.
func PrintHeader(title string, subtitle string) {
	header := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(PrimaryColor).
		Padding(0, 2).
		Render(
			lipgloss.JoinVertical(
				lipgloss.Left,
				TitleStyle.Render(title),
				SecondaryStyle.Render(subtitle),
			),
		)

	fmt.Println(header)
	fmt.Println()
}

// PrintSuccess prints a success message.
func PrintSuccess(format string, args ...interface{}) {
	fmt.Println(SuccessStyle.Render("✓ " + fmt.Sprintf(format, args...)))
}

// PrintError prints an error message to stderr.
func PrintError(format string, args ...interface{}) {
	fmt.Fprintln(os.Stderr, ErrorStyle.Render("✗ "+fmt.Sprintf(format, args...)))
}

// PrintWarning prints a warning message.
func PrintWarning(format string, args ...interface{}) {
	fmt.Println(WarningStyle.Render("⚠ " + fmt.Sprintf(format, args...)))
}

// PrintInfo prints an info message.
func PrintInfo(format string, args ...interface{}) {
	fmt.Println(InfoStyle.Render("ℹ " + fmt.Sprintf(format, args...)))
}

// PrintSection prints an underlined section header.
func PrintSection(title string) {
	section := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(SecondaryColor).
		Render(TitleStyle.Render(title))
	fmt.Println(section)
}

// PrintList prints a bulleted list.
func PrintList(items []string) {
	for _, item := range items {
		fmt.Printf("  • %s\n", item)
	}
}

// PrintKeyValues prints aligned label/value pairs.
func PrintKeyValues(pairs [][2]string) {
	for _, pair := range pairs {
		fmt.Printf("%s %s\n", labelStyle.Render(pair[0]), pair[1])
	}
}

// PrintTable prints a table with a header row using pterm.
func PrintTable(headers []string, rows [][]string) {
	tableData := pterm.TableData{headers}
	tableData = append(tableData, rows...)
	pterm.DefaultTable.WithHasHeader().WithData(tableData).Render()
}

// PrintMarkdown renders markdown to the terminal.
func PrintMarkdown(content string) error {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return err
	}

	out, err := r.Render(content)
	if err != nil {
		return err
	}

	fmt.Print(out)
	return nil
}

// PrintCodeBlock prints code in a bordered block with an optional
// language tag.
func PrintCodeBlock(code string, language string) {
	if language != "" {
		fmt.Println(SecondaryStyle.Render(" " + language + " "))
	}
	block := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(SecondaryColor).
		Padding(0, 1).
		Render(code)
	fmt.Println(block)
}

// Spinner starts a spinner with the given message.
func Spinner(message string) (*pterm.SpinnerPrinter, error) {
	return pterm.DefaultSpinner.WithText(message).Start()
}
