package printers

import "github.com/charmbracelet/lipgloss"

const (
	foreground = "#FCFCFA"
	red        = "#FF6188"
	orange     = "#FC9867"
	yellow     = "#FFD866"
	green      = "#A9DC76"
	cyan       = "#78DCE8"
	blue       = "#AB9DF2"
	comment    = "#727072"
)

var (
	titleStyle       = lipgloss.NewStyle().Bold(true).Underline(true).Foreground(lipgloss.Color(red))
	headingStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(yellow))
	metaStyle        = lipgloss.NewStyle().Faint(true).Foreground(lipgloss.Color(comment))
	emphasisStyle    = lipgloss.NewStyle().Italic(true)
	strongStyle      = lipgloss.NewStyle().Bold(true)
	strikeStyle      = lipgloss.NewStyle().Strikethrough(true)
	codeStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color(cyan))
	linkStyle        = lipgloss.NewStyle().Underline(true).Foreground(lipgloss.Color(blue))
	openTaskStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color(orange))
	doneTaskStyle    = lipgloss.NewStyle().Faint(true).Foreground(lipgloss.Color(green))
	bulletStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color(comment))
	quoteStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color(comment))
	codeBlockStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color(foreground))
	codeLanguageLine = lipgloss.NewStyle().Faint(true).Italic(true)
)
