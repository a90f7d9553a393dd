package ui

import "github.com/charmbracelet/lipgloss"

// This file centralizes the lipgloss styles used for console output.

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("63")) // Purple-ish

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("46")) // Green

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")). // Red
			Bold(true)

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")) // Light Gray
)

func Header(s string) string { return headerStyle.Render(s) }

func Success(s string) string { return successStyle.Render(s) }

func Error(s string) string { return errorStyle.Render(s) }

func Info(s string) string { return infoStyle.Render(s) }
