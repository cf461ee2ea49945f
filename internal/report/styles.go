package report

import (
	"time"

	"github.com/charmbracelet/lipgloss"
)

// Terminal colors.
const (
	headingColor = lipgloss.Color("39")
	warningColor = lipgloss.Color("214")
	errorColor   = lipgloss.Color("196")
)

// durationRound is the resolution of run durations in batch summaries.
const durationRound = time.Millisecond
