// Package diag collects the diagnostics reported alongside every calculation
// result. Calculations never fail for predictable domain conditions; they return
// a neutral value together with Messages that the caller must inspect.
package diag

import (
	"fmt"
	"strings"
)

// Code identifies a diagnostic condition.
type Code int

// Diagnostic codes.
const (
	// CodeInvalidSourceVoltage reports a source voltage outside (0, 2000] V.
	CodeInvalidSourceVoltage Code = iota + 1
	// CodeInvalidPhases reports a phase count other than 1 or 3.
	CodeInvalidPhases
	// CodeInvalidSize reports an invalid size or one with no tabulated data.
	CodeInvalidSize
	// CodeInvalidSets reports a number of parallel sets outside [1, 10].
	CodeInvalidSets
	// CodeInvalidLength reports a non-positive one-way length.
	CodeInvalidLength
	// CodeInvalidCurrent reports a non-positive load current.
	CodeInvalidCurrent
	// CodeInvalidPowerFactor reports a power factor outside [0.7, 1].
	CodeInvalidPowerFactor
	// CodeInvalidMaxDrop reports a voltage-drop target outside (0, 25] %.
	CodeInvalidMaxDrop
	// CodeAmpacityExceeded reports a load current above the derated ampacity.
	CodeAmpacityExceeded
	// CodeParallelBelow1_0 reports parallel sets of conductors smaller than 1/0 AWG.
	CodeParallelBelow1_0
	// CodeNoLengthAchievesTarget reports that no positive length meets the target.
	CodeNoLengthAchievesTarget
	// CodeNoSizeAchievesTarget reports that no tabulated size meets the target.
	CodeNoSizeAchievesTarget
	// CodeSourceExhausted reports a drop that consumes the whole source voltage.
	CodeSourceExhausted
)

// String returns the code's stable identifier.
func (c Code) String() string {
	switch c {
	case CodeInvalidSourceVoltage:
		return "invalid_source_voltage"
	case CodeInvalidPhases:
		return "invalid_phases"
	case CodeInvalidSize:
		return "invalid_size"
	case CodeInvalidSets:
		return "invalid_sets"
	case CodeInvalidLength:
		return "invalid_length"
	case CodeInvalidCurrent:
		return "invalid_current"
	case CodeInvalidPowerFactor:
		return "invalid_power_factor"
	case CodeInvalidMaxDrop:
		return "invalid_max_drop"
	case CodeAmpacityExceeded:
		return "ampacity_exceeded"
	case CodeParallelBelow1_0:
		return "parallel_below_1_0"
	case CodeNoLengthAchievesTarget:
		return "no_length_achieves_target"
	case CodeNoSizeAchievesTarget:
		return "no_size_achieves_target"
	case CodeSourceExhausted:
		return "source_exhausted"
	default:
		return fmt.Sprintf("Code(%d)", int(c))
	}
}

// MarshalText encodes the code by its identifier.
func (c Code) MarshalText() ([]byte, error) { return []byte(c.String()), nil }

// Severity distinguishes failures from non-fatal advisories.
type Severity int

const (
	// Error means the accompanying value is the neutral value and must not be used.
	Error Severity = iota
	// Warning means the accompanying value is valid but breaks a code rule or
	// deserves review.
	Warning
)

// String returns "error" or "warning".
func (s Severity) String() string {
	if s == Warning {
		return "warning"
	}
	return "error"
}

// MarshalText encodes the severity name.
func (s Severity) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// Message is one diagnostic entry.
type Message struct {
	// Code identifies the condition.
	Code Code `json:"code"`

	// Severity tells whether the accompanying result is usable.
	Severity Severity `json:"severity"`

	// Text is a human-readable description.
	Text string `json:"text"`
}

// Error implements the error interface so an error-level message can be
// returned or wrapped directly.
func (m Message) Error() string {
	return m.Code.String() + ": " + m.Text
}

// Messages is an ordered collection of diagnostics. The zero value is empty and
// ready to use.
type Messages struct {
	Items []Message `json:"messages"`
}

// Errorf appends an error-level message.
func (m *Messages) Errorf(code Code, format string, args ...any) {
	m.Items = append(m.Items, Message{Code: code, Severity: Error, Text: fmt.Sprintf(format, args...)})
}

// Warnf appends a warning-level message.
func (m *Messages) Warnf(code Code, format string, args ...any) {
	m.Items = append(m.Items, Message{Code: code, Severity: Warning, Text: fmt.Sprintf(format, args...)})
}

// Merge appends every message of other.
func (m *Messages) Merge(other Messages) {
	m.Items = append(m.Items, other.Items...)
}

// Len returns the number of messages.
func (m Messages) Len() int { return len(m.Items) }

// Has reports whether any message carries code.
func (m Messages) Has(code Code) bool {
	for _, item := range m.Items {
		if item.Code == code {
			return true
		}
	}
	return false
}

// HasErrors reports whether any message is an error.
func (m Messages) HasErrors() bool {
	return len(m.Errors()) > 0
}

// HasWarnings reports whether any message is a warning.
func (m Messages) HasWarnings() bool {
	return len(m.Warnings()) > 0
}

// Errors returns the error-level messages.
func (m Messages) Errors() []Message {
	return m.filter(Error)
}

// Warnings returns the warning-level messages.
func (m Messages) Warnings() []Message {
	return m.filter(Warning)
}

func (m Messages) filter(s Severity) []Message {
	var out []Message
	for _, item := range m.Items {
		if item.Severity == s {
			out = append(out, item)
		}
	}
	return out
}

// Err returns the first error-level message as an error, or nil.
func (m Messages) Err() error {
	for _, item := range m.Items {
		if item.Severity == Error {
			return item
		}
	}
	return nil
}

// String joins all messages, one per line.
func (m Messages) String() string {
	lines := make([]string, 0, len(m.Items))
	for _, item := range m.Items {
		lines = append(lines, item.Severity.String()+": "+item.Error())
	}
	return strings.Join(lines, "\n")
}
