// Package render turns solver outcomes into the cards shown to the user.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/use-agent/brainhint/solver"
)

// Message is the plain content of a card before styling.
type Message struct {
	Title  string
	Lines  []string
	Detail string // raw underlying message, failures only
}

// Describe returns the title, body and diagnostic detail for o.
func Describe(o solver.Outcome) Message {
	switch o.Kind {
	case solver.KindFound:
		return Message{
			Title: fmt.Sprintf("Brain Test Level %s", o.Level),
			Lines: []string{"Answer: " + o.Answer},
		}
	case solver.KindNotFound:
		return Message{
			Title: "Solution Not Found",
			Lines: []string{
				fmt.Sprintf("Could not find the solution for Brain Test level %s.", o.Level),
				"Please verify the level number is correct.",
			},
		}
	}

	m := Message{Detail: o.Detail}
	switch o.Category {
	case solver.CategoryConnection:
		m.Title = "Connection Error"
		m.Lines = []string{"Unable to connect to the server. Make sure the relay server is running."}
	case solver.CategoryNotFound:
		m.Title = "Level Not Found"
		m.Lines = []string{fmt.Sprintf("Brain Test level %s was not found. Please check the level number.", o.Level)}
	case solver.CategoryServerError:
		m.Title = "Server Error"
		m.Lines = []string{"The server encountered an error while fetching the solution. Please try again."}
	default:
		m.Title = "Error"
		m.Lines = []string{fmt.Sprintf("Failed to fetch solution for level %s. Please try again.", o.Level)}
	}
	return m
}

// Card renders o as a bordered, titled block.
func Card(o solver.Outcome) string {
	m := Describe(o)

	var b strings.Builder
	b.WriteString(titleStyle.Render(m.Title))
	for _, line := range m.Lines {
		b.WriteString("\n")
		b.WriteString(line)
	}
	if m.Detail != "" {
		b.WriteString("\n")
		b.WriteString(mutedStyle.Render("Error details: " + m.Detail))
	}

	return styleFor(o).Render(b.String())
}

// Plain renders o without colors or borders, for logs and tool output.
func Plain(o solver.Outcome) string {
	m := Describe(o)
	lines := append([]string{m.Title}, m.Lines...)
	if m.Detail != "" {
		lines = append(lines, "Error details: "+m.Detail)
	}
	return strings.Join(lines, "\n")
}

func styleFor(o solver.Outcome) lipgloss.Style {
	switch o.Kind {
	case solver.KindFound:
		return answerCardStyle
	case solver.KindNotFound:
		return warningCardStyle
	default:
		return errorCardStyle
	}
}
