// Package draft renders plain-text status update emails for tasks.
package draft

import (
	"fmt"
	"strings"
)

// Tone selects fixed phrases of the generated email
type Tone string

const (
	ToneNeutral  Tone = "neutral"
	ToneFriendly Tone = "friendly"
	ToneDirect   Tone = "direct"
)

// ParseTone converts raw tone, empty value means neutral
func ParseTone(raw string) (Tone, error) {
	switch t := Tone(raw); t {
	case "":
		return ToneNeutral, nil
	case ToneNeutral, ToneFriendly, ToneDirect:
		return t, nil
	default:
		return "", fmt.Errorf("unknown tone %q", raw)
	}
}

// Params is email draft input. Empty optional values are treated as absent.
type Params struct {
	Title        string
	Description  string
	CustomerName string
	TaskType     string
	Tone         Tone
}

// Draft is generated email text
type Draft struct {
	Subject string
	Body    string
}

// Build renders draft. Output depends on params only.
func Build(p Params) Draft {
	subjectParts := make([]string, 0, 2)
	if p.CustomerName != "" {
		subjectParts = append(subjectParts, p.CustomerName)
	}
	subjectParts = append(subjectParts, p.Title)

	lines := []string{
		opener(p.Tone),
		"",
		fmt.Sprintf("I wanted to share an update on: %s.", p.Title),
	}

	if p.CustomerName != "" {
		lines = append(lines, "Customer: "+p.CustomerName)
	}

	if p.TaskType != "" {
		lines = append(lines, "Task type: "+p.TaskType)
	}

	if p.Description != "" {
		lines = append(lines, "", "Context:", p.Description)
	}

	lines = append(lines,
		"",
		"Next steps:",
		"- (fill in)",
		"",
		closing(p.Tone),
		"(your name)",
	)

	return Draft{
		Subject: "Update: " + strings.Join(subjectParts, " — "),
		Body:    strings.Join(lines, "\n"),
	}
}

func opener(t Tone) string {
	if t == ToneFriendly {
		return "Hi there,"
	}
	return "Hello,"
}

func closing(t Tone) string {
	switch t {
	case ToneFriendly:
		return "Thanks!"
	case ToneDirect:
		return "Regards,"
	default:
		return "Thanks,"
	}
}

// Deref returns value behind optional string or empty string
func Deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
