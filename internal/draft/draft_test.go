package draft

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuild(t *testing.T) {
	t.Log("friendly draft for customer task")
	{
		d := Build(Params{Title: "Fix login", CustomerName: "Acme", Tone: ToneFriendly})
		require.Equal(t, "Update: Acme — Fix login", d.Subject, "subject must join customer and title")
		require.True(t, strings.HasPrefix(d.Body, "Hi there,\n\n"), "friendly body must start with friendly opener")
		require.True(t, strings.HasSuffix(d.Body, "Thanks!\n(your name)"), "friendly body must end with friendly closing")
		require.Contains(t, d.Body, "\nCustomer: Acme\n", "customer line must be rendered")
	}

	t.Log("subject without customer")
	{
		d := Build(Params{Title: "Fix login", Tone: ToneNeutral})
		require.Equal(t, "Update: Fix login", d.Subject, "subject must contain title only")
	}

	t.Log("full body line layout")
	{
		d := Build(Params{
			Title:        "Fix login",
			Description:  "SSO users are bounced",
			CustomerName: "Acme",
			TaskType:     "Bug",
			Tone:         ToneDirect,
		})

		expected := strings.Join([]string{
			"Hello,",
			"",
			"I wanted to share an update on: Fix login.",
			"Customer: Acme",
			"Task type: Bug",
			"",
			"Context:",
			"SSO users are bounced",
			"",
			"Next steps:",
			"- (fill in)",
			"",
			"Regards,",
			"(your name)",
		}, "\n")
		require.Equal(t, expected, d.Body, "body doesn't match template")
	}

	t.Log("optional lines are omitted entirely")
	{
		full := Build(Params{Title: "Fix login", Description: "ctx", CustomerName: "Acme", TaskType: "Bug"})
		bare := Build(Params{Title: "Fix login"})

		expected := strings.Join([]string{
			"Hello,",
			"",
			"I wanted to share an update on: Fix login.",
			"",
			"Next steps:",
			"- (fill in)",
			"",
			"Thanks,",
			"(your name)",
		}, "\n")
		require.Equal(t, expected, bare.Body, "bare body must not contain placeholders")

		fullLines := strings.Count(full.Body, "\n")
		bareLines := strings.Count(bare.Body, "\n")
		require.Equal(t, fullLines-5, bareLines, "customer, task type and 3 context lines must be dropped")
	}

	t.Log("identical input gives identical output")
	{
		p := Params{Title: "Fix login", CustomerName: "Acme", Tone: ToneFriendly}
		require.Equal(t, Build(p), Build(p), "draft must be deterministic")
	}
}

func TestParseTone(t *testing.T) {
	t.Log("empty tone defaults to neutral")
	{
		tone, err := ParseTone("")
		require.NoError(t, err)
		require.Equal(t, ToneNeutral, tone)
	}

	t.Log("known tones are accepted")
	{
		for _, raw := range []string{"neutral", "friendly", "direct"} {
			tone, err := ParseTone(raw)
			require.NoError(t, err, "tone %s must be accepted", raw)
			require.Equal(t, Tone(raw), tone)
		}
	}

	t.Log("unknown tone is rejected")
	{
		_, err := ParseTone("angry")
		require.Error(t, err, "unknown tone must be rejected")
	}
}
