package llmclient

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStripCodeFences(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"bare json", `{"a":1}`, `{"a":1}`},
		{"fenced", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"fenced with language", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"uppercase language", "```JSON\n{\"a\":1}\n```", `{"a":1}`},
		{"surrounding whitespace", "  \n```json\n{\"a\":1}\n```\n ", `{"a":1}`},
		{"fence glued to payload", "```{\"a\":1}```", `{"a":1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, stripCodeFences(tt.in))
		})
	}
}

func TestParseJSON_Invalid(t *testing.T) {
	var out map[string]any

	err := parseJSON("not json at all", &out)
	assert.True(t, IsNoAnswer(err))

	err = parseJSON("", &out)
	assert.True(t, IsNoAnswer(err))
}

func TestFakeClient_UnscriptedPhaseFallsBack(t *testing.T) {
	fake := NewFakeClient()

	var out map[string]any
	err := fake.Call(context.Background(), PhasePlanner, "prompt", &out)
	assert.True(t, IsNoAnswer(err))
}

func TestFakeClient_ScriptedResponse(t *testing.T) {
	fake := NewFakeClient().Respond(PhaseIntent, "```json\n{\"intent\":\"negotiate_schedule\",\"risk_level\":\"low\"}\n```")

	var out struct {
		Intent    string `json:"intent"`
		RiskLevel string `json:"risk_level"`
	}
	err := fake.Call(context.Background(), PhaseIntent, "prompt", &out)
	require.NoError(t, err)
	assert.Equal(t, "negotiate_schedule", out.Intent)
	assert.Equal(t, "low", out.RiskLevel)
	assert.Equal(t, []Phase{PhaseIntent}, fake.Calls())
}

func TestErrDisabledIsNoAnswer(t *testing.T) {
	assert.True(t, errors.Is(ErrDisabled, ErrNoAnswer))
}
