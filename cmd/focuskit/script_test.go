package main

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/focuskit/internal/dom"
)

func TestScriptDefaultSequence(t *testing.T) {
	t.Parallel()

	out, _, err := executeCommand(newRootCmd(newTestApp()), "script")
	require.NoError(t, err)

	assert.Contains(t, out, "tab        focus=file-notes.txt\n")
	assert.Contains(t, out, "enter      focus=cancel dialogs=1\n")
	assert.Contains(t, out, "announce assertive: Deleted todo.md")
	assert.Contains(t, out, "announce polite: Colour orange selected")
}

func TestScriptJSON(t *testing.T) {
	t.Parallel()

	out, _, err := executeCommand(newRootCmd(newTestApp()), "script", "--json")
	require.NoError(t, err)

	var steps []scriptStep
	require.NoError(t, json.Unmarshal([]byte(out), &steps))
	require.Len(t, steps, len(defaultScript))

	assert.Equal(t, scriptStep{Key: "enter", Focus: "cancel", Dialogs: 1, Prevented: true}, steps[2])
	assert.Equal(t, "file-draft.go", steps[5].Focus)
	assert.Equal(t, []string{"assertive: Deleted todo.md"}, steps[5].Announced)
	assert.Equal(t, "colour-orange", steps[7].Focus)
	assert.Equal(t, []string{"polite: Colour orange selected"}, steps[8].Announced)
}

func TestScriptCustomKeys(t *testing.T) {
	t.Parallel()

	out, _, err := executeCommand(newRootCmd(newTestApp()), "script", "--json", "Tab", "Enter", "Escape")
	require.NoError(t, err)

	var steps []scriptStep
	require.NoError(t, json.Unmarshal([]byte(out), &steps))
	require.Len(t, steps, 3)
	assert.Equal(t, "esc", steps[2].Key)
	assert.Equal(t, "file-notes.txt", steps[2].Focus)
	assert.Zero(t, steps[2].Dialogs)
	assert.Equal(t, []string{"polite: Deletion cancelled"}, steps[2].Announced)
}

func TestScriptFollowsConfiguredOrientation(t *testing.T) {
	t.Parallel()

	path := writeConfigFile(t, "horizontal.yaml", "version: \"1.0\"\nnavigation:\n  orientation: horizontal\n  loop: false\n")
	out, _, err := executeCommand(newRootCmd(newTestApp()), "--config", path, "script", "--json", "tab", "down", "right", "left", "left")
	require.NoError(t, err)

	var steps []scriptStep
	require.NoError(t, json.Unmarshal([]byte(out), &steps))
	require.Len(t, steps, 5)
	assert.Equal(t, "file-notes.txt", steps[1].Focus, "down is not bound in a horizontal list")
	assert.False(t, steps[1].Prevented)
	assert.Equal(t, "file-todo.md", steps[2].Focus)
	assert.Equal(t, "file-notes.txt", steps[4].Focus, "no wrapping without loop")
}

func TestNormalizeKey(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"space":     dom.KeySpace,
		"Escape":    dom.KeyEscape,
		"return":    dom.KeyEnter,
		"backtab":   dom.KeyShiftTab,
		"shift-tab": dom.KeyShiftTab,
		" DOWN ":    dom.KeyDown,
		" ":         " ",
	}
	for in, want := range cases {
		assert.Equal(t, want, normalizeKey(in), "%q", in)
	}
}
