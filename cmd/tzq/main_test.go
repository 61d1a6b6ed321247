package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCommand(t *testing.T, args ...string) jsonOutput {
	t.Helper()

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--json"}, args...))
	require.NoError(t, cmd.Execute())

	var payload jsonOutput
	require.NoError(t, json.Unmarshal(out.Bytes(), &payload), "output: %s", out.String())
	return payload
}

func zoneSet(payload jsonOutput) map[string]bool {
	zones := make(map[string]bool)
	for _, result := range payload.Results {
		zones[result.ZoneID] = true
	}
	return zones
}

func TestRunQueryWithTarget(t *testing.T) {
	payload := runCommand(t, "7pm", "PST", "to", "CET")

	assert.Equal(t, 19, payload.Parsed.Hour)
	assert.Equal(t, "America/Los_Angeles", payload.Parsed.SourceZone)
	assert.Equal(t, "Europe/Berlin", payload.Parsed.TargetZone)
	assert.True(t, zoneSet(payload)["Europe/Berlin"])
	require.NotEmpty(t, payload.Results)
}

func TestRunParseErrorExitsNonZero(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"25:00", "CET"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, "hour must be 0-23", err.Error())
}

func TestFavoritesFromFlag(t *testing.T) {
	payload := runCommand(t, "--favorites", "Tokyo, new york", "12:00", "CET")

	zones := zoneSet(payload)
	assert.True(t, zones["Asia/Tokyo"])
	assert.True(t, zones["America/New_York"])
}

func TestFavoritesFromEnvironment(t *testing.T) {
	t.Setenv("TZQ_FAVORITES", "Tokyo")

	payload := runCommand(t, "12:00", "CET")
	assert.True(t, zoneSet(payload)["Asia/Tokyo"])
}

func TestFavoritesFlagOverridesEnvironment(t *testing.T) {
	t.Setenv("TZQ_FAVORITES", "Tokyo")

	payload := runCommand(t, "--favorites", "new york", "12:00", "CET")
	zones := zoneSet(payload)
	assert.True(t, zones["America/New_York"])
	assert.False(t, zones["Asia/Tokyo"])
}

func TestTwelveHourFlag(t *testing.T) {
	payload := runCommand(t, "--12h", "19:05", "CET", "to", "CET")

	for _, result := range payload.Results {
		if result.ZoneID == "Europe/Berlin" {
			assert.Equal(t, "7:05 PM", result.FormattedTime)
		}
	}
}

func TestFormatDayOffset(t *testing.T) {
	assert.Equal(t, "", formatDayOffset(0))
	assert.Equal(t, "+1", formatDayOffset(1))
	assert.Equal(t, "-1", formatDayOffset(-1))
	assert.Equal(t, "+2", formatDayOffset(2))
}

func TestRenderTableOutput(t *testing.T) {
	payload := runCommand(t, "9am", "tokyo")

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"9am", "tokyo"})
	require.NoError(t, cmd.Execute())

	// Tabular output mentions every zone the JSON output does.
	for zone := range zoneSet(payload) {
		assert.Contains(t, out.String(), zone)
	}
}
