package main

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	require.NoError(t, rootCmd.Execute())
	return strings.TrimSpace(out.String())
}

func TestAddClampsMonthEnd(t *testing.T) {
	got := runCLI(t, "add", "--date", "2024-01-31", "--years", "1", "--months", "1")
	assert.Equal(t, "2025-02-28", got)
}

func TestDiffMonthEnd(t *testing.T) {
	got := runCLI(t, "diff", "--start", "2024-01-31", "--end", "2024-03-01")
	assert.Contains(t, got, "1M")
	assert.Contains(t, got, "1D")
}

func TestConvertUtcToFixedOffset(t *testing.T) {
	got := runCLI(t, "convert",
		"--datetime", "2024-07-29T12:00:00",
		"--from", "UTC",
		"--to", "UTC",
	)
	assert.Equal(t, "2024-07-29T12:00:00Z", got)
}

func TestZoneReportsUtcOffset(t *testing.T) {
	got := runCLI(t, "zone", "--zone", "UTC", "--at", "2024-07-29T12:00:00Z")
	assert.Contains(t, got, "name:            UTC")
	assert.Contains(t, got, "start:           (unbounded)")
}

func TestNowProducesParsableOutput(t *testing.T) {
	got := runCLI(t, "now", "--zone", "UTC")
	_, err := time.Parse("2006-01-02T15:04:05Z07:00", got)
	require.NoError(t, err)
}
