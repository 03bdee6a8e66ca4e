package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qepting91/linkpulse/internal/report"
)

// runCLI executes the root command in-process and captures its output.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()

	buf := new(bytes.Buffer)
	root := newRootCmd()
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)

	err := root.Execute()
	return buf.String(), err
}

func useMockCollector(t *testing.T) {
	t.Helper()
	t.Setenv("COLLECTOR_MODE", "mock")
}

func TestVersion(t *testing.T) {
	out, err := runCLI(t, "--version")
	require.NoError(t, err)
	assert.Contains(t, out, "linkpulse version")
}

func TestHelpListsCommands(t *testing.T) {
	out, err := runCLI(t, "--help")
	require.NoError(t, err)
	assert.Contains(t, out, "analyze")
	assert.Contains(t, out, "compare")
	assert.Contains(t, out, "serve")
}

func TestAnalyzeRequiresProfileURL(t *testing.T) {
	_, err := runCLI(t, "analyze")
	require.Error(t, err)
}

func TestAnalyzeRejectsUnknownMetric(t *testing.T) {
	useMockCollector(t)
	_, err := runCLI(t, "analyze", "--by", "impressions", "https://www.linkedin.com/in/someone")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown metric")
}

func TestAnalyzeWithMockCollector(t *testing.T) {
	useMockCollector(t)

	out, err := runCLI(t, "analyze", "--no-color", "https://www.linkedin.com/in/jane-doe")
	require.NoError(t, err)

	assert.Contains(t, out, "Profile: https://www.linkedin.com/in/jane-doe")
	assert.Contains(t, out, "Engagement Totals")
	assert.Contains(t, out, "Posts by likes")
	assert.Contains(t, out, "Summary Insights")
	assert.Contains(t, out, "Most Engaging Post")
}

func TestAnalyzeJSON(t *testing.T) {
	useMockCollector(t)

	out, err := runCLI(t, "analyze", "--json", "https://www.linkedin.com/in/jane-doe")
	require.NoError(t, err)

	var env report.Envelope
	require.NoError(t, json.Unmarshal([]byte(out), &env))

	assert.LessOrEqual(t, env.PostCount, 10)
	assert.Positive(t, env.PostCount)
	assert.Len(t, env.RankedPosts, env.PostCount)
	assert.Len(t, env.Insights, 6)
	assert.GreaterOrEqual(t, env.TotalEngagement, env.TotalImpressions)
	assert.GreaterOrEqual(t, env.TotalImpressions, env.TotalLikes)
}

func TestCompareWithMockCollector(t *testing.T) {
	useMockCollector(t)

	csvPath := filepath.Join(t.TempDir(), "competitors.csv")
	content := "label,profile_url\n" +
		"Us,https://www.linkedin.com/in/us\n" +
		"Acme,https://www.linkedin.com/company/acme\n"
	require.NoError(t, os.WriteFile(csvPath, []byte(content), 0644))

	out, err := runCLI(t, "compare", "--no-color", "--file", csvPath)
	require.NoError(t, err)

	assert.Contains(t, out, "Competitor Comparison")
	assert.Contains(t, out, "Us")
	assert.Contains(t, out, "Acme")
}

func TestCompareClampsWorkerCount(t *testing.T) {
	useMockCollector(t)

	csvPath := filepath.Join(t.TempDir(), "competitors.csv")
	require.NoError(t, os.WriteFile(csvPath, []byte("label,profile_url\nUs,https://www.linkedin.com/in/us\n"), 0644))

	out, err := runCLI(t, "compare", "--no-color", "--workers", "0", "--file", csvPath)
	require.NoError(t, err)
	assert.Contains(t, out, "Us")
}

func TestCompareJSON(t *testing.T) {
	useMockCollector(t)

	csvPath := filepath.Join(t.TempDir(), "competitors.csv")
	require.NoError(t, os.WriteFile(csvPath, []byte("label,profile_url\nUs,https://www.linkedin.com/in/us\n"), 0644))

	out, err := runCLI(t, "compare", "--json", "--file", csvPath)
	require.NoError(t, err)

	var rows []report.Comparison
	require.NoError(t, json.Unmarshal([]byte(out), &rows))
	require.Len(t, rows, 1)
	assert.Equal(t, "Us", rows[0].Label)
	assert.Equal(t, "https://www.linkedin.com/in/us", rows[0].ProfileURL)
	assert.LessOrEqual(t, rows[0].PostCount, 10)
}

func TestCompareMissingFile(t *testing.T) {
	useMockCollector(t)
	_, err := runCLI(t, "compare", "--file", filepath.Join(t.TempDir(), "absent.csv"))
	require.Error(t, err)
}
