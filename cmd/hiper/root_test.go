package hiper

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mroximut/hiper/pkg/commands/install"
	"github.com/mroximut/hiper/pkg/commands/postfokus"
	"github.com/mroximut/hiper/pkg/commands/prefokus"
	"github.com/mroximut/hiper/pkg/paths"
	"github.com/mroximut/hiper/pkg/storage"
	"github.com/mroximut/hiper/pkg/testutil"
)

func TestNewRootCmd_RegistersAllCommands(t *testing.T) {
	rootCmd := NewRootCmd()

	want := []string{
		"fokus", "postfokus", "prefokus", "finish",
		"log", "read", "set", "backup", "install",
	}
	registered := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		registered[c.Name()] = true
	}
	for _, name := range want {
		assert.True(t, registered[name], "command %s not registered", name)
	}
}

func TestRootCmd_HelpWithoutArgs(t *testing.T) {
	rootCmd := NewRootCmd()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs([]string{})

	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, out.String(), "hiper")
	assert.Contains(t, out.String(), "fokus")
}

func TestRootCmd_UsageTemplateSections(t *testing.T) {
	rootCmd := NewRootCmd()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs([]string{"--help"})

	require.NoError(t, rootCmd.Execute())

	// Section headers come from the usage template via boldUpper.
	text := out.String()
	assert.Contains(t, text, "USAGE:")
	assert.Contains(t, text, "COMMANDS:")
	assert.Contains(t, text, "FLAGS:")
	assert.Contains(t, text, `Use "hiper [command] --help"`)
}

func TestPostfokusCmd_RecordsAndReports(t *testing.T) {
	dataDir := t.TempDir()
	t.Setenv(paths.EnvDataDir, dataDir)

	rootCmd := NewRootCmd()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"postfokus", "--duration", "25m", "--title", "writing"})
	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, out.String(), "Saved session: 25m00s")

	sessions, err := storage.LoadSessions(dataDir)
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	assert.Equal(t, "writing", sessions[0].Title)

	out.Reset()
	statsCmd := NewRootCmd()
	statsCmd.SetOut(&out)
	statsCmd.SetArgs([]string{"postfokus"})
	require.NoError(t, statsCmd.Execute())
	assert.Contains(t, out.String(), "sessions: 1")
	assert.Contains(t, out.String(), "total: 25m00s")
}

func TestLogCmd_AppendAndList(t *testing.T) {
	dataDir := t.TempDir()
	t.Setenv(paths.EnvDataDir, dataDir)

	appendCmd := NewRootCmd()
	var out bytes.Buffer
	appendCmd.SetOut(&out)
	appendCmd.SetArgs([]string{"log", "reviewed", "chapter", "3"})
	require.NoError(t, appendCmd.Execute())
	assert.Contains(t, out.String(), "Logged 'reviewed chapter 3'")

	out.Reset()
	listCmd := NewRootCmd()
	listCmd.SetOut(&out)
	listCmd.SetArgs([]string{"log", "--last", "5m"})
	require.NoError(t, listCmd.Execute())
	assert.Contains(t, out.String(), "reviewed chapter 3")
}

func TestInstallCmd_EndToEnd(t *testing.T) {
	repoRoot := t.TempDir()
	testutil.WriteFile(t, repoRoot, filepath.Join("bin", "hiper"), "binary")
	rcFile := filepath.Join(t.TempDir(), ".bashrc")

	rootCmd := NewRootCmd()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"install", "--repo-root", repoRoot, "--rc-file", rcFile})
	require.NoError(t, rootCmd.Execute())

	assert.Contains(t, out.String(), "Made "+filepath.Join(repoRoot, "bin", "hiper")+" executable")
	assert.Contains(t, out.String(), "Added "+filepath.Join(repoRoot, "bin"))
	assert.Contains(t, testutil.ReadFile(t, rcFile), install.ExportLine(filepath.Join(repoRoot, "bin")))

	// Second run reports the entry as already present.
	out.Reset()
	again := NewRootCmd()
	again.SetOut(&out)
	again.SetArgs([]string{"install", "--repo-root", repoRoot, "--rc-file", rcFile})
	require.NoError(t, again.Execute())
	assert.Contains(t, out.String(), "already present")
}

func TestPrintStats(t *testing.T) {
	var out bytes.Buffer
	printStats(&out, &postfokus.Stats{
		Title:        "writing",
		Sessions:     2,
		TotalSeconds: 3000,
		AvgSeconds:   1500,
		TodaySeconds: 1500,
	})

	text := out.String()
	assert.Contains(t, text, "Statistics for writing")
	assert.Contains(t, text, "sessions: 2")
	assert.Contains(t, text, "total: 50m00s")
	assert.Contains(t, text, "avg: 25m00s")
}

func TestPrintStats_Empty(t *testing.T) {
	var out bytes.Buffer
	printStats(&out, &postfokus.Stats{})
	assert.Equal(t, "Statistics\nsessions: 0\n", out.String())
}

func TestPrintGoalDetails(t *testing.T) {
	var out bytes.Buffer
	printGoalDetails(&out, prefokus.GoalSummary{
		Goal: storage.Goal{
			Title:             "thesis",
			EstimateSeconds:   16 * 3600,
			EstimateTimestamp: testutil.MustParseTime(t, "2025-03-12T09:00:00Z"),
			Deadline:          testutil.MustParseTime(t, "2025-03-20T00:00:00Z"),
			StartBy:           testutil.MustParseTime(t, "2025-03-18T00:00:00Z"),
		},
		TotalWorkedSeconds:  7200,
		WorkedSinceEstimate: 3600,
	})

	text := out.String()
	assert.Contains(t, text, "Goal: thesis")
	assert.Contains(t, text, "Total time worked: 02h00m00s")
	assert.Contains(t, text, "Estimate: 16h00m00s")
	assert.Contains(t, text, "Remaining: 15h00m00s")
	assert.Contains(t, text, "Deadline: 2025-03-20")
	assert.Contains(t, text, "Start by: 2025-03-18 morning")
}

func TestPrintGoalDetails_NoEstimate(t *testing.T) {
	var out bytes.Buffer
	printGoalDetails(&out, prefokus.GoalSummary{Goal: storage.Goal{Title: "someday"}})

	text := out.String()
	assert.Contains(t, text, "Estimate: (not set)")
	assert.NotContains(t, text, "Remaining")
}

func TestRenderProgressBar(t *testing.T) {
	tests := []struct {
		percent float64
		filled  int
	}{
		{0, 0},
		{50, 5},
		{100, 10},
		{150, 10},
	}

	for _, tt := range tests {
		bar := renderProgressBar(tt.percent, 10)
		assert.Equal(t, tt.filled, strings.Count(bar, "█"), "percent %v", tt.percent)
		assert.Equal(t, 10-tt.filled, strings.Count(bar, "░"), "percent %v", tt.percent)
	}
}

func TestAskYesNo(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"y\n", true},
		{"yes\n", true},
		{"  Y \n", true},
		{"n\n", false},
		{"\n", false},
		{"", false},
		{"what\ny\n", true},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, askYesNo(strings.NewReader(tt.input)), "input %q", tt.input)
	}
}
