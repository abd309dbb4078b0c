package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/headliner/internal/export"
	"github.com/alexisbeaulieu97/headliner/internal/settings"
)

// execute runs the root command against dataDir and returns stdout, stderr.
func execute(t *testing.T, dataDir string, args ...string) (string, string, error) {
	t.Helper()

	root := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetIn(&bytes.Buffer{})
	root.SetArgs(append([]string{"--data-dir", dataDir}, args...))

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func mustExecute(t *testing.T, dataDir string, args ...string) string {
	t.Helper()

	stdout, stderr, err := execute(t, dataDir, args...)
	require.NoError(t, err, "stderr: %s", stderr)
	return stdout
}

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestVersionCommandOutputsBuildInfo(t *testing.T) {
	originalVersion := version
	originalCommit := commit
	originalDate := date
	t.Cleanup(func() {
		version = originalVersion
		commit = originalCommit
		date = originalDate
	})

	version = "1.2.3"
	commit = "abcdef1"
	date = "2026-10-03"

	output := mustExecute(t, t.TempDir(), "version")
	require.Contains(t, output, "1.2.3")
	require.Contains(t, output, "abcdef1")
	require.Contains(t, output, "2026-10-03")
}

func TestResolveDataDir(t *testing.T) {
	t.Setenv(dataDirEnv, "")

	flagDir := t.TempDir()
	got, err := resolveDataDir(&rootFlags{dataDir: flagDir})
	require.NoError(t, err)
	assert.Equal(t, flagDir, got)

	envDir := t.TempDir()
	t.Setenv(dataDirEnv, envDir)
	got, err = resolveDataDir(&rootFlags{})
	require.NoError(t, err)
	assert.Equal(t, envDir, got)

	t.Setenv(dataDirEnv, "")
	got, err = resolveDataDir(&rootFlags{})
	require.NoError(t, err)
	assert.Equal(t, dataDirName, filepath.Base(got))
}

func TestExportCommand_DefaultCSS(t *testing.T) {
	stdout := mustExecute(t, t.TempDir(), "export")

	assert.Equal(t, export.CSS(settings.Default())+"\n", stdout)
}

func TestExportCommand_AllFormatsToDirectory(t *testing.T) {
	out := t.TempDir()
	stdout := mustExecute(t, t.TempDir(), "export", "--format", "all", "--out", out, "--check")

	for _, f := range export.Formats {
		path := filepath.Join(out, f.Filename())
		assert.FileExists(t, path)
		assert.Contains(t, stdout, path)
	}
}

func TestExportCommand_PrintsAllWithHeaders(t *testing.T) {
	stdout := mustExecute(t, t.TempDir(), "export", "--format", "all")

	assert.Contains(t, stdout, "== JSON Settings (headline-json.json) ==")
	assert.Contains(t, stdout, "== React Component (headline-react.tsx) ==")
	assert.Contains(t, stdout, "export default Headline;")
}

func TestExportCommand_FromYAMLConfig(t *testing.T) {
	cfg := writeConfig(t, "headline.yaml", "text: From YAML\nfontSize: 72\n")

	stdout := mustExecute(t, t.TempDir(), "export", "--config", cfg, "--format", "html")

	assert.Contains(t, stdout, `<h1 class="headline">From YAML</h1>`)
	assert.Contains(t, stdout, "font-size: 72px;")
}

func TestExportCommand_UnknownFormat(t *testing.T) {
	_, _, err := execute(t, t.TempDir(), "export", "--format", "svg")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "Failed to export: selecting format")
	assert.Contains(t, err.Error(), "Suggestion:")
}

func TestExportCommand_InvalidConfig(t *testing.T) {
	cfg := writeConfig(t, "bad.json", `{"fontSize": -4}`)

	_, _, err := execute(t, t.TempDir(), "export", "--config", cfg)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "validating headline configuration")
}

func TestSetCommand_UpdatesLiveHeadline(t *testing.T) {
	dir := t.TempDir()

	stdout := mustExecute(t, dir, "set", "text=Launch Day", "fontSize=64", "gradientEnabled=true")
	assert.Contains(t, stdout, "✓ Set text")
	assert.Contains(t, stdout, "✓ Set fontSize")

	doc := mustExecute(t, dir, "export", "--format", "json")
	cfg, err := export.ParseJSON(doc)
	require.NoError(t, err)
	assert.Equal(t, "Launch Day", cfg.Text)
	assert.Equal(t, 64.0, cfg.FontSize)
	assert.True(t, cfg.GradientEnabled)
}

func TestSetCommand_RejectsInvalidValueAtomically(t *testing.T) {
	dir := t.TempDir()

	_, _, err := execute(t, dir, "set", "text=Changed", "fontSize=-10")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Failed to set")

	doc := mustExecute(t, dir, "export", "--format", "json")
	cfg, err := export.ParseJSON(doc)
	require.NoError(t, err)
	assert.Equal(t, settings.Default().Text, cfg.Text)
}

func TestSetCommand_RejectsMalformedAssignment(t *testing.T) {
	_, _, err := execute(t, t.TempDir(), "set", "justakey")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected key=value")
}

func TestResetCommand(t *testing.T) {
	dir := t.TempDir()
	mustExecute(t, dir, "set", "text=Temporary")

	stdout := mustExecute(t, dir, "reset")
	assert.Contains(t, stdout, "Restored default headline")

	assert.Equal(t, export.CSS(settings.Default())+"\n", mustExecute(t, dir, "export"))
}

func TestValidateCommand(t *testing.T) {
	good := writeConfig(t, "good.yaml", "text: Fine\n")
	stdout := mustExecute(t, t.TempDir(), "validate", good)
	assert.Contains(t, stdout, "is valid")

	bad := writeConfig(t, "bad.yaml", "textAlign: justify\n")
	_, _, err := execute(t, t.TempDir(), "validate", bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "checking configuration")

	_, _, err = execute(t, t.TempDir(), "validate", filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not exist")

	stdout = mustExecute(t, t.TempDir(), "validate")
	assert.Contains(t, stdout, "Live headline is valid")
}

func TestPreviewCommand_Static(t *testing.T) {
	stdout := mustExecute(t, t.TempDir(), "preview", "--width", "60")

	assert.Contains(t, stdout, "Amazing")
	assert.Contains(t, stdout, "Characters: 24  Words: 3  Font Size: 48px  Highlights: 0")
}

func TestPreviewCommand_AnimatedTypewriter(t *testing.T) {
	cfg := writeConfig(t, "tw.json", `{"text": "Hi", "animationType": "typewriter"}`)

	stdout := mustExecute(t, t.TempDir(), "preview", "--config", cfg, "--animate", "--interval", "1ms")

	assert.Contains(t, stdout, "|\nH|\nHi|\n")
}

func TestPreviewCommand_NegativeWidth(t *testing.T) {
	_, _, err := execute(t, t.TempDir(), "preview", "--width", "-1")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "width must not be negative")
}

type listedHeadlines struct {
	Count     int `json:"count"`
	Headlines []struct {
		ID   string `json:"id"`
		Name string `json:"name"`
		Text string `json:"text"`
	} `json:"headlines"`
}

func listJSON(t *testing.T, dir string) listedHeadlines {
	t.Helper()

	var payload listedHeadlines
	require.NoError(t, json.Unmarshal([]byte(mustExecute(t, dir, "list", "--json")), &payload))
	return payload
}

func TestLibraryCommands(t *testing.T) {
	dir := t.TempDir()

	stdout := mustExecute(t, dir, "list")
	assert.Contains(t, stdout, "No saved headlines yet.")

	stdout = mustExecute(t, dir, "save")
	assert.Contains(t, stdout, "✓ Saved 'Headline 1'")

	mustExecute(t, dir, "set", "text=Second One")
	stdout = mustExecute(t, dir, "save", "--name", "Launch")
	assert.Contains(t, stdout, "✓ Saved 'Launch'")

	payload := listJSON(t, dir)
	require.Equal(t, 2, payload.Count)
	assert.Equal(t, "Headline 1", payload.Headlines[0].Name)
	assert.Equal(t, "Launch", payload.Headlines[1].Name)
	assert.Equal(t, "Second One", payload.Headlines[1].Text)

	table := mustExecute(t, dir, "list")
	assert.Contains(t, table, "ID")
	assert.Contains(t, table, "NAME")
	assert.Contains(t, table, "Launch")
	assert.Contains(t, table, "Fade In")

	first := payload.Headlines[0].ID
	shown := mustExecute(t, dir, "show", first)
	assert.Contains(t, shown, "Name:      Headline 1")
	assert.Contains(t, shown, settings.Default().Text)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(mustExecute(t, dir, "show", first, "--json")), &entry))
	assert.Equal(t, first, entry["id"])
	assert.Equal(t, "Headline 1", entry["name"])

	stdout = mustExecute(t, dir, "load", first)
	assert.Contains(t, stdout, "✓ Loaded 'Headline 1'")
	assert.Equal(t, export.CSS(settings.Default())+"\n", mustExecute(t, dir, "export"))

	stdout = mustExecute(t, dir, "remove", first, "--force")
	assert.Contains(t, stdout, "✓ Removed 'Headline 1'")
	assert.Equal(t, 1, listJSON(t, dir).Count)
}

func TestLibraryCommands_UnknownID(t *testing.T) {
	dir := t.TempDir()

	for _, args := range [][]string{{"show", "nope"}, {"load", "nope"}, {"remove", "nope", "--force"}} {
		_, _, err := execute(t, dir, args...)
		require.Error(t, err, args)
		assert.Contains(t, err.Error(), "saved headline not found: nope")
		assert.Contains(t, err.Error(), "headline list")
	}
}

func TestRemoveCommand_RequiresTerminalWithoutForce(t *testing.T) {
	dir := t.TempDir()
	mustExecute(t, dir, "save")
	id := listJSON(t, dir).Headlines[0].ID

	_, _, err := execute(t, dir, "remove", id)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a terminal")
	assert.Equal(t, 1, listJSON(t, dir).Count)
}

func TestDiffCommand(t *testing.T) {
	dir := t.TempDir()
	mustExecute(t, dir, "save")
	mustExecute(t, dir, "set", "fontSize=64")
	mustExecute(t, dir, "save")

	payload := listJSON(t, dir)
	require.Equal(t, 2, payload.Count)
	a, b := payload.Headlines[0].ID, payload.Headlines[1].ID

	stdout := mustExecute(t, dir, "diff", a, b)
	assert.Contains(t, stdout, "-  font-size: 48px;\n")
	assert.Contains(t, stdout, "+  font-size: 64px;\n")
	assert.Contains(t, stdout, "1 line(s) added, 1 line(s) removed")

	stdout = mustExecute(t, dir, "diff", a, a, "--format", "react")
	assert.Contains(t, stdout, "No differences in React Component.")
}

func TestFormatSavedAt(t *testing.T) {
	assert.Contains(t, formatSavedAt("2026-03-01T12:00:00Z"), "2026-03-01T12:00:00Z")
	assert.Contains(t, formatSavedAt("2026-03-01T12:00:00.5Z-2"), "2026-03-01T12:00:00Z")
	assert.Equal(t, "unknown", formatSavedAt("not-a-time"))
}
