package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runRosterctl(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		importRow, importOut, importTemplate, importJSON = 0, "roster.xlsx", "", false
		importCmd.Flags().Lookup("row").Changed = false
	})
	err := rootCmd.Execute()
	return stdout.String(), err
}

func TestImportCommand(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "staff.csv")
	require.NoError(t, os.WriteFile(src, []byte("emp_id,name,designation,salary\n1,Alice,Developer,1000\n2,Bob,HR,800\n"), 0o600))
	out := filepath.Join(dir, "roster.csv")

	stdout, err := runRosterctl(t, "import", src, "--out", out, "--json")
	require.NoError(t, err)

	var snapshots []map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(stdout), &snapshots))
	require.Len(t, snapshots, 2)
	assert.Equal(t, "Alice", snapshots[0]["name"])
	assert.Equal(t, "Single", snapshots[0]["marital_status"])

	written, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(written), "Alice"))
	assert.True(t, strings.Contains(string(written), "Bob"))
}

func TestImportCommand_SingleRow(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "staff.csv")
	require.NoError(t, os.WriteFile(src, []byte("emp_id,name\n1,Alice\n2,Bob\n"), 0o600))

	stdout, err := runRosterctl(t, "import", src, "--row", "1", "--out", filepath.Join(dir, "one.xlsx"), "--json")
	require.NoError(t, err)

	var snapshots []map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(stdout), &snapshots))
	require.Len(t, snapshots, 1)
	assert.Equal(t, "Bob", snapshots[0]["name"])
	assert.FileExists(t, filepath.Join(dir, "one.xlsx"))
}

func TestImportCommand_Errors(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "staff.csv")
	require.NoError(t, os.WriteFile(src, []byte("emp_id,name\n1,Alice\n"), 0o600))

	_, err := runRosterctl(t, "import", filepath.Join(dir, "missing.csv"), "--out", filepath.Join(dir, "x.xlsx"))
	assert.Error(t, err)

	_, err = runRosterctl(t, "import", src, "--out", filepath.Join(dir, "x.pdf"))
	assert.Error(t, err)
	assert.NoFileExists(t, filepath.Join(dir, "x.pdf"))

	_, err = runRosterctl(t, "import", src, "--row", "3", "--out", filepath.Join(dir, "x.xlsx"))
	assert.Error(t, err)
}
