package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeDataFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func validDataDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	writeDataFile(t, dir, "campaigns.json",
		`[{"id":"c1","title":"Op","threat_level":"high","status":"active"}]`)
	writeDataFile(t, dir, "posts.json",
		`[{"id":"p1","campaign_id":"c1","account_id":"a1","platform":"twitter","posted_at":"2026-02-01T08:00:00Z"}]`)
	writeDataFile(t, dir, "accounts.json",
		`[{"id":"a1","username":"botfarm_01","platform":"twitter","bot_probability":92.5}]`)
	return dir
}

func runDataCmd(args ...string) error {
	root := NewDataCmd()
	root.SetArgs(append(args, "--quiet", "--json"))
	return root.Execute()
}

func TestValidateCommand(t *testing.T) {
	t.Run("valid data dir passes", func(t *testing.T) {
		err := runDataCmd("validate", "--data-dir", validDataDir(t))
		assert.NoError(t, err)
	})

	t.Run("schema violation fails", func(t *testing.T) {
		dir := t.TempDir()
		// status missing and threat_level outside the enum
		writeDataFile(t, dir, "campaigns.json",
			`[{"id":"c1","title":"Op","threat_level":"apocalyptic"}]`)
		err := runDataCmd("validate", "--data-dir", dir)
		assert.Error(t, err)
	})

	t.Run("empty data dir passes with absent collections", func(t *testing.T) {
		err := runDataCmd("validate", "--data-dir", t.TempDir())
		assert.NoError(t, err)
	})
}

func TestSummaryCommand(t *testing.T) {
	err := runDataCmd("summary", "--data-dir", validDataDir(t))
	assert.NoError(t, err)
}
