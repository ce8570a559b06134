package storage

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestFileProviderReadsJSON(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "campaigns.json", `[{"id":"c1","title":"Op"}]`)

	p := NewFileProvider(dir, zap.NewNop().Sugar())
	data, err := p.Collection(CollectionCampaigns)
	require.NoError(t, err)

	var records []map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &records))
	require.Len(t, records, 1)
	assert.Equal(t, "c1", records[0]["id"])
}

func TestFileProviderConvertsYAML(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "accounts.yaml", "- id: a1\n  username: botfarm_01\n")

	p := NewFileProvider(dir, zap.NewNop().Sugar())
	data, err := p.Collection(CollectionAccounts)
	require.NoError(t, err)

	var records []map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &records))
	require.Len(t, records, 1)
	assert.Equal(t, "botfarm_01", records[0]["username"])
}

func TestFileProviderPrefersJSONOverYAML(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "reports.json", `[{"id":"from-json"}]`)
	writeFile(t, dir, "reports.yaml", "- id: from-yaml\n")

	p := NewFileProvider(dir, zap.NewNop().Sugar())
	data, err := p.Collection(CollectionReports)
	require.NoError(t, err)
	assert.Contains(t, string(data), "from-json")
}

func TestFileProviderMissingCollection(t *testing.T) {
	p := NewFileProvider(t.TempDir(), zap.NewNop().Sugar())
	_, err := p.Collection(CollectionPosts)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestValidateCollection(t *testing.T) {
	t.Run("valid document", func(t *testing.T) {
		doc := []byte(`[{"id":"c1","title":"Op","threat_level":"high","status":"active"}]`)
		assert.Empty(t, ValidateCollection(CollectionCampaigns, doc))
	})

	t.Run("missing required field", func(t *testing.T) {
		doc := []byte(`[{"id":"c1","title":"Op","threat_level":"high"}]`)
		errs := ValidateCollection(CollectionCampaigns, doc)
		assert.NotEmpty(t, errs)
	})

	t.Run("bad enum value", func(t *testing.T) {
		doc := []byte(`[{"id":"c1","title":"Op","threat_level":"apocalyptic","status":"active"}]`)
		errs := ValidateCollection(CollectionCampaigns, doc)
		assert.NotEmpty(t, errs)
	})

	t.Run("unknown collection", func(t *testing.T) {
		errs := ValidateCollection("widgets", []byte(`[]`))
		assert.Len(t, errs, 1)
	})
}
