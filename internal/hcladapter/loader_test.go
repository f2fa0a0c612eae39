package hcladapter

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/topoconf/internal/ctxlog"
)

func testContext() context.Context {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return ctxlog.WithLogger(context.Background(), logger)
}

// writeDocs writes the given HCL documents into a fresh temp dir and returns
// the dir.
func writeDocs(t *testing.T, docs map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range docs {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
	}
	return dir
}

func TestLoad_MergesHostGroupsAcrossFiles(t *testing.T) {
	t.Parallel()

	dir := writeDocs(t, map[string]string{
		"blueprint.hcl": `
			blueprint "bp" {
				stack = "HDP-2.6"
			}

			host_group "master" {
				cardinality = "1"
				components  = ["NAMENODE"]
			}
		`,
		"topology.hcl": `
			cluster "c1" {
				blueprint = "bp"
			}

			host_group "master" {
				hosts = ["m1.example.com"]
			}
		`,
	})

	model, err := NewLoader().Load(testContext(), dir)
	require.NoError(t, err)

	require.NotNil(t, model.Blueprint)
	assert.Equal(t, "bp", model.Blueprint.Name)
	assert.Equal(t, "HDP-2.6", model.Blueprint.Stack)

	require.NotNil(t, model.Cluster)
	assert.Equal(t, "c1", model.Cluster.Name)
	assert.Equal(t, "bp", model.Cluster.Blueprint)

	require.Len(t, model.HostGroups, 1)
	group := model.HostGroups[0]
	assert.Equal(t, "master", group.Name)
	assert.Equal(t, "1", group.Cardinality)
	assert.Equal(t, []string{"NAMENODE"}, group.Components)
	assert.Equal(t, []string{"m1.example.com"}, group.Hosts)
}

func TestLoad_TranslatesPropertyValuesToStrings(t *testing.T) {
	t.Parallel()

	dir := writeDocs(t, map[string]string{
		"doc.hcl": `
			configuration "hdfs-site" {
				properties = {
					"dfs.replication"                  = 3
					"dfs.namenode.name.dir"            = "/hadoop/hdfs/namenode"
					"dfs.namenode.acls.enabled"        = true
				}
			}
		`,
	})

	model, err := NewLoader().Load(testContext(), dir)
	require.NoError(t, err)

	require.Len(t, model.Configurations, 1)
	props := model.Configurations[0].Properties
	assert.Equal(t, "3", props["dfs.replication"])
	assert.Equal(t, "/hadoop/hdfs/namenode", props["dfs.namenode.name.dir"])
	assert.Equal(t, "true", props["dfs.namenode.acls.enabled"])
}

func TestLoad_DecodesStackComponentOverrides(t *testing.T) {
	t.Parallel()

	dir := writeDocs(t, map[string]string{
		"doc.hcl": `
			stack_component "FLINK_JOBMANAGER" {
				service     = "FLINK"
				cardinality = "1-2"
				master      = true
			}
		`,
	})

	model, err := NewLoader().Load(testContext(), dir)
	require.NoError(t, err)

	require.Len(t, model.StackOverrides, 1)
	sc := model.StackOverrides[0]
	assert.Equal(t, "FLINK_JOBMANAGER", sc.Name)
	assert.Equal(t, "FLINK", sc.Service)
	assert.Equal(t, "1-2", sc.Cardinality)
	assert.True(t, sc.Master)
}

func TestLoad_RejectsConflictingBlueprintBlocks(t *testing.T) {
	t.Parallel()

	dir := writeDocs(t, map[string]string{
		"a.hcl": `blueprint "first" {}`,
		"b.hcl": `blueprint "second" {}`,
	})

	_, err := NewLoader().Load(testContext(), dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate blueprint block")
}

func TestLoad_RejectsNonStringMapProperties(t *testing.T) {
	t.Parallel()

	dir := writeDocs(t, map[string]string{
		"doc.hcl": `
			configuration "core-site" {
				properties = "not-a-map"
			}
		`,
	})

	_, err := NewLoader().Load(testContext(), dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "properties must be a map of strings")
}

func TestLoad_ParseErrorNamesTheFile(t *testing.T) {
	t.Parallel()

	dir := writeDocs(t, map[string]string{
		"broken.hcl": `blueprint "b" {`,
	})

	_, err := NewLoader().Load(testContext(), dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse")
	assert.Contains(t, err.Error(), "broken.hcl")
}

func TestLoad_ErrorsWhenNoDocumentsFound(t *testing.T) {
	t.Parallel()

	_, err := NewLoader().Load(testContext(), t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no .hcl documents found")
}

func TestLoad_AcceptsExplicitFilePaths(t *testing.T) {
	t.Parallel()

	dir := writeDocs(t, map[string]string{
		"doc.hcl": `blueprint "bp" {}`,
	})

	path := filepath.Join(dir, "doc.hcl")
	model, err := NewLoader().Load(testContext(), path, path)
	require.NoError(t, err)

	// The same file given twice is deduplicated, not treated as a duplicate
	// blueprint block.
	require.NotNil(t, model.Blueprint)
	assert.Equal(t, "bp", model.Blueprint.Name)
}
