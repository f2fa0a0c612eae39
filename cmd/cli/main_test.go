package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRun_PanicRecovery(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// An HCL string with a syntax error is guaranteed to cause a panic
	// during the loading phase inside app.NewApp().
	invalidHCL := `
		blueprint "broken" {
			stack = "HDP-2.6"
	`
	tempDir := t.TempDir()
	blueprintPath := filepath.Join(tempDir, "blueprint.hcl")
	topologyPath := filepath.Join(tempDir, "topology.hcl")
	require.NoError(t, os.WriteFile(blueprintPath, []byte(invalidHCL), 0600))
	require.NoError(t, os.WriteFile(topologyPath, []byte(`cluster "c" { blueprint = "broken" }`), 0600))

	args := []string{"--mode", "create", "--blueprint", blueprintPath, "--topology", topologyPath}
	out := &bytes.Buffer{}
	logs := &bytes.Buffer{}

	// --- Act ---
	runErr := run(out, logs, args)

	// --- Assert ---
	require.Error(t, runErr, "run() should have returned an error after recovering from a panic")

	errStr := runErr.Error()
	require.True(t, strings.Contains(errStr, "application startup panicked"), "The error message should indicate that a panic was recovered.")
	require.True(t, strings.Contains(errStr, "failed to parse"), "The error message should contain the underlying reason for the panic.")
}

func TestRun_ShouldExit(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// The "-h" (help) flag should cause cli.Parse to return `shouldExit=true`.
	args := []string{"-h"}
	out := &bytes.Buffer{}
	logs := &bytes.Buffer{}

	// --- Act ---
	err := run(out, logs, args)

	// --- Assert ---
	require.NoError(t, err, "run() should return a nil error when shouldExit is true")
	require.Contains(t, logs.String(), "Usage:", "Expected help text to be printed to the log writer")
}

func TestRun_ParseError(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	args := []string{"--this-is-not-a-valid-flag"}
	out := &bytes.Buffer{}
	logs := &bytes.Buffer{}

	// --- Act ---
	err := run(out, logs, args)

	// --- Assert ---
	require.Error(t, err, "run() should return an error when argument parsing fails")
	require.Contains(t, err.Error(), "flag provided but not defined: -this-is-not-a-valid-flag")
}

func TestRun_CreateWritesOutputFile(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	blueprintHCL := `
		blueprint "nn-single" {
			stack = "HDP-2.6"
		}

		host_group "master" {
			cardinality = "1"
			components  = ["NAMENODE", "ZOOKEEPER_SERVER"]
		}

		configuration "core-site" {
			properties = {
				"fs.defaultFS" = "hdfs://%HOSTGROUP::master%:8020"
			}
		}
	`
	topologyHCL := `
		cluster "one" {
			blueprint = "nn-single"
		}

		host_group "master" {
			hosts = ["nn1.example.com"]
		}
	`
	tempDir := t.TempDir()
	blueprintPath := filepath.Join(tempDir, "blueprint.hcl")
	topologyPath := filepath.Join(tempDir, "topology.hcl")
	outputPath := filepath.Join(tempDir, "resolved.json")
	require.NoError(t, os.WriteFile(blueprintPath, []byte(blueprintHCL), 0600))
	require.NoError(t, os.WriteFile(topologyPath, []byte(topologyHCL), 0600))

	args := []string{
		"--mode", "create",
		"--blueprint", blueprintPath,
		"--topology", topologyPath,
		"--output", outputPath,
	}
	out := &bytes.Buffer{}
	logs := &bytes.Buffer{}

	// --- Act ---
	err := run(out, logs, args)

	// --- Assert ---
	require.NoError(t, err)
	require.Empty(t, out.String(), "stdout should stay empty when --output is set")

	raw, err := os.ReadFile(outputPath)
	require.NoError(t, err)

	var doc struct {
		Configurations map[string]map[string]string `json:"configurations"`
	}
	require.NoError(t, json.Unmarshal(raw, &doc))
	require.Equal(t, "hdfs://nn1.example.com:8020", doc.Configurations["core-site"]["fs.defaultFS"])
}
