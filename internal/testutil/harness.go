package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vk/topoconf/internal/app"
	"github.com/vk/topoconf/internal/hcladapter"
)

// SafeBuffer is a thread-safe buffer for capturing log output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

// Write implements the io.Writer interface for SafeBuffer.
func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

// String implements the fmt.Stringer interface for SafeBuffer.
func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// ResolvedDocument mirrors the JSON document the app emits, for assertions.
type ResolvedDocument struct {
	Blueprint          string                       `json:"blueprint"`
	Cluster            string                       `json:"cluster"`
	Configurations     map[string]map[string]string `json:"configurations"`
	RequiredHostGroups []string                     `json:"required_host_groups"`
}

// HarnessResult holds the outcomes of a resolution test run.
type HarnessResult struct {
	LogOutput string
	Output    string
	Err       error
	App       *app.App
}

// RunResolutionTest provides a standardized harness for end-to-end tests: it
// writes the given HCL documents into a temporary directory, boots the app
// against them, and runs one resolution pass in the given mode. Startup
// panics are captured into the result error rather than failing the test, so
// negative cases can assert on them.
func RunResolutionTest(t *testing.T, mode, blueprintHCL, topologyHCL string) *HarnessResult {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", ".tmp-resolution-test-*")
	require.NoError(t, err)
	t.Cleanup(func() { os.RemoveAll(tmpDir) })

	blueprintPath := filepath.Join(tmpDir, "blueprint.hcl")
	topologyPath := filepath.Join(tmpDir, "topology.hcl")
	require.NoError(t, os.WriteFile(blueprintPath, []byte(blueprintHCL), 0644))
	require.NoError(t, os.WriteFile(topologyPath, []byte(topologyHCL), 0644))

	appConfig, err := app.NewConfig(app.Config{
		Mode:          mode,
		BlueprintPath: blueprintPath,
		TopologyPath:  topologyPath,
		LogLevel:      "debug",
		LogFormat:     "text",
	})
	require.NoError(t, err)

	logBuffer := &SafeBuffer{}
	outBuffer := &SafeBuffer{}

	var testApp *app.App
	var panicErr any
	func() {
		defer func() {
			if r := recover(); r != nil {
				panicErr = r
			}
		}()
		testApp = app.NewApp(outBuffer, logBuffer, appConfig, hcladapter.NewLoader())
	}()

	if panicErr != nil {
		return &HarnessResult{
			LogOutput: logBuffer.String(),
			Err:       fmt.Errorf("application startup panicked | %v", panicErr),
		}
	}

	runErr := testApp.Run(context.Background(), appConfig)

	return &HarnessResult{
		LogOutput: logBuffer.String(),
		Output:    outBuffer.String(),
		Err:       runErr,
		App:       testApp,
	}
}

// Document decodes the harness output as a resolved document. It fails the
// test when the run errored or the output is not valid JSON.
func (r *HarnessResult) Document(t *testing.T) *ResolvedDocument {
	t.Helper()
	require.NoError(t, r.Err)

	var doc ResolvedDocument
	require.NoError(t, json.Unmarshal([]byte(r.Output), &doc),
		"output was not a valid resolved document: %s", r.Output)
	return &doc
}
