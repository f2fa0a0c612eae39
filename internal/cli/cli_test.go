package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/topoconf/internal/app"
)

func TestParse(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name       string
		args       []string
		wantExit   bool
		wantErr    string
		wantConfig *app.Config
	}{
		{
			name:     "no arguments prints usage and exits cleanly",
			args:     nil,
			wantExit: true,
		},
		{
			name:     "help flag exits cleanly",
			args:     []string{"-h"},
			wantExit: true,
		},
		{
			name:    "unknown flag is a usage error",
			args:    []string{"--bogus"},
			wantErr: "flag provided but not defined",
		},
		{
			name:    "missing mode is rejected",
			args:    []string{"--blueprint", "bp.hcl", "--topology", "topo.hcl"},
			wantErr: `mode must be "create" or "export"`,
		},
		{
			name:    "missing blueprint path is rejected",
			args:    []string{"--mode", "create", "--topology", "topo.hcl"},
			wantErr: "BlueprintPath is a required configuration field",
		},
		{
			name:    "missing topology path is rejected",
			args:    []string{"--mode", "export", "--blueprint", "bp.hcl"},
			wantErr: "TopologyPath is a required configuration field",
		},
		{
			name:    "invalid log format is rejected",
			args:    []string{"--mode", "create", "--blueprint", "bp.hcl", "--topology", "topo.hcl", "--log-format", "xml"},
			wantErr: "invalid log-format",
		},
		{
			name:    "invalid log level is rejected",
			args:    []string{"--mode", "create", "--blueprint", "bp.hcl", "--topology", "topo.hcl", "--log-level", "verbose"},
			wantErr: "invalid log-level",
		},
		{
			name: "full create invocation",
			args: []string{
				"--mode", "create",
				"--blueprint", "bp.hcl",
				"--topology", "topo.hcl",
				"--output", "out.json",
				"--log-level", "debug",
				"--log-format", "json",
			},
			wantConfig: &app.Config{
				Mode:          app.ModeCreate,
				BlueprintPath: "bp.hcl",
				TopologyPath:  "topo.hcl",
				OutputPath:    "out.json",
				LogFormat:     "json",
				LogLevel:      "debug",
			},
		},
		{
			name: "export mode is case-insensitive with defaults",
			args: []string{"--mode", "EXPORT", "--blueprint", "bp.hcl", "--topology", "topo.hcl"},
			wantConfig: &app.Config{
				Mode:          app.ModeExport,
				BlueprintPath: "bp.hcl",
				TopologyPath:  "topo.hcl",
				LogFormat:     "text",
				LogLevel:      "info",
			},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			out := &bytes.Buffer{}
			cfg, shouldExit, err := Parse(tc.args, out)

			if tc.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.wantErr)

				var exitErr *ExitError
				require.ErrorAs(t, err, &exitErr)
				assert.Equal(t, 2, exitErr.Code)
				return
			}
			require.NoError(t, err)

			if tc.wantExit {
				assert.True(t, shouldExit)
				assert.Nil(t, cfg)
				return
			}
			require.NotNil(t, cfg)
			assert.Equal(t, tc.wantConfig, cfg)
		})
	}
}

func TestParse_NoArgsPrintsUsage(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	_, shouldExit, err := Parse(nil, out)

	require.NoError(t, err)
	assert.True(t, shouldExit)
	assert.Contains(t, out.String(), "Usage:")
	assert.Contains(t, out.String(), "--mode")
}
