package viewer_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.jacobcolvin.com/termview/resample"
	"go.jacobcolvin.com/termview/viewer"
)

func TestParsePAR(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		input       string
		want        float64
		expectError bool
	}{
		"default":       {input: "0.5", want: 0.5},
		"integer":       {input: "1", want: 1},
		"whitespace":    {input: " 0.45 ", want: 0.45},
		"exponent":      {input: "5e-1", want: 0.5},
		"not a number":  {input: "wide", expectError: true},
		"empty":         {input: "", expectError: true},
		"zero":          {input: "0", expectError: true},
		"negative":      {input: "-0.5", expectError: true},
		"infinite":      {input: "+Inf", expectError: true},
		"nan":           {input: "NaN", expectError: true},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got, err := viewer.ParsePAR(tc.input)
			if tc.expectError {
				require.ErrorIs(t, err, viewer.ErrInvalidPAR)
				return
			}

			require.NoError(t, err)
			assert.InDelta(t, tc.want, got, 1e-12)
		})
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "termview.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestConfigOptions(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		file        string
		withFile    bool
		args        []string
		par         string
		want        viewer.Options
		expectError error
	}{
		"defaults": {
			want: viewer.DefaultOptions(),
		},
		"flags": {
			args: []string{"--kernel=lanczos", "--border=clamp"},
			want: viewer.Options{PAR: 0.5, Kernel: resample.Lanczos, Border: resample.Clamp},
		},
		"par argument": {
			par:  "0.45",
			want: viewer.Options{PAR: 0.45, Kernel: resample.Auto, Border: resample.Letterbox},
		},
		"file": {
			file: "par: 0.6\nkernel: cubic\nborder: clamp\n",
			want: viewer.Options{PAR: 0.6, Kernel: resample.Cubic, Border: resample.Clamp},
		},
		"flags and argument win over file": {
			file: "par: 0.6\nkernel: cubic\nborder: clamp\n",
			args: []string{"--kernel=area"},
			par:  "0.4",
			want: viewer.Options{PAR: 0.4, Kernel: resample.Area, Border: resample.Clamp},
		},
		"empty file": {
			withFile: true,
			want:     viewer.DefaultOptions(),
		},
		"unknown kernel flag": {
			args:        []string{"--kernel=nearest"},
			expectError: viewer.ErrInvalidOption,
		},
		"unknown border flag": {
			args:        []string{"--border=wrap"},
			expectError: viewer.ErrInvalidOption,
		},
		"invalid file": {
			file:        "par: -1\n",
			expectError: viewer.ErrInvalidConfig,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			cfg := viewer.NewConfig()

			cmd := &cobra.Command{Use: "test"}
			cfg.RegisterFlags(cmd.Flags())

			args := tc.args
			if tc.withFile || tc.file != "" {
				args = append(args, "--config="+writeConfig(t, tc.file))
			}

			require.NoError(t, cmd.Flags().Parse(args))

			if tc.par != "" {
				require.NoError(t, cfg.SetPAR(tc.par))
			}

			got, err := cfg.Options()
			if tc.expectError != nil {
				require.ErrorIs(t, err, tc.expectError)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestConfigSetPARInvalid(t *testing.T) {
	t.Parallel()

	cfg := viewer.NewConfig()
	require.ErrorIs(t, cfg.SetPAR("tall"), viewer.ErrInvalidPAR)
}

func TestConfigMissingFile(t *testing.T) {
	t.Parallel()

	cfg := viewer.NewConfig()
	cfg.ConfigFile = filepath.Join(t.TempDir(), "missing.yaml")

	_, err := cfg.Options()
	require.ErrorIs(t, err, viewer.ErrInvalidConfig)
}

func TestRegisterCompletions(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		flag string
		want []string
	}{
		"kernel completions": {
			flag: "kernel",
			want: resample.AllKernelStrings(),
		},
		"border completions": {
			flag: "border",
			want: resample.AllBorderStrings(),
		},
	}

	cfg := viewer.NewConfig()

	cmd := &cobra.Command{Use: "test"}
	cfg.RegisterFlags(cmd.Flags())

	err := cfg.RegisterCompletions(cmd)
	require.NoError(t, err)

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			completionFn, ok := cmd.GetFlagCompletionFunc(tc.flag)
			require.True(t, ok)

			values, directive := completionFn(cmd, nil, "")
			assert.Equal(t, cobra.ShellCompDirectiveNoFileComp, directive)
			assert.Equal(t, tc.want, values)
		})
	}
}
