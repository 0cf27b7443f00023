package shared

import (
	"context"
	"os"
	"strings"
	"testing"

	"smolclaw/pkg/config"

	"github.com/urfave/cli/v3"
)

func TestGetBaseDescription(t *testing.T) {
	t.Parallel()

	desc := GetBaseDescription()

	if desc == "" {
		t.Error("GetBaseDescription() should not return empty string")
	}

	if !strings.Contains(desc, ConfigEnvVar) {
		t.Errorf("description should mention %s", ConfigEnvVar)
	}

	if !strings.Contains(desc, DefaultConfigFile) {
		t.Errorf("description should mention %s", DefaultConfigFile)
	}
}

func TestGetCommonFlags(t *testing.T) {
	t.Parallel()

	flags := GetCommonFlags()

	want := map[string]bool{ConfigFlag: false, VerboseFlag: false}
	for _, f := range flags {
		for _, name := range f.Names() {
			if _, ok := want[name]; ok {
				want[name] = true
			}
		}
	}

	for name, found := range want {
		if !found {
			t.Errorf("flag %q not found in common flags", name)
		}
	}
}

// resolve runs a throwaway command with the common flags and returns the
// paths it resolves.
func resolve(t *testing.T, env map[string]string, defaultExists bool, args ...string) (read, write string) {
	t.Helper()

	deps := &config.Dependencies{
		Getenv: func(key string) string { return env[key] },
		Stat: func(path string) (os.FileInfo, error) {
			if path == DefaultConfigFile && defaultExists {
				return nil, nil
			}
			return nil, os.ErrNotExist
		},
	}

	cmd := &cli.Command{
		Name:  "test",
		Flags: GetCommonFlags(),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			read = ConfigPath(cmd, deps)
			write = TargetConfigPath(cmd, deps)
			return nil
		},
	}

	if err := cmd.Run(context.Background(), append([]string{"test"}, args...)); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	return
}

func TestConfigPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		env       map[string]string
		exists    bool
		args      []string
		wantRead  string
		wantWrite string
	}{
		{
			name:      "flag",
			args:      []string{"--config", "a.yaml"},
			wantRead:  "a.yaml",
			wantWrite: "a.yaml",
		},
		{
			name:      "short flag",
			args:      []string{"-c", "b.yaml"},
			wantRead:  "b.yaml",
			wantWrite: "b.yaml",
		},
		{
			name:      "env",
			env:       map[string]string{ConfigEnvVar: "env.yaml"},
			wantRead:  "env.yaml",
			wantWrite: "env.yaml",
		},
		{
			name:      "flag beats env",
			env:       map[string]string{ConfigEnvVar: "env.yaml"},
			args:      []string{"--config", "flag.yaml"},
			wantRead:  "flag.yaml",
			wantWrite: "flag.yaml",
		},
		{
			name:      "nothing",
			wantRead:  "",
			wantWrite: DefaultConfigFile,
		},
		{
			name:      "default file present",
			exists:    true,
			wantRead:  DefaultConfigFile,
			wantWrite: DefaultConfigFile,
		},
		{
			name:      "flag beats default file",
			exists:    true,
			args:      []string{"--config", "flag.yaml"},
			wantRead:  "flag.yaml",
			wantWrite: "flag.yaml",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			read, write := resolve(t, tc.env, tc.exists, tc.args...)
			if read != tc.wantRead {
				t.Errorf("ConfigPath() = %q, want %q", read, tc.wantRead)
			}
			if write != tc.wantWrite {
				t.Errorf("TargetConfigPath() = %q, want %q", write, tc.wantWrite)
			}
		})
	}
}
