package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultMessages_ReturnsCopy(t *testing.T) {
	a := DefaultMessages()
	a[0] = "mutated"
	b := DefaultMessages()
	assert.Equal(t, "Hello", b[0])
	assert.Len(t, b, 3)
}

func TestLoad_EmptyPathUsesDefault(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultMessages(), cfg.Messages)
}

func TestLoad_MissingFileUsesDefault(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultMessages(), cfg.Messages)
}

func TestLoad_Override(t *testing.T) {
	path := filepath.Join(t.TempDir(), "loginbox.yaml")
	require.NoError(t, os.WriteFile(path, []byte("messages:\n  - one\n  - two\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"one", "two"}, cfg.Messages)
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []string
		wantErr bool
	}{
		{name: "absent key", input: "{}\n", want: DefaultMessages()},
		{name: "empty file", input: "", want: DefaultMessages()},
		{name: "explicit empty list", input: "messages: []\n", want: []string{}},
		{name: "order preserved", input: "messages: [c, a, b]\n", want: []string{"c", "a", "b"}},
		{name: "malformed", input: "messages: [unclosed\n", wantErr: true},
		{name: "wrong type", input: "messages: 7\n", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Parse([]byte(tt.input))
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg.Messages)
		})
	}
}

func TestResolvePath(t *testing.T) {
	t.Setenv(EnvConfigPath, "/from/env.yaml")
	assert.Equal(t, "/from/flag.yaml", ResolvePath("/from/flag.yaml"))
	assert.Equal(t, "/from/env.yaml", ResolvePath(""))
}
