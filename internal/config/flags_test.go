package config

import (
	"flag"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetFlags(t *testing.T, args ...string) {
	t.Helper()

	oldArgs := os.Args
	oldCommandLine := flag.CommandLine
	t.Cleanup(func() {
		os.Args = oldArgs
		flag.CommandLine = oldCommandLine
	})

	flag.CommandLine = flag.NewFlagSet(oldArgs[0], flag.ContinueOnError)
	os.Args = append([]string{oldArgs[0]}, args...)
}

func TestNetAddressSet(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected NetAddress
		wantErr  bool
	}{
		{
			name:     "Valid localhost address",
			value:    "localhost:8080",
			expected: NetAddress{Host: "localhost", Port: 8080},
		},
		{
			name:     "Valid IP address",
			value:    "127.0.0.1:9090",
			expected: NetAddress{Host: "127.0.0.1", Port: 9090},
		},
		{
			name:     "Empty host",
			value:    ":8080",
			expected: NetAddress{Host: "", Port: 8080},
		},
		{
			name:    "Missing port",
			value:   "localhost",
			wantErr: true,
		},
		{
			name:    "Port out of range",
			value:   "localhost:70000",
			wantErr: true,
		},
		{
			name:    "Not a host",
			value:   "not a host:8080",
			wantErr: true,
		},
	}

	// ────────────────────────────────────────────────────────────────

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			addr := NetAddress{}
			err := addr.Set(tt.value)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, addr)
			assert.Equal(t, tt.value, addr.String())
		})
	}
}

func TestParseFlags(t *testing.T) {
	resetFlags(t,
		"-a", "localhost:8081",
		"-d", "postgres://localhost/recipes",
		"-u", "./uploads",
		"-token-sign-key", "flag-secret",
		"-token-issuer", "recipe-app",
		"-token-duration", "45m",
		"-request-timeout", "20s",
		"-allowed-origins", "http://localhost:3000,https://recipes.example.com",
		"-config", "/tmp/config.json",
	)

	cfg, err := ParseFlags()
	require.NoError(t, err)

	assert.Equal(t, "localhost:8081", cfg.Server.HTTPAddress)
	assert.Equal(t, "postgres://localhost/recipes", cfg.Storage.DB.DSN)
	assert.Equal(t, "./uploads", cfg.Storage.Files.UploadsDir)
	assert.Equal(t, "flag-secret", cfg.Auth.TokenSignKey)
	assert.Equal(t, "recipe-app", cfg.Auth.TokenIssuer)
	assert.Equal(t, 45*time.Minute, cfg.Auth.TokenDuration)
	assert.Equal(t, 20*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, []string{"http://localhost:3000", "https://recipes.example.com"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, "/tmp/config.json", cfg.JSONFilePath)
}

func TestParseFlagsDefaults(t *testing.T) {
	resetFlags(t)

	cfg, err := ParseFlags()
	require.NoError(t, err)

	assert.Empty(t, cfg.Server.HTTPAddress)
	assert.Empty(t, cfg.Storage.DB.DSN)
	assert.Empty(t, cfg.JSONFilePath)
}
