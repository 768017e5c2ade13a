package config

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		expected *Config
		name     string
		args     []string
		wantErr  bool
	}{
		{
			name: "all flags",
			args: []string{
				"-a", "127.0.0.1:9090", "-d", "db", "-k", "secret",
				"-t", "1", "-l", "3", "-m", "minio", "-u", "user", "-p", "password",
				"-b", "bucket", "-g", "us-west-1", "-e", "http://endpoint", "-r", "redis:1", "-w", "9",
			},
			expected: &Config{
				EndpointAddrGRPC:             "127.0.0.1:9090",
				DatabaseDSN:                  "db",
				SecretKey:                    "secret",
				AccessTokenValidityDuration:  1 * time.Minute,
				RefreshTokenValidityDuration: 3 * time.Minute,
				StorageDriver:                "minio",
				S3RootUser:                   "user",
				S3RootPassword:               "password",
				S3Bucket:                     "bucket",
				S3Region:                     "us-west-1",
				S3BaseEndpoint:               "http://endpoint",
				RedisAddr:                    "redis:1",
				WorkerConcurrency:            9,
			},
		},
		{
			name:     "unknown flags are ignored",
			args:     []string{"-x", "1", "--verbose", "-a", ":1"},
			expected: &Config{EndpointAddrGRPC: ":1"},
		},
		{
			name:    "invalid minutes",
			args:    []string{"-t", "soon"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := &Config{}
			err := parseFlags(config, tt.args)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Empty(t, cmp.Diff(tt.expected, config))
		})
	}
}

func TestParseFlags_DurationsKeptWhenAbsent(t *testing.T) {
	cfg := &Config{AccessTokenValidityDuration: 90 * time.Second, RefreshTokenValidityDuration: time.Hour}
	require.NoError(t, parseFlags(cfg, []string{"-a", ":1"}))
	assert.Equal(t, 90*time.Second, cfg.AccessTokenValidityDuration)
	assert.Equal(t, time.Hour, cfg.RefreshTokenValidityDuration)
}
