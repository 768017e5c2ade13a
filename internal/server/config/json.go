package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/lovesurprise/internal/flagx"
	"github.com/dmitrijs2005/lovesurprise/internal/timex"
)

// JsonConfig is an intermediate DTO used only for reading JSON configuration
// files. Durations accept both "1s" strings and integer nanoseconds.
type JsonConfig struct {
	EndpointAddrGRPC             string         `json:"endpoint_addr_grpc"`
	DatabaseDSN                  string         `json:"database_dsn"`
	SecretKey                    string         `json:"secret_key"`
	AccessTokenValidityDuration  timex.Duration `json:"access_token_validity_duration"`
	RefreshTokenValidityDuration timex.Duration `json:"refresh_token_validity_duration"`
	StorageDriver                string         `json:"storage_driver"`
	S3RootUser                   string         `json:"s3_root_user"`
	S3RootPassword               string         `json:"s3_root_password"`
	S3Bucket                     string         `json:"s3_bucket"`
	S3Region                     string         `json:"s3_region"`
	S3BaseEndpoint               string         `json:"s3_base_endpoint"`
	S3Secure                     *bool          `json:"s3_secure"`
	PresignTTL                   timex.Duration `json:"presign_ttl"`
	RedisAddr                    string         `json:"redis_addr"`
	WorkerConcurrency            int            `json:"worker_concurrency"`
	LogLevel                     string         `json:"log_level"`
}

// parseJson overlays cfg with the fields present in the JSON file named by
// -c/-config. Absent fields keep their current value.
func parseJson(cfg *Config, args []string) error {
	path := flagx.ConfigPath(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	var c JsonConfig
	if err := json.Unmarshal(data, &c); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	setString(&cfg.EndpointAddrGRPC, c.EndpointAddrGRPC)
	setString(&cfg.DatabaseDSN, c.DatabaseDSN)
	setString(&cfg.SecretKey, c.SecretKey)
	setString(&cfg.StorageDriver, c.StorageDriver)
	setString(&cfg.S3RootUser, c.S3RootUser)
	setString(&cfg.S3RootPassword, c.S3RootPassword)
	setString(&cfg.S3Bucket, c.S3Bucket)
	setString(&cfg.S3Region, c.S3Region)
	setString(&cfg.S3BaseEndpoint, c.S3BaseEndpoint)
	setString(&cfg.RedisAddr, c.RedisAddr)
	setString(&cfg.LogLevel, c.LogLevel)

	if c.AccessTokenValidityDuration.Duration > 0 {
		cfg.AccessTokenValidityDuration = c.AccessTokenValidityDuration.Duration
	}
	if c.RefreshTokenValidityDuration.Duration > 0 {
		cfg.RefreshTokenValidityDuration = c.RefreshTokenValidityDuration.Duration
	}
	if c.PresignTTL.Duration > 0 {
		cfg.PresignTTL = c.PresignTTL.Duration
	}
	if c.S3Secure != nil {
		cfg.S3Secure = *c.S3Secure
	}
	if c.WorkerConcurrency > 0 {
		cfg.WorkerConcurrency = c.WorkerConcurrency
	}

	return nil
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
