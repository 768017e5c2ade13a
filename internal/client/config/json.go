package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/lovesurprise/internal/flagx"
	"github.com/dmitrijs2005/lovesurprise/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Durations
// may be written as "2s" or as integer nanoseconds.
type JsonConfig struct {
	ServerEndpointAddr  string         `json:"server_endpoint_addr"`
	DatabasePath        string         `json:"database_path"`
	RequestTimeout      timex.Duration `json:"request_timeout"`
	SessionPollAttempts int            `json:"session_poll_attempts"`
	SessionPollInterval timex.Duration `json:"session_poll_interval"`
	ShareBaseURL        string         `json:"share_base_url"`
	PaymentPath         string         `json:"payment_path"`
	DraftPath           string         `json:"draft_path"`
	ExportDir           string         `json:"export_dir"`
	LogLevel            string         `json:"log_level"`
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

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	setString(&cfg.ServerEndpointAddr, jc.ServerEndpointAddr)
	setString(&cfg.DatabasePath, jc.DatabasePath)
	setString(&cfg.ShareBaseURL, jc.ShareBaseURL)
	setString(&cfg.PaymentPath, jc.PaymentPath)
	setString(&cfg.DraftPath, jc.DraftPath)
	setString(&cfg.ExportDir, jc.ExportDir)
	setString(&cfg.LogLevel, jc.LogLevel)
	if jc.RequestTimeout.Duration > 0 {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.SessionPollAttempts > 0 {
		cfg.SessionPollAttempts = jc.SessionPollAttempts
	}
	if jc.SessionPollInterval.Duration > 0 {
		cfg.SessionPollInterval = jc.SessionPollInterval.Duration
	}

	return nil
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
