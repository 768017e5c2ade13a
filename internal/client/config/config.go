package config

import "time"

// Config holds runtime settings for the LoveSurprise CLI.
//
// Units: SessionPollInterval and RequestTimeout are time.Duration values.
type Config struct {
	ServerEndpointAddr string
	DatabasePath       string
	RequestTimeout     time.Duration

	// SessionPollAttempts and SessionPollInterval bound the wait for the
	// session of a freshly registered account before a handoff gives up.
	SessionPollAttempts int
	SessionPollInterval time.Duration

	ShareBaseURL string
	PaymentPath  string
	DraftPath    string
	ExportDir    string
	LogLevel     string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "127.0.0.1:50051"
	c.DatabasePath = "lovesurprise.db"
	c.RequestTimeout = 10 * time.Second
	c.SessionPollAttempts = 5
	c.SessionPollInterval = 2 * time.Second
	c.ShareBaseURL = "http://localhost:3000"
	c.PaymentPath = "/payment"
	c.DraftPath = "/create"
	c.ExportDir = "."
	c.LogLevel = "info"
}

// LoadConfig builds a Config from defaults, then the JSON file named by
// -c/-config (if any), then command-line flags. Later sources win.
func LoadConfig(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseJson(cfg, args); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	return cfg, nil
}
