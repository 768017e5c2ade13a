// Package config loads runtime configuration for the LoveSurprise CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected with -c or -config.
//  3. Command-line flags, which override earlier values.
//
// # JSON schema
//
//	{
//	  "server_endpoint_addr": "127.0.0.1:50051",
//	  "database_path": "lovesurprise.db",
//	  "request_timeout": "10s",
//	  "session_poll_attempts": 5,
//	  "session_poll_interval": "2s",
//	  "share_base_url": "https://lovesurprise.app",
//	  "payment_path": "/payment",
//	  "draft_path": "/create",
//	  "export_dir": "exports",
//	  "log_level": "info"
//	}
package config
