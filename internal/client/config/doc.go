// Package config loads runtime configuration for the EduHub CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected with -c / -config or EDUHUB_CONFIG.
//  3. Command-line flags, which override earlier values.
//
// Supported flags
//
//	-a string   content API base URL
//	-d string   path to the local SQLite database
//	-t int      request timeout (seconds)
//	-l string   log level (debug, info, warn, error)
//
// # JSON schema
//
// Durations accept strings like "3s" or integer nanoseconds. Keys that are
// absent leave the earlier value untouched.
//
//	{
//	  "api_base_url": "http://localhost:5000/api",
//	  "database_path": "eduhub.db",
//	  "request_timeout": "30s",
//	  "status_reset_delay": "3s",
//	  "refresh_delay": "1s",
//	  "download_dir": "download",
//	  "log_level": "info"
//	}
package config
