// Package config loads runtime configuration for the growlog CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected via -c or -config.
//  3. Environment variables prefixed with GROWLOG_ (caarlos0/env).
//  4. Command-line flags, which override everything above.
//
// Supported flags
//
//	-a string   API base URL
//	-t int      request timeout (seconds)
//	-d string   local database path
//	-l string   log level
//
// # JSON schema
//
//	{
//	  "api_base_url": "https://api.growlog.app",
//	  "request_timeout": "15s",
//	  "database_path": "growlog.db",
//	  "google": {"client_id": "...", "client_secret": "..."}
//	}
//
// # Environment
//
//	GROWLOG_API_URL, GROWLOG_REQUEST_TIMEOUT, GROWLOG_DATABASE_PATH,
//	GROWLOG_DEVICE_KEY_PATH, GROWLOG_LOG_LEVEL, GROWLOG_LOG_FORMAT,
//	GROWLOG_GOOGLE_CLIENT_ID, GROWLOG_GOOGLE_CLIENT_SECRET,
//	GROWLOG_GOOGLE_REDIRECT_HOST
package config
