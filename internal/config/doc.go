// Package config loads runtime configuration for the quote journal CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected via flags: -c or -config.
//  3. Environment variables.
//  4. Command-line flags, which override everything earlier.
//
// Supported flags
//
//	-a string   base URL of the quote journal API
//	-t string   path of the file holding the auth token
//
// Environment variables
//
//	QUOTEJOURNAL_API_URL      base URL of the API
//	QUOTEJOURNAL_TOKEN_FILE   path of the token file
//
// # JSON schema
//
//	{
//	  "api_base_url": "http://localhost:8080/api",
//	  "token_file": "/home/user/.quotejournal/token"
//	}
package config
