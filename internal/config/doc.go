// ReelMatch - Similar Movie Recommendations with Poster Lookup
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

/*
Package config provides layered configuration loading for ReelMatch.

# Configuration Sources

Load() merges, lowest precedence first:
  - Built-in defaults (defaultConfig)
  - An optional YAML file: CONFIG_PATH, else config.yaml / config.yml in the
    working directory, else /etc/reelmatch/config.yaml
  - A .env file (ENV_FILE, default ".env") loaded with godotenv; it never
    overrides variables that are already set
  - Environment variables, mapped explicitly (see envMappings)

# Credentials

The TMDB API key is read from TMDB_API_KEY (or tmdb.api_key in YAML). It is
never compiled in and never logged in clear text.

# Example config.yaml

	server:
	  port: 8501
	catalog:
	  path: /data/catalog.duckdb
	  watch: true
	tmdb:
	  request_delay: 500ms
	  request_timeout: 5s
	  rate_limit: 20
	  rate_burst: 5
	logging:
	  level: debug
	  format: console

# Validation

Validate() reports every invalid field at once (errors.Join), using the
environment variable names in messages.
*/
package config
