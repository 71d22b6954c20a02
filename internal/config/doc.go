// Package config provides the startup configuration (endpoints, timeouts,
// User-Agent, logging) and the per-run user settings.
package config
