// Package config defines the application configuration structure and
// loading logic. Configuration comes from an optional YAML file and from
// environment variables with the SHOP_ prefix, the latter taking
// precedence. All values are validated before use.
package config
