// Package config loads and validates application configuration from
// environment variables. All values are read once at process start;
// missing credentials or signing secrets surface as load errors and
// abort startup.
package config
