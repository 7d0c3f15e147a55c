// Package config loads readmedocs settings from YAML.
//
// A config is named ("work" finds ./work.yaml, ./work.yml, then the same
// names under the user config directory's readmedocs folder) or given by
// path. Unknown keys are rejected so typos surface immediately.
//
// Precedence, lowest first: DefaultConfig, the config file, READMEDOCS_*
// environment variables, command-line flags. Only the first two are
// handled here; the CLI layers the rest.
package config
