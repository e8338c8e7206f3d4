// Package config manages persistent user settings stored at
// ~/.postkit/config.yaml, overridable through POSTKIT_* environment
// variables. Its main consumer is site-root resolution: the directory
// under which _posts and _drafts live is always an explicit setting
// (flag, env, or config file), never inferred from the binary's install
// location.
package config
