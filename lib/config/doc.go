// Package config provides configuration management for the emissary codec
// tool.
//
// Settings resolve in three layers: built-in defaults (see Defaults), the
// YAML config file, and explicit command-line flags, each layer overriding
// the one before it. The config file lives at $HOME/.emissary/config.yaml
// and is created with the defaults on first run; an alternative path can be
// supplied through the --config flag, in which case the file must already
// exist.
//
// Keys:
//   - codec.padding: emit and require trailing '=' on base64 text (default true)
//   - codec.ignore_whitespace: skip ASCII whitespace in decoded input (default false)
//   - io.buffer_size: chunk size in bytes for stream copies (default 32768)
package config
