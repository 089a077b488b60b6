package config

import (
	"github.com/go-i2p/logger"
)

// ConfigDefaults contains all default configuration values for emissary.
// This centralizes default values to make them easy to discover, document,
// and modify.
type ConfigDefaults struct {
	// Codec behavior defaults
	Codec CodecDefaults

	// Stream pump defaults
	IO IODefaults
}

// CodecDefaults contains default values for codec behavior
type CodecDefaults struct {
	// Padding emits trailing '=' on encode and requires it on decode
	// Default: true
	Padding bool

	// IgnoreWhitespace skips ASCII space, TAB, CR and LF in decoded input
	// Default: false (strict, any foreign character is an error)
	IgnoreWhitespace bool
}

// IODefaults contains default values for stream pumping
type IODefaults struct {
	// BufferSize is the chunk size in bytes for stream copies
	// Default: 32768 (32 KiB)
	BufferSize int
}

// MinBufferSize is the smallest usable pump buffer. Anything below one
// encoded group just burns syscalls.
const MinBufferSize = 4

// MaxBufferSize caps the pump buffer at 16 MiB so a config typo cannot
// balloon memory.
const MaxBufferSize = 16 * 1024 * 1024

// Defaults returns a ConfigDefaults instance with all default values set.
// This is the single source of truth for all configuration defaults.
func Defaults() ConfigDefaults {
	return ConfigDefaults{
		Codec: CodecDefaults{
			Padding:          true,
			IgnoreWhitespace: false,
		},
		IO: IODefaults{
			BufferSize: 32768,
		},
	}
}

// Validate checks if the provided configuration values are reasonable.
// Returns an error describing the first invalid value found.
func Validate(cfg ConfigDefaults) error {
	log.WithFields(logger.Fields{
		"at":     "ValidateConfigDefaults",
		"reason": "verification_requested",
	}).Debug("validating configuration defaults")

	if err := validateIO(cfg.IO); err != nil {
		log.WithError(err).Error("Configuration validation failed")
		return err
	}
	log.Debug("all configuration validations passed successfully")
	return nil
}

// validateIO validates stream pump configuration settings.
func validateIO(io IODefaults) error {
	if io.BufferSize < MinBufferSize {
		log.WithField("buffer_size", io.BufferSize).Error("Invalid io configuration")
		return newValidationError("IO.BufferSize must be at least 4 bytes")
	}
	if io.BufferSize > MaxBufferSize {
		log.WithField("buffer_size", io.BufferSize).Error("Invalid io configuration")
		return newValidationError("IO.BufferSize must be at most 16777216 bytes")
	}
	return nil
}

// validationError is returned when configuration validation fails
type validationError struct {
	message string
}

func newValidationError(message string) error {
	return &validationError{message: message}
}

func (e *validationError) Error() string {
	return "configuration validation failed: " + e.message
}
