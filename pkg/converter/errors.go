// --- START OF FINAL REVISED FILE pkg/converter/errors.go ---
package converter

import "errors"

// domainError is a sentinel that also matches ErrDomain under errors.Is.
type domainError struct {
	msg string
}

func (e *domainError) Error() string { return e.msg }

// Is reports ErrDomain as a match so every domain sentinel shares one kind.
func (e *domainError) Is(target error) bool { return target == ErrDomain }

// --- Exported Error Variables ---
// These errors represent specific categories of issues returned by Convert and
// ConvertBatch. Library users can check against these using errors.Is.

var (
	// ErrDomain is the single distinguished kind for errors raised by the conversion
	// core itself (missing input, unsupported format, unreadable package). Collaborators
	// show these as concise messages; anything else is an internal failure.
	ErrDomain = errors.New("sovereign doc error")

	// ErrNotFound indicates that the input path does not reference an existing regular file.
	// errors.Is(err, ErrDomain) is also true.
	ErrNotFound error = &domainError{msg: "input file does not exist"}

	// ErrFormat indicates an unsupported source extension, an unsupported destination
	// token, an unsupported (source, destination) route, or a package container that
	// cannot be opened or parsed.
	// errors.Is(err, ErrDomain) is also true.
	ErrFormat error = &domainError{msg: "format error"}

	// ErrReadFailed indicates a failure to read a text source from the filesystem
	// after validation succeeded. This is not a domain error.
	ErrReadFailed = errors.New("failed to read file")

	// ErrWriteFailed indicates a failure to write the converted content to the output file.
	// This might be due to permissions, disk space exhaustion, or other filesystem I/O errors.
	// This is not a domain error; collaborators report it as fatal.
	ErrWriteFailed = errors.New("failed to write output file")

	// ErrConfigValidation indicates that the provided Options failed validation checks
	// (e.g., an unknown report format, or a missing destination).
	ErrConfigValidation = errors.New("invalid configuration options provided")
)

// IsDomainError reports whether err was raised by the conversion core.
func IsDomainError(err error) bool {
	return errors.Is(err, ErrDomain)
}

// --- END OF FINAL REVISED FILE pkg/converter/errors.go ---
