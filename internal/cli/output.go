package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// Exit codes for CLI commands.
const (
	ExitSuccess      = 0 // Successful execution
	ExitFailure      = 1 // Processing failure (unparseable input, empty batch)
	ExitCommandError = 2 // Command error (invalid paths, bad flags)
)

// CLI error codes.
const (
	ErrCodeNotFound = "E_NOT_FOUND"
	ErrCodeParse    = "E_PARSE"
	ErrCodeProfile  = "E_PROFILE"
	ErrCodeWrite    = "E_WRITE"
)

// ExitError carries a specific exit code out of a command.
type ExitError struct {
	Code    int
	Message string
	Err     error
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// WrapExitError wraps an existing error with an exit code.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode extracts the exit code from an error. Returns ExitFailure
// if the error is not an ExitError.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}

// OutputFormatter handles JSON vs text output for CLI commands.
// Verbose diagnostics go to ErrWriter so JSON on stdout stays parseable.
type OutputFormatter struct {
	Format    string
	Writer    io.Writer
	ErrWriter io.Writer
	Verbose   bool
}

// CLIResponse is the standard JSON envelope for CLI output.
type CLIResponse struct {
	Status string      `json:"status"`          // "ok" or "error"
	Data   interface{} `json:"data,omitempty"`  // success payload
	Error  *CLIError   `json:"error,omitempty"` // error details
}

// CLIError is the error structure for CLI responses.
type CLIError struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

// JSON writes data inside the standard success envelope.
func (f *OutputFormatter) JSON(data interface{}) error {
	enc := json.NewEncoder(f.Writer)
	enc.SetIndent("", "  ")
	return enc.Encode(CLIResponse{Status: "ok", Data: data})
}

// Text writes a plain line to the output writer.
func (f *OutputFormatter) Text(format string, args ...interface{}) {
	fmt.Fprintf(f.Writer, format+"\n", args...)
}

// Error reports an error in the configured format and returns an
// ExitError carrying the given exit code.
func (f *OutputFormatter) Error(exitCode int, code, message string, err error) error {
	if f.Format == "json" {
		msg := message
		if err != nil {
			msg = fmt.Sprintf("%s: %v", message, err)
		}
		_ = json.NewEncoder(f.Writer).Encode(CLIResponse{
			Status: "error",
			Error:  &CLIError{Code: code, Message: msg},
		})
	} else {
		if err != nil {
			fmt.Fprintf(f.ErrWriter, "error: %s: %v\n", message, err)
		} else {
			fmt.Fprintf(f.ErrWriter, "error: %s\n", message)
		}
	}
	return WrapExitError(exitCode, message, err)
}

// VerboseLog writes a diagnostic line to ErrWriter when verbose is on.
func (f *OutputFormatter) VerboseLog(format string, args ...interface{}) {
	if f.Verbose {
		fmt.Fprintf(f.ErrWriter, format+"\n", args...)
	}
}

func newFormatter(opts *RootOptions, out, errOut io.Writer) *OutputFormatter {
	return &OutputFormatter{
		Format:    opts.Format,
		Writer:    out,
		ErrWriter: errOut,
		Verbose:   opts.Verbose,
	}
}
