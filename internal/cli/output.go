package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/thenoetrevino/dacite/internal/editor"
)

// OutputFormatter handles three output modes: JSON, quiet, and human-readable
type OutputFormatter struct {
	JSON  bool
	Quiet bool
}

// Success outputs successful operation result under key
func (f *OutputFormatter) Success(key string, data interface{}) error {
	if f.Quiet {
		// Extract ID if possible
		if idGetter, ok := data.(interface{ GetID() int }); ok {
			fmt.Printf("%d\n", idGetter.GetID())
			return nil
		}
	}

	if f.JSON {
		return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"success": true,
			key:       data,
		})
	}

	// Human-readable format
	fmt.Printf("%+v\n", data)
	return nil
}

// reportedError marks an error the formatter has already shown
type reportedError struct{ error }

func (e reportedError) Unwrap() error { return e.error }

// Reported reports whether err was already printed by an OutputFormatter
func Reported(err error) bool {
	var r reportedError
	return errors.As(err, &r)
}

// Fail reports err in the current output mode and returns it marked as reported,
// so commands can end with `return formatter.Fail(err)`.
func (f *OutputFormatter) Fail(err error) error {
	if fmtErr := f.ErrorWithSuggestion(ErrorCode(err), err.Error(), suggestionFor(err)); fmtErr != nil {
		return fmt.Errorf("%w (and failed to report it: %v)", err, fmtErr)
	}
	return reportedError{err}
}

// Error outputs error information
func (f *OutputFormatter) Error(code string, message string) error {
	return f.ErrorWithSuggestion(code, message, "")
}

// ErrorWithSuggestion outputs error information with an optional suggestion
func (f *OutputFormatter) ErrorWithSuggestion(code string, message string, suggestion string) error {
	if f.JSON {
		errData := map[string]interface{}{
			"code":    code,
			"message": message,
		}
		if suggestion != "" {
			errData["suggestion"] = suggestion
		}
		return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"success": false,
			"error":   errData,
		})
	}

	// Human-readable error
	fmt.Fprintf(os.Stderr, "Error: %s\n", message)
	if suggestion != "" {
		fmt.Fprintf(os.Stderr, "Suggestion: %s\n", suggestion)
	}
	return nil
}

func suggestionFor(err error) string {
	if errors.Is(err, editor.ErrNoChanges) {
		return "Pass at least one field flag, for example --name or --clear-ref"
	}
	switch ExitCode(err) {
	case ExitNotFound:
		return "List what exists with: dacite column list / dacite ref list"
	case ExitUsage:
		return "Run the command with --help for its flags"
	default:
		return ""
	}
}
