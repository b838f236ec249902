package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

// GetFormatter builds the output formatter from the --json and --quiet flags.
// Commands without a --quiet flag get Quiet false.
func GetFormatter(cmd *cobra.Command) *OutputFormatter {
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")
	return &OutputFormatter{JSON: jsonOutput, Quiet: quietMode}
}

// AddOutputFlags registers the agent-friendly output flags
func AddOutputFlags(cmd *cobra.Command, quiet bool) {
	cmd.Flags().Bool("json", false, "Output in JSON format")
	if quiet {
		cmd.Flags().Bool("quiet", false, "Minimal output (IDs only)")
	}
}

// ParseID parses a positional ID argument
func ParseID(arg string, what string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil || id <= 0 {
		return 0, &UsageError{Err: fmt.Errorf("invalid %s ID %q", what, arg)}
	}
	return id, nil
}
