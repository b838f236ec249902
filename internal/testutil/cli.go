package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

// CaptureOutput returns what fn writes to stdout
func CaptureOutput(t *testing.T, fn func()) string {
	t.Helper()
	return capture(t, &os.Stdout, fn)
}

// CaptureStderr returns what fn writes to stderr, where human-readable
// command errors go
func CaptureStderr(t *testing.T, fn func()) string {
	t.Helper()
	return capture(t, &os.Stderr, fn)
}

func capture(t *testing.T, target **os.File, fn func()) string {
	t.Helper()

	r, w, err := os.Pipe()
	require.NoError(t, err, "failed to create pipe")

	original := *target
	*target = w
	defer func() { *target = original }()

	outC := make(chan string)
	go func() {
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, r)
		outC <- buf.String()
	}()

	fn()

	_ = w.Close()
	return <-outC
}

// ExecuteCommand runs cmd with args and returns its stdout. The returned error
// is the one main would map to an exit code.
func ExecuteCommand(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()
	return ExecuteCommandContext(t, context.Background(), cmd, args...)
}

// ExecuteCommandContext is ExecuteCommand with a caller-provided context
func ExecuteCommandContext(t *testing.T, ctx context.Context, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()

	// cobra falls back to os.Args when given nil
	if args == nil {
		args = []string{}
	}
	cmd.SetArgs(args)
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	var executeErr error
	output := CaptureOutput(t, func() {
		executeErr = cmd.ExecuteContext(ctx)
	})
	return output, executeErr
}

// EnvelopeError is the error object of a failed --json response
type EnvelopeError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	Suggestion string `json:"suggestion"`
}

// Envelope is the document printed by a command run with --json:
// {"success": bool, "error": {...}} or {"success": true, "<key>": payload}
type Envelope struct {
	Success bool
	Error   *EnvelopeError
	payload map[string]json.RawMessage
}

// ParseEnvelope decodes the --json output of a command
func ParseEnvelope(t *testing.T, output string) Envelope {
	t.Helper()

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal([]byte(output), &raw), "output is not JSON:\n%s", output)

	successRaw, ok := raw["success"]
	require.True(t, ok, "envelope has no success field:\n%s", output)

	env := Envelope{payload: raw}
	require.NoError(t, json.Unmarshal(successRaw, &env.Success))
	if errRaw, ok := raw["error"]; ok {
		env.Error = &EnvelopeError{}
		require.NoError(t, json.Unmarshal(errRaw, env.Error))
	}
	delete(env.payload, "success")
	delete(env.payload, "error")
	return env
}

// Decode unmarshals the payload stored under key into v
func (e Envelope) Decode(t *testing.T, key string, v any) {
	t.Helper()

	data, ok := e.payload[key]
	require.True(t, ok, "envelope has no %q payload", key)
	require.NoError(t, json.Unmarshal(data, v))
}
