package cli

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"saif-rejection-agent/internal/common/errors"
	"saif-rejection-agent/internal/prompt"
	"saif-rejection-agent/internal/rejection"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type scriptedDriver struct {
	inputs []string
	text   string
	err    error
	out    io.Writer
}

func (s *scriptedDriver) Input(_ context.Context, _ prompt.InputConfig) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	val := s.inputs[0]
	s.inputs = s.inputs[1:]
	return val, nil
}

func (s *scriptedDriver) TextArea(_ context.Context, _ prompt.TextAreaConfig) (string, error) {
	return s.text, nil
}

func (s *scriptedDriver) Info(_ context.Context, msg string) error {
	_, err := io.WriteString(s.out, msg+"\n")
	return err
}

func writeTestConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("logging:\n  level: debug\n  format: json\n"), 0o600))
	return path
}

func runRoot(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := NewRoot()
	cmd.SetArgs(append([]string{"--config", writeTestConfig(t)}, args...))
	stdout := bytes.NewBuffer(nil)
	stderr := bytes.NewBuffer(nil)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRootCommand(t *testing.T) {
	cmd := NewRoot()
	require.NotNil(t, cmd)
	assert.Equal(t, "rejection-agent", cmd.Use)
	for _, name := range []string{"examples", "interactive", "list-reasons", "company", "contact", "founders", "description", "reason", "config", "log-level"} {
		assert.NotNil(t, cmd.Flags().Lookup(name), name)
	}
}

func TestRoot_Compose(t *testing.T) {
	stdout, stderr, err := runRoot(t,
		"--company", "Acme AI",
		"--contact", "founder@acme.ai",
		"--description", "AI productivity tool",
		"--reason", "not_ai_safety",
		"--reason", "too_conceptual",
	)
	require.NoError(t, err)

	app := rejection.NewApplication("Acme AI", "founder@acme.ai", "", "AI productivity tool", []string{"not_ai_safety", "too_conceptual"})
	assert.Equal(t, rejection.Compose(app)+"\n", stdout)
	assert.True(t, strings.HasPrefix(stdout, "Hi there,\n\n"))
	assert.Contains(t, stderr, "rejection email composed")
	assert.NotContains(t, stdout, "rejection email composed")
}

func TestRoot_ComposeUnknownReasonWarns(t *testing.T) {
	stdout, stderr, err := runRoot(t,
		"--company", "Acme AI",
		"--founders", "Jo",
		"--description", "building agents",
		"--reason", "made_up",
	)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Hi Jo,")
	assert.Contains(t, stdout, "While we appreciate your submission, Acme AI does not currently align with our investment criteria.")
	assert.Contains(t, stdout, "We wish you the best as you continue building the company.")
	assert.Contains(t, stderr, "unknown rejection reason")
}

func TestRoot_Examples(t *testing.T) {
	stdout, _, err := runRoot(t, "--examples", "--interactive")
	require.NoError(t, err)

	var expected bytes.Buffer
	require.NoError(t, rejection.WriteExamples(&expected))
	assert.Equal(t, expected.String(), stdout)
}

func TestRoot_ListReasons(t *testing.T) {
	stdout, _, err := runRoot(t, "--list-reasons", "--company", "Acme", "--description", "x")
	require.NoError(t, err)
	assert.Equal(t, rejection.Len(), strings.Count(stdout, "\n"))
	assert.True(t, strings.HasPrefix(stdout, "  1. not_ai_safety: "))
}

func TestRoot_HelpWhenIncomplete(t *testing.T) {
	tests := [][]string{
		{},
		{"--company", "Acme"},
		{"--description", "AI tool"},
	}
	for _, args := range tests {
		stdout, _, err := runRoot(t, args...)
		require.NoError(t, err)
		assert.Contains(t, stdout, "Usage:")
		assert.Contains(t, stdout, "--interactive")
	}
}

func TestRoot_Interactive(t *testing.T) {
	orig := newDriver
	defer func() { newDriver = orig }()
	newDriver = func(out io.Writer) prompt.Driver {
		return &scriptedDriver{
			inputs: []string{"Tova", "team@tova.ai", "Sam", "3"},
			text:   "Research copilot",
			out:    out,
		}
	}

	stdout, _, err := runRoot(t, "--interactive")
	require.NoError(t, err)

	assert.Contains(t, stdout, "SAIF Rejection Email Generator - Interactive Mode")
	assert.Contains(t, stdout, "Available rejection reasons:")
	assert.Contains(t, stdout, "GENERATED REJECTION EMAIL")

	app := rejection.NewApplication("Tova", "team@tova.ai", "Sam", "Research copilot", []string{"no_tech_cofounder"})
	assert.True(t, strings.HasSuffix(stdout, rejection.Compose(app)+"\n"))
}

func TestRoot_InteractiveAborted(t *testing.T) {
	orig := newDriver
	defer func() { newDriver = orig }()
	newDriver = func(out io.Writer) prompt.Driver {
		return &scriptedDriver{err: prompt.ErrAborted, out: out}
	}

	stdout, _, err := runRoot(t, "--interactive")
	require.Error(t, err)
	assert.Equal(t, string(errors.ErrCodePromptAborted), errors.ExtractCode(err))
	assert.NotContains(t, stdout, "GENERATED REJECTION EMAIL")
}

func TestRoot_InvalidLogLevel(t *testing.T) {
	_, _, err := runRoot(t, "--log-level", "chatty", "--examples")
	require.Error(t, err)
	assert.Equal(t, string(errors.ErrCodeConfigInvalid), errors.ExtractCode(err))
}

func TestRoot_MissingConfigFile(t *testing.T) {
	cmd := NewRoot()
	cmd.SetArgs([]string{"--config", filepath.Join(t.TempDir(), "nope.yaml"), "--examples"})
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)

	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, string(errors.ErrCodeConfigInvalid), errors.ExtractCode(err))
}

func TestRoot_RejectsPositionalArgs(t *testing.T) {
	_, _, err := runRoot(t, "extra")
	assert.Error(t, err)
}
