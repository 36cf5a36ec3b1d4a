package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRun(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		code     int
		stdout   string
		inStderr string
	}{
		{"Plain", []string{"10"}, 0, "The 10-th Fibonacci number is 55\n", ""},
		{"FlagAfterN", []string{"10", "-v"}, 0, "The 10-th Fibonacci number is 55\n", "Script ends here"},
		{"FlagBeforeN", []string{"-v", "10"}, 0, "The 10-th Fibonacci number is 55\n", "Script ends here"},
		{"LongVeryVerbose", []string{"6", "--very-verbose"}, 0, "The 6-th Fibonacci number is 8\n", "Starting crazy calculations"},
		{"LongVerbose", []string{"--verbose", "1"}, 0, "The 1-th Fibonacci number is 1\n", "level=INFO"},
		{"AfterDoubleDash", []string{"-v", "--", "2"}, 0, "The 2-th Fibonacci number is 1\n", ""},
		{"Missing", nil, 2, "", "Usage: fibonacci"},
		{"TooMany", []string{"1", "2"}, 2, "", "Usage: fibonacci"},
		{"NotANumber", []string{"ten"}, 2, "", "invalid argument"},
		{"UnknownFlag", []string{"10", "-x"}, 2, "", "flag provided but not defined"},
		{"Zero", []string{"0"}, 1, "", "n must be positive"},
		{"Overflow", []string{"94"}, 1, "", "overflows uint64"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer

			code := run(tt.args, &stdout, &stderr)

			assert.Equal(t, tt.code, code, stderr.String())
			assert.Equal(t, tt.stdout, stdout.String())
			assert.Contains(t, stderr.String(), tt.inStderr)
		})
	}
}

func TestRunQuietByDefault(t *testing.T) {
	var stdout, stderr bytes.Buffer

	assert.Equal(t, 0, run([]string{"5"}, &stdout, &stderr))
	assert.Empty(t, stderr.String())
}
