package cli

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetSimpleText(t *testing.T) {
	t.Run("trims the line", func(t *testing.T) {
		var out bytes.Buffer
		r := bufio.NewReader(strings.NewReader("  hello  \n"))
		got, err := GetSimpleText(r, "Say something", &out)
		require.NoError(t, err)
		require.Equal(t, "hello", got)
		require.Contains(t, out.String(), "Say something")
	})

	t.Run("partial line at EOF is returned", func(t *testing.T) {
		var out bytes.Buffer
		r := bufio.NewReader(strings.NewReader("no newline"))
		got, err := GetSimpleText(r, "Say something", &out)
		require.NoError(t, err)
		require.Equal(t, "no newline", got)
	})

	t.Run("empty input at EOF is an error", func(t *testing.T) {
		var out bytes.Buffer
		r := bufio.NewReader(strings.NewReader(""))
		_, err := GetSimpleText(r, "Say something", &out)
		require.Error(t, err)
	})
}

func TestGetPassword(t *testing.T) {
	orig := readPassword
	readPassword = func(_ int) ([]byte, error) { return []byte("s3cret"), nil }
	defer func() { readPassword = orig }()

	var out bytes.Buffer
	pw, err := GetPassword(&out)
	require.NoError(t, err)
	require.Equal(t, []byte("s3cret"), pw)
	require.Contains(t, out.String(), "Enter password")
}

func TestConfirm(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{input: "y\n", want: true},
		{input: "Y\n", want: true},
		{input: "yes\n", want: true},
		{input: "YES\n", want: true},
		{input: "n\n", want: false},
		{input: "no\n", want: false},
		{input: "\n", want: false},
		{input: "whatever\n", want: false},
		{input: "", want: false},
	}

	for _, tt := range tests {
		var out bytes.Buffer
		r := bufio.NewReader(strings.NewReader(tt.input))
		require.Equal(t, tt.want, Confirm(r, "Sure?", &out), "input %q", tt.input)
	}
}

func TestGetYesNo(t *testing.T) {
	tests := []struct {
		name  string
		input string
		def   bool
		want  bool
	}{
		{name: "empty picks default true", input: "\n", def: true, want: true},
		{name: "empty picks default false", input: "\n", def: false, want: false},
		{name: "explicit yes", input: "y\n", def: false, want: true},
		{name: "explicit no overrides default", input: "n\n", def: true, want: false},
		{name: "garbage means no", input: "maybe\n", def: true, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			r := bufio.NewReader(strings.NewReader(tt.input))
			got, err := GetYesNo(r, "Make it public?", tt.def, &out)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}
