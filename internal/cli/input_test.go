package cli

import (
	"bufio"
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func rdr(s string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(s))
}

func TestGetSimpleText(t *testing.T) {
	var out bytes.Buffer
	got, err := GetSimpleText(rdr("hello world\n"), "Name?", &out)
	if err != nil || got != "hello world" {
		t.Fatalf("got %q, err=%v", got, err)
	}
	require.Equal(t, "Name?\n> ", out.String())
}

func TestGetSimpleTextEOF(t *testing.T) {
	var out bytes.Buffer
	got, err := GetSimpleText(rdr("lastline"), "Name?", &out)
	if err != nil || got != "lastline" {
		t.Fatalf("got %q, err=%v", got, err)
	}

	_, err = GetSimpleText(rdr(""), "Name?", &out)
	require.Error(t, err)
}

func TestGetTextWithDefault(t *testing.T) {
	var out bytes.Buffer

	got, err := GetTextWithDefault(rdr("\n"), "Contact", "555-0101", &out)
	require.NoError(t, err)
	require.Equal(t, "555-0101", got)
	require.Contains(t, out.String(), "Contact [555-0101]")

	got, err = GetTextWithDefault(rdr("  555-9999 \n"), "Contact", "555-0101", &out)
	require.NoError(t, err)
	require.Equal(t, "555-9999", got)
}

func stubTerminal(t *testing.T, terminal bool, pw func(int) ([]byte, error)) {
	t.Helper()
	oldTerm, oldRead := isTerminal, readPassword
	t.Cleanup(func() { isTerminal, readPassword = oldTerm, oldRead })

	isTerminal = func(int) bool { return terminal }
	if pw != nil {
		readPassword = pw
	}
}

func TestGetPassword_Terminal(t *testing.T) {
	stubTerminal(t, true, func(int) ([]byte, error) { return []byte("s3cret-pw"), nil })

	var out bytes.Buffer
	pw, err := GetPassword(rdr(""), &out)
	require.NoError(t, err)
	require.Equal(t, []byte("s3cret-pw"), pw)
	require.Equal(t, "Enter password: \n", out.String())
}

func TestGetPassword_Error(t *testing.T) {
	stubTerminal(t, true, func(int) ([]byte, error) { return nil, errors.New("boom") })

	var out bytes.Buffer
	_, err := GetPassword(rdr(""), &out)
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestGetPassword_PipedInput(t *testing.T) {
	stubTerminal(t, false, func(int) ([]byte, error) {
		t.Fatal("terminal read on piped input")
		return nil, nil
	})

	var out bytes.Buffer
	pw, err := GetPassword(rdr("12345678\n"), &out)
	require.NoError(t, err)
	require.Equal(t, []byte("12345678"), pw)
}
