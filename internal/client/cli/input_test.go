package cli

import (
	"bufio"
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rdr(s string) *bufio.Reader { return bufio.NewReader(strings.NewReader(s)) }

func TestGetSimpleText(t *testing.T) {
	var w bytes.Buffer
	got, err := GetSimpleText(rdr("  hello \n"), "Say", &w)
	require.NoError(t, err)
	assert.Equal(t, "hello", got)
	assert.Equal(t, "Say\n> ", w.String())

	got, err = GetSimpleText(rdr("tail"), "Say", &w)
	require.NoError(t, err)
	assert.Equal(t, "tail", got)

	_, err = GetSimpleText(rdr(""), "Say", &w)
	assert.Error(t, err)
}

func TestGetPassword(t *testing.T) {
	orig := readPassword
	t.Cleanup(func() { readPassword = orig })

	readPassword = func(int) ([]byte, error) { return []byte("s3cret!!"), nil }
	var w bytes.Buffer
	pw, err := GetPassword("Enter password", &w)
	require.NoError(t, err)
	assert.Equal(t, "s3cret!!", pw)
	assert.Equal(t, "Enter password: \n", w.String())

	readPassword = func(int) ([]byte, error) { return nil, errors.New("no tty") }
	_, err = GetPassword("Enter password", &w)
	assert.EqualError(t, err, "no tty")
}

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "45.00 USD", formatMoney(4500, "USD"))
	assert.Equal(t, "0.05", formatMoney(5, ""))
	assert.Equal(t, "-1.99 BRL", formatMoney(-199, "BRL"))
}
