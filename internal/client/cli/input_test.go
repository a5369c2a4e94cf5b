package cli

import (
	"bufio"
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/dmitrijs2005/cameportal/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rdr(s string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(s))
}

func TestGetSimpleText(t *testing.T) {
	var out bytes.Buffer
	got, err := GetSimpleText(rdr("  Club Norte \n"), "Name?", &out)
	require.NoError(t, err)
	assert.Equal(t, "Club Norte", got)
	assert.Equal(t, "Name?\n> ", out.String())
}

func TestGetSimpleTextEOF(t *testing.T) {
	var out bytes.Buffer
	got, err := GetSimpleText(rdr("lastline"), "Name?", &out)
	require.NoError(t, err)
	assert.Equal(t, "lastline", got)

	_, err = GetSimpleText(rdr(""), "Name?", &out)
	require.Error(t, err)
}

func TestGetPassword(t *testing.T) {
	old := readPassword
	defer func() { readPassword = old }()

	readPassword = func(int) ([]byte, error) { return []byte("pw"), nil }
	var out bytes.Buffer
	pw, err := GetPassword(&out, "Enter password")
	require.NoError(t, err)
	assert.Equal(t, []byte("pw"), pw)
	assert.Equal(t, "Enter password: \n", out.String())

	readPassword = func(int) ([]byte, error) { return nil, errors.New("boom") }
	_, err = GetPassword(&out, "Enter password")
	require.Error(t, err)
}

func TestGetNewPassword(t *testing.T) {
	var out bytes.Buffer

	stubPasswords(t, "secret", "secret")
	pw, err := GetNewPassword(&out)
	require.NoError(t, err)
	assert.Equal(t, "secret", string(pw))

	stubPasswords(t, "secret", "secreto")
	_, err = GetNewPassword(&out)
	require.ErrorIs(t, err, errPasswordMismatch)

	stubPasswords(t, "", "")
	_, err = GetNewPassword(&out)
	require.ErrorIs(t, err, common.ErrorValidation)
}

func TestConfirm(t *testing.T) {
	var out bytes.Buffer
	assert.True(t, Confirm(rdr("y\n"), "Sure?", &out))
	assert.True(t, Confirm(rdr("YES\n"), "Sure?", &out))
	assert.True(t, Confirm(rdr("si\n"), "Sure?", &out))
	assert.False(t, Confirm(rdr("\n"), "Sure?", &out))
	assert.False(t, Confirm(rdr("nope\n"), "Sure?", &out))
	assert.False(t, Confirm(rdr(""), "Sure?", &out))
	assert.Contains(t, out.String(), "Sure? [y/N]")
}
