package common

import (
	"encoding/hex"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMakeRandHexString_LengthAndHex(t *testing.T) {
	s, err := MakeRandHexString(ResetTokenBytes)
	require.NoError(t, err)
	assert.Len(t, s, ResetTokenBytes*2)

	_, err = hex.DecodeString(s)
	assert.NoError(t, err)
}

func TestMakeRandHexString_ZeroSize(t *testing.T) {
	s, err := MakeRandHexString(0)
	require.NoError(t, err)
	assert.Empty(t, s)
}

func TestMakeRandHexString_Distinct(t *testing.T) {
	a, err := MakeRandHexString(32)
	require.NoError(t, err)
	b, err := MakeRandHexString(32)
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestGenerateRandByteArray_Length(t *testing.T) {
	assert.Len(t, GenerateRandByteArray(24), 24)
}

func TestValidationf_WrapsErrValidation(t *testing.T) {
	err := Validationf("field %q is required", "email")
	assert.True(t, errors.Is(err, ErrValidation))
	assert.Equal(t, `validation error: field "email" is required`, err.Error())
}

func TestErrEmptyCart_IsValidation(t *testing.T) {
	assert.ErrorIs(t, ErrEmptyCart, ErrValidation)
}
