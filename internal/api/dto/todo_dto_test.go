package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInputDateToStored(t *testing.T) {
	stored, err := InputDateToStored("2025-08-01")
	require.NoError(t, err)
	assert.Equal(t, "01/08/2025", stored)

	_, err = InputDateToStored("01/08/2025")
	assert.Error(t, err)

	_, err = InputDateToStored("2025-13-40")
	assert.Error(t, err)
}

func TestStoredDateToInput(t *testing.T) {
	input, err := StoredDateToInput("16/09/2023")
	require.NoError(t, err)
	assert.Equal(t, "2023-09-16", input)

	_, err = StoredDateToInput("2023-09-16")
	assert.Error(t, err)
}

func TestDateConversionRoundTrip(t *testing.T) {
	stored, err := InputDateToStored("2024-02-29")
	require.NoError(t, err)

	back, err := StoredDateToInput(stored)
	require.NoError(t, err)
	assert.Equal(t, "2024-02-29", back)
}
