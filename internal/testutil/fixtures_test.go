package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emtp-protocol/emtp/internal/keyring"
)

func TestTestKeyActiveAtRefTime(t *testing.T) {
	active, err := keyring.ActiveKeys(Manifest(), RefTime)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, TestKID, active[0].KID)
}

func TestTestSecretIsolated(t *testing.T) {
	a := TestSecret()
	a[0] = 0xff
	assert.EqualValues(t, 0x0b, TestSecret()[0])
}
