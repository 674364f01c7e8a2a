package pkg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTGenerateAndParse(t *testing.T) {
	m := NewJWTManager("access-secret", "refresh-secret")

	pair, err := m.GeneratePair(2, "volunteer")
	require.NoError(t, err)
	require.NotEmpty(t, pair.AccessToken)
	require.NotEmpty(t, pair.RefreshToken)

	claims, err := m.ParseAccess(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, uint64(2), claims.UserID)
	assert.Equal(t, "volunteer", claims.Role)
}

func TestJWTParseAccess_RejectsRefreshToken(t *testing.T) {
	m := NewJWTManager("access-secret", "refresh-secret")

	pair, err := m.GeneratePair(2, "volunteer")
	require.NoError(t, err)

	// el refresh va firmado con otro secreto
	_, err = m.ParseAccess(pair.RefreshToken)
	assert.Error(t, err)
}

func TestJWTParseAccess_WrongSecret(t *testing.T) {
	m := NewJWTManager("access-secret", "refresh-secret")
	other := NewJWTManager("otro-secreto", "refresh-secret")

	pair, err := m.GeneratePair(1, "admin")
	require.NoError(t, err)

	_, err = other.ParseAccess(pair.AccessToken)
	assert.Error(t, err)
}

func TestJWTRefresh(t *testing.T) {
	m := NewJWTManager("access-secret", "refresh-secret")

	pair, err := m.GeneratePair(1, "admin")
	require.NoError(t, err)

	renewed, err := m.Refresh(pair.RefreshToken)
	require.NoError(t, err)

	claims, err := m.ParseAccess(renewed.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), claims.UserID)
	assert.Equal(t, "admin", claims.Role)
}

func TestJWTRefresh_RejectsAccessToken(t *testing.T) {
	m := NewJWTManager("access-secret", "refresh-secret")

	pair, err := m.GeneratePair(1, "admin")
	require.NoError(t, err)

	_, err = m.Refresh(pair.AccessToken)
	assert.Error(t, err)
}
