package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	hash, err := HashPassword("sw0rdf1sh", bcrypt.MinCost)

	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "sw0rdf1sh", hash)
	assert.True(t, CheckPassword("sw0rdf1sh", hash))
	assert.False(t, CheckPassword("wrong-password", hash))
}

func TestHashPassword_SaltedPerCall(t *testing.T) {
	first, err := HashPassword("sw0rdf1sh", bcrypt.MinCost)
	require.NoError(t, err)

	second, err := HashPassword("sw0rdf1sh", bcrypt.MinCost)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestHashPassword_CostOutOfRangeFallsBack(t *testing.T) {
	hash, err := HashPassword("sw0rdf1sh", 9000)

	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.DefaultCost, cost)
}

func TestCheckPassword_MalformedHash(t *testing.T) {
	assert.False(t, CheckPassword("sw0rdf1sh", "not-a-bcrypt-hash"))
	assert.False(t, CheckPassword("sw0rdf1sh", ""))
}
