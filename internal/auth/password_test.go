package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHasher_HashAndVerify(t *testing.T) {
	hasher := NewPasswordHasher()

	digest, err := hasher.Hash("pw123")
	require.NoError(t, err)
	assert.NotEqual(t, "pw123", digest)

	assert.True(t, hasher.Verify("pw123", digest))
	assert.False(t, hasher.Verify("pw124", digest))
	assert.False(t, hasher.Verify("", digest))
}

func TestPasswordHasher_SaltedDigestsDiffer(t *testing.T) {
	hasher := NewPasswordHasher()

	first, err := hasher.Hash("same password")
	require.NoError(t, err)
	second, err := hasher.Hash("same password")
	require.NoError(t, err)

	// Случайная соль: одинаковый вход дает разные дайджесты
	assert.NotEqual(t, first, second)
	assert.True(t, hasher.Verify("same password", first))
	assert.True(t, hasher.Verify("same password", second))
}

func TestPasswordHasher_MalformedDigest(t *testing.T) {
	hasher := NewPasswordHasher()

	tests := []struct {
		name   string
		digest string
	}{
		{name: "empty digest", digest: ""},
		{name: "not a bcrypt digest", digest: "plaintext"},
		{name: "truncated digest", digest: "$2a$10$abc"},
		{name: "wrong prefix", digest: "$9z$10$aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Битый дайджест не должен ронять процесс, только false
			assert.False(t, hasher.Verify("pw123", tt.digest))
		})
	}
}
