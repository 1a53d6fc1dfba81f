package password

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerify(t *testing.T) {
	h := NewHasher(1000, 8)

	encoded, err := h.Hash("correct horse battery staple")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(encoded, "pbkdf2:sha256:1000$"))
	assert.NotContains(t, encoded, "correct horse battery staple")

	assert.True(t, Verify(encoded, "correct horse battery staple"))
	assert.False(t, Verify(encoded, "correct horse battery stapl"))
	assert.False(t, Verify(encoded, ""))
}

func TestHashUsesRandomSalt(t *testing.T) {
	h := NewHasher(1000, 8)

	a, err := h.Hash("same password")
	require.NoError(t, err)
	b, err := h.Hash("same password")
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
	assert.True(t, Verify(a, "same password"))
	assert.True(t, Verify(b, "same password"))

	// 8 字节盐，hex 编码后 16 字符
	parts := strings.SplitN(a, "$", 3)
	require.Len(t, parts, 3)
	assert.Len(t, parts[1], 16)
}

func TestVerifyRejectsMalformed(t *testing.T) {
	for _, encoded := range []string{
		"",
		"plaintext",
		"pbkdf2:sha256:1000$salt",
		"scrypt:1000$salt$deadbeef",
		"pbkdf2:sha256:zero$salt$deadbeef",
		"pbkdf2:sha256:1000$salt$not-hex",
	} {
		assert.False(t, Verify(encoded, "whatever"), "encoded=%q", encoded)
	}
}

func TestHasherDefaults(t *testing.T) {
	h := NewHasher(0, 0)
	assert.Equal(t, 600000, h.Iterations)
	assert.Equal(t, 8, h.SaltLength)
}
