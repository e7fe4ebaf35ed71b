package memcache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRefreshTokensSingleSlot(t *testing.T) {
	s := NewRefreshTokens()

	s.Set(1, "token-a", time.Hour)
	assert.Equal(t, "token-a", s.Get(1))

	// A second login overwrites the slot; the first token is evicted.
	s.Set(1, "token-b", time.Hour)
	assert.Equal(t, "token-b", s.Get(1))

	// Other users keep their own slot.
	s.Set(2, "token-c", time.Hour)
	assert.Equal(t, "token-b", s.Get(1))
	assert.Equal(t, "token-c", s.Get(2))

	s.Delete(1)
	assert.Equal(t, "", s.Get(1))
	assert.Equal(t, "token-c", s.Get(2))
}

func TestRefreshTokensExpiry(t *testing.T) {
	s := NewRefreshTokens()
	s.Set(1, "short-lived", -time.Second)
	assert.Equal(t, "", s.Get(1))
}
