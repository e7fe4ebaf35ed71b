package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dbm "tiffinbox/internal/models/db_models"
)

func countDefaults(t *testing.T, r AddressRepository, userID uint) int {
	t.Helper()
	addrs, err := r.ListByUser(context.Background(), userID)
	require.NoError(t, err)
	n := 0
	for _, a := range addrs {
		if a.IsDefault {
			n++
		}
	}
	return n
}

func TestAddressSingleDefaultInvariant(t *testing.T) {
	r := NewMemoryAddressRepository(NewMemorySequence())
	ctx := context.Background()

	first := &dbm.Address{UserID: 1, Label: "home", Line1: "A", IsDefault: true}
	require.NoError(t, r.Insert(ctx, first))
	second := &dbm.Address{UserID: 1, Label: "work", Line1: "B"}
	require.NoError(t, r.Insert(ctx, second))

	assert.Equal(t, 1, countDefaults(t, r, 1))

	// Promoting another address demotes the old default in the same step.
	require.NoError(t, r.SetDefault(ctx, second.ID, 1))
	assert.Equal(t, 1, countDefaults(t, r, 1))

	got, err := r.FindByIDAndUser(ctx, second.ID, 1)
	require.NoError(t, err)
	assert.True(t, got.IsDefault)

	old, err := r.FindByIDAndUser(ctx, first.ID, 1)
	require.NoError(t, err)
	assert.False(t, old.IsDefault)

	// Inserting a new default displaces the current one too.
	third := &dbm.Address{UserID: 1, Label: "pg", Line1: "C", IsDefault: true}
	require.NoError(t, r.Insert(ctx, third))
	assert.Equal(t, 1, countDefaults(t, r, 1))

	// Defaults are scoped per user.
	other := &dbm.Address{UserID: 2, Label: "home", Line1: "D", IsDefault: true}
	require.NoError(t, r.Insert(ctx, other))
	assert.Equal(t, 1, countDefaults(t, r, 1))
	assert.Equal(t, 1, countDefaults(t, r, 2))
}

func TestAddressSetDefaultUnknownID(t *testing.T) {
	r := NewMemoryAddressRepository(NewMemorySequence())
	err := r.SetDefault(context.Background(), 42, 1)
	assert.Error(t, err)
}
