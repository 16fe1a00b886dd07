package storage

import (
	"context"
	"testing"

	"github.com/Veraticus/sorteio/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddQuotas(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()
	createTestGroup(t, store, "A", 1000)

	added, err := store.AddQuotas(ctx, "A", []string{"070", "471", "590"})
	require.NoError(t, err)
	assert.Equal(t, 3, added)

	// "70" is the same quota as "070"
	added, err = store.AddQuotas(ctx, "A", []string{"70", "1000", "0"})
	require.NoError(t, err)
	assert.Equal(t, 2, added)

	quotas, err := store.ListQuotas(ctx, "A")
	require.NoError(t, err)
	assert.Equal(t, []string{"0", "70", "471", "590", "1000"}, quotas)
}

func TestAddQuotas_Errors(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()
	createTestGroup(t, store, "A", 1000)

	_, err := store.AddQuotas(ctx, "missing", []string{"1"})
	assert.ErrorIs(t, err, common.ErrNotFound)

	_, err = store.AddQuotas(ctx, "A", []string{"12", "abc"})
	assert.ErrorIs(t, err, ErrInvalidQuota)

	_, err = store.AddQuotas(ctx, "", []string{"1"})
	assert.ErrorIs(t, err, ErrEmptyString)

	// A rejected batch stores nothing
	quotas, err := store.ListQuotas(ctx, "A")
	require.NoError(t, err)
	assert.Empty(t, quotas)
}

func TestQuotas_IsolatedPerGroup(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()
	createTestGroup(t, store, "A", 1000)
	createTestGroup(t, store, "B", 4000)

	_, err := store.AddQuotas(ctx, "A", []string{"1"})
	require.NoError(t, err)
	_, err = store.AddQuotas(ctx, "B", []string{"2"})
	require.NoError(t, err)

	a, err := store.ListQuotas(ctx, "A")
	require.NoError(t, err)
	assert.Equal(t, []string{"1"}, a)

	_, err = store.ListQuotas(ctx, "missing")
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestRemoveQuota(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()
	createTestGroup(t, store, "A", 1000)
	_, err := store.AddQuotas(ctx, "A", []string{"70", "471"})
	require.NoError(t, err)

	require.NoError(t, store.RemoveQuota(ctx, "A", "070"))

	quotas, err := store.ListQuotas(ctx, "A")
	require.NoError(t, err)
	assert.Equal(t, []string{"471"}, quotas)

	assert.ErrorIs(t, store.RemoveQuota(ctx, "A", "70"), common.ErrNotFound)
	assert.ErrorIs(t, store.RemoveQuota(ctx, "A", "x"), ErrInvalidQuota)
}

func TestCanonicalQuota(t *testing.T) {
	tests := []struct {
		input   string
		want    string
		wantErr bool
	}{
		{input: "070", want: "70"},
		{input: " 471 ", want: "471"},
		{input: "000", want: "0"},
		{input: "", wantErr: true},
		{input: "-1", wantErr: true},
		{input: "1a", wantErr: true},
	}

	for _, tt := range tests {
		got, err := canonicalQuota(tt.input)
		if tt.wantErr {
			assert.ErrorIs(t, err, ErrInvalidQuota, "input %q", tt.input)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}
