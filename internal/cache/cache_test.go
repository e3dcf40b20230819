package cache

import (
	"context"
	"testing"

	"resume-builder/internal/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestKeyStableAndSettingsSensitive(t *testing.T) {
	id := uuid.New()
	standard := domain.StandardSettings()

	assert.Equal(t, Key(id, standard), Key(id, standard))

	compact := domain.CompactSettings()
	assert.NotEqual(t, Key(id, standard), Key(id, compact))

	other := uuid.New()
	assert.NotEqual(t, Key(id, standard), Key(other, standard))
}

func TestMemoryCache(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	id := uuid.New()
	key := Key(id, domain.StandardSettings())

	_, ok := m.Get(ctx, key)
	assert.False(t, ok)

	m.Set(ctx, key, "<html>one</html>")
	got, ok := m.Get(ctx, key)
	assert.True(t, ok)
	assert.Equal(t, "<html>one</html>", got)
}

func TestMemoryInvalidateDropsAllVariants(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	id := uuid.New()
	other := uuid.New()

	m.Set(ctx, Key(id, domain.StandardSettings()), "a")
	m.Set(ctx, Key(id, domain.CompactSettings()), "b")
	m.Set(ctx, Key(other, domain.StandardSettings()), "c")

	assert.NoError(t, m.Invalidate(ctx, id))

	_, ok := m.Get(ctx, Key(id, domain.StandardSettings()))
	assert.False(t, ok)
	_, ok = m.Get(ctx, Key(id, domain.CompactSettings()))
	assert.False(t, ok)

	// other resume untouched
	got, ok := m.Get(ctx, Key(other, domain.StandardSettings()))
	assert.True(t, ok)
	assert.Equal(t, "c", got)
}
