package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReplyCacheMiss(t *testing.T) {
	service, err := NewReplyCacheService()
	require.NoError(t, err)

	reply, ok := service.Get(context.Background(), "never asked")
	assert.False(t, ok)
	assert.Empty(t, reply)
}

func TestReplyCacheIgnoresEmptyKeys(t *testing.T) {
	service, err := NewReplyCacheService()
	require.NoError(t, err)

	service.Set(context.Background(), "", "a reply")
	service.Set(context.Background(), "a query", "")

	_, ok := service.Get(context.Background(), "")
	assert.False(t, ok)
	_, ok = service.Get(context.Background(), "a query")
	assert.False(t, ok)
}
