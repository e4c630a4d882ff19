package db

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisBlobStore_NilClient(t *testing.T) {
	blobs := &RedisBlobStore{}
	_, err := blobs.Load(context.Background(), DefaultStoreKey)
	assert.Error(t, err)
	assert.Error(t, blobs.Store(context.Background(), DefaultStoreKey, []byte("{}")))
}

// Integration test (requires running Redis)
func TestRedisBlobStore_Integration(t *testing.T) {
	addr := os.Getenv("REDIS_ADDRESS")
	if addr == "" {
		t.Skip("REDIS_ADDRESS not set, skipping integration test")
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	client, err := ConnectRedis(ctx, addr)
	if err != nil {
		t.Skipf("failed to connect: %v, skipping integration test", err)
		return
	}
	defer client.Close()

	key := "test_apex_" + time.Now().Format("150405.000")
	defer client.Del(context.Background(), key)

	blobs := &RedisBlobStore{Client: client}
	_, err = blobs.Load(ctx, key)
	assert.ErrorIs(t, err, ErrBlobNotFound)

	require.NoError(t, blobs.Store(ctx, key, []byte(`{"owners":[]}`)))
	got, err := blobs.Load(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, `{"owners":[]}`, string(got))
}
