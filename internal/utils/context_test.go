package utils

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContextKeyString(t *testing.T) {
	assert.Equal(t, "userID", UserIDCtxKey.String())
}

func TestGetUserIDFromContext_Success(t *testing.T) {
	ctx := WithUserID(context.Background(), "user-1")

	id, ok := GetUserIDFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, "user-1", id)
}

func TestGetUserIDFromContext_Missing(t *testing.T) {
	id, ok := GetUserIDFromContext(context.Background())
	assert.False(t, ok)
	assert.Empty(t, id)
}

func TestGetUserIDFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), UserIDCtxKey, int64(42))

	_, ok := GetUserIDFromContext(ctx)
	assert.False(t, ok)
}

func TestGetUserIDFromContext_Empty(t *testing.T) {
	_, ok := GetUserIDFromContext(WithUserID(context.Background(), ""))
	assert.False(t, ok)
}

func TestGetUserIDFromContext_DifferentKey(t *testing.T) {
	ctx := context.WithValue(context.Background(), contextKey("other"), "user-1")

	_, ok := GetUserIDFromContext(ctx)
	assert.False(t, ok)
}
