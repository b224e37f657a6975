package utils

import (
	"context"
	"testing"
)

func TestGetUserIDFromContext_Found(t *testing.T) {
	ctx := context.WithValue(context.Background(), UserIDCtxKey, int64(42))

	userID, ok := GetUserIDFromContext(ctx)
	if !ok {
		t.Fatal("expected user id to be found in context")
	}
	if userID != 42 {
		t.Errorf("expected user id 42, got %d", userID)
	}
}

func TestGetUserIDFromContext_Missing(t *testing.T) {
	if _, ok := GetUserIDFromContext(context.Background()); ok {
		t.Error("expected missing user id, got ok=true")
	}
}

func TestGetUserIDFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), UserIDCtxKey, "42")

	if _, ok := GetUserIDFromContext(ctx); ok {
		t.Error("expected type mismatch to report ok=false")
	}
}
