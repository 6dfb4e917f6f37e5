package store

import (
	"context"
	"testing"
)

func TestConnectRequiresDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")

	pool, err := Connect(context.Background())
	if err == nil {
		pool.Close()
		t.Fatal("Expected error when DATABASE_URL is unset")
	}
	if pool != nil {
		t.Error("Expected nil pool on missing DATABASE_URL")
	}
}

func TestConnectRejectsMalformedURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "not a connection string %%")

	if _, err := Connect(context.Background()); err == nil {
		t.Error("Expected error for malformed DATABASE_URL")
	}
}
