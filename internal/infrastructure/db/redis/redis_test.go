package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
)

func TestConnect(t *testing.T) {
	mr := miniredis.RunT(t)

	client, err := Connect(context.Background(), Config{Addr: mr.Addr()})
	if err != nil {
		t.Fatalf("Connect: %v", err)
	}
	defer client.Close()

	store := NewSessionStore(client)
	now := time.Now().UTC().Truncate(time.Second)
	if err := store.Put(context.Background(), "digest", testSession(now)); err != nil {
		t.Fatalf("Put through connected client: %v", err)
	}
	if !mr.Exists(sessionKeyPrefix + "digest") {
		t.Fatalf("expected session key in redis")
	}
}

func TestConnect_Unreachable(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	if _, err := Connect(context.Background(), Config{Addr: addr, Timeout: 200 * time.Millisecond}); err == nil {
		t.Fatalf("expected an error for an unreachable server")
	}
}
