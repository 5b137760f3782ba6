package kv_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/yeisme/docvault/pkg/internal/storage/kv"
)

func newMemory(t *testing.T) kv.KVStore {
	t.Helper()

	store, err := kv.NewKVStore(context.Background(), kv.KVTypeMemory, nil)
	if err != nil {
		t.Fatalf("create memory kv: %v", err)
	}

	return store
}

func TestMemoryKV_SetGetDelete(t *testing.T) {
	ctx := context.Background()
	store := newMemory(t)

	defer func() { _ = store.Close() }()

	if err := store.Set(ctx, "doc-meta", []byte("payload"), 0); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	got, err := store.Get(ctx, "doc-meta")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}

	if string(got) != "payload" {
		t.Errorf("Expected payload, got %q", got)
	}

	exists, err := store.Exists(ctx, "doc-meta")
	if err != nil || !exists {
		t.Errorf("Expected key to exist, got %v/%v", exists, err)
	}

	if err := store.Delete(ctx, "doc-meta"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	if _, err := store.Get(ctx, "doc-meta"); err == nil {
		t.Error("Expected miss after delete")
	}
}

func TestMemoryKV_TTLExpiry(t *testing.T) {
	ctx := context.Background()
	store := newMemory(t)

	defer func() { _ = store.Close() }()

	// 1 秒 TTL，写入即过期检查依赖秒级时间戳
	if err := store.Set(ctx, "ephemeral", []byte("x"), time.Second); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	if _, err := store.Get(ctx, "ephemeral"); err != nil {
		t.Fatalf("Expected hit before expiry: %v", err)
	}

	time.Sleep(1100 * time.Millisecond)

	if _, err := store.Get(ctx, "ephemeral"); err == nil {
		t.Error("Expected miss after ttl expiry")
	}

	if exists, _ := store.Exists(ctx, "ephemeral"); exists {
		t.Error("Expected Exists to report expired key as absent")
	}
}

func TestMemoryKV_Keys(t *testing.T) {
	ctx := context.Background()
	store := newMemory(t)

	defer func() { _ = store.Close() }()

	for i := range 3 {
		if err := store.Set(ctx, fmt.Sprintf("k-%d", i), []byte("v"), 0); err != nil {
			t.Fatalf("set failed: %v", err)
		}
	}

	keys, err := store.Keys(ctx, "*")
	if err != nil {
		t.Fatalf("keys failed: %v", err)
	}

	if len(keys) != 3 {
		t.Errorf("Expected 3 keys, got %d", len(keys))
	}
}

func TestNewKVStore_UnknownType(t *testing.T) {
	if _, err := kv.NewKVStore(context.Background(), kv.KVType("etcd"), nil); err == nil {
		t.Error("Expected error for unregistered kv type")
	}
}

func BenchmarkMemoryKV(b *testing.B) {
	store, err := kv.NewKVStore(context.Background(), kv.KVTypeMemory, nil)
	if err != nil {
		b.Fatalf("create memory kv: %v", err)
	}

	defer func() { _ = store.Close() }()

	ctx := context.Background()
	payload := make([]byte, 1024)

	b.ReportAllocs()

	for i := 0; b.Loop(); i++ {
		key := fmt.Sprintf("bench-%d", i)
		if err := store.Set(ctx, key, payload, 0); err != nil {
			b.Fatalf("set failed: %v", err)
		}

		if _, err := store.Get(ctx, key); err != nil {
			b.Fatalf("get failed: %v", err)
		}

		if err := store.Delete(ctx, key); err != nil {
			b.Fatalf("delete failed: %v", err)
		}
	}
}
