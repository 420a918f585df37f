package cache

import (
	"context"
	"testing"
	"time"
)

func TestFileCacheRoundTrip(t *testing.T) {
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	defer c.Close()
	ctx := context.Background()

	if _, ok, err := c.Get(ctx, "missing"); err != nil || ok {
		t.Fatalf("Get(missing) = ok %v, err %v", ok, err)
	}

	want := []byte("<svg/>")
	if err := c.Set(ctx, "doc", want, 0); err != nil {
		t.Fatalf("Set: %v", err)
	}
	got, ok, err := c.Get(ctx, "doc")
	if err != nil || !ok {
		t.Fatalf("Get = ok %v, err %v", ok, err)
	}
	if string(got) != string(want) {
		t.Errorf("Get = %q, want %q", got, want)
	}

	if err := c.Delete(ctx, "doc"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, ok, _ := c.Get(ctx, "doc"); ok {
		t.Error("entry survived Delete")
	}
	if err := c.Delete(ctx, "doc"); err != nil {
		t.Errorf("deleting a missing key errored: %v", err)
	}
}

func TestFileCacheExpiration(t *testing.T) {
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	ctx := context.Background()

	if err := c.Set(ctx, "short", []byte("x"), time.Nanosecond); err != nil {
		t.Fatalf("Set: %v", err)
	}
	time.Sleep(10 * time.Millisecond)
	if _, ok, _ := c.Get(ctx, "short"); ok {
		t.Error("expired entry was served")
	}

	if err := c.Set(ctx, "long", []byte("y"), time.Hour); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if _, ok, _ := c.Get(ctx, "long"); !ok {
		t.Error("unexpired entry was dropped")
	}
}

func TestNullCacheNeverStores(t *testing.T) {
	c := NewNullCache()
	ctx := context.Background()

	if err := c.Set(ctx, "k", []byte("v"), 0); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if _, ok, err := c.Get(ctx, "k"); ok || err != nil {
		t.Errorf("Get = ok %v, err %v, want miss", ok, err)
	}
}

func TestArtifactKey(t *testing.T) {
	scene := []byte("[[layer]]\nkind = \"points\"\n")
	png := ArtifactOpts{Format: "png", Scale: 2}

	if ArtifactKey(scene, png) != ArtifactKey(scene, png) {
		t.Error("key is not deterministic")
	}
	if ArtifactKey(scene, png) == ArtifactKey(scene, ArtifactOpts{Format: "pdf"}) {
		t.Error("different formats share a key")
	}
	if ArtifactKey(scene, png) == ArtifactKey(scene, ArtifactOpts{Format: "png", Scale: 3}) {
		t.Error("different scales share a key")
	}
	if ArtifactKey(scene, png) == ArtifactKey([]byte("other"), png) {
		t.Error("different scenes share a key")
	}
}
