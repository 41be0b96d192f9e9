package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestRuntimeSwap(t *testing.T) {
	rt := NewRuntime(&Config{
		Cache:     CacheConfig{Enabled: false},
		RateLimit: RateLimitConfig{MaxRequests: 10, WindowMinutes: 1},
	})

	if rt.Load().RateLimit.MaxRequests != 10 {
		t.Fatalf("expected initial max_requests 10, got %d", rt.Load().RateLimit.MaxRequests)
	}

	// 读路径与热更新并发执行，快照指针整体替换
	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 1000; i++ {
			cfg := rt.Load()
			if cfg.RateLimit.MaxRequests != 10 && cfg.RateLimit.MaxRequests != 20 {
				t.Errorf("observed torn config snapshot: %+v", cfg.RateLimit)
				return
			}
			_ = cfg.Cache.Enabled
		}
	}()

	rt.Swap(&Config{
		Cache:     CacheConfig{Enabled: true},
		RateLimit: RateLimitConfig{MaxRequests: 20, WindowMinutes: 1},
	})
	<-done

	after := rt.Load()
	if after.RateLimit.MaxRequests != 20 || !after.Cache.Enabled {
		t.Fatalf("expected swapped snapshot to be visible, got %+v", after)
	}
}

func TestLoadConfigDataDirError(t *testing.T) {
	dir := t.TempDir()

	// 用普通文件占住数据目录的父路径，MkdirAll 必然失败
	blocker := filepath.Join(dir, "blocker")
	if err := os.WriteFile(blocker, []byte("x"), 0644); err != nil {
		t.Fatalf("failed to create blocker file: %v", err)
	}

	yaml := "database:\n  path: " + filepath.Join(blocker, "sub", "habits.db") + "\n"
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	if _, err := LoadConfig(dir); err == nil {
		t.Fatal("expected error when the data directory cannot be created")
	}
}
