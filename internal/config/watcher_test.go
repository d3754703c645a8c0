// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"testing"
	"time"
)

func TestWatcher_ReloadsGlobalOnWrite(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	SetGlobal(Default())

	w, err := NewWatcher(50 * time.Millisecond)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	if err := w.Watch(); err != nil {
		t.Fatalf("Watch: %v", err)
	}
	defer w.Close()

	cfg := Default()
	cfg.Backend.BaseURL = "http://changed.test/api/v1"
	if err := Save(cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}

	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if Global().Backend.BaseURL == "http://changed.test/api/v1" {
			return
		}
		time.Sleep(20 * time.Millisecond)
	}
	t.Fatalf("global config not reloaded; base url still %q", Global().Backend.BaseURL)
}

func TestWatcher_KeepsPreviousConfigOnBadWrite(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	good := Default()
	good.Backend.BaseURL = "http://keep.test/api/v1"
	SetGlobal(good)

	w, err := NewWatcher(50 * time.Millisecond)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	if err := w.Watch(); err != nil {
		t.Fatalf("Watch: %v", err)
	}
	defer w.Close()

	bad := Default()
	bad.Backend.BaseURL = "not a url"
	if err := Save(bad); err != nil {
		t.Fatalf("Save: %v", err)
	}

	// Give the watcher time to see the write and reject the reload.
	time.Sleep(300 * time.Millisecond)
	if got := Global().Backend.BaseURL; got != "http://keep.test/api/v1" {
		t.Fatalf("invalid write replaced the global config: %q", got)
	}
}
