// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package cache

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestMemorySetGet(t *testing.T) {
	c := NewMemory(time.Minute)
	defer func() { _ = c.Close() }()
	ctx := context.Background()

	if err := c.Set(ctx, "k", []byte("v"), 0); err != nil {
		t.Fatalf("Set: %v", err)
	}
	got, err := c.Get(ctx, "k")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if string(got) != "v" {
		t.Errorf("got %q, want %q", got, "v")
	}
}

func TestMemoryMiss(t *testing.T) {
	c := NewMemory(time.Minute)
	defer func() { _ = c.Close() }()

	_, err := c.Get(context.Background(), "absent")
	if !errors.Is(err, ErrMiss) {
		t.Errorf("got %v, want ErrMiss", err)
	}
}

func TestMemoryExpiry(t *testing.T) {
	c := NewMemory(time.Minute)
	defer func() { _ = c.Close() }()
	ctx := context.Background()

	if err := c.Set(ctx, "k", []byte("v"), time.Millisecond); err != nil {
		t.Fatalf("Set: %v", err)
	}
	time.Sleep(5 * time.Millisecond)

	if _, err := c.Get(ctx, "k"); !errors.Is(err, ErrMiss) {
		t.Errorf("got %v, want ErrMiss after expiry", err)
	}
}

func TestMemoryGetReturnsCopy(t *testing.T) {
	c := NewMemory(time.Minute)
	defer func() { _ = c.Close() }()
	ctx := context.Background()

	if err := c.Set(ctx, "k", []byte("abc"), 0); err != nil {
		t.Fatalf("Set: %v", err)
	}
	first, _ := c.Get(ctx, "k")
	first[0] = 'X'

	second, _ := c.Get(ctx, "k")
	if string(second) != "abc" {
		t.Errorf("cached value mutated: %q", second)
	}
}

func TestMemoryDeleteAndClear(t *testing.T) {
	c := NewMemory(time.Minute)
	defer func() { _ = c.Close() }()
	ctx := context.Background()

	_ = c.Set(ctx, "a", []byte("1"), 0)
	_ = c.Set(ctx, "b", []byte("2"), 0)

	if err := c.Delete(ctx, "a"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := c.Get(ctx, "a"); !errors.Is(err, ErrMiss) {
		t.Errorf("deleted key still present")
	}

	if err := c.Clear(ctx); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if _, err := c.Get(ctx, "b"); !errors.Is(err, ErrMiss) {
		t.Errorf("cleared key still present")
	}
}

func TestMemoryClosed(t *testing.T) {
	c := NewMemory(time.Minute)
	_ = c.Close()

	if err := c.Set(context.Background(), "k", []byte("v"), 0); !errors.Is(err, ErrClosed) {
		t.Errorf("got %v, want ErrClosed", err)
	}
}

func TestMemoryStats(t *testing.T) {
	c := NewMemory(time.Minute)
	defer func() { _ = c.Close() }()
	ctx := context.Background()

	_ = c.Set(ctx, "k", []byte("v"), 0)
	_, _ = c.Get(ctx, "k")
	_, _ = c.Get(ctx, "missing")

	s := c.Stats()
	if s.Hits != 1 || s.Misses != 1 || s.Sets != 1 || s.Items != 1 {
		t.Errorf("unexpected stats: %+v", s)
	}
}

func TestFactorySelectsMemory(t *testing.T) {
	c, err := New(Options{DefaultTTL: time.Minute})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer func() { _ = c.Close() }()

	if _, ok := c.(*Memory); !ok {
		t.Errorf("got %T, want *Memory", c)
	}
}

func TestJSONRoundTrip(t *testing.T) {
	c := NewMemory(time.Minute)
	defer func() { _ = c.Close() }()
	ctx := context.Background()

	type payload struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}
	in := payload{Name: "snapshot", Count: 3}
	if err := SetJSON(ctx, c, "p", in, 0); err != nil {
		t.Fatalf("SetJSON: %v", err)
	}

	var out payload
	if err := GetJSON(ctx, c, "p", &out); err != nil {
		t.Fatalf("GetJSON: %v", err)
	}
	if out != in {
		t.Errorf("got %+v, want %+v", out, in)
	}
}
