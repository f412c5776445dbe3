// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-campus-blog/models"
)

func TestContextKeyString(t *testing.T) {
	key := contextKey("testKey")
	if key.String() != "testKey" {
		t.Errorf("expected 'testKey', got '%s'", key.String())
	}
}

func TestUserFromContext_Success(t *testing.T) {
	user := models.User{ID: "u-1", Role: models.Role{IsAdmin: true}}
	ctx := WithUser(context.Background(), user)

	got, ok := UserFromContext(ctx)
	if !ok {
		t.Fatal("expected ok=true, got false")
	}
	if got.ID != "u-1" || !got.Role.IsAdmin {
		t.Errorf("unexpected user %+v", got)
	}

	id, ok := GetUserIDFromContext(ctx)
	if !ok || id != "u-1" {
		t.Errorf("expected id u-1, got %q (%v)", id, ok)
	}
}

func TestUserFromContext_Missing(t *testing.T) {
	if _, ok := UserFromContext(context.Background()); ok {
		t.Fatal("expected ok=false, got true")
	}
	if _, ok := GetUserIDFromContext(context.Background()); ok {
		t.Fatal("expected ok=false, got true")
	}
}

func TestUserFromContext_ForeignKeyIgnored(t *testing.T) {
	ctx := context.WithValue(context.Background(), contextKey("other"), models.User{ID: "x"})
	if _, ok := UserFromContext(ctx); ok {
		t.Fatal("expected ok=false for different key, got true")
	}
}

func TestGetUserIDFromContext_EmptyID(t *testing.T) {
	ctx := WithUser(context.Background(), models.User{})
	if _, ok := GetUserIDFromContext(ctx); ok {
		t.Fatal("expected ok=false for empty id, got true")
	}
}

func TestUUIDGenerator_Generate(t *testing.T) {
	g := NewUUIDGenerator()
	a, b := g.Generate(), g.Generate()
	if a == b {
		t.Fatal("expected distinct ids")
	}
	if !IsUUID(a) {
		t.Errorf("expected %q to be a UUID", a)
	}
	if IsUUID("not-a-uuid") {
		t.Error("expected non-UUID to be rejected")
	}
}
