package schema

import (
	"context"
	"strings"
	"testing"
)

func TestFlagKey(t *testing.T) {
	key := FlagKey()
	if !strings.HasPrefix(key, "schema_migrated_v") {
		t.Errorf("Unexpected flag key %q", key)
	}
	if !strings.HasSuffix(key, "3") {
		t.Errorf("Flag key should carry the current version, got %q", key)
	}
}

func TestEnsure_HotPathSkipsEverything(t *testing.T) {
	// 热状态下 Ensure 不应触碰 db/redis：两者为 nil 也必须安全返回
	g := &Guard{migrated: true}
	g.Ensure(context.Background())
}
