package serverconfig

import (
	"errors"
	"path/filepath"
	"testing"

	"mod-helper/model"
	"mod-helper/utils/database/moderation"

	"github.com/jmoiron/sqlx"
)

func newTestDB(t *testing.T) *sqlx.DB {
	t.Helper()
	db, err := moderation.Init(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestSetChannelPermissionDenied(t *testing.T) {
	db := newTestDB(t)
	canSend := func(channelID string) (bool, error) { return false, nil }

	err := setChannel(db, canSend, "guild1", model.SpecialChannelAppeals, "chan1")
	if !errors.Is(err, ErrPermissionDenied) {
		t.Fatalf("got error %v, want ErrPermissionDenied", err)
	}

	// the store must not be touched on a denied set
	if _, err := moderation.GetSpecialChannel(db, "guild1", model.SpecialChannelAppeals); !errors.Is(err, moderation.ErrNotFound) {
		t.Errorf("binding written despite denied permission, got err %v", err)
	}
}

func TestSetChannelPermissionError(t *testing.T) {
	db := newTestDB(t)
	canSend := func(channelID string) (bool, error) { return false, errors.New("gateway down") }

	err := setChannel(db, canSend, "guild1", model.SpecialChannelAppeals, "chan1")
	if err == nil {
		t.Fatal("setChannel succeeded with failing permission check")
	}
	if errors.Is(err, ErrPermissionDenied) {
		t.Errorf("lookup failure reported as permission denial: %v", err)
	}
}

func TestSetChannelAllowed(t *testing.T) {
	db := newTestDB(t)
	canSend := func(channelID string) (bool, error) { return true, nil }

	if err := setChannel(db, canSend, "guild1", model.SpecialChannelAppeals, "chan1"); err != nil {
		t.Fatalf("setChannel failed: %v", err)
	}

	got, err := moderation.GetSpecialChannel(db, "guild1", model.SpecialChannelAppeals)
	if err != nil {
		t.Fatalf("GetSpecialChannel failed: %v", err)
	}
	if got != "chan1" {
		t.Errorf("got channel %q, want %q", got, "chan1")
	}
}
