package moderation

import (
	"errors"
	"path/filepath"
	"sync"
	"testing"

	"mod-helper/model"

	"github.com/jmoiron/sqlx"
)

func newTestDB(t *testing.T) *sqlx.DB {
	t.Helper()
	db, err := Init(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestSetAndGetSpecialChannel(t *testing.T) {
	db := newTestDB(t)

	if err := SetSpecialChannel(db, "guild1", model.SpecialChannelAppeals, "chan1"); err != nil {
		t.Fatalf("SetSpecialChannel failed: %v", err)
	}

	got, err := GetSpecialChannel(db, "guild1", model.SpecialChannelAppeals)
	if err != nil {
		t.Fatalf("GetSpecialChannel failed: %v", err)
	}
	if got != "chan1" {
		t.Errorf("got channel %q, want %q", got, "chan1")
	}
}

func TestGetSpecialChannelNotFound(t *testing.T) {
	db := newTestDB(t)

	_, err := GetSpecialChannel(db, "guild1", model.SpecialChannelAppeals)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("got error %v, want ErrNotFound", err)
	}
}

func TestSetSpecialChannelUpdatesInPlace(t *testing.T) {
	db := newTestDB(t)

	if err := SetSpecialChannel(db, "guild1", model.SpecialChannelAppeals, "chan1"); err != nil {
		t.Fatalf("first SetSpecialChannel failed: %v", err)
	}
	if err := SetSpecialChannel(db, "guild1", model.SpecialChannelAppeals, "chan2"); err != nil {
		t.Fatalf("second SetSpecialChannel failed: %v", err)
	}

	got, err := GetSpecialChannel(db, "guild1", model.SpecialChannelAppeals)
	if err != nil {
		t.Fatalf("GetSpecialChannel failed: %v", err)
	}
	if got != "chan2" {
		t.Errorf("got channel %q, want %q", got, "chan2")
	}

	var count int
	if err := db.Get(&count, `SELECT COUNT(*) FROM special_channels WHERE guild_id = ? AND type = ?`, "guild1", string(model.SpecialChannelAppeals)); err != nil {
		t.Fatalf("count query failed: %v", err)
	}
	if count != 1 {
		t.Errorf("got %d rows for (guild1, appeals), want 1", count)
	}
}

func TestSpecialChannelTypesIndependent(t *testing.T) {
	db := newTestDB(t)

	if err := SetSpecialChannel(db, "guild1", model.SpecialChannelAppeals, "chan1"); err != nil {
		t.Fatalf("SetSpecialChannel failed: %v", err)
	}
	if err := SetSpecialChannel(db, "guild1", model.SpecialChannelWelcome, "chan2"); err != nil {
		t.Fatalf("SetSpecialChannel failed: %v", err)
	}

	if err := UnsetSpecialChannel(db, "guild1", model.SpecialChannelWelcome); err != nil {
		t.Fatalf("UnsetSpecialChannel failed: %v", err)
	}

	got, err := GetSpecialChannel(db, "guild1", model.SpecialChannelAppeals)
	if err != nil || got != "chan1" {
		t.Errorf("appeals binding lost after unrelated unset: channel=%q err=%v", got, err)
	}
	if _, err := GetSpecialChannel(db, "guild1", model.SpecialChannelWelcome); !errors.Is(err, ErrNotFound) {
		t.Errorf("got error %v after unset, want ErrNotFound", err)
	}
}

func TestUnsetSpecialChannelIdempotent(t *testing.T) {
	db := newTestDB(t)

	if err := UnsetSpecialChannel(db, "guild1", model.SpecialChannelAppeals); err != nil {
		t.Errorf("unset of missing binding failed: %v", err)
	}
}

func TestConcurrentSetSpecialChannel(t *testing.T) {
	db := newTestDB(t)

	var wg sync.WaitGroup
	for n := 0; n < 10; n++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := SetSpecialChannel(db, "guild1", model.SpecialChannelAppeals, "chan1"); err != nil {
				t.Errorf("concurrent SetSpecialChannel failed: %v", err)
			}
		}()
	}
	wg.Wait()

	var count int
	if err := db.Get(&count, `SELECT COUNT(*) FROM special_channels WHERE guild_id = ? AND type = ?`, "guild1", string(model.SpecialChannelAppeals)); err != nil {
		t.Fatalf("count query failed: %v", err)
	}
	if count != 1 {
		t.Errorf("got %d rows after concurrent sets, want 1", count)
	}
}

func TestConcurrentFindOrCreateMember(t *testing.T) {
	db := newTestDB(t)

	var wg sync.WaitGroup
	for n := 0; n < 10; n++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := FindOrCreateMember(db, "guild1", "user1"); err != nil {
				t.Errorf("concurrent FindOrCreateMember failed: %v", err)
			}
		}()
	}
	wg.Wait()

	var count int
	if err := db.Get(&count, `SELECT COUNT(*) FROM members WHERE guild_id = ? AND user_id = ?`, "guild1", "user1"); err != nil {
		t.Fatalf("count query failed: %v", err)
	}
	if count != 1 {
		t.Errorf("got %d member rows after concurrent creates, want 1", count)
	}
}

func TestAddWarningAndHistory(t *testing.T) {
	db := newTestDB(t)

	id1, err := AddWarningRecord(db, "guild1", "offender", "mod", "spam")
	if err != nil {
		t.Fatalf("AddWarningRecord failed: %v", err)
	}
	id2, err := AddWarningRecord(db, "guild1", "offender", "mod", "spam again")
	if err != nil {
		t.Fatalf("AddWarningRecord failed: %v", err)
	}
	if _, err := AddWarningRecord(db, "guild2", "offender", "mod", "other guild"); err != nil {
		t.Fatalf("AddWarningRecord failed: %v", err)
	}

	records, err := GetWarningsByMember(db, "guild1", "offender")
	if err != nil {
		t.Fatalf("GetWarningsByMember failed: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d warnings, want 2", len(records))
	}
	if records[0].WarningID != id1 || records[1].WarningID != id2 {
		t.Errorf("warnings out of creation order: got IDs %d, %d", records[0].WarningID, records[1].WarningID)
	}
	if records[0].Reason != "spam" || records[0].ModeratorUserID != "mod" {
		t.Errorf("unexpected first record: %+v", records[0])
	}
	if records[0].GuildID != "guild1" || records[0].OffenderUserID != "offender" {
		t.Errorf("unexpected identity on first record: %+v", records[0])
	}
}

func TestGetWarningByID(t *testing.T) {
	db := newTestDB(t)

	id, err := AddWarningRecord(db, "guild1", "offender", "mod", "spam")
	if err != nil {
		t.Fatalf("AddWarningRecord failed: %v", err)
	}

	detail, err := GetWarningByID(db, id)
	if err != nil {
		t.Fatalf("GetWarningByID failed: %v", err)
	}
	if detail.GuildID != "guild1" || detail.OffenderUserID != "offender" || detail.Reason != "spam" {
		t.Errorf("unexpected detail: %+v", detail)
	}

	if _, err := GetWarningByID(db, id+100); !errors.Is(err, ErrNotFound) {
		t.Errorf("got error %v for missing warning, want ErrNotFound", err)
	}
}

func TestRecordAppealOnce(t *testing.T) {
	db := newTestDB(t)

	id, err := AddWarningRecord(db, "guild1", "offender", "mod", "spam")
	if err != nil {
		t.Fatalf("AddWarningRecord failed: %v", err)
	}

	if err := RecordAppeal(db, id, "offender"); err != nil {
		t.Fatalf("first RecordAppeal failed: %v", err)
	}
	if err := RecordAppeal(db, id, "offender"); !errors.Is(err, ErrAlreadyAppealed) {
		t.Errorf("got error %v on second appeal, want ErrAlreadyAppealed", err)
	}

	var count int
	if err := db.Get(&count, `SELECT COUNT(*) FROM appeals WHERE warning_id = ?`, id); err != nil {
		t.Fatalf("count query failed: %v", err)
	}
	if count != 1 {
		t.Errorf("got %d appeal rows, want 1", count)
	}
}

func TestCountWarnings(t *testing.T) {
	db := newTestDB(t)

	if _, err := AddWarningRecord(db, "guild1", "offender", "mod", "spam"); err != nil {
		t.Fatalf("AddWarningRecord failed: %v", err)
	}
	if _, err := AddWarningRecord(db, "guild1", "other", "mod", "spam"); err != nil {
		t.Fatalf("AddWarningRecord failed: %v", err)
	}
	if _, err := AddWarningRecord(db, "guild2", "offender", "mod", "spam"); err != nil {
		t.Fatalf("AddWarningRecord failed: %v", err)
	}

	count, err := CountWarnings(db, "guild1")
	if err != nil {
		t.Fatalf("CountWarnings failed: %v", err)
	}
	if count != 2 {
		t.Errorf("got %d warnings for guild1, want 2", count)
	}
}
