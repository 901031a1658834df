package database

import (
	"testing"

	_ "github.com/mattn/go-sqlite3"
)

func openTestDB(t *testing.T) *DocumentDB {
	t.Helper()
	db, err := Open(":memory:")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestLoadMissingDocument(t *testing.T) {
	db := openTestDB(t)

	data, err := db.Load("absent")
	if err != nil {
		t.Fatal(err)
	}
	if data != nil {
		t.Errorf("want nil for missing document, got %q", data)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	db := openTestDB(t)

	doc := []byte(`{"seasons":[],"currentWeek":3}`)
	if err := db.Save("runschedule_seasons", doc); err != nil {
		t.Fatal(err)
	}

	got, err := db.Load("runschedule_seasons")
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != string(doc) {
		t.Errorf("loaded %q, want %q", got, doc)
	}
}

func TestSaveOverwrites(t *testing.T) {
	db := openTestDB(t)

	if err := db.Save("doc", []byte(`{"v":1}`)); err != nil {
		t.Fatal(err)
	}
	if err := db.Save("doc", []byte(`{"v":2}`)); err != nil {
		t.Fatal(err)
	}

	got, err := db.Load("doc")
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != `{"v":2}` {
		t.Errorf("loaded %q after overwrite", got)
	}
}

func TestDelete(t *testing.T) {
	db := openTestDB(t)

	if err := db.Save("doc", []byte(`{}`)); err != nil {
		t.Fatal(err)
	}
	if err := db.Delete("doc"); err != nil {
		t.Fatal(err)
	}

	got, err := db.Load("doc")
	if err != nil {
		t.Fatal(err)
	}
	if got != nil {
		t.Errorf("document survived delete: %q", got)
	}
}
