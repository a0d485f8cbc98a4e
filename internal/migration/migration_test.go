package migration

import (
	"testing/fstest"
	"testing"

	"github.com/hashicorp/go-hclog"
)

func TestPendingFilesSelectsStrictlyGreaterAndAtMostBuild(t *testing.T) {
	files := fstest.MapFS{
		"1.0.0.sql": {Data: []byte("-- one")},
		"2.0.0.sql": {Data: []byte("-- two")},
		"3.0.0.sql": {Data: []byte("-- three, beyond build")},
		"README.md": {Data: []byte("not a migration")},
	}

	s := New(nil, files, "2.0.0", hclog.NewNullLogger())
	pending, err := s.pendingFiles("1.0.0")
	if err != nil {
		t.Fatalf("pendingFiles returned error: %v", err)
	}
	if len(pending) != 1 || pending[0] != "2.0.0.sql" {
		t.Fatalf("expected only 2.0.0.sql pending, got %v", pending)
	}
}

func TestPendingFilesSortsAscending(t *testing.T) {
	files := fstest.MapFS{
		"3.0.0.sql": {Data: []byte("-- three")},
		"1.0.0.sql": {Data: []byte("-- one")},
		"2.0.0.sql": {Data: []byte("-- two")},
	}

	s := New(nil, files, "3.0.0", hclog.NewNullLogger())
	pending, err := s.pendingFiles("0.0.0")
	if err != nil {
		t.Fatalf("pendingFiles returned error: %v", err)
	}
	want := []string{"1.0.0.sql", "2.0.0.sql", "3.0.0.sql"}
	for i, name := range want {
		if pending[i] != name {
			t.Fatalf("expected %v, got %v", want, pending)
		}
	}
}

func TestToSemverPrefixesBareVersions(t *testing.T) {
	if got := toSemver("1.2.3"); got != "v1.2.3" {
		t.Errorf("expected v1.2.3, got %s", got)
	}
	if got := toSemver("v1.2.3"); got != "v1.2.3" {
		t.Errorf("expected v1.2.3 unchanged, got %s", got)
	}
}
