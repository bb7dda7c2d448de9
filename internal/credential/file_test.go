package credential

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
)

func TestFileStorage_PersistsAcrossInstances(t *testing.T) {
	path := filepath.Join(t.TempDir(), "creds.json")
	log := zerolog.Nop()

	first := NewFileStorage(path, log)
	first.Set("token", "abc.def.ghi")
	first.Set("user", `{"id":"u1"}`)
	first.Remove("user")

	second := NewFileStorage(path, log)
	if v, ok := second.Get("token"); !ok || v != "abc.def.ghi" {
		t.Fatalf("expected token to survive reload, got %q ok=%v", v, ok)
	}
	if _, ok := second.Get("user"); ok {
		t.Fatalf("removed key must not survive reload")
	}
}

func TestFileStorage_CredentialFileModeIsPrivate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "creds.json")
	fs := NewFileStorage(path, zerolog.Nop())
	fs.Set("token", "abc.def.ghi")

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat credential file: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0o600 {
		t.Fatalf("expected 0600 permissions, got %o", perm)
	}
}

func TestFileStorage_CorruptFileStartsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "creds.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o600); err != nil {
		t.Fatalf("write corrupt file: %v", err)
	}

	fs := NewFileStorage(path, zerolog.Nop())
	if _, ok := fs.Get("token"); ok {
		t.Fatalf("corrupt file must read back as empty storage")
	}
}
