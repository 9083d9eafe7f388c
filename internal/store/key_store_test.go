package store_test

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"modhub/internal/domain"
	"modhub/internal/store"
)

func sampleKey() domain.KeyMaterial {
	return domain.KeyMaterial{
		Scheme:       domain.EdwardsSeeded,
		Address:      "5GrwvaEF5zXb26Fz9rcQpDWS57CtERHpNehXCPcNoHGKutQY",
		PublicKey:    "d43593c715fdd31c61141abd04a99fd6822c8558854ccde39a5684e7a56da27d",
		PrivateKey:   strings.Repeat("ab", 64),
		BoxPublicKey: strings.Repeat("cd", 32),
	}
}

func TestKeyStore_SaveLoad_OK(t *testing.T) {
	home := t.TempDir()
	var ks domain.KeyStore = store.NewKeyFileStore(home)
	key := sampleKey()

	if err := ks.SaveKey("main", "pass", key); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := ks.LoadKey("main", "pass")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got != key {
		t.Fatalf("mismatch after load\nwant %+v\ngot  %+v", key, got)
	}

	pub, err := ks.LoadPublic("main")
	if err != nil {
		t.Fatalf("load public: %v", err)
	}
	if pub.PrivateKey != "" || pub.Address != key.Address {
		t.Fatalf("public view: %+v", pub)
	}

	raw, err := os.ReadFile(filepath.Join(home, "keys", "main.json"))
	if err != nil {
		t.Fatalf("read file: %v", err)
	}
	if strings.Contains(string(raw), key.PrivateKey) {
		t.Fatal("private key stored in clear")
	}
	info, err := os.Stat(filepath.Join(home, "keys", "main.json"))
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if info.Mode().Perm() != 0o600 {
		t.Fatalf("mode %v", info.Mode().Perm())
	}
}

func TestKeyStore_WrongPassphrase_Fails(t *testing.T) {
	ks := store.NewKeyFileStore(t.TempDir())
	if err := ks.SaveKey("main", "correct", sampleKey()); err != nil {
		t.Fatalf("save: %v", err)
	}
	if _, err := ks.LoadKey("main", "wrong"); !errors.Is(err, domain.ErrWrongPassphrase) {
		t.Fatalf("want ErrWrongPassphrase, got %v", err)
	}
}

func TestKeyStore_SealedBlobBoundToName(t *testing.T) {
	home := t.TempDir()
	ks := store.NewKeyFileStore(home)
	if err := ks.SaveKey("alpha", "pass", sampleKey()); err != nil {
		t.Fatalf("save: %v", err)
	}
	src := filepath.Join(home, "keys", "alpha.json")
	dst := filepath.Join(home, "keys", "beta.json")
	b, err := os.ReadFile(src)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if err := os.WriteFile(dst, b, 0o600); err != nil {
		t.Fatalf("copy: %v", err)
	}
	if _, err := ks.LoadKey("beta", "pass"); !errors.Is(err, domain.ErrWrongPassphrase) {
		t.Fatalf("copied blob: want ErrWrongPassphrase, got %v", err)
	}
}

func TestKeyStore_ListDelete(t *testing.T) {
	ks := store.NewKeyFileStore(t.TempDir())
	names, err := ks.ListKeys()
	if err != nil || len(names) != 0 {
		t.Fatalf("empty store: %v %v", names, err)
	}
	for _, n := range []string{"zeta", "alpha", "m-1"} {
		if err := ks.SaveKey(n, "pass", sampleKey()); err != nil {
			t.Fatalf("save %s: %v", n, err)
		}
	}
	names, err = ks.ListKeys()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if !reflect.DeepEqual(names, []string{"alpha", "m-1", "zeta"}) {
		t.Fatalf("names %v", names)
	}
	if err := ks.DeleteKey("m-1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := ks.DeleteKey("m-1"); !errors.Is(err, domain.ErrKeyNotFound) {
		t.Fatalf("second delete: want ErrKeyNotFound, got %v", err)
	}
	if _, err := ks.LoadKey("m-1", "pass"); !errors.Is(err, domain.ErrKeyNotFound) {
		t.Fatalf("load deleted: want ErrKeyNotFound, got %v", err)
	}
}

func TestKeyStore_Rejects(t *testing.T) {
	ks := store.NewKeyFileStore(t.TempDir())
	for _, name := range []string{"", "../escape", "a/b", ".hidden", strings.Repeat("x", 65)} {
		if err := ks.SaveKey(name, "pass", sampleKey()); !errors.Is(err, domain.ErrInvalidInput) {
			t.Fatalf("name %q: want ErrInvalidInput, got %v", name, err)
		}
	}
	if err := ks.SaveKey("ok", "", sampleKey()); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("empty passphrase: want ErrInvalidInput, got %v", err)
	}
	bad := sampleKey()
	bad.Scheme = "rsa"
	if err := ks.SaveKey("ok", "pass", bad); !errors.Is(err, domain.ErrUnsupportedScheme) {
		t.Fatalf("bad scheme: want ErrUnsupportedScheme, got %v", err)
	}
}

func TestKeyStore_RejectsEditedScryptParams(t *testing.T) {
	home := t.TempDir()
	ks := store.NewKeyFileStore(home)
	if err := ks.SaveKey("main", "pass", sampleKey()); err != nil {
		t.Fatalf("save: %v", err)
	}
	path := filepath.Join(home, "keys", "main.json")
	orig, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}

	edits := []struct {
		name  string
		field string
		value int
	}{
		{"huge N", "scrypt_N", 1 << 30},
		{"N not a power of two", "scrypt_N", 3 << 10},
		{"huge r", "scrypt_r", 1 << 20},
		{"huge p", "scrypt_p", 1 << 20},
		{"zero p", "scrypt_p", 0},
	}
	for _, tc := range edits {
		var doc map[string]any
		if err := json.Unmarshal(orig, &doc); err != nil {
			t.Fatalf("decode: %v", err)
		}
		doc["private"].(map[string]any)[tc.field] = tc.value
		b, err := json.Marshal(doc)
		if err != nil {
			t.Fatalf("encode: %v", err)
		}
		if err := os.WriteFile(path, b, 0o600); err != nil {
			t.Fatalf("write: %v", err)
		}
		if _, err := ks.LoadKey("main", "pass"); err == nil {
			t.Fatalf("%s: load succeeded", tc.name)
		}
	}

	if err := os.WriteFile(path, orig, 0o600); err != nil {
		t.Fatalf("restore: %v", err)
	}
	if _, err := ks.LoadKey("main", "pass"); err != nil {
		t.Fatalf("restored file: %v", err)
	}
}
