package host

import (
	"path/filepath"
	"testing"

	"ember/pkg/value"
)

func openTestStore(t *testing.T) *value.Native {
	t.Helper()
	result := storeOpen([]value.Value{&value.String{Value: ":memory:"}})
	handle, ok := result.(*value.Native)
	if !ok {
		t.Fatalf("store.open = %s, want native handle", result.Inspect())
	}
	t.Cleanup(func() { storeClose([]value.Value{handle}) })
	return handle
}

func TestStoreCRUD(t *testing.T) {
	st := openTestStore(t)
	key := &value.String{Value: "greeting"}

	if got := storeGet([]value.Value{st, key}); got != value.NONE {
		t.Fatalf("get before put = %s, want none", got.Inspect())
	}

	if put := storePut([]value.Value{st, key, &value.String{Value: "hello"}}); put != value.TRUE {
		t.Fatalf("put = %s, want true", put.Inspect())
	}
	got := storeGet([]value.Value{st, key})
	if s, ok := got.(*value.String); !ok || s.Value != "hello" {
		t.Fatalf("get = %s, want hello", got.Inspect())
	}

	// put on an existing key replaces
	storePut([]value.Value{st, key, &value.String{Value: "hi"}})
	got = storeGet([]value.Value{st, key})
	if s, ok := got.(*value.String); !ok || s.Value != "hi" {
		t.Fatalf("get after replace = %s, want hi", got.Inspect())
	}

	if del := storeDelete([]value.Value{st, key}); del != value.TRUE {
		t.Fatalf("delete = %s, want true", del.Inspect())
	}
	if got := storeGet([]value.Value{st, key}); got != value.NONE {
		t.Errorf("get after delete = %s, want none", got.Inspect())
	}

	// deleting an absent key is not an error
	if del := storeDelete([]value.Value{st, key}); del != value.TRUE {
		t.Errorf("delete of absent key = %s, want true", del.Inspect())
	}
}

func TestStoreOnDisk(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kv.db")

	st, err := OpenStore(path)
	if err != nil {
		t.Fatalf("open failed: %s", err)
	}
	if err := st.Put("k", "v"); err != nil {
		t.Fatalf("put failed: %s", err)
	}
	if err := st.Close(); err != nil {
		t.Fatalf("close failed: %s", err)
	}

	// values survive reopening
	st, err = OpenStore(path)
	if err != nil {
		t.Fatalf("reopen failed: %s", err)
	}
	defer st.Close()

	got, ok, err := st.Get("k")
	if err != nil {
		t.Fatalf("get failed: %s", err)
	}
	if !ok || got != "v" {
		t.Errorf("get = %q (ok=%t), want v", got, ok)
	}
}

func TestStoreBadHandle(t *testing.T) {
	key := &value.String{Value: "k"}
	tests := []struct {
		name   string
		result value.Value
	}{
		{"get on string", storeGet([]value.Value{key, key})},
		{"get on wrong native", storeGet([]value.Value{&value.Native{Value: 42}, key})},
		{"put missing args", storePut([]value.Value{key})},
	}

	for _, tt := range tests {
		if tt.result.Kind() != value.KindError {
			t.Errorf("%s: result = %s, want error value", tt.name, tt.result.Inspect())
		}
	}
}
