package host

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"ember/pkg/value"
)

// Store is a SQLite-backed key-value table handed to bytecode programs as
// a native handle.
type Store struct {
	db *sql.DB
}

// OpenStore opens (and if needed initializes) a store at path. ":memory:"
// gives a throwaway in-process store.
func OpenStore(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open store %s: %w", path, err)
	}
	// a second pooled connection to :memory: would see a different database
	db.SetMaxOpenConns(1)
	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS kv (
		key   TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize store %s: %w", path, err)
	}
	return &Store{db: db}, nil
}

// Get returns the value for key; ok is false when key is absent.
func (s *Store) Get(key string) (string, bool, error) {
	var val string
	err := s.db.QueryRow(`SELECT value FROM kv WHERE key = ?`, key).Scan(&val)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return val, true, nil
}

// Put inserts or replaces the value for key.
func (s *Store) Put(key, val string) error {
	_, err := s.db.Exec(`INSERT INTO kv (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`, key, val)
	return err
}

// Delete removes key; deleting an absent key is not an error.
func (s *Store) Delete(key string) error {
	_, err := s.db.Exec(`DELETE FROM kv WHERE key = ?`, key)
	return err
}

func (s *Store) Close() error {
	return s.db.Close()
}

func registerStore(r *Registry) {
	r.Register("store.open", storeOpen)
	r.Register("store.get", storeGet)
	r.Register("store.put", storePut)
	r.Register("store.delete", storeDelete)
	r.Register("store.close", storeClose)
}

func storeArg(args []value.Value, i int) (*Store, *value.Error) {
	n, ok := args[i].(*value.Native)
	if !ok {
		return nil, value.Errorf("argument %d must be a store handle, got %s", i+1, args[i].Kind())
	}
	st, ok := n.Value.(*Store)
	if !ok {
		return nil, value.Errorf("argument %d must be a store handle", i+1)
	}
	return st, nil
}

func storeOpen(args []value.Value) value.Value {
	if len(args) != 1 {
		return wrongArgs(len(args), 1)
	}
	path, errv := stringArg(args, 0)
	if errv != nil {
		return errv
	}
	st, err := OpenStore(path)
	if err != nil {
		log.Errorf("store open failed: %s", err)
		return value.Errorf("%s", err)
	}
	return &value.Native{Value: st}
}

func storeGet(args []value.Value) value.Value {
	if len(args) != 2 {
		return wrongArgs(len(args), 2)
	}
	st, errv := storeArg(args, 0)
	if errv != nil {
		return errv
	}
	key, errv := stringArg(args, 1)
	if errv != nil {
		return errv
	}
	val, ok, err := st.Get(key)
	if err != nil {
		return value.Errorf("store get failed: %s", err)
	}
	if !ok {
		return value.NONE
	}
	return &value.String{Value: val}
}

func storePut(args []value.Value) value.Value {
	if len(args) != 3 {
		return wrongArgs(len(args), 3)
	}
	st, errv := storeArg(args, 0)
	if errv != nil {
		return errv
	}
	key, errv := stringArg(args, 1)
	if errv != nil {
		return errv
	}
	val, errv := stringArg(args, 2)
	if errv != nil {
		return errv
	}
	if err := st.Put(key, val); err != nil {
		return value.Errorf("store put failed: %s", err)
	}
	return value.TRUE
}

func storeDelete(args []value.Value) value.Value {
	if len(args) != 2 {
		return wrongArgs(len(args), 2)
	}
	st, errv := storeArg(args, 0)
	if errv != nil {
		return errv
	}
	key, errv := stringArg(args, 1)
	if errv != nil {
		return errv
	}
	if err := st.Delete(key); err != nil {
		return value.Errorf("store delete failed: %s", err)
	}
	return value.TRUE
}

func storeClose(args []value.Value) value.Value {
	if len(args) != 1 {
		return wrongArgs(len(args), 1)
	}
	st, errv := storeArg(args, 0)
	if errv != nil {
		return errv
	}
	if err := st.Close(); err != nil {
		return value.Errorf("store close failed: %s", err)
	}
	return value.TRUE
}
