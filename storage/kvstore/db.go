package kvstore

import (
	"database/sql"
	"encoding/json"
	"sync"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/pkg/errors"

	"github.com/edusentry/backend/core"
)

// Collection keys. Each key holds one JSON-encoded list; every write is a
// whole-collection read-modify-write and there are no cross-collection
// transactions.
const (
	usersKey         = "users"
	academicDataKey  = "academic_data"
	predictionsKey   = "predictions"
	notificationsKey = "notifications"
	auditLogsKey     = "audit_logs"
	feedbackKey      = "feedback"
)

const schema = `
CREATE TABLE IF NOT EXISTS collections (
	key TEXT PRIMARY KEY,
	doc TEXT NOT NULL
);`

type DB struct {
	sdb *sqlx.DB
	mu  sync.RWMutex // serializes read-modify-write cycles across repositories
}

func Open(conf *core.Config) (*DB, error) {
	sdb, err := sqlx.Connect("sqlite3", conf.Database.Path)
	if err != nil {
		return nil, errors.Wrap(err, "opening database")
	}
	if _, err = sdb.Exec(schema); err != nil {
		_ = sdb.Close()
		return nil, errors.Wrap(err, "bootstrapping schema")
	}
	return &DB{sdb: sdb}, nil
}

func (db *DB) Close() error {
	return db.sdb.Close()
}

// load decodes the named collection into dst; a missing key reads as empty.
func (db *DB) load(key string, dst interface{}) error {
	var doc string
	err := db.sdb.Get(&doc, "SELECT doc FROM collections WHERE key = ?", key)
	if err == sql.ErrNoRows {
		return nil
	}
	if err != nil {
		return errors.Wrapf(err, "reading collection %q", key)
	}
	if err = json.Unmarshal([]byte(doc), dst); err != nil {
		return errors.Wrapf(err, "decoding collection %q", key)
	}
	return nil
}

// store replaces the named collection wholesale.
func (db *DB) store(key string, v interface{}) error {
	doc, err := json.Marshal(v)
	if err != nil {
		return errors.Wrapf(err, "encoding collection %q", key)
	}
	_, err = db.sdb.Exec(
		"INSERT INTO collections (key, doc) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET doc = excluded.doc",
		key, string(doc),
	)
	return errors.Wrapf(err, "writing collection %q", key)
}
