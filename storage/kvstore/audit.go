package kvstore

import (
	"github.com/edusentry/backend/core"
	"github.com/edusentry/backend/core/audit"
)

type auditRepository struct {
	db *DB
}

var _ audit.Repository = (*auditRepository)(nil) // interface compliance check

func NewAuditRepository(db *DB) audit.Repository {
	return &auditRepository{db: db}
}

func (repo *auditRepository) CreateEntry(e audit.Entry) (audit.Entry, error) {
	repo.db.mu.Lock()
	defer repo.db.mu.Unlock()

	var entries []audit.Entry
	if err := repo.db.load(auditLogsKey, &entries); err != nil {
		return audit.Entry{}, err
	}
	entries = core.BoundedPrepend(entries, e, audit.MaxEntries)
	if err := repo.db.store(auditLogsKey, entries); err != nil {
		return audit.Entry{}, err
	}
	return e, nil
}

func (repo *auditRepository) QueryAllEntries() ([]audit.Entry, error) {
	repo.db.mu.RLock()
	defer repo.db.mu.RUnlock()

	var entries []audit.Entry
	if err := repo.db.load(auditLogsKey, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}
