package inmemdb

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
	repo.db.auditEntries = core.BoundedPrepend(repo.db.auditEntries, e, audit.MaxEntries)
	return e, nil
}

func (repo *auditRepository) QueryAllEntries() ([]audit.Entry, error) {
	repo.db.mu.RLock()
	defer repo.db.mu.RUnlock()

	entries := make([]audit.Entry, len(repo.db.auditEntries))
	copy(entries, repo.db.auditEntries)
	return entries, nil
}
