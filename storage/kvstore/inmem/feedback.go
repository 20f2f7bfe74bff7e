package inmemdb

import "github.com/edusentry/backend/core/feedback"

type feedbackRepository struct {
	db *DB
}

var _ feedback.Repository = (*feedbackRepository)(nil) // interface compliance check

func NewFeedbackRepository(db *DB) feedback.Repository {
	return &feedbackRepository{db: db}
}

func (repo *feedbackRepository) CreateFeedback(f feedback.Feedback) (feedback.Feedback, error) {
	repo.db.mu.Lock()
	defer repo.db.mu.Unlock()
	repo.db.feedback = append([]feedback.Feedback{f}, repo.db.feedback...)
	return f, nil
}

func (repo *feedbackRepository) QueryAllFeedback() ([]feedback.Feedback, error) {
	repo.db.mu.RLock()
	defer repo.db.mu.RUnlock()

	items := make([]feedback.Feedback, len(repo.db.feedback))
	copy(items, repo.db.feedback)
	return items, nil
}
