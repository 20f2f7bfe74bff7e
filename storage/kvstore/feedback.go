package kvstore

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

	var items []feedback.Feedback
	if err := repo.db.load(feedbackKey, &items); err != nil {
		return feedback.Feedback{}, err
	}
	items = append([]feedback.Feedback{f}, items...)
	if err := repo.db.store(feedbackKey, items); err != nil {
		return feedback.Feedback{}, err
	}
	return f, nil
}

func (repo *feedbackRepository) QueryAllFeedback() ([]feedback.Feedback, error) {
	repo.db.mu.RLock()
	defer repo.db.mu.RUnlock()

	var items []feedback.Feedback
	if err := repo.db.load(feedbackKey, &items); err != nil {
		return nil, err
	}
	return items, nil
}
