package inmemdb

import "github.com/edusentry/backend/core/academic"

type academicRepository struct {
	db *DB
}

var _ academic.Repository = (*academicRepository)(nil) // interface compliance check

func NewAcademicRepository(db *DB) academic.Repository {
	return &academicRepository{db: db}
}

func (repo *academicRepository) CreateAcademicData(d academic.AcademicData) (academic.AcademicData, error) {
	repo.db.mu.Lock()
	defer repo.db.mu.Unlock()
	repo.db.academicData = append(repo.db.academicData, d)
	return d, nil
}

func (repo *academicRepository) QueryAllAcademicData() ([]academic.AcademicData, error) {
	repo.db.mu.RLock()
	defer repo.db.mu.RUnlock()

	data := make([]academic.AcademicData, len(repo.db.academicData))
	copy(data, repo.db.academicData)
	return data, nil
}

func (repo *academicRepository) CreatePrediction(p academic.PredictionResult) (academic.PredictionResult, error) {
	repo.db.mu.Lock()
	defer repo.db.mu.Unlock()
	repo.db.predictions = append(repo.db.predictions, p)
	return p, nil
}

func (repo *academicRepository) QueryAllPredictions() ([]academic.PredictionResult, error) {
	repo.db.mu.RLock()
	defer repo.db.mu.RUnlock()

	preds := make([]academic.PredictionResult, len(repo.db.predictions))
	copy(preds, repo.db.predictions)
	return preds, nil
}
