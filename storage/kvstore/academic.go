package kvstore

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

	var data []academic.AcademicData
	if err := repo.db.load(academicDataKey, &data); err != nil {
		return academic.AcademicData{}, err
	}
	data = append(data, d)
	if err := repo.db.store(academicDataKey, data); err != nil {
		return academic.AcademicData{}, err
	}
	return d, nil
}

func (repo *academicRepository) QueryAllAcademicData() ([]academic.AcademicData, error) {
	repo.db.mu.RLock()
	defer repo.db.mu.RUnlock()

	var data []academic.AcademicData
	if err := repo.db.load(academicDataKey, &data); err != nil {
		return nil, err
	}
	return data, nil
}

func (repo *academicRepository) CreatePrediction(p academic.PredictionResult) (academic.PredictionResult, error) {
	repo.db.mu.Lock()
	defer repo.db.mu.Unlock()

	var preds []academic.PredictionResult
	if err := repo.db.load(predictionsKey, &preds); err != nil {
		return academic.PredictionResult{}, err
	}
	preds = append(preds, p)
	if err := repo.db.store(predictionsKey, preds); err != nil {
		return academic.PredictionResult{}, err
	}
	return p, nil
}

func (repo *academicRepository) QueryAllPredictions() ([]academic.PredictionResult, error) {
	repo.db.mu.RLock()
	defer repo.db.mu.RUnlock()

	var preds []academic.PredictionResult
	if err := repo.db.load(predictionsKey, &preds); err != nil {
		return nil, err
	}
	return preds, nil
}
