package inmemdb

import "github.com/edusentry/backend/core/user"

type userRepository struct {
	db *DB
}

var _ user.Repository = (*userRepository)(nil) // interface compliance check

func NewUserRepository(db *DB) user.Repository {
	return &userRepository{db: db}
}

func (repo *userRepository) UpsertUser(usr user.User) (user.User, error) {
	repo.db.mu.Lock()
	defer repo.db.mu.Unlock()

	for i := range repo.db.users {
		if repo.db.users[i].ID == usr.ID {
			repo.db.users[i] = usr
			return usr, nil
		}
	}
	repo.db.users = append(repo.db.users, usr)
	return usr, nil
}

func (repo *userRepository) QueryAllUsers() ([]user.User, error) {
	repo.db.mu.RLock()
	defer repo.db.mu.RUnlock()

	users := make([]user.User, len(repo.db.users))
	copy(users, repo.db.users)
	return users, nil
}
