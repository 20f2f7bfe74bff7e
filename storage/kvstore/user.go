package kvstore

import (
	"time"

	"github.com/edusentry/backend/core/user"
)

// dbUser is the storage shape of user.User; unlike the API shape it carries
// the password hash.
type dbUser struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Email            string    `json:"email"`
	Role             string    `json:"role"`
	Status           string    `json:"status"`
	RegisterNo       string    `json:"register_no,omitempty"`
	Department       string    `json:"department,omitempty"`
	PasswordHash     []byte    `json:"password_hash,omitempty"`
	RegistrationDate time.Time `json:"registration_date,omitempty"`
}

func toDBUser(usr user.User) dbUser {
	return dbUser(usr)
}

func fromDBUser(rec dbUser) user.User {
	return user.User(rec)
}

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

	var users []dbUser
	if err := repo.db.load(usersKey, &users); err != nil {
		return user.User{}, err
	}
	rec := toDBUser(usr)
	replaced := false
	for i := range users {
		if users[i].ID == rec.ID {
			users[i] = rec
			replaced = true
			break
		}
	}
	if !replaced {
		users = append(users, rec)
	}
	if err := repo.db.store(usersKey, users); err != nil {
		return user.User{}, err
	}
	return usr, nil
}

func (repo *userRepository) QueryAllUsers() ([]user.User, error) {
	repo.db.mu.RLock()
	defer repo.db.mu.RUnlock()

	var recs []dbUser
	if err := repo.db.load(usersKey, &recs); err != nil {
		return nil, err
	}
	users := make([]user.User, 0, len(recs))
	for _, rec := range recs {
		users = append(users, fromDBUser(rec))
	}
	return users, nil
}
