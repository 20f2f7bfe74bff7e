package user

import (
	"time"

	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"

	"github.com/edusentry/backend/core"
)

// Roles
const (
	RoleStudent = "STUDENT"
	RoleAdmin   = "ADMIN"
)

// Registration statuses. PENDING resolves to APPROVED or REJECTED exactly once;
// both are terminal.
const (
	StatusPending  = "PENDING"
	StatusApproved = "APPROVED"
	StatusRejected = "REJECTED"
)

type User struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Email            string    `json:"email"`
	Role             string    `json:"role"`
	Status           string    `json:"status"`
	RegisterNo       string    `json:"register_no,omitempty"`
	Department       string    `json:"department,omitempty"`
	PasswordHash     []byte    `json:"-"`
	RegistrationDate time.Time `json:"registration_date,omitempty"` // UTC
}

func (u *User) SetPassword(pwd string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(pwd), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = hash
	return nil
}

func (u *User) CheckPassword(pwd string) error {
	return bcrypt.CompareHashAndPassword(u.PasswordHash, []byte(pwd))
}

func (u *User) IsAdmin() bool   { return u.Role == RoleAdmin }
func (u *User) IsStudent() bool { return u.Role == RoleStudent }

func (u *User) IsPending() bool  { return u.Status == StatusPending }
func (u *User) IsApproved() bool { return u.Status == StatusApproved }
func (u *User) IsRejected() bool { return u.Status == StatusRejected }

// NewUser contains information needed to self-register a student account.
type NewUser struct {
	Name            string `json:"name" validate:"required"`
	Email           string `json:"email" validate:"required,email"`
	RegisterNo      string `json:"register_no" validate:"omitempty"`
	Department      string `json:"department" validate:"omitempty"`
	Password        string `json:"password" validate:"required,min=8"`
	PasswordConfirm string `json:"password_confirm" validate:"required,eqfield=Password"`
}

func (nu *NewUser) Validate(validate *validator.Validate, svc *Service) error {
	nu.Name = core.CleanString(nu.Name)
	nu.Email = core.CleanString(nu.Email, true /* lower */)
	nu.RegisterNo = core.CleanString(nu.RegisterNo)
	nu.Department = core.CleanString(nu.Department)

	if err := validate.Struct(nu); err != nil {
		return err
	}
	return svc.CheckEmailUniqueness(nu.Email)
}
