package user

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	pkgerrors "github.com/pkg/errors"

	"github.com/edusentry/backend/core"
	"github.com/edusentry/backend/core/alert"
)

var (
	// errors
	ErrNotFound           = errors.New("user not found")
	ErrEmailExists        = errors.New("a user with this email already exists")
	ErrStatusResolved     = errors.New("registration status has already been resolved")
	ErrInvalidStatus      = errors.New("invalid registration status")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrWrongPortal        = errors.New("account belongs to a different portal")
	ErrAccountPending     = errors.New("account is awaiting administrative approval")
	ErrAccountRejected    = errors.New("registration request has been declined")
)

type (
	Repository interface {
		// UpsertUser creates the user or replaces the stored record with the same ID.
		UpsertUser(usr User) (User, error)
		// QueryAllUsers returns the runtime-registered users only; the seed
		// roster is overlaid by the service.
		QueryAllUsers() ([]User, error)
	}

	Service struct {
		repo     Repository
		alertSvc *alert.Service
		mailSvc  core.EmailService
		conf     *core.Config
	}
)

func NewService(repo Repository, alertSvc *alert.Service, mailSvc core.EmailService, conf *core.Config) *Service {
	return &Service{
		repo:     repo,
		alertSvc: alertSvc,
		mailSvc:  mailSvc,
		conf:     conf,
	}
}

// QueryAll merges the immutable seed roster with the stored users,
// de-duplicated by case-insensitive email; the seed record wins.
func (svc *Service) QueryAll() ([]User, error) {
	stored, err := svc.repo.QueryAllUsers()
	if err != nil {
		return nil, pkgerrors.Wrap(err, "querying users")
	}
	merged := SeedUsers()
	for _, usr := range stored {
		if !IsSeedEmail(usr.Email) {
			merged = append(merged, usr)
		}
	}
	return merged, nil
}

func (svc *Service) GetByID(id string) (User, error) {
	users, err := svc.QueryAll()
	if err != nil {
		return User{}, err
	}
	for _, usr := range users {
		if usr.ID == id {
			return usr, nil
		}
	}
	return User{}, ErrNotFound
}

func (svc *Service) GetByEmail(email string) (User, error) {
	email = core.CleanString(email, true /* lower */)
	users, err := svc.QueryAll()
	if err != nil {
		return User{}, err
	}
	for _, usr := range users {
		if strings.EqualFold(usr.Email, email) {
			return usr, nil
		}
	}
	return User{}, ErrNotFound
}

func (svc *Service) CheckEmailUniqueness(email string) error {
	if _, err := svc.GetByEmail(email); err == nil {
		return core.NewValidationError(ErrEmailExists, core.FieldError{Field: "email", Error: ErrEmailExists.Error()})
	} else if err != ErrNotFound {
		return err
	}
	return nil
}

// Register creates a PENDING student account and raises an access-request
// notification for the faculty.
func (svc *Service) Register(nu NewUser) (User, error) {
	usr := User{
		ID:               core.NewID(),
		Name:             nu.Name,
		Email:            nu.Email,
		Role:             RoleStudent, // registration is only for students
		Status:           StatusPending,
		RegisterNo:       nu.RegisterNo,
		Department:       nu.Department,
		RegistrationDate: time.Now().UTC(),
	}
	if err := usr.SetPassword(nu.Password); err != nil {
		return User{}, pkgerrors.Wrap(err, "hashing password")
	}
	usr, err := svc.repo.UpsertUser(usr)
	if err != nil {
		return User{}, pkgerrors.Wrap(err, "creating user")
	}

	if _, err := svc.alertSvc.Add(alert.NewNotification{
		Title:   "New Access Request",
		Message: fmt.Sprintf("%s has applied for student credentials.", usr.Name),
		Type:    alert.TypeRegistration,
		LinkTab: alert.TabRegistrations,
	}); err != nil {
		return User{}, pkgerrors.Wrap(err, "raising registration notification")
	}
	return usr, nil
}

// Save persists the user. Writes addressed to a seed identity are no-ops.
func (svc *Service) Save(usr User) error {
	if IsSeedEmail(usr.Email) {
		return nil
	}
	if _, err := svc.repo.UpsertUser(usr); err != nil {
		return pkgerrors.Wrap(err, "saving user")
	}
	return nil
}

// SetStatus resolves a PENDING registration to APPROVED or REJECTED. The
// transition happens exactly once; resolved statuses are terminal. Audit
// logging is the caller's responsibility.
func (svc *Service) SetStatus(id, status string) (User, error) {
	if status != StatusApproved && status != StatusRejected {
		return User{}, core.NewValidationError(ErrInvalidStatus, core.FieldError{Field: "status", Error: ErrInvalidStatus.Error()})
	}
	usr, err := svc.GetByID(id)
	if err != nil {
		return User{}, err
	}
	if !usr.IsPending() {
		return User{}, ErrStatusResolved
	}

	usr.Status = status
	if err := svc.Save(usr); err != nil {
		return User{}, err
	}
	svc.sendStatusMail(usr)
	return usr, nil
}

// Authenticate verifies the credentials of a user logging into the given
// portal (RoleStudent or RoleAdmin).
func (svc *Service) Authenticate(email, pwd, portal string) (User, error) {
	usr, err := svc.GetByEmail(email)
	if err != nil {
		if err == ErrNotFound {
			return User{}, ErrInvalidCredentials
		}
		return User{}, err
	}
	if usr.Role != portal {
		return User{}, ErrWrongPortal
	}
	if err := usr.CheckPassword(pwd); err != nil {
		return User{}, ErrInvalidCredentials
	}
	switch {
	case usr.IsPending():
		return User{}, ErrAccountPending
	case usr.IsRejected():
		return User{}, ErrAccountRejected
	}
	return usr, nil
}

func (svc *Service) sendStatusMail(usr User) {
	var body string
	switch usr.Status {
	case StatusApproved:
		body = fmt.Sprintf("Hello %s,\n\nYour %s account has been approved. You can now sign in to the student portal.", usr.Name, svc.conf.AppName)
	case StatusRejected:
		body = fmt.Sprintf("Hello %s,\n\nYour %s registration request has been declined.", usr.Name, svc.conf.AppName)
	default:
		return
	}
	svc.mailSvc.SendMessages(&core.EmailMessage{
		To:      []mail.Address{{Name: usr.Name, Address: usr.Email}},
		Subject: "Registration " + usr.Status,
		Body:    body,
	})
}
