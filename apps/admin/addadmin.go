package main

import (
	"time"

	"github.com/pkg/errors"

	"github.com/edusentry/backend/core"
	"github.com/edusentry/backend/core/user"
)

// addAdmin creates an active admin account.
func (cli *commandLine) addAdmin(name, email, pwd string) error {
	name = core.CleanString(name)
	email = core.CleanString(email, true /* lower */)
	if user.IsSeedEmail(email) {
		return errors.New("built-in accounts cannot be modified")
	}
	if _, err := cli.usrSvc.GetByEmail(email); err == nil {
		return user.ErrEmailExists
	} else if err != user.ErrNotFound {
		return err
	}

	usr := user.User{
		ID:               core.NewID(),
		Name:             name,
		Email:            email,
		Role:             user.RoleAdmin,
		Status:           user.StatusApproved,
		RegistrationDate: time.Now().UTC(),
	}
	if err := usr.SetPassword(pwd); err != nil {
		return err
	}
	return cli.usrSvc.Save(usr)
}
