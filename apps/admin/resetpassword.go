package main

import (
	"github.com/pkg/errors"

	"github.com/edusentry/backend/core"
	"github.com/edusentry/backend/core/user"
)

func (cli *commandLine) resetPassword(email, pwd string) error {
	email = core.CleanString(email, true /* lower */)
	if user.IsSeedEmail(email) {
		return errors.New("built-in accounts cannot be modified")
	}
	usr, err := cli.usrSvc.GetByEmail(email)
	if err != nil {
		return err
	}
	if err := usr.SetPassword(pwd); err != nil {
		return err
	}
	return cli.usrSvc.Save(usr)
}
