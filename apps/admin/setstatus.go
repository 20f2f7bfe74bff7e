package main

import (
	"github.com/edusentry/backend/core"
)

// setStatus resolves a pending registration from the command line.
func (cli *commandLine) setStatus(email, status string) error {
	usr, err := cli.usrSvc.GetByEmail(core.CleanString(email, true /* lower */))
	if err != nil {
		return err
	}
	if _, err := cli.usrSvc.SetStatus(usr.ID, status); err != nil {
		return err
	}
	return nil
}
