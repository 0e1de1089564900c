package main

import (
	"time"

	"github.com/pkg/errors"

	"github.com/mwendwa/elimika/core"
	"github.com/mwendwa/elimika/core/user"
)

// createSuperUser updates or creates an active admin account.
func (cli *commandLine) createSuperUser(uname, email, pwd string) error {
	uname = core.CleanString(uname, true /* lower */)
	email = core.CleanString(email, true /* lower */)

	now := time.Now().UTC()
	usr, err := cli.usrRepo.GetUserByUsernameOrEmail(uname)
	if err != nil {
		if errors.Cause(err) != user.ErrNotFound {
			return err
		}
		usr = user.User{
			Username:  uname,
			Email:     email,
			IsActive:  true,
			CreatedAt: now,
		}
	}
	usr.Roles = user.AllRoles
	usr.UpdatedAt = now
	if err := usr.SetPassword(pwd); err != nil {
		return err
	}

	if usr.ID == 0 {
		_, err = cli.usrRepo.CreateUser(usr)
		return err
	}
	isActive := true
	_, err = cli.usrRepo.UpdateUser(usr, &isActive, nil)
	return err
}
