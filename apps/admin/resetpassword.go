package main

import (
	"time"

	"github.com/mwendwa/elimika/core"
)

func (cli *commandLine) resetPassword(uname, pwd string) error {
	uname = core.CleanString(uname, true /* lower */)

	usr, err := cli.usrRepo.GetUserByUsernameOrEmail(uname)
	if err != nil {
		return err
	}
	if err := usr.SetPassword(pwd); err != nil {
		return err
	}
	usr.UpdatedAt = time.Now().UTC()
	if _, err := cli.usrRepo.UpdateUser(usr, nil, nil); err != nil {
		return err
	}
	return nil
}
