package main

import (
	"github.com/pressly/goose/v3"

	appfs "github.com/mwendwa/elimika/fs"
)

var gooseRunFunc = goose.Run // mockable

// migrate dispatches to goose with the embedded migrations:
// admin migrate up | down | status | version | up-to N | down-to N | ...
func (cli *commandLine) migrate(args []string) error {
	goose.SetBaseFS(appfs.FS)
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}

	arguments := make([]string, 0)
	if len(args) > 1 {
		arguments = append(arguments, args[1:]...)
	}
	return gooseRunFunc(args[0], cli.db.DB, "migrations", arguments...)
}
