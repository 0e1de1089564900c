package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	echoapi "github.com/mwendwa/elimika/apps/api/echo"
	"github.com/mwendwa/elimika/core"
	"github.com/mwendwa/elimika/core/chat"
	"github.com/mwendwa/elimika/core/cluster"
	"github.com/mwendwa/elimika/core/mentor"
	"github.com/mwendwa/elimika/core/scholarship"
	"github.com/mwendwa/elimika/core/university"
	"github.com/mwendwa/elimika/core/user"
	emailsvc "github.com/mwendwa/elimika/services/email"
	logsvc "github.com/mwendwa/elimika/services/logger"
	"github.com/mwendwa/elimika/storage/database"
	sqlxrepos "github.com/mwendwa/elimika/storage/database/sqlx"
)

func main() {
	std := log.New(os.Stdout, "API : ", log.LstdFlags|log.Lshortfile)
	logger := logsvc.NewRollbarLogger(std, core.Conf)
	logger.Enable(!(core.Conf.Debug || core.Conf.TestMode))

	if err := run(logger); err != nil {
		logger.Fatal("running server", err)
	}
}

func run(logger core.Logger) error {
	// set up DB
	db, err := database.Open(core.Conf)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	// set up services
	var mailSvc core.EmailService
	if core.Conf.Debug {
		mailSvc = emailsvc.NewConsoleService()
	} else {
		mailSvc = emailsvc.NewSendgridService(logger)
	}
	usrSvc := user.NewService(core.Conf, sqlxrepos.NewUserRepository(db), mailSvc, logger)
	chatSvc := chat.NewService(sqlxrepos.NewChatRepository(db))
	clusterSvc := cluster.NewService(cluster.DefaultCatalog)

	// start API server
	app := echoapi.NewServer(
		&echoapi.Options{
			Address:        core.Conf.Server.Address,
			UserSvc:        usrSvc,
			ClusterSvc:     clusterSvc,
			ChatSvc:        chatSvc,
			MentorDir:      mentor.DefaultDirectory,
			ScholarshipCat: scholarship.DefaultCatalog,
			UniversityCat:  university.DefaultCatalog,
			Logger:         logger,
		},
	)
	go app.Start()

	// wait for interrupt or an unrecoverable handler error
	shutdownCh := make(chan os.Signal, 1)
	signal.Notify(shutdownCh, os.Interrupt, syscall.SIGTERM)
	select {
	case sig := <-shutdownCh:
		logger.Info("shutting down: " + sig.String())
	case <-app.ShutdownCh():
		logger.Error("shutting down: unrecoverable server error")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return app.Stop(ctx)
}
