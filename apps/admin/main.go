package main

import (
	"log"
	"os"

	"github.com/edusentry/backend/core"
	"github.com/edusentry/backend/core/alert"
	"github.com/edusentry/backend/core/user"
	emailsvc "github.com/edusentry/backend/services/email"
	"github.com/edusentry/backend/storage/kvstore"
)

var logger *log.Logger

func main() {
	defer os.Exit(0)

	logger = log.New(os.Stdout, "ADMIN : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)

	conf := core.NewConfig()

	db, err := kvstore.Open(conf)
	errAndDie(err)
	defer db.Close()

	alertSvc := alert.NewService(kvstore.NewAlertRepository(db))
	usrSvc := user.NewService(kvstore.NewUserRepository(db), alertSvc, emailsvc.NewConsoleService(conf), conf)

	cli := commandLine{usrSvc: usrSvc}
	if err := cli.run(os.Args); err != nil {
		if err != errHelp {
			logger.Printf("\nerror: %s\n", err)
		}
		os.Exit(1)
	}
}

func errAndDie(err error) {
	if err != nil {
		logger.Fatal(err)
	}
}
