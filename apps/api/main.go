package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	echoapi "github.com/edusentry/backend/apps/api/echo"
	"github.com/edusentry/backend/core"
	"github.com/edusentry/backend/core/academic"
	"github.com/edusentry/backend/core/alert"
	"github.com/edusentry/backend/core/audit"
	"github.com/edusentry/backend/core/feedback"
	"github.com/edusentry/backend/core/user"
	emailsvc "github.com/edusentry/backend/services/email"
	logsvc "github.com/edusentry/backend/services/logger"
	narrativesvc "github.com/edusentry/backend/services/narrative"
	"github.com/edusentry/backend/storage/kvstore"
)

func main() {
	// =========================================================================
	// Set up Dependencies

	conf := core.NewConfig()

	logger := logsvc.NewRollbarLogger(
		log.New(os.Stdout, "API : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile),
		conf,
	)
	logger.Enable(!conf.Debug)

	db, err := kvstore.Open(conf)
	if err != nil {
		logger.Fatal(fmt.Sprintf("opening store: %v", err), err)
	}
	defer func() {
		if err = db.Close(); err != nil {
			logger.Error(fmt.Sprintf("closing store: %v", err), err)
		}
	}()

	// set up services
	var mailSvc core.EmailService
	if conf.Debug {
		mailSvc = emailsvc.NewConsoleService(conf)
	} else {
		mailSvc = emailsvc.NewSendgridService(conf, logger)
	}
	narrativeSvc := narrativesvc.NewGeminiService(conf)

	alertSvc := alert.NewService(kvstore.NewAlertRepository(db))
	auditSvc := audit.NewService(kvstore.NewAuditRepository(db))
	feedbackSvc := feedback.NewService(kvstore.NewFeedbackRepository(db))
	usrSvc := user.NewService(kvstore.NewUserRepository(db), alertSvc, mailSvc, conf)
	academicSvc := academic.NewService(kvstore.NewAcademicRepository(db), alertSvc, narrativeSvc, logger)

	// =========================================================================
	// Initialize App

	logger.Info(fmt.Sprintf("Application initializing : version %q", conf.Build))
	defer logger.Info("Application stopped")

	validate := validator.New()
	translator := newTranslator()
	core.InitValidators(validate, translator)

	// =========================================================================
	// Start API Service

	server := echoapi.NewServer(
		echoapi.ServerDeps{
			Conf:        conf,
			Logger:      logger,
			Validate:    validate,
			Translator:  translator,
			UserSvc:     usrSvc,
			AcademicSvc: academicSvc,
			AlertSvc:    alertSvc,
			AuditSvc:    auditSvc,
			FeedbackSvc: feedbackSvc,
		},
	)

	go func() {
		server.Start()
	}()

	// =========================================================================
	// Shutdown

	select {
	case err = <-server.Errors():
		logger.Fatal(fmt.Sprintf("server error: %v", err), err)

	case sig := <-server.ShutdownSignal():
		logger.Info(fmt.Sprintf("%v: Start shutdown...", sig))

		// give outstanding requests a deadline for completion
		ctx, cancel := context.WithTimeout(context.Background(), conf.Server.ShutdownTimeout)
		defer cancel()

		// asking listener to shutdown and shed load
		if err = server.Shutdown(ctx); err != nil {
			logger.Error(fmt.Sprintf("could not stop server gracefully: %v", err), err)

			if err = server.Close(); err != nil {
				logger.Fatal(fmt.Sprintf("could not force stop server: %v", err), err)
			}
		}
	}
}

func newTranslator() ut.Translator {
	_en := en.New()
	uni := ut.New(_en, _en)
	translator, _ := uni.GetTranslator("en")
	return translator
}
