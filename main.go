// File: marassi/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"marassi/config"
	"marassi/database"
	contactRepo "marassi/database/repository/contact"
	registrationRepo "marassi/database/repository/registration"
	"marassi/forms"
	"marassi/handlers"
	"marassi/middleware"
	"marassi/routes"
	"marassi/services/intake"
	"marassi/services/notification"
	"marassi/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()

	// Object storage is optional: without it, driver document uploads
	// degrade to null URLs instead of blocking registrations.
	storageSvc, err := utils.Cloudinary()
	if err != nil {
		logger.Sugar().Warnf("main: object storage unavailable, document uploads disabled: %v", err)
		storageSvc = nil
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	router.Use(middleware.ClientMetaMiddleware())

	// repositories.
	contactMessages := contactRepo.NewMongoContactRepo()
	driverRegistrations := registrationRepo.NewMongoRegistrationRepo()

	// services.
	mailer := notification.NewResendMailer(
		config.AppConfig.ResendAPIKey,
		config.AppConfig.ResendFromEmail,
		config.AppConfig.AdminEmail,
	)

	contactService := &intake.DefaultContactService{
		Repo:   contactMessages,
		Mailer: mailer,
	}
	driverService := &intake.DefaultDriverService{
		Repo:    driverRegistrations,
		Storage: storageSvc,
		Mailer:  mailer,
	}

	intakeHandler := handlers.NewIntakeHandler(
		contactService,
		driverService,
		forms.NewTranslator(forms.Arabic()),
	)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		SubmitContactHandler:  intakeHandler.SubmitContactHandler,
		RegisterDriverHandler: intakeHandler.RegisterDriverHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
