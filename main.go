package main

import (
	"log"

	"nalam-grocery/cmd"
	"nalam-grocery/internal/data/repository"
	"nalam-grocery/internal/wire"
	"nalam-grocery/pkg/database"
	"nalam-grocery/pkg/mailer"
	"nalam-grocery/pkg/payment"
	"nalam-grocery/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
	)

	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	mail, err := mailer.NewSMTPSender(config.Email)
	if err != nil {
		logger.Fatal("Failed to configure mailer", zap.Error(err))
	}

	gateway := payment.NewRazorpayGateway(config.Razorpay.KeyID, config.Razorpay.KeySecret, logger)

	repos := repository.NewRepository(db, logger)

	app := wire.Wiring(repos, config, logger, mail, gateway)

	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	cmd.APIServer(app.Router, config.App.Port, logger)
}
