package main

import (
	"log"

	_ "github.com/joho/godotenv/autoload"

	"github.com/Zachkp/portfolio/internal/config"
	"github.com/Zachkp/portfolio/internal/contact"
	"github.com/Zachkp/portfolio/internal/server"
	"github.com/Zachkp/portfolio/web"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	if cfg.SMTP.User == "" || cfg.SMTP.Password == "" {
		log.Println("WARNING: SMTP credentials not set. Contact form submissions will fail.")
	}
	sender := contact.NewSMTPSender(contact.SMTPConfig{
		Host:     cfg.SMTP.Host,
		Port:     cfg.SMTP.Port,
		User:     cfg.SMTP.User,
		Password: cfg.SMTP.Password,
		To:       cfg.SMTP.To,
		Delay:    cfg.ContactDelay,
	})

	srv, err := server.New(server.Options{
		FS:           web.FS,
		AssetBaseURL: cfg.AssetBaseURL,
		Sender:       sender,
	})
	if err != nil {
		log.Fatalf("Error starting server: %v", err)
	}

	if err := srv.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
