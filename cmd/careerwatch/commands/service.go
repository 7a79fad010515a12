package commands

import (
	"log/slog"
	"os"

	"careerwatch-backend/lib/configutil"
	"careerwatch-backend/lib/serviceutil"
	"careerwatch-backend/lib/sqliteutil"
	"careerwatch-backend/lib/telegram"
	"careerwatch-backend/services/careercenter"
	"careerwatch-backend/services/careercenter/db"
)

const defaultSourceUrl = "https://www.career.hs-mannheim.de/fuer-studierende/veranstaltungsangebot/themenuebersicht.html"

type TelegramConfig struct {
	Token  string `json:"token"`
	ChatId string `json:"chat_id"`
}

type Config struct {
	Database string                  `json:"database"`
	Source   string                  `json:"source"`
	Telegram TelegramConfig          `json:"telegram"`
	Smtp     careercenter.SmtpConfig `json:"smtp"`
}

// setupService wires the service from config.json5. Missing delivery
// credentials disable the matching transport but never block the
// scrape-and-store path.
func setupService() (careercenter.Service, func()) {
	cfg, err := configutil.ReadConfig[Config]("config.json5")
	if err != nil && !os.IsNotExist(err) {
		serviceutil.Fatal("failed to read config", err)
	}
	if os.IsNotExist(err) {
		slog.Warn("no config.json5 found, using defaults")
	}
	if cfg.Database == "" {
		cfg.Database = "bot.db"
	}
	if cfg.Source == "" {
		cfg.Source = defaultSourceUrl
	}

	database, err := sqliteutil.OpenDB(db.Schema, cfg.Database)
	if err != nil {
		serviceutil.Fatal("failed to open database", err)
	}

	source, err := careercenter.NewSourceClient(careercenter.SourceOptions{
		Url: cfg.Source,
	})
	if err != nil {
		serviceutil.Fatal("failed to initialize source client", err)
	}

	notifiers := careercenter.MultiNotifier{careercenter.ConsoleNotifier{}}

	if cfg.Telegram.Token != "" && cfg.Telegram.ChatId != "" {
		client, err := telegram.NewClient(telegram.ClientOptions{
			Token: cfg.Telegram.Token,
		})
		if err != nil {
			serviceutil.Fatal("failed to initialize telegram client", err)
		}
		notifiers = append(notifiers, careercenter.TelegramNotifier{
			Client: client,
			ChatId: cfg.Telegram.ChatId,
		})
	} else {
		slog.Warn("telegram credentials missing, telegram delivery disabled")
	}

	if cfg.Smtp.Server != "" {
		notifiers = append(notifiers, careercenter.EmailNotifier{Smtp: cfg.Smtp})
	}

	service := careercenter.NewService(database, source, notifiers)
	return service, func() {
		database.Close()
	}
}
