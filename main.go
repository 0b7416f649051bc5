package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/streadway/amqp"

	"socialposts/internal/app"
	"socialposts/internal/config"
	"socialposts/internal/database"
	"socialposts/internal/events"
	"socialposts/pkg/logger"
	"socialposts/pkg/rabbitmq"
)

func main() {
	// --- Configuration ---
	cfg, err := config.Load()
	if err != nil {
		bootLog := logger.New(logger.Options{})
		bootLog.Fatal().Err(err).Msg("failed to load configuration")
	}

	log := logger.New(logger.Options{Level: cfg.LogLevel, Pretty: cfg.LogPretty})

	// --- Database ---
	db, err := database.Open(cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.Database.Driver).Msg("failed to open database")
	}
	defer func() {
		if err := database.Close(db); err != nil {
			log.Error().Err(err).Msg("failed to close database")
		}
	}()

	if err := database.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate database")
	}

	// --- Domain events ---
	var publisher events.Publisher
	if cfg.RabbitMQ.Enabled() {
		mqClient, err := rabbitmq.NewClient(rabbitmq.Config{
			URL:      cfg.RabbitMQ.URL,
			Exchange: cfg.RabbitMQ.Exchange,
			Queue:    cfg.RabbitMQ.Queue,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("failed to initialize RabbitMQ client")
		}
		defer mqClient.Close()

		publisher = events.NewBrokerPublisher(mqClient)
		startEventAudit(mqClient, log)
	} else {
		log.Info().Msg("RABBITMQ_URL not set, domain events are disabled")
	}

	application := app.New(app.Deps{
		DB:         db,
		Publisher:  publisher,
		Logger:     log,
		BcryptCost: cfg.BcryptCost,
		AccessLog:  true,
	})

	// --- Start HTTP Server ---
	go func() {
		log.Info().Str("addr", cfg.AppPort).Msg("starting server")
		if err := application.Listen(cfg.AppPort); err != nil {
			log.Fatal().Err(err).Msg("server failed to start")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down server")

	if err := application.Shutdown(); err != nil {
		log.Error().Err(err).Msg("error during server shutdown")
	}
	log.Info().Msg("server gracefully stopped")
}

// startEventAudit consumes the event queue and writes every event to the log.
func startEventAudit(client *rabbitmq.Client, log zerolog.Logger) {
	audit := log.With().Str("component", "event-audit").Logger()

	onError := func(tag uint64, err error) {
		audit.Warn().Err(err).Uint64("delivery_tag", tag).Msg("failed to process event")
	}
	if err := client.Consume(auditEvent(audit), onError); err != nil {
		audit.Error().Err(err).Msg("failed to start event consumer")
	}
}

// auditEvent logs one delivered event. Malformed messages are acked and
// dropped, never requeued.
func auditEvent(audit zerolog.Logger) func(msg amqp.Delivery) error {
	return func(msg amqp.Delivery) error {
		evt, err := events.Decode(msg.Body)
		if err != nil {
			audit.Warn().Err(err).Uint64("delivery_tag", msg.DeliveryTag).Msg("dropping malformed event")
			return nil
		}
		audit.Info().
			Str("event_id", evt.ID).
			Str("event", evt.Type).
			Time("occurred_at", evt.OccurredAt).
			RawJSON("data", evt.Data).
			Msg("domain event")
		return nil
	}
}
