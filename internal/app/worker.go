package app

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"willowy/internal/events"
	"willowy/internal/history"
	"willowy/internal/messaging/kafka"
	"willowy/internal/messaging/kafka/consumer"
	"willowy/internal/messaging/kafka/producer"
	"willowy/internal/shared/connection"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
}

func kafkaBrokers() []string {
	brokers := os.Getenv("KAFKA_BROKERS")
	if brokers == "" {
		brokers = "localhost:9092"
	}
	return strings.Split(brokers, ",")
}

// RunWorker publishes pending outbox events to Kafka until interrupted.
func RunWorker() error {
	db, err := connection.ConnectGORMWithRetry(
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_SSLMODE"),
		5,
	)
	if err != nil {
		return err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return err
	}

	writer := &kafkago.Writer{
		Addr:     kafkago.TCP(kafkaBrokers()...),
		Balancer: &kafkago.LeastBytes{},
	}
	defer writer.Close()

	ctx, stop := signalContext()
	defer stop()

	outboxRepo := kafka.NewOutboxRepository(sqlDB)
	producer.ProcessOutboxEvents(ctx, outboxRepo, writer, zap.L(), 3*time.Second)

	return nil
}

// RunConsumer materializes employee lifecycle events into history rows
// until interrupted.
func RunConsumer() error {
	db, err := connection.ConnectGORMWithRetry(
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_SSLMODE"),
		5,
	)
	if err != nil {
		return err
	}

	reader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers: kafkaBrokers(),
		GroupID: "willowy-employee-history",
		Topic:   events.EmployeeLifecycleTopic,
	})
	defer reader.Close()

	ctx, stop := signalContext()
	defer stop()

	historyRepo := history.NewRepository(db)
	consumer.ConsumeEmployeeLifecycle(ctx, reader, historyRepo, zap.L())

	return nil
}
