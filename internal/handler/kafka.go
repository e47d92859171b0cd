package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/ride-dispatch/internal/config"
	"github.com/SergeyBogomolovv/ride-dispatch/internal/entities"
	"github.com/go-playground/validator/v10"
	"github.com/segmentio/kafka-go"
)

type OrderSubmitter interface {
	SubmitOrder(ctx context.Context, req entities.RideRequest) entities.Order
}

// Deduplicator remembers message keys already turned into orders.
type Deduplicator interface {
	Get(key string) (int, bool)
	Set(key string, orderID int)
}

type messageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type kafkaHandler struct {
	dlq       messageWriter
	reader    messageReader
	logger    *slog.Logger
	validate  *validator.Validate
	submitter OrderSubmitter
	seen      Deduplicator
}

func NewKafkaHandler(logger *slog.Logger, cfg config.Kafka, submitter OrderSubmitter, seen Deduplicator) *kafkaHandler {
	return &kafkaHandler{
		logger: logger.With(slog.String("handler", "kafka")),
		reader: kafka.NewReader(kafka.ReaderConfig{
			Brokers: cfg.Brokers,
			GroupID: cfg.GroupID,
			Topic:   cfg.Topic,
			MaxWait: cfg.ReaderMaxWait,
		}),
		dlq: &kafka.Writer{
			Addr:         kafka.TCP(cfg.Brokers...),
			Balancer:     &kafka.LeastBytes{},
			BatchTimeout: cfg.BatchTimeout,
		},
		validate:  validator.New(),
		submitter: submitter,
		seen:      seen,
	}
}

func (h *kafkaHandler) Consume(ctx context.Context) {
	for {
		m, err := h.reader.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) {
				break
			}
			h.logger.Error("failed to fetch message", slog.Any("error", err))
			continue
		}

		h.process(ctx, m)

		if err := h.reader.CommitMessages(ctx, m); err != nil {
			commitErrors.Inc()
			h.logger.Error("failed to commit message", slog.Any("error", err))
		}
	}
}

func (h *kafkaHandler) process(ctx context.Context, m kafka.Message) {
	requestsInProgress.Inc()
	defer requestsInProgress.Dec()

	start := time.Now()
	defer func() {
		requestProcessingDuration.Observe(time.Since(start).Seconds())
	}()

	if err := h.handleRideRequest(ctx, m); err != nil {
		requestsFailed.Inc()
		h.logger.Error("failed to handle message", slog.Any("error", err))

		// В библиотеке уже есть retry
		if err := h.WriteToDLQ(ctx, m); err != nil {
			h.logger.Error("failed to write message to DLQ", slog.Any("error", err))
			return
		}
		requestsDLQ.Inc()
	}
}

func (h *kafkaHandler) handleRideRequest(ctx context.Context, m kafka.Message) error {
	key := string(m.Key)
	if key != "" {
		if id, ok := h.seen.Get(key); ok {
			requestsDuplicate.Inc()
			h.logger.Debug("duplicate ride request skipped", slog.String("key", key), slog.Int("order_id", id))
			return nil
		}
	}

	var req RideRequest
	if err := json.Unmarshal(m.Value, &req); err != nil {
		return fmt.Errorf("failed to unmarshal ride request: %w", err)
	}

	if err := h.validate.Struct(req); err != nil {
		return fmt.Errorf("invalid ride request: %w", err)
	}

	order := h.submitter.SubmitOrder(ctx, RideRequestToEntity(req))
	requestsProcessed.Inc()
	if key != "" {
		h.seen.Set(key, order.ID)
	}
	return nil
}

func (h *kafkaHandler) WriteToDLQ(ctx context.Context, m kafka.Message) error {
	m.Topic = fmt.Sprintf("%s-dlq", m.Topic)
	return h.dlq.WriteMessages(ctx, m)
}

func (h *kafkaHandler) Close() error {
	if err := h.reader.Close(); err != nil {
		return err
	}
	return h.dlq.Close()
}
