package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/boba-order-service/internal/config"
	"github.com/SergeyBogomolovv/boba-order-service/internal/entities"
	"github.com/SergeyBogomolovv/boba-order-service/pkg/utils"
	"github.com/segmentio/kafka-go"
)

type OrderSubmitter interface {
	SubmitOrder(ctx context.Context, order entities.Order) (entities.Order, error)
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type kafkaHandler struct {
	dlq       messageWriter
	reader    *kafka.Reader
	logger    *slog.Logger
	submitter OrderSubmitter
	retry     utils.RetryConfig
}

// NewKafkaHandler builds the order intake consumer. Orders that fail to
// decode or validate are moved to "<topic>-dlq".
func NewKafkaHandler(logger *slog.Logger, cfg config.Kafka, submitter OrderSubmitter) *kafkaHandler {
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
		submitter: submitter,
		retry: utils.RetryConfig{
			InitialDelay: 100 * time.Millisecond,
			MaxAttempts:  5,
			Multiplier:   2,
		},
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

		h.handleMessage(ctx, m)

		if err := h.reader.CommitMessages(ctx, m); err != nil {
			commitErrors.Inc()
			h.logger.Error("failed to commit message", slog.Any("error", err))
		}
	}
}

// handleMessage submits one order. A rejected message is parked in the DLQ
// so that the offset can still be committed.
func (h *kafkaHandler) handleMessage(ctx context.Context, m kafka.Message) {
	ordersInProgress.Inc()
	defer ordersInProgress.Dec()

	start := time.Now()
	defer func() {
		orderProcessingDuration.Observe(time.Since(start).Seconds())
	}()

	if err := h.submitOrder(ctx, m); err != nil {
		ordersRejected.Inc()
		h.logger.Warn("order rejected", slog.Any("error", err), slog.Int64("offset", m.Offset))

		if err := h.WriteToDLQ(ctx, m); err != nil {
			h.logger.Error("failed to write message to DLQ", slog.Any("error", err))
			return
		}
		ordersDLQ.Inc()
		return
	}
	ordersConsumed.Inc()
}

func (h *kafkaHandler) submitOrder(ctx context.Context, m kafka.Message) error {
	var order entities.Order
	if err := json.Unmarshal(m.Value, &order); err != nil {
		return fmt.Errorf("%w: failed to unmarshal order: %w", entities.ErrInvalidInput, err)
	}

	_, err := h.submitter.SubmitOrder(ctx, order)
	return err
}

func (h *kafkaHandler) WriteToDLQ(ctx context.Context, m kafka.Message) error {
	msg := kafka.Message{
		Topic:   fmt.Sprintf("%s-dlq", m.Topic),
		Key:     m.Key,
		Value:   m.Value,
		Headers: m.Headers,
	}
	return utils.Retry(ctx, h.retry, func() error {
		return h.dlq.WriteMessages(ctx, msg)
	})
}

func (h *kafkaHandler) Close() error {
	if err := h.reader.Close(); err != nil {
		return err
	}
	return h.dlq.Close()
}
