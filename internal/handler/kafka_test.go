package handler

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/ride-dispatch/internal/entities"
	"github.com/SergeyBogomolovv/ride-dispatch/pkg/cache"
	"github.com/go-playground/validator/v10"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeReader struct {
	msgs      []kafka.Message
	committed []kafka.Message
}

func (r *fakeReader) FetchMessage(ctx context.Context) (kafka.Message, error) {
	if len(r.msgs) == 0 {
		return kafka.Message{}, io.EOF
	}
	m := r.msgs[0]
	r.msgs = r.msgs[1:]
	return m, nil
}

func (r *fakeReader) CommitMessages(ctx context.Context, msgs ...kafka.Message) error {
	r.committed = append(r.committed, msgs...)
	return nil
}

func (r *fakeReader) Close() error { return nil }

type fakeWriter struct {
	written []kafka.Message
}

func (w *fakeWriter) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	w.written = append(w.written, msgs...)
	return nil
}

func (w *fakeWriter) Close() error { return nil }

type fakeSubmitter struct {
	mu       sync.Mutex
	requests []entities.RideRequest
}

func (s *fakeSubmitter) SubmitOrder(ctx context.Context, req entities.RideRequest) entities.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.requests = append(s.requests, req)
	return entities.Order{ID: len(s.requests), Time: req.PickupTime()}
}

func newTestKafkaHandler(msgs ...kafka.Message) (*kafkaHandler, *fakeReader, *fakeWriter, *fakeSubmitter) {
	reader := &fakeReader{msgs: msgs}
	writer := &fakeWriter{}
	submitter := &fakeSubmitter{}
	h := &kafkaHandler{
		dlq:       writer,
		reader:    reader,
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		validate:  validator.New(),
		submitter: submitter,
		seen:      cache.NewLRUCache[int](16, time.Minute),
	}
	return h, reader, writer, submitter
}

func TestKafkaHandler_Consume(t *testing.T) {
	ctx := context.Background()

	t.Run("submits valid ride request", func(t *testing.T) {
		msg := kafka.Message{
			Topic: "ride-requests",
			Key:   []byte("r-1"),
			Value: []byte(`{"passengerId":"Amy","phone":"0912","pickupDate":"2024-06-01","pickupHour":9,"pickupMinute":"5","peopleCount":2}`),
		}
		h, reader, writer, submitter := newTestKafkaHandler(msg)

		h.Consume(ctx)

		require.Len(t, submitter.requests, 1)
		req := submitter.requests[0]
		assert.Equal(t, "Amy", req.PassengerID)
		assert.Equal(t, "2", req.PeopleCount)
		assert.Equal(t, "2024-06-01 09:05", req.PickupTime())
		assert.Empty(t, writer.written)
		assert.Len(t, reader.committed, 1)
	})

	t.Run("invalid messages go to dlq", func(t *testing.T) {
		broken := kafka.Message{Topic: "ride-requests", Value: []byte(`{"phone":`)}
		noPhone := kafka.Message{Topic: "ride-requests", Value: []byte(`{"pickupDate":"2024-06-01"}`)}
		noDate := kafka.Message{Topic: "ride-requests", Value: []byte(`{"phone":"0912"}`)}
		h, reader, writer, submitter := newTestKafkaHandler(broken, noPhone, noDate)

		h.Consume(ctx)

		assert.Empty(t, submitter.requests)
		require.Len(t, writer.written, 3)
		for _, m := range writer.written {
			assert.Equal(t, "ride-requests-dlq", m.Topic)
		}
		assert.Len(t, reader.committed, 3)
	})

	t.Run("redelivered message is submitted once", func(t *testing.T) {
		value := []byte(`{"phone":"0912","pickupDate":"2024-06-01"}`)
		h, reader, writer, submitter := newTestKafkaHandler(
			kafka.Message{Topic: "ride-requests", Key: []byte("r-1"), Value: value},
			kafka.Message{Topic: "ride-requests", Key: []byte("r-1"), Value: value},
			kafka.Message{Topic: "ride-requests", Key: []byte("r-2"), Value: value},
		)

		h.Consume(ctx)

		assert.Len(t, submitter.requests, 2)
		assert.Empty(t, writer.written)
		assert.Len(t, reader.committed, 3)
	})

	t.Run("messages without key are never deduplicated", func(t *testing.T) {
		value := []byte(`{"phone":"0912","pickupDate":"2024-06-01"}`)
		h, _, _, submitter := newTestKafkaHandler(
			kafka.Message{Topic: "ride-requests", Value: value},
			kafka.Message{Topic: "ride-requests", Value: value},
		)

		h.Consume(ctx)

		assert.Len(t, submitter.requests, 2)
	})
}
