package broker

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/segmentio/kafka-go"

	"github.com/samandr77/reconciler/internal/entity"
)

type Producer struct {
	l                *slog.Logger
	w                *kafka.Writer
	settlementsTopic string
}

func NewProducer(l *slog.Logger, brokers []string, topic string) *Producer {
	l = l.WithGroup("kafka").With("topic", topic)

	w := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  "",
		Balancer:               &kafka.LeastBytes{},
		Async:                  true,
		Compression:            0,
		Logger:                 &infoLogger{l: l},
		ErrorLogger:            &errorLogger{l: l},
		AllowAutoTopicCreation: true,
	}

	return &Producer{
		l:                l,
		w:                w,
		settlementsTopic: topic,
	}
}

type SettlementReportEvent struct {
	RunID   string                  `json:"runId"`
	RanAt   time.Time               `json:"ranAt"`
	Results []SettlementResultEvent `json:"results"`
}

type SettlementResultEvent struct {
	PaymentID string `json:"paymentId"`
	Paid      bool   `json:"paid"`
	Error     string `json:"error,omitempty"`
}

// SendSettlementReport publishes the outcome of one reconciliation run.
// Publishing is fire-and-forget: a broker failure is logged, never propagated.
func (p *Producer) SendSettlementReport(ctx context.Context, results []entity.SettlementResult) {
	runID := uuid.Must(uuid.NewV4()).String()

	event := SettlementReportEvent{
		RunID:   runID,
		RanAt:   time.Now().UTC(),
		Results: make([]SettlementResultEvent, 0, len(results)),
	}

	for _, r := range results {
		res := SettlementResultEvent{
			PaymentID: r.PaymentID,
			Paid:      r.Paid,
		}

		if r.Err != nil {
			res.Error = r.Err.Error()
		}

		event.Results = append(event.Results, res)
	}

	b, err := json.Marshal(event)
	if err != nil {
		p.l.Error(fmt.Sprintf("marshal event: %s", err))
		return
	}

	err = p.w.WriteMessages(ctx, kafka.Message{
		Key:   []byte(runID),
		Value: b,
		Topic: p.settlementsTopic,
	})
	if err != nil {
		p.l.Error(fmt.Sprintf("write kafka message: %s", err))
		return
	}
}

func (p *Producer) Close() {
	err := p.w.Close()
	if err != nil {
		p.l.Error(fmt.Sprintf("close kafka writer: %s", err))
	}
}
