// Package notification consumes transfer events and forwards them to an
// external webhook. Delivery is best-effort: a full queue or a failed POST
// is logged and forgotten, never surfaced to the transfer itself.
package notification

import (
	"bytes"
	"encoding/json"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/pvieira/go-moneytransfer/internal/domain"
)

type Notifier struct {
	events     chan domain.TransferCompleted
	webhookURL string
	client     *http.Client
	log        zerolog.Logger
	done       chan struct{}
}

func New(webhookURL string, log zerolog.Logger) *Notifier {
	return &Notifier{
		events:     make(chan domain.TransferCompleted, 64),
		webhookURL: webhookURL,
		client:     &http.Client{Timeout: 10 * time.Second},
		log:        log,
		done:       make(chan struct{}),
	}
}

// Publish implements app.EventPublisher. Never blocks: if the queue is full
// the event is dropped with a warning.
func (n *Notifier) Publish(event domain.TransferCompleted) {
	select {
	case n.events <- event:
	default:
		n.log.Warn().
			Str("event_id", event.EventID.String()).
			Msg("notification queue full, dropping event")
	}
}

// Start runs the dispatch loop in the background.
func (n *Notifier) Start() {
	go func() {
		defer close(n.done)
		for event := range n.events {
			n.dispatch(event)
		}
	}()
}

// Stop drains the queue and waits for the loop to finish.
func (n *Notifier) Stop() {
	close(n.events)
	<-n.done
}

func (n *Notifier) dispatch(event domain.TransferCompleted) {
	n.log.Info().
		Str("event_id", event.EventID.String()).
		Int64("source_account_id", int64(event.SourceAccountID)).
		Int64("target_account_id", int64(event.TargetAccountID)).
		Int64("amount", event.AmountValue).
		Msg("transfer completed")

	if n.webhookURL == "" {
		return
	}

	payload := map[string]interface{}{
		"event": "transfer.completed",
		"data":  event,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		n.log.Error().Err(err).Msg("failed to marshal webhook payload")
		return
	}

	resp, err := n.client.Post(n.webhookURL, "application/json", bytes.NewReader(body))
	if err != nil {
		n.log.Error().Err(err).Str("url", n.webhookURL).Msg("webhook delivery failed")
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		n.log.Warn().Int("status", resp.StatusCode).Str("url", n.webhookURL).Msg("webhook rejected")
	}
}
