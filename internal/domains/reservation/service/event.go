package service

import (
	"context"
	"time"

	"courtbook/infras/kafka"
	"courtbook/internal/domains/reservation/model"
	"courtbook/internal/schedule"

	"github.com/rs/zerolog/log"
)

const (
	EventCreated   = "reservation.created"
	EventConfirmed = "reservation.confirmed"
	EventCancelled = "reservation.cancelled"
)

// Event is the payload published on the reservation topic, keyed by reservation id.
type Event struct {
	Type          string       `json:"type"`
	ReservationID string       `json:"reservation_id"`
	Reference     string       `json:"reference"`
	TenantID      string       `json:"tenant_id"`
	CourtID       string       `json:"court_id"`
	SlotKey       string       `json:"slot_key"`
	Status        model.Status `json:"status"`
	Actor         string       `json:"actor"`
	OccurredAt    time.Time    `json:"occurred_at"`
}

func newEvent(eventType, actor string, reservation model.Reservation, at time.Time) Event {
	return Event{
		Type:          eventType,
		ReservationID: reservation.ID,
		Reference:     reservation.Reference,
		TenantID:      reservation.TenantID,
		CourtID:       reservation.CourtID,
		SlotKey:       schedule.NewSlotKey(reservation.BookingDate, reservation.StartTime).String(),
		Status:        reservation.Status,
		Actor:         actor,
		OccurredAt:    at,
	}
}

// publish sends events in the background. Delivery failures are logged only; the reservation
// is already committed.
func (s *serviceImpl) publish(ctx context.Context, events ...Event) {
	if len(events) == 0 {
		return
	}

	messages := make([]kafka.Message, len(events))
	for i, event := range events {
		messages[i] = kafka.Message{Key: event.ReservationID, Value: event}
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.kafka.SendMessages(c, s.cfg.Kafka.Topics.Reservation, messages...); err != nil {
			log.Error().Err(err).Str("event", events[0].Type).Msg("failed to publish reservation events")
		}
	}()
}
