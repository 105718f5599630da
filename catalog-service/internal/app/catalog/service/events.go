package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/sunshineittechnologies/sunshine-blinds-service/catalog-service/internal/app/catalog/entity"
	"github.com/sunshineittechnologies/sunshine-blinds-service/catalog-service/internal/app/catalog/infrastructure"
	"github.com/sunshineittechnologies/sunshine-blinds-service/pkg/logger"
	"github.com/sunshineittechnologies/sunshine-blinds-service/pkg/metrics"
)

const publishTimeout = 2 * time.Second

// eventPublisher sends catalog events on a best-effort basis: the write that
// triggered the event has already been persisted, so failures are only logged
// and counted.
type eventPublisher struct {
	publisher infrastructure.MessagePublisher
}

func newEventPublisher(p infrastructure.MessagePublisher) eventPublisher {
	return eventPublisher{publisher: p}
}

func (e eventPublisher) publish(ctx context.Context, eventType, entityID, categoryID, name string) {
	if e.publisher == nil {
		return
	}

	event := entity.CatalogEvent{
		EventType:  eventType,
		EntityID:   entityID,
		CategoryID: categoryID,
		Name:       name,
		Timestamp:  time.Now().UTC(),
	}

	payload, err := json.Marshal(event)
	if err != nil {
		metrics.EventPublishFailures.WithLabelValues(eventType).Inc()
		logger.Warn().Err(err).Str("event_type", eventType).Msg("failed to marshal catalog event")
		return
	}

	// Outlives request cancellation, bounded by publishTimeout.
	pubCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()

	if err := e.publisher.PublishMessage(pubCtx, entityID, payload); err != nil {
		metrics.EventPublishFailures.WithLabelValues(eventType).Inc()
		logger.Warn().
			Err(err).
			Str("event_type", eventType).
			Str("entity_id", entityID).
			Msg("failed to publish catalog event")
	}
}
