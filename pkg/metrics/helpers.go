package metrics

import (
	"time"
)

type StoreOperation string

const (
	StoreOpGet    StoreOperation = "get"
	StoreOpScan   StoreOperation = "scan"
	StoreOpInsert StoreOperation = "insert"
	StoreOpUpdate StoreOperation = "update"
	StoreOpIndex  StoreOperation = "index"
)

// StoreTimer measures a single repository call.
type StoreTimer struct {
	service    string
	backend    string
	operation  StoreOperation
	collection string
	start      time.Time
}

func NewStoreTimer(service, backend string, op StoreOperation, collection string) *StoreTimer {
	return &StoreTimer{
		service:    service,
		backend:    backend,
		operation:  op,
		collection: collection,
		start:      time.Now(),
	}
}

func (st *StoreTimer) ObserveDuration() {
	StoreOperationDuration.
		WithLabelValues(st.service, st.backend, string(st.operation), st.collection).
		Observe(time.Since(st.start).Seconds())
}

func RecordStoreError(service, backend string, op StoreOperation) {
	StoreErrors.WithLabelValues(service, backend, string(op)).Inc()
}

type RedisTimer struct {
	service   string
	operation string
	start     time.Time
}

func NewRedisTimer(service, op string) *RedisTimer {
	return &RedisTimer{service: service, operation: op, start: time.Now()}
}

func (rt *RedisTimer) ObserveDuration() {
	RedisCommandDuration.WithLabelValues(rt.service, rt.operation).Observe(time.Since(rt.start).Seconds())
}

func RecordBlobError(service, operation string) {
	BlobErrors.WithLabelValues(service, operation).Inc()
}

func ObservePresign(service string, d time.Duration) {
	BlobPresignDuration.WithLabelValues(service).Observe(d.Seconds())
}

type KafkaProduceTimer struct {
	service string
	topic   string
	start   time.Time
}

func NewKafkaProduceTimer(service, topic string) *KafkaProduceTimer {
	return &KafkaProduceTimer{service: service, topic: topic, start: time.Now()}
}

func (kt *KafkaProduceTimer) Success() {
	KafkaMessagesProduced.WithLabelValues(kt.service, kt.topic).Inc()
	KafkaProduceDuration.WithLabelValues(kt.service, kt.topic).Observe(time.Since(kt.start).Seconds())
}

func (kt *KafkaProduceTimer) Error() {
	KafkaErrors.WithLabelValues(kt.service, kt.topic, "produce").Inc()
}
