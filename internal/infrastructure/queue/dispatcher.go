package queue

import (
	"context"
	"fmt"
	"hash/fnv"

	"github.com/rs/zerolog"

	"github.com/tireshop/pos-system/internal/api/metrics"
	"github.com/tireshop/pos-system/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 64
)

// Dispatcher routes invoice deliveries to a fixed set of workers using
// consistent hashing on the invoice id, so retries for the same invoice
// never interleave.
type Dispatcher struct {
	workers  []chan ports.InvoiceDelivery
	notifier ports.Notifier
	log      zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, notifier ports.Notifier, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers:  make([]chan ports.InvoiceDelivery, numWorkers),
		notifier: notifier,
		log:      log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan ports.InvoiceDelivery, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Enqueue sends a delivery to the worker responsible for its invoice id.
// The call is non-blocking up to channelBuffer capacity.
func (d *Dispatcher) Enqueue(delivery ports.InvoiceDelivery) {
	i := d.shardIndex(delivery.InvoiceID)
	d.workers[i] <- delivery
	metrics.DeliveryQueueDepth.WithLabelValues(fmt.Sprintf("%d", i)).Set(float64(len(d.workers[i])))
}

// shardIndex maps an invoice id deterministically to a worker index.
func (d *Dispatcher) shardIndex(invoiceID string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(invoiceID))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan ports.InvoiceDelivery) {
	for {
		select {
		case <-ctx.Done():
			return
		case delivery, ok := <-ch:
			if !ok {
				return
			}
			metrics.DeliveryQueueDepth.WithLabelValues(fmt.Sprintf("%d", id)).Set(float64(len(ch)))
			if err := d.notifier.Send(ctx, delivery); err != nil {
				metrics.InvoicesSentTotal.WithLabelValues("error").Inc()
				d.log.Error().Err(err).
					Str("invoice_id", delivery.InvoiceID).
					Int("worker_id", id).
					Msg("invoice delivery failed")
				continue
			}
			metrics.InvoicesSentTotal.WithLabelValues("ok").Inc()
		}
	}
}
