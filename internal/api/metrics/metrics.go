// Package metrics defines and registers all custom Prometheus metrics for the
// tire shop POS API. It is the single source of truth for metric names,
// labels, and help strings.
//
// All metrics are registered with the default registry via promauto at
// package initialisation.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "pos"

// ── Sales metrics ─────────────────────────────────────────────────────────────

// SalesCreatedTotal counts completed sales.
// Label:
//   - payment_mode: "cash", "upi", or "card"
var SalesCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sales_created_total",
		Help:      "Total number of sales recorded, by payment mode.",
	},
	[]string{"payment_mode"},
)

// SalesRevenue accumulates billed revenue after discount, in rupees.
var SalesRevenue = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sales_revenue_total",
		Help:      "Total billed revenue after discount, in rupees.",
	},
)

// ── Purchase metrics ──────────────────────────────────────────────────────────

// PurchasesCreatedTotal counts recorded supplier purchases.
// Label:
//   - payment_status: "paid" or "pending"
var PurchasesCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "purchases_created_total",
		Help:      "Total number of supplier purchases recorded, by payment status.",
	},
	[]string{"payment_status"},
)

// ── Invoice delivery metrics ──────────────────────────────────────────────────

// DeliveryQueueDepth tracks the current number of invoice deliveries waiting
// in each worker channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var DeliveryQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "invoice_delivery_queue_depth",
		Help:      "Current number of invoice deliveries pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)

// InvoicesSentTotal counts invoice delivery attempts.
// Label:
//   - result: "ok" or "error"
var InvoicesSentTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "invoices_sent_total",
		Help:      "Total number of WhatsApp invoice delivery attempts, by result.",
	},
	[]string{"result"},
)
