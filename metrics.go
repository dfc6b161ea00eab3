package main

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	CellWrites = promauto.NewCounter(prometheus.CounterOpts{
		Name: "cellstore_cell_writes_total",
		Help: "Total number of committed cell writes.",
	})

	WriteRejections = promauto.NewCounter(prometheus.CounterOpts{
		Name: "cellstore_write_rejections_total",
		Help: "Total number of writes rejected by validation or cycle detection.",
	})

	CellReads = promauto.NewCounter(prometheus.CounterOpts{
		Name: "cellstore_cell_reads_total",
		Help: "Total number of successful cell and sheet reads.",
	})

	EvaluationErrors = promauto.NewCounter(prometheus.CounterOpts{
		Name: "cellstore_evaluation_errors_total",
		Help: "Total number of formula evaluations that failed.",
	})

	HistoryMoves = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "cellstore_history_moves_total",
		Help: "Total number of undo/redo operations, labelled by direction.",
	}, []string{"direction"})

	WebhooksDelivered = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "cellstore_webhooks_delivered_total",
		Help: "Total number of webhook deliveries, labelled by status.",
	}, []string{"status"})
)
