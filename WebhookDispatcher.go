package main

import (
	"bytes"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	json "github.com/bytedance/sonic"

	"github.com/dattgoswami/spreadsheet-backend-library/contracts"
)

type SheetWebhooks map[string]string

type WebhookSendCommand struct {
	Webhook string
	Cell    *contracts.Cell
}

// WebhookDispatcher posts changed cells to subscribed URLs through a
// small worker pool. Subscription lookups happen on request goroutines,
// hence the lock.
type WebhookDispatcher struct {
	mu       sync.RWMutex
	queue    chan WebhookSendCommand
	webhooks map[string]SheetWebhooks
	workers  int
	timeout  time.Duration
	logger   *slog.Logger
}

func NewWebhookDispatcher(workers int, queueSize int, timeout time.Duration, logger *slog.Logger) *WebhookDispatcher {
	return &WebhookDispatcher{
		queue:    make(chan WebhookSendCommand, queueSize),
		webhooks: map[string]SheetWebhooks{},
		workers:  workers,
		timeout:  timeout,
		logger:   logger,
	}
}

func (d *WebhookDispatcher) SetWebhookUrl(sheetId string, cellId string, webhookUrl string) {
	sheetId = strings.ToLower(sheetId)

	d.mu.Lock()
	defer d.mu.Unlock()

	if _, ok := d.webhooks[sheetId]; !ok {
		d.webhooks[sheetId] = SheetWebhooks{}
	}

	if webhookUrl == "" {
		delete(d.webhooks[sheetId], cellId)
	} else {
		d.webhooks[sheetId][cellId] = webhookUrl
	}
}

func (d *WebhookDispatcher) GetWebhookUrl(sheetId string, cellId string) string {
	sheetId = strings.ToLower(sheetId)

	d.mu.RLock()
	defer d.mu.RUnlock()

	return d.webhooks[sheetId][cellId]
}

func (d *WebhookDispatcher) Notify(sheetId string, cells []*contracts.Cell) {
	sheetId = strings.ToLower(sheetId)

	d.mu.RLock()
	_, subscribed := d.webhooks[sheetId]
	d.mu.RUnlock()
	if !subscribed {
		return
	}

	go d.enqueue(sheetId, cells)
}

func (d *WebhookDispatcher) Start() {
	for i := 0; i < d.workers; i++ {
		go d.runSenderWorker()
	}
}

func (d *WebhookDispatcher) Close() {
	close(d.queue)
}

func (d *WebhookDispatcher) enqueue(sheetId string, cells []*contracts.Cell) {
	for _, cell := range cells {
		if webhook := d.GetWebhookUrl(sheetId, cell.Id); webhook != "" {
			d.queue <- WebhookSendCommand{Webhook: webhook, Cell: cell}
		}
	}
}

func (d *WebhookDispatcher) runSenderWorker() {
	client := &http.Client{
		Timeout: d.timeout,
	}

	for command := range d.queue {
		payload, _ := json.Marshal(command.Cell)
		response, err := client.Post(command.Webhook, "application/json", bytes.NewBuffer(payload))

		if err != nil {
			WebhooksDelivered.WithLabelValues("error").Inc()
			d.logger.Warn("webhook send failed", "url", command.Webhook, "error", err)
			continue
		}
		_ = response.Body.Close()

		if response.StatusCode >= 300 {
			WebhooksDelivered.WithLabelValues("rejected").Inc()
			d.logger.Warn("unexpected webhook response", "url", command.Webhook, "status", response.Status)
		} else {
			WebhooksDelivered.WithLabelValues("ok").Inc()
		}
	}
}
