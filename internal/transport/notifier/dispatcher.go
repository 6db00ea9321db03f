// Package notifier доставляет отложенные уведомления из таблицы-очереди во внешний мир.
package notifier

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/fsdevblog/campustrade/internal/service"
	"github.com/fsdevblog/campustrade/internal/transport/notifier/webhook"
)

const (
	defaultServiceTimeout         = 3 * time.Second
	defaultPollInterval           = 5 * time.Second
	defaultLimitPerIteration uint = 100
)

// Dispatcher фоновый обработчик очереди уведомлений. Забирает пачки недоставленных
// уведомлений через сервисный слой и отдает их sender'у.
type Dispatcher struct {
	svs               Servicer
	sender            service.NotificationSender
	l                 *logrus.Entry
	limitPerIteration uint
	pollInterval      time.Duration
}

// New создает диспетчер уведомлений. Если webhookURL пуст, уведомления помечаются
// доставленными и пишутся только в лог.
func New(svs Servicer, webhookURL string, l *logrus.Logger) *Dispatcher {
	loggerEntry := l.WithFields(logrus.Fields{
		"component": "notifier",
		"module":    "dispatcher",
	})

	var sender service.NotificationSender = logSender{l: loggerEntry}
	if webhookURL != "" {
		sender = webhook.New(webhookURL)
	}

	return &Dispatcher{
		svs:               svs,
		sender:            sender,
		l:                 loggerEntry,
		limitPerIteration: defaultLimitPerIteration,
		pollInterval:      defaultPollInterval,
	}
}

// SetLimitPerIteration устанавливает кол-во уведомлений, обрабатываемых за одну итерацию.
func (d *Dispatcher) SetLimitPerIteration(limit uint) *Dispatcher {
	d.limitPerIteration = limit
	return d
}

// SetPollInterval устанавливает паузу между итерациями опроса очереди.
func (d *Dispatcher) SetPollInterval(interval time.Duration) *Dispatcher {
	d.pollInterval = interval
	return d
}

// Run запускает доставку уведомлений в бесконечном цикле до отмены контекста.
func (d *Dispatcher) Run(ctx context.Context) {
	d.l.WithFields(logrus.Fields{
		"limitPerIteration": d.limitPerIteration,
		"pollInterval":      d.pollInterval.String(),
	}).Info("Starting")

	ticker := time.NewTicker(d.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			d.l.Info("Got stop signal, exiting...")
			return
		case <-ticker.C:
			d.dispatch(ctx)
		}
	}
}

func (d *Dispatcher) dispatch(ctx context.Context) {
	reqCtx, cancel := context.WithTimeout(ctx, defaultServiceTimeout)
	defer cancel()

	delivered, err := d.svs.DispatchPending(reqCtx, d.limitPerIteration, d.sender)
	if err != nil {
		d.l.WithError(err).Error("dispatch error")
		return
	}
	if delivered > 0 {
		d.l.WithField("delivered", delivered).Info("Notifications delivered")
	}
}
