package notifier

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/fsdevblog/campustrade/internal/domain"
)

// logSender запасной sender на случай, когда внешний приемник не настроен:
// уведомление считается доставленным по факту записи в лог.
type logSender struct {
	l *logrus.Entry
}

func (s logSender) Send(_ context.Context, n domain.Notification) error {
	s.l.WithFields(logrus.Fields{
		"notificationID": n.ID,
		"userID":         n.UserID,
		"kind":           n.Kind,
	}).Info(n.Title)
	return nil
}
