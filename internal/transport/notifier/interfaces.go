package notifier

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"github.com/fsdevblog/campustrade/internal/service"
)

type Servicer interface {
	DispatchPending(ctx context.Context, limit uint, sender service.NotificationSender) (int, error)
}
