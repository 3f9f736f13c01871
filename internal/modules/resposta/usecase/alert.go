package usecase

import (
	"context"

	"github.com/golangid/questionario-service/pkg/logger"
)

// AlertNotifier collaborator for critical queue health signals
type AlertNotifier interface {
	Notify(ctx context.Context, message string) error
}

type logAlertNotifier struct{}

// NewLogAlertNotifier default notifier, emits the alert to the structured log only
func NewLogAlertNotifier() AlertNotifier {
	return &logAlertNotifier{}
}

func (*logAlertNotifier) Notify(_ context.Context, message string) error {
	logger.LogRed("queue_alert > " + message)
	logger.LogEf("ALERTA CRITICO: %s", message)
	return nil
}
