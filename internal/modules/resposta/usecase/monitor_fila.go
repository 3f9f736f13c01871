package usecase

import (
	"context"
	"fmt"

	"github.com/golangid/questionario-service/internal/modules/resposta/domain"
	"github.com/golangid/questionario-service/pkg/logger"
	"github.com/golangid/questionario-service/pkg/queue"
)

func (u *respostaUsecaseImpl) MonitorFila(ctx context.Context) (*domain.MonitorFilaResult, error) {

	queueName := u.cfg.QueueRespostasName
	dlqName := u.messageQueue.DeadLetterName(queueName)

	queueMetrics, err := u.messageQueue.Metrics(ctx, queueName)
	if err != nil {
		return nil, err
	}
	dlqMetrics, err := u.messageQueue.Metrics(ctx, dlqName)
	if err != nil {
		return nil, err
	}

	result := &domain.MonitorFilaResult{
		Health: u.classifyHealth(queueMetrics, dlqMetrics),
	}
	logger.LogIf("monitor fila > status: %s, backlog: %d, dead letter: %d",
		result.Health.Status, queueMetrics.ApproximateMessageCount, dlqMetrics.ApproximateMessageCount)

	// absent and empty dead letter destination mean the same thing here
	if !dlqMetrics.Exists || dlqMetrics.ApproximateMessageCount == 0 {
		return result, nil
	}

	result.Reprocess = u.reprocessDeadLetter(ctx, queueName, dlqName, dlqMetrics.ApproximateMessageCount)

	afterMetrics, err := u.messageQueue.Metrics(ctx, dlqName)
	if err != nil {
		return result, err
	}
	if afterMetrics.Exists && afterMetrics.ApproximateMessageCount > u.cfg.DeadLetterWarningThreshold {
		alertMessage := fmt.Sprintf(
			"fila %s: %d mensagens permanecem na dead letter apos reprocessamento (limite %d)",
			queueName, afterMetrics.ApproximateMessageCount, u.cfg.DeadLetterWarningThreshold)
		logger.LogIfError(u.alert.Notify(ctx, alertMessage))
	}

	return result, nil
}

func (u *respostaUsecaseImpl) classifyHealth(queueMetrics, dlqMetrics queue.Metrics) domain.HealthStatus {

	health := domain.HealthStatus{
		IsHealthy:              true,
		Status:                 domain.HealthStatusHealthy,
		Message:                "fila operando normalmente",
		QueueMetrics:           &queueMetrics,
		DeadLetterQueueMetrics: &dlqMetrics,
	}

	if !queueMetrics.Exists {
		// lazy provisioning, the destination only exists after the first send.
		// The dead letter check below still applies, a missing primary never
		// masks accumulated failures
		health.Status = domain.HealthStatusWarning
		health.Message = "fila ainda nao provisionada"
		health.Warnings = append(health.Warnings, "fila principal ainda nao existe no broker")
	} else if backlog := queueMetrics.ApproximateMessageCount; backlog > u.cfg.BacklogCriticalThreshold {
		health.IsHealthy = false
		health.Status = domain.HealthStatusUnhealthy
		health.Message = fmt.Sprintf("backlog critico: %d mensagens aguardando processamento", backlog)
	} else if backlog > u.cfg.BacklogWarningThreshold {
		health.Status = domain.HealthStatusWarning
		health.Message = "backlog acima do esperado"
		health.Warnings = append(health.Warnings,
			fmt.Sprintf("%d mensagens aguardando processamento (limite %d)", backlog, u.cfg.BacklogWarningThreshold))
	}

	if dlqMetrics.Exists && dlqMetrics.ApproximateMessageCount > u.cfg.DeadLetterWarningThreshold {
		health.IsHealthy = false
		health.Status = domain.HealthStatusUnhealthy
		health.Message = fmt.Sprintf("%d mensagens na dead letter (limite %d)",
			dlqMetrics.ApproximateMessageCount, u.cfg.DeadLetterWarningThreshold)
	}

	return health
}

// reprocessDeadLetter drain one bounded batch from the dead letter destination
// back to the primary. Each message is moved independently, one failure never
// aborts the batch.
func (u *respostaUsecaseImpl) reprocessDeadLetter(ctx context.Context, queueName, dlqName string, dlqCount int) *domain.ReprocessResult {

	batchSize := u.cfg.ReprocessBatchSize
	if dlqCount < batchSize {
		batchSize = dlqCount
	}

	result := new(domain.ReprocessResult)
	messages, err := u.messageQueue.ReceiveBatch(ctx, dlqName, batchSize)
	if err != nil {
		logger.LogEf("monitor fila > falha ao receber mensagens da dead letter: %v", err)
		return result
	}

	for _, msg := range messages {
		if err := u.messageQueue.Send(ctx, queueName, msg.Body); err != nil {
			result.FailedCount++
			logger.LogEf("monitor fila > falha ao reenviar mensagem %s: %v", msg.ID, err)
			continue
		}
		if err := u.messageQueue.Delete(ctx, dlqName, msg); err != nil {
			// the copy on the primary queue survives, redelivery makes a duplicate
			result.FailedCount++
			logger.LogEf("monitor fila > falha ao remover mensagem %s da dead letter: %v", msg.ID, err)
			continue
		}
		result.ReprocessedCount++
	}

	logger.LogIf("monitor fila > reprocessamento: %d reenviadas, %d falhas",
		result.ReprocessedCount, result.FailedCount)
	return result
}
