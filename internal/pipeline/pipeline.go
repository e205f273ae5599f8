// Package pipeline реализует машину состояний агентного запуска:
// фиксированная последовательность именованных шагов, продвигаемая
// внешними вызовами API. Никакого исполнения LLM внутри - цикл
// ведет оператор или внешний агент.
package pipeline

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/iudanet/teamsync/internal/models"
)

// ErrInvalidTransition возвращается при недопустимом переходе статуса
var ErrInvalidTransition = errors.New("invalid pipeline transition")

// DefaultSteps - последовательность шагов, если при создании
// запуска шаги не заданы
var DefaultSteps = []string{"plan", "execute", "review"}

// NewRun собирает pending запуск с заданными шагами.
// Пустой список шагов заменяется на DefaultSteps.
func NewRun(workspaceID, goal, createdBy string, stepNames []string, now time.Time) *models.PipelineRun {
	if len(stepNames) == 0 {
		stepNames = DefaultSteps
	}

	runID := uuid.New().String()
	steps := make([]*models.PipelineStep, len(stepNames))
	for i, name := range stepNames {
		steps[i] = &models.PipelineStep{
			RunID:     runID,
			Index:     i,
			Name:      name,
			Status:    models.StepStatusPending,
			UpdatedAt: now,
		}
	}

	return &models.PipelineRun{
		ID:          runID,
		WorkspaceID: workspaceID,
		Goal:        goal,
		Status:      models.RunStatusPending,
		CurrentStep: 0,
		CreatedBy:   createdBy,
		CreatedAt:   now,
		UpdatedAt:   now,
		Steps:       steps,
	}
}

// Advance фиксирует результат текущего шага и двигает запуск дальше.
// Первый advance переводит запуск в running; advance последнего шага
// завершает запуск. Допустим только из pending и running.
func Advance(run *models.PipelineRun, output string, now time.Time) error {
	if !isActive(run.Status) {
		return ErrInvalidTransition
	}

	current := run.Steps[run.CurrentStep]
	current.Status = models.StepStatusDone
	current.Output = output
	current.UpdatedAt = now

	if run.CurrentStep == len(run.Steps)-1 {
		run.Status = models.RunStatusCompleted
	} else {
		run.CurrentStep++
		next := run.Steps[run.CurrentStep]
		next.Status = models.StepStatusRunning
		next.UpdatedAt = now
		run.Status = models.RunStatusRunning
	}

	run.UpdatedAt = now
	return nil
}

// Cancel останавливает запуск: оставшиеся шаги помечаются skipped.
// Допустим только из pending и running.
func Cancel(run *models.PipelineRun, now time.Time) error {
	if !isActive(run.Status) {
		return ErrInvalidTransition
	}

	for _, step := range run.Steps {
		if step.Status == models.StepStatusPending || step.Status == models.StepStatusRunning {
			step.Status = models.StepStatusSkipped
			step.UpdatedAt = now
		}
	}

	run.Status = models.RunStatusCancelled
	run.UpdatedAt = now
	return nil
}

// Fail записывает ошибку в текущий шаг и помечает запуск failed.
// Статус шага не трогаем: по output видно, где остановились.
// Допустим только из pending и running.
func Fail(run *models.PipelineRun, reason string, now time.Time) error {
	if !isActive(run.Status) {
		return ErrInvalidTransition
	}

	current := run.Steps[run.CurrentStep]
	current.Output = reason
	current.UpdatedAt = now

	run.Status = models.RunStatusFailed
	run.UpdatedAt = now
	return nil
}

// isActive: запуск еще можно двигать
func isActive(status string) bool {
	return status == models.RunStatusPending || status == models.RunStatusRunning
}
