package models

import "time"

// RunStatus константы статусов pipeline run
const (
	RunStatusPending   = "pending"
	RunStatusRunning   = "running"
	RunStatusCompleted = "completed"
	RunStatusCancelled = "cancelled"
	RunStatusFailed    = "failed"
)

// StepStatus константы статусов шага
const (
	StepStatusPending = "pending"
	StepStatusRunning = "running"
	StepStatusDone    = "done"
	StepStatusSkipped = "skipped"
)

// PipelineRun представляет запуск агентного pipeline:
// фиксированная последовательность именованных шагов,
// продвигаемая внешними вызовами API.
type PipelineRun struct {
	CreatedAt   time.Time       `json:"created_at"` // время создания
	UpdatedAt   time.Time       `json:"updated_at"` // время последнего перехода
	ID          string          `json:"id"`         // UUID запуска
	WorkspaceID string          `json:"workspace_id"`
	Goal        string          `json:"goal"`   // цель запуска
	Status      string          `json:"status"` // см. RunStatus*
	CreatedBy   string          `json:"created_by"`
	Steps       []*PipelineStep `json:"steps"`        // шаги по порядку
	CurrentStep int             `json:"current_step"` // индекс текущего шага
}

// PipelineStep представляет один шаг запуска
type PipelineStep struct {
	UpdatedAt time.Time `json:"updated_at"` // время последнего изменения
	RunID     string    `json:"run_id"`     // ID запуска
	Name      string    `json:"name"`       // имя шага
	Status    string    `json:"status"`     // см. StepStatus*
	Output    string    `json:"output"`     // результат шага (заполняется при advance)
	Index     int       `json:"index"`      // позиция в последовательности (с нуля)
}
