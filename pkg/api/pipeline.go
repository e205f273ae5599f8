package api

import "time"

// CreateRunRequest представляет запрос на создание pipeline запуска
type CreateRunRequest struct {
	Goal  string   `json:"goal"`            // цель запуска
	Steps []string `json:"steps,omitempty"` // имена шагов; пусто = дефолтные
}

// AdvanceRunRequest представляет запрос на продвижение запуска
type AdvanceRunRequest struct {
	Output string `json:"output"` // результат текущего шага
}

// FailRunRequest представляет запрос на провал запуска
type FailRunRequest struct {
	Reason string `json:"reason"` // описание ошибки
}

// PipelineStep представляет шаг запуска в API
type PipelineStep struct {
	UpdatedAt time.Time `json:"updated_at"`
	Name      string    `json:"name"`
	Status    string    `json:"status"` // pending | running | done | skipped
	Output    string    `json:"output"`
	Index     int       `json:"index"`
}

// PipelineRun представляет запуск pipeline в API
type PipelineRun struct {
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	ID          string         `json:"id"`
	WorkspaceID string         `json:"workspace_id"`
	Goal        string         `json:"goal"`
	Status      string         `json:"status"` // pending | running | completed | cancelled | failed
	CreatedBy   string         `json:"created_by"`
	Steps       []PipelineStep `json:"steps"`
	CurrentStep int            `json:"current_step"`
}
