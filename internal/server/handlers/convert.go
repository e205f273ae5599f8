package handlers

import (
	"github.com/iudanet/teamsync/internal/models"
	"github.com/iudanet/teamsync/pkg/api"
)

// Конвертация моделей в API представление. Handlers никогда не отдают
// модели напрямую: wire контракт фиксируется типами pkg/api.

func toAPIWorkspace(ws *models.Workspace) api.Workspace {
	return api.Workspace{
		CreatedAt: ws.CreatedAt,
		ID:        ws.ID,
		Name:      ws.Name,
		CreatedBy: ws.CreatedBy,
	}
}

func toAPIMember(m *models.Membership) api.Member {
	return api.Member{
		JoinedAt: m.JoinedAt,
		UserID:   m.UserID,
		Username: m.Username,
		Role:     m.Role,
	}
}

func toAPIRoom(room *models.Room) api.Room {
	return api.Room{
		CreatedAt:   room.CreatedAt,
		ID:          room.ID,
		WorkspaceID: room.WorkspaceID,
		Name:        room.Name,
		Topic:       room.Topic,
		CreatedBy:   room.CreatedBy,
	}
}

func toAPIMessage(m *models.Message) api.Message {
	return api.Message{
		CreatedAt:   m.CreatedAt,
		ID:          m.ID,
		WorkspaceID: m.WorkspaceID,
		RoomID:      m.RoomID,
		AuthorID:    m.AuthorID,
		Body:        m.Body,
		ChangedAt:   m.ChangedAt,
	}
}

func toAPITask(t *models.Task) api.Task {
	return api.Task{
		CreatedAt:   t.CreatedAt,
		ID:          t.ID,
		WorkspaceID: t.WorkspaceID,
		Title:       t.Title,
		Description: t.Description,
		Status:      t.Status,
		AssigneeID:  t.AssigneeID,
		CreatedBy:   t.CreatedBy,
		ChangedAt:   t.ChangedAt,
	}
}

func toAPINotification(n *models.Notification) api.Notification {
	return api.Notification{
		CreatedAt:   n.CreatedAt,
		ID:          n.ID,
		WorkspaceID: n.WorkspaceID,
		Kind:        n.Kind,
		RefID:       n.RefID,
		Body:        n.Body,
		Read:        n.Read,
	}
}

func toAPIDocument(d *models.ContextDocument) api.Document {
	return api.Document{
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
		ID:          d.ID,
		WorkspaceID: d.WorkspaceID,
		Title:       d.Title,
		Content:     d.Content,
		CreatedBy:   d.CreatedBy,
	}
}

func toAPIRun(run *models.PipelineRun) api.PipelineRun {
	steps := make([]api.PipelineStep, 0, len(run.Steps))
	for _, s := range run.Steps {
		steps = append(steps, api.PipelineStep{
			UpdatedAt: s.UpdatedAt,
			Name:      s.Name,
			Status:    s.Status,
			Output:    s.Output,
			Index:     s.Index,
		})
	}
	return api.PipelineRun{
		CreatedAt:   run.CreatedAt,
		UpdatedAt:   run.UpdatedAt,
		ID:          run.ID,
		WorkspaceID: run.WorkspaceID,
		Goal:        run.Goal,
		Status:      run.Status,
		CreatedBy:   run.CreatedBy,
		Steps:       steps,
		CurrentStep: run.CurrentStep,
	}
}

// optionalCursor оборачивает курсор движка для JSON: пустая строка
// превращается в null на проводе.
func optionalCursor(cursor string) *string {
	if cursor == "" {
		return nil
	}
	return &cursor
}
