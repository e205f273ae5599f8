package validation

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/iudanet/teamsync/internal/models"
)

const (
	// MaxNameLen максимальная длина имени workspace или комнаты (в рунах)
	MaxNameLen = 64
	// MaxTopicLen максимальная длина темы комнаты
	MaxTopicLen = 256
	// MaxMessageLen максимальная длина текста сообщения
	MaxMessageLen = 4000
	// MaxTitleLen максимальная длина заголовка задачи
	MaxTitleLen = 200
)

// ValidateWorkspaceName проверяет имя workspace: непустое после trim,
// не длиннее MaxNameLen рун
func ValidateWorkspaceName(name string) error {
	return validateName(name, "workspace name", MaxNameLen)
}

// ValidateRoomName проверяет имя комнаты
func ValidateRoomName(name string) error {
	return validateName(name, "room name", MaxNameLen)
}

// ValidateRoomTopic проверяет тему комнаты (пустая допустима)
func ValidateRoomTopic(topic string) error {
	if utf8.RuneCountInString(topic) > MaxTopicLen {
		return fmt.Errorf("room topic must not exceed %d characters", MaxTopicLen)
	}
	return nil
}

// ValidateMessageBody проверяет текст сообщения: непустой после trim,
// не длиннее MaxMessageLen рун
func ValidateMessageBody(body string) error {
	if strings.TrimSpace(body) == "" {
		return fmt.Errorf("message body cannot be empty")
	}
	if utf8.RuneCountInString(body) > MaxMessageLen {
		return fmt.Errorf("message body must not exceed %d characters", MaxMessageLen)
	}
	return nil
}

// ValidateTaskTitle проверяет заголовок задачи
func ValidateTaskTitle(title string) error {
	return validateName(title, "task title", MaxTitleLen)
}

// ValidateDocumentTitle проверяет заголовок документа базы знаний
func ValidateDocumentTitle(title string) error {
	return validateName(title, "document title", MaxTitleLen)
}

// ValidateTaskStatus проверяет, что статус задачи из допустимого набора
func ValidateTaskStatus(status string) error {
	switch status {
	case models.TaskStatusTodo, models.TaskStatusInProgress, models.TaskStatusDone:
		return nil
	}
	return fmt.Errorf("invalid task status %q", status)
}

func validateName(value, what string, maxLen int) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%s cannot be empty", what)
	}
	if utf8.RuneCountInString(value) > maxLen {
		return fmt.Errorf("%s must not exceed %d characters", what, maxLen)
	}
	return nil
}
