package handlers

import (
	"context"
	"sort"
	"time"

	"github.com/iudanet/teamsync/internal/models"
	"github.com/iudanet/teamsync/internal/server/storage"
	"github.com/iudanet/teamsync/internal/syncfeed"
)

// In-memory storage fakes shared by handler tests. Error fields
// inject failures for the unhappy paths.

type mockUserStorage struct {
	users     map[string]*models.User // keyed by user ID
	createErr error
	getErr    error
}

func newMockUserStorage() *mockUserStorage {
	return &mockUserStorage{users: make(map[string]*models.User)}
}

func (m *mockUserStorage) CreateUser(_ context.Context, user *models.User) error {
	if m.createErr != nil {
		return m.createErr
	}
	for _, u := range m.users {
		if u.Username == user.Username {
			return storage.ErrUserAlreadyExists
		}
	}
	m.users[user.ID] = user
	return nil
}

func (m *mockUserStorage) GetUserByUsername(_ context.Context, username string) (*models.User, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	for _, u := range m.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, storage.ErrUserNotFound
}

func (m *mockUserStorage) GetUserByID(_ context.Context, userID string) (*models.User, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	if u, ok := m.users[userID]; ok {
		return u, nil
	}
	return nil, storage.ErrUserNotFound
}

type mockTokenStorage struct {
	tokens    map[string]*models.RefreshToken
	saveErr   error
	getErr    error
	deleteErr error
}

func newMockTokenStorage() *mockTokenStorage {
	return &mockTokenStorage{tokens: make(map[string]*models.RefreshToken)}
}

func (m *mockTokenStorage) SaveRefreshToken(_ context.Context, token *models.RefreshToken) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.tokens[token.Token] = token
	return nil
}

func (m *mockTokenStorage) GetRefreshToken(_ context.Context, token string) (*models.RefreshToken, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	if t, ok := m.tokens[token]; ok {
		return t, nil
	}
	return nil, storage.ErrTokenNotFound
}

func (m *mockTokenStorage) GetUserTokens(_ context.Context, userID string) ([]*models.RefreshToken, error) {
	var out []*models.RefreshToken
	for _, t := range m.tokens {
		if t.UserID == userID {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (m *mockTokenStorage) DeleteRefreshToken(_ context.Context, token string) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	if _, ok := m.tokens[token]; !ok {
		return storage.ErrTokenNotFound
	}
	delete(m.tokens, token)
	return nil
}

func (m *mockTokenStorage) DeleteUserTokens(_ context.Context, userID string) (int, error) {
	if m.deleteErr != nil {
		return 0, m.deleteErr
	}
	count := 0
	for key, t := range m.tokens {
		if t.UserID == userID {
			delete(m.tokens, key)
			count++
		}
	}
	return count, nil
}

func (m *mockTokenStorage) DeleteExpiredTokens(_ context.Context) (int, error) {
	count := 0
	now := time.Now()
	for key, t := range m.tokens {
		if now.After(t.ExpiresAt) {
			delete(m.tokens, key)
			count++
		}
	}
	return count, nil
}

type mockWorkspaceStorage struct {
	workspaces  map[string]*models.Workspace
	memberships map[string]map[string]*models.Membership // workspace ID -> user ID
	createErr   error
	getErr      error
	addErr      error
	membersErr  error
}

func newMockWorkspaceStorage() *mockWorkspaceStorage {
	return &mockWorkspaceStorage{
		workspaces:  make(map[string]*models.Workspace),
		memberships: make(map[string]map[string]*models.Membership),
	}
}

// seedWorkspace creates a workspace with an owner membership, the way
// CreateWorkspace does, but with a fixed ID for assertions
func (m *mockWorkspaceStorage) seedWorkspace(id, name, ownerID string) {
	m.workspaces[id] = &models.Workspace{
		ID:        id,
		Name:      name,
		CreatedBy: ownerID,
		CreatedAt: time.Now(),
	}
	m.seedMember(id, ownerID, "", models.RoleOwner)
}

func (m *mockWorkspaceStorage) seedMember(workspaceID, userID, username, role string) {
	if m.memberships[workspaceID] == nil {
		m.memberships[workspaceID] = make(map[string]*models.Membership)
	}
	m.memberships[workspaceID][userID] = &models.Membership{
		WorkspaceID: workspaceID,
		UserID:      userID,
		Username:    username,
		Role:        role,
		JoinedAt:    time.Now(),
	}
}

func (m *mockWorkspaceStorage) CreateWorkspace(_ context.Context, workspace *models.Workspace) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.workspaces[workspace.ID] = workspace
	m.seedMember(workspace.ID, workspace.CreatedBy, "", models.RoleOwner)
	return nil
}

func (m *mockWorkspaceStorage) GetWorkspace(_ context.Context, workspaceID string) (*models.Workspace, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	if ws, ok := m.workspaces[workspaceID]; ok {
		return ws, nil
	}
	return nil, storage.ErrWorkspaceNotFound
}

func (m *mockWorkspaceStorage) GetUserWorkspaces(_ context.Context, userID string) ([]*models.Workspace, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	out := []*models.Workspace{}
	for wsID, members := range m.memberships {
		if _, ok := members[userID]; ok {
			out = append(out, m.workspaces[wsID])
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *mockWorkspaceStorage) AddMember(_ context.Context, membership *models.Membership) error {
	if m.addErr != nil {
		return m.addErr
	}
	if _, ok := m.workspaces[membership.WorkspaceID]; !ok {
		return storage.ErrWorkspaceNotFound
	}
	if _, ok := m.memberships[membership.WorkspaceID][membership.UserID]; ok {
		return storage.ErrAlreadyMember
	}
	if m.memberships[membership.WorkspaceID] == nil {
		m.memberships[membership.WorkspaceID] = make(map[string]*models.Membership)
	}
	m.memberships[membership.WorkspaceID][membership.UserID] = membership
	return nil
}

func (m *mockWorkspaceStorage) GetMembership(_ context.Context, workspaceID, userID string) (*models.Membership, error) {
	if membership, ok := m.memberships[workspaceID][userID]; ok {
		return membership, nil
	}
	return nil, storage.ErrNotMember
}

func (m *mockWorkspaceStorage) GetMembers(_ context.Context, workspaceID string) ([]*models.Membership, error) {
	if m.membersErr != nil {
		return nil, m.membersErr
	}
	out := []*models.Membership{}
	for _, membership := range m.memberships[workspaceID] {
		out = append(out, membership)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UserID < out[j].UserID })
	return out, nil
}

type mockRoomStorage struct {
	rooms     map[string]*models.Room
	createErr error
	getErr    error
	listErr   error
}

func newMockRoomStorage() *mockRoomStorage {
	return &mockRoomStorage{rooms: make(map[string]*models.Room)}
}

func (m *mockRoomStorage) CreateRoom(_ context.Context, room *models.Room) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.rooms[room.ID] = room
	return nil
}

func (m *mockRoomStorage) GetRoom(_ context.Context, roomID string) (*models.Room, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	if room, ok := m.rooms[roomID]; ok {
		return room, nil
	}
	return nil, storage.ErrRoomNotFound
}

func (m *mockRoomStorage) GetWorkspaceRooms(_ context.Context, workspaceID string) ([]*models.Room, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	out := []*models.Room{}
	for _, room := range m.rooms {
		if room.WorkspaceID == workspaceID {
			out = append(out, room)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

type mockMessageStorage struct {
	messages  map[string]*models.Message
	createErr error
	getErr    error
	updateErr error
	deleteErr error
	listErr   error
}

func newMockMessageStorage() *mockMessageStorage {
	return &mockMessageStorage{messages: make(map[string]*models.Message)}
}

func (m *mockMessageStorage) CreateMessage(_ context.Context, message *models.Message) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.messages[message.ID] = message
	return nil
}

func (m *mockMessageStorage) GetMessage(_ context.Context, messageID string) (*models.Message, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	if msg, ok := m.messages[messageID]; ok && !msg.Deleted {
		return msg, nil
	}
	return nil, storage.ErrMessageNotFound
}

func (m *mockMessageStorage) UpdateMessage(_ context.Context, messageID, body string, changedAt int64) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	msg, ok := m.messages[messageID]
	if !ok || msg.Deleted {
		return storage.ErrMessageNotFound
	}
	msg.Body = body
	msg.ChangedAt = changedAt
	return nil
}

func (m *mockMessageStorage) DeleteMessage(_ context.Context, messageID string, changedAt int64) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	msg, ok := m.messages[messageID]
	if !ok || msg.Deleted {
		return storage.ErrMessageNotFound
	}
	msg.Body = ""
	msg.Deleted = true
	msg.ChangedAt = changedAt
	return nil
}

func (m *mockMessageStorage) GetRoomMessages(_ context.Context, roomID string, after *syncfeed.Position, limit int) ([]*models.Message, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	var out []*models.Message
	for _, msg := range m.messages {
		if msg.RoomID != roomID || msg.Deleted {
			continue
		}
		pos := syncfeed.Position{ChangedAt: msg.CreatedAt.UnixMicro(), ID: msg.ID}
		if after != nil && !after.Less(pos) {
			continue
		}
		out = append(out, msg)
	}
	sort.Slice(out, func(i, j int) bool {
		pi := syncfeed.Position{ChangedAt: out[i].CreatedAt.UnixMicro(), ID: out[i].ID}
		pj := syncfeed.Position{ChangedAt: out[j].CreatedAt.UnixMicro(), ID: out[j].ID}
		return pi.Less(pj)
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *mockMessageStorage) GetMessagesSince(_ context.Context, workspaceID string, after *syncfeed.Position, limit int) ([]*models.Message, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	var out []*models.Message
	for _, msg := range m.messages {
		if msg.WorkspaceID != workspaceID {
			continue
		}
		pos := syncfeed.Position{ChangedAt: msg.ChangedAt, ID: msg.ID}
		if after != nil && !after.Less(pos) {
			continue
		}
		out = append(out, msg)
	}
	sort.Slice(out, func(i, j int) bool {
		pi := syncfeed.Position{ChangedAt: out[i].ChangedAt, ID: out[i].ID}
		pj := syncfeed.Position{ChangedAt: out[j].ChangedAt, ID: out[j].ID}
		return pi.Less(pj)
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

type mockTaskStorage struct {
	tasks     map[string]*models.Task
	createErr error
	getErr    error
	updateErr error
	deleteErr error
	listErr   error
}

func newMockTaskStorage() *mockTaskStorage {
	return &mockTaskStorage{tasks: make(map[string]*models.Task)}
}

func (m *mockTaskStorage) CreateTask(_ context.Context, task *models.Task) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.tasks[task.ID] = task
	return nil
}

func (m *mockTaskStorage) GetTask(_ context.Context, taskID string) (*models.Task, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	if task, ok := m.tasks[taskID]; ok && !task.Deleted {
		return task, nil
	}
	return nil, storage.ErrTaskNotFound
}

func (m *mockTaskStorage) UpdateTask(_ context.Context, task *models.Task) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	existing, ok := m.tasks[task.ID]
	if !ok || existing.Deleted {
		return storage.ErrTaskNotFound
	}
	m.tasks[task.ID] = task
	return nil
}

func (m *mockTaskStorage) DeleteTask(_ context.Context, taskID string, changedAt int64) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	task, ok := m.tasks[taskID]
	if !ok || task.Deleted {
		return storage.ErrTaskNotFound
	}
	task.Deleted = true
	task.ChangedAt = changedAt
	return nil
}

func (m *mockTaskStorage) GetWorkspaceTasks(_ context.Context, workspaceID, status string) ([]*models.Task, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	out := []*models.Task{}
	for _, task := range m.tasks {
		if task.WorkspaceID != workspaceID || task.Deleted {
			continue
		}
		if status != "" && task.Status != status {
			continue
		}
		out = append(out, task)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (m *mockTaskStorage) GetTasksSince(_ context.Context, workspaceID string, after *syncfeed.Position, limit int) ([]*models.Task, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	var out []*models.Task
	for _, task := range m.tasks {
		if task.WorkspaceID != workspaceID {
			continue
		}
		pos := syncfeed.Position{ChangedAt: task.ChangedAt, ID: task.ID}
		if after != nil && !after.Less(pos) {
			continue
		}
		out = append(out, task)
	}
	sort.Slice(out, func(i, j int) bool {
		pi := syncfeed.Position{ChangedAt: out[i].ChangedAt, ID: out[i].ID}
		pj := syncfeed.Position{ChangedAt: out[j].ChangedAt, ID: out[j].ID}
		return pi.Less(pj)
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

type mockNotificationStorage struct {
	notifications []*models.Notification
	createErr     error
	listErr       error
	markErr       error
}

func newMockNotificationStorage() *mockNotificationStorage {
	return &mockNotificationStorage{}
}

// forUser returns stored notifications of a user, insertion order
func (m *mockNotificationStorage) forUser(userID string) []*models.Notification {
	var out []*models.Notification
	for _, n := range m.notifications {
		if n.UserID == userID {
			out = append(out, n)
		}
	}
	return out
}

func (m *mockNotificationStorage) CreateNotifications(_ context.Context, notifications []*models.Notification) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.notifications = append(m.notifications, notifications...)
	return nil
}

func (m *mockNotificationStorage) GetUserNotifications(_ context.Context, userID string, unreadOnly bool, limit int) ([]*models.Notification, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	out := []*models.Notification{}
	for _, n := range m.notifications {
		if n.UserID != userID {
			continue
		}
		if unreadOnly && n.Read {
			continue
		}
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *mockNotificationStorage) MarkNotificationRead(_ context.Context, notificationID, userID string) error {
	if m.markErr != nil {
		return m.markErr
	}
	for _, n := range m.notifications {
		if n.ID == notificationID && n.UserID == userID {
			n.Read = true
			return nil
		}
	}
	return storage.ErrNotificationNotFound
}

func (m *mockNotificationStorage) MarkAllNotificationsRead(_ context.Context, userID string) (int, error) {
	if m.markErr != nil {
		return 0, m.markErr
	}
	count := 0
	for _, n := range m.notifications {
		if n.UserID == userID && !n.Read {
			n.Read = true
			count++
		}
	}
	return count, nil
}

type mockDocumentStorage struct {
	documents []*models.ContextDocument
	createErr error
	listErr   error
}

func newMockDocumentStorage() *mockDocumentStorage {
	return &mockDocumentStorage{}
}

func (m *mockDocumentStorage) CreateDocument(_ context.Context, document *models.ContextDocument) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.documents = append(m.documents, document)
	return nil
}

func (m *mockDocumentStorage) GetDocument(_ context.Context, documentID string) (*models.ContextDocument, error) {
	for _, d := range m.documents {
		if d.ID == documentID {
			return d, nil
		}
	}
	return nil, storage.ErrDocumentNotFound
}

func (m *mockDocumentStorage) GetWorkspaceDocuments(_ context.Context, workspaceID string) ([]*models.ContextDocument, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	out := []*models.ContextDocument{}
	for _, d := range m.documents {
		if d.WorkspaceID == workspaceID {
			out = append(out, d)
		}
	}
	return out, nil
}

type mockPipelineStorage struct {
	runs      map[string]*models.PipelineRun
	createErr error
	getErr    error
	updateErr error
}

func newMockPipelineStorage() *mockPipelineStorage {
	return &mockPipelineStorage{runs: make(map[string]*models.PipelineRun)}
}

func (m *mockPipelineStorage) CreateRun(_ context.Context, run *models.PipelineRun) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.runs[run.ID] = run
	return nil
}

func (m *mockPipelineStorage) GetRun(_ context.Context, runID string) (*models.PipelineRun, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	if run, ok := m.runs[runID]; ok {
		return run, nil
	}
	return nil, storage.ErrRunNotFound
}

func (m *mockPipelineStorage) GetWorkspaceRuns(_ context.Context, workspaceID string) ([]*models.PipelineRun, error) {
	out := []*models.PipelineRun{}
	for _, run := range m.runs {
		if run.WorkspaceID == workspaceID {
			out = append(out, run)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (m *mockPipelineStorage) UpdateRun(_ context.Context, run *models.PipelineRun) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	if _, ok := m.runs[run.ID]; !ok {
		return storage.ErrRunNotFound
	}
	m.runs[run.ID] = run
	return nil
}
