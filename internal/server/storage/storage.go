package storage

// Storage composes all aggregate interfaces of the server store.
// The SQLite implementation satisfies it with a single connection
type Storage interface {
	UserStorage
	TokenStorage
	WorkspaceStorage
	RoomStorage
	MessageStorage
	TaskStorage
	NotificationStorage
	DocumentStorage
	PipelineStorage

	// Close releases the underlying database connection
	Close() error
}
