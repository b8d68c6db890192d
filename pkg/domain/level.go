package domain

// Level identifies a screen of the navigation hierarchy.
type Level string

const (
	LevelUserList   Level = "user_list"   // Initial level, entered after the startup fetch
	LevelUserDetail Level = "user_detail" // A selected user's summary and first posts
	LevelPostDetail Level = "post_detail" // A selected post and its comments
)

// ExecutionStatus defines the current mode of the engine mechanics.
type ExecutionStatus string

const (
	StatusActive          ExecutionStatus = "active"           // Waiting for a menu answer
	StatusAwaitingComment ExecutionStatus = "awaiting_comment" // Host must collect a CommentDraft
	StatusTerminated      ExecutionStatus = "terminated"       // User asked to exit
)
