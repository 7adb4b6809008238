package contextkeys

// ContextKey is the type for keys stored in gin/request contexts.
type ContextKey string

const (
	// DBContextKey holds the *gorm.DB handle injected per request.
	DBContextKey ContextKey = "db"

	// UserIDContextKey holds the authenticated user id, empty for guests.
	UserIDContextKey ContextKey = "userID"

	// SessionIDContextKey holds the anonymous session key minted by the
	// session middleware.
	SessionIDContextKey ContextKey = "sessionID"
)
