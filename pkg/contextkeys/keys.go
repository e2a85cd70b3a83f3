package contextkeys

type contextKey string

const (
	UserIDKey       contextKey = "UserID"
	SessionTokenKey contextKey = "SessionToken"
)
