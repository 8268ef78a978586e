package constant

type contextKey int

// Keys set by the auth middleware on the request context.
const (
	UserIDKey contextKey = iota
	UserTypeKey
)
