package contextkeys

// contextKey is unexported to avoid collisions with other packages' keys.
type contextKey string

// DBContextKey is the key under which the request-scoped *gorm.DB is stored.
const DBContextKey = contextKey("db")
