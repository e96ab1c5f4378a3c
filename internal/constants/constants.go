package constants

// Session
const (
	SessionCookieName    = "volunteer_session"
	ContextKeyAdminID    = "admin_id"
	ContextKeyAdminEmail = "admin_email"
)

// Task defaults
const (
	DefaultSlotDurationMins = 60
)

// Seeded admin accounts; the bare "admin" identifier is a login alias of the
// email form, both created with password "admin" on first boot.
const (
	SeedAdminEmail    = "admin@example.com"
	SeedAdminAlias    = "admin"
	SeedAdminPassword = "admin"
)
