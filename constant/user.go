package constant

// User account lifecycle.
const (
	UserStatusPending = "pending"
	UserStatusActive  = "active"
)

const (
	UserTypeAdmin   = "admin"
	UserTypeVisitor = "visitor"
)

// SocialLoginGmail is stored on accounts created through Google sign-in.
const SocialLoginGmail = "Gmail"

// MinAccountAgeDays is the minimum account age before self-deletion is allowed.
const MinAccountAgeDays = 30
