package domain

import "time"

// Audit event kinds recorded for security-relevant actions. Failure events
// carry the acting (or attempted) username; they never carry the password
// hash or rate-limiter internals.
const (
	AuditLoginSuccess     = "login_success"
	AuditLoginFailure     = "login_failure"
	AuditLoginRateLimited = "login_rate_limited"
	AuditRegistered       = "registration_success"
	AuditRegisterRejected = "registration_rejected"
	AuditLogout           = "logout"
	AuditDeleteAllowed    = "delete_allowed"
	AuditDeleteDenied     = "delete_denied"
)

// AuditEvent is a single entry in the operational security log.
type AuditEvent struct {
	Kind       string    `json:"kind"`
	Username   string    `json:"username,omitempty"`
	ClientAddr string    `json:"client_addr,omitempty"`
	Resource   string    `json:"resource,omitempty"`
	Detail     string    `json:"detail,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
}
