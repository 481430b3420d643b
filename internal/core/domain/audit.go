package domain

import "time"

// AuditAction identifies a security-relevant operation recorded in the
// audit trail.
type AuditAction string

const (
	AuditSignin             AuditAction = "signin"
	AuditSigninFailed       AuditAction = "signin_failed"
	AuditSignup             AuditAction = "signup"
	AuditSignout            AuditAction = "signout"
	AuditRoleGranted        AuditAction = "role_granted"
	AuditRoleRevoked        AuditAction = "role_revoked"
	AuditStudentRegistered  AuditAction = "student_registered"
	AuditStudentDeactivated AuditAction = "student_deactivated"
	AuditStudentReactivated AuditAction = "student_reactivated"
)

// AuditEvent is one entry in the audit trail. Actor is the username that
// performed (or attempted) the action; Target identifies the affected
// entity where applicable.
type AuditEvent struct {
	Actor     string      `json:"actor"`
	Action    AuditAction `json:"action"`
	Target    string      `json:"target,omitempty"`
	Detail    string      `json:"detail,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
}
