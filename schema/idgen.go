package schema

import "github.com/google/uuid"

// NewRecordID mints a random identifier suitable for any of this
// package's opaque string ID fields (CanonicalIntent.IntentID,
// ApprovalPackage.ApprovalID, SessionEventRecord.SessionID, and so on).
// Mirrors the teacher's watcher subsystem, which mints per-tenant log
// identifiers the same way.
func NewRecordID() string {
	return uuid.NewString()
}
