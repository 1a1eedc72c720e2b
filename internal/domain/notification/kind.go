// internal/domain/notification/kind.go
package notification

// Kind separates status notifications from error notifications.
// Each kind is deduplicated independently.
type Kind string

const (
	KindStatus Kind = "status"
	KindError  Kind = "error"
)
