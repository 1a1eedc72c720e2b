// internal/domain/homework/status.go
package homework

// Status is the review state code reported by the remote API.
type Status string

const (
	StatusApproved  Status = "approved"
	StatusReviewing Status = "reviewing"
	StatusRejected  Status = "rejected"
)

// verdicts maps every known Status to the text shown to the student.
var verdicts = map[Status]string{
	StatusApproved:  "Работа проверена: ревьюеру всё понравилось. Ура!",
	StatusReviewing: "Работа взята на проверку ревьюером.",
	StatusRejected:  "Работа проверена: у ревьюера есть замечания.",
}

// Verdict returns the human-readable text for a status code.
func Verdict(status Status) (string, bool) {
	v, ok := verdicts[status]
	return v, ok
}

// KnownStatuses lists the closed set of status codes in a stable order.
func KnownStatuses() []Status {
	return []Status{StatusApproved, StatusReviewing, StatusRejected}
}
