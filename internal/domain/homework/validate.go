// internal/domain/homework/validate.go
package homework

// Response field names used by the remote API.
const (
	FieldHomeworks   = "homeworks"
	FieldCurrentDate = "current_date"
	FieldName        = "homework_name"
	FieldStatus      = "status"
)

// ValidateResponse checks the top-level shape of a decoded poll response and
// returns the homework sequence as-is. Elements are checked later by
// ExtractMessage.
func ValidateResponse(response any) ([]any, error) {
	obj, ok := response.(map[string]any)
	if !ok {
		return nil, &ShapeError{What: "response", Want: "an object", Got: typeName(response)}
	}
	raw, ok := obj[FieldHomeworks]
	if !ok {
		return nil, &MissingFieldError{Field: FieldHomeworks}
	}
	homeworks, ok := raw.([]any)
	if !ok {
		return nil, &ShapeError{What: FieldHomeworks, Want: "an array", Got: typeName(raw)}
	}
	return homeworks, nil
}
