// internal/domain/homework/extract.go
package homework

import "fmt"

const statusUpdatedFormat = "Изменился статус проверки работы \"%s\". %s"

// ExtractMessage builds the status-change sentence for a single homework record.
func ExtractMessage(record any) (string, error) {
	obj, ok := record.(map[string]any)
	if !ok {
		return "", &ShapeError{What: "homework", Want: "an object", Got: typeName(record)}
	}

	rawName, ok := obj[FieldName]
	if !ok {
		return "", &MissingFieldError{Field: FieldName}
	}
	name, ok := rawName.(string)
	if !ok {
		return "", &ShapeError{What: FieldName, Want: "a string", Got: typeName(rawName)}
	}

	rawStatus, ok := obj[FieldStatus]
	if !ok {
		return "", &MissingFieldError{Field: FieldStatus}
	}
	status, ok := rawStatus.(string)
	if !ok {
		return "", &UnknownStatusError{Status: fmt.Sprint(rawStatus)}
	}

	verdict, ok := Verdict(Status(status))
	if !ok {
		return "", &UnknownStatusError{Status: status}
	}
	return fmt.Sprintf(statusUpdatedFormat, name, verdict), nil
}
