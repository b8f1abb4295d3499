package handlers

// errorList collects validation failures as (field, message) pairs so
// that the whole batch can be reported back on the form in one go. It is
// never mutated after being handed to the rendering step.
type errorList struct {
	errors []fieldError
}

type fieldError struct {
	field   string
	message string
}

func (l *errorList) Add(field, message string) {
	l.errors = append(l.errors, fieldError{field: field, message: message})
}

func (l *errorList) Has(field string) bool {
	for _, e := range l.errors {
		if e.field == field {
			return true
		}
	}
	return false
}

func (l *errorList) Empty() bool {
	return len(l.errors) == 0
}

func (l *errorList) Map() map[string][]string {
	result := map[string][]string{}
	for _, e := range l.errors {
		result[e.field] = append(result[e.field], e.message)
	}
	return result
}
