package cli

import "fmt"

type notLoggedInError struct{}

func (notLoggedInError) Error() string {
	return "not logged in; run `rota login` first"
}

func errNotLoggedIn() error {
	return notLoggedInError{}
}

type emptyFieldError struct {
	field string
}

func (e emptyFieldError) Error() string {
	return fmt.Sprintf("%s must not be empty", e.field)
}

func errEmptyField(field string) error {
	return emptyFieldError{field: field}
}
