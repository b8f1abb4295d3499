package store

import "fmt"

// StoreError is returned when the marketplace answers a request with a
// 4xx or 5xx status. Message carries the error message extracted from
// the store's JSON error body.
type StoreError struct {
	StatusCode int
	Message    string
}

func (e *StoreError) Error() string {
	return e.Message
}

// ConnectivityError is returned when a request never reached the store,
// typically because of a connection failure or timeout. It is never
// retried and wraps the underlying transport error.
type ConnectivityError struct {
	Err error
}

func (e *ConnectivityError) Error() string {
	return fmt.Sprintf("failed to connect to the store: %s", e.Err.Error())
}

func (e *ConnectivityError) Unwrap() error {
	return e.Err
}
