package client

import "errors"

var (
	// ErrClientNotFound возвращается, когда клиент с таким ID не зарегистрирован
	ErrClientNotFound = errors.New("client.repository: client not found")
)
