package courtservice

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnauthorized возвращается, когда операция листинга выполнена без действующего credential
	ErrUnauthorized = errors.New("courtservice client: unauthorized")

	// ErrFetchFailed возвращается, когда листинговый вызов завершился неуспехом.
	// Вызывающий обязан сбросить своё состояние в пустое, а не оставить устаревшее.
	ErrFetchFailed = errors.New("courtservice client: fetch failed")

	// ErrInvalidResponse возвращается при некорректном ответе платформы
	ErrInvalidResponse = errors.New("courtservice client: invalid response")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("courtservice client: internal error")
)

// APIError ошибка создания бронирования с текстом платформы, переданным дословно
type APIError struct {
	StatusCode int
	Messages   []string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("courtservice: status %d: %s", e.StatusCode, e.JoinedMessage())
}

// JoinedMessage возвращает сообщения платформы одной строкой для показа оператору
func (e *APIError) JoinedMessage() string {
	return strings.Join(e.Messages, ", ")
}
