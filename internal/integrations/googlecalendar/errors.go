package googlecalendar

import "errors"

var (
	// ErrInternal indica falha interna do cliente (request não enviado).
	ErrInternal = errors.New("googlecalendar client: internal error")

	// ErrInvalidResponse indica resposta inesperada da API.
	ErrInvalidResponse = errors.New("googlecalendar client: invalid response")

	// ErrAuth indica falha ao obter o access token da conta de serviço.
	ErrAuth = errors.New("googlecalendar client: authentication failed")
)
