package booking

import (
	"errors"
	"regexp"
	"unicode/utf8"
)

// ===============================
// Validação do Agendamento
// ===============================

var (
	ErrMissingField = errors.New("missing required field")
	ErrInvalidName  = errors.New("invalid customer name")
	ErrInvalidPhone = errors.New("invalid customer phone")
)

const maxNameLength = 100

var (
	// Letras (incluindo acentuadas) e espaços.
	nameRe = regexp.MustCompile(`^[a-zA-ZÀ-ÿ\s]+$`)

	// Telefone brasileiro: DDD opcionalmente entre parênteses, nono
	// dígito opcional, prefixo de 4 dígitos, hífen opcional, sufixo
	// de 4 dígitos. Avaliado após remover espaços.
	phoneRe = regexp.MustCompile(`^\(?[1-9]{2}\)?9?\d{4}-?\d{4}$`)

	spaceRe = regexp.MustCompile(`\s`)
)

// Request é o agendamento enviado pelo widget, antes de qualquer
// verificação externa.
type Request struct {
	ServiceID      string
	DateTime       string
	CustomerName   string
	CustomerPhone  string
	RecaptchaToken string
}

// Validate aplica as regras na ordem, parando na primeira falha:
// campos obrigatórios, nome, telefone, serviço conhecido. Nunca toca a
// rede; reCAPTCHA e disponibilidade são verificados depois, pelo use case.
func Validate(req Request, catalog *Catalog) error {
	if req.ServiceID == "" ||
		req.DateTime == "" ||
		req.CustomerName == "" ||
		req.CustomerPhone == "" ||
		req.RecaptchaToken == "" {
		return ErrMissingField
	}

	if utf8.RuneCountInString(req.CustomerName) > maxNameLength || !nameRe.MatchString(req.CustomerName) {
		return ErrInvalidName
	}

	phone := spaceRe.ReplaceAllString(req.CustomerPhone, "")
	if !phoneRe.MatchString(phone) {
		return ErrInvalidPhone
	}

	if _, ok := catalog.Lookup(req.ServiceID); !ok {
		return ErrUnknownService
	}

	return nil
}
