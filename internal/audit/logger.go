package audit

import (
	"encoding/json"
	"log"
	"time"
)

// Logger registra eventos de auditoria como linhas JSON no log do
// processo. O calendário é a fonte de verdade dos agendamentos; a trilha
// aqui existe para rastrear o que a API pediu ao provedor.
type Logger struct {
	out *log.Logger
}

func New(out *log.Logger) *Logger {
	if out == nil {
		out = log.Default()
	}
	return &Logger{out: out}
}

type record struct {
	At        string `json:"at"`
	Action    string `json:"action"`
	Reference string `json:"reference"`
	Service   string `json:"service"`
	Customer  string `json:"customer"`
	Phone     string `json:"phone"`
	StartTime string `json:"start_time,omitempty"`
	Metadata  any    `json:"metadata,omitempty"`
}

func (l *Logger) Log(ev Event) error {
	rec := record{
		At:        time.Now().UTC().Format(time.RFC3339),
		Action:    ev.Action,
		Reference: ev.Reference,
		Service:   ev.Service,
		Customer:  ev.Customer,
		Phone:     ev.Phone,
		Metadata:  ev.Metadata,
	}
	if !ev.StartTime.IsZero() {
		rec.StartTime = ev.StartTime.Format(time.RFC3339)
	}

	b, err := json.Marshal(rec)
	if err != nil {
		return err
	}

	l.out.Printf("audit %s", b)
	return nil
}
