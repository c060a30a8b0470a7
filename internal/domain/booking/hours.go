package booking

import (
	"math"
	"time"
)

// ===============================
// Horários de Funcionamento
// ===============================

// Window é uma janela de expediente em horas fracionárias (18.5 = 18:30).
type Window struct {
	Open  float64
	Close float64
}

// Clock decompõe uma hora fracionária em (hora, minuto).
func Clock(h float64) (int, int) {
	hour := int(math.Floor(h))
	minute := int(math.Round((h - math.Floor(h)) * 60))
	return hour, minute
}

// Hours é a política semanal de atendimento do estúdio. Domingo é fechado.
type Hours struct {
	Weekdays Window
	Saturday Window
}

func DefaultHours() Hours {
	return Hours{
		Weekdays: Window{Open: 9, Close: 18.5},
		Saturday: Window{Open: 8, Close: 14},
	}
}

// WindowFor retorna a janela do dia, ou ok=false quando o estúdio não abre.
func (h Hours) WindowFor(weekday time.Weekday) (Window, bool) {
	switch weekday {
	case time.Sunday:
		return Window{}, false
	case time.Saturday:
		return h.Saturday, true
	default:
		return h.Weekdays, true
	}
}
