package booking

import (
	"errors"
	"fmt"
	"time"

	"github.com/StudioBellaCilios/studio-scheduler/internal/timezone"
)

var ErrUnknownService = errors.New("unknown service")

// MinLeadTime é a antecedência mínima entre "agora" e o início de um slot.
const MinLeadTime = time.Hour

// SlotInterval é o passo da grade de horários do dia.
const SlotInterval = 30 * time.Minute

// Slot é um horário agendável calculado, nunca persistido.
type Slot struct {
	Time    time.Time `json:"time"`
	Display string    `json:"display"`
}

// Generator produz os horários agendáveis de um dia. É puro: recebe os
// blocos ocupados e o instante de referência, e devolve sempre o mesmo
// resultado para as mesmas entradas.
type Generator struct {
	catalog *Catalog
	hours   Hours

	// strictClosing rejeita slots cujo término passa do fechamento.
	// false reproduz o comportamento clássico do widget, em que apenas
	// a grade limita o último horário do dia.
	strictClosing bool
}

func NewGenerator(catalog *Catalog, hours Hours, strictClosing bool) *Generator {
	return &Generator{
		catalog:       catalog,
		hours:         hours,
		strictClosing: strictClosing,
	}
}

// Generate enumera a grade de 30 em 30 minutos dentro da janela do dia,
// descartando horários com menos de uma hora de antecedência e horários
// em conflito com blocos ocupados. O resultado sai em ordem crescente.
func (g *Generator) Generate(
	serviceID string,
	date time.Time,
	busy []BusyInterval,
	now time.Time,
) ([]Slot, error) {

	service, ok := g.catalog.Lookup(serviceID)
	if !ok {
		return nil, ErrUnknownService
	}

	day := date.In(timezone.Location)

	slots := make([]Slot, 0)

	window, open := g.hours.WindowFor(day.Weekday())
	if !open {
		return slots, nil
	}

	startHour, startMinute := Clock(window.Open)
	endHour, endMinute := Clock(window.Close)

	duration := time.Duration(service.DurationMin) * time.Minute
	minStart := now.Add(MinLeadTime)

	closing := time.Date(
		day.Year(), day.Month(), day.Day(),
		endHour, endMinute, 0, 0,
		timezone.Location,
	)

	for hour := startHour; hour <= endHour; hour++ {
		for minute := 0; minute < 60; minute += 30 {
			if hour == startHour && minute < startMinute {
				continue
			}
			if hour == endHour && minute > endMinute {
				break
			}

			start := time.Date(
				day.Year(), day.Month(), day.Day(),
				hour, minute, 0, 0,
				timezone.Location,
			)

			if start.Before(minStart) {
				continue
			}

			end := start.Add(duration)

			if g.strictClosing && end.After(closing) {
				continue
			}

			if ConflictsWith(start, end, busy) {
				continue
			}

			slots = append(slots, Slot{
				Time:    start,
				Display: fmt.Sprintf("%02d:%02d", hour, minute),
			})
		}
	}

	return slots, nil
}
