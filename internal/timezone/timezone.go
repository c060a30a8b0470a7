package timezone

import "time"

// Toda a aritmética de datas do sistema acontece no fuso civil fixo do
// estúdio (UTC−03:00), nunca no fuso local do servidor. O Brasil não
// observa mais horário de verão, então o offset é constante.
const (
	// Name é o rótulo IANA enviado ao provedor de calendário.
	Name = "America/Sao_Paulo"

	offsetSeconds = -3 * 60 * 60
)

var Location = time.FixedZone("-03:00", offsetSeconds)

func Now() time.Time {
	return time.Now().In(Location)
}

// ParseDate interpreta uma data "YYYY-MM-DD" no fuso do estúdio.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", s, Location)
}

// ParseDateTime interpreta "YYYY-MM-DDTHH:MM" no fuso do estúdio.
func ParseDateTime(s string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02T15:04", s, Location)
}

// DayBounds retorna os limites do dia civil (00:00:00 a 23:59:59) da data.
func DayBounds(date time.Time) (time.Time, time.Time) {
	d := date.In(Location)
	start := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, Location)
	end := time.Date(d.Year(), d.Month(), d.Day(), 23, 59, 59, 0, Location)
	return start, end
}
