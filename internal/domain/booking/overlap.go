package booking

import "time"

// BusyInterval é um bloco ocupado [Start, End) reportado pelo calendário.
type BusyInterval struct {
	Start time.Time
	End   time.Time
}

// Overlaps decide colisão entre dois intervalos semiabertos [aStart, aEnd)
// e [bStart, bEnd). Colide se NÃO for totalmente antes nem totalmente
// depois; extremos que apenas se tocam (aEnd == bStart) não colidem.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	totallyBefore := !aEnd.After(bStart)  // aEnd <= bStart
	totallyAfter := !aStart.Before(bEnd)  // aStart >= bEnd
	return !(totallyBefore || totallyAfter)
}

// ConflictsWith verifica o candidato contra todos os blocos ocupados.
func ConflictsWith(start, end time.Time, busy []BusyInterval) bool {
	for _, b := range busy {
		if Overlaps(start, end, b.Start, b.End) {
			return true
		}
	}
	return false
}
