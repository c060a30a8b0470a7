package booking

import (
	"context"
	"time"

	domain "github.com/StudioBellaCilios/studio-scheduler/internal/domain/booking"
	"github.com/StudioBellaCilios/studio-scheduler/internal/integrations/googlecalendar"
	"github.com/StudioBellaCilios/studio-scheduler/internal/integrations/recaptcha"
)

// Calendar é a fronteira com o provedor de calendário, a fonte de
// verdade de ocupado/livre.
type Calendar interface {
	FreeBusy(
		ctx context.Context,
		calendarID string,
		timeMin, timeMax time.Time,
	) ([]domain.BusyInterval, error)

	InsertEvent(
		ctx context.Context,
		calendarID string,
		ev googlecalendar.Event,
	) error
}

// BotVerifier é a fronteira com o serviço de verificação anti-bot.
type BotVerifier interface {
	Verify(ctx context.Context, token string) (*recaptcha.Verification, error)
}
