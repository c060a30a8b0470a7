package booking

import (
	"context"

	domain "github.com/StudioBellaCilios/studio-scheduler/internal/domain/booking"
	"github.com/StudioBellaCilios/studio-scheduler/internal/httperr"
	"github.com/StudioBellaCilios/studio-scheduler/internal/timezone"
)

type GetAvailableSlots struct {
	calendar   Calendar
	generator  *domain.Generator
	calendarID string
}

func NewGetAvailableSlots(
	calendar Calendar,
	generator *domain.Generator,
	calendarID string,
) *GetAvailableSlots {
	return &GetAvailableSlots{
		calendar:   calendar,
		generator:  generator,
		calendarID: calendarID,
	}
}

func (uc *GetAvailableSlots) Execute(
	ctx context.Context,
	serviceID string,
	dateStr string,
) ([]domain.Slot, error) {

	// --------------------------------------------------
	// 1️⃣ Data no fuso do estúdio
	// --------------------------------------------------
	date, err := timezone.ParseDate(dateStr)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	// --------------------------------------------------
	// 2️⃣ Blocos ocupados do dia civil inteiro
	// --------------------------------------------------
	dayStart, dayEnd := timezone.DayBounds(date)

	busy, err := uc.calendar.FreeBusy(ctx, uc.calendarID, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 3️⃣ Grade de horários
	// --------------------------------------------------
	slots, err := uc.generator.Generate(serviceID, date, busy, timezone.Now())
	if err != nil {
		if err == domain.ErrUnknownService {
			return nil, httperr.ErrBusiness("invalid_service")
		}
		return nil, err
	}

	return slots, nil
}
