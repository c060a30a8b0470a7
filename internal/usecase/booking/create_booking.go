package booking

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/StudioBellaCilios/studio-scheduler/internal/audit"
	domain "github.com/StudioBellaCilios/studio-scheduler/internal/domain/booking"
	"github.com/StudioBellaCilios/studio-scheduler/internal/httperr"
	"github.com/StudioBellaCilios/studio-scheduler/internal/integrations/googlecalendar"
	"github.com/StudioBellaCilios/studio-scheduler/internal/timezone"
)

// minBotScore é a confiança mínima exigida do serviço anti-bot.
const minBotScore = 0.5

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	ServiceID      string
	DateTime       string // YYYY-MM-DDTHH:MM
	CustomerName   string
	CustomerPhone  string
	RecaptchaToken string
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	calendar   Calendar
	verifier   BotVerifier
	catalog    *domain.Catalog
	audit      *audit.Dispatcher
	calendarID string
}

func NewCreateBooking(
	calendar Calendar,
	verifier BotVerifier,
	catalog *domain.Catalog,
	auditDispatcher *audit.Dispatcher,
	calendarID string,
) *CreateBooking {
	return &CreateBooking{
		calendar:   calendar,
		verifier:   verifier,
		catalog:    catalog,
		audit:      auditDispatcher,
		calendarID: calendarID,
	}
}

// ======================================================
// EXECUTE
// ======================================================

// Execute valida, verifica o token anti-bot, reconfere a disponibilidade
// e cria o evento no calendário. A reconferência imediatamente antes do
// insert fecha a janela de double-booking na prática, mas não é atômica:
// duas requisições perfeitamente intercaladas ainda podem passar ambas.
func (uc *CreateBooking) Execute(ctx context.Context, in CreateBookingInput) error {

	// --------------------------------------------------
	// 1️⃣ Validação de campos (sem rede)
	// --------------------------------------------------
	if err := uc.validate(in); err != nil {
		return err
	}

	// --------------------------------------------------
	// 2️⃣ Verificação anti-bot
	// --------------------------------------------------
	verification, err := uc.verifier.Verify(ctx, in.RecaptchaToken)
	if err != nil {
		return err
	}
	if !verification.Success || verification.Score < minBotScore {
		return httperr.ErrBusiness("captcha_failed")
	}

	// --------------------------------------------------
	// 3️⃣ Serviço e intervalo do evento
	// --------------------------------------------------
	service, ok := uc.catalog.Lookup(in.ServiceID)
	if !ok {
		return httperr.ErrBusiness("invalid_service")
	}

	start, err := timezone.ParseDateTime(in.DateTime)
	if err != nil {
		return httperr.ErrBusiness("invalid_date_or_time")
	}

	end := start.Add(time.Duration(service.DurationMin) * time.Minute)

	// --------------------------------------------------
	// 4️⃣ Reconferência de disponibilidade
	// --------------------------------------------------
	busy, err := uc.calendar.FreeBusy(ctx, uc.calendarID, start, end)
	if err != nil {
		return err
	}
	if domain.ConflictsWith(start, end, busy) {
		return httperr.ErrBusiness("slot_unavailable")
	}

	// --------------------------------------------------
	// 5️⃣ Evento no calendário
	// --------------------------------------------------
	reference := uuid.NewString()

	event := googlecalendar.Event{
		Summary: fmt.Sprintf("%s - %s", service.Name, in.CustomerName),
		Description: fmt.Sprintf(
			"Cliente: %s\nTelefone: %s\nServiço: %s\nValor: R$ %d,00\nRef: %s",
			in.CustomerName,
			in.CustomerPhone,
			service.Name,
			service.Price,
			reference,
		),
		Start: googlecalendar.EventTime{
			DateTime: start.Format(time.RFC3339),
			TimeZone: timezone.Name,
		},
		End: googlecalendar.EventTime{
			DateTime: end.Format(time.RFC3339),
			TimeZone: timezone.Name,
		},
		Reminders: googlecalendar.Reminders{
			UseDefault: false,
			Overrides: []googlecalendar.ReminderOverride{
				{Method: "email", Minutes: 24 * 60},
				{Method: "popup", Minutes: 60},
			},
		},
	}

	if err := uc.calendar.InsertEvent(ctx, uc.calendarID, event); err != nil {
		return err
	}

	// --------------------------------------------------
	// 6️⃣ Auditoria
	// --------------------------------------------------
	uc.audit.Dispatch(audit.Event{
		Action:    "booking_created",
		Reference: reference,
		Service:   service.ID,
		Customer:  in.CustomerName,
		Phone:     in.CustomerPhone,
		StartTime: start,
	})

	return nil
}

func (uc *CreateBooking) validate(in CreateBookingInput) error {
	err := domain.Validate(domain.Request{
		ServiceID:      in.ServiceID,
		DateTime:       in.DateTime,
		CustomerName:   in.CustomerName,
		CustomerPhone:  in.CustomerPhone,
		RecaptchaToken: in.RecaptchaToken,
	}, uc.catalog)

	switch err {
	case nil:
		return nil
	case domain.ErrMissingField:
		return httperr.ErrBusiness("missing_fields")
	case domain.ErrInvalidName:
		return httperr.ErrBusiness("invalid_name")
	case domain.ErrInvalidPhone:
		return httperr.ErrBusiness("invalid_phone")
	case domain.ErrUnknownService:
		return httperr.ErrBusiness("invalid_service")
	default:
		return err
	}
}
