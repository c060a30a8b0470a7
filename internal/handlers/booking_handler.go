package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/StudioBellaCilios/studio-scheduler/internal/httperr"
	ucBooking "github.com/StudioBellaCilios/studio-scheduler/internal/usecase/booking"
)

////////////////////////////////////////////////////////
// HANDLER
////////////////////////////////////////////////////////

type BookingHandler struct {
	availability *ucBooking.GetAvailableSlots
	create       *ucBooking.CreateBooking
}

func NewBookingHandler(
	availability *ucBooking.GetAvailableSlots,
	create *ucBooking.CreateBooking,
) *BookingHandler {
	return &BookingHandler{
		availability: availability,
		create:       create,
	}
}

////////////////////////////////////////////////////////
// DTOs
////////////////////////////////////////////////////////

type CreateBookingRequest struct {
	ServiceID      string `json:"serviceId"`
	DateTime       string `json:"dateTime"` // YYYY-MM-DDTHH:MM
	CustomerName   string `json:"customerName"`
	CustomerPhone  string `json:"customerPhone"`
	RecaptchaToken string `json:"recaptchaToken"`
}

////////////////////////////////////////////////////////
// AVAILABLE SLOTS
////////////////////////////////////////////////////////

func (h *BookingHandler) GetAvailableSlots(c *gin.Context) {
	serviceID := c.Query("serviceId")
	dateStr := c.Query("date")

	if serviceID == "" || dateStr == "" {
		httperr.BadRequest(c, "serviceId e date são obrigatórios")
		return
	}

	slots, err := h.availability.Execute(c.Request.Context(), serviceID, dateStr)
	if err != nil {
		switch {
		case httperr.IsBusiness(err, "invalid_service"):
			httperr.BadRequest(c, "Serviço inválido")
		case httperr.IsBusiness(err, "invalid_date"):
			httperr.BadRequest(c, "Data inválida")
		default:
			log.Println("erro ao buscar horários:", err)
			httperr.Internal(c, "Erro ao buscar horários disponíveis")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"availableSlots": slots})
}

////////////////////////////////////////////////////////
// CREATE BOOKING
////////////////////////////////////////////////////////

func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Dados inválidos")
		return
	}

	err := h.create.Execute(c.Request.Context(), ucBooking.CreateBookingInput{
		ServiceID:      req.ServiceID,
		DateTime:       req.DateTime,
		CustomerName:   req.CustomerName,
		CustomerPhone:  req.CustomerPhone,
		RecaptchaToken: req.RecaptchaToken,
	})

	if err != nil {
		mapCreateBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Agendamento realizado com sucesso!",
	})
}

func mapCreateBookingError(c *gin.Context, err error) {
	code, ok := httperr.BusinessCode(err)
	if !ok {
		log.Println("erro ao criar agendamento:", err)
		httperr.Internal(c, "Erro ao criar agendamento. Tente novamente.")
		return
	}

	switch code {
	case "missing_fields":
		httperr.BadRequest(c, "Todos os campos são obrigatórios")
	case "invalid_name":
		httperr.BadRequest(c, "Nome inválido.")
	case "invalid_phone":
		httperr.BadRequest(c, "Número de telefone inválido")
	case "invalid_service":
		httperr.BadRequest(c, "Serviço inválido")
	case "invalid_date_or_time":
		httperr.BadRequest(c, "Data ou horário inválido")
	case "captcha_failed":
		httperr.BadRequest(c, "Verificação de segurança falhou. Tente novamente.")
	case "slot_unavailable":
		httperr.BadRequest(c, "Horário indisponível. Escolha outro horário.")
	default:
		httperr.BadRequest(c, "Dados inválidos")
	}
}
