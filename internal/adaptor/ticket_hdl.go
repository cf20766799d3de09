package adaptor

import (
	"net/http"

	"cinema-manager/internal/dto/request"
	"cinema-manager/internal/usecase"
	"cinema-manager/pkg/utils"

	"go.uber.org/zap"
)

type TicketHandler struct {
	service usecase.BookingService
	log     *zap.Logger
}

func NewTicketHandler(service usecase.BookingService, log *zap.Logger) *TicketHandler {
	return &TicketHandler{
		service: service,
		log:     log.With(zap.String("handler", "ticket")),
	}
}

// Book handles POST /api/tickets
func (h *TicketHandler) Book(w http.ResponseWriter, r *http.Request) {
	var req request.BookTicketRequest
	if err := decodeJSON(r, &req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	ticket, err := h.service.Book(r.Context(), &req, utils.GetActorFromContext(r.Context()))
	if err != nil {
		writeError(w, h.log, err, "book ticket")
		return
	}

	utils.ResponseCreated(w, "Ticket booked", ticket)
}

// Cancel handles POST /api/tickets/{id}/cancel
func (h *TicketHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	ticketID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	ticket, err := h.service.Cancel(r.Context(), ticketID, utils.GetActorFromContext(r.Context()))
	if err != nil {
		writeError(w, h.log, err, "cancel ticket")
		return
	}

	utils.ResponseSuccess(w, "Ticket cancelled", ticket)
}

// GetTicket handles GET /api/tickets/{id}
func (h *TicketHandler) GetTicket(w http.ResponseWriter, r *http.Request) {
	ticketID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	ticket, err := h.service.GetTicket(r.Context(), ticketID)
	if err != nil {
		writeError(w, h.log, err, "get ticket")
		return
	}

	utils.ResponseSuccess(w, "Ticket retrieved", ticket)
}

// GetTickets handles GET /api/tickets?status=&customer_id=
func (h *TicketHandler) GetTickets(w http.ResponseWriter, r *http.Request) {
	req := &request.TicketListRequest{Status: r.URL.Query().Get("status")}

	var ok bool
	if req.CustomerID, ok = queryID(w, r, "customer_id"); !ok {
		return
	}

	tickets, err := h.service.ListTickets(r.Context(), req)
	if err != nil {
		writeError(w, h.log, err, "get tickets")
		return
	}

	utils.ResponseSuccess(w, "success", tickets)
}

// GetAudit handles GET /api/audit
func (h *TicketHandler) GetAudit(w http.ResponseWriter, r *http.Request) {
	entries, err := h.service.GetBookingAudit(r.Context())
	if err != nil {
		writeError(w, h.log, err, "get booking audit")
		return
	}

	utils.ResponseSuccess(w, "success", entries)
}
