package adaptor

import (
	"net/http"

	"cinema-manager/internal/dto/request"
	"cinema-manager/internal/usecase"
	"cinema-manager/pkg/utils"

	"go.uber.org/zap"
)

type CustomerHandler struct {
	service usecase.CustomerService
	log     *zap.Logger
}

func NewCustomerHandler(service usecase.CustomerService, log *zap.Logger) *CustomerHandler {
	return &CustomerHandler{
		service: service,
		log:     log.With(zap.String("handler", "customer")),
	}
}

// GetCustomers handles GET /api/customers?page=&per_page=
func (h *CustomerHandler) GetCustomers(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &request.PaginatedRequest{
		Page:    utils.ParseInt(query.Get("page"), 1),
		PerPage: utils.ParseInt(query.Get("per_page"), 10),
	}

	customers, err := h.service.GetCustomers(r.Context(), req)
	if err != nil {
		writeError(w, h.log, err, "get customers")
		return
	}

	utils.ResponseSuccess(w, "success", customers)
}

// GetCustomerByID handles GET /api/customers/{id}
func (h *CustomerHandler) GetCustomerByID(w http.ResponseWriter, r *http.Request) {
	customerID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	customer, err := h.service.GetCustomerByID(r.Context(), customerID)
	if err != nil {
		writeError(w, h.log, err, "get customer by ID")
		return
	}

	utils.ResponseSuccess(w, "success", customer)
}

// Lookup handles GET /api/customers/lookup?phone=
func (h *CustomerHandler) Lookup(w http.ResponseWriter, r *http.Request) {
	customer, err := h.service.LookupByPhone(r.Context(), r.URL.Query().Get("phone"))
	if err != nil {
		writeError(w, h.log, err, "lookup customer")
		return
	}

	utils.ResponseSuccess(w, "success", customer)
}

// FindOrCreate handles POST /api/customers/find-or-create
func (h *CustomerHandler) FindOrCreate(w http.ResponseWriter, r *http.Request) {
	var req request.FindOrCreateCustomerRequest
	if err := decodeJSON(r, &req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	customer, err := h.service.FindOrCreate(r.Context(), &req)
	if err != nil {
		writeError(w, h.log, err, "find or create customer")
		return
	}

	if customer.Created {
		utils.ResponseCreated(w, "Customer registered", customer)
		return
	}
	utils.ResponseSuccess(w, "success", customer)
}

// CreateCustomer handles POST /api/customers
func (h *CustomerHandler) CreateCustomer(w http.ResponseWriter, r *http.Request) {
	var req request.CustomerRequest
	if err := decodeJSON(r, &req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	customer, err := h.service.CreateCustomer(r.Context(), &req)
	if err != nil {
		writeError(w, h.log, err, "create customer")
		return
	}

	utils.ResponseCreated(w, "Customer created", customer)
}

// UpdateCustomer handles PUT /api/customers/{id}
func (h *CustomerHandler) UpdateCustomer(w http.ResponseWriter, r *http.Request) {
	customerID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req request.CustomerRequest
	if err := decodeJSON(r, &req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	customer, err := h.service.UpdateCustomer(r.Context(), customerID, &req)
	if err != nil {
		writeError(w, h.log, err, "update customer")
		return
	}

	utils.ResponseSuccess(w, "Customer updated", customer)
}

// DeleteCustomer handles DELETE /api/customers/{id}
func (h *CustomerHandler) DeleteCustomer(w http.ResponseWriter, r *http.Request) {
	customerID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.service.DeleteCustomer(r.Context(), customerID); err != nil {
		writeError(w, h.log, err, "delete customer")
		return
	}

	utils.ResponseSuccess(w, "Customer deleted", nil)
}
