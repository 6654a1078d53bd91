package request

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"github.com/light-bringer/catreq-service/internal/app/request/queries/get_request"
	"github.com/light-bringer/catreq-service/internal/app/request/queries/list_requests"
	"github.com/light-bringer/catreq-service/internal/app/request/queries/list_workloads"
	"github.com/light-bringer/catreq-service/internal/app/request/usecases/allocate_sku"
	"github.com/light-bringer/catreq-service/internal/app/request/usecases/apply_decision"
	"github.com/light-bringer/catreq-service/internal/app/request/usecases/assign_request"
	"github.com/light-bringer/catreq-service/internal/app/request/usecases/create_request"
	"github.com/light-bringer/catreq-service/internal/app/request/usecases/delete_product_request"
	"github.com/light-bringer/catreq-service/internal/app/request/usecases/update_request"
)

// Handler exposes the change-request workflow over HTTP JSON.
type Handler struct {
	createRequest        *create_request.Interactor
	updateRequest        *update_request.Interactor
	deleteProductRequest *delete_product_request.Interactor
	applyDecision        *apply_decision.Interactor
	assignRequest        *assign_request.Interactor
	allocateSKU          *allocate_sku.Interactor

	getRequest    *get_request.Query
	listRequests  *list_requests.Query
	listWorkloads *list_workloads.Query

	validate *validator.Validate
	logger   *logrus.Logger
}

// NewHandler creates a new request workflow handler.
func NewHandler(
	createRequest *create_request.Interactor,
	updateRequest *update_request.Interactor,
	deleteProductRequest *delete_product_request.Interactor,
	applyDecision *apply_decision.Interactor,
	assignRequest *assign_request.Interactor,
	allocateSKU *allocate_sku.Interactor,
	getRequest *get_request.Query,
	listRequests *list_requests.Query,
	listWorkloads *list_workloads.Query,
	logger *logrus.Logger,
) *Handler {
	return &Handler{
		createRequest:        createRequest,
		updateRequest:        updateRequest,
		deleteProductRequest: deleteProductRequest,
		applyDecision:        applyDecision,
		assignRequest:        assignRequest,
		allocateSKU:          allocateSKU,
		getRequest:           getRequest,
		listRequests:         listRequests,
		listWorkloads:        listWorkloads,
		validate:             validator.New(),
		logger:               logger,
	}
}

// Routes registers the handler's endpoints on a chi router.
func (h *Handler) Routes(r chi.Router) {
	r.Post("/requests", h.handleCreateRequest)
	r.Get("/requests", h.handleListRequests)
	r.Post("/requests/product-deletions", h.handleDeleteProductRequest)
	r.Get("/requests/{requestID}", h.handleGetRequest)
	r.Put("/requests/{requestID}", h.handleUpdateRequest)
	r.Post("/requests/{requestID}/decisions", h.handleApplyDecision)
	r.Post("/requests/{requestID}/assignments", h.handleAssignRequest)
	r.Get("/managers/{managerID}/workloads", h.handleListWorkloads)
	r.Post("/sku/allocations", h.handleAllocateSKU)
}

func (h *Handler) handleCreateRequest(w http.ResponseWriter, r *http.Request) {
	var dto CreateRequestDTO
	if !h.decode(w, r, &dto) {
		return
	}

	id, err := h.createRequest.Execute(r.Context(), &create_request.Request{
		RequestType: dto.RequestType,
		Name:        dto.Name,
		Price:       dto.Price,
		SKU:         dto.SKU,
		Quantity:    dto.Quantity,
		Description: dto.Description,
		CategoryID:  dto.CategoryID,
		SupplierID:  dto.SupplierID,
	})
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusCreated, CreatedResponse{RequestID: id})
}

func (h *Handler) handleUpdateRequest(w http.ResponseWriter, r *http.Request) {
	requestID, ok := h.pathID(w, r, "requestID")
	if !ok {
		return
	}

	var dto UpdateRequestDTO
	if !h.decode(w, r, &dto) {
		return
	}

	err := h.updateRequest.Execute(r.Context(), &update_request.Request{
		RequestID:   requestID,
		Name:        dto.Name,
		Price:       dto.Price,
		SKU:         dto.SKU,
		Quantity:    dto.Quantity,
		Description: dto.Description,
		CategoryID:  dto.CategoryID,
		SupplierID:  dto.SupplierID,
	})
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleDeleteProductRequest(w http.ResponseWriter, r *http.Request) {
	var dto DeleteProductRequestDTO
	if !h.decode(w, r, &dto) {
		return
	}

	id, err := h.deleteProductRequest.Execute(r.Context(), &delete_product_request.Request{
		SKU:    dto.SKU,
		UserID: dto.UserID,
	})
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusCreated, CreatedResponse{RequestID: id})
}

func (h *Handler) handleApplyDecision(w http.ResponseWriter, r *http.Request) {
	requestID, ok := h.pathID(w, r, "requestID")
	if !ok {
		return
	}

	var dto DecisionDTO
	if !h.decode(w, r, &dto) {
		return
	}

	err := h.applyDecision.Execute(r.Context(), &apply_decision.Request{
		RequestID: requestID,
		ManagerID: dto.ManagerID,
		Role:      dto.Role,
		Decision:  dto.Decision,
		Comment:   dto.Comment,
	})
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleAssignRequest(w http.ResponseWriter, r *http.Request) {
	requestID, ok := h.pathID(w, r, "requestID")
	if !ok {
		return
	}

	var dto AssignmentDTO
	if !h.decode(w, r, &dto) {
		return
	}

	err := h.assignRequest.Execute(r.Context(), &assign_request.Request{
		RequestID:  requestID,
		ManagerID:  dto.ManagerID,
		AssigneeID: dto.AssigneeID,
	})
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleAllocateSKU(w http.ResponseWriter, r *http.Request) {
	var dto AllocateSKUDTO
	if !h.decode(w, r, &dto) {
		return
	}

	sku, err := h.allocateSKU.Execute(r.Context(), &allocate_sku.Request{
		Candidate:   dto.Candidate,
		RequestType: dto.RequestType,
	})
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, AllocatedSKUResponse{SKU: sku})
}

func (h *Handler) handleGetRequest(w http.ResponseWriter, r *http.Request) {
	requestID, ok := h.pathID(w, r, "requestID")
	if !ok {
		return
	}

	view, err := h.getRequest.Execute(r.Context(), &get_request.Request{RequestID: requestID})
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, viewToDTO(view))
}

func (h *Handler) handleListRequests(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	views, err := h.listRequests.Execute(r.Context(), &list_requests.Request{
		View:       q.Get("view"),
		ActorID:    q.Get("actor_id"),
		SortKey:    q.Get("sort_by"),
		Descending: q.Get("order") == "desc",
	})
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	resp := ListRequestsResponse{
		Requests:   make([]RequestViewDTO, 0, len(views)),
		TotalCount: len(views),
	}
	for _, v := range views {
		resp.Requests = append(resp.Requests, viewToDTO(v))
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleListWorkloads(w http.ResponseWriter, r *http.Request) {
	managerID := chi.URLParam(r, "managerID")

	workloads, err := h.listWorkloads.Execute(r.Context(), &list_workloads.Request{ManagerID: managerID})
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	resp := ListWorkloadsResponse{Workloads: make([]WorkloadDTO, 0, len(workloads))}
	for _, wl := range workloads {
		resp.Workloads = append(resp.Workloads, WorkloadDTO{
			UserID:         wl.UserID,
			FirstName:      wl.FirstName,
			LastName:       wl.LastName,
			ActiveRequests: wl.ActiveRequests,
		})
	}

	writeJSON(w, http.StatusOK, resp)
}

// decode parses and validates a JSON body, replying 400 on failure.
func (h *Handler) decode(w http.ResponseWriter, r *http.Request, dto interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dto); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON body"})
		return false
	}
	if err := h.validate.Struct(dto); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return false
	}
	return true
}

// pathID parses an integer path parameter, replying 400 on failure.
func (h *Handler) pathID(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid " + name})
		return 0, false
	}
	return id, true
}
