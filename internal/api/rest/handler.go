package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/gemveer/inventory/internal/api/middleware"
	"github.com/gemveer/inventory/internal/api/shared/dto"
	"github.com/gemveer/inventory/internal/api/shared/executor"
	"github.com/gemveer/inventory/internal/domain"
)

// Handler defines the interface for REST API handlers
type Handler interface {
	// Login verifies credentials and mints a session token
	// POST /api/v1/auth/login
	Login(c *gin.Context)

	// RecordTransfer appends a custody handover
	// POST /api/v1/assign-packet
	RecordTransfer(c *gin.Context)

	// GetHistory returns the custody history of a packet
	// GET /api/v1/assign/:packetNo
	GetHistory(c *gin.Context)

	// ListTransfers returns the transfers visible to the requester
	// GET /api/v1/transactions?limit=<limit>&offset=<offset>
	ListTransfers(c *gin.Context)

	// GetTransfer returns a single transfer record
	// GET /api/v1/transactions/:transactionNo
	GetTransfer(c *gin.Context)

	// CancelTransfer marks a transfer as cancelled
	// DELETE /api/v1/transactions/:transactionNo
	CancelTransfer(c *gin.Context)

	// CreatePacket creates a standalone packet
	// POST /api/v1/packet
	CreatePacket(c *gin.Context)

	// ListPackets returns the packets visible to the requester
	// GET /api/v1/packet?status=<status>&limit=<limit>&offset=<offset>
	ListPackets(c *gin.Context)

	// GetPacketByNo returns a single packet by its packet number
	// GET /api/v1/packet/no/:packetNo
	GetPacketByNo(c *gin.Context)

	// UpdatePacket applies a partial update to a packet
	// PUT /api/v1/packet/:id
	UpdatePacket(c *gin.Context)

	// DeletePacket deletes a packet
	// DELETE /api/v1/packet/:id
	DeletePacket(c *gin.Context)

	// CreatePurchase creates a purchase lot
	// POST /api/v1/purchase
	CreatePurchase(c *gin.Context)

	// ListPurchases returns all purchases
	// GET /api/v1/purchase?limit=<limit>&offset=<offset>
	ListPurchases(c *gin.Context)

	// GetPurchase returns a purchase with its packets
	// GET /api/v1/purchase/:id
	GetPurchase(c *gin.Context)

	// UpdatePurchase applies a partial update to a purchase
	// PUT /api/v1/purchase/:id
	UpdatePurchase(c *gin.Context)

	// DeletePurchase deletes a purchase
	// DELETE /api/v1/purchase/:id
	DeletePurchase(c *gin.Context)

	// AddPacketsToPurchase creates packets under a purchase
	// POST /api/v1/purchase/:id/packets
	AddPacketsToPurchase(c *gin.Context)

	// CreateManager creates a manager
	// POST /api/v1/managers
	CreateManager(c *gin.Context)

	// ListManagers returns all managers
	// GET /api/v1/managers
	ListManagers(c *gin.Context)

	// GetManager returns a single manager
	// GET /api/v1/managers/:id
	GetManager(c *gin.Context)

	// UpdateManager applies a partial update to a manager
	// PUT /api/v1/managers/:id
	UpdateManager(c *gin.Context)

	// DeleteManager deletes a manager
	// DELETE /api/v1/managers/:id
	DeleteManager(c *gin.Context)

	// CreateWorker creates a worker
	// POST /api/v1/workers
	CreateWorker(c *gin.Context)

	// ListWorkers returns the workers visible to the requester
	// GET /api/v1/workers
	ListWorkers(c *gin.Context)

	// GetWorker returns a single worker
	// GET /api/v1/workers/:id
	GetWorker(c *gin.Context)

	// UpdateWorker applies a partial update to a worker
	// PUT /api/v1/workers/:id
	UpdateWorker(c *gin.Context)

	// DeleteWorker deletes a worker
	// DELETE /api/v1/workers/:id
	DeleteWorker(c *gin.Context)

	// CreateLookupValue creates one grading lookup row
	// POST /api/v1/lookups/:kind
	CreateLookupValue(c *gin.Context)

	// ListLookupValues returns all rows of one grading lookup table
	// GET /api/v1/lookups/:kind
	ListLookupValues(c *gin.Context)

	// DeleteLookupValue deletes one grading lookup row
	// DELETE /api/v1/lookups/:kind/:id
	DeleteLookupValue(c *gin.Context)

	// CreateProcess creates a process
	// POST /api/v1/process
	CreateProcess(c *gin.Context)

	// ListProcesses returns all processes
	// GET /api/v1/process
	ListProcesses(c *gin.Context)

	// DeleteProcess deletes a process
	// DELETE /api/v1/process/:id
	DeleteProcess(c *gin.Context)

	// CreateParty creates a supplier
	// POST /api/v1/party
	CreateParty(c *gin.Context)

	// ListParties returns all suppliers
	// GET /api/v1/party
	ListParties(c *gin.Context)

	// HealthCheck returns the health status of the API
	// GET /health
	HealthCheck(c *gin.Context)
}

// handler implements the Handler interface
type handler struct {
	executor executor.Executor
}

// NewHandler creates a new REST API handler using the shared executor
func NewHandler(exec executor.Executor) Handler {
	return &handler{executor: exec}
}

// Login verifies credentials and mints a session token
func (h *handler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	resp, err := h.executor.Login(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// RecordTransfer appends a custody handover
func (h *handler) RecordTransfer(c *gin.Context) {
	var req dto.RecordTransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	resp, err := h.executor.RecordTransfer(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// GetHistory returns the custody history of a packet
func (h *handler) GetHistory(c *gin.Context) {
	packetNo := c.Param("packetNo")
	if packetNo == "" {
		respondBadRequest(c, "Packet number is required")
		return
	}

	requester := middleware.RequesterFrom(c)
	resp, err := h.executor.GetHistory(c.Request.Context(), requester, packetNo)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListTransfers returns the transfers visible to the requester
func (h *handler) ListTransfers(c *gin.Context) {
	params, err := ParsePageQuery(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	requester := middleware.RequesterFrom(c)
	resp, err := h.executor.ListTransfers(c.Request.Context(), requester, params.Offset, params.Limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetTransfer returns a single transfer record
func (h *handler) GetTransfer(c *gin.Context) {
	transactionNo := c.Param("transactionNo")
	if transactionNo == "" {
		respondBadRequest(c, "Transaction number is required")
		return
	}

	requester := middleware.RequesterFrom(c)
	resp, err := h.executor.GetTransfer(c.Request.Context(), requester, transactionNo)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// CancelTransfer marks a transfer as cancelled
func (h *handler) CancelTransfer(c *gin.Context) {
	transactionNo := c.Param("transactionNo")
	if transactionNo == "" {
		respondBadRequest(c, "Transaction number is required")
		return
	}

	requester := middleware.RequesterFrom(c)
	if err := h.executor.CancelTransfer(c.Request.Context(), requester, transactionNo); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// CreatePacket creates a standalone packet
func (h *handler) CreatePacket(c *gin.Context) {
	var req dto.CreatePacketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	requester := middleware.RequesterFrom(c)
	resp, err := h.executor.CreatePacket(c.Request.Context(), requester, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// ListPackets returns the packets visible to the requester
func (h *handler) ListPackets(c *gin.Context) {
	params, err := ParseListPacketsQuery(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	requester := middleware.RequesterFrom(c)
	resp, err := h.executor.ListPackets(c.Request.Context(), requester, domain.PacketStatus(params.Status), params.Offset, params.Limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetPacketByNo returns a single packet by its packet number
func (h *handler) GetPacketByNo(c *gin.Context) {
	packetNo := c.Param("packetNo")
	if packetNo == "" {
		respondBadRequest(c, "Packet number is required")
		return
	}

	requester := middleware.RequesterFrom(c)
	resp, err := h.executor.GetPacketByNo(c.Request.Context(), requester, packetNo)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// UpdatePacket applies a partial update to a packet
func (h *handler) UpdatePacket(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req dto.UpdatePacketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	requester := middleware.RequesterFrom(c)
	resp, err := h.executor.UpdatePacket(c.Request.Context(), requester, id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// DeletePacket deletes a packet
func (h *handler) DeletePacket(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	requester := middleware.RequesterFrom(c)
	if err := h.executor.DeletePacket(c.Request.Context(), requester, id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// CreatePurchase creates a purchase lot
func (h *handler) CreatePurchase(c *gin.Context) {
	var req dto.CreatePurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	requester := middleware.RequesterFrom(c)
	resp, err := h.executor.CreatePurchase(c.Request.Context(), requester, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// ListPurchases returns all purchases
func (h *handler) ListPurchases(c *gin.Context) {
	params, err := ParsePageQuery(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	requester := middleware.RequesterFrom(c)
	resp, err := h.executor.ListPurchases(c.Request.Context(), requester, params.Offset, params.Limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetPurchase returns a purchase with its packets
func (h *handler) GetPurchase(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	requester := middleware.RequesterFrom(c)
	resp, err := h.executor.GetPurchase(c.Request.Context(), requester, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// UpdatePurchase applies a partial update to a purchase
func (h *handler) UpdatePurchase(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req dto.UpdatePurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	requester := middleware.RequesterFrom(c)
	resp, err := h.executor.UpdatePurchase(c.Request.Context(), requester, id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// DeletePurchase deletes a purchase
func (h *handler) DeletePurchase(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	requester := middleware.RequesterFrom(c)
	if err := h.executor.DeletePurchase(c.Request.Context(), requester, id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// AddPacketsToPurchase creates packets under a purchase
func (h *handler) AddPacketsToPurchase(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req dto.AddPacketsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	requester := middleware.RequesterFrom(c)
	resp, err := h.executor.AddPacketsToPurchase(c.Request.Context(), requester, id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// CreateManager creates a manager
func (h *handler) CreateManager(c *gin.Context) {
	var req dto.CreateManagerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	requester := middleware.RequesterFrom(c)
	resp, err := h.executor.CreateManager(c.Request.Context(), requester, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// ListManagers returns all managers
func (h *handler) ListManagers(c *gin.Context) {
	params, err := ParsePageQuery(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	requester := middleware.RequesterFrom(c)
	resp, err := h.executor.ListManagers(c.Request.Context(), requester, params.Offset, params.Limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetManager returns a single manager
func (h *handler) GetManager(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	requester := middleware.RequesterFrom(c)
	resp, err := h.executor.GetManager(c.Request.Context(), requester, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// UpdateManager applies a partial update to a manager
func (h *handler) UpdateManager(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req dto.UpdateManagerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	requester := middleware.RequesterFrom(c)
	resp, err := h.executor.UpdateManager(c.Request.Context(), requester, id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// DeleteManager deletes a manager
func (h *handler) DeleteManager(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	requester := middleware.RequesterFrom(c)
	if err := h.executor.DeleteManager(c.Request.Context(), requester, id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// CreateWorker creates a worker
func (h *handler) CreateWorker(c *gin.Context) {
	var req dto.CreateWorkerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	requester := middleware.RequesterFrom(c)
	resp, err := h.executor.CreateWorker(c.Request.Context(), requester, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// ListWorkers returns the workers visible to the requester
func (h *handler) ListWorkers(c *gin.Context) {
	params, err := ParsePageQuery(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	requester := middleware.RequesterFrom(c)
	resp, err := h.executor.ListWorkers(c.Request.Context(), requester, params.Offset, params.Limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetWorker returns a single worker
func (h *handler) GetWorker(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	requester := middleware.RequesterFrom(c)
	resp, err := h.executor.GetWorker(c.Request.Context(), requester, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// UpdateWorker applies a partial update to a worker
func (h *handler) UpdateWorker(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req dto.UpdateWorkerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	requester := middleware.RequesterFrom(c)
	resp, err := h.executor.UpdateWorker(c.Request.Context(), requester, id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// DeleteWorker deletes a worker
func (h *handler) DeleteWorker(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	requester := middleware.RequesterFrom(c)
	if err := h.executor.DeleteWorker(c.Request.Context(), requester, id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// CreateLookupValue creates one grading lookup row
func (h *handler) CreateLookupValue(c *gin.Context) {
	kind := domain.LookupKind(c.Param("kind"))

	var req dto.CreateLookupValueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	requester := middleware.RequesterFrom(c)
	resp, err := h.executor.CreateLookupValue(c.Request.Context(), requester, kind, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// ListLookupValues returns all rows of one grading lookup table
func (h *handler) ListLookupValues(c *gin.Context) {
	kind := domain.LookupKind(c.Param("kind"))

	resp, err := h.executor.ListLookupValues(c.Request.Context(), kind)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// DeleteLookupValue deletes one grading lookup row
func (h *handler) DeleteLookupValue(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	requester := middleware.RequesterFrom(c)
	if err := h.executor.DeleteLookupValue(c.Request.Context(), requester, id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// CreateProcess creates a process
func (h *handler) CreateProcess(c *gin.Context) {
	var req dto.CreateProcessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	requester := middleware.RequesterFrom(c)
	resp, err := h.executor.CreateProcess(c.Request.Context(), requester, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// ListProcesses returns all processes
func (h *handler) ListProcesses(c *gin.Context) {
	resp, err := h.executor.ListProcesses(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// DeleteProcess deletes a process
func (h *handler) DeleteProcess(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	requester := middleware.RequesterFrom(c)
	if err := h.executor.DeleteProcess(c.Request.Context(), requester, id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// CreateParty creates a supplier
func (h *handler) CreateParty(c *gin.Context) {
	var req dto.CreatePartyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	requester := middleware.RequesterFrom(c)
	resp, err := h.executor.CreateParty(c.Request.Context(), requester, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// ListParties returns all suppliers
func (h *handler) ListParties(c *gin.Context) {
	resp, err := h.executor.ListParties(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// HealthCheck returns the health status of the API
func (h *handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// parseIDParam parses the :id path parameter, responding on failure
func parseIDParam(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondBadRequest(c, "Invalid id", c.Param("id"))
		return uuid.Nil, false
	}
	return id, true
}
