package handlers

import (
	"net/http"

	"ouiimi/services/business"

	"github.com/gin-gonic/gin"
)

// BusinessHandler exposes business, staff, and service catalogue endpoints.
type BusinessHandler struct {
	BusinessService business.BusinessService
}

func NewBusinessHandler(svc business.BusinessService) *BusinessHandler {
	return &BusinessHandler{BusinessService: svc}
}

// RegisterBusinessHandler handles POST /businesses.
func (h *BusinessHandler) RegisterBusinessHandler(c *gin.Context) {
	ownerID, ok := callerID(c)
	if !ok {
		return
	}

	var req business.RegisterBusinessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	biz, err := h.BusinessService.RegisterBusiness(ownerID, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, biz)
}

// UpdateBusinessHandler handles PUT /businesses/:id.
func (h *BusinessHandler) UpdateBusinessHandler(c *gin.Context) {
	ownerID, ok := callerID(c)
	if !ok {
		return
	}

	var updates map[string]interface{}
	if err := c.ShouldBindJSON(&updates); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	biz, err := h.BusinessService.UpdateBusiness(ownerID, c.Param("id"), updates)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, biz)
}

// GetBusinessHandler handles GET /businesses/:id.
func (h *BusinessHandler) GetBusinessHandler(c *gin.Context) {
	biz, err := h.BusinessService.GetBusiness(c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, biz)
}

// GetMyBusinessHandler handles GET /businesses/mine.
func (h *BusinessHandler) GetMyBusinessHandler(c *gin.Context) {
	ownerID, ok := callerID(c)
	if !ok {
		return
	}
	biz, err := h.BusinessService.GetBusinessByOwner(ownerID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, biz)
}

// ListBusinessesHandler handles GET /businesses.
func (h *BusinessHandler) ListBusinessesHandler(c *gin.Context) {
	businesses, err := h.BusinessService.ListBusinesses()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, businesses)
}

// AddStaffHandler handles POST /businesses/:id/staff.
func (h *BusinessHandler) AddStaffHandler(c *gin.Context) {
	ownerID, ok := callerID(c)
	if !ok {
		return
	}

	var req business.StaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	member, err := h.BusinessService.AddStaff(ownerID, c.Param("id"), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, member)
}

// UpdateStaffHandler handles PUT /staff/:id.
func (h *BusinessHandler) UpdateStaffHandler(c *gin.Context) {
	ownerID, ok := callerID(c)
	if !ok {
		return
	}

	var req business.StaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	member, err := h.BusinessService.UpdateStaff(ownerID, c.Param("id"), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, member)
}

// DeactivateStaffHandler handles DELETE /staff/:id.
func (h *BusinessHandler) DeactivateStaffHandler(c *gin.Context) {
	ownerID, ok := callerID(c)
	if !ok {
		return
	}
	if err := h.BusinessService.DeactivateStaff(ownerID, c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Staff member deactivated"})
}

// ListStaffHandler handles GET /businesses/:id/staff. Owners get the full
// roster with ?all=true; everyone else sees active members only.
func (h *BusinessHandler) ListStaffHandler(c *gin.Context) {
	activeOnly := c.Query("all") != "true"
	staff, err := h.BusinessService.ListStaff(c.Param("id"), activeOnly)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, staff)
}

// CreateServiceHandler handles POST /businesses/:id/services.
func (h *BusinessHandler) CreateServiceHandler(c *gin.Context) {
	ownerID, ok := callerID(c)
	if !ok {
		return
	}

	var req business.ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	svc, err := h.BusinessService.CreateService(ownerID, c.Param("id"), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, svc)
}

// UpdateServiceHandler handles PUT /services/:id.
func (h *BusinessHandler) UpdateServiceHandler(c *gin.Context) {
	ownerID, ok := callerID(c)
	if !ok {
		return
	}

	var req business.ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	svc, err := h.BusinessService.UpdateService(ownerID, c.Param("id"), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, svc)
}

// DeleteServiceHandler handles DELETE /services/:id.
func (h *BusinessHandler) DeleteServiceHandler(c *gin.Context) {
	ownerID, ok := callerID(c)
	if !ok {
		return
	}
	if err := h.BusinessService.DeleteService(ownerID, c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Service deleted"})
}

// GetServiceHandler handles GET /services/:id.
func (h *BusinessHandler) GetServiceHandler(c *gin.Context) {
	svc, err := h.BusinessService.GetService(c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, svc)
}

// ListServicesHandler handles GET /businesses/:id/services.
func (h *BusinessHandler) ListServicesHandler(c *gin.Context) {
	services, err := h.BusinessService.ListServices(c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, services)
}

type replaceSlotsRequest struct {
	TimeSlots []business.SlotRequest `json:"timeSlots" binding:"required,dive"`
}

// ReplaceTimeSlotsHandler handles PUT /services/:id/timeslots.
func (h *BusinessHandler) ReplaceTimeSlotsHandler(c *gin.Context) {
	ownerID, ok := callerID(c)
	if !ok {
		return
	}

	var req replaceSlotsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	svc, err := h.BusinessService.ReplaceTimeSlots(ownerID, c.Param("id"), req.TimeSlots)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, svc)
}
