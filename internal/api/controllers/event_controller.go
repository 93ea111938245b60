package controllers

import (
	"net/http"

	"festiva/internal/models/request_models"
	"festiva/internal/services"
	"festiva/pkg/utils"

	"github.com/gin-gonic/gin"
)

type EventController struct {
	eventService services.EventServiceInterface
}

func NewEventController(eventService services.EventServiceInterface) *EventController {
	return &EventController{
		eventService: eventService,
	}
}

// customerScope resolves whose records a list call should return: an
// explicit cid query wins, otherwise the caller's own id.
func customerScope(c *gin.Context) string {
	if cid := c.Query("cid"); cid != "" {
		return cid
	}
	return c.GetString("user_id")
}

// ListEvents godoc
// @Summary List events
// @Tags Events
// @Produce json
// @Param cid query string false "Customer id filter"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /events [get]
func (e *EventController) ListEvents(c *gin.Context) {
	events, err := e.eventService.ListEvents(c.Request.Context(), customerScope(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, events, "Events fetched successfully")
}

// GetEvent godoc
// @Summary Get an event by id
// @Tags Events
// @Produce json
// @Param id path string true "Event id"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /events/{id} [get]
func (e *EventController) GetEvent(c *gin.Context) {
	event, err := e.eventService.GetEvent(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, event, "Event fetched successfully")
}

// CreateEvent godoc
// @Summary Create an event
// @Description Creates the event and updates the owning customer's ledger
// @Tags Events
// @Accept json
// @Produce json
// @Param request body request_models.CreateEventRequest true "Event payload"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /events [post]
func (e *EventController) CreateEvent(c *gin.Context) {
	var req request_models.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	event, err := e.eventService.CreateEvent(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, event, "Event created successfully")
}

// UpdateEvent godoc
// @Summary Update an event
// @Tags Events
// @Accept json
// @Produce json
// @Param id path string true "Event id"
// @Param request body request_models.UpdateEventRequest true "Update payload"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /events/{id} [put]
func (e *EventController) UpdateEvent(c *gin.Context) {
	var req request_models.UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	event, err := e.eventService.UpdateEvent(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, event, "Event updated successfully")
}

// DeleteEvent godoc
// @Summary Delete an event
// @Tags Events
// @Produce json
// @Param id path string true "Event id"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /events/{id} [delete]
func (e *EventController) DeleteEvent(c *gin.Context) {
	if err := e.eventService.DeleteEvent(c.Request.Context(), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Event deleted successfully")
}

// AddVendor godoc
// @Summary Add a vendor to an event
// @Description Idempotent: adding a vendor twice is a no-op
// @Tags Events
// @Accept json
// @Produce json
// @Param id path string true "Event id"
// @Param request body request_models.AddVendorRequest true "Vendor payload"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /events/{id}/vendors [post]
func (e *EventController) AddVendor(c *gin.Context) {
	var req request_models.AddVendorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	event, err := e.eventService.AddVendorToEvent(c.Request.Context(), c.Param("id"), req.VendorID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, event, "Vendor added to event")
}

// GenerateTimeline godoc
// @Summary Generate an AI planning timeline for an event
// @Tags Events
// @Accept json
// @Produce json
// @Param id path string true "Event id"
// @Param request body request_models.TimelineRequest true "Timeline payload"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /events/{id}/timeline [post]
func (e *EventController) GenerateTimeline(c *gin.Context) {
	var req request_models.TimelineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	timeline, err := e.eventService.GenerateTimeline(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"timeline": timeline, "aiGenerated": true}, "Timeline generated")
}
