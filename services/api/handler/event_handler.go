package handler

import (
	"net/http"

	"auction-house/internal/auctionerrors"
	"auction-house/internal/auth"
	model "auction-house/internal/models"
	"auction-house/services/api/helpers"
	"auction-house/utils"

	"github.com/gin-gonic/gin"
)

type EventHandler struct {
	service EventServiceInterface
}

func NewEventHandler(service EventServiceInterface) *EventHandler {
	return &EventHandler{service: service}
}

// CreateEventHandler handles POST /events
func (h *EventHandler) CreateEventHandler(c *gin.Context) {
	actor, _ := auth.CurrentUserID(c)

	var candidate *model.Event
	var req helpers.EventRequest
	if helpers.BindJSON(c, "CreateEventHandler", &req) {
		candidate = req.ToEvent()
	}

	event, err := h.service.CreateEvent(c.Request.Context(), candidate, actor)
	if err != nil {
		helpers.RespondError(c, "CreateEventHandler", err, map[string]any{"user_id": actor})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, event)
	helpers.LogSuccess("CreateEventHandler", "event created successfully", map[string]any{
		"event_id":     event.ID,
		"user_id":      actor,
		"auction_type": event.AuctionType,
	})
}

// UpdateEventHandler handles PUT /events/:id
func (h *EventHandler) UpdateEventHandler(c *gin.Context) {
	actor, _ := auth.CurrentUserID(c)
	eventID := helpers.ParamID(c, "id")

	var candidate *model.Event
	var req helpers.EventRequest
	if helpers.BindJSON(c, "UpdateEventHandler", &req) && eventID != 0 {
		candidate = req.ToEvent()
		candidate.ID = eventID
	}

	event, err := h.service.UpdateEvent(c.Request.Context(), candidate, actor)
	if err != nil {
		helpers.RespondError(c, "UpdateEventHandler", err, map[string]any{
			"event_id": eventID,
			"user_id":  actor,
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, event)
	helpers.LogSuccess("UpdateEventHandler", "event updated successfully", map[string]any{
		"event_id": event.ID,
		"status":   event.Status,
		"user_id":  actor,
	})
}

// GetEventHandler handles GET /events/:id
func (h *EventHandler) GetEventHandler(c *gin.Context) {
	eventID := helpers.ParamID(c, "id")
	if eventID == 0 {
		helpers.RespondError(c, "GetEventHandler", auctionerrors.ErrInvalidRequest, map[string]any{"param": c.Param("id")})
		return
	}

	event, err := h.service.GetEvent(c.Request.Context(), eventID)
	if err != nil {
		helpers.RespondError(c, "GetEventHandler", err, map[string]any{"event_id": eventID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, event)
}

// ListEventsHandler handles GET /events
func (h *EventHandler) ListEventsHandler(c *gin.Context) {
	events, err := h.service.ListEvents(c.Request.Context())
	if err != nil {
		helpers.RespondError(c, "ListEventsHandler", err, nil)
		return
	}

	if events == nil {
		events = []model.Event{}
	}

	utils.JSONResponse(c, http.StatusOK, events)
	helpers.LogSuccess("ListEventsHandler", "events retrieved successfully", map[string]any{
		"count": len(events),
	})
}

// DeleteEventHandler handles DELETE /events/:id
func (h *EventHandler) DeleteEventHandler(c *gin.Context) {
	actor, _ := auth.CurrentUserID(c)
	eventID := helpers.ParamID(c, "id")

	deleted, err := h.service.DeleteEvent(c.Request.Context(), eventID, actor)
	if err != nil {
		helpers.RespondError(c, "DeleteEventHandler", err, map[string]any{
			"event_id": eventID,
			"user_id":  actor,
		})
		return
	}
	if !deleted {
		helpers.RespondError(c, "DeleteEventHandler", auctionerrors.ErrEventNotExist, map[string]any{"event_id": eventID})
		return
	}

	c.Status(http.StatusNoContent)
	helpers.LogSuccess("DeleteEventHandler", "event deleted successfully", map[string]any{
		"event_id": eventID,
		"user_id":  actor,
	})
}
