package main

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// -----------------------------
// Helper functions
// -----------------------------

func jsonError(c *gin.Context, code int, msg string) {
	c.JSON(code, ApiResponse{StatusCode: code, Message: msg})
}

// parseEventTime accepts RFC3339 or "YYYY-MM-DD".
func parseEventTime(value string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		t, err = time.Parse("2006-01-02", value)
	}
	return t, err
}

// -----------------------------
// Events
// -----------------------------

type EventBody struct {
	Name      string `json:"name" binding:"required"`
	StartTime string `json:"startTime" binding:"required"` // RFC3339 or "YYYY-MM-DD"
	EndTime   string `json:"endTime" binding:"required"`
	UserIDs   []int  `json:"userIds" binding:"required"`
}

// EventController translates HTTP requests into service calls and writes
// the service's response envelope back out.
type EventController struct {
	service *EventService
}

func NewEventController(service *EventService) *EventController {
	return &EventController{service: service}
}

func (ec *EventController) bindEventRequest(c *gin.Context) (EventRequest, bool) {
	var body EventBody
	if err := c.ShouldBindJSON(&body); err != nil {
		jsonError(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return EventRequest{}, false
	}

	start, err := parseEventTime(body.StartTime)
	if err != nil {
		jsonError(c, http.StatusBadRequest, "invalid startTime format (use RFC3339 or YYYY-MM-DD)")
		return EventRequest{}, false
	}
	end, err := parseEventTime(body.EndTime)
	if err != nil {
		jsonError(c, http.StatusBadRequest, "invalid endTime format (use RFC3339 or YYYY-MM-DD)")
		return EventRequest{}, false
	}

	return EventRequest{
		Name:      strings.TrimSpace(body.Name),
		StartTime: start,
		EndTime:   end,
		UserIDs:   body.UserIDs,
	}, true
}

func (ec *EventController) GetAllUsers(c *gin.Context) {
	resp := ec.service.GetAllUsers()
	c.JSON(resp.StatusCode, resp)
}

func (ec *EventController) AddEventWithUsers(c *gin.Context) {
	req, ok := ec.bindEventRequest(c)
	if !ok {
		return
	}
	resp := ec.service.AddEventWithUsers(req)
	c.JSON(resp.StatusCode, resp)
}

func (ec *EventController) UpdateEventWithUsers(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		jsonError(c, http.StatusBadRequest, "invalid event id")
		return
	}

	req, ok := ec.bindEventRequest(c)
	if !ok {
		return
	}
	resp := ec.service.UpdateEventWithUsers(id, req)
	c.JSON(resp.StatusCode, resp)
}

func (ec *EventController) DeleteEvent(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		jsonError(c, http.StatusBadRequest, "invalid event id")
		return
	}

	resp := ec.service.DeleteEvent(id)
	c.JSON(resp.StatusCode, resp)
}

func (ec *EventController) GetAllEvents(c *gin.Context) {
	resp := ec.service.GetAllEvents()
	c.JSON(resp.StatusCode, resp)
}
