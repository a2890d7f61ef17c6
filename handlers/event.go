package handlers

import (
	"net/http"
	"settleup-backend/config"
	"settleup-backend/database"
	"settleup-backend/models"
	"settleup-backend/services"
	"settleup-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// POST /api/events
func CreateEvent(c *gin.Context) {
	userID := utils.GetCurrentUserID(c)

	var req models.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	currency := req.Currency
	if currency == "" {
		currency = config.AppConfig.DefaultCurrency
	}

	event := models.Event{
		Name:      req.Name,
		Currency:  currency,
		CreatedBy: userID,
	}

	if err := database.DB.Create(&event).Error; err != nil {
		utils.InternalError(c, "Failed to create event")
		return
	}

	// Initial participants keep the order they were submitted in: their
	// position decides who picks up the odd cents of an equal split.
	for i, name := range req.Participants {
		database.DB.Create(&models.Participant{
			EventID:  event.ID,
			Name:     name,
			Position: i,
		})
	}

	utils.SuccessResponse(c, http.StatusCreated, "Event created", buildEventResponse(event.ID))
}

// GET /api/events
func GetEvents(c *gin.Context) {
	userID := utils.GetCurrentUserID(c)

	var events []models.Event
	database.DB.
		Joins("LEFT JOIN participants ON participants.event_id = events.id").
		Where("events.created_by = ? OR participants.user_id = ?", userID, userID).
		Group("events.id").
		Order("events.created_at DESC").
		Find(&events)

	var responses []models.EventResponse
	for _, e := range events {
		responses = append(responses, buildEventResponse(e.ID))
	}

	utils.SuccessResponse(c, http.StatusOK, "", responses)
}

// GET /api/events/:id
func GetEvent(c *gin.Context) {
	userID := utils.GetCurrentUserID(c)
	eventID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "Invalid event ID")
		return
	}

	if !canAccessEvent(eventID, userID) {
		utils.Unauthorized(c, "You do not have access to this event")
		return
	}

	response := buildEventResponse(eventID)
	if response.ID == uuid.Nil {
		utils.NotFound(c, "Event not found")
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", response)
}

// POST /api/events/:id/participants
func AddParticipant(c *gin.Context) {
	userID := utils.GetCurrentUserID(c)
	eventID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "Invalid event ID")
		return
	}

	if !canAccessEvent(eventID, userID) {
		utils.Unauthorized(c, "You do not have access to this event")
		return
	}

	var req models.AddParticipantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	var linkedUserID *uuid.UUID
	if req.UserID != "" {
		parsed, err := uuid.Parse(req.UserID)
		if err != nil {
			utils.BadRequest(c, "Invalid user ID")
			return
		}
		linkedUserID = &parsed
	}

	// New participants go to the end of the ordered list so existing
	// positions (and therefore past remainder assignments) never shift.
	var count int64
	database.DB.Model(&models.Participant{}).Where("event_id = ?", eventID).Count(&count)

	participant := models.Participant{
		EventID:  eventID,
		UserID:   linkedUserID,
		Name:     req.Name,
		Position: int(count),
	}

	if err := database.DB.Create(&participant).Error; err != nil {
		utils.InternalError(c, "Failed to add participant")
		return
	}

	services.InvalidateEventDebts(eventID)

	database.DB.Create(&models.Activity{
		EventID:     eventID,
		UserID:      userID,
		Type:        "participant_added",
		ReferenceID: participant.ID,
		Description: req.Name + " joined the event",
	})

	utils.SuccessResponse(c, http.StatusCreated, "Participant added", participant)
}

// canAccessEvent allows the creator and any participant linked to the user.
func canAccessEvent(eventID, userID uuid.UUID) bool {
	var event models.Event
	if err := database.DB.First(&event, eventID).Error; err != nil {
		return false
	}
	if event.CreatedBy == userID {
		return true
	}

	var count int64
	database.DB.Model(&models.Participant{}).
		Where("event_id = ? AND user_id = ?", eventID, userID).
		Count(&count)
	return count > 0
}

func buildEventResponse(eventID uuid.UUID) models.EventResponse {
	var event models.Event
	if err := database.DB.First(&event, eventID).Error; err != nil {
		return models.EventResponse{}
	}

	var participants []models.Participant
	database.DB.Where("event_id = ?", eventID).Order("position ASC").Find(&participants)

	return models.EventResponse{
		ID:           event.ID,
		Name:         event.Name,
		Currency:     event.Currency,
		CreatedBy:    event.CreatedBy,
		Participants: participants,
		CreatedAt:    event.CreatedAt,
	}
}
