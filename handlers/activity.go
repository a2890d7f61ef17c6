package handlers

import (
	"net/http"
	"settleup-backend/database"
	"settleup-backend/models"
	"settleup-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// GET /api/activity — activity across all events the user can see
func GetActivity(c *gin.Context) {
	userID := utils.GetCurrentUserID(c)

	var pagination utils.PaginationQuery
	c.ShouldBindQuery(&pagination)

	var events []models.Event
	database.DB.
		Joins("LEFT JOIN participants ON participants.event_id = events.id").
		Where("events.created_by = ? OR participants.user_id = ?", userID, userID).
		Group("events.id").
		Find(&events)

	var eventIDs []uuid.UUID
	for _, e := range events {
		eventIDs = append(eventIDs, e.ID)
	}

	var activities []models.Activity
	if len(eventIDs) > 0 {
		database.DB.Where("event_id IN ?", eventIDs).
			Order("created_at DESC").
			Offset(pagination.Offset()).
			Limit(pagination.Limit).
			Find(&activities)
	}

	utils.SuccessResponse(c, http.StatusOK, "", activities)
}

// GET /api/events/:id/activity
func GetEventActivity(c *gin.Context) {
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

	var pagination utils.PaginationQuery
	c.ShouldBindQuery(&pagination)

	var activities []models.Activity
	database.DB.Where("event_id = ?", eventID).
		Order("created_at DESC").
		Offset(pagination.Offset()).
		Limit(pagination.Limit).
		Find(&activities)

	utils.SuccessResponse(c, http.StatusOK, "", activities)
}
