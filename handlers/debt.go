package handlers

import (
	"net/http"
	"settleup-backend/services"
	"settleup-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// GET /api/events/:id/debts
//
// Returns every debt view for the event in one payload: the raw per-expense
// derivation, the minimal transfer set before payments, and the outstanding
// set after payments in both simplified and pairwise-detailed form. All four
// are recomputed from the current snapshot (and briefly cached), never
// patched incrementally.
func GetEventDebts(c *gin.Context) {
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

	summary, err := services.ComputeEventDebts(eventID)
	if err != nil {
		utils.NotFound(c, "Event not found")
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", summary)
}
