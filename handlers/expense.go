package handlers

import (
	"fmt"
	"net/http"
	"settleup-backend/database"
	"settleup-backend/models"
	"settleup-backend/services"
	"settleup-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// POST /api/events/:id/expenses
func CreateExpense(c *gin.Context) {
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

	var req models.CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	payer, ok := eventParticipant(eventID, req.PaidBy)
	if !ok {
		utils.BadRequest(c, "Payer is not a participant of this event")
		return
	}

	expense := models.Expense{
		EventID:     eventID,
		PaidBy:      payer.ID,
		Description: req.Description,
		Amount:      req.Amount,
	}

	if err := database.DB.Create(&expense).Error; err != nil {
		utils.InternalError(c, "Failed to create expense")
		return
	}

	services.InvalidateEventDebts(eventID)

	var event models.Event
	database.DB.First(&event, eventID)

	database.DB.Create(&models.Activity{
		EventID:     eventID,
		UserID:      userID,
		Type:        "expense_added",
		ReferenceID: expense.ID,
		Description: fmt.Sprintf("%s paid \"%s\" (%s %.2f)", payer.Name, expense.Description, event.Currency, expense.Amount),
	})

	// Send notifications asynchronously
	go services.GetNotificationService().NotifyExpenseAdded(expense, payer, event)

	utils.SuccessResponse(c, http.StatusCreated, "Expense added", expense)
}

// GET /api/events/:id/expenses
func GetEventExpenses(c *gin.Context) {
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

	var expenses []models.Expense
	database.DB.Where("event_id = ?", eventID).
		Preload("Payer").
		Order("created_at DESC").
		Offset(pagination.Offset()).
		Limit(pagination.Limit).
		Find(&expenses)

	utils.SuccessResponse(c, http.StatusOK, "", expenses)
}

// PUT /api/expenses/:id
func UpdateExpense(c *gin.Context) {
	userID := utils.GetCurrentUserID(c)
	expenseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "Invalid expense ID")
		return
	}

	var expense models.Expense
	if err := database.DB.First(&expense, expenseID).Error; err != nil {
		utils.NotFound(c, "Expense not found")
		return
	}

	if !canAccessEvent(expense.EventID, userID) {
		utils.Unauthorized(c, "You do not have access to this event")
		return
	}

	var req models.UpdateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	updates := map[string]interface{}{}
	if req.Description != "" {
		updates["description"] = req.Description
	}
	if req.Amount > 0 {
		updates["amount"] = req.Amount
	}
	if req.PaidBy != "" {
		payer, ok := eventParticipant(expense.EventID, req.PaidBy)
		if !ok {
			utils.BadRequest(c, "Payer is not a participant of this event")
			return
		}
		updates["paid_by"] = payer.ID
	}

	database.DB.Model(&expense).Updates(updates)

	// Any change to the expense invalidates previously computed debts; the
	// engine recomputes from scratch, there is no incremental patching.
	services.InvalidateEventDebts(expense.EventID)

	database.DB.Create(&models.Activity{
		EventID:     expense.EventID,
		UserID:      userID,
		Type:        "expense_updated",
		ReferenceID: expense.ID,
		Description: fmt.Sprintf("\"%s\" was updated", expense.Description),
	})

	database.DB.First(&expense, expenseID)
	utils.SuccessResponse(c, http.StatusOK, "Expense updated", expense)
}

// DELETE /api/expenses/:id
func DeleteExpense(c *gin.Context) {
	userID := utils.GetCurrentUserID(c)
	expenseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "Invalid expense ID")
		return
	}

	var expense models.Expense
	if err := database.DB.First(&expense, expenseID).Error; err != nil {
		utils.NotFound(c, "Expense not found")
		return
	}

	if !canAccessEvent(expense.EventID, userID) {
		utils.Unauthorized(c, "You do not have access to this event")
		return
	}

	database.DB.Create(&models.Activity{
		EventID:     expense.EventID,
		UserID:      userID,
		Type:        "expense_deleted",
		Description: fmt.Sprintf("\"%s\" (%.2f) was deleted", expense.Description, expense.Amount),
	})

	database.DB.Delete(&expense)
	services.InvalidateEventDebts(expense.EventID)

	utils.SuccessResponse(c, http.StatusOK, "Expense deleted", nil)
}

// eventParticipant resolves a participant ID string within one event.
func eventParticipant(eventID uuid.UUID, participantID string) (models.Participant, bool) {
	id, err := uuid.Parse(participantID)
	if err != nil {
		return models.Participant{}, false
	}

	var participant models.Participant
	if err := database.DB.Where("id = ? AND event_id = ?", id, eventID).First(&participant).Error; err != nil {
		return models.Participant{}, false
	}
	return participant, true
}
