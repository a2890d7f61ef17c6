package handlers

import (
	"fmt"
	"net/http"
	"time"

	"settleup-backend/database"
	"settleup-backend/engine"
	"settleup-backend/engine/money"
	"settleup-backend/models"
	"settleup-backend/services"
	"settleup-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// POST /api/events/:id/payments
//
// Records a repayment between two participants. The engine itself tolerates
// over-payment (it just flips the debt direction), so the strictness lives
// here: a payment larger than the outstanding debt from payer to payee is
// rejected before anything is written.
func CreatePayment(c *gin.Context) {
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

	var req models.CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	payer, ok := eventParticipant(eventID, req.FromID)
	if !ok {
		utils.BadRequest(c, "Payer is not a participant of this event")
		return
	}
	payee, ok := eventParticipant(eventID, req.ToID)
	if !ok {
		utils.BadRequest(c, "Payee is not a participant of this event")
		return
	}
	if payer.ID == payee.ID {
		utils.BadRequest(c, "Payer and payee must differ")
		return
	}

	amountMinor := money.ToMinorUnits(req.Amount)
	if amountMinor <= 0 {
		utils.BadRequest(c, "Amount must be at least one cent")
		return
	}

	summary, err := services.ComputeEventDebts(eventID)
	if err != nil {
		utils.InternalError(c, "Failed to compute outstanding debts")
		return
	}
	if outstanding := outstandingBetween(summary, payer.ID, payee.ID); amountMinor > outstanding {
		utils.Conflict(c, fmt.Sprintf("Payment exceeds outstanding debt (%s %.2f)",
			summary.Currency, money.FromMinorUnits(outstanding)))
		return
	}

	recorded := engine.RecordPayment(
		eventID.String(), payer.ID.String(), payee.ID.String(),
		amountMinor, engine.PaymentSource(req.Source), time.Now().UTC(),
	)

	payment := models.Payment{
		ID:          uuid.MustParse(recorded.ID),
		EventID:     eventID,
		FromID:      payer.ID,
		ToID:        payee.ID,
		AmountMinor: recorded.AmountMinor,
		Source:      string(recorded.Source),
		Notes:       req.Notes,
		CreatedAt:   recorded.CreatedAt,
	}

	if err := database.DB.Create(&payment).Error; err != nil {
		utils.InternalError(c, "Failed to record payment")
		return
	}

	services.InvalidateEventDebts(eventID)

	var event models.Event
	database.DB.First(&event, eventID)

	database.DB.Create(&models.Activity{
		EventID:     eventID,
		UserID:      userID,
		Type:        "payment_recorded",
		ReferenceID: payment.ID,
		Description: fmt.Sprintf("%s paid %s %s %.2f", payer.Name, payee.Name, event.Currency, money.FromMinorUnits(amountMinor)),
	})

	// Notify the payee
	go services.GetNotificationService().NotifyPaymentRecorded(payment, payer, payee, event)

	utils.SuccessResponse(c, http.StatusCreated, "Payment recorded", payment)
}

// GET /api/events/:id/payments
func GetEventPayments(c *gin.Context) {
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

	var payments []models.Payment
	database.DB.Where("event_id = ?", eventID).
		Preload("From").Preload("To").
		Order("created_at DESC").
		Find(&payments)

	utils.SuccessResponse(c, http.StatusOK, "", payments)
}

// outstandingBetween sums the outstanding debt from one participant to
// another in the current effective debt set.
func outstandingBetween(summary models.EventDebtSummary, fromID, toID uuid.UUID) int64 {
	var total int64
	for _, d := range summary.Outstanding {
		if d.From == fromID && d.To == toID {
			total += d.AmountMinor
		}
	}
	return total
}
