package services

import (
	"context"
	"fmt"
	"log"
	"os"

	"settleup-backend/config"
	"settleup-backend/database"
	"settleup-backend/engine/money"
	"settleup-backend/models"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	sendgrid "github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"google.golang.org/api/option"
)

type NotificationService struct {
	messaging *messaging.Client
}

var notifService *NotificationService

func GetNotificationService() *NotificationService {
	if notifService == nil {
		notifService = &NotificationService{messaging: newMessagingClient()}
	}
	return notifService
}

// newMessagingClient sets up Firebase Cloud Messaging. Missing credentials
// disable push instead of failing startup.
func newMessagingClient() *messaging.Client {
	credPath := config.AppConfig.FirebaseCredPath
	if _, err := os.Stat(credPath); err != nil {
		log.Println("⚠️  Firebase credentials not found, push notifications disabled")
		return nil
	}

	app, err := firebase.NewApp(context.Background(), nil, option.WithCredentialsFile(credPath))
	if err != nil {
		log.Printf("⚠️  Firebase init failed, push notifications disabled: %v", err)
		return nil
	}

	client, err := app.Messaging(context.Background())
	if err != nil {
		log.Printf("⚠️  Firebase messaging init failed: %v", err)
		return nil
	}
	return client
}

func (ns *NotificationService) sendPush(fcmToken string, title string, body string, data map[string]string) {
	if ns.messaging == nil || fcmToken == "" {
		return
	}

	_, err := ns.messaging.Send(context.Background(), &messaging.Message{
		Token: fcmToken,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	})
	if err != nil {
		log.Printf("❌ FCM send error: %v", err)
		return
	}
	log.Printf("✅ Push notification sent")
}

func (ns *NotificationService) sendEmail(toEmail string, toName string, subject string, htmlBody string) {
	if config.AppConfig.SendGridAPIKey == "" {
		log.Printf("⚠️  SendGrid API key not set, skipping email to %s", toEmail)
		return
	}

	from := mail.NewEmail(config.AppConfig.AppName, config.AppConfig.SendGridFrom)
	to := mail.NewEmail(toName, toEmail)
	message := mail.NewSingleEmail(from, subject, to, subject, htmlBody)

	client := sendgrid.NewSendClient(config.AppConfig.SendGridAPIKey)
	resp, err := client.Send(message)
	if err != nil {
		log.Printf("❌ SendGrid error: %v", err)
		return
	}
	if resp.StatusCode >= 300 {
		log.Printf("⚠️  SendGrid returned status: %d", resp.StatusCode)
	}
}

// NotifyPaymentRecorded tells the payee their debtor has settled up. Only
// participants linked to a registered user can be reached.
func (ns *NotificationService) NotifyPaymentRecorded(payment models.Payment, payer, payee models.Participant, event models.Event) {
	if payee.UserID == nil {
		return
	}

	var user models.User
	if err := database.DB.First(&user, *payee.UserID).Error; err != nil {
		return
	}

	title := "Payment received"
	body := fmt.Sprintf("%s paid you %s %.2f in %s",
		payer.Name, event.Currency, money.FromMinorUnits(payment.AmountMinor), event.Name)

	ns.sendPush(user.FCMToken, title, body, map[string]string{
		"type":       "payment_recorded",
		"event_id":   event.ID.String(),
		"payment_id": payment.ID.String(),
	})
	ns.sendEmail(user.Email, user.Name, title, fmt.Sprintf("<p>%s</p>", body))
}

// NotifyExpenseAdded tells every linked participant (except the payer) that a
// new expense changed their share.
func (ns *NotificationService) NotifyExpenseAdded(expense models.Expense, payer models.Participant, event models.Event) {
	var participants []models.Participant
	database.DB.Where("event_id = ? AND user_id IS NOT NULL", event.ID).Find(&participants)

	title := "New expense in " + event.Name
	body := fmt.Sprintf("%s added \"%s\" (%s %.2f)",
		payer.Name, expense.Description, event.Currency, money.Round(expense.Amount))

	for _, p := range participants {
		if p.ID == payer.ID || p.UserID == nil {
			continue
		}
		var user models.User
		if err := database.DB.First(&user, *p.UserID).Error; err != nil {
			continue
		}
		ns.sendPush(user.FCMToken, title, body, map[string]string{
			"type":       "expense_added",
			"event_id":   event.ID.String(),
			"expense_id": expense.ID.String(),
		})
	}
}
