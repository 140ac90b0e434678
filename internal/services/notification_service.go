package services

import (
	"fmt"
)

// SMSSender is the outbound text-message channel. Delivery is best-effort:
// a failure is surfaced to the caller but never affects ledger or history
// state.
type SMSSender interface {
	SendSMS(to, body string) error
}

type NotificationService interface {
	SendBillSMS(phoneNumber, tableNumber, total string) error
}

type notificationService struct {
	sender SMSSender
}

func NewNotificationService(sender SMSSender) NotificationService {
	return &notificationService{sender: sender}
}

// SendBillSMS sends the customer a short bill summary for the table.
func (s *notificationService) SendBillSMS(phoneNumber, tableNumber, total string) error {
	message := fmt.Sprintf("Frenzi Cafe\nTable: %s\nTotal Bill: Rs %s\nThank you!", tableNumber, total)
	if err := s.sender.SendSMS(phoneNumber, message); err != nil {
		return fmt.Errorf("failed to send SMS: %w", err)
	}
	return nil
}
