package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/example/verda/internal/models"
)

// TelegramService announces order events to the staff chat. When no bot
// token or chat is configured every call is a logged no-op; notification
// failures are never surfaced to the customer.
type TelegramService struct {
	botToken    string
	adminChatID string
}

// NewTelegramService creates a new TelegramService.
func NewTelegramService(botToken, adminChatID string) *TelegramService {
	return &TelegramService{
		botToken:    botToken,
		adminChatID: adminChatID,
	}
}

type telegramMessage struct {
	ChatID    string `json:"chat_id"`
	Text      string `json:"text"`
	ParseMode string `json:"parse_mode"`
}

// SendMessage sends a message to specified chat.
func (s *TelegramService) SendMessage(chatID, text string) error {
	if s.botToken == "" {
		log.Println("[Telegram] Bot token not configured")
		return nil
	}

	url := fmt.Sprintf("https://api.telegram.org/bot%s/sendMessage", s.botToken)

	msg := telegramMessage{
		ChatID:    chatID,
		Text:      text,
		ParseMode: "HTML",
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	resp, err := http.Post(url, "application/json", bytes.NewReader(body))
	if err != nil {
		log.Printf("[Telegram] Failed to send message: %v", err)
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("[Telegram] Unexpected status: %d", resp.StatusCode)
		return fmt.Errorf("telegram returned status %d", resp.StatusCode)
	}

	return nil
}

// SendToAdmin sends a message to the staff chat.
func (s *TelegramService) SendToAdmin(text string) error {
	if s.adminChatID == "" {
		log.Println("[Telegram] Admin chat ID not configured")
		return nil
	}
	return s.SendMessage(s.adminChatID, text)
}

// NotifyNewOrder announces a freshly placed order.
func (s *TelegramService) NotifyNewOrder(order *models.Order) error {
	var b strings.Builder
	fmt.Fprintf(&b, "🛒 <b>New order %s</b>\n", order.OrderNumber())
	fmt.Fprintf(&b, "Customer: %s (%s)\n", order.CustomerName, order.CustomerEmail)
	fmt.Fprintf(&b, "Phone: %s\n", order.ShippingAddress.Phone)
	b.WriteString("\n")
	for _, item := range order.Items {
		label := item.Name
		if item.Color != "" {
			label = fmt.Sprintf("%s (%s)", item.Name, item.Color)
		}
		fmt.Fprintf(&b, "• %s × %d\n", label, item.Quantity)
	}
	fmt.Fprintf(&b, "\nTotal: ₹%.0f\nPayment: cash on delivery", order.TotalAmount)

	return s.SendToAdmin(b.String())
}

// NotifyOrderCancelled announces a customer cancellation.
func (s *TelegramService) NotifyOrderCancelled(order *models.Order) error {
	text := fmt.Sprintf(
		"❌ <b>Order %s cancelled by customer</b>\nCustomer: %s (%s)\nTotal: ₹%.0f",
		order.OrderNumber(), order.CustomerName, order.CustomerEmail, order.TotalAmount,
	)
	return s.SendToAdmin(text)
}
