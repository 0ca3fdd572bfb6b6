package services

import (
	"log"
)

// OrderSummary is the metadata handed to the staff-notification collaborator
// after an order is created.
type OrderSummary struct {
	OrderID      uint   `json:"orderId"`
	OrderNumber  string `json:"orderNumber"`
	CustomerName string `json:"customerName"`
	Amount       int64  `json:"amount"`
}

// Notifier is a fire-and-forget capability: retry and escalation policy live
// behind it, and a failure must never fail the order flow.
type Notifier interface {
	Notify(OrderSummary) error
}

// LogNotifier is the default collaborator; deployments swap in the real
// alarm integration.
type LogNotifier struct{}

func (LogNotifier) Notify(o OrderSummary) error {
	log.Printf("order notification: %s (#%d) for %s, ₹%.2f",
		o.OrderNumber, o.OrderID, o.CustomerName, float64(o.Amount)/100)
	return nil
}
