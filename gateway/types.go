// SPDX-License-Identifier: GPL-3.0-only

package gateway

import (
	"net/http"
	"net/url"
)

// Config carries the provider settings read once at client construction.
// Zero-value fields fall back to the TWILIO_* environment variables.
type Config struct {
	AccountSID string
	AuthToken  string
	From       string
	BaseURL    string
}

// DeliveryReceipt is the provider's confirmation of an accepted message.
// The service logs it and moves on; nothing downstream interprets it.
type DeliveryReceipt struct {
	SID    string `json:"sid"`
	Status string `json:"status"`
	To     string `json:"to"`
	From   string `json:"from"`
}

// Sender is the narrow slice of the SMS provider the message workflow needs.
// Tests swap in a fake; production wires the Twilio client.
type Sender interface {
	Send(recipient, body string) (*DeliveryReceipt, error)
}

type Client struct {
	BaseURL    *url.URL
	AccountSID string
	AuthToken  string
	From       string
	HTTPClient *http.Client
}
