// SPDX-License-Identifier: GPL-3.0-only

package gateway

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"smsdash-server/commons"
	"strings"
	"time"
)

func NewClient(c Config) (*Client, error) {
	if c.AccountSID == "" {
		c.AccountSID = commons.GetEnv("TWILIO_ACCOUNT_SID")
	}
	if c.AuthToken == "" {
		c.AuthToken = commons.GetEnv("TWILIO_AUTH_TOKEN")
	}
	if c.From == "" {
		c.From = commons.GetEnv("TWILIO_FROM_NUMBER")
	}
	if c.BaseURL == "" {
		c.BaseURL = commons.GetEnv("TWILIO_API_URL", "https://api.twilio.com")
	}

	if c.AccountSID == "" || c.AuthToken == "" || c.From == "" {
		return nil, errors.New("twilio is not configured, set TWILIO_ACCOUNT_SID, TWILIO_AUTH_TOKEN and TWILIO_FROM_NUMBER")
	}

	parsedURL, err := url.Parse(c.BaseURL)
	if err != nil {
		commons.Logger.Error("Failed to parse Twilio API base URL:", err)
		return nil, err
	}
	commons.Logger.Debugf("Twilio client initialized for %s", c.BaseURL)
	return &Client{
		BaseURL:    parsedURL,
		AccountSID: c.AccountSID,
		AuthToken:  c.AuthToken,
		From:       c.From,
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
	}, nil
}

// Send performs exactly one delivery attempt against the Twilio Messages API.
// Any transport error or provider-side rejection comes back as an error; there
// is no retry and no distinction between transient and permanent failures.
func (c *Client) Send(recipient, body string) (*DeliveryReceipt, error) {
	commons.Logger.Debugf("Sending SMS to %s", recipient)
	rel := &url.URL{Path: fmt.Sprintf("/2010-04-01/Accounts/%s/Messages.json", url.PathEscape(c.AccountSID))}
	u := c.BaseURL.ResolveReference(rel)

	form := url.Values{}
	form.Set("To", recipient)
	form.Set("From", c.From)
	form.Set("Body", body)

	req, err := http.NewRequest("POST", u.String(), strings.NewReader(form.Encode()))
	if err != nil {
		commons.Logger.Error("Failed to create HTTP request for message send:", err)
		return nil, err
	}
	req.SetBasicAuth(c.AccountSID, c.AuthToken)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		commons.Logger.Error("HTTP request to Twilio failed:", err)
		return nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		commons.Logger.Error("Failed to read Twilio response:", err)
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := struct {
			Code    int    `json:"code"`
			Message string `json:"message"`
		}{}
		if json.Unmarshal(respBody, &apiErr) == nil && apiErr.Message != "" {
			commons.Logger.Errorf("Twilio rejected message to %s: %d %s", recipient, apiErr.Code, apiErr.Message)
			return nil, fmt.Errorf("twilio rejected message: %s (code %d)", apiErr.Message, apiErr.Code)
		}
		commons.Logger.Errorf("Twilio rejected message to %s: %s", recipient, resp.Status)
		return nil, fmt.Errorf("twilio rejected message: %s", resp.Status)
	}

	receipt := DeliveryReceipt{}
	if err := json.Unmarshal(respBody, &receipt); err != nil {
		commons.Logger.Error("Failed to decode Twilio delivery receipt:", err)
		return nil, err
	}
	commons.Logger.Infof("Twilio accepted message %s with status %s", receipt.SID, receipt.Status)
	return &receipt, nil
}
