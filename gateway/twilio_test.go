// SPDX-License-Identifier: GPL-3.0-only

package gateway

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestNewClientMissingCredentials(t *testing.T) {
	t.Setenv("TWILIO_ACCOUNT_SID", "")
	t.Setenv("TWILIO_AUTH_TOKEN", "")
	t.Setenv("TWILIO_FROM_NUMBER", "")

	_, err := NewClient(Config{})
	if err == nil {
		t.Error("Expected an error when no credentials are configured")
	}
}

func TestClientSendSuccess(t *testing.T) {
	var gotPath, gotUser, gotPass, gotTo, gotFrom, gotBody string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotUser, gotPass, _ = r.BasicAuth()
		if err := r.ParseForm(); err != nil {
			t.Errorf("Failed to parse form: %v", err)
		}
		gotTo = r.FormValue("To")
		gotFrom = r.FormValue("From")
		gotBody = r.FormValue("Body")
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		fmt.Fprint(w, `{"sid":"SM1","status":"queued","to":"+15551234567","from":"+15557654321"}`)
	}))
	defer srv.Close()

	client, err := NewClient(Config{
		AccountSID: "AC123",
		AuthToken:  "secret",
		From:       "+15557654321",
		BaseURL:    srv.URL,
	})
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}

	receipt, err := client.Send("+15551234567", "hello")
	if err != nil {
		t.Fatalf("Send failed: %v", err)
	}

	if gotPath != "/2010-04-01/Accounts/AC123/Messages.json" {
		t.Errorf("Unexpected request path: %s", gotPath)
	}
	if gotUser != "AC123" || gotPass != "secret" {
		t.Errorf("Unexpected basic auth: %s / %s", gotUser, gotPass)
	}
	if gotTo != "+15551234567" || gotFrom != "+15557654321" || gotBody != "hello" {
		t.Errorf("Unexpected form values: To=%s From=%s Body=%s", gotTo, gotFrom, gotBody)
	}
	if receipt.SID != "SM1" || receipt.Status != "queued" {
		t.Errorf("Unexpected receipt: %+v", receipt)
	}
}

func TestClientSendRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		fmt.Fprint(w, `{"code":20003,"message":"Authentication Error - invalid username"}`)
	}))
	defer srv.Close()

	client, err := NewClient(Config{
		AccountSID: "AC123",
		AuthToken:  "wrong",
		From:       "+15557654321",
		BaseURL:    srv.URL,
	})
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}

	receipt, err := client.Send("+15551234567", "hello")
	if err == nil {
		t.Fatal("Expected an error for a rejected send")
	}
	if receipt != nil {
		t.Errorf("Expected no receipt on failure, got %+v", receipt)
	}
	if !strings.Contains(err.Error(), "20003") {
		t.Errorf("Expected provider error code in message, got: %v", err)
	}
}

func TestClientSendTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	client, err := NewClient(Config{
		AccountSID: "AC123",
		AuthToken:  "secret",
		From:       "+15557654321",
		BaseURL:    srv.URL,
	})
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}

	if _, err := client.Send("+15551234567", "hello"); err == nil {
		t.Error("Expected an error when the provider is unreachable")
	}
}
