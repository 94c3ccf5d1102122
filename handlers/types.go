// SPDX-License-Identifier: GPL-3.0-only

package handlers

// swagger:model APIResponse
type APIResponse struct {
	// Whether the operation succeeded
	Success bool `json:"success"`
	// Human-readable result of the operation
	Message string `json:"message"`
	// Payload: a message, a list of messages, or error details
	Data any `json:"data,omitempty"`
}

// swagger:model SendMessageRequest
type SendMessageRequest struct {
	// The recipient's phone number
	Recipient string `json:"recipient" example:"15551234567"`
	// The message content to be sent
	Content string `json:"content" example:"Hello, World!"`
}

// swagger:model MessageDetails
type MessageDetails struct {
	// Unique identifier of the message
	ID string `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	// Recipient phone number as submitted by the caller
	Recipient string `json:"recipient" example:"15551234567"`
	// Message body
	Content string `json:"content" example:"Hello, World!"`
	// Lifecycle status, always "sent" for stored messages
	Status string `json:"status" example:"sent"`
	// Identifier of the owning user
	UserID uint `json:"userId" example:"1"`
	// Timestamp of when the message was created
	CreatedAt string `json:"createdAt" example:"2023-10-01T12:00:00Z"`
}

// swagger:model SignupRequest
type SignupRequest struct {
	// User's email address
	// required: true
	Email string `json:"email" example:"user@example.com"`
	// User's password
	// required: true
	Password string `json:"password" example:"MySecretPassword@123"`
	// Optional full name
	FullName *string `json:"full_name" example:"John Doe"`
	// Optional phone number
	PhoneNumber *string `json:"phone_number" example:"+15551234567"`
}

// swagger:model LoginRequest
type LoginRequest struct {
	// User's email address
	Email string `json:"email" example:"user@example.com"`
	// User's password
	Password string `json:"password" example:"MySecretPassword@123"`
}

// swagger:model AuthResponse
type AuthResponse struct {
	// Authentication session token
	// Should be used in the Authorization header as a Bearer token.
	SessionToken string `json:"session_token" example:"sample_session_token"`
	// Message indicating successful operation
	Message string `json:"message" example:"Login successful"`
}

// swagger:model GenericResponse
type GenericResponse struct {
	// Message indicating the result of the operation
	Message string `json:"message"`
}

// swagger:model GetUserResponse
type GetUserResponse struct {
	// Unique identifier for the user
	ID uint `json:"id" example:"1"`
	// Email address associated with the user's account
	Email string `json:"email" example:"user@example.com"`
	// Full name of the user
	FullName *string `json:"full_name" example:"John Doe"`
	// Phone number of the user
	PhoneNumber *string `json:"phone_number" example:"+15551234567"`
	// Timestamp of when the account was created
	CreatedAt string `json:"created_at" example:"2023-10-01T12:00:00Z"`
	// Message indicating successful retrieval
	Message string `json:"message" example:"User retrieved successfully"`
}
