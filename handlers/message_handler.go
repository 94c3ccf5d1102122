// SPDX-License-Identifier: GPL-3.0-only

package handlers

import (
	"errors"
	"net/http"
	"smsdash-server/commons"
	"smsdash-server/db"
	"smsdash-server/gateway"
	"smsdash-server/middlewares"
	"smsdash-server/models"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// SMSGateway is the process-wide SMS client, wired once at startup.
// Tests swap in a fake gateway.Sender.
var SMSGateway gateway.Sender

// SendMessageHandler godoc
// @Summary      Send an SMS message
// @Description  Validates the request, checks that the session identity matches the target user, delivers the message through the SMS provider and records it. The provider call and the insert are two independent effects; a crash between them loses the record for an SMS that did go out.
// @Tags         messages
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        Authorization  header  string  true  "Bearer token for authentication. Replace <your_token_here> with a valid token."  default(Bearer <your_token_here>)
// @Param        user_id  path  string  true  "Identifier of the user to send on behalf of; must match the session identity"
// @Param        sendMessageRequest  body  SendMessageRequest  true  "Send message request payload"
// @Success      201 {object} APIResponse "Message sent successfully"
// @Failure      400 {object} APIResponse "Missing required fields"
// @Failure      403 {object} APIResponse "Unauthorized"
// @Failure      404 {object} APIResponse "User not found"
// @Failure      500 {object} APIResponse "Failed to send SMS or internal server error"
// @Router       /v1/users/{user_id}/messages [post]
func SendMessageHandler(c echo.Context) error {
	logger := c.Logger()

	var req SendMessageRequest
	if err := c.Bind(&req); err != nil {
		logger.Error("Invalid send message request payload:", err)
		return c.JSON(http.StatusBadRequest, APIResponse{
			Success: false,
			Message: "Missing required fields",
		})
	}

	// Server-side check, independent of whatever the dashboard form enforced.
	if req.Recipient == "" || req.Content == "" {
		logger.Error("Recipient or content missing in message request.")
		return c.JSON(http.StatusBadRequest, APIResponse{
			Success: false,
			Message: "Missing required fields",
		})
	}

	session, err := middlewares.SessionFromRequest(c)
	if err != nil {
		logger.Error("No authenticated session for send request: ", err)
		return c.JSON(http.StatusForbidden, APIResponse{
			Success: false,
			Message: "Unauthorized",
		})
	}

	// Users may only send on their own behalf. A non-numeric path segment can
	// never match the session identity and fails here, before any lookup.
	targetID := c.Param("user_id")
	if strconv.FormatUint(uint64(session.UserID), 10) != targetID {
		logger.Errorf("Session user %d does not match target user %s.", session.UserID, targetID)
		return c.JSON(http.StatusForbidden, APIResponse{
			Success: false,
			Message: "Unauthorized",
		})
	}

	user := models.User{}
	if err := db.Conn.Where("id = ?", session.UserID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Error("Target user not found.")
			return c.JSON(http.StatusNotFound, APIResponse{
				Success: false,
				Message: "User not found",
			})
		}
		logger.Errorf("Failed to find target user: %v", err)
		return c.JSON(http.StatusInternalServerError, APIResponse{
			Success: false,
			Message: "Internal server error",
			Data:    err.Error(),
		})
	}

	to := commons.NormalizeRecipient(req.Recipient)
	if region := commons.RegionForNumber(to); region != "" {
		logger.Debugf("Delivering message to region %s", region)
	}

	receipt, err := SMSGateway.Send(to, req.Content)
	if err != nil {
		logger.Errorf("SMS delivery failed: %v", err)
		return c.JSON(http.StatusInternalServerError, APIResponse{
			Success: false,
			Message: "Failed to send SMS",
			Data:    err.Error(),
		})
	}
	logger.Infof("Provider accepted message %s with status %s", receipt.SID, receipt.Status)

	message := models.Message{
		Recipient: req.Recipient,
		Content:   req.Content,
		Status:    models.StatusSent,
		UserID:    user.ID,
	}
	if err := db.Conn.Create(&message).Error; err != nil {
		// The SMS is already out; without a shared transaction or a
		// compensating write the record is simply lost.
		logger.Errorf("Failed to persist message after delivery: %v", err)
		return c.JSON(http.StatusInternalServerError, APIResponse{
			Success: false,
			Message: "Internal server error",
			Data:    err.Error(),
		})
	}

	return c.JSON(http.StatusCreated, APIResponse{
		Success: true,
		Message: "Message sent successfully",
		Data:    messageDetails(message),
	})
}

// GetAllMessagesHandler godoc
// @Summary      List all messages
// @Description  Returns every stored message across all users. No access control, filtering or pagination; every call performs a fresh full scan.
// @Tags         messages
// @Produce      json
// @Success      200 {object} APIResponse "Messages retrieved successfully"
// @Failure      500 {object} APIResponse "Internal server error"
// @Router       /v1/messages [get]
func GetAllMessagesHandler(c echo.Context) error {
	logger := c.Logger()

	messages := []models.Message{}
	if err := db.Conn.Find(&messages).Error; err != nil {
		logger.Errorf("Failed to fetch messages: %v", err)
		return c.JSON(http.StatusInternalServerError, APIResponse{
			Success: false,
			Message: "Internal server error",
			Data:    err.Error(),
		})
	}

	details := make([]MessageDetails, 0, len(messages))
	for _, message := range messages {
		details = append(details, messageDetails(message))
	}

	return c.JSON(http.StatusOK, APIResponse{
		Success: true,
		Message: "Messages retrieved successfully",
		Data:    details,
	})
}

func messageDetails(message models.Message) MessageDetails {
	return MessageDetails{
		ID:        message.ID,
		Recipient: message.Recipient,
		Content:   message.Content,
		Status:    string(message.Status),
		UserID:    message.UserID,
		CreatedAt: message.CreatedAt.UTC().Format(time.RFC3339),
	}
}
