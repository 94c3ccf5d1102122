// SPDX-License-Identifier: GPL-3.0-only

package middlewares

import (
	"errors"
	"net/http"
	"smsdash-server/commons"
	"smsdash-server/db"
	"smsdash-server/models"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// ErrNoSession is returned when the request carries no resolvable session:
// missing bearer token, bad JWT, unknown session row, or expired session.
var ErrNoSession = errors.New("no valid session")

// SessionFromRequest resolves the bearer JWT on the request to a live session
// row and touches its LastUsedAt. Handlers that own their error contract call
// this directly; everything else goes through VerifySessionMiddleware.
func SessionFromRequest(c echo.Context) (*models.Session, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return nil, ErrNoSession
	}
	sessionToken := strings.TrimPrefix(authHeader, "Bearer ")

	token, err := jwt.Parse(sessionToken, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(commons.GetEnv("JWT_SECRET", "default_very_secret_key")), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrNoSession
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrNoSession
	}

	sessionID := claims["sid"]
	userID := claims["uid"]
	tokenID := claims["jti"]

	session := models.Session{}
	err = db.Conn.Where("id = ? AND user_id = ? AND token = ?", sessionID, userID, tokenID).First(&session).Error
	if err != nil || session.ExpiresAt == nil || session.ExpiresAt.Before(time.Now()) {
		return nil, ErrNoSession
	}

	now := time.Now()
	session.LastUsedAt = &now
	if err := db.Conn.Save(&session).Error; err != nil {
		c.Logger().Error("Failed to update session LastUsedAt: ", err)
	}

	return &session, nil
}

func VerifySessionMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		session, err := SessionFromRequest(c)
		if err != nil {
			c.Logger().Error("Session verification failed: ", err)
			return &echo.HTTPError{
				Code:    http.StatusUnauthorized,
				Message: "Invalid or expired session token, please login again",
			}
		}
		c.Set("session", *session)
		return next(c)
	}
}

func GetAuthenticatedUser(c echo.Context) (*models.User, error) {
	session, ok := c.Get("session").(models.Session)
	if !ok {
		return nil, errors.New("no authenticated user found")
	}
	var user models.User
	if err := db.Conn.Where("id = ?", session.UserID).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
