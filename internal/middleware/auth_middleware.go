package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"go-hris-leave/internal/shared/apperror"
	"go-hris-leave/internal/shared/contextutil"
	"go-hris-leave/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrTokenMissing = apperror.New(apperror.CodeUnauthorized, "Token not found", http.StatusUnauthorized)
	ErrTokenInvalid = apperror.New(apperror.CodeUnauthorized, "Invalid token", http.StatusUnauthorized)
	ErrTokenExpired = apperror.New(apperror.CodeUnauthorized, "Token expired", http.StatusUnauthorized)
)

// AuthMiddleware validates the HMAC signed access token and copies the
// identity claims into the gin context. Token issuance lives elsewhere.
func AuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, found := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		if !found {
			tokenString = ""
		}
		if tokenString == "" {
			if cookie, err := c.Cookie("access_token"); err == nil {
				tokenString = cookie
			}
		}
		if tokenString == "" {
			abortWithError(c, ErrTokenMissing)
			return
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method")
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			if errors.Is(err, jwt.ErrTokenExpired) {
				abortWithError(c, ErrTokenExpired)
				return
			}
			abortWithError(c, ErrTokenInvalid)
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			abortWithError(c, ErrTokenInvalid)
			return
		}

		userID, _ := claims["user_id"].(string)
		companyID, _ := claims["company_id"].(string)
		employeeID, _ := claims["employee_id"].(string)
		if userID == "" || companyID == "" || employeeID == "" {
			abortWithError(c, ErrTokenInvalid.WithDetails("missing identity claims"))
			return
		}
		role, _ := claims["role"].(string)

		c.Set("user_id", userID)
		c.Set("user_id_validated", userID)
		c.Set("employee_id", employeeID)
		c.Set("company_id", companyID)
		c.Set("role", role)

		c.Request = c.Request.WithContext(contextutil.WithUserID(c.Request.Context(), userID))
		c.Next()
	}
}

func abortWithError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
	c.Abort()
}
