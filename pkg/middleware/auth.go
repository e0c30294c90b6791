package middleware

import (
	"net/http"
	"strings"

	"wonder-rides/pkg/utils"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

// AuthStaff validates the bearer token issued by the identity provider
// and resolves the operator's display name for audit attribution.
// Accepted name claims, in order: name, then given/family name pair,
// then preferred_username, then email.
func AuthStaff(secret string, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				utils.ResponseUnauthorized(w, "Missing authorization token")
				return
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || parts[0] != "Bearer" {
				utils.ResponseUnauthorized(w, "Invalid token format. Use: Bearer <token>")
				return
			}

			token, err := jwt.Parse(parts[1], func(t *jwt.Token) (interface{}, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, jwt.ErrSignatureInvalid
				}
				return []byte(secret), nil
			})
			if err != nil || !token.Valid {
				logger.Warn("Invalid or expired staff token", zap.Error(err))
				utils.ResponseUnauthorized(w, "Invalid or expired session")
				return
			}

			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				utils.ResponseUnauthorized(w, "Invalid token claims")
				return
			}

			subject, _ := claims["sub"].(string)
			ctx := utils.SetOperatorContext(r.Context(), subject, operatorName(claims))

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func operatorName(claims jwt.MapClaims) string {
	if name, _ := claims["name"].(string); name != "" {
		return name
	}

	given, _ := claims["given_name"].(string)
	family, _ := claims["family_name"].(string)
	switch {
	case given != "" && family != "":
		return given + " " + family
	case given != "":
		return given
	}

	if username, _ := claims["preferred_username"].(string); username != "" {
		return username
	}
	if email, _ := claims["email"].(string); email != "" {
		return email
	}
	return "Unknown Staff"
}
