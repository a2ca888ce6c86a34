package middlewares

import (
	"clinic-service/internal/pkg/constvars"
	"clinic-service/internal/pkg/exceptions"
	"clinic-service/internal/pkg/utils"
	"context"
	"net/http"
	"strings"
)

// AuthenticateAdmin admits only tokens carrying the admin role claim.
// A missing token is a 401, a patient token a 403.
func (m *Middlewares) AuthenticateAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, err := m.parseBearerToken(r)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}

		role, _ := claims["role"].(string)
		if role != constvars.RoleAdmin {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrAdminOnly(nil))
			return
		}

		email, _ := claims["email"].(string)
		ctx := context.WithValue(r.Context(), constvars.CONTEXT_ADMIN_KEY, email)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// AuthenticatePatient resolves the caller's patient ID from the token;
// handlers never read an ID from the request body.
func (m *Middlewares) AuthenticatePatient(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, err := m.parseBearerToken(r)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}

		patientID, _ := claims["id"].(string)
		if patientID == "" {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenInvalid(nil))
			return
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_PATIENT_ID_KEY, patientID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (m *Middlewares) parseBearerToken(r *http.Request) (map[string]interface{}, error) {
	authHeader := r.Header.Get(constvars.HeaderAuthorization)
	if authHeader == "" {
		return nil, exceptions.ErrTokenMissing(nil)
	}

	token := strings.TrimPrefix(authHeader, "Bearer ")
	claims, err := utils.ParseJWT(token, m.InternalConfig.JWT.Secret)
	if err != nil {
		return nil, err
	}
	return claims, nil
}
