package handlers

import (
	"crypto/rand"
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/healncure/healncure-backend/internal/database"
	"github.com/healncure/healncure-backend/internal/models"
	"github.com/healncure/healncure-backend/internal/services"
	"github.com/healncure/healncure-backend/pkg/clientip"
	"github.com/healncure/healncure-backend/pkg/utils"
)

// AuthResponse is the envelope for all auth endpoints.
type AuthResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message,omitempty"`
	Token   string       `json:"token,omitempty"`
	User    *models.User `json:"user,omitempty"`
}

type ClaimAccountRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type SigninRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// extractBearerToken pulls the token out of an "Authorization: Bearer x" header.
func extractBearerToken(header string) string {
	header = strings.TrimSpace(header)
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// requireAuth validates the session and returns the authenticated user's ID.
// Returns ("", false) if not authenticated.
func requireAuth(r *http.Request) (string, bool) {
	token := extractBearerToken(r.Header.Get("Authorization"))
	if token == "" {
		return "", false
	}
	userID, ok, err := services.ValidateSession(token)
	if err != nil || !ok {
		return "", false
	}
	return userID.String(), true
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// generateGuestHandle returns a unique-ish anonymous username like guest_3fa9c2d1.
func generateGuestHandle() (string, error) {
	buf := make([]byte, 4)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return "guest_" + hex.EncodeToString(buf), nil
}

func fetchUser(userID string) (*models.User, error) {
	var u models.User
	err := database.PostgresDB.QueryRow(
		"SELECT id, username, is_anonymous, created_at, is_active FROM users WHERE id = $1",
		userID,
	).Scan(&u.ID, &u.Username, &u.IsAnonymous, &u.CreatedAt, &u.IsActive)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// AnonymousSignin signs a visitor in without any credentials. Idempotent
// re-entry: a request carrying a still-valid session token keeps the same
// identity and session instead of minting a new one.
func AnonymousSignin(w http.ResponseWriter, r *http.Request) {
	// Already signed in? Refresh and return the same session.
	if token := extractBearerToken(r.Header.Get("Authorization")); token != "" {
		if userID, ok, _ := services.ValidateSession(token); ok {
			_ = services.RefreshSession(token)
			user, err := fetchUser(userID.String())
			if err != nil {
				http.Error(w, "Database error", http.StatusInternalServerError)
				return
			}
			writeJSON(w, http.StatusOK, AuthResponse{
				Success: true,
				Message: "Already signed in",
				Token:   token,
				User:    user,
			})
			return
		}
	}

	userID := uuid.New()
	ipAddress := clientip.RealClientIP(r)

	// Retry the insert a few times in case a generated handle collides.
	var inserted bool
	for attempt := 0; attempt < 3 && !inserted; attempt++ {
		handle, err := generateGuestHandle()
		if err != nil {
			http.Error(w, "Failed to create anonymous user", http.StatusInternalServerError)
			return
		}
		_, err = database.PostgresDB.Exec(
			"INSERT INTO users (id, username, is_anonymous, ip_address) VALUES ($1, $2, TRUE, $3)",
			userID.String(), handle, ipAddress,
		)
		if err == nil {
			inserted = true
		}
	}
	if !inserted {
		http.Error(w, "Failed to create anonymous user", http.StatusInternalServerError)
		return
	}

	token, err := services.CreateSession(userID)
	if err != nil {
		http.Error(w, "Failed to create session", http.StatusInternalServerError)
		return
	}

	user, err := fetchUser(userID.String())
	if err != nil {
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, AuthResponse{
		Success: true,
		Message: "Signed in anonymously",
		Token:   token,
		User:    user,
	})
}

// GetMe returns the current user, or 401 when the session is missing/expired.
func GetMe(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireAuth(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, AuthResponse{
			Success: false,
			Message: "Authentication required",
		})
		return
	}

	user, err := fetchUser(userID)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, AuthResponse{
			Success: false,
			Message: "Database error",
		})
		return
	}

	writeJSON(w, http.StatusOK, AuthResponse{Success: true, User: user})
}

// ClaimAccount upgrades the authenticated anonymous user with a chosen
// username and password so the account survives session expiry.
func ClaimAccount(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireAuth(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, AuthResponse{
			Success: false,
			Message: "Authentication required",
		})
		return
	}

	var req ClaimAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, AuthResponse{Success: false, Message: "Invalid request body"})
		return
	}

	if err := utils.ValidateUsername(req.Username); err != nil {
		writeJSON(w, http.StatusBadRequest, AuthResponse{Success: false, Message: err.Error()})
		return
	}
	if len(req.Password) < 8 {
		writeJSON(w, http.StatusBadRequest, AuthResponse{Success: false, Message: "Password must be at least 8 characters"})
		return
	}

	normalized := utils.NormalizeUsername(req.Username)

	var existing string
	err := database.PostgresDB.QueryRow(
		"SELECT username FROM users WHERE LOWER(username) = $1 AND id <> $2",
		normalized, userID,
	).Scan(&existing)
	if err == nil {
		writeJSON(w, http.StatusConflict, AuthResponse{Success: false, Message: "Username is already taken"})
		return
	} else if err != sql.ErrNoRows {
		writeJSON(w, http.StatusInternalServerError, AuthResponse{Success: false, Message: "Database error"})
		return
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, AuthResponse{Success: false, Message: "Failed to hash password"})
		return
	}

	_, err = database.PostgresDB.Exec(
		"UPDATE users SET username = $1, password_hash = $2, is_anonymous = FALSE WHERE id = $3",
		req.Username, hashed, userID,
	)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, AuthResponse{Success: false, Message: "Failed to claim account"})
		return
	}

	user, err := fetchUser(userID)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, AuthResponse{Success: false, Message: "Database error"})
		return
	}

	writeJSON(w, http.StatusOK, AuthResponse{
		Success: true,
		Message: "Account claimed successfully",
		User:    user,
	})
}

// Signin authenticates a claimed account and issues a fresh session.
func Signin(w http.ResponseWriter, r *http.Request) {
	var req SigninRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, AuthResponse{Success: false, Message: "Invalid request body"})
		return
	}

	normalized := utils.NormalizeUsername(req.Username)

	var userID, passwordHash string
	var isActive bool
	err := database.PostgresDB.QueryRow(
		"SELECT id, COALESCE(password_hash, ''), is_active FROM users WHERE LOWER(username) = $1 AND is_anonymous = FALSE",
		normalized,
	).Scan(&userID, &passwordHash, &isActive)
	if err == sql.ErrNoRows || (err == nil && passwordHash == "") {
		writeJSON(w, http.StatusUnauthorized, AuthResponse{Success: false, Message: "Invalid username or password"})
		return
	} else if err != nil {
		writeJSON(w, http.StatusInternalServerError, AuthResponse{Success: false, Message: "Database error"})
		return
	}

	if !isActive {
		writeJSON(w, http.StatusForbidden, AuthResponse{Success: false, Message: "Account is deactivated"})
		return
	}

	valid, err := utils.VerifyPassword(req.Password, passwordHash)
	if err != nil || !valid {
		writeJSON(w, http.StatusUnauthorized, AuthResponse{Success: false, Message: "Invalid username or password"})
		return
	}

	uid, err := uuid.Parse(userID)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, AuthResponse{Success: false, Message: "Database error"})
		return
	}

	token, err := services.CreateSession(uid)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, AuthResponse{Success: false, Message: "Failed to create session"})
		return
	}

	user, err := fetchUser(userID)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, AuthResponse{Success: false, Message: "Database error"})
		return
	}

	writeJSON(w, http.StatusOK, AuthResponse{
		Success: true,
		Message: "Signed in successfully",
		Token:   token,
		User:    user,
	})
}
