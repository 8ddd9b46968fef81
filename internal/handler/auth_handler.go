package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/amalanberkah/internal/db"
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register creates an account. A duplicate email is reported inline so
// the client can show it next to the form field.
func (a *API) Register(c *gin.Context) {
	var payload credentialsRequest
	if !bindJSON(c, &payload, "Email dan password wajib diisi") {
		return
	}

	email := strings.ToLower(strings.TrimSpace(payload.Email))
	if email == "" || !strings.Contains(email, "@") {
		respondError(c, http.StatusBadRequest, "Email tidak valid")
		return
	}
	if len(payload.Password) < 6 {
		respondError(c, http.StatusBadRequest, "Password minimal 6 karakter")
		return
	}

	var existing db.User
	err := a.db.Where("email = ?", email).First(&existing).Error
	if err == nil {
		respondError(c, http.StatusConflict, "Email sudah terdaftar")
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		respondError(c, http.StatusInternalServerError, "Registrasi gagal")
		return
	}

	hashed, err := db.HashPassword(payload.Password)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Registrasi gagal")
		return
	}

	user := db.User{Email: email, Password: hashed, Role: db.RoleUser}
	if err := a.db.Create(&user).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "Registrasi gagal")
		return
	}

	a.startSession(c, user)
}

// Login authenticates by email and password.
func (a *API) Login(c *gin.Context) {
	var payload credentialsRequest
	if !bindJSON(c, &payload, "Email dan password wajib diisi") {
		return
	}

	email := strings.ToLower(strings.TrimSpace(payload.Email))

	var user db.User
	if err := a.db.Where("email = ?", email).First(&user).Error; err != nil {
		respondError(c, http.StatusUnauthorized, "Email atau password salah")
		return
	}
	if !db.CheckPassword(user.Password, payload.Password) {
		respondError(c, http.StatusUnauthorized, "Email atau password salah")
		return
	}

	a.startSession(c, user)
}

func (a *API) startSession(c *gin.Context, user db.User) {
	session := sessions.Default(c)
	session.Set("user_id", user.ID)
	session.Set("email", user.Email)
	if err := session.Save(); err != nil {
		respondError(c, http.StatusInternalServerError, "Gagal menyimpan sesi")
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": userPayload(user)})
}

// Logout flushes any pending autosave so the session cannot discard a
// scheduled write, then clears the cookie.
func (a *API) Logout(c *gin.Context) {
	session := sessions.Default(c)
	if userID, ok := session.Get("user_id").(string); ok && userID != "" {
		a.autosave.Flush(userID)
	}
	session.Clear()
	session.Save()
	c.JSON(http.StatusOK, gin.H{"message": "Berhasil keluar"})
}

// Me returns the authenticated account.
func (a *API) Me(c *gin.Context) {
	var user db.User
	if err := a.db.Where("id = ?", currentUserID(c)).First(&user).Error; err != nil {
		respondError(c, http.StatusUnauthorized, "Sesi tidak valid")
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": userPayload(user)})
}

func userPayload(user db.User) gin.H {
	return gin.H{
		"id":    user.ID,
		"email": user.Email,
		"role":  user.Role,
	}
}

// AuthRequired gates routes behind a valid session and records the user
// id in the request context.
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		userID, ok := session.Get("user_id").(string)
		if !ok || userID == "" {
			respondError(c, http.StatusUnauthorized, "Silakan login terlebih dahulu")
			c.Abort()
			return
		}
		c.Set(contextUserKey, userID)
		c.Next()
	}
}

// AdminRequired additionally checks the admin role against the database,
// so a revoked admin loses access without re-login.
func (a *API) AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		var user db.User
		if err := a.db.Where("id = ?", currentUserID(c)).First(&user).Error; err != nil || user.Role != db.RoleAdmin {
			respondError(c, http.StatusForbidden, "Akses admin diperlukan")
			c.Abort()
			return
		}
		c.Next()
	}
}
