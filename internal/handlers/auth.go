package handlers

import (
	"encoding/base64"
	"log/slog"
	"net/http"

	"github.com/pquerna/otp/totp"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/ViniciusMeireles/blog-api/internal/middleware"
	"github.com/ViniciusMeireles/blog-api/internal/session"
	"github.com/ViniciusMeireles/blog-api/internal/store"
)

// Auth groups all authentication-related HTTP handlers.
type Auth struct {
	sessions  *session.Store
	userStore *store.UserStore
}

// NewAuth creates a new Auth handler group.
func NewAuth(sessions *session.Store, userStore *store.UserStore) *Auth {
	return &Auth{
		sessions:  sessions,
		userStore: userStore,
	}
}

// Register creates a new user account.
func (a *Auth) Register(w http.ResponseWriter, r *http.Request) {
	var in registerInput
	if err := decodeJSON(r, &in); err != nil {
		respondDetail(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if fe := in.validate(); len(fe) > 0 {
		fe.respond(w)
		return
	}

	u, err := a.userStore.Create(in.Username, in.Email, in.FirstName, in.LastName, in.Password)
	if err != nil {
		respondStoreError(w, "register failed", err)
		return
	}
	respondJSON(w, http.StatusCreated, u.Summary())
}

// Login verifies credentials and issues a bearer token. For users with
// TOTP enabled the token must pass 2FA verification before it is accepted
// for writes.
func (a *Auth) Login(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := decodeJSON(r, &in); err != nil {
		respondDetail(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	user, err := a.userStore.FindByUsername(in.Username)
	if err != nil {
		slog.Error("login lookup failed", "error", err)
		respondDetail(w, http.StatusInternalServerError, "internal server error")
		return
	}
	if user == nil || !a.userStore.CheckPassword(user, in.Password) {
		respondDetail(w, http.StatusUnauthorized, "invalid username or password")
		return
	}

	token, err := a.sessions.Create(r.Context(), &session.Data{
		UserID:    user.ID,
		Username:  user.Username,
		TwoFADone: !user.Needs2FAVerify(),
	})
	if err != nil {
		slog.Error("session create failed", "error", err)
		respondDetail(w, http.StatusInternalServerError, "internal server error")
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"token":           token,
		"two_fa_required": user.Needs2FAVerify(),
		"user":            user.Summary(),
	})
}

// Logout destroys the caller's session.
func (a *Auth) Logout(w http.ResponseWriter, r *http.Request) {
	if err := a.sessions.Destroy(r.Context(), r); err != nil {
		slog.Error("session destroy failed", "error", err)
	}
	w.WriteHeader(http.StatusNoContent)
}

// Me returns the authenticated caller's user summary.
func (a *Auth) Me(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromCtx(r.Context())

	user, err := a.userStore.FindByID(sess.UserID)
	if err != nil {
		slog.Error("me lookup failed", "error", err)
		respondDetail(w, http.StatusInternalServerError, "internal server error")
		return
	}
	if user == nil {
		// Account deleted while the session was still live.
		respondDetail(w, http.StatusUnauthorized, "authentication required")
		return
	}
	respondJSON(w, http.StatusOK, user.Summary())
}

// TwoFASetup generates a TOTP secret for the caller and returns the
// provisioning URL together with a QR code PNG (base64).
func (a *Auth) TwoFASetup(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromCtx(r.Context())
	if sess == nil {
		respondDetail(w, http.StatusUnauthorized, "authentication required")
		return
	}

	key, err := totp.Generate(totp.GenerateOpts{
		Issuer:      "blog-api",
		AccountName: sess.Username,
	})
	if err != nil {
		slog.Error("totp generate failed", "error", err)
		respondDetail(w, http.StatusInternalServerError, "internal server error")
		return
	}

	if err := a.userStore.SetTOTPSecret(sess.UserID, key.Secret()); err != nil {
		slog.Error("totp secret save failed", "error", err)
		respondDetail(w, http.StatusInternalServerError, "internal server error")
		return
	}

	png, err := qrcode.Encode(key.URL(), qrcode.Medium, 256)
	if err != nil {
		slog.Error("totp qr encode failed", "error", err)
		respondDetail(w, http.StatusInternalServerError, "internal server error")
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{
		"secret":      key.Secret(),
		"otpauth_url": key.URL(),
		"qr_png":      base64.StdEncoding.EncodeToString(png),
	})
}

// TwoFAVerify checks a TOTP code. On the first successful verification
// 2FA is enabled for the account; on later logins it marks the session
// as verified.
func (a *Auth) TwoFAVerify(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromCtx(r.Context())
	if sess == nil {
		respondDetail(w, http.StatusUnauthorized, "authentication required")
		return
	}

	var in struct {
		Code string `json:"code"`
	}
	if err := decodeJSON(r, &in); err != nil {
		respondDetail(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	user, err := a.userStore.FindByID(sess.UserID)
	if err != nil || user == nil {
		slog.Error("2fa verify lookup failed", "error", err)
		respondDetail(w, http.StatusInternalServerError, "internal server error")
		return
	}
	if user.TOTPSecret == nil {
		respondDetail(w, http.StatusBadRequest, "2FA has not been set up")
		return
	}

	if !totp.Validate(in.Code, *user.TOTPSecret) {
		respondDetail(w, http.StatusBadRequest, "invalid verification code")
		return
	}

	if !user.TOTPEnabled {
		if err := a.userStore.EnableTOTP(user.ID); err != nil {
			slog.Error("enable totp failed", "error", err)
			respondDetail(w, http.StatusInternalServerError, "internal server error")
			return
		}
	}

	sess.TwoFADone = true
	if err := a.sessions.Update(r.Context(), r, sess); err != nil {
		slog.Error("session update failed", "error", err)
		respondDetail(w, http.StatusInternalServerError, "internal server error")
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"detail": "verified"})
}
