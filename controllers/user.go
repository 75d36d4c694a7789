package controllers

import (
	"ak-storefront/models"
	"ak-storefront/store"
	"ak-storefront/utils"
	"net/http"
	"strings"
)

// UserController handles the shopper session, language preference and admin login
type UserController struct {
	Store *store.Store
	Gate  *utils.AccessGate
}

// NewUserController creates a new UserController
func NewUserController(s *store.Store, gate *utils.AccessGate) *UserController {
	return &UserController{Store: s, Gate: gate}
}

// GetSession returns the signed-in shopper, or null
func (uc *UserController) GetSession(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, uc.Store.Session())
}

// SetSession records the shopper signed in by the external identity flow
func (uc *UserController) SetSession(w http.ResponseWriter, r *http.Request) {
	var user models.User
	if !decode(w, r, &user) {
		return
	}
	user.Name = strings.TrimSpace(user.Name)
	if user.ID == "" {
		http.Error(w, "User id is required", http.StatusBadRequest)
		return
	}
	switch user.LoginMethod {
	case "", models.LoginEmail, models.LoginPhone, models.LoginBiometric:
	default:
		http.Error(w, "Invalid login method", http.StatusBadRequest)
		return
	}

	uc.Store.SetSession(&user)
	writeJSON(w, http.StatusOK, uc.Store.Session())
}

// Logout clears the session and the cart
func (uc *UserController) Logout(w http.ResponseWriter, r *http.Request) {
	uc.Store.Logout()
	writeJSON(w, http.StatusOK, map[string]string{"message": "Logged out"})
}

// GetLanguage returns the interface language
func (uc *UserController) GetLanguage(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]models.Language{"language": uc.Store.Language()})
}

// SetLanguage switches the interface language
func (uc *UserController) SetLanguage(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Language models.Language `json:"language"`
	}
	if !decode(w, r, &body) {
		return
	}
	if err := uc.Store.SetLanguage(body.Language); err != nil {
		storeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]models.Language{"language": uc.Store.Language()})
}

// AdminLogin exchanges the admin access code for a token
func (uc *UserController) AdminLogin(w http.ResponseWriter, r *http.Request) {
	var creds struct {
		Code string `json:"code"`
	}
	if !decode(w, r, &creds) {
		return
	}

	if err := uc.Gate.Check(creds.Code); err != nil {
		http.Error(w, "Invalid access code", http.StatusUnauthorized)
		return
	}

	token, err := utils.GenerateJWT("admin", utils.RoleAdmin)
	if err != nil {
		http.Error(w, "Error generating token", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"token": token})
}
