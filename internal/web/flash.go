package web

import (
	"encoding/base64"
	"encoding/json"
	"net/http"

	"github.com/JonMunkholm/onboard/internal/web/templates"
)

const flashCookie = "onboard_flash"

// setFlash stores a message to show on the next page rendered for this client.
func setFlash(w http.ResponseWriter, category, message string) {
	data, err := json.Marshal([]templates.Flash{{Category: category, Message: message}})
	if err != nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookie,
		Value:    base64.RawURLEncoding.EncodeToString(data),
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// popFlashes returns pending messages and clears them. A malformed cookie is
// dropped silently.
func popFlashes(w http.ResponseWriter, r *http.Request) []templates.Flash {
	c, err := r.Cookie(flashCookie)
	if err != nil {
		return nil
	}
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	data, err := base64.RawURLEncoding.DecodeString(c.Value)
	if err != nil {
		return nil
	}
	var flashes []templates.Flash
	if err := json.Unmarshal(data, &flashes); err != nil {
		return nil
	}
	return flashes
}
