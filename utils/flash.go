package utils

import (
	"encoding/base64"
	"encoding/json"

	"github.com/gin-gonic/gin"
)

const flashCookie = "flash"

// Flash is a one-shot notice: set before a redirect, popped into the next
// rendered payload, then gone.
type Flash struct {
	Category string `json:"category"`
	Message  string `json:"message"`
}

// SetFlash stores the notice in a short-lived cookie.
func SetFlash(ctx *gin.Context, category, message string) {
	payload, err := json.Marshal(Flash{Category: category, Message: message})
	if err != nil {
		return
	}
	ctx.SetCookie(flashCookie, base64.URLEncoding.EncodeToString(payload),
		300, "/", "", false, true)
}

// PopFlash reads and clears the pending notice, if any.
func PopFlash(ctx *gin.Context) *Flash {
	raw, err := ctx.Cookie(flashCookie)
	if err != nil || raw == "" {
		return nil
	}
	ctx.SetCookie(flashCookie, "", -1, "/", "", false, true)

	decoded, err := base64.URLEncoding.DecodeString(raw)
	if err != nil {
		return nil
	}
	var flash Flash
	if err := json.Unmarshal(decoded, &flash); err != nil {
		return nil
	}
	return &flash
}
