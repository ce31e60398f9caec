package pasetotoken

import (
	"time"

	"github.com/gofiber/fiber/v3"

	"github.com/bookora/bookora_backend/config"
)

const CtxKeyClaims = "auth.claims"

func ClaimsFromFiber(c fiber.Ctx) (*Claims, bool) {
	v := c.Locals(CtxKeyClaims)
	if v == nil {
		return nil, false
	}
	cl, ok := v.(*Claims)
	return cl, ok
}

// NewPasetoManager creates a new PASETO manager from central config.
func NewPasetoManager(cfg *config.Config) (*Manager, error) {
	p := cfg.Authentication.Paseto
	return New(Config{
		SymmetricHex: p.LocalKeyHex,
		Issuer:       p.Issuer,
		Audience:     p.Audience,
		AccessTTL:    time.Duration(p.AccessTTLMinutes) * time.Minute,
		RefreshTTL:   time.Duration(p.RefreshTTLDays) * 24 * time.Hour,
	})
}
