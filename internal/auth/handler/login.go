package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/page-sage/page-sage/internal/auth/provider"
	"github.com/page-sage/page-sage/internal/auth/token"
	"github.com/page-sage/page-sage/internal/logger"
	"github.com/page-sage/page-sage/internal/session"
)

// providerLogin is the sign-in orchestrator for one provider. Every
// outcome is a redirect:
//
//   - already signed in with a usable grant  -> /profile
//   - no usable grant                        -> the provider's authorize flow
//   - grant expired or revoked mid-fetch     -> the provider's authorize flow
//   - profile fetched                        -> resolve user, open session, /profile
//   - profile fetch failed                   -> /profile (the page's own auth
//     gate catches the fallout; sign-in failures are never rendered as errors)
func (h *Handler) providerLogin(p provider.Adapter) gin.HandlerFunc {
	authorizePath := "/oauth/authorize/" + p.Name()

	return func(c *gin.Context) {
		ctx := c.Request.Context()

		sess := h.currentSession(c)
		flowID := flowID(c.Request)

		stored, err := h.tokens.Get(ctx, flowID, p.Name())
		if err != nil {
			logger.Error("token record lookup failed", map[string]any{
				"provider": p.Name(),
				"error":    err.Error(),
			})
			stored = nil
		}
		authorized := token.Authorized(stored)

		if sess != nil && authorized {
			c.Redirect(http.StatusFound, "/profile")
			return
		}

		if !authorized {
			c.Redirect(http.StatusFound, authorizePath)
			return
		}

		profile, err := p.FetchProfile(ctx, stored)
		if errors.Is(err, provider.ErrTokenExpired) {
			_ = h.tokens.Delete(ctx, flowID, p.Name())
			c.Redirect(http.StatusFound, authorizePath)
			return
		}
		if err != nil {
			logger.Warn("profile fetch failed", map[string]any{
				"provider": p.Name(),
				"error":    err.Error(),
			})
			c.Redirect(http.StatusFound, "/profile")
			return
		}

		u, err := h.users.ByEmail(ctx, profile.Email)
		if err != nil {
			h.fail(c, "user lookup failed", p.Name(), err)
			return
		}
		if u == nil {
			u, err = h.users.Create(ctx, profile.Email, profile.FirstName)
			if err != nil {
				h.fail(c, "user create failed", p.Name(), err)
				return
			}
		}

		sessionID, err := session.GenerateID()
		if err != nil {
			h.fail(c, "session id generation failed", p.Name(), err)
			return
		}

		expiresAt := time.Now().Add(sessionTTL)
		err = h.sessions.Create(ctx, session.Session{
			SessionID: sessionID,
			UserID:    u.ID.String(),
			ExpiresAt: expiresAt,
		})
		if err != nil {
			h.fail(c, "session create failed", p.Name(), err)
			return
		}

		session.SetCookie(c.Writer, sessionID, expiresAt, session.CookieOptions{
			Secure:   true,
			SameSite: http.SameSiteLaxMode,
		})

		if p.RecordsLoginMethod() {
			if err := h.users.SetLoginMethod(ctx, u.ID, p.Name()); err != nil {
				logger.Error("login method update failed", map[string]any{
					"provider": p.Name(),
					"user_id":  u.ID.String(),
					"error":    err.Error(),
				})
			}
		}

		session.Flash(c.Writer, "Signed in with "+p.Label())

		logger.Info("user signed in", map[string]any{
			"provider": p.Name(),
			"user_id":  u.ID.String(),
		})

		c.Redirect(http.StatusFound, "/profile")
	}
}

func (h *Handler) fail(c *gin.Context, msg, providerName string, err error) {
	logger.Error(msg, map[string]any{
		"provider": providerName,
		"error":    err.Error(),
	})
	c.String(http.StatusInternalServerError, "something went wrong")
}
