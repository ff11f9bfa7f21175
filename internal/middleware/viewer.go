package middleware

import (
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/nfrund/tinyhouse/internal/domain"
)

// ViewerContextKey is where the resolved domain.Viewer is stored on the echo context.
const ViewerContextKey = "viewer"

const (
	viewerSessionName = "viewer-session"
	viewerKeyID       = "id"
	viewerKeyAvatar   = "avatar"
	viewerKeyWallet   = "has_wallet"
)

// Viewer resolves the current viewer from the cookie session written by the
// login flow. Requests without a session get an anonymous viewer. It must be
// placed after the session middleware.
func Viewer(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		viewer := domain.Viewer{DidRequest: true}

		if sess, err := session.Get(viewerSessionName, c); err == nil {
			if id, ok := sess.Values[viewerKeyID].(string); ok {
				viewer.ID = id
			}
			if avatar, ok := sess.Values[viewerKeyAvatar].(string); ok {
				viewer.Avatar = avatar
			}
			if hasWallet, ok := sess.Values[viewerKeyWallet].(bool); ok {
				viewer.HasWallet = hasWallet
			}
		} else {
			FromContext(c.Request().Context()).Warn("could not read viewer session", "event", "viewer_session_error", "error", err)
		}

		c.Set(ViewerContextKey, viewer)
		return next(c)
	}
}

// ViewerFrom returns the viewer stored by the Viewer middleware, or an
// anonymous viewer when none is present.
func ViewerFrom(c echo.Context) domain.Viewer {
	if v, ok := c.Get(ViewerContextKey).(domain.Viewer); ok {
		return v
	}
	return domain.Viewer{}
}

// SaveViewer persists the viewer in the session and updates the current
// request's context so the rest of the handler sees the new value.
func SaveViewer(c echo.Context, viewer domain.Viewer) error {
	sess, err := session.Get(viewerSessionName, c)
	if err != nil {
		return err
	}
	sess.Values[viewerKeyID] = viewer.ID
	sess.Values[viewerKeyAvatar] = viewer.Avatar
	sess.Values[viewerKeyWallet] = viewer.HasWallet
	if err := sess.Save(c.Request(), c.Response()); err != nil {
		return err
	}
	viewer.DidRequest = true
	c.Set(ViewerContextKey, viewer)
	return nil
}
