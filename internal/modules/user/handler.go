package user

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/tinyhouse/internal/domain"
	"github.com/nfrund/tinyhouse/internal/i18n"
	"github.com/nfrund/tinyhouse/internal/metrics"
	"github.com/nfrund/tinyhouse/internal/middleware"
	"github.com/nfrund/tinyhouse/internal/rendering"
	gview "github.com/nfrund/tinyhouse/internal/view"
	"github.com/nfrund/tinyhouse/web/src/templates/layouts"
	cmp "maragu.dev/gomponents"
)

// Handler serves the user page and its wallet actions.
type Handler struct {
	service      *Service
	renderer     rendering.Renderer
	metrics      *metrics.Metrics
	authorizeURL string
}

// NewHandler creates a new user page Handler.
func NewHandler(service *Service, renderer rendering.Renderer, m *metrics.Metrics, authorizeURL string) *Handler {
	return &Handler{
		service:      service,
		renderer:     renderer,
		metrics:      m,
		authorizeURL: authorizeURL,
	}
}

// Get renders the page shell in its loading state. The content is fetched
// by htmx as soon as the shell loads.
func (h *Handler) Get(c echo.Context) error {
	req, err := bindPageRequest(c)
	if err != nil {
		return err
	}
	l := i18n.FromRequest(c.Request())

	page := Page(h.props(c, req, l, QueryResult{Loading: true}))
	h.metrics.ObservePage(metrics.OutcomeLoading)

	return h.renderer.RenderPage(c, http.StatusOK, layouts.Base(l.T(i18n.PageTitle), l.Lang(), gview.GetFlashData(c), page))
}

// Content runs the user query and renders the error or success fragment.
func (h *Handler) Content(c echo.Context) error {
	req, err := bindPageRequest(c)
	if err != nil {
		return err
	}
	return h.renderContent(c, req, gview.GetFlashData(c))
}

// DisconnectWallet removes the viewer's Stripe account and answers with a
// refetched fragment. Requests without htmx are redirected back to the page.
func (h *Handler) DisconnectWallet(c echo.Context) error {
	req, err := bindPageRequest(c)
	if err != nil {
		return err
	}
	logger := middleware.FromContext(c.Request().Context())
	l := i18n.FromRequest(c.Request())

	var flash gview.FlashData
	viewer, err := h.service.DisconnectWallet(c.Request().Context(), middleware.ViewerFrom(c), req.ID)
	switch {
	case isForbidden(err):
		logger.Warn("wallet disconnect refused", "event", "wallet_disconnect_forbidden", "user_id", req.ID)
		return echo.NewHTTPError(http.StatusForbidden, "you can only disconnect your own wallet")
	case err != nil:
		logger.Error("wallet disconnect failed", "event", "wallet_disconnect_failed", "user_id", req.ID, "error", err)
		flash.Error = []string{l.T(i18n.FlashWalletError)}
	default:
		if err := middleware.SaveViewer(c, viewer); err != nil {
			return err
		}
		logger.Info("wallet disconnected", "event", "wallet_disconnected", "user_id", req.ID)
		flash.Success = []string{l.T(i18n.FlashWalletDisconnected)}
	}

	if !isHTMX(c) {
		for _, msg := range flash.Success {
			gview.SetFlashSuccess(c, msg)
		}
		for _, msg := range flash.Error {
			gview.SetFlashError(c, msg)
		}
		return c.Redirect(http.StatusSeeOther, req.Links().Page(req.Cursors()))
	}
	return h.renderContent(c, req, flash)
}

// StripeConnect completes the Stripe OAuth redirect. Any failure sends the
// viewer back to their page with the stripe_error flag set.
func (h *Handler) StripeConnect(c echo.Context) error {
	logger := middleware.FromContext(c.Request().Context())
	viewer := middleware.ViewerFrom(c)
	if !viewer.Authenticated() {
		logger.Warn("stripe connect without a signed-in viewer", "event", "stripe_connect_anonymous")
		return c.Redirect(http.StatusSeeOther, "/")
	}

	page := "/user/" + url.PathEscape(viewer.ID)
	failed := page + "?" + StripeErrorParam + "=true"

	updated, err := h.service.ConnectWallet(c.Request().Context(), viewer, c.QueryParam("code"))
	if err != nil {
		logger.Error("stripe connect failed", "event", "stripe_connect_failed", "user_id", viewer.ID, "error", err)
		return c.Redirect(http.StatusSeeOther, failed)
	}
	if err := middleware.SaveViewer(c, updated); err != nil {
		logger.Error("could not save viewer after stripe connect", "event", "viewer_session_error", "error", err)
		return c.Redirect(http.StatusSeeOther, failed)
	}

	gview.SetFlashSuccess(c, i18n.FromRequest(c.Request()).T(i18n.FlashWalletConnected))
	logger.Info("wallet connected", "event", "wallet_connected", "user_id", viewer.ID)
	return c.Redirect(http.StatusSeeOther, page)
}

func (h *Handler) renderContent(c echo.Context, req PageRequest, flash gview.FlashData) error {
	l := i18n.FromRequest(c.Request())

	result := h.service.Fetch(c.Request().Context(), middleware.ViewerFrom(c), req.Variables())
	logger := middleware.FromContext(c.Request().Context())
	switch {
	case errors.Is(result.Err, domain.ErrNotFound):
		logger.Warn("user not found", "event", "user_query_not_found", "user_id", req.ID)
	case result.Err != nil:
		logger.Error("user query failed", "event", "user_query_failed", "user_id", req.ID, "error", result.Err)
	}
	if result.Err != nil {
		h.metrics.ObservePage(metrics.OutcomeError)
	} else {
		h.metrics.ObservePage(metrics.OutcomeSuccess)
	}

	fragment := cmp.Group{Page(h.props(c, req, l, result))}
	if !flash.Empty() {
		fragment = append(fragment, gview.AdaptTemplToGomponent(gview.FlashMessages(flash, true)))
	}
	return h.renderer.RenderPage(c, http.StatusOK, fragment)
}

func (h *Handler) props(c echo.Context, req PageRequest, l i18n.Localizer, result QueryResult) PageProps {
	return PageProps{
		Localizer:    l,
		Viewer:       middleware.ViewerFrom(c),
		Result:       result,
		Cursors:      req.Cursors(),
		Links:        req.Links(),
		StripeError:  req.StripeError,
		AuthorizeURL: h.authorizeURL,
	}
}

func isHTMX(c echo.Context) bool {
	return c.Request().Header.Get("HX-Request") == "true"
}
