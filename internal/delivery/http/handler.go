package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/greenscan/backend/internal/domain"
	"github.com/greenscan/backend/internal/infrastructure/engine"
	"github.com/greenscan/backend/internal/usecase"
)

// Handler holds dependencies for HTTP handlers
type Handler struct {
	lookup    *usecase.LookupService
	presenter *usecase.ResultPresenter
	exporter  *usecase.ShareExporter
	session   *usecase.ScanSession
	engine    *engine.RemoteEngine
	results   *ResultStore
}

// NewHandler creates a new HTTP handler
func NewHandler(
	lookup *usecase.LookupService,
	presenter *usecase.ResultPresenter,
	exporter *usecase.ShareExporter,
	session *usecase.ScanSession,
	eng *engine.RemoteEngine,
	results *ResultStore,
) *Handler {
	return &Handler{
		lookup:    lookup,
		presenter: presenter,
		exporter:  exporter,
		session:   session,
		engine:    eng,
		results:   results,
	}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "greenscan-backend",
		"version": "1.0.0",
	})
}

// GetProduct resolves a barcode to its eco-check view model. Lookup failures
// all render the same fixed error view; only the HTTP status distinguishes
// not-found from upstream trouble.
func (h *Handler) GetProduct(c *gin.Context) {
	barcode := c.Param("barcode")

	product, err := h.lookup.Lookup(c.Request.Context(), barcode)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidBarcode):
			c.JSON(http.StatusBadRequest, gin.H{"error": domain.ErrInvalidBarcode.Error()})
		case errors.Is(err, domain.ErrProductNotFound):
			c.JSON(http.StatusNotFound, h.presenter.PresentError())
		default:
			c.JSON(http.StatusBadGateway, h.presenter.PresentError())
		}
		return
	}

	c.JSON(http.StatusOK, h.presenter.Present(product))
}

// StartScan activates the scan session, initializing the engine on first use
func (h *Handler) StartScan(c *gin.Context) {
	if err := h.session.Start(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Camera init error."})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"state":     h.session.State(),
		"sessionId": h.session.ID(),
	})
}

// StopScan halts the scan session. Stopping an idle session is fine.
func (h *Handler) StopScan(c *gin.Context) {
	h.session.Stop()
	c.JSON(http.StatusOK, gin.H{"state": h.session.State()})
}

// ScanStatus reports the session lifecycle state
func (h *Handler) ScanStatus(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"state":     h.session.State(),
		"sessionId": h.session.ID(),
	})
}

type detectionRequest struct {
	Code string `json:"code"`
}

// PushDetection accepts a decoded value from the capture device and feeds it
// to the engine. The session consumes it through its detection handler.
func (h *Handler) PushDetection(c *gin.Context) {
	var req detectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid detection payload"})
		return
	}

	if err := h.engine.Offer(req.Code); err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "no active scan session"})
		return
	}

	c.JSON(http.StatusAccepted, gin.H{"state": h.session.State()})
}

// ScanResult returns the verdict for the most recently scanned barcode.
// Later scans overwrite earlier ones; the newest result is authoritative.
func (h *Handler) ScanResult(c *gin.Context) {
	view, ok := h.results.Latest()
	if !ok {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, view)
}

type shareResponse struct {
	Title     string `json:"title"`
	Text      string `json:"text"`
	Delivered bool   `json:"delivered"`
	Message   string `json:"message,omitempty"`
}

// Share exports the posted view model as plain text and attempts delivery
// through the configured channels. The text is returned either way so the
// client can fall back to manual copy.
func (h *Handler) Share(c *gin.Context) {
	var view usecase.ViewModel
	if err := c.ShouldBindJSON(&view); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid view model payload"})
		return
	}

	resp := shareResponse{
		Title: usecase.ShareTitle,
		Text:  h.exporter.ExportText(view),
	}

	if err := h.exporter.Deliver(c.Request.Context(), view); err != nil {
		resp.Message = "Sharing failed. Please copy manually."
		c.JSON(http.StatusOK, resp)
		return
	}

	resp.Delivered = true
	c.JSON(http.StatusOK, resp)
}
