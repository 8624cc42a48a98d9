package handlers

import (
	"context"
	"errors"
	"net/http"

	"scan-service/models"
	"scan-service/scanner"
	"scan-service/version"

	"github.com/apex/log"
	"github.com/gin-gonic/gin"
)

// ScanService is the pipeline the handlers delegate to.
type ScanService interface {
	Scan(ctx context.Context, productID string) (*models.ScanResult, error)
}

// Reloader swaps in a fresh catalog snapshot.
type Reloader interface {
	Reload(ctx context.Context) error
}

type ScanHandler struct {
	service ScanService
	catalog Reloader
}

func NewScanHandler(service ScanService, catalog Reloader) *ScanHandler {
	return &ScanHandler{
		service: service,
		catalog: catalog,
	}
}

// HealthCheck returns service health status
func (h *ScanHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "scan-service",
		"version": version.Get("scan-service"),
	})
}

// Scan resolves a product id and returns the scored scan result.
func (h *ScanHandler) Scan(c *gin.Context) {
	productID := c.Param("product_id")

	result, err := h.service.Scan(c.Request.Context(), productID)
	if err != nil {
		if errors.Is(err, scanner.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		log.Errorf("Scan failed for %s: %v", productID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Scan failed"})
		return
	}

	c.JSON(http.StatusOK, result)
}

// Reload rebuilds the catalog snapshot from storage.
func (h *ScanHandler) Reload(c *gin.Context) {
	if err := h.catalog.Reload(c.Request.Context()); err != nil {
		log.Errorf("Catalog reload failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Reload failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "reloaded"})
}
