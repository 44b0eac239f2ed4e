package scanhttp

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"tradefit/internal/scan"

	"github.com/gin-gonic/gin"
)

type handlers struct {
	scans   ScanAPI
	version string
}

func (h *handlers) root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"name":    serviceName,
		"version": h.version,
		"endpoints": []string{
			"GET /health",
			"POST /scan",
			"GET /scans",
			"GET /scans/{id}",
		},
	})
}

func (h *handlers) liveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

func (h *handlers) createScan(c *gin.Context) {
	var req scanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	rec, err := h.scans.Perform(c.Request.Context(), scan.Input{
		TradeSymbol:     req.TradeSymbol,
		TotalValue:      req.TotalValue,
		SleepHours:      req.SleepHours,
		ExerciseMinutes: req.ExerciseMinutes,
	})
	if err != nil {
		status := http.StatusInternalServerError
		switch {
		case errors.Is(err, scan.ErrInvalidInput),
			errors.Is(err, scan.ErrBadBankroll),
			errors.Is(err, scan.ErrBadStopLoss),
			errors.Is(err, scan.ErrNoPriceData):
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, toScanResponse(rec))
}

func (h *handlers) listScans(c *gin.Context) {
	limit := intQuery(c, "limit", 50)
	offset := intQuery(c, "offset", 0)
	records, err := h.scans.List(c.Request.Context(), scan.ListOptions{
		Limit:  limit,
		Offset: offset,
		Symbol: c.Query("symbol"),
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	rows := make([]scanRow, 0, len(records))
	for _, rec := range records {
		rows = append(rows, toScanRow(rec))
	}
	c.JSON(http.StatusOK, rows)
}

func (h *handlers) getScan(c *gin.Context) {
	rec, err := h.scans.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, scan.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "scan not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, toScanDetail(rec))
}

func intQuery(c *gin.Context, name string, fallback int) int {
	raw := c.Query(name)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}
