package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/assetforge/fixed_asset_app/internal/core/ports/services"
	"github.com/assetforge/fixed_asset_app/internal/dto"
	"github.com/assetforge/fixed_asset_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// ledgerHandler handles the per-asset ledger operations: depreciation postings,
// disposal and revaluations.
type ledgerHandler struct {
	assetService portssvc.AssetSvcFacade
}

func newLedgerHandler(assetService portssvc.AssetSvcFacade) *ledgerHandler {
	return &ledgerHandler{
		assetService: assetService,
	}
}

func registerLedgerRoutes(assets *gin.RouterGroup, assetService portssvc.AssetSvcFacade) {
	h := newLedgerHandler(assetService)

	assets.POST("/:assetID/depreciation", h.postDepreciation)
	assets.GET("/:assetID/depreciation", h.listDepreciationEntries)
	assets.POST("/:assetID/disposal", h.recordDisposal)
	assets.GET("/:assetID/disposal", h.getDisposal)
	assets.POST("/:assetID/revaluations", h.recordRevaluation)
	assets.GET("/:assetID/revaluations", h.listRevaluations)
}

// postDepreciation godoc
// @Summary Post a depreciation entry
// @Description Appends one depreciation posting for an accounting period; the amount is computed from the asset's method unless supplied
// @Tags ledger
// @Accept  json
// @Produce  json
// @Param   assetID path string true "Asset ID"
// @Param   posting body dto.PostDepreciationRequest true "Posting details"
// @Success 201 {object} dto.DepreciationEntryResponse "The posted entry with applied amount and book values"
// @Failure 400 {object} map[string]string "Invalid request format or nothing to apply"
// @Failure 404 {object} map[string]string "Asset not found"
// @Failure 409 {object} map[string]string "Period already posted, asset disposed, or concurrent modification"
// @Router /assets/{assetID}/depreciation [post]
func (h *ledgerHandler) postDepreciation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	assetID := c.Param("assetID")

	var req dto.PostDepreciationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for postDepreciation", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Creator user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	entry, err := h.assetService.PostDepreciation(c.Request.Context(), assetID, req, creatorUserID)
	if err != nil {
		respondError(c, logger, err, "Failed to post depreciation")
		return
	}

	logger.Info("Depreciation posted successfully", slog.String("asset_id", assetID), slog.String("period", entry.Period))
	c.JSON(http.StatusCreated, dto.ToDepreciationEntryResponse(entry))
}

// listDepreciationEntries godoc
// @Summary List depreciation entries
// @Description Retrieves the asset's full depreciation history, oldest first
// @Tags ledger
// @Produce  json
// @Param   assetID path string true "Asset ID"
// @Success 200 {object} dto.ListDepreciationEntriesResponse "Depreciation history"
// @Failure 404 {object} map[string]string "Asset not found"
// @Router /assets/{assetID}/depreciation [get]
func (h *ledgerHandler) listDepreciationEntries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	assetID := c.Param("assetID")

	entries, err := h.assetService.ListDepreciationEntries(c.Request.Context(), assetID)
	if err != nil {
		respondError(c, logger, err, "Failed to list depreciation entries")
		return
	}

	c.JSON(http.StatusOK, dto.ListDepreciationEntriesResponse{Entries: dto.ToDepreciationEntryResponses(entries)})
}

// recordDisposal godoc
// @Summary Dispose an asset
// @Description Records the terminal disposal with proceeds, costs and computed gain/loss
// @Tags ledger
// @Accept  json
// @Produce  json
// @Param   assetID path string true "Asset ID"
// @Param   disposal body dto.RecordDisposalRequest true "Disposal details"
// @Success 201 {object} dto.DisposalResponse "The disposal entry"
// @Failure 400 {object} map[string]string "Invalid request format"
// @Failure 404 {object} map[string]string "Asset not found"
// @Failure 409 {object} map[string]string "Asset already disposed"
// @Router /assets/{assetID}/disposal [post]
func (h *ledgerHandler) recordDisposal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	assetID := c.Param("assetID")

	var req dto.RecordDisposalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for recordDisposal", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Creator user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	entry, err := h.assetService.RecordDisposal(c.Request.Context(), assetID, req, creatorUserID)
	if err != nil {
		respondError(c, logger, err, "Failed to record disposal")
		return
	}

	logger.Info("Disposal recorded successfully", slog.String("asset_id", assetID), slog.String("gain_loss", entry.GainLoss.String()))
	c.JSON(http.StatusCreated, dto.ToDisposalResponse(entry))
}

// getDisposal godoc
// @Summary Get the disposal entry
// @Description Retrieves the asset's disposal entry if one has been recorded
// @Tags ledger
// @Produce  json
// @Param   assetID path string true "Asset ID"
// @Success 200 {object} dto.DisposalResponse "The disposal entry"
// @Failure 404 {object} map[string]string "Asset not found or not disposed"
// @Router /assets/{assetID}/disposal [get]
func (h *ledgerHandler) getDisposal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	assetID := c.Param("assetID")

	entry, err := h.assetService.GetDisposal(c.Request.Context(), assetID)
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve disposal")
		return
	}

	c.JSON(http.StatusOK, dto.ToDisposalResponse(entry))
}

// recordRevaluation godoc
// @Summary Revalue or impair an asset
// @Description Records a market revaluation or impairment and adjusts the asset's current value
// @Tags ledger
// @Accept  json
// @Produce  json
// @Param   assetID path string true "Asset ID"
// @Param   revaluation body dto.RecordRevaluationRequest true "Revaluation details"
// @Success 201 {object} dto.RevaluationResponse "The revaluation record"
// @Failure 400 {object} map[string]string "Invalid request format"
// @Failure 404 {object} map[string]string "Asset not found"
// @Failure 409 {object} map[string]string "Asset disposed or concurrent modification"
// @Router /assets/{assetID}/revaluations [post]
func (h *ledgerHandler) recordRevaluation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	assetID := c.Param("assetID")

	var req dto.RecordRevaluationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for recordRevaluation", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Creator user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	rev, err := h.assetService.RecordRevaluation(c.Request.Context(), assetID, req, creatorUserID)
	if err != nil {
		respondError(c, logger, err, "Failed to record revaluation")
		return
	}

	logger.Info("Revaluation recorded successfully", slog.String("asset_id", assetID), slog.String("type", string(rev.Type)))
	c.JSON(http.StatusCreated, dto.ToRevaluationResponse(rev))
}

// listRevaluations godoc
// @Summary List revaluations
// @Description Retrieves the asset's revaluation history, oldest first
// @Tags ledger
// @Produce  json
// @Param   assetID path string true "Asset ID"
// @Success 200 {object} dto.ListRevaluationsResponse "Revaluation history"
// @Failure 404 {object} map[string]string "Asset not found"
// @Router /assets/{assetID}/revaluations [get]
func (h *ledgerHandler) listRevaluations(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	assetID := c.Param("assetID")

	revs, err := h.assetService.ListRevaluations(c.Request.Context(), assetID)
	if err != nil {
		respondError(c, logger, err, "Failed to list revaluations")
		return
	}

	c.JSON(http.StatusOK, dto.ListRevaluationsResponse{Revaluations: dto.ToRevaluationResponses(revs)})
}
