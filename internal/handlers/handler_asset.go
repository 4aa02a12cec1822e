package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/assetforge/fixed_asset_app/internal/core/ports/services"
	"github.com/assetforge/fixed_asset_app/internal/dto"
	"github.com/assetforge/fixed_asset_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// assetHandler handles HTTP requests related to fixed assets.
type assetHandler struct {
	assetService portssvc.AssetSvcFacade
}

// newAssetHandler creates a new assetHandler.
func newAssetHandler(assetService portssvc.AssetSvcFacade) *assetHandler {
	return &assetHandler{
		assetService: assetService,
	}
}

func registerAssetRoutes(rg *gin.RouterGroup, assetService portssvc.AssetSvcFacade) {
	h := newAssetHandler(assetService)

	assets := rg.Group("/assets")
	{
		assets.POST("", h.createAsset)
		assets.GET("", h.listAssets)
		assets.GET("/:assetID", h.getAssetByID)
	}

	registerLedgerRoutes(assets, assetService)
}

// createAsset godoc
// @Summary Register a new fixed asset
// @Description Creates an asset under a category; tag, method and salvage default from the category
// @Tags assets
// @Accept  json
// @Produce  json
// @Param   asset body dto.CreateAssetRequest true "Asset details"
// @Success 201 {object} dto.AssetResponse "Created asset"
// @Failure 400 {object} map[string]string "Invalid request format"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Category not found"
// @Router /assets [post]
func (h *assetHandler) createAsset(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for createAsset", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Creator user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	asset, err := h.assetService.CreateAsset(c.Request.Context(), req, creatorUserID)
	if err != nil {
		respondError(c, logger, err, "Failed to create asset")
		return
	}

	logger.Info("Asset created successfully", slog.String("asset_id", asset.AssetID), slog.String("asset_tag", asset.AssetTag))
	c.JSON(http.StatusCreated, dto.ToAssetResponse(asset))
}

// getAssetByID godoc
// @Summary Get an asset
// @Description Retrieves an asset; the response is verified against the depreciation ledger
// @Tags assets
// @Produce  json
// @Param   assetID path string true "Asset ID"
// @Success 200 {object} dto.AssetResponse "The asset"
// @Failure 404 {object} map[string]string "Asset not found"
// @Failure 500 {object} map[string]string "Ledger integrity violation"
// @Router /assets/{assetID} [get]
func (h *assetHandler) getAssetByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	assetID := c.Param("assetID")

	asset, err := h.assetService.GetAssetByID(c.Request.Context(), assetID)
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve asset")
		return
	}

	c.JSON(http.StatusOK, dto.ToAssetResponse(asset))
}

// listAssets godoc
// @Summary List assets
// @Description Retrieves a paginated list of assets, optionally filtered by category
// @Tags assets
// @Produce  json
// @Param   categoryID query string false "Filter by category"
// @Param   limit query int false "Page size (default 20)"
// @Param   nextToken query string false "Pagination token from a previous response"
// @Success 200 {object} dto.ListAssetsResponse "Paginated assets"
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Router /assets [get]
func (h *assetHandler) listAssets(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListAssetsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Error("Failed to bind query for listAssets", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters"})
		return
	}

	resp, err := h.assetService.ListAssets(c.Request.Context(), params)
	if err != nil {
		respondError(c, logger, err, "Failed to list assets")
		return
	}

	c.JSON(http.StatusOK, resp)
}
