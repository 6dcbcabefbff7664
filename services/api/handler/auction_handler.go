package handler

import (
	"net/http"

	"auction-house/internal/auctionerrors"
	"auction-house/internal/auth"
	model "auction-house/internal/models"
	"auction-house/services/api/helpers"
	"auction-house/utils"

	"github.com/gin-gonic/gin"
)

type AuctionHandler struct {
	service AuctionServiceInterface
}

func NewAuctionHandler(service AuctionServiceInterface) *AuctionHandler {
	return &AuctionHandler{service: service}
}

// CreateAuctionHandler handles POST /auctions
func (h *AuctionHandler) CreateAuctionHandler(c *gin.Context) {
	actor, _ := auth.CurrentUserID(c)

	var candidate *model.Auction
	var req helpers.CreateAuctionRequest
	if helpers.BindJSON(c, "CreateAuctionHandler", &req) {
		candidate = req.ToAuction()
	}

	auction, err := h.service.CreateAuction(c.Request.Context(), candidate, actor)
	if err != nil {
		helpers.RespondError(c, "CreateAuctionHandler", err, map[string]any{
			"user_id":  actor,
			"event_id": req.EventID,
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, auction)
	helpers.LogSuccess("CreateAuctionHandler", "auction created successfully", map[string]any{
		"auction_id":     auction.ID,
		"event_id":       auction.EventID,
		"user_id":        actor,
		"starting_price": auction.StartingPrice.String(),
	})
}

// UpdateAuctionStatusHandler handles POST /auctions/update/status
func (h *AuctionHandler) UpdateAuctionStatusHandler(c *gin.Context) {
	actor, _ := auth.CurrentUserID(c)

	var req helpers.UpdateAuctionStatusRequest
	if !helpers.BindJSON(c, "UpdateAuctionStatusHandler", &req) {
		req = helpers.UpdateAuctionStatusRequest{}
	}

	auction, err := h.service.UpdateAuctionStatus(c.Request.Context(), req.ID, req.Status, actor)
	if err != nil {
		helpers.RespondError(c, "UpdateAuctionStatusHandler", err, map[string]any{
			"user_id":    actor,
			"auction_id": req.ID,
			"status":     req.Status,
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, auction)
	helpers.LogSuccess("UpdateAuctionStatusHandler", "auction status updated successfully", map[string]any{
		"auction_id": auction.ID,
		"status":     auction.Status,
		"user_id":    actor,
	})
}

// GetAuctionHandler handles GET /auctions/:id
func (h *AuctionHandler) GetAuctionHandler(c *gin.Context) {
	auctionID := helpers.ParamID(c, "id")
	if auctionID == 0 {
		helpers.RespondError(c, "GetAuctionHandler", auctionerrors.ErrInvalidRequest, map[string]any{"param": c.Param("id")})
		return
	}

	auction, err := h.service.GetAuction(c.Request.Context(), auctionID)
	if err != nil {
		helpers.RespondError(c, "GetAuctionHandler", err, map[string]any{"auction_id": auctionID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, auction)
}

// ListAuctionsHandler handles GET /auctions
func (h *AuctionHandler) ListAuctionsHandler(c *gin.Context) {
	auctions, err := h.service.ListAuctions(c.Request.Context())
	if err != nil {
		helpers.RespondError(c, "ListAuctionsHandler", err, nil)
		return
	}

	if auctions == nil {
		auctions = []model.Auction{}
	}

	utils.JSONResponse(c, http.StatusOK, auctions)
	helpers.LogSuccess("ListAuctionsHandler", "auctions retrieved successfully", map[string]any{
		"count": len(auctions),
	})
}

// ListEventAuctionsHandler handles GET /events/:id/auctions
func (h *AuctionHandler) ListEventAuctionsHandler(c *gin.Context) {
	eventID := helpers.ParamID(c, "id")
	if eventID == 0 {
		helpers.RespondError(c, "ListEventAuctionsHandler", auctionerrors.ErrInvalidRequest, map[string]any{"param": c.Param("id")})
		return
	}

	auctions, err := h.service.ListAuctionsByEvent(c.Request.Context(), eventID)
	if err != nil {
		helpers.RespondError(c, "ListEventAuctionsHandler", err, map[string]any{"event_id": eventID})
		return
	}

	if auctions == nil {
		auctions = []model.Auction{}
	}

	utils.JSONResponse(c, http.StatusOK, auctions)
	helpers.LogSuccess("ListEventAuctionsHandler", "auctions retrieved successfully", map[string]any{
		"event_id": eventID,
		"count":    len(auctions),
	})
}

// DeleteAuctionHandler handles DELETE /auctions/:id
func (h *AuctionHandler) DeleteAuctionHandler(c *gin.Context) {
	actor, _ := auth.CurrentUserID(c)
	auctionID := helpers.ParamID(c, "id")

	deleted, err := h.service.DeleteAuction(c.Request.Context(), auctionID, actor)
	if err != nil {
		helpers.RespondError(c, "DeleteAuctionHandler", err, map[string]any{
			"auction_id": auctionID,
			"user_id":    actor,
		})
		return
	}
	if !deleted {
		helpers.RespondError(c, "DeleteAuctionHandler", auctionerrors.ErrAuctionNotExist, map[string]any{"auction_id": auctionID})
		return
	}

	c.Status(http.StatusNoContent)
	helpers.LogSuccess("DeleteAuctionHandler", "auction deleted successfully", map[string]any{
		"auction_id": auctionID,
		"user_id":    actor,
	})
}
