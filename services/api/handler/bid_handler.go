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

type BiddingHandler struct {
	service BiddingServiceInterface
}

func NewBiddingHandler(service BiddingServiceInterface) *BiddingHandler {
	return &BiddingHandler{service: service}
}

// PlaceBidHandler handles POST /bids
func (h *BiddingHandler) PlaceBidHandler(c *gin.Context) {
	actor, _ := auth.CurrentUserID(c)

	var candidate *model.Bid
	var req helpers.PlaceBidRequest
	if helpers.BindJSON(c, "PlaceBidHandler", &req) {
		candidate = req.ToBid()
	}

	bid, err := h.service.PlaceBid(c.Request.Context(), candidate, actor)
	if err != nil {
		helpers.RespondError(c, "PlaceBidHandler", err, map[string]any{
			"auction_id": req.AuctionID,
			"user_id":    actor,
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, bid)
	helpers.LogSuccess("PlaceBidHandler", "bid recorded successfully", map[string]any{
		"bid_id":     bid.ID,
		"auction_id": bid.AuctionID,
		"user_id":    actor,
		"amount":     bid.Amount.String(),
	})
}

// ListBidsByOwnerHandler handles GET /bids?ownerid=N
func (h *BiddingHandler) ListBidsByOwnerHandler(c *gin.Context) {
	actor, _ := auth.CurrentUserID(c)
	ownerID, present := c.GetQuery("ownerid")

	bids, err := h.service.ListBidsByOwner(c.Request.Context(), ownerID, present, actor)
	if err != nil {
		helpers.RespondError(c, "ListBidsByOwnerHandler", err, map[string]any{
			"owner_id": ownerID,
			"user_id":  actor,
		})
		return
	}

	if bids == nil {
		bids = []model.Bid{}
	}

	utils.JSONResponse(c, http.StatusOK, bids)
	helpers.LogSuccess("ListBidsByOwnerHandler", "bids retrieved successfully", map[string]any{
		"user_id": actor,
		"count":   len(bids),
	})
}

// ListAuctionBidsHandler handles GET /auctions/:id/bids
func (h *BiddingHandler) ListAuctionBidsHandler(c *gin.Context) {
	auctionID := helpers.ParamID(c, "id")
	if auctionID == 0 {
		helpers.RespondError(c, "ListAuctionBidsHandler", auctionerrors.ErrInvalidRequest, map[string]any{"param": c.Param("id")})
		return
	}

	bids, err := h.service.ListBidsByAuction(c.Request.Context(), auctionID)
	if err != nil {
		helpers.RespondError(c, "ListAuctionBidsHandler", err, map[string]any{"auction_id": auctionID})
		return
	}

	if bids == nil {
		bids = []model.Bid{}
	}

	utils.JSONResponse(c, http.StatusOK, bids)
	helpers.LogSuccess("ListAuctionBidsHandler", "bids retrieved successfully", map[string]any{
		"auction_id": auctionID,
		"count":      len(bids),
	})
}
