package server

import (
	"net/http"
	"time"

	"auction-house/internal/auth"
	handler "auction-house/services/api/handler"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Services bundles what the HTTP layer calls into
type Services struct {
	Auctions handler.AuctionServiceInterface
	Events   handler.EventServiceInterface
	Bids     handler.BiddingServiceInterface
	Users    handler.UserServiceInterface
}

// SetupRouter configures all Gin routes for the application
func SetupRouter(svc Services, issuer *auth.Issuer, corsOrigins []string) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery()) // recover from panics
	router.Use(RequestIDMiddleware)
	router.Use(RequestLoggerMiddleware) // custom request logging
	if len(corsOrigins) > 0 {
		router.Use(cors.New(cors.Config{
			AllowOrigins:     corsOrigins,
			AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept", RequestIDHeader},
			ExposeHeaders:    []string{"Content-Length", RequestIDHeader},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}
	router.Use(auth.IdentityMiddleware(issuer))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	auctionHandler := handler.NewAuctionHandler(svc.Auctions)
	eventHandler := handler.NewEventHandler(svc.Events)
	biddingHandler := handler.NewBiddingHandler(svc.Bids)
	userHandler := handler.NewUserHandler(svc.Users, issuer)

	users := router.Group("/users")
	{
		users.POST("", userHandler.RegisterHandler)
		users.POST("/authenticate", userHandler.AuthenticateHandler)
		users.GET("/me", userHandler.MeHandler)
	}

	events := router.Group("/events")
	{
		events.POST("", eventHandler.CreateEventHandler)
		events.GET("", eventHandler.ListEventsHandler)
		events.GET("/:id", eventHandler.GetEventHandler)
		events.PUT("/:id", eventHandler.UpdateEventHandler)
		events.DELETE("/:id", eventHandler.DeleteEventHandler)
		events.GET("/:id/auctions", auctionHandler.ListEventAuctionsHandler)
	}

	auctions := router.Group("/auctions")
	{
		auctions.POST("", auctionHandler.CreateAuctionHandler)
		auctions.GET("", auctionHandler.ListAuctionsHandler)
		auctions.POST("/update/status", auctionHandler.UpdateAuctionStatusHandler)
		auctions.GET("/:id", auctionHandler.GetAuctionHandler)
		auctions.DELETE("/:id", auctionHandler.DeleteAuctionHandler)
		auctions.GET("/:id/bids", biddingHandler.ListAuctionBidsHandler)
	}

	bids := router.Group("/bids")
	{
		bids.POST("", biddingHandler.PlaceBidHandler)
		bids.GET("", biddingHandler.ListBidsByOwnerHandler)
	}

	return router
}
