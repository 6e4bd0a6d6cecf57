package rest

import (
	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all REST API routes
func SetupRoutes(router *gin.Engine, handler Handler) {
	// Health check endpoint (no version prefix)
	router.GET("/health", handler.HealthCheck)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Session
		v1.POST("/auth/login", handler.Login)

		// Custody workflow
		v1.POST("/assign-packet", handler.RecordTransfer)
		v1.GET("/assign/:packetNo", handler.GetHistory)
		v1.GET("/transactions", handler.ListTransfers)
		v1.GET("/transactions/:transactionNo", handler.GetTransfer)
		v1.DELETE("/transactions/:transactionNo", handler.CancelTransfer)

		// Packets
		v1.POST("/packet", handler.CreatePacket)
		v1.GET("/packet", handler.ListPackets)
		v1.GET("/packet/no/:packetNo", handler.GetPacketByNo)
		v1.PUT("/packet/:id", handler.UpdatePacket)
		v1.DELETE("/packet/:id", handler.DeletePacket)

		// Purchases
		v1.POST("/purchase", handler.CreatePurchase)
		v1.GET("/purchase", handler.ListPurchases)
		v1.GET("/purchase/:id", handler.GetPurchase)
		v1.PUT("/purchase/:id", handler.UpdatePurchase)
		v1.DELETE("/purchase/:id", handler.DeletePurchase)
		v1.POST("/purchase/:id/packets", handler.AddPacketsToPurchase)

		// Managers
		v1.POST("/managers", handler.CreateManager)
		v1.GET("/managers", handler.ListManagers)
		v1.GET("/managers/:id", handler.GetManager)
		v1.PUT("/managers/:id", handler.UpdateManager)
		v1.DELETE("/managers/:id", handler.DeleteManager)

		// Workers
		v1.POST("/workers", handler.CreateWorker)
		v1.GET("/workers", handler.ListWorkers)
		v1.GET("/workers/:id", handler.GetWorker)
		v1.PUT("/workers/:id", handler.UpdateWorker)
		v1.DELETE("/workers/:id", handler.DeleteWorker)

		// Grading lookup tables
		v1.POST("/lookups/:kind", handler.CreateLookupValue)
		v1.GET("/lookups/:kind", handler.ListLookupValues)
		v1.DELETE("/lookups/:kind/:id", handler.DeleteLookupValue)

		// Processes
		v1.POST("/process", handler.CreateProcess)
		v1.GET("/process", handler.ListProcesses)
		v1.DELETE("/process/:id", handler.DeleteProcess)

		// Parties
		v1.POST("/party", handler.CreateParty)
		v1.GET("/party", handler.ListParties)
	}
}
