package api

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"

	"vehicle-rental-backend/config"
	"vehicle-rental-backend/internal/mw"
	"vehicle-rental-backend/internal/store"
)

// NewRouter creates and configures a new Gin router.
func NewRouter(s store.Store, cfg *config.Config, loc *time.Location) *gin.Engine {
	r := gin.Default()

	handler := NewHandler(s, cfg, loc)

	corsCfg := cors.DefaultConfig()
	if len(cfg.Server.CORSOrigins) > 0 {
		corsCfg.AllowOrigins = cfg.Server.CORSOrigins
	} else {
		corsCfg.AllowAllOrigins = true
	}
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization")
	r.Use(cors.New(corsCfg))

	rateLimiter := mw.RateLimiter(rate.Limit(cfg.Server.RateLimitPerSec), cfg.Server.RateLimitBurst)

	// The response cache covers only the aggregation reads; CRUD lists stay
	// uncached so edits show up immediately.
	ttl := time.Duration(cfg.Server.CacheTTLSeconds) * time.Second
	cacheStore := cache.New(ttl, 2*ttl)
	caching := mw.Cache(cacheStore, ttl)

	api := r.Group("/api")
	api.Use(rateLimiter)

	api.POST("/auth/login", handler.Login)

	authed := api.Group("")
	authed.Use(mw.RequireAuth(cfg.Auth.JWTSecret))
	{
		authed.GET("/vehicles", handler.ListVehicles)
		authed.POST("/vehicles", handler.CreateVehicle)
		authed.GET("/vehicles/:id", handler.GetVehicle)
		authed.PUT("/vehicles/:id", handler.UpdateVehicle)
		authed.PUT("/vehicles/:id/status", handler.UpdateVehicleStatus)
		authed.DELETE("/vehicles/:id", handler.DecommissionVehicle)

		authed.GET("/clients", handler.ListClients)
		authed.POST("/clients", handler.CreateClient)
		authed.GET("/clients/:id", handler.GetClient)
		authed.PUT("/clients/:id", handler.UpdateClient)
		authed.PUT("/clients/:id/status", handler.UpdateClientStatus)
		authed.DELETE("/clients/:id", handler.DeleteClient)

		authed.GET("/employees", handler.ListEmployees)
		authed.POST("/employees", handler.CreateEmployee)
		authed.GET("/employees/:id", handler.GetEmployee)
		authed.PUT("/employees/:id", handler.UpdateEmployee)
		authed.DELETE("/employees/:id", handler.DeleteEmployee)

		authed.GET("/users", handler.ListUsers)
		authed.POST("/users", handler.CreateUser)
		authed.GET("/users/:id", handler.GetUser)
		authed.PUT("/users/:id/password", handler.UpdateUserPassword)
		authed.DELETE("/users/:id", handler.DeleteUser)

		authed.GET("/rentals", handler.ListRentals)
		authed.POST("/rentals", handler.CreateRental)
		authed.GET("/rentals/:id", handler.GetRental)
		authed.PUT("/rentals/:id", handler.UpdateRental)
		authed.POST("/rentals/:id/reserve", handler.ReserveRental)
		authed.POST("/rentals/:id/start", handler.StartRental)
		authed.POST("/rentals/:id/finish", handler.FinishRental)
		authed.POST("/rentals/:id/cancel", handler.CancelRental)
		authed.DELETE("/rentals/:id", handler.DeleteRental)

		authed.GET("/incidents", handler.ListIncidents)
		authed.POST("/incidents", handler.CreateIncident)
		authed.GET("/incidents/:id", handler.GetIncident)
		authed.PUT("/incidents/:id", handler.UpdateIncident)
		authed.DELETE("/incidents/:id", handler.DeleteIncident)

		authed.GET("/invoices", handler.ListInvoices)
		authed.GET("/invoices/:id", handler.GetInvoice)
		authed.POST("/invoices/:id/pay", handler.PayInvoice)
		authed.POST("/invoices/:id/void", handler.VoidInvoice)

		authed.GET("/maintenance", handler.ListMaintenance)
		authed.POST("/maintenance", handler.CreateMaintenance)
		authed.GET("/maintenance/:id", handler.GetMaintenance)
		authed.POST("/maintenance/:id/finish", handler.FinishMaintenance)
		authed.DELETE("/maintenance/:id", handler.DeleteMaintenance)

		authed.GET("/dashboard", caching, handler.GetDashboard)

		authed.GET("/reports/rentals", caching, handler.ListReportRentals)
		authed.GET("/reports/rentals/by-client", caching, handler.ReportByClient)
		authed.GET("/reports/rentals/by-vehicle", caching, handler.ReportByVehicle)
		authed.GET("/reports/rentals/monthly", caching, handler.ReportMonthly)
		authed.GET("/reports/rentals/quarterly", caching, handler.ReportQuarterly)
		authed.GET("/reports/rentals.csv", handler.ExportRentalsCSV)
	}

	return r
}
