package internal

import (
	"net/http"

	"camsd/internal/controllers"
	"camsd/internal/providers"
	"camsd/internal/structures"
)

func InitRoutes(apiController *controllers.ApiController, conf *structures.Config) providers.RouterProviderInterface {
	routers := providers.NewRouterProvider()

	routers.Get("/attendance", http.HandlerFunc(apiController.GetAttendance))
	routers.Get("/attendance/summary", http.HandlerFunc(apiController.GetSummary))
	routers.Get("/attendance/today", http.HandlerFunc(apiController.GetToday))
	routers.Get("/attendance/punches", http.HandlerFunc(apiController.GetPunches))
	routers.Post("/attendance/mark", http.HandlerFunc(apiController.MarkAttendance))
	routers.Post("/sync", http.HandlerFunc(apiController.ForceSync))
	routers.Get("/leaves", http.HandlerFunc(apiController.GetLeaves))
	routers.Get("/leaves/balance", http.HandlerFunc(apiController.GetLeaveBalance))
	routers.Get("/reimbursements", http.HandlerFunc(apiController.GetReimbursements))
	routers.Get("/settings", http.HandlerFunc(apiController.GetSettings))
	return routers
}
