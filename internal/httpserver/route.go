package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	mwauth "github.com/visionx-optics/visionx-server/internal/middleware/auth"
)

type Deps struct {
	Auth          *AuthHTTP
	Customers     *CustomerHTTP
	Inventory     *InventoryHTTP
	Appointments  *AppointmentHTTP
	EyeTests      *EyeTestHTTP
	Prescriptions *PrescriptionHTTP
	Patient       *PatientHTTP
	Cart          *CartHTTP
	Billing       *BillingHTTP
	Notifications *NotificationHTTP
	Analytics     *AnalyticsHTTP
	Activity      *ActivityHTTP
	Chat          *ChatHTTP
	Uploads       *UploadHTTP

	JWTSecret []byte
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	authMW := mwauth.New(d.JWTSecret)

	api := e.Group("/api")
	api.POST("/auth/login", d.Auth.Login)

	staff := api.Group("", authMW.RequireAuth)

	staff.GET("/customers", d.Customers.ListCustomers, authMW.RequireAdmin)
	staff.POST("/customers", d.Customers.CreateCustomer, authMW.RequireAdmin)
	staff.DELETE("/customers/:id", d.Customers.DeleteCustomer, authMW.RequireAdmin)

	staff.GET("/inventory", d.Inventory.ListItems)
	staff.GET("/inventory/search", d.Inventory.SearchItems)
	staff.GET("/inventory/:id", d.Inventory.GetItem)
	staff.POST("/inventory", d.Inventory.CreateItem, authMW.RequireAdmin)
	staff.PATCH("/inventory/:id", d.Inventory.PatchItem, authMW.RequireAdmin)
	staff.DELETE("/inventory/:id", d.Inventory.DeleteItem, authMW.RequireAdmin)

	staff.GET("/appointments", d.Appointments.ListAppointments, authMW.RequireAdmin)
	staff.POST("/appointments", d.Appointments.CreateAppointment)
	staff.PATCH("/appointments/:id", d.Appointments.PatchAppointment)

	staff.GET("/eye-tests", d.EyeTests.ListEyeTests, authMW.RequireAdmin)
	staff.POST("/customers/test", d.EyeTests.RecordTest)
	staff.POST("/eye-tests/diagnose", d.EyeTests.Diagnose)

	staff.GET("/prescriptions", d.Prescriptions.ListPrescriptions, authMW.RequireAdmin)
	staff.POST("/prescriptions", d.Prescriptions.CreatePrescription, authMW.RequireAdmin)

	patient := api.Group("/patient", authMW.RequireRole("patient"))
	patient.GET("/appointments", d.Patient.MyAppointments)
	patient.GET("/tests", d.Patient.MyTests)
	patient.GET("/prescriptions", d.Patient.MyPrescriptions)

	staff.GET("/cart", d.Cart.GetCart)
	staff.POST("/cart", d.Cart.AddToCart)
	staff.DELETE("/cart/:id", d.Cart.RemoveFromCart)

	staff.POST("/billing", d.Billing.Checkout)
	staff.GET("/billing", d.Billing.ListSales, authMW.RequireAdmin)

	staff.GET("/notifications", d.Notifications.ListNotifications)
	staff.PATCH("/notifications/:id/read", d.Notifications.MarkRead)

	staff.GET("/analytics", d.Analytics.Dashboard, authMW.RequireAdmin)
	staff.GET("/analytics/eye-conditions", d.Analytics.EyeConditions, authMW.RequireAdmin)
	staff.GET("/analytics/demographics", d.Analytics.Demographics, authMW.RequireAdmin)

	staff.GET("/activity-logs", d.Activity.RecentActivity, authMW.RequireAdmin)

	staff.POST("/chat", d.Chat.Chat)
	staff.POST("/upload", d.Uploads.Upload)

	e.Static("/uploads", d.Uploads.Dir)
}
