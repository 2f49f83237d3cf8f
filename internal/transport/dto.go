package transport

import "encoding/json"

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token string   `json:"token"`
	User  UserInfo `json:"user"`
}

type UserInfo struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type CreateCustomerRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Age     *int   `json:"age"`
	Gender  string `json:"gender"`
}

// Details arrives as a JSON object and is persisted verbatim as its
// serialized form, so a fetched item's details string parses back to a
// deep-equal value.
type CreateInventoryRequest struct {
	Category string          `json:"type"`
	Brand    string          `json:"brand"`
	Model    string          `json:"model"`
	Price    float64         `json:"price"`
	Stock    uint            `json:"stock"`
	ImageURL string          `json:"image_url"`
	Details  json.RawMessage `json:"details"`
}

type PatchInventoryRequest struct {
	Brand    *string          `json:"brand"`
	Model    *string          `json:"model"`
	Price    *float64         `json:"price"`
	Stock    *uint            `json:"stock"`
	ImageURL *string          `json:"image_url"`
	Details  *json.RawMessage `json:"details"`
}

type CreateAppointmentRequest struct {
	CustomerID uint   `json:"customer_id"`
	Date       string `json:"date"`
	Time       string `json:"time"`
	Notes      string `json:"notes"`
}

type PatchAppointmentRequest struct {
	Status string `json:"status"`
}

type CreateEyeTestRequest struct {
	CustomerID uint            `json:"customer_id"`
	Results    json.RawMessage `json:"results"`
	ImageURL   string          `json:"image_url"`
}

type DiagnoseRequest struct {
	CustomerID uint   `json:"customer_id"`
	Image      string `json:"image"`
	MimeType   string `json:"mime_type"`
	ImageURL   string `json:"image_url"`
}

type CreatePrescriptionRequest struct {
	CustomerID uint   `json:"customer_id"`
	IssueDate  string `json:"issue_date"`
	ODSphere   string `json:"od_sphere"`
	ODCylinder string `json:"od_cylinder"`
	ODAxis     string `json:"od_axis"`
	OSSphere   string `json:"os_sphere"`
	OSCylinder string `json:"os_cylinder"`
	OSAxis     string `json:"os_axis"`
	PD         string `json:"pd"`
	Addition   string `json:"addition"`
	Notes      string `json:"notes"`
}

type AddToCartRequest struct {
	ItemID   uint `json:"item_id"`
	Quantity uint `json:"quantity"`
}

type CheckoutRequest struct {
	CustomerID uint `json:"customer_id"`
}

type ChatRequest struct {
	Message string `json:"message"`
}

type ChatResponse struct {
	Reply string `json:"reply"`
}

// ManualTestResult is the shape the Snellen-test flow produces for
// EyeTest.Results, discriminated by Type == "manual".
type ManualTestResult struct {
	Type     string    `json:"type"`
	Distance string    `json:"distance"`
	PD       string    `json:"pd"`
	LeftEye  EyeAcuity `json:"left_eye"`
	RightEye EyeAcuity `json:"right_eye"`
	Summary  string    `json:"summary"`
}

type EyeAcuity struct {
	Acuity string `json:"acuity"`
}
