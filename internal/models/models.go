package models

import (
	"time"
)

type User struct {
	ID           uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name         string `gorm:"not null"                 json:"name"`
	Email        string `gorm:"unique;not null"          json:"email"`
	PasswordHash string `gorm:"not null"                 json:"-"`
	Role         string `gorm:"not null;default:staff"   json:"role"`
}

// Customer is the clinical subject, distinct from the login identity.
// A patient-role User is linked to it only by email equality.
type Customer struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"not null"                 json:"name"`
	Email     string    `gorm:"index"                    json:"email"`
	Phone     string    `json:"phone"`
	Address   string    `json:"address"`
	Age       *int      `json:"age"`
	Gender    string    `json:"gender"`
	CreatedAt time.Time `json:"created_at"`
}

type InventoryItem struct {
	ID       uint    `gorm:"primaryKey;autoIncrement"  json:"id"`
	Category string  `gorm:"column:type;not null"      json:"type"`
	Brand    string  `json:"brand"`
	Model    string  `json:"model"`
	Price    float64 `gorm:"not null;check:price >= 0" json:"price"`
	Stock    uint    `gorm:"default:0"                 json:"stock"`
	ImageURL string  `json:"image_url"`
	Details  string  `json:"details"`
}

func (InventoryItem) TableName() string { return "inventory" }

type Appointment struct {
	ID         uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	CustomerID uint   `gorm:"index;not null"           json:"customer_id"`
	Date       string `gorm:"not null"                 json:"date"`
	Time       string `gorm:"not null"                 json:"time"`
	Status     string `gorm:"default:pending"          json:"status"`
	Notes      string `json:"notes"`
}

// EyeTest holds a results JSON blob whose shape depends on its origin.
// Consumers branch on the presence of the "type" discriminator field,
// never on a fixed schema.
type EyeTest struct {
	ID         uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	CustomerID uint      `gorm:"index;not null"           json:"customer_id"`
	Date       time.Time `gorm:"autoCreateTime"           json:"date"`
	Results    string    `json:"results"`
	ImageURL   string    `json:"image_url"`
}

type Prescription struct {
	ID         uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	CustomerID uint   `gorm:"index;not null"           json:"customer_id"`
	IssueDate  string `json:"issue_date"`
	ODSphere   string `json:"od_sphere"`
	ODCylinder string `json:"od_cylinder"`
	ODAxis     string `json:"od_axis"`
	OSSphere   string `json:"os_sphere"`
	OSCylinder string `json:"os_cylinder"`
	OSAxis     string `json:"os_axis"`
	PD         string `gorm:"column:pd"                json:"pd"`
	Addition   string `json:"addition"`
	Notes      string `json:"notes"`
}

type CartItem struct {
	ID       uint `gorm:"primaryKey"                 json:"id"`
	UserID   uint `gorm:"index;not null"             json:"user_id"`
	ItemID   uint `gorm:"not null"                   json:"item_id"`
	Quantity uint `gorm:"default:1;check:quantity>0" json:"quantity"`
}

type Notification struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    uint      `gorm:"index;not null"           json:"user_id"`
	Title     string    `gorm:"not null"                 json:"title"`
	Message   string    `json:"message"`
	Category  string    `gorm:"default:info"             json:"category"`
	Read      bool      `gorm:"default:false"            json:"read"`
	CreatedAt time.Time `json:"created_at"`
}

// ActivityLog rows are append-only; the application never mutates them.
type ActivityLog struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    uint      `gorm:"index"                    json:"user_id"`
	Action    string    `gorm:"not null"                 json:"action"`
	Details   string    `json:"details"`
	CreatedAt time.Time `json:"timestamp"`
}

type Sale struct {
	ID         uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	CustomerID uint      `gorm:"index"                    json:"customer_id"`
	Items      string    `json:"items"`
	Total      float64   `gorm:"not null"                 json:"total"`
	CreatedAt  time.Time `json:"date"`
}
