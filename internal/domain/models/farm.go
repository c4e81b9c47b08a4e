package models

import "time"

// DateLayout is the calendar date format used for every stored and exchanged date.
const DateLayout = "2006-01-02"

// UnknownFlockName is reported for records whose flock no longer resolves.
const UnknownFlockName = "Unknown"

// FlockStatus enumerates the lifecycle states of a flock.
type FlockStatus string

const (
	FlockActive   FlockStatus = "active"
	FlockInactive FlockStatus = "inactive"
)

// Valid reports whether the status is one of the known values.
func (s FlockStatus) Valid() bool {
	return s == FlockActive || s == FlockInactive
}

// Flock is a group of birds tracked as one unit with a running live count.
// CurrentBirdCount only changes through mortality records.
type Flock struct {
	ID               uint        `gorm:"primaryKey" json:"id"`
	Name             string      `gorm:"size:120;not null" json:"name"`
	Breed            string      `gorm:"size:120;not null" json:"breed"`
	InitialBirdCount int         `gorm:"not null" json:"initialBirdCount"`
	CurrentBirdCount int         `gorm:"not null" json:"currentBirdCount"`
	AcquisitionDate  string      `gorm:"size:10;index;not null" json:"acquisitionDate"`
	Status           FlockStatus `gorm:"size:16;index;not null;default:active" json:"status"`
	CreatedAt        time.Time   `json:"createdAt"`
}

// FeedPurchase records a feed delivery. It is not linked to any flock.
type FeedPurchase struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Type         string    `gorm:"size:120;not null" json:"type"`
	QuantityKg   Amount    `gorm:"precision:12;scale:2;not null" json:"quantityKg"`
	PurchaseDate string    `gorm:"size:10;index;not null" json:"purchaseDate"`
	Supplier     string    `gorm:"size:120" json:"supplier"`
	CreatedAt    time.Time `json:"createdAt"`
}

// EggLog captures one egg collection for a flock.
type EggLog struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	FlockID   uint      `gorm:"index;not null" json:"flockId"`
	Date      string    `gorm:"size:10;index;not null" json:"date"`
	Quantity  int       `gorm:"not null" json:"quantity"`
	GradeA    int       `gorm:"not null;default:0" json:"gradeA"`
	GradeB    int       `gorm:"not null;default:0" json:"gradeB"`
	CreatedAt time.Time `json:"createdAt"`
}

// MortalityRecord captures birds lost from a flock on a given day.
type MortalityRecord struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	FlockID   uint      `gorm:"index;not null" json:"flockId"`
	Date      string    `gorm:"size:10;index;not null" json:"date"`
	Count     int       `gorm:"not null" json:"count"`
	Cause     string    `gorm:"size:255" json:"cause"`
	CreatedAt time.Time `json:"createdAt"`
}

// VaccinationRecord captures a vaccine administered to a flock.
type VaccinationRecord struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	FlockID         uint      `gorm:"index;not null" json:"flockId"`
	VaccineName     string    `gorm:"size:120;not null" json:"vaccineName"`
	Method          string    `gorm:"size:120" json:"method"`
	VaccinationDate string    `gorm:"size:10;index;not null" json:"vaccinationDate"`
	Notes           string    `gorm:"type:text" json:"notes"`
	CreatedAt       time.Time `json:"createdAt"`
}

// SaleRecord captures a sale. TotalPrice is computed once at write time.
type SaleRecord struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Item       string    `gorm:"size:120;not null" json:"item"`
	Quantity   Amount    `gorm:"precision:12;scale:2;not null" json:"quantity"`
	UnitPrice  Amount    `gorm:"precision:12;scale:2;not null" json:"unitPrice"`
	TotalPrice Amount    `gorm:"precision:14;scale:2;not null" json:"totalPrice"`
	SaleDate   string    `gorm:"size:10;index;not null" json:"saleDate"`
	Customer   string    `gorm:"size:120" json:"customer"`
	CreatedAt  time.Time `json:"createdAt"`
}

// User is an account allowed to use the API. The password hash never leaves the server.
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"size:120;not null" json:"username"`
	Email        string    `gorm:"size:190;uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"size:255;not null" json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}

// EggLogView is an egg log enriched with its flock name.
type EggLogView struct {
	EggLog
	FlockName string `json:"flockName"`
}

// MortalityView is a mortality record enriched with its flock name.
type MortalityView struct {
	MortalityRecord
	FlockName string `json:"flockName"`
}

// VaccinationView is a vaccination record enriched with its flock name.
type VaccinationView struct {
	VaccinationRecord
	FlockName string `json:"flockName"`
}

// SaleView is a sale with its display-formatted total.
type SaleView struct {
	SaleRecord
	FormattedTotalPrice string `json:"formattedTotalPrice"`
}
