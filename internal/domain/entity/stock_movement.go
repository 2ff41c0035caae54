package entity

// Stock movement directions.
const (
	MovementIn  = "in"
	MovementOut = "out"
)

// StockMovement records one inbound or outbound inventory change.
type StockMovement struct {
	ID           string `json:"id"`
	MedicineID   string `json:"medicineId"`
	MedicineName string `json:"medicineName"`
	Type         string `json:"type"`
	Quantity     int    `json:"quantity"`
	Reason       string `json:"reason"`
	Date         string `json:"date"`
	UserID       string `json:"userId"`
	UserName     string `json:"userName"`
}
