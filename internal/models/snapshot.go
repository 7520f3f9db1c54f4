package models

import "time"

// ProductQuantity is one reported quantity inside a snapshot. Quantity is
// kept as the raw string entered by staff: the miscellaneous product holds
// free text, every other product holds a decimal string.
type ProductQuantity struct {
	ProductID string `json:"productId"`
	Quantity  string `json:"quantity"`
}

// Snapshot is one immutable inventory observation for a device. Saves always
// insert a new row; the latest row per device wins on read.
type Snapshot struct {
	ID         int               `json:"id"`
	Device     string            `json:"device"`
	Products   []ProductQuantity `json:"products"`
	ReportedBy string            `json:"reported_by"`
	Date       string            `json:"date"`
	CreatedAt  time.Time         `json:"created_at"`
}
