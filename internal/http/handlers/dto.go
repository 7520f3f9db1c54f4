package handlers

import (
	"github.com/mpdl-apps/cleaning-inventory/internal/inventory"
	"github.com/mpdl-apps/cleaning-inventory/internal/models"
)

// Result is the uniform envelope for failed operations: no store error ever
// reaches a client raw.
type Result struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

type SaveInventoryRequest struct {
	Device     string                   `json:"device"`
	ReportedBy string                   `json:"reported_by,omitempty"`
	Products   []models.ProductQuantity `json:"products"`
}

type SaveInventoryResponse struct {
	Success  bool            `json:"success"`
	Snapshot models.Snapshot `json:"snapshot"`
}

type LatestInventoryResponse struct {
	Success    bool              `json:"success"`
	Quantities map[string]string `json:"quantities"`
	CreatedAt  string            `json:"created_at,omitempty"`
}

type ConsolidatedResponse struct {
	Success    bool           `json:"success"`
	Quantities map[string]int `json:"quantities"`
}

type DeviceListResponse struct {
	Devices      []string `json:"devices"`
	Consolidated string   `json:"consolidated"`
}

type ProductOption struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Quantities []string `json:"quantities,omitempty"`
	FreeText   bool     `json:"free_text,omitempty"`
}

type ReportResponse struct {
	Success   bool   `json:"success"`
	PdfBase64 string `json:"pdfBase64"`
}

type ArchiveResponse struct {
	Success     bool   `json:"success"`
	Filename    string `json:"filename"`
	DisplayName string `json:"display_name"`
	URL         string `json:"url"`
}

type ArchivedFile struct {
	Filename    string `json:"filename"`
	DisplayName string `json:"display_name"`
}

type ArchivesResponse struct {
	Success bool           `json:"success"`
	Files   []ArchivedFile `json:"files"`
}

type MailtoResponse struct {
	Success bool   `json:"success"`
	Mailto  string `json:"mailto"`
}

type ResetResponse struct {
	Success   bool                     `json:"success"`
	Message   string                   `json:"message"`
	Succeeded []string                 `json:"succeeded"`
	Failed    []inventory.ResetFailure `json:"failed,omitempty"`
}

type UserLogin struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResult struct {
	Token string `json:"token"`
}
