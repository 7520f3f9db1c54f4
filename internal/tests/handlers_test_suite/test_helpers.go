package handlers_test_suite

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/mpdl-apps/cleaning-inventory/internal/archive"
	"github.com/mpdl-apps/cleaning-inventory/internal/auth"
	api "github.com/mpdl-apps/cleaning-inventory/internal/http"
	handler "github.com/mpdl-apps/cleaning-inventory/internal/http/handlers"
	rl "github.com/mpdl-apps/cleaning-inventory/internal/http/rate_limiter"
	"github.com/mpdl-apps/cleaning-inventory/internal/inventory"
	"github.com/mpdl-apps/cleaning-inventory/internal/mail"
	"github.com/mpdl-apps/cleaning-inventory/internal/models"
	"github.com/mpdl-apps/cleaning-inventory/internal/repo"
	"github.com/mpdl-apps/cleaning-inventory/internal/report"
)

var (
	token        string
	snapshotRepo *repo.InMemorySnapshotRepository
	blobStore    *archive.InMemoryBlobStore
)

func init() {
	setupTestServices("secret")
	r := api.NewRouter()

	var err error
	token, err = generateToken(r, "admin", "secret")
	if err != nil {
		panic(fmt.Sprintf("error generating token: %v", err))
	}
}

func setupTestServices(password string) {
	snapshotRepo = repo.NewInMemorySnapshotRepository()
	blobStore = archive.NewInMemoryBlobStore()

	inventorySvc := inventory.NewService(snapshotRepo, nil)
	reportSvc := report.NewService(inventorySvc, blobStore, nil, nil)

	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	authSvc := auth.NewService("test-secret", "admin", string(hash))

	handler.SetInventoryService(inventorySvc)
	handler.SetReportService(reportSvc)
	handler.SetAuthService(authSvc)
	handler.SetMailSender(mail.NewSender(mail.SMTPConfig{}))
	handler.SetMailRecipient("inventario@mpdl.org")
	api.SetAuthService(authSvc)
}

// clearStore resets the snapshot store and the per-IP rate limiter between
// tests; httptest requests all share one remote address.
func clearStore() {
	snapshotRepo.Clear()
	rl.CleanupAllVisitors()
}

func generateToken(r http.Handler, username, password string) (string, error) {
	payload := handler.UserLogin{Username: username, Password: password}
	body, _ := json.Marshal(payload)

	req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewReader(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp handler.LoginResult
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		return "", fmt.Errorf("token decoding failed: %v", err)
	}
	return resp.Token, nil
}

func saveInventory(r http.Handler, p handler.SaveInventoryRequest) *httptest.ResponseRecorder {
	body, _ := json.Marshal(p)
	req := httptest.NewRequest(http.MethodPost, "/inventories", bytes.NewReader(body))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func authorizedRequest(r http.Handler, method, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	req.Header.Set("Authorization", "Bearer "+token)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// seedSnapshot writes directly to the store so read-endpoint tests do not
// depend on the save endpoint.
func seedSnapshot(device string, at time.Time, quantities map[string]string) {
	s := models.Snapshot{Device: device, CreatedAt: at}
	for id, q := range quantities {
		s.Products = append(s.Products, models.ProductQuantity{ProductID: id, Quantity: q})
	}
	if _, err := snapshotRepo.Create(s); err != nil {
		panic(err)
	}
}
