package handlers_test_suite

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	api "github.com/mpdl-apps/cleaning-inventory/internal/http"
	handler "github.com/mpdl-apps/cleaning-inventory/internal/http/handlers"
)

func TestGetReportHandler(t *testing.T) {
	t.Cleanup(clearStore)
	r := api.NewRouter()

	seedSnapshot("CE", time.Now(), map[string]string{"cp001": "3"})

	req := httptest.NewRequest(http.MethodGet, "/report", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var resp handler.ReportResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}

	content, err := base64.StdEncoding.DecodeString(resp.PdfBase64)
	if err != nil {
		t.Fatalf("pdfBase64 is not valid base64: %v", err)
	}
	text := string(content)
	if !strings.HasPrefix(text, "INVENTARIO DE PRODUCTOS DE LIMPIEZA - MPDL") {
		t.Errorf("unexpected report header: %q", firstLine(text))
	}
	if !strings.Contains(text, "- Lavavajillas: 3") {
		t.Error("missing the seeded product line")
	}
}

func TestDownloadReportHandler(t *testing.T) {
	t.Cleanup(clearStore)
	r := api.NewRouter()

	seedSnapshot("CE", time.Now(), map[string]string{"cp001": "1"})

	req := httptest.NewRequest(http.MethodGet, "/report/download", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	disposition := w.Header().Get("Content-Disposition")
	if !strings.HasPrefix(disposition, `attachment; filename="inventario_limpieza_`) {
		t.Errorf("unexpected disposition %q", disposition)
	}
	if !strings.Contains(w.Body.String(), "DISPOSITIVO: CE") {
		t.Error("download body must be the plain report text")
	}
}

func TestPrintReportHandler(t *testing.T) {
	t.Cleanup(clearStore)
	r := api.NewRouter()

	seedSnapshot("CE", time.Now(), map[string]string{"cp001": "1"})

	req := httptest.NewRequest(http.MethodGet, "/report/print", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("expected an HTML response, got %q", ct)
	}
	body := w.Body.String()
	if !strings.Contains(body, "<pre>") || !strings.Contains(body, "window.print()") {
		t.Error("print page must embed the report and trigger printing")
	}
}

func TestMailtoReportHandler(t *testing.T) {
	t.Cleanup(clearStore)
	r := api.NewRouter()

	seedSnapshot("CE", time.Now(), map[string]string{"cp001": "1"})

	req := httptest.NewRequest(http.MethodGet, "/report/mailto", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp handler.MailtoResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(resp.Mailto, "mailto:inventario@mpdl.org?") {
		t.Errorf("unexpected mailto link %q", resp.Mailto)
	}
	if strings.Contains(resp.Mailto, "+") {
		t.Error("the mailto link must not use '+' for spaces")
	}
}

func TestArchiveReportHandler(t *testing.T) {
	t.Cleanup(clearStore)
	r := api.NewRouter()

	seedSnapshot("CE", time.Now(), map[string]string{"cp001": "1"})

	w := authorizedRequest(r, http.MethodPost, "/report/archive")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp handler.ArchiveResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(resp.Filename, "archived-inventories/Productos_") {
		t.Errorf("unexpected archive filename %q", resp.Filename)
	}
	if !strings.HasPrefix(resp.DisplayName, "Productos ") {
		t.Errorf("unexpected display name %q", resp.DisplayName)
	}

	data, err := blobStore.Get(resp.Filename)
	if err != nil {
		t.Fatalf("archived blob not stored: %v", err)
	}
	if !strings.Contains(string(data), "INVENTARIO DE PRODUCTOS DE LIMPIEZA") {
		t.Error("archived blob must contain the rendered report")
	}
}

func TestArchiveReportHandler_RequiresToken(t *testing.T) {
	t.Cleanup(clearStore)
	r := api.NewRouter()

	req := httptest.NewRequest(http.MethodPost, "/report/archive", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 without a token, got %d", w.Code)
	}
}

func TestListArchivesHandler_NoIndex(t *testing.T) {
	t.Cleanup(clearStore)
	r := api.NewRouter()

	req := httptest.NewRequest(http.MethodGet, "/report/archives", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp handler.ArchivesResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatal(err)
	}
	if !resp.Success || len(resp.Files) != 0 {
		t.Errorf("expected an empty archive list, got %+v", resp)
	}
}

func TestEmailReportHandler_Unconfigured(t *testing.T) {
	t.Cleanup(clearStore)
	r := api.NewRouter()

	w := authorizedRequest(r, http.MethodPost, "/report/email")
	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 without SMTP configuration, got %d", w.Code)
	}
	var resp handler.Result
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatal(err)
	}
	if resp.Success || resp.Error == "" {
		t.Errorf("expected a failure envelope, got %+v", resp)
	}
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
