package handlers

import (
	"encoding/base64"
	"fmt"
	"html"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/mpdl-apps/cleaning-inventory/internal/mail"
	"github.com/mpdl-apps/cleaning-inventory/internal/report"
)

const mailSubject = "Resumen de Inventario - Productos de Limpieza"

// GetReportHandler godoc
// @Summary Generate the inventory report
// @Description Returns the report text base64 encoded. The content is plain
// @Description text; the historical consumers treat it as the "PDF".
// @Tags report
// @Produce json
// @Success 200 {object} ReportResponse
// @Failure 503 {object} Result
// @Router /report [get]
func GetReportHandler(w http.ResponseWriter, r *http.Request) {
	content, ok := generateReport(w)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, ReportResponse{
		Success:   true,
		PdfBase64: base64.StdEncoding.EncodeToString([]byte(content)),
	})
}

// DownloadReportHandler godoc
// @Summary Download the report as a text file
// @Tags report
// @Produce plain
// @Success 200 {string} string
// @Failure 503 {object} Result
// @Router /report/download [get]
func DownloadReportHandler(w http.ResponseWriter, r *http.Request) {
	content, ok := generateReport(w)
	if !ok {
		return
	}
	filename := report.DownloadFilename(time.Now())
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Write([]byte(content))
}

// PrintReportHandler godoc
// @Summary Print-formatted report
// @Description Wraps the report in a minimal HTML page suitable for printing.
// @Tags report
// @Produce html
// @Success 200 {string} string
// @Failure 503 {object} Result
// @Router /report/print [get]
func PrintReportHandler(w http.ResponseWriter, r *http.Request) {
	content, ok := generateReport(w)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprintf(w, `<!DOCTYPE html>
<html>
<head><title>Inventario de Productos de Limpieza</title></head>
<body onload="window.print()"><pre>%s</pre></body>
</html>
`, html.EscapeString(content))
}

// MailtoReportHandler godoc
// @Summary Prefilled mailto link for the report
// @Description Subject and body only; there is no attachment.
// @Tags report
// @Produce json
// @Success 200 {object} MailtoResponse
// @Failure 503 {object} Result
// @Router /report/mailto [get]
func MailtoReportHandler(w http.ResponseWriter, r *http.Request) {
	content, ok := generateReport(w)
	if !ok {
		return
	}
	link := mail.MailtoLink(mailRecipient, mailSubject, content)
	writeJSON(w, http.StatusOK, MailtoResponse{Success: true, Mailto: link})
}

// EmailReportHandler godoc
// @Summary Send the report by email
// @Description Delivers the report text over SMTP when delivery is configured.
// @Tags report
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Result
// @Failure 503 {object} Result
// @Router /report/email [post]
func EmailReportHandler(w http.ResponseWriter, r *http.Request) {
	if !mailSender.Enabled() {
		writeFailure(w, http.StatusServiceUnavailable, "email delivery is not configured")
		return
	}
	content, ok := generateReport(w)
	if !ok {
		return
	}
	if err := mailSender.Send(mailSubject, content); err != nil {
		logger.Error("failed to email report", zap.Error(err))
		writeFailure(w, http.StatusServiceUnavailable, "could not send the report email")
		return
	}
	writeJSON(w, http.StatusOK, Result{Success: true})
}

// ArchiveReportHandler godoc
// @Summary Archive the report to the blob store
// @Tags report
// @Produce json
// @Security BearerAuth
// @Success 200 {object} ArchiveResponse
// @Failure 503 {object} Result
// @Router /report/archive [post]
func ArchiveReportHandler(w http.ResponseWriter, r *http.Request) {
	filename, url, err := reportService.Archive(r.Context())
	if err != nil {
		logger.Error("failed to archive report", zap.Error(err))
		writeFailure(w, http.StatusServiceUnavailable, "could not archive the report")
		return
	}
	writeJSON(w, http.StatusOK, ArchiveResponse{
		Success:     true,
		Filename:    filename,
		DisplayName: report.DisplayFilename(filename),
		URL:         url,
	})
}

// ListArchivesHandler godoc
// @Summary List archived reports
// @Tags report
// @Produce json
// @Success 200 {object} ArchivesResponse
// @Failure 503 {object} Result
// @Router /report/archives [get]
func ListArchivesHandler(w http.ResponseWriter, r *http.Request) {
	names, err := reportService.ArchivedFiles()
	if err != nil {
		logger.Error("failed to list archives", zap.Error(err))
		writeFailure(w, http.StatusServiceUnavailable, "could not list the archived reports")
		return
	}

	files := make([]ArchivedFile, len(names))
	for i, name := range names {
		files[i] = ArchivedFile{Filename: name, DisplayName: report.DisplayFilename(name)}
	}
	writeJSON(w, http.StatusOK, ArchivesResponse{Success: true, Files: files})
}

// generateReport renders the current report, writing the failure envelope
// itself when the store is unreachable.
func generateReport(w http.ResponseWriter) (string, bool) {
	content, err := reportService.Generate()
	if err != nil {
		logger.Error("failed to generate report", zap.Error(err))
		writeFailure(w, http.StatusServiceUnavailable, "could not generate the report")
		return "", false
	}
	return content, true
}
