package handlers

import (
	"go.uber.org/zap"

	"github.com/mpdl-apps/cleaning-inventory/internal/auth"
	"github.com/mpdl-apps/cleaning-inventory/internal/inventory"
	"github.com/mpdl-apps/cleaning-inventory/internal/mail"
	"github.com/mpdl-apps/cleaning-inventory/internal/report"
)

var (
	inventoryService *inventory.Service
	reportService    *report.Service
	authService      *auth.Service
	mailSender       *mail.Sender
	mailRecipient    string
	logger           = zap.NewNop()
)

func SetInventoryService(s *inventory.Service) {
	inventoryService = s
}

func SetReportService(s *report.Service) {
	reportService = s
}

func SetAuthService(s *auth.Service) {
	authService = s
}

func SetMailSender(s *mail.Sender) {
	mailSender = s
}

func SetMailRecipient(recipient string) {
	mailRecipient = recipient
}

func SetLogger(l *zap.Logger) {
	if l != nil {
		logger = l
	}
}
