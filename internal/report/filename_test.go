package report

import (
	"testing"
	"time"
)

func TestArchiveFilename(t *testing.T) {
	at := time.Date(2025, 3, 5, 12, 0, 0, 0, time.UTC)
	want := "archived-inventories/Productos_05-03-2025.pdf"
	if got := ArchiveFilename(at); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestDownloadFilename(t *testing.T) {
	at := time.Date(2025, 3, 5, 12, 0, 0, 0, time.UTC)
	want := "inventario_limpieza_2025-03-05.txt"
	if got := DownloadFilename(at); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestDisplayFilename(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"archive filename", "archived-inventories/Productos_05-03-2025.pdf", "Productos 05/03/2025"},
		{"bare filename", "Productos_31-12-2024.pdf", "Productos 31/12/2024"},
		{"unparseable returned unchanged", "foo.pdf", "foo.pdf"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DisplayFilename(tt.in); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}
