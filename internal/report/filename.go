package report

import (
	"fmt"
	"regexp"
	"time"
)

// ArchiveFilename builds the blob key used when archiving a report. The
// content is plain text; the .pdf extension is the historical contract of
// the archive consumers.
func ArchiveFilename(t time.Time) string {
	return fmt.Sprintf("archived-inventories/Productos_%02d-%02d-%04d.pdf", t.Day(), int(t.Month()), t.Year())
}

// DownloadFilename names the text export offered for download.
func DownloadFilename(t time.Time) string {
	return fmt.Sprintf("inventario_limpieza_%s.txt", t.Format("2006-01-02"))
}

var archiveDatePattern = regexp.MustCompile(`Productos_(\d{2})-(\d{2})-(\d{4})`)

// DisplayFilename converts an archive filename into its localized display
// form, "Productos DD/MM/AAAA". Filenames without the embedded date are
// returned unchanged.
func DisplayFilename(filename string) string {
	m := archiveDatePattern.FindStringSubmatch(filename)
	if m == nil {
		return filename
	}
	return fmt.Sprintf("Productos %s/%s/%s", m[1], m[2], m[3])
}
