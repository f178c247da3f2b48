package export

import (
	"fmt"
	"io"

	"github.com/go-pdf/fpdf"

	"github.com/umputun/confdesk/pkg/domain"
	"github.com/umputun/confdesk/pkg/preferences"
)

// CertificateContentType of certificate documents
const CertificateContentType = "application/pdf"

// CertificateFileName is certificate_<conference>_<number>.pdf
func CertificateFileName(c domain.Certificate) string {
	return fmt.Sprintf("certificate_%s_%s.pdf", FilenameSegment(c.SnapshotConferenceTitle, ""), c.CertificateNumber)
}

// WriteCertificate renders an A4 participation certificate from the certificate snapshot.
// Core PDF fonts cover cp1252 only, characters outside of it are dropped by the translator.
func WriteCertificate(w io.Writer, c domain.Certificate, f preferences.Formatter) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Certificate "+c.CertificateNumber, true)
	pdf.SetAuthor(c.SnapshotConferenceTitle, true)
	pdf.SetCreationDate(c.IssuedAt)
	pdf.SetModificationDate(c.IssuedAt)
	pdf.SetCatalogSort(true)
	pdf.SetMargins(17, 21, 17)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	line := func(size float64, style string, gap float64, text string) {
		pdf.SetFont("Helvetica", style, size)
		pdf.Ln(gap)
		pdf.MultiCell(0, size*0.5, tr(text), "", "C", false)
	}

	pdf.SetTextColor(15, 23, 42)
	line(24, "B", 10, "Certificate of Participation")
	pdf.SetTextColor(51, 65, 85)
	line(14, "", 4, "This certificate is presented to")
	pdf.SetTextColor(15, 23, 42)
	line(20, "B", 12, c.SnapshotAuthorName)
	if c.SnapshotInstitution != "" {
		line(12, "I", 2, c.SnapshotInstitution)
	}
	line(12, "", 8, fmt.Sprintf("for participation in the conference %q", c.SnapshotConferenceTitle))
	line(12, "", 4, fmt.Sprintf("with the article %q", c.SnapshotArticleTitle))
	line(12, "", 4, "Status: "+c.SnapshotArticleStatus.Label())
	line(12, "", 4, fmt.Sprintf("Period: %s - %s", c.SnapshotConferenceStartDate, c.SnapshotConferenceEndDate))
	line(12, "", 16, "Certificate No. "+c.CertificateNumber)
	line(12, "", 4, "Issued on "+f.Date(c.IssuedAt))

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("render certificate %s: %w", c.CertificateNumber, err)
	}
	return nil
}
