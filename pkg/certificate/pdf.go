package certificate

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"
)

// Renderer produces the participation certificate delivered to students.
type Renderer interface {
	Render(studentName, eventName, festName, eventDate string) ([]byte, error)
}

type PDFRenderer struct {
	platformName string
}

func NewPDFRenderer(platformName string) *PDFRenderer {
	return &PDFRenderer{platformName: platformName}
}

func (r *PDFRenderer) Render(studentName, eventName, festName, eventDate string) ([]byte, error) {
	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 28)
	pdf.CellFormat(0, 30, "Certificate of Participation", "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 14)
	pdf.CellFormat(0, 12, "This is to certify that", "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "B", 22)
	pdf.CellFormat(0, 16, studentName, "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 14)
	line := fmt.Sprintf("participated in '%s'", eventName)
	if festName != "" {
		line = fmt.Sprintf("participated in '%s' as part of %s", eventName, festName)
	}
	pdf.CellFormat(0, 12, line, "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 12, fmt.Sprintf("held on %s", eventDate), "", 1, "C", false, 0, "")

	pdf.Ln(20)
	pdf.SetFont("Helvetica", "I", 12)
	pdf.CellFormat(0, 10, "- "+r.platformName, "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render certificate PDF: %w", err)
	}
	return buf.Bytes(), nil
}
