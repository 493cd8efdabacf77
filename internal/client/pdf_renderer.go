package client

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"

	"jornada-registro-api/internal/domain"
)

// CertificateData holds everything the renderer needs for one certificate
type CertificateData struct {
	Participant *domain.Participant
	EventTitle  string
	Issuer      string
	IssuedAt    time.Time
}

// PDFRenderer defines the interface for rendering certificate PDFs
type PDFRenderer interface {
	RenderCertificate(data CertificateData) ([]byte, error)
}

// pdfRendererImpl renders landscape A4 certificates with gofpdf
type pdfRendererImpl struct{}

// NewPDFRenderer creates a new certificate renderer
func NewPDFRenderer() PDFRenderer {
	return &pdfRendererImpl{}
}

// RenderCertificate renders the attendance certificate for a participant.
// The participant name is printed in uppercase, centered on the page.
func (r *pdfRendererImpl) RenderCertificate(data CertificateData) ([]byte, error) {
	if data.Participant == nil {
		return nil, fmt.Errorf("participant is required")
	}

	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetTitle("Constancia de participación", true)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	pageWidth, pageHeight := pdf.GetPageSize()

	// Border
	pdf.SetLineWidth(0.8)
	pdf.SetDrawColor(31, 58, 95)
	pdf.Rect(10, 10, pageWidth-20, pageHeight-20, "D")

	translator := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Helvetica", "B", 26)
	pdf.SetTextColor(31, 58, 95)
	pdf.SetY(45)
	pdf.CellFormat(pageWidth, 12, translator(data.EventTitle), "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 14)
	pdf.SetTextColor(60, 60, 60)
	pdf.SetY(75)
	pdf.CellFormat(pageWidth, 8, translator("Otorga la presente constancia de participación a"), "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "B", 22)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetY(95)
	pdf.CellFormat(pageWidth, 12, translator(strings.ToUpper(data.Participant.FullName())), "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 12)
	pdf.SetTextColor(60, 60, 60)
	pdf.SetY(115)
	pdf.CellFormat(pageWidth, 7,
		translator(fmt.Sprintf("Categoría: %s", data.Participant.Categoria)),
		"", 1, "C", false, 0, "")
	if data.Participant.Programa != nil && *data.Participant.Programa != "" {
		pdf.CellFormat(pageWidth, 7,
			translator(fmt.Sprintf("Programa educativo: %s", *data.Participant.Programa)),
			"", 1, "C", false, 0, "")
	}

	pdf.SetY(150)
	pdf.CellFormat(pageWidth, 7,
		translator(fmt.Sprintf("Expedida el %s", data.IssuedAt.Format("02/01/2006"))),
		"", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "I", 11)
	pdf.SetY(165)
	pdf.CellFormat(pageWidth, 7, translator(data.Issuer), "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render certificate PDF: %w", err)
	}
	return buf.Bytes(), nil
}

// MockPDFRenderer implements PDFRenderer for testing
type MockPDFRenderer struct {
	RenderCertificateFunc func(data CertificateData) ([]byte, error)
}

func (m *MockPDFRenderer) RenderCertificate(data CertificateData) ([]byte, error) {
	if m.RenderCertificateFunc != nil {
		return m.RenderCertificateFunc(data)
	}
	return []byte("%PDF-1.4 mock"), nil
}

// Ensure MockPDFRenderer implements PDFRenderer
var _ PDFRenderer = (*MockPDFRenderer)(nil)
