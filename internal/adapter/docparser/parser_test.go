package docparser

import (
	"archive/zip"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/termscout/termscout/internal/domain"
)

func writeTemp(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestParse_PlainText(t *testing.T) {
	path := writeTemp(t, "doc.txt", []byte("First paragraph.\n\nSecond paragraph."))

	got, err := Parse(path)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if got != "First paragraph.\n\nSecond paragraph." {
		t.Errorf("Parse() = %q", got)
	}
}

func TestParse_StripsBOM(t *testing.T) {
	path := writeTemp(t, "doc.txt", append([]byte{0xEF, 0xBB, 0xBF}, []byte("content")...))

	got, err := Parse(path)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if got != "content" {
		t.Errorf("Parse() = %q, BOM not stripped", got)
	}
}

func TestParse_Latin1Fallback(t *testing.T) {
	// "café" with Latin-1 encoded é (0xE9), not valid UTF-8.
	path := writeTemp(t, "doc.txt", []byte{'c', 'a', 'f', 0xE9})

	got, err := Parse(path)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if got != "café" {
		t.Errorf("Parse() = %q, want café", got)
	}
}

func TestParse_HTMLSkipsScriptAndStyle(t *testing.T) {
	content := `<html><head><style>body { color: red; }</style></head>
<body><h1>Title</h1><script>var x = 1;</script><p>Paragraph text.</p></body></html>`
	path := writeTemp(t, "doc.html", []byte(content))

	got, err := Parse(path)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if !strings.Contains(got, "Title") || !strings.Contains(got, "Paragraph text.") {
		t.Errorf("Parse() = %q, missing visible text", got)
	}
	if strings.Contains(got, "var x") || strings.Contains(got, "color: red") {
		t.Errorf("Parse() = %q, script or style leaked", got)
	}
}

func TestParse_XMLFlattensText(t *testing.T) {
	content := `<?xml version="1.0"?><report><title>Annual report</title><section>Revenue grew.</section></report>`
	path := writeTemp(t, "doc.xml", []byte(content))

	got, err := Parse(path)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if got != "Annual report\nRevenue grew." {
		t.Errorf("Parse() = %q", got)
	}
}

func TestParse_DOCXParagraphs(t *testing.T) {
	documentXML := `<?xml version="1.0"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p><w:r><w:t>First </w:t></w:r><w:r><w:t>paragraph.</w:t></w:r></w:p>
    <w:p><w:r><w:t>Second paragraph.</w:t></w:r></w:p>
    <w:p></w:p>
  </w:body>
</w:document>`

	path := filepath.Join(t.TempDir(), "doc.docx")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	zw := zip.NewWriter(f)
	entry, err := zw.Create("word/document.xml")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := entry.Write([]byte(documentXML)); err != nil {
		t.Fatal(err)
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}

	got, err := Parse(path)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if got != "First paragraph.\n\nSecond paragraph." {
		t.Errorf("Parse() = %q", got)
	}
}

func TestParse_PDFDeclined(t *testing.T) {
	path := writeTemp(t, "doc.pdf", []byte("%PDF-1.4"))

	_, err := Parse(path)
	if !errors.Is(err, domain.ErrUnsupportedFormat) {
		t.Errorf("Parse() error = %v, want ErrUnsupportedFormat", err)
	}
}

func TestParse_MissingFile(t *testing.T) {
	_, err := Parse(filepath.Join(t.TempDir(), "nope.txt"))
	if !errors.Is(err, domain.ErrInputUnreadable) {
		t.Errorf("Parse() error = %v, want ErrInputUnreadable", err)
	}
}
