package extract

import (
	"archive/zip"
	"bytes"
	"context"
	"strings"
	"testing"
)

func buildDocx(t *testing.T, body string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/document.xml")
	if err != nil {
		t.Fatalf("create zip entry: %v", err)
	}
	if _, err := w.Write([]byte(body)); err != nil {
		t.Fatalf("write zip entry: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}
	return buf.Bytes()
}

func TestTextFromBytes_DocxParagraphs(t *testing.T) {
	doc := `<w:document xmlns:w="ns"><w:body>` +
		`<w:p><w:r><w:t>EDUCATION</w:t></w:r></w:p>` +
		`<w:p><w:r><w:t>University of Technology, 2018 - 2022</w:t></w:r></w:p>` +
		`</w:body></w:document>`
	data := buildDocx(t, doc)

	text, err := TextFromBytes(context.Background(), data, mimeDOCX, "resume.docx")
	if err != nil {
		t.Fatalf("extract docx: %v", err)
	}
	lines := strings.Split(text, "\n")
	if len(lines) < 2 {
		t.Fatalf("expected paragraph breaks, got %q", text)
	}
	if lines[0] != "EDUCATION" {
		t.Fatalf("first line = %q, want EDUCATION", lines[0])
	}
	if !strings.Contains(lines[1], "2018 - 2022") {
		t.Fatalf("second line = %q, want the date range", lines[1])
	}
}

func TestTextFromBytes_ZipDocxNormalizes(t *testing.T) {
	data := buildDocx(t, `<w:document><w:body><w:p><w:r><w:t>hi</w:t></w:r></w:p></w:body></w:document>`)
	if _, err := TextFromBytes(context.Background(), data, "application/zip", "resume.docx"); err != nil {
		t.Fatalf("expected docx to extract from zip mime, got error: %v", err)
	}
}

func TestTextFromBytes_RealZipRejected(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("notes.txt")
	if err != nil {
		t.Fatalf("create zip entry: %v", err)
	}
	if _, err := w.Write([]byte("hello")); err != nil {
		t.Fatalf("write zip entry: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}

	_, err = TextFromBytes(context.Background(), buf.Bytes(), "application/zip", "notes.zip")
	if err == nil {
		t.Fatal("expected unsupported mime error for zip")
	}
	if !strings.Contains(err.Error(), "unsupported mime type: application/zip") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestTextFromBytes_PlainTextPassthrough(t *testing.T) {
	text, err := TextFromBytes(context.Background(), []byte("EXPERIENCE\nAcme Corp, 2019 - 2021"), "text/plain; charset=utf-8", "resume.txt")
	if err != nil {
		t.Fatalf("extract txt: %v", err)
	}
	if !strings.Contains(text, "Acme Corp") {
		t.Fatalf("unexpected text: %q", text)
	}
}

func TestTextFromBytes_OctetStreamTxtByExtension(t *testing.T) {
	if _, err := TextFromBytes(context.Background(), []byte("plain"), "application/octet-stream", "resume.txt"); err != nil {
		t.Fatalf("expected .txt fallback, got %v", err)
	}
}
