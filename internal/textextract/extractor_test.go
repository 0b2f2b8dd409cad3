package textextract

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"trimatch/internal/domain"
	"trimatch/mocks"
)

func TestExtract_PlainText(t *testing.T) {
	e := New(nil, Options{})

	result, err := e.Extract(context.Background(), []byte("BERITA ACARA\nTanggal BA: 29 Mei 2023"), "text/plain")
	require.NoError(t, err)

	assert.Equal(t, "BERITA ACARA\nTanggal BA: 29 Mei 2023", result.FullText)
	assert.Equal(t, result.FullText, result.Page1Text)
	assert.Equal(t, 1, result.PageCount)
	assert.False(t, result.OCRUsed)
}

func TestExtract_PlainTextInvalidUTF8(t *testing.T) {
	e := New(nil, Options{})

	result, err := e.Extract(context.Background(), []byte{'o', 'k', 0xff, 0xfe}, "text/plain")
	require.NoError(t, err)
	assert.Equal(t, "ok", result.FullText)
}

func TestExtract_ImageUsesRecognizer(t *testing.T) {
	rec := new(mocks.MockRecognizer)
	rec.On("Recognize", mock.Anything, mock.Anything).Return("INVOICE Tanggal 5 Juni 2023", nil)

	e := New(rec, Options{Language: "ind+eng"})
	result, err := e.Extract(context.Background(), []byte{0x89, 0x50}, "image/png")
	require.NoError(t, err)

	assert.Equal(t, "INVOICE Tanggal 5 Juni 2023", result.FullText)
	assert.True(t, result.OCRUsed)
	assert.Equal(t, 1, result.PageCount)
	rec.AssertExpectations(t)
}

func TestExtract_ImageWithoutRecognizer(t *testing.T) {
	e := New(nil, Options{})

	result, err := e.Extract(context.Background(), []byte{0xff, 0xd8}, "image/jpeg")
	require.NoError(t, err)

	assert.Empty(t, result.FullText)
	assert.False(t, result.OCRUsed)
}

func TestExtract_RecognizerFailureDegrades(t *testing.T) {
	rec := new(mocks.MockRecognizer)
	rec.On("Recognize", mock.Anything, mock.Anything).Return("", errors.New("engine offline"))

	e := New(rec, Options{})
	result, err := e.Extract(context.Background(), []byte{0xff, 0xd8}, "image/jpeg")
	require.NoError(t, err)

	assert.Empty(t, result.FullText)
	assert.False(t, result.OCRUsed)
}

func TestExtract_UnsupportedContentType(t *testing.T) {
	e := New(nil, Options{})

	_, err := e.Extract(context.Background(), []byte("MZ..."), "application/x-msdownload")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrUnsupportedFileType))
}

// docxBytes builds a minimal DOCX container holding the given paragraphs.
func docxBytes(t *testing.T, paragraphs ...string) []byte {
	t.Helper()

	var body bytes.Buffer
	body.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` +
		`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>`)
	for _, p := range paragraphs {
		body.WriteString(`<w:p><w:r><w:t>` + p + `</w:t></w:r></w:p>`)
	}
	body.WriteString(`</w:body></w:document>`)

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	f, err := zw.Create("word/document.xml")
	require.NoError(t, err)
	_, err = f.Write(body.Bytes())
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func TestExtract_DOCX(t *testing.T) {
	e := New(nil, Options{})

	data := docxBytes(t, "SURAT PERJANJIAN", "Nomor Kontrak: 027/PPK-APBD/V/2023")
	result, err := e.Extract(context.Background(), data, domain.ContentTypeDOCX)
	require.NoError(t, err)

	assert.Contains(t, result.FullText, "SURAT PERJANJIAN")
	assert.Contains(t, result.FullText, "Nomor Kontrak: 027/PPK-APBD/V/2023")
	assert.Equal(t, result.FullText, result.Page1Text)
	assert.False(t, result.OCRUsed)
}

func TestExtract_CorruptDOCXDegrades(t *testing.T) {
	e := New(nil, Options{})

	result, err := e.Extract(context.Background(), []byte("not a zip"), domain.ContentTypeDOCX)
	require.NoError(t, err)
	assert.Empty(t, result.FullText)
	assert.False(t, result.OCRUsed)
}

func TestExtract_CorruptPDFFallsBackToRecognition(t *testing.T) {
	rec := new(mocks.MockRecognizer)
	rec.On("Recognize", mock.Anything, mock.Anything).Return("halaman satu\fhalaman dua", nil)

	e := New(rec, Options{})
	result, err := e.Extract(context.Background(), []byte("not a real pdf"), "application/pdf")
	require.NoError(t, err)

	assert.Equal(t, "halaman satu\fhalaman dua", result.FullText)
	assert.Equal(t, "halaman satu", result.Page1Text)
	assert.True(t, result.OCRUsed)
}

func TestExtract_CorruptPDFWithoutRecognizer(t *testing.T) {
	e := New(nil, Options{})

	result, err := e.Extract(context.Background(), []byte("not a real pdf"), "application/pdf")
	require.NoError(t, err)

	assert.Empty(t, result.FullText)
	assert.False(t, result.OCRUsed)
}

func TestFirstPageGuess(t *testing.T) {
	assert.Equal(t, "a", firstPageGuess("a\fb"))
	assert.Equal(t, "whole text", firstPageGuess("whole text"))
}
