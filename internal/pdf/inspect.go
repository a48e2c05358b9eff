package pdf

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	ledongpdf "github.com/ledongthuc/pdf"
)

// ErrNotPDF means the bytes do not parse as a PDF document.
var ErrNotPDF = errors.New("not a pdf document")

// Info summarizes a parsed PDF.
type Info struct {
	Pages int
}

// Inspect parses data as a PDF and counts its pages.
func Inspect(data []byte) (Info, error) {
	reader, err := open(data)
	if err != nil {
		return Info{}, err
	}
	return Info{Pages: reader.NumPage()}, nil
}

// ReadText parses data as a PDF and returns its plain text. Fonts without a
// text mapping yield "".
func ReadText(data []byte) (string, error) {
	reader, err := open(data)
	if err != nil {
		return "", err
	}
	return plainText(reader), nil
}

func open(data []byte) (reader *ledongpdf.Reader, err error) {
	if len(data) == 0 {
		return nil, ErrNotPDF
	}
	// The reader panics on some malformed inputs.
	defer func() {
		if r := recover(); r != nil {
			reader, err = nil, fmt.Errorf("%w: %v", ErrNotPDF, r)
		}
	}()

	reader, err = ledongpdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotPDF, err)
	}
	if reader.NumPage() == 0 {
		return nil, fmt.Errorf("%w: no pages", ErrNotPDF)
	}
	return reader, nil
}

func plainText(reader *ledongpdf.Reader) (text string) {
	defer func() {
		if recover() != nil {
			text = ""
		}
	}()
	plain, err := reader.GetPlainText()
	if err != nil {
		return ""
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, plain); err != nil {
		return ""
	}
	return buf.String()
}
