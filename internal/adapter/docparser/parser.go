// Package docparser converts input documents into plain text for extraction.
package docparser

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/beevik/etree"
	"golang.org/x/net/html"
	"golang.org/x/text/encoding/charmap"

	"github.com/termscout/termscout/internal/domain"
)

// Parse reads a document and returns its plain text. The format is chosen by
// file extension; unknown extensions are treated as plain text.
func Parse(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		return parseHTML(path)
	case ".xml":
		return parseXML(path)
	case ".docx":
		return parseDOCX(path)
	case ".pdf":
		return "", fmt.Errorf("%w: PDF input is not supported, convert to text first", domain.ErrUnsupportedFormat)
	default:
		return parseText(path)
	}
}

// parseText reads a plain-text file. Content that is not valid UTF-8 is
// re-decoded as Latin-1, which never fails and preserves every byte.
func parseText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", domain.ErrInputUnreadable, path, err)
	}

	data = stripBOM(data)
	if !utf8.Valid(data) {
		decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(data)
		if err == nil {
			data = decoded
		}
	}
	return string(data), nil
}

func parseHTML(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", domain.ErrInputUnreadable, path, err)
	}
	defer f.Close()

	root, err := html.Parse(f)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", domain.ErrInputUnreadable, path, err)
	}

	var lines []string
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && (n.Data == "script" || n.Data == "style") {
			return
		}
		if n.Type == html.TextNode {
			if text := strings.TrimSpace(n.Data); text != "" {
				lines = append(lines, text)
			}
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(root)

	return strings.Join(lines, "\n"), nil
}

func parseXML(path string) (string, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromFile(path); err != nil {
		return "", fmt.Errorf("%w: %s: %v", domain.ErrInputUnreadable, path, err)
	}

	var lines []string
	var walk func(e *etree.Element)
	walk = func(e *etree.Element) {
		for _, token := range e.Child {
			switch node := token.(type) {
			case *etree.CharData:
				if text := strings.TrimSpace(node.Data); text != "" {
					lines = append(lines, text)
				}
			case *etree.Element:
				walk(node)
			}
		}
	}
	if root := doc.Root(); root != nil {
		walk(root)
	}

	return strings.Join(lines, "\n"), nil
}

// parseDOCX extracts paragraph text from word/document.xml inside the
// OOXML archive. Paragraphs become blank-line separated so downstream
// chunking can cut on them.
func parseDOCX(path string) (string, error) {
	archive, err := zip.OpenReader(path)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", domain.ErrInputUnreadable, path, err)
	}
	defer archive.Close()

	var docXML []byte
	for _, file := range archive.File {
		if file.Name != "word/document.xml" {
			continue
		}
		rc, err := file.Open()
		if err != nil {
			return "", fmt.Errorf("%w: %s: %v", domain.ErrInputUnreadable, path, err)
		}
		docXML, err = io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return "", fmt.Errorf("%w: %s: %v", domain.ErrInputUnreadable, path, err)
		}
		break
	}
	if docXML == nil {
		return "", fmt.Errorf("%w: %s: no word/document.xml in archive", domain.ErrInputUnreadable, path)
	}

	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(docXML); err != nil {
		return "", fmt.Errorf("%w: %s: %v", domain.ErrInputUnreadable, path, err)
	}

	var paragraphs []string
	var walk func(e *etree.Element)
	walk = func(e *etree.Element) {
		if e.Tag == "p" {
			var b strings.Builder
			collectRuns(e, &b)
			if text := strings.TrimSpace(b.String()); text != "" {
				paragraphs = append(paragraphs, text)
			}
			return
		}
		for _, child := range e.ChildElements() {
			walk(child)
		}
	}
	if root := doc.Root(); root != nil {
		walk(root)
	}

	return strings.Join(paragraphs, "\n\n"), nil
}

// collectRuns gathers the text of all w:t descendants of a paragraph.
func collectRuns(e *etree.Element, b *strings.Builder) {
	for _, child := range e.ChildElements() {
		if child.Tag == "t" {
			b.WriteString(child.Text())
			continue
		}
		collectRuns(child, b)
	}
}

func stripBOM(data []byte) []byte {
	return bytes.TrimPrefix(data, []byte{0xEF, 0xBB, 0xBF})
}
