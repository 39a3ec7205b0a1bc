// Package bilingual reads XLIFF-family translation files and matches
// extracted terms against the translation pairs they contain.
package bilingual

import (
	"fmt"
	"os"
	"strings"

	"github.com/beevik/etree"

	"github.com/termscout/termscout/internal/domain"
)

// Pair is one aligned source/target segment from a reference file.
type Pair struct {
	Source string
	Target string
}

// Reference holds everything recovered from one bilingual file.
type Reference struct {
	Format     domain.BilingualFormat
	SourceLang string
	TargetLang string
	Pairs      []Pair
}

// ParseFile reads and parses a bilingual reference file from disk.
func ParseFile(path string) (*Reference, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrReferenceParse, path, err)
	}
	return Parse(data)
}

// Parse decodes XLIFF, SDLXLIFF or MQXLIFF content into translation pairs.
// Segments with an empty source or target are dropped. When the same source
// text appears more than once, the later target replaces the earlier one at
// its original position.
func Parse(data []byte) (*Reference, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrReferenceParse, err)
	}
	if doc.Root() == nil {
		return nil, fmt.Errorf("%w: no XML root element", domain.ErrReferenceParse)
	}

	// Unknown dialects still go through the generic reader; the format tag is
	// informational for stats and exports.
	ref := &Reference{Format: DetectFormat(data)}
	ref.SourceLang, ref.TargetLang = detectLanguages(doc.Root())
	ref.Pairs = collectPairs(doc.Root(), ref.Format)

	return ref, nil
}

// DetectFormat identifies the XLIFF dialect by scanning for vendor markers.
// SDL and MemoQ markers take precedence over the generic xliff root tag.
func DetectFormat(data []byte) domain.BilingualFormat {
	content := string(data)
	switch {
	case strings.Contains(content, "sdl:") || strings.Contains(content, "http://sdl.com"):
		return domain.FormatSDLXLIFF
	case strings.Contains(content, "mq:") || strings.Contains(content, "MemoQ"):
		return domain.FormatMQXLIFF
	case strings.Contains(content, "<xliff"):
		return domain.FormatXLIFF
	}
	return domain.FormatUnknown
}

// detectLanguages scans element attributes for language declarations.
// Any attribute whose name mentions both a side (source/src, target/trg) and
// "lang" counts, which covers source-language, srcLang and vendor variants.
func detectLanguages(root *etree.Element) (source, target string) {
	if root == nil {
		return "en", "en"
	}

	var walk func(e *etree.Element)
	walk = func(e *etree.Element) {
		for _, attr := range e.Attr {
			key := strings.ToLower(attr.Key)
			if !strings.Contains(key, "lang") {
				continue
			}
			switch {
			case strings.Contains(key, "source") || strings.Contains(key, "src"):
				if source == "" {
					source = attr.Value
				}
			case strings.Contains(key, "target") || strings.Contains(key, "trg"):
				if target == "" {
					target = attr.Value
				}
			}
		}
		if source != "" && target != "" {
			return
		}
		for _, child := range e.ChildElements() {
			walk(child)
			if source != "" && target != "" {
				return
			}
		}
	}
	walk(root)

	return domain.NormalizeLanguageCode(source), domain.NormalizeLanguageCode(target)
}

func collectPairs(root *etree.Element, format domain.BilingualFormat) []Pair {
	if root == nil {
		return nil
	}

	var pairs []Pair
	index := make(map[string]int)

	var walk func(e *etree.Element)
	walk = func(e *etree.Element) {
		if e.Tag == "trans-unit" {
			src, tgt := unitTexts(e, format)
			src, tgt = strings.TrimSpace(src), strings.TrimSpace(tgt)
			if src == "" || tgt == "" {
				return
			}
			if pos, ok := index[src]; ok {
				pairs[pos].Target = tgt
				return
			}
			index[src] = len(pairs)
			pairs = append(pairs, Pair{Source: src, Target: tgt})
			return
		}
		for _, child := range e.ChildElements() {
			walk(child)
		}
	}
	walk(root)

	return pairs
}

// unitTexts pulls the source and target text out of one trans-unit.
// SDLXLIFF keeps the authoritative segmentation in seg-source, so it is
// preferred over the plain source element when present.
func unitTexts(unit *etree.Element, format domain.BilingualFormat) (src, tgt string) {
	srcName := "source"
	if format == domain.FormatSDLXLIFF && findChild(unit, "seg-source") != nil {
		srcName = "seg-source"
	}
	if e := findChild(unit, srcName); e != nil {
		src = segmentText(e, format)
	}
	if e := findChild(unit, "target"); e != nil {
		tgt = segmentText(e, format)
	}
	return src, tgt
}

// findChild returns the first direct child whose local tag name matches.
// etree keeps namespace prefixes in Space, so Tag is already prefix-free.
func findChild(e *etree.Element, name string) *etree.Element {
	for _, child := range e.ChildElements() {
		if child.Tag == name {
			return child
		}
	}
	return nil
}

// segmentText extracts the translatable text of one source or target element.
// Vendor dialects wrap segment text in inline markers (sdl mrk, memoq mq:seg);
// when present, marker text and tails are concatenated. Otherwise only the
// element's own text plus the trailing text of each child is used, so inline
// code content (ph, bpt/ept) never leaks into the pair table.
func segmentText(e *etree.Element, format domain.BilingualFormat) string {
	switch format {
	case domain.FormatSDLXLIFF:
		if text, ok := markerText(e, "mrk"); ok {
			return text
		}
	case domain.FormatMQXLIFF:
		if text, ok := markerText(e, "seg"); ok {
			return text
		}
	}
	return directText(e)
}

// markerText concatenates the text and tail of every descendant marker
// element with the given local tag. Reports whether any marker was found.
func markerText(e *etree.Element, tag string) (string, bool) {
	var b strings.Builder
	found := false

	var walk func(e *etree.Element)
	walk = func(e *etree.Element) {
		for i, token := range e.Child {
			el, ok := token.(*etree.Element)
			if !ok {
				continue
			}
			if el.Tag == tag {
				found = true
				b.WriteString(directText(el))
				if i+1 < len(e.Child) {
					if tail, ok := e.Child[i+1].(*etree.CharData); ok {
						b.WriteString(tail.Data)
					}
				}
				continue
			}
			walk(el)
		}
	}
	walk(e)

	return b.String(), found
}

// directText concatenates an element's own text and the trailing text of each
// child element, skipping child-element content.
func directText(e *etree.Element) string {
	var b strings.Builder
	for _, token := range e.Child {
		if cd, ok := token.(*etree.CharData); ok {
			b.WriteString(cd.Data)
		}
	}
	return b.String()
}
