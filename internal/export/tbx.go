package export

import (
	"fmt"

	"github.com/beevik/etree"

	"github.com/termscout/termscout/internal/domain"
)

// writeTBX renders the result as a TBX-Basic termbase. Each term becomes one
// termEntry with a langSet per side; fuzzy reference translations are kept as
// a note rather than a second target term.
func writeTBX(result *domain.ExtractionResult, path string) error {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	martif := doc.CreateElement("martif")
	martif.CreateAttr("type", "TBX-Basic")
	martif.CreateAttr("xml:lang", result.SourceLanguage)

	header := martif.CreateElement("martifHeader")
	fileDesc := header.CreateElement("fileDesc")
	sourceDesc := fileDesc.CreateElement("sourceDesc")
	sourceDesc.CreateElement("p").SetText(
		fmt.Sprintf("termscout extraction %s (%s)", result.RunID, result.LanguagePair))

	body := martif.CreateElement("text").CreateElement("body")

	for i := range result.Terms {
		t := &result.Terms[i]

		entry := body.CreateElement("termEntry")
		entry.CreateAttr("id", fmt.Sprintf("te-%d", i+1))

		subject := entry.CreateElement("descrip")
		subject.CreateAttr("type", "subjectField")
		subject.SetText(t.Domain)

		if t.Definition != "" {
			def := entry.CreateElement("descrip")
			def.CreateAttr("type", "definition")
			def.SetText(t.Definition)
		}

		srcSet := entry.CreateElement("langSet")
		srcSet.CreateAttr("xml:lang", result.SourceLanguage)
		srcTig := srcSet.CreateElement("tig")
		srcTig.CreateElement("term").SetText(t.Text)
		if t.PartOfSpeech != "" {
			pos := srcTig.CreateElement("termNote")
			pos.CreateAttr("type", "partOfSpeech")
			pos.SetText(t.PartOfSpeech)
		}

		if t.Translation != "" {
			tgtSet := entry.CreateElement("langSet")
			tgtSet.CreateAttr("xml:lang", result.TargetLanguage)
			tgtTig := tgtSet.CreateElement("tig")
			tgtTig.CreateElement("term").SetText(t.Translation)
			prov := tgtTig.CreateElement("termNote")
			prov.CreateAttr("type", "provenance")
			prov.SetText(t.Provenance.String())
		}

		if t.HasFuzzyMatch() {
			note := entry.CreateElement("note")
			note.SetText(fmt.Sprintf("fuzzy reference (%.2f): %s", *t.FuzzyScore, t.FuzzyReference))
		}
	}

	doc.Indent(2)
	if err := doc.WriteToFile(path); err != nil {
		return fmt.Errorf("export tbx: %w", err)
	}
	return nil
}
