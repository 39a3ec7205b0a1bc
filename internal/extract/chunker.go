package extract

import "strings"

// DefaultChunkSize is the target chunk size in characters.
const DefaultChunkSize = 2000

// Chunk splits text into segments of at most maxSize characters, cutting only
// on blank-line paragraph boundaries. Text that already fits is returned as a
// single chunk equal to the input (including empty input). A single paragraph
// larger than maxSize is kept whole rather than split mid-paragraph, so no
// text is ever dropped and boundaries are deterministic.
func Chunk(text string, maxSize int) []string {
	if maxSize <= 0 {
		maxSize = DefaultChunkSize
	}
	if len(text) <= maxSize {
		return []string{text}
	}

	paragraphs := strings.Split(text, "\n\n")

	var chunks []string
	var current strings.Builder

	for _, para := range paragraphs {
		if current.Len()+len(para) < maxSize {
			current.WriteString(para)
			current.WriteString("\n\n")
			continue
		}
		if current.Len() > 0 {
			chunks = append(chunks, strings.TrimSpace(current.String()))
			current.Reset()
		}
		current.WriteString(para)
		current.WriteString("\n\n")
	}

	if current.Len() > 0 {
		chunks = append(chunks, strings.TrimSpace(current.String()))
	}

	if len(chunks) == 0 {
		return []string{text}
	}
	return chunks
}
