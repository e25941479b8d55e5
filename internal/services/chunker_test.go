package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChunkTextShortTextSingleChunk(t *testing.T) {
	chunker := NewTextChunker()

	chunks := chunker.ChunkText("A short resume paragraph.", 1000, 100)
	require.Len(t, chunks, 1)
	assert.Equal(t, "A short resume paragraph.", chunks[0])
}

func TestChunkTextEmptyInput(t *testing.T) {
	chunker := NewTextChunker()

	assert.Empty(t, chunker.ChunkText("", 1000, 100))
	assert.Empty(t, chunker.ChunkText("\n\n  \n\n", 1000, 100))
}

func TestChunkTextRespectsMaxSize(t *testing.T) {
	chunker := NewTextChunker()

	paragraphs := make([]string, 20)
	for i := range paragraphs {
		paragraphs[i] = strings.Repeat("kata ", 40)
	}
	text := strings.Join(paragraphs, "\n\n")

	chunks := chunker.ChunkText(text, 500, 50)
	require.Greater(t, len(chunks), 1)

	for _, chunk := range chunks {
		// Overlap prepending may nudge a chunk slightly past the target.
		assert.LessOrEqual(t, len(chunk), 500+60)
	}
}
