package extractor

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func block(sender, body, timestamp string) string {
	return fmt.Sprintf(`<div class="pam uiBoxWhite noborder">
  <h2>%s</h2>
  <div class="_3-95 _a6-p">%s</div>
  <div class="_3-94 _a6-o">%s</div>
</div>`, sender, body, timestamp)
}

func htmlDoc(blocks ...string) []byte {
	return []byte("<html><body>" + strings.Join(blocks, "\n") + "</body></html>")
}

func TestExtractDocumentBasic(t *testing.T) {
	e := New(Options{})
	doc := Document{Name: "message_1.html", Data: htmlDoc(
		block("Alice", "Hello there", "Jan 5, 2023 3:45 PM"),
		block("Bob", "Hi!", "Jan 5, 2023 3:46 PM"),
	)}

	raws, err := e.ExtractDocument(doc)
	require.NoError(t, err)
	require.Len(t, raws, 2)
	assert.Equal(t, "Alice", raws[0].Sender)
	assert.Equal(t, "Hello there", raws[0].Text)
	assert.Equal(t, "Jan 5, 2023 3:45 PM", raws[0].TimestampText)
	assert.Equal(t, "Bob", raws[1].Sender)
}

func TestExtractDocumentCollapsesWhitespace(t *testing.T) {
	e := New(Options{})
	doc := Document{Name: "a.html", Data: htmlDoc(
		block("Alice", "Hello\n   spread\t over   lines", "Jan 5, 2023 3:45 PM"),
	)}

	raws, err := e.ExtractDocument(doc)
	require.NoError(t, err)
	require.Len(t, raws, 1)
	assert.Equal(t, "Hello spread over lines", raws[0].Text)
}

func TestExtractDocumentSkipsReactions(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"reacted to message", `Reacted 😀 to your message`},
		{"liked", "Liked a message"},
		{"loved", "Loved a message"},
		{"emphasized", "Emphasized a message"},
		{"laughed", "Laughed at a message"},
		{"questioned", "Questioned a message"},
		{"disliked", "Disliked a message"},
	}

	e := New(Options{})
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := Document{Name: "a.html", Data: htmlDoc(
				block("Alice", "A real message", "Jan 5, 2023 3:45 PM"),
				block("Bob", tt.body, "Jan 5, 2023 3:46 PM"),
			)}

			raws, err := e.ExtractDocument(doc)
			require.NoError(t, err)
			require.Len(t, raws, 1, "reaction block must be excluded")
			assert.Equal(t, "A real message", raws[0].Text)
		})
	}
}

func TestExtractDocumentSkipsIncompleteBlocks(t *testing.T) {
	incomplete := `<div class="pam uiBoxWhite noborder">
  <div class="_3-95 _a6-p">No sender here</div>
  <div class="_3-94 _a6-o">Jan 5, 2023 3:45 PM</div>
</div>`

	e := New(Options{})
	raws, err := e.ExtractDocument(Document{Name: "a.html", Data: htmlDoc(
		incomplete,
		block("Alice", "Complete", "Jan 5, 2023 3:45 PM"),
	)})

	require.NoError(t, err)
	require.Len(t, raws, 1)
	assert.Equal(t, "Complete", raws[0].Text)
}

func TestExtractDocumentAttachmentExcludedByDefault(t *testing.T) {
	e := New(Options{IncludeAttachments: false})
	doc := Document{Name: "a.html", Data: htmlDoc(
		block("Alice", `<a href="https://example.com/photo">photo.jpg</a>`, "Jan 5, 2023 3:45 PM"),
	)}

	raws, err := e.ExtractDocument(doc)
	require.NoError(t, err)
	assert.Empty(t, raws)
}

func TestExtractDocumentAttachmentIncludedWithToggle(t *testing.T) {
	e := New(Options{IncludeAttachments: true})
	doc := Document{Name: "a.html", Data: htmlDoc(
		block("Alice", `<a href="https://example.com/photo">photo.jpg</a>`, "Jan 5, 2023 3:45 PM"),
		block("Bob", "Bob sent an attachment.", "Jan 5, 2023 3:46 PM"),
	)}

	raws, err := e.ExtractDocument(doc)
	require.NoError(t, err)
	require.Len(t, raws, 2)
	assert.Equal(t, "Attachment: photo.jpg", raws[0].Text)
	assert.Equal(t, "Attachment: Bob sent an attachment.", raws[1].Text)
}

func TestExtractDocumentInvalidBytes(t *testing.T) {
	e := New(Options{})
	_, err := e.ExtractDocument(Document{Name: "corrupt.html", Data: []byte{0xff, 0xfe, 0xfd}})
	assert.Error(t, err)
}

func TestExtractDocumentNoBlocks(t *testing.T) {
	e := New(Options{})
	raws, err := e.ExtractDocument(Document{Name: "empty.html", Data: []byte("<html><body><p>nothing</p></body></html>")})
	require.NoError(t, err)
	assert.Empty(t, raws, "zero matched blocks is the empty case, not an error")
}

func TestExtractBatchRecoversPerDocument(t *testing.T) {
	e := New(Options{Concurrency: 4})
	docs := []Document{
		{Name: "corrupt.html", Data: []byte{0xff, 0xfe, 0xfd}},
		{Name: "good.html", Data: htmlDoc(
			block("Alice", "one", "Jan 5, 2023 3:45 PM"),
			block("Bob", "two", "Jan 5, 2023 3:46 PM"),
			block("Alice", "three", "Jan 5, 2023 3:47 PM"),
		)},
	}

	raws, warnings := e.Extract(docs)

	assert.Len(t, raws, 3)
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "corrupt.html")
}

func TestExtractPreservesDocumentOrder(t *testing.T) {
	e := New(Options{Concurrency: 8})
	var docs []Document
	for i := 0; i < 20; i++ {
		docs = append(docs, Document{
			Name: fmt.Sprintf("doc%d.html", i),
			Data: htmlDoc(block("Alice", fmt.Sprintf("msg-%d", i), "Jan 5, 2023 3:45 PM")),
		})
	}

	raws, warnings := e.Extract(docs)

	assert.Empty(t, warnings)
	require.Len(t, raws, 20)
	for i, raw := range raws {
		assert.Equal(t, fmt.Sprintf("msg-%d", i), raw.Text)
	}
}
