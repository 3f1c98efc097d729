// Package extractor turns exported chat-history markup into raw message
// records. Each document is an HTML file from the platform's data download;
// message blocks are located by the fixed container class the export uses.
package extractor

import (
	"bytes"
	"errors"
	"fmt"
	"sync"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"

	"github.com/qasimmansoori/insta-chat-analyzer/internal/core/model"
	"github.com/qasimmansoori/insta-chat-analyzer/internal/util"
)

// Structural markers of the export format.
const (
	blockSelector     = "div.pam.uiBoxWhite.noborder"
	senderSelector    = "h2"
	bodySelector      = "div._3-95._a6-p"
	timestampSelector = "div._3-94._a6-o"
)

// Document is one export file: raw bytes plus a display name used in
// warnings. The extractor does not care where the bytes came from.
type Document struct {
	Name string
	Data []byte
}

// Options configure extraction behavior.
type Options struct {
	// IncludeAttachments keeps attachment/reel blocks with a synthetic
	// "Attachment: <link text>" body instead of dropping them.
	IncludeAttachments bool
	// Concurrency bounds parallel document parsing. Zero or one means
	// sequential. Documents share no state, so this is purely a speedup.
	Concurrency int
}

// Extractor scans export documents for message blocks.
type Extractor struct {
	opts Options
}

// New creates an Extractor with the given options.
func New(opts Options) *Extractor {
	return &Extractor{opts: opts}
}

// ExtractDocument parses a single document and returns its raw messages.
// Blocks missing a required sub-field are skipped silently; a document that
// cannot be decoded or parsed returns an error.
func (e *Extractor) ExtractDocument(doc Document) ([]model.RawMessage, error) {
	if !utf8.Valid(doc.Data) {
		return nil, errors.New("not valid UTF-8")
	}

	tree, err := goquery.NewDocumentFromReader(bytes.NewReader(doc.Data))
	if err != nil {
		return nil, fmt.Errorf("parsing markup: %w", err)
	}

	var raws []model.RawMessage
	tree.Find(blockSelector).Each(func(_ int, block *goquery.Selection) {
		if raw, ok := e.extractBlock(block); ok {
			raws = append(raws, raw)
		}
	})

	util.LogDebugf("Extracted %d message blocks from %s", len(raws), doc.Name)
	return raws, nil
}

// extractBlock pulls the three required sub-fields out of one message block
// and applies the filtering policy. ok is false when the block is skipped.
func (e *Extractor) extractBlock(block *goquery.Selection) (model.RawMessage, bool) {
	sender := block.Find(senderSelector).First()
	body := block.Find(bodySelector).First()
	timestamp := block.Find(timestampSelector).First()

	// Incomplete block: expected noise in real exports, not an error.
	if sender.Length() == 0 || body.Length() == 0 || timestamp.Length() == 0 {
		return model.RawMessage{}, false
	}

	fullText := util.CollapseWhitespace(block.Text())
	if isReaction(fullText) {
		return model.RawMessage{}, false
	}

	text := util.CollapseWhitespace(body.Text())

	link := block.Find("a").First()
	if link.Length() > 0 || isAttachmentPhrase(text) {
		if !e.opts.IncludeAttachments {
			return model.RawMessage{}, false
		}
		label := util.CollapseWhitespace(link.Text())
		if label == "" {
			label = text
		}
		text = "Attachment: " + label
	}

	return model.RawMessage{
		Sender:        util.CollapseWhitespace(sender.Text()),
		Text:          text,
		TimestampText: util.CollapseWhitespace(timestamp.Text()),
	}, true
}

// Extract processes all documents and concatenates their raw messages in
// input order. A parse failure in one document becomes a warning; the batch
// continues with the remaining documents.
func (e *Extractor) Extract(docs []Document) ([]model.RawMessage, []string) {
	concurrency := e.opts.Concurrency
	if concurrency < 1 {
		concurrency = 1
	}

	perDoc := make([][]model.RawMessage, len(docs))
	errs := make([]error, len(docs))

	semaphore := make(chan struct{}, concurrency)
	var wg sync.WaitGroup
	for i, doc := range docs {
		wg.Add(1)
		go func(i int, doc Document) {
			defer wg.Done()
			semaphore <- struct{}{}
			defer func() { <-semaphore }()

			perDoc[i], errs[i] = e.ExtractDocument(doc)
		}(i, doc)
	}
	wg.Wait()

	var raws []model.RawMessage
	var warnings []string
	for i, doc := range docs {
		if errs[i] != nil {
			warning := fmt.Sprintf("Could not parse document %s: %v", doc.Name, errs[i])
			util.LogWarn(warning)
			warnings = append(warnings, warning)
			continue
		}
		raws = append(raws, perDoc[i]...)
	}

	return raws, warnings
}
