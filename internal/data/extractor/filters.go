package extractor

import "strings"

// The export interleaves real messages with reaction notifications and
// attachment stubs. Filtering is an explicit ordered list of named phrase
// matchers so the policy stays auditable and testable in one place.

type phraseMatcher struct {
	name  string
	match func(text string) bool
}

func containsPhrase(phrase string) func(string) bool {
	return func(text string) bool {
		return strings.Contains(text, phrase)
	}
}

// reactionMatchers identify pseudo-messages describing an emoji reaction to
// another message. These are dropped unconditionally.
var reactionMatchers = []phraseMatcher{
	{"reacted-to-message", func(text string) bool {
		return strings.Contains(text, "Reacted") && strings.Contains(text, "to your message")
	}},
	{"liked-message", containsPhrase("Liked a message")},
	{"loved-message", containsPhrase("Loved a message")},
	{"emphasized-message", containsPhrase("Emphasized a message")},
	{"laughed-at-message", containsPhrase("Laughed at a message")},
	{"questioned-message", containsPhrase("Questioned a message")},
	{"disliked-message", containsPhrase("Disliked a message")},
}

// attachmentMatchers identify shared-media stubs. Blocks matching one (or
// carrying an embedded hyperlink) are dropped unless IncludeAttachments is
// set, in which case the body is replaced with a synthetic marker.
var attachmentMatchers = []phraseMatcher{
	{"sent-attachment", containsPhrase("sent an attachment")},
	{"shared-reel", containsPhrase("shared a reel")},
}

func isReaction(text string) bool {
	for _, m := range reactionMatchers {
		if m.match(text) {
			return true
		}
	}
	return false
}

func isAttachmentPhrase(text string) bool {
	for _, m := range attachmentMatchers {
		if m.match(text) {
			return true
		}
	}
	return false
}
