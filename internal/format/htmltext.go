package format

import (
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/charset"
)

// htmlBodyLimit caps how much of an HTML reply is tokenized.
const htmlBodyLimit = 1 << 20

var htmlSkipTags = map[string]bool{
	"script":   true,
	"style":    true,
	"noscript": true,
	"head":     true,
	"iframe":   true,
	"template": true,
}

// HTMLText extracts the visible text of an HTML document. Some backends
// answer chat and error pages as HTML snippets, which would otherwise be
// unreadable when spoken or printed. Returns the input unchanged when it
// doesn't tokenize as HTML.
func HTMLText(doc string, contentType string) string {
	var r io.Reader = strings.NewReader(doc)
	r = io.LimitReader(r, htmlBodyLimit)
	ur, err := charset.NewReader(r, contentType)
	if err != nil {
		ur = r
	}

	tokenizer := html.NewTokenizer(ur)
	skipDepth := 0
	var text strings.Builder
	for {
		tt := tokenizer.Next()
		if tt == html.ErrorToken {
			if tokenizer.Err() == io.EOF {
				break
			}
			return doc
		}
		switch tt {
		case html.StartTagToken:
			t := tokenizer.Token()
			if htmlSkipTags[strings.ToLower(t.Data)] {
				skipDepth++
			}
		case html.EndTagToken:
			t := tokenizer.Token()
			if htmlSkipTags[strings.ToLower(t.Data)] && skipDepth > 0 {
				skipDepth--
			}
		case html.TextToken:
			if skipDepth > 0 {
				continue
			}
			chunk := strings.TrimSpace(tokenizer.Token().Data)
			if chunk == "" {
				continue
			}
			if text.Len() > 0 {
				text.WriteByte(' ')
			}
			text.WriteString(chunk)
		}
	}
	if text.Len() == 0 {
		return strings.TrimSpace(doc)
	}
	return text.String()
}
