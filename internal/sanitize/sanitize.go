// Package sanitize neutralizes caller-supplied markup before it leaves the API.
//
// Two policies exist. Text escapes every tag and is used for short labels
// (folder names, note titles). Markup keeps a whitelist of formatting tags,
// strips attributes outside the per-tag whitelist (event handlers included)
// and escapes everything else; it is used for note content.
package sanitize

import (
	"bytes"
	"errors"
	"html"
	"io"
	"net/url"
	"strings"

	xhtml "golang.org/x/net/html"
)

var angleEscaper = strings.NewReplacer("<", "&lt;", ">", "&gt;")

// Text escapes angle brackets so no tag in s can render. Quotes are kept.
func Text(s string) string {
	return angleEscaper.Replace(s)
}

// allowedTags maps a whitelisted tag to its permitted attributes.
var allowedTags = map[string][]string{
	"a":          {"href", "title", "target"},
	"abbr":       {"title"},
	"b":          nil,
	"blockquote": {"cite"},
	"br":         nil,
	"code":       nil,
	"del":        nil,
	"div":        nil,
	"em":         nil,
	"h1":         nil,
	"h2":         nil,
	"h3":         nil,
	"h4":         nil,
	"h5":         nil,
	"h6":         nil,
	"hr":         nil,
	"i":          nil,
	"img":        {"src", "alt", "title", "width", "height"},
	"li":         nil,
	"ol":         nil,
	"p":          nil,
	"pre":        nil,
	"s":          nil,
	"small":      nil,
	"span":       nil,
	"strong":     nil,
	"sub":        nil,
	"sup":        nil,
	"table":      {"width"},
	"tbody":      nil,
	"td":         {"colspan", "rowspan"},
	"th":         {"colspan", "rowspan"},
	"thead":      nil,
	"tr":         nil,
	"u":          nil,
	"ul":         nil,
}

var urlAttrs = map[string]bool{"href": true, "src": true, "cite": true}

var safeSchemes = map[string]bool{"http": true, "https": true, "mailto": true}

// Markup filters s through the content whitelist.
func Markup(s string) string {
	if !strings.ContainsAny(s, "<>") {
		return s
	}

	var out bytes.Buffer
	out.Grow(len(s))

	z := xhtml.NewTokenizer(strings.NewReader(s))
	for {
		tt := z.Next()
		switch tt {
		case xhtml.ErrorToken:
			// An unfinished tag at EOF comes back as raw bytes; keep it as text.
			if errors.Is(z.Err(), io.EOF) {
				out.WriteString(angleEscaper.Replace(string(z.Raw())))
			}
			return out.String()
		case xhtml.CommentToken:
			continue
		case xhtml.TextToken:
			out.WriteString(angleEscaper.Replace(string(z.Raw())))
		case xhtml.StartTagToken, xhtml.SelfClosingTagToken, xhtml.EndTagToken:
			raw := string(z.Raw())
			tok := z.Token()
			attrs, ok := allowedTags[tok.Data]
			if !ok {
				out.WriteString(angleEscaper.Replace(raw))
				continue
			}
			writeTag(&out, tt, tok, attrs)
		default:
			out.WriteString(angleEscaper.Replace(string(z.Raw())))
		}
	}
}

func writeTag(out *bytes.Buffer, tt xhtml.TokenType, tok xhtml.Token, allowed []string) {
	if tt == xhtml.EndTagToken {
		out.WriteString("</" + tok.Data + ">")
		return
	}
	out.WriteString("<" + tok.Data)
	for _, a := range tok.Attr {
		if a.Namespace != "" || !contains(allowed, a.Key) {
			continue
		}
		if urlAttrs[a.Key] && !safeURL(a.Val) {
			continue
		}
		out.WriteString(" " + a.Key + `="` + html.EscapeString(a.Val) + `"`)
	}
	if tt == xhtml.SelfClosingTagToken {
		out.WriteString(" /")
	}
	out.WriteString(">")
}

// safeURL accepts relative references and absolute URLs with a safe scheme.
func safeURL(raw string) bool {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return false
	}
	if u.Scheme == "" {
		return true
	}
	return safeSchemes[strings.ToLower(u.Scheme)]
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
