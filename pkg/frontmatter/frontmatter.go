// Package frontmatter parses and formats YAML frontmatter in Markdown
// documents. Skills, rules, and templates all carry optional frontmatter.
package frontmatter

import (
	"bytes"
	"strings"

	"gopkg.in/yaml.v3"

	"agentdeck/internal/errors"
)

var delim = []byte("---")

// Split separates a document into frontmatter YAML and body. If the document
// does not start with a frontmatter block, fm is nil and body is the whole
// input. A block that opens but never closes is treated as body, not an
// error: entity content is user-authored Markdown and "---" alone on the
// first line is legal prose.
func Split(content []byte) (fm, body []byte) {
	rest, ok := cutDelim(content)
	if !ok {
		return nil, content
	}

	// Closing delimiter must sit at the start of a line.
	for off := 0; ; {
		idx := bytes.Index(rest[off:], delim)
		if idx < 0 {
			return nil, content
		}
		at := off + idx
		if at == 0 || rest[at-1] == '\n' {
			fm = rest[:at]
			body = trimLeadingNewline(rest[at+len(delim):])
			return fm, body
		}
		off = at + len(delim)
	}
}

// Parse unmarshals the document's frontmatter into matter and returns the
// body. Documents without frontmatter leave matter untouched.
func Parse[T any](content []byte, matter *T) ([]byte, error) {
	fm, body := Split(content)
	if fm == nil {
		return body, nil
	}
	if err := yaml.Unmarshal(fm, matter); err != nil {
		return nil, errors.Wrap(err, "parsing frontmatter")
	}
	return body, nil
}

// Format renders matter as a frontmatter block followed by body. A nil
// matter produces just the body.
func Format(matter any, body string) ([]byte, error) {
	var buf bytes.Buffer
	if matter != nil {
		buf.WriteString("---\n")
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(matter); err != nil {
			return nil, errors.Wrap(err, "encoding frontmatter")
		}
		if err := enc.Close(); err != nil {
			return nil, errors.Wrap(err, "encoding frontmatter")
		}
		buf.WriteString("---\n")
		if body != "" {
			buf.WriteString("\n")
		}
	}
	buf.WriteString(body)
	if body != "" && !strings.HasSuffix(body, "\n") {
		buf.WriteString("\n")
	}
	return buf.Bytes(), nil
}

// cutDelim strips an opening "---" line, tolerating CRLF.
func cutDelim(content []byte) ([]byte, bool) {
	if !bytes.HasPrefix(content, delim) {
		return nil, false
	}
	rest := content[len(delim):]
	if bytes.HasPrefix(rest, []byte("\r\n")) {
		return rest[2:], true
	}
	if bytes.HasPrefix(rest, []byte("\n")) {
		return rest[1:], true
	}
	return nil, false
}

func trimLeadingNewline(b []byte) []byte {
	if bytes.HasPrefix(b, []byte("\r\n")) {
		return b[2:]
	}
	if bytes.HasPrefix(b, []byte("\n")) {
		return b[1:]
	}
	return b
}
