package browser

import (
	"unicode"
	"unicode/utf8"

	"github.com/valyala/bytebufferpool"
)

// Preview collapses whitespace in html and cuts it to limit runes, for log
// lines about pages that did not parse as expected.
func Preview(html string, limit int) string {
	if limit <= 0 {
		limit = 200
	}

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	written := 0
	pendingSpace := false
	for _, r := range html {
		if written >= limit {
			_, _ = buf.WriteString("...")
			break
		}
		if unicode.IsSpace(r) {
			pendingSpace = buf.Len() > 0
			continue
		}
		if pendingSpace {
			_ = buf.WriteByte(' ')
			written++
			pendingSpace = false
			if written >= limit {
				continue
			}
		}
		var encoded [utf8.UTFMax]byte
		n := utf8.EncodeRune(encoded[:], r)
		_, _ = buf.Write(encoded[:n])
		written++
	}
	return buf.String()
}
