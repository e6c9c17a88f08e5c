package gpath

import "strings"

// jsonLinesRootResult treats json as a logical array whose elements are the
// JSON values found by repeatedly skipping one value, then any trailing
// whitespace/newline, from offset 0 (a leading ".." path prefix). The
// elements are concatenated into an owned JSON array so the rest of the
// navigator can treat it exactly like any other array.
func jsonLinesRootResult(json []byte) Result {
	var b strings.Builder
	b.WriteByte('[')
	i := skipWhitespace(json, 0)
	first := true
	for i < len(json) {
		end := skipValue(json, i)
		if end <= i {
			break
		}
		if !first {
			b.WriteByte(',')
		}
		first = false
		b.Write(json[i:end])
		i = skipWhitespace(json, end)
	}
	b.WriteByte(']')
	return resultFromOwned([]byte(b.String()))
}
