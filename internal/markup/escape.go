// Package markup provides the text escaping primitives shared by the OOXML
// and HTML encoders.
package markup

import "strings"

var xmlReplacer = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

var htmlReplacer = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
)

// EscapeXML makes s safe for an XML text node or attribute value. Input is
// treated as plain text: existing entities are escaped again rather than
// preserved.
func EscapeXML(s string) string {
	return xmlReplacer.Replace(s)
}

// EscapeHTML makes s safe for an HTML text node.
func EscapeHTML(s string) string {
	return htmlReplacer.Replace(s)
}
