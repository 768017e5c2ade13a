package share

import (
	"net/url"
	"strings"

	"github.com/dmitrijs2005/lovesurprise/internal/common"
)

// Link returns the public address of a surprise, <base>/s/<id>.
func Link(baseURL, id string) string {
	return strings.TrimRight(baseURL, "/") + common.ShareRoutePrefix + url.PathEscape(id)
}

func shareText(coupleName string) string {
	return "Veja essa surpresa especial: " + coupleName
}

// WhatsAppURL is a wa.me intent carrying the share text and the link.
func WhatsAppURL(link, coupleName string) string {
	return "https://wa.me/?text=" + url.QueryEscape(shareText(coupleName)+" "+link)
}

// FacebookURL is a sharer intent for the link.
func FacebookURL(link string) string {
	return "https://www.facebook.com/sharer/sharer.php?" + url.Values{"u": {link}}.Encode()
}
