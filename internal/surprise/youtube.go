package surprise

import "regexp"

var youtubePatterns = []*regexp.Regexp{
	regexp.MustCompile(`youtu\.be/([^?&/]+)`),
	regexp.MustCompile(`youtube\.com/watch\?(?:.*&)?v=([^&]+)`),
	regexp.MustCompile(`youtube\.com/v/([^?&/]+)`),
	regexp.MustCompile(`youtube\.com/embed/([^?&/]+)`),
}

// ExtractYouTubeID returns the video id of a YouTube link, or "" when the
// link is not one of the youtu.be, watch?v=, /v/ or /embed/ forms.
func ExtractYouTubeID(link string) string {
	for _, re := range youtubePatterns {
		if m := re.FindStringSubmatch(link); m != nil {
			return m[1]
		}
	}
	return ""
}

// EmbedURL is the iframe source for a video link, "" if the link is not
// recognised.
func EmbedURL(link string) string {
	id := ExtractYouTubeID(link)
	if id == "" {
		return ""
	}
	return "https://www.youtube.com/embed/" + id
}
