package intent

import "regexp"

// BareDomainTLDs lists the top-level domains recognised in scheme-less links.
var BareDomainTLDs = []string{"com", "net", "org", "io", "co", "me", "tv", "app", "dev", "link", "bio", "page"}

var (
	schemeURLPattern = regexp.MustCompile(`(?i)https?://\S+`)

	bareDomainPattern = regexp.MustCompile(
		`(?i)\b(?:[a-z0-9](?:[a-z0-9-]*[a-z0-9])?\.)+(?:com|net|org|io|co|me|tv|app|dev|link|bio|page)\b(?:/\S*)?`,
	)

	handlePattern = regexp.MustCompile(`@[\w.-]+`)

	quantityPattern = regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)([km])?`)

	// 1,000 and 10,000,000 style grouping; applied until nothing changes.
	thousandsPattern = regexp.MustCompile(`(\d),(\d{3})(\D|$)`)
)
