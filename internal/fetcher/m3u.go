package fetcher

import (
	"regexp"
	"strings"

	"github.com/openepg/getchannels/internal/filter"
	"github.com/openepg/getchannels/internal/models"
)

// reGroup extracts the quoted group-title attribute from an EXTINF line.
var reGroup = regexp.MustCompile(`group-title="([^"]*)"`)

// extinfMarker opens a playlist entry; the following line is the URL candidate.
const extinfMarker = "#EXTINF:"

// nameAttrDelim truncates the display field where inline tvg- attributes
// start leaking into it.
const nameAttrDelim = " tvg-"

// ParseM3U scans playlist text and returns the channel records that pass
// every filter gate. The scan is single-pass and best-effort: malformed
// entries are skipped without aborting the parse.
func ParseM3U(text string) []models.Channel {
	var channels []models.Channel
	lines := strings.Split(text, "\n")
	for i := 0; i < len(lines); {
		if !strings.HasPrefix(lines[i], extinfMarker) {
			i++
			continue
		}
		info := lines[i]
		comma := strings.Index(info, ",")
		if comma < 0 || i+1 >= len(lines) {
			i++
			continue
		}
		name := info[comma+1:]
		if cut := strings.Index(name, nameAttrDelim); cut >= 0 {
			name = name[:cut]
		}
		name = strings.TrimSpace(name)

		url := strings.TrimSpace(lines[i+1])
		if !strings.HasPrefix(url, "http") {
			// The candidate may itself open the next entry; rescan it.
			i++
			continue
		}

		group := ""
		if m := reGroup.FindStringSubmatch(info); m != nil {
			group = m[1]
		}

		country := filter.CountryForGroup(group)
		if country == "" || filter.BlockedGroup(group) ||
			(filter.NewsGroup(group) && !filter.AllowedNewsName(name)) {
			i += 2
			continue
		}

		channels = append(channels, models.Channel{
			Name:       name,
			Country:    country,
			GroupTitle: group,
			URL:        url,
		})
		i += 2
	}
	return channels
}
