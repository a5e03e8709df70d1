package models

// Kind selects which parse/filter pipeline handles a source.
type Kind string

const (
	// KindJSON sources serve the iptv-org channel API (a JSON array).
	KindJSON Kind = "json"
	// KindPlaylist sources serve an M3U/M3U8 playlist.
	KindPlaylist Kind = "playlist"
)

// Country codes the export keeps. Records with any other code are dropped.
const (
	CountryCA = "CA"
	CountryUS = "US"
	CountryGB = "GB"
	CountryAU = "AU"
)

// CSV column orders for the two output shapes.
var (
	ChannelHeader = []string{"name", "country", "group_title", "url"}
	EntryHeader   = []string{"id", "name", "network", "country", "logo"}
)
