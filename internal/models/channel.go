package models

import "strings"

// Channel is one playlist entry that survived filtering: display name,
// derived country, raw group title, stream URL.
type Channel struct {
	Name       string `json:"name"`
	Country    string `json:"country"`
	GroupTitle string `json:"group_title"`
	URL        string `json:"url"`
}

// Row returns the channel as a CSV row in ChannelHeader order.
func (c Channel) Row() []string {
	return []string{c.Name, c.Country, c.GroupTitle, c.URL}
}

// APIChannel mirrors one record of the iptv-org channels API.
// Only the fields the export reads are mapped; everything else is ignored.
type APIChannel struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Network    string     `json:"network"`
	Country    string     `json:"country"`
	Logo       string     `json:"logo"`
	Languages  []Language `json:"languages"`
	Categories []Category `json:"categories"`
	IsNSFW     bool       `json:"is_nsfw"`
}

// Language is one entry of an API channel's language list.
type Language struct {
	Code string `json:"code"`
}

// Category is one entry of an API channel's category list.
type Category struct {
	Name string `json:"name"`
}

// LanguageCodes returns the channel's language codes in feed order.
func (c APIChannel) LanguageCodes() []string {
	codes := make([]string, 0, len(c.Languages))
	for _, l := range c.Languages {
		codes = append(codes, l.Code)
	}
	return codes
}

// CategoryNames returns the channel's category names, lower-cased.
func (c APIChannel) CategoryNames() []string {
	names := make([]string, 0, len(c.Categories))
	for _, cat := range c.Categories {
		names = append(names, strings.ToLower(cat.Name))
	}
	return names
}

// Entry projects the API record onto the exported column set.
func (c APIChannel) Entry() ChannelEntry {
	return ChannelEntry{
		ID:      c.ID,
		Name:    c.Name,
		Network: c.Network,
		Country: c.Country,
		Logo:    c.Logo,
	}
}

// ChannelEntry is the exported projection of an API channel.
type ChannelEntry struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Network string `json:"network"`
	Country string `json:"country"`
	Logo    string `json:"logo"`
}

// Row returns the entry as a CSV row in EntryHeader order.
func (e ChannelEntry) Row() []string {
	return []string{e.ID, e.Name, e.Network, e.Country, e.Logo}
}
