package models

import (
	"reflect"
	"testing"
)

func TestSourceValidate(t *testing.T) {
	valid := Source{Name: "English M3U", URL: "http://example.com/eng.m3u", Filename: "eng.csv", Kind: KindPlaylist}
	if err := valid.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}

	tests := []struct {
		name string
		src  Source
	}{
		{"missing name", Source{URL: "http://x", Filename: "x.csv", Kind: KindJSON}},
		{"missing url", Source{Name: "X", Filename: "x.csv", Kind: KindJSON}},
		{"missing filename", Source{Name: "X", URL: "http://x", Kind: KindJSON}},
		{"unknown kind", Source{Name: "X", URL: "http://x", Filename: "x.csv", Kind: "rss"}},
		{"empty kind", Source{Name: "X", URL: "http://x", Filename: "x.csv"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.src.Validate(); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestChannelRow(t *testing.T) {
	ch := Channel{Name: "CBC Toronto", Country: "CA", GroupTitle: "Canada", URL: "http://example.com/cbc.m3u8"}
	got := ch.Row()
	want := []string{"CBC Toronto", "CA", "Canada", "http://example.com/cbc.m3u8"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Row() = %v, want %v", got, want)
	}
	if len(got) != len(ChannelHeader) {
		t.Errorf("row width %d does not match header width %d", len(got), len(ChannelHeader))
	}
}

func TestAPIChannelEntry(t *testing.T) {
	ch := APIChannel{
		ID:         "CBCNews.ca",
		Name:       "CBC News Network",
		Network:    "CBC",
		Country:    "CA",
		Logo:       "http://logo/cbc.png",
		Languages:  []Language{{Code: "eng"}, {Code: "fra"}},
		Categories: []Category{{Name: "News"}, {Name: "General"}},
	}

	if got, want := ch.LanguageCodes(), []string{"eng", "fra"}; !reflect.DeepEqual(got, want) {
		t.Errorf("LanguageCodes() = %v, want %v", got, want)
	}
	if got, want := ch.CategoryNames(), []string{"news", "general"}; !reflect.DeepEqual(got, want) {
		t.Errorf("CategoryNames() = %v, want %v", got, want)
	}

	row := ch.Entry().Row()
	want := []string{"CBCNews.ca", "CBC News Network", "CBC", "CA", "http://logo/cbc.png"}
	if !reflect.DeepEqual(row, want) {
		t.Errorf("Entry().Row() = %v, want %v", row, want)
	}
	if len(row) != len(EntryHeader) {
		t.Errorf("row width %d does not match header width %d", len(row), len(EntryHeader))
	}
}
