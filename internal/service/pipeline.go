// Package service runs the export pipelines: each configured source becomes
// a task that fetches the listing, filters it, and writes one CSV file.
package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/openepg/getchannels/internal/fetcher"
	"github.com/openepg/getchannels/internal/filter"
	"github.com/openepg/getchannels/internal/models"
	"github.com/openepg/getchannels/internal/store"
)

// Task is one source export. Tasks are independent; a failing task never
// affects its siblings.
type Task interface {
	// ID uniquely identifies the task within a run. Source names are not
	// guaranteed unique, the id is.
	ID() string
	// Source returns the configured source the task serves.
	Source() models.Source
	// Run executes the pipeline and reports how many rows were written.
	Run(ctx context.Context) (int, error)
}

// Options carries the fetch settings shared by every task.
type Options struct {
	Timeout   time.Duration
	UserAgent string
}

// NewTask builds the pipeline variant matching src.Kind.
func NewTask(src models.Source, st store.Store, opts Options) (Task, error) {
	b := base{id: taskID(), src: src, st: st, opts: opts}
	switch src.Kind {
	case models.KindPlaylist:
		return &playlistTask{base: b}, nil
	case models.KindJSON:
		return &jsonTask{base: b}, nil
	default:
		return nil, fmt.Errorf("source %q: unknown kind %q", src.Name, src.Kind)
	}
}

type base struct {
	id   string
	src  models.Source
	st   store.Store
	opts Options
}

func (b *base) ID() string            { return b.id }
func (b *base) Source() models.Source { return b.src }

// taskID returns a time-ordered unique id, falling back to a timestamp when
// UUID generation fails.
func taskID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return fmt.Sprintf("task-%d", time.Now().UnixNano())
	}
	return id.String()
}

// playlistTask exports an M3U source: every record that survives the filter
// gates becomes one row of the four-column channel table.
type playlistTask struct {
	base
}

func (t *playlistTask) Run(ctx context.Context) (int, error) {
	body, err := fetcher.Fetch(ctx, t.src.URL, t.opts.UserAgent, t.opts.Timeout)
	if err != nil {
		return 0, fmt.Errorf("fetch: %w", err)
	}
	channels := fetcher.ParseM3U(string(body))
	rows := make([][]string, 0, len(channels))
	for _, ch := range channels {
		rows = append(rows, ch.Row())
	}
	if err := t.st.WriteCSV(t.src.Filename, models.ChannelHeader, rows); err != nil {
		return 0, fmt.Errorf("write %s: %w", t.src.Filename, err)
	}
	return len(channels), nil
}

// jsonTask exports an iptv-org API source: the channel array is filtered and
// projected onto the five-column entry table.
type jsonTask struct {
	base
}

func (t *jsonTask) Run(ctx context.Context) (int, error) {
	body, err := fetcher.Fetch(ctx, t.src.URL, t.opts.UserAgent, t.opts.Timeout)
	if err != nil {
		return 0, fmt.Errorf("fetch: %w", err)
	}
	var channels []models.APIChannel
	if err := json.Unmarshal(body, &channels); err != nil {
		return 0, fmt.Errorf("decode: %w", err)
	}
	entries := filterAPI(channels)
	header := models.EntryHeader
	if len(entries) == 0 {
		// An empty result still gets a header line, collapsed to the single
		// name column.
		header = []string{"name"}
	}
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, e.Row())
	}
	if err := t.st.WriteCSV(t.src.Filename, header, rows); err != nil {
		return 0, fmt.Errorf("write %s: %w", t.src.Filename, err)
	}
	return len(entries), nil
}

// filterAPI keeps the channels that pass the country, language, content and
// news gates, projected onto the export columns. Gate order matters only for
// performance; the gates are independent.
func filterAPI(channels []models.APIChannel) []models.ChannelEntry {
	var entries []models.ChannelEntry
	for _, ch := range channels {
		if !filter.AllowedCountry(ch.Country) {
			continue
		}
		if !filter.HasEnglish(ch.LanguageCodes()) {
			continue
		}
		if ch.IsNSFW {
			continue
		}
		cats := ch.CategoryNames()
		if filter.BlockedCategories(cats) {
			continue
		}
		if filter.NewsCategories(cats) && !filter.AllowedNewsName(ch.Name) {
			continue
		}
		entries = append(entries, ch.Entry())
	}
	return entries
}
