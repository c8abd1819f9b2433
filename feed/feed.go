// Package feed turns a directory of PEPs into the "Newest Python PEPs" RSS
// feed.
package feed

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/gorilla/feeds"
	"github.com/hobeone/pepfeed/config"
	"github.com/hobeone/pepfeed/pep"
	"github.com/mmcdole/gofeed"
	"github.com/sirupsen/logrus"
)

// Newest returns up to n documents, most recently created first.  PEPs
// created on the same day are ordered by descending number.  docs is not
// modified.
func Newest(docs []*pep.Document, n int) []*pep.Document {
	sorted := make([]*pep.Document, len(docs))
	copy(sorted, docs)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if !a.Created.Equal(b.Created) {
			return a.Created.After(b.Created)
		}
		return a.Number > b.Number
	})
	if n >= 0 && len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

// Build makes the RSS channel for docs, in the order given.  now becomes
// the channel's lastBuildDate.
func Build(cfg config.FeedConfig, docs []*pep.Document, now time.Time) (*feeds.RssFeed, error) {
	f := &feeds.Feed{
		Title:       cfg.Title,
		Link:        &feeds.Link{Href: cfg.Link},
		Description: cfg.Description,
	}
	for _, d := range docs {
		if d.Created.IsZero() {
			return nil, fmt.Errorf("PEP %d has no creation date", d.Number)
		}
		url := d.URL(cfg.BaseURL)
		f.Add(&feeds.Item{
			Title:       fmt.Sprintf("PEP %d: %s", d.Number, d.Title),
			Link:        &feeds.Link{Href: url},
			Description: plainText(d.Abstract),
			Id:          url,
			Created:     d.Created,
		})
	}

	rss := (&feeds.Rss{Feed: f}).RssFeed()
	rss.Language = cfg.Language
	rss.Docs = cfg.Docs
	rss.Generator = "pepfeed"
	rss.LastBuildDate = FormatRFC2822(now)
	// pubDates use the GMT form, not gorilla/feeds' numeric zone.
	for i, item := range rss.Items {
		item.PubDate = FormatRFC2822(docs[i].Created)
		item.Author = strings.Join(docs[i].Authors, ", ")
	}
	return rss, nil
}

// Write encodes rss as an RSS 2.0 document.
func Write(w io.Writer, rss *feeds.RssFeed) error {
	return feeds.WriteXML(rss, w)
}

// Generate collects the PEPs named by cfg and writes the feed of the newest
// ones to w.
func Generate(ctx context.Context, cfg *config.Config, w io.Writer, now time.Time, logger logrus.FieldLogger) error {
	docs, err := Collect(ctx, cfg.PEPs.Root, CollectOptions{
		Workers:     cfg.PEPs.Workers,
		SkipInvalid: cfg.PEPs.SkipInvalid,
		Logger:      logger,
	})
	if err != nil {
		return err
	}

	rss, err := Build(cfg.Feed, Newest(docs, cfg.Feed.MaxItems), now)
	if err != nil {
		return err
	}
	return Write(w, rss)
}

// ParseFeed reads back an RSS or Atom document.
func ParseFeed(b []byte) (*gofeed.Feed, error) {
	return gofeed.NewParser().Parse(bytes.NewReader(b))
}
