package songs

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/strrl/socialgen/internal/ai"
	"github.com/strrl/socialgen/internal/metrics"
	"github.com/strrl/socialgen/internal/output"
	"golang.org/x/sync/singleflight"
)

const (
	dayLayout         = "2006-01-02"
	fetchTemperature  = 0.5
	songsSystemPrompt = "You are a music trend expert. Output only valid JSON."
)

type Options struct {
	Model  string
	Logger logrus.FieldLogger
	Clock  func() time.Time
}

// Cache serves one trending-songs list per calendar day of its clock.
type Cache struct {
	client ai.Completer
	store  Store
	model  string
	log    logrus.FieldLogger
	now    func() time.Time
	group  singleflight.Group
}

func NewCache(client ai.Completer, store Store, opts Options) *Cache {
	if opts.Model == "" {
		opts.Model = ai.DefaultModels().Search
	}
	if opts.Logger == nil {
		opts.Logger = logrus.StandardLogger()
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	return &Cache{
		client: client,
		store:  store,
		model:  opts.Model,
		log:    opts.Logger.WithField("component", "song_cache"),
		now:    opts.Clock,
	}
}

// TodaysSongs never fails: errors degrade to the static list. The result
// always holds at least MinSongs entries.
func (c *Cache) TodaysSongs(ctx context.Context) []Song {
	_, list := c.Today(ctx)
	return list
}

// Today returns the day key together with the list served for it, both
// taken from a single clock reading.
func (c *Cache) Today(ctx context.Context) (string, []Song) {
	now := c.now()
	day := now.Format(dayLayout)

	if err := c.store.PurgeExcept(ctx, day); err != nil {
		c.log.WithError(err).Warn("failed to purge stale song lists")
	}

	list, ok, err := c.store.Load(ctx, day)
	if err != nil {
		c.log.WithError(err).Warn("failed to read cached songs")
	}
	if ok && len(list) > 0 {
		metrics.SongCache.WithLabelValues(metrics.CacheHit).Inc()
		return day, pad(list)
	}

	// The shared fetch must outlive any single caller; each caller only
	// stops waiting on its own cancellation.
	fetchCtx := context.WithoutCancel(ctx)
	ch := c.group.DoChan(day, func() (any, error) {
		if list, ok, err := c.store.Load(fetchCtx, day); err == nil && ok && len(list) > 0 {
			return list, nil
		}
		return c.refresh(fetchCtx, now, day), nil
	})

	select {
	case res := <-ch:
		return day, append([]Song(nil), res.Val.([]Song)...)
	case <-ctx.Done():
		c.log.WithError(ctx.Err()).Debug("caller left before songs were fetched")
		return day, Fallback()
	}
}

// Warm fetches today's list if it is not cached yet.
func (c *Cache) Warm(ctx context.Context) {
	day, list := c.Today(ctx)
	c.log.WithFields(logrus.Fields{"day": day, "songs": len(list)}).Info("song cache warmed")
}

func (c *Cache) refresh(ctx context.Context, now time.Time, day string) []Song {
	fresh, err := c.fetch(ctx, now)
	if err != nil {
		c.log.WithError(err).Warn("using fallback songs")
		metrics.SongCache.WithLabelValues(metrics.CacheFallback).Inc()
		return Fallback()
	}

	metrics.SongCache.WithLabelValues(metrics.CacheMiss).Inc()
	list := pad(fresh)
	if err := c.store.Save(ctx, day, list); err != nil {
		c.log.WithError(err).Warn("failed to persist songs")
	}
	return list
}

func (c *Cache) fetch(ctx context.Context, now time.Time) ([]Song, error) {
	raw, err := c.client.Complete(ctx, ai.Request{
		Model: c.model,
		Messages: []ai.Message{
			ai.SystemMessage(songsSystemPrompt),
			ai.UserMessage(buildPrompt(now)),
		},
		Temperature: fetchTemperature,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch trending songs: %w", err)
	}

	return parseSongs(raw)
}

func buildPrompt(now time.Time) string {
	return fmt.Sprintf(`Context: Today is %s.
List %d currently trending songs on Instagram Reels and TikTok as of today.
Return strictly a JSON array of objects with 'title' and 'artist'.
Do NOT include markdown. Do NOT include images.

Example:
[{"title": "Song A", "artist": "Artist A"}, {"title": "Song B", "artist": "Artist B"}]`,
		now.Format("Monday, January 2, 2006"), MinSongs)
}

func parseSongs(raw string) ([]Song, error) {
	var decoded []Song
	if err := json.Unmarshal([]byte(output.StripFences(raw)), &decoded); err != nil {
		return nil, fmt.Errorf("%w: %v", output.ErrParse, err)
	}

	list := make([]Song, 0, len(decoded))
	for _, song := range decoded {
		song.Title = strings.TrimSpace(song.Title)
		song.Artist = strings.TrimSpace(song.Artist)
		if song.Title == "" {
			continue
		}
		list = append(list, song)
	}
	if len(list) == 0 {
		return nil, fmt.Errorf("%w: no songs in response", output.ErrParse)
	}
	return list, nil
}
