// Package feed renders a user's podcasts as an RSS 2.0 document.
package feed

import (
	"fmt"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	"audiobrew/config"
	"audiobrew/internal/domain/entity"
	"audiobrew/internal/domain/service"

	"github.com/eduncan911/podcast"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const (
	defaultTitle       = "AudioBrew"
	defaultDescription = "Your inbox, brewed into audio."
	descriptionLimit   = 280
)

type rssRenderer struct {
	baseURL     string
	title       string
	description string
	now         func() time.Time
}

// NewRSSRenderer creates a FeedRenderer from the feed config section
func NewRSSRenderer(cfg *config.Config) service.FeedRenderer {
	r := &rssRenderer{
		title:       defaultTitle,
		description: defaultDescription,
		now:         time.Now,
	}

	if cfg.Feed != nil {
		r.baseURL = strings.TrimRight(cfg.Feed.BaseURL, "/")
		if cfg.Feed.Title != "" {
			r.title = cfg.Feed.Title
		}
		if cfg.Feed.Description != "" {
			r.description = cfg.Feed.Description
		}
	}

	return r
}

func (r *rssRenderer) RenderPodcastFeed(userID uuid.UUID, podcasts []*entity.Podcast) (string, error) {
	now := r.now()
	lastBuild := now
	if len(podcasts) > 0 {
		lastBuild = podcasts[0].CreatedAt
	}

	p := podcast.New(r.title, r.feedLink(userID), r.description, &now, &lastBuild)
	p.Generator = "AudioBrew"

	for _, pc := range podcasts {
		if pc.AudioURL == "" {
			continue
		}

		createdAt := pc.CreatedAt
		item := podcast.Item{
			Title:       pc.Title,
			Description: excerpt(pc.ScriptMarkdown, pc.Title),
			GUID:        pc.ID.String(),
		}
		item.AddPubDate(&createdAt)
		item.AddEnclosure(pc.AudioURL, podcast.MP3, 0)
		item.AddDuration(int64(pc.Duration))

		if _, err := p.AddItem(item); err != nil {
			return "", errors.Wrapf(err, "failed to add podcast %s to feed", pc.ID)
		}
	}

	return p.String(), nil
}

func (r *rssRenderer) feedLink(userID uuid.UUID) string {
	query := url.Values{"user_id": []string{userID.String()}}

	return fmt.Sprintf("%s/podcast/feed?%s", r.baseURL, query.Encode())
}

// excerpt returns the first descriptionLimit runes of script, or fallback when it is blank
func excerpt(script, fallback string) string {
	text := strings.Join(strings.Fields(script), " ")
	if text == "" {
		return fallback
	}
	if utf8.RuneCountInString(text) <= descriptionLimit {
		return text
	}

	return string([]rune(text)[:descriptionLimit]) + "..."
}
