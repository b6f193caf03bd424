package feed

import (
	"encoding/xml"
	"strings"
	"testing"
	"time"

	"audiobrew/config"
	"audiobrew/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type rssDoc struct {
	Channel struct {
		Title string `xml:"title"`
		Link  string `xml:"link"`
		Items []struct {
			Title     string `xml:"title"`
			GUID      string `xml:"guid"`
			Enclosure struct {
				URL  string `xml:"url,attr"`
				Type string `xml:"type,attr"`
			} `xml:"enclosure"`
		} `xml:"item"`
	} `xml:"channel"`
}

func newTestRenderer() *rssRenderer {
	r := NewRSSRenderer(&config.Config{Feed: &config.FeedConfig{BaseURL: "https://api.audiobrew.app/", Title: "My Brew"}}).(*rssRenderer)
	r.now = func() time.Time { return time.Date(2025, 3, 7, 12, 0, 0, 0, time.UTC) }

	return r
}

func TestRSSRenderer_RenderPodcastFeed(t *testing.T) {
	userID := uuid.New()
	podcasts := []*entity.Podcast{
		{
			ID:             uuid.New(),
			UserID:         userID,
			Title:          "Morning Digest",
			ScriptMarkdown: "Welcome to AudioBrew.\n\nToday we cover three stories.",
			AudioURL:       "https://project.supabase.co/storage/v1/object/public/podcasts/a.mp3",
			Duration:       125,
			CreatedAt:      time.Date(2025, 3, 7, 9, 30, 0, 0, time.UTC),
		},
		{
			ID:        uuid.New(),
			UserID:    userID,
			Title:     "Missing Audio",
			CreatedAt: time.Date(2025, 3, 6, 9, 30, 0, 0, time.UTC),
		},
	}

	out, err := newTestRenderer().RenderPodcastFeed(userID, podcasts)
	require.NoError(t, err)

	var doc rssDoc
	require.NoError(t, xml.Unmarshal([]byte(out), &doc))

	assert.Equal(t, "My Brew", doc.Channel.Title)
	assert.Equal(t, "https://api.audiobrew.app/podcast/feed?user_id="+userID.String(), doc.Channel.Link)
	require.Len(t, doc.Channel.Items, 1)
	assert.Equal(t, "Morning Digest", doc.Channel.Items[0].Title)
	assert.Equal(t, podcasts[0].ID.String(), doc.Channel.Items[0].GUID)
	assert.Equal(t, podcasts[0].AudioURL, doc.Channel.Items[0].Enclosure.URL)
	assert.Equal(t, "audio/mpeg", doc.Channel.Items[0].Enclosure.Type)
	assert.Contains(t, out, "itunes:duration")
}

func TestRSSRenderer_EmptyFeed(t *testing.T) {
	out, err := newTestRenderer().RenderPodcastFeed(uuid.New(), nil)
	require.NoError(t, err)

	var doc rssDoc
	require.NoError(t, xml.Unmarshal([]byte(out), &doc))
	assert.Empty(t, doc.Channel.Items)
}

func TestExcerpt(t *testing.T) {
	assert.Equal(t, "fallback", excerpt("  \n ", "fallback"))
	assert.Equal(t, "a b c", excerpt("a\n\nb   c", "fallback"))

	long := strings.Repeat("ü", descriptionLimit+10)
	got := excerpt(long, "")
	assert.True(t, strings.HasSuffix(got, "..."))
	assert.Equal(t, descriptionLimit+3, len([]rune(got)))
}
