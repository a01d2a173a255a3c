// Package twitter scrapes public account timelines without API keys, going
// through open mirror frontends. Best effort: a failing mirror falls through
// to the next one, and an account that cannot be read yields zero tweets
// rather than an error.
package twitter

import (
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/gocolly/colly/v2"
)

const (
	DefaultLimit   = 20
	requestTimeout = 10 * time.Second

	// Mirror timestamps look like "Jan 2, 2006 · 3:04 PM UTC".
	timeLayout = "Jan 2, 2006 · 3:04 PM MST"
)

// mirrorHosts are tried in order until one returns tweets.
var mirrorHosts = []string{
	"nitter.net",
	"nitter.poast.org",
	"nitter.privacydev.net",
}

// Tweet is one scraped post.
type Tweet struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	DisplayName  string    `json:"displayName"`
	Content      string    `json:"content"`
	CreatedAt    time.Time `json:"createdAt"`
	URL          string    `json:"url"`
	LikeCount    int       `json:"likeCount"`
	RetweetCount int       `json:"retweetCount"`
	ReplyCount   int       `json:"replyCount"`
	QuoteCount   int       `json:"quoteCount"`
}

// Scraper reads public timelines through the mirror hosts.
type Scraper struct {
	hosts []string
}

func NewScraper() *Scraper {
	return &Scraper{hosts: mirrorHosts}
}

// UserTweets returns up to limit recent tweets for a username (without @).
func (s *Scraper) UserTweets(username string, limit int) ([]Tweet, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}

	for _, host := range s.hosts {
		tweets := s.fetchFromHost(host, username, limit)
		if len(tweets) > 0 {
			return tweets, nil
		}
	}

	log.Printf("twitter: got 0 tweets for @%s", username)
	return nil, nil
}

func (s *Scraper) fetchFromHost(host, username string, limit int) []Tweet {
	c := colly.NewCollector(
		colly.AllowedDomains(host),
		colly.UserAgent("HanwhaTrendsBot/1.0"),
	)
	c.SetRequestTimeout(requestTimeout)

	tweets := make([]Tweet, 0, limit)

	c.OnHTML("div.timeline-item", func(e *colly.HTMLElement) {
		if len(tweets) >= limit {
			return
		}
		// Skip retweet/pin headers without a permalink.
		href := e.ChildAttr("a.tweet-link", "href")
		if href == "" {
			return
		}

		id := tweetIDFromPath(href)
		if id == "" {
			return
		}

		name := strings.TrimSpace(e.ChildText("a.fullname"))
		handle := strings.TrimPrefix(strings.TrimSpace(e.ChildText("a.username")), "@")
		if handle == "" {
			handle = username
		}

		createdAt := time.Time{}
		if ts := e.ChildAttr("span.tweet-date a", "title"); ts != "" {
			if t, err := time.Parse(timeLayout, ts); err == nil {
				createdAt = t
			}
		}

		t := Tweet{
			ID:          id,
			Username:    handle,
			DisplayName: name,
			Content:     strings.TrimSpace(e.ChildText("div.tweet-content")),
			CreatedAt:   createdAt,
			URL:         fmt.Sprintf("https://twitter.com/%s/status/%s", handle, id),
		}
		fillStats(&t, e)

		tweets = append(tweets, t)
	})

	url := fmt.Sprintf("https://%s/%s", host, username)
	if err := c.Visit(url); err != nil {
		log.Printf("twitter: visit %s failed: %v", url, err)
		return nil
	}
	return tweets
}

// fillStats reads the reply/retweet/quote/like counters from the stats bar.
func fillStats(t *Tweet, e *colly.HTMLElement) {
	e.DOM.Find("span.tweet-stat").Each(func(_ int, sel *goquery.Selection) {
		n := parseCount(sel.Text())
		switch {
		case sel.Find("span.icon-comment").Length() > 0:
			t.ReplyCount = n
		case sel.Find("span.icon-retweet").Length() > 0:
			t.RetweetCount = n
		case sel.Find("span.icon-quote").Length() > 0:
			t.QuoteCount = n
		case sel.Find("span.icon-heart").Length() > 0:
			t.LikeCount = n
		}
	})
}

// tweetIDFromPath extracts the status ID from a "/user/status/123#m" path.
func tweetIDFromPath(path string) string {
	const marker = "/status/"
	idx := strings.Index(path, marker)
	if idx < 0 {
		return ""
	}
	id := path[idx+len(marker):]
	if cut := strings.IndexAny(id, "#?/"); cut >= 0 {
		id = id[:cut]
	}
	return id
}

func parseCount(s string) int {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", ""))
	if s == "" {
		return 0
	}
	end := 0
	for ; end < len(s); end++ {
		if s[end] < '0' || s[end] > '9' {
			break
		}
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0
	}
	return n
}
