package rss

import (
	"strings"
	"testing"
	"time"

	"github.com/mmcdole/gofeed"
)

const fixtureFeed = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
<channel>
	<title>"한화" - Google 뉴스</title>
	<item>
		<title>한화오션, 대형 수주 - 연합뉴스</title>
		<link>https://news.example.com/1</link>
		<pubDate>Mon, 25 Aug 2025 01:00:00 GMT</pubDate>
		<description>&lt;a href="https://news.example.com/1"&gt;한화오션, 대형 수주&lt;/a&gt;</description>
	</item>
	<item>
		<title>Hanwha expands solar output - Reuters</title>
		<link>https://news.example.com/2</link>
		<pubDate>Tue, 26 Aug 2025 02:30:00 GMT</pubDate>
		<description>&lt;b&gt;Hanwha&lt;/b&gt; expands solar output</description>
	</item>
</channel>
</rss>`

func parseFixture(t *testing.T) *gofeed.Feed {
	t.Helper()
	feed, err := gofeed.NewParser().ParseString(fixtureFeed)
	if err != nil {
		t.Fatalf("parse fixture: %v", err)
	}
	return feed
}

func TestSearchURLEncodesQueryPerLanguage(t *testing.T) {
	u, cfg, err := SearchURL("한화 에너지", "ko")
	if err != nil {
		t.Fatalf("SearchURL error: %v", err)
	}
	if !strings.Contains(u, "q=%ED%95%9C%ED%99%94+%EC%97%90%EB%84%88%EC%A7%80") {
		t.Fatalf("query not escaped: %s", u)
	}
	if !strings.Contains(u, "hl=ko") || !strings.Contains(u, "gl=KR") || !strings.Contains(u, "ceid=KR%3Ako") {
		t.Fatalf("language params missing: %s", u)
	}
	if cfg.TZ.String() != "KST" {
		t.Fatalf("timezone = %s, want KST", cfg.TZ)
	}
}

func TestSearchURLRejectsUnknownLanguage(t *testing.T) {
	if _, _, err := SearchURL("hanwha", "de"); err == nil {
		t.Fatal("expected error for unknown language")
	}
}

func TestArticlesFromFeedShapesAndSorts(t *testing.T) {
	articles := ArticlesFromFeed(parseFixture(t), time.UTC)
	if len(articles) != 2 {
		t.Fatalf("articles = %d, want 2", len(articles))
	}

	// Newest first regardless of feed order.
	if articles[0].Link != "https://news.example.com/2" {
		t.Fatalf("articles[0] = %+v, want the newer item first", articles[0])
	}

	if articles[0].Source != "Reuters" {
		t.Fatalf("Source = %q, want Reuters", articles[0].Source)
	}
	if articles[1].Source != "연합뉴스" {
		t.Fatalf("Source = %q, want 연합뉴스", articles[1].Source)
	}

	if strings.Contains(articles[1].Summary, "<") {
		t.Fatalf("Summary still contains markup: %q", articles[1].Summary)
	}
	if articles[1].Summary != "한화오션, 대형 수주" {
		t.Fatalf("Summary = %q", articles[1].Summary)
	}

	want := time.Date(2025, 8, 26, 2, 30, 0, 0, time.UTC)
	if !articles[0].PublishedAt.Equal(want) {
		t.Fatalf("PublishedAt = %v, want %v", articles[0].PublishedAt, want)
	}
}

func TestStripHTML(t *testing.T) {
	got := StripHTML(`  <p>text <a href="x">link</a></p> `)
	if got != "text link" {
		t.Fatalf("StripHTML = %q, want %q", got, "text link")
	}
}
