package newsroom

import (
	"errors"
	"strings"
	"testing"
)

func TestNormalizePressEntryFullShape(t *testing.T) {
	entry := RawEntry{
		"seq": float64(1024), // json numbers decode as float64
		"txt": map[string]any{
			"title":    "한화그룹,\r\n신규 투자 발표  ",
			"category": "Press Release",
			"date":     "2025.08.01",
		},
		"link": "/media/news/1024",
		"img":  map[string]any{"src": "/images/news/1024.jpg"},
		"hashtag": []any{
			map[string]any{"title": "#한화"},
			map[string]any{"title": "#한화"}, // duplicates preserved
			map[string]any{"title": "#투자\n확대"},
		},
	}

	item, err := NormalizePressEntry(entry, BaseURL)
	if err != nil {
		t.Fatalf("NormalizePressEntry error: %v", err)
	}

	if item.Seq != "1024" {
		t.Fatalf("Seq = %q, want %q", item.Seq, "1024")
	}
	// \r and \n are each replaced by one space, so \r\n leaves two.
	if item.Title != "한화그룹,  신규 투자 발표" {
		t.Fatalf("Title = %q", item.Title)
	}
	if item.Category != "Press Release" {
		t.Fatalf("Category = %q", item.Category)
	}
	if item.Date != "2025.08.01" {
		t.Fatalf("Date = %q", item.Date)
	}
	if item.Link != BaseURL+"/media/news/1024" {
		t.Fatalf("Link = %q", item.Link)
	}
	if item.ImageURL != BaseURL+"/images/news/1024.jpg" {
		t.Fatalf("ImageURL = %q", item.ImageURL)
	}
	want := []string{"#한화", "#한화", "#투자 확대"}
	if len(item.Hashtags) != len(want) {
		t.Fatalf("Hashtags = %v, want %v", item.Hashtags, want)
	}
	for i := range want {
		if item.Hashtags[i] != want[i] {
			t.Fatalf("Hashtags[%d] = %q, want %q", i, item.Hashtags[i], want[i])
		}
	}
}

func TestNormalizePressEntryMissingTxtDefaultsToEmpty(t *testing.T) {
	entry := RawEntry{
		"seq":  "42",
		"link": "https://example.com/a",
	}

	item, err := NormalizePressEntry(entry, BaseURL)
	if err != nil {
		t.Fatalf("NormalizePressEntry error: %v", err)
	}
	if item.Title != "" || item.Category != "" || item.Date != "" {
		t.Fatalf("expected empty text fields, got %+v", item)
	}
	if item.Link != "https://example.com/a" {
		t.Fatalf("absolute link should pass through unchanged, got %q", item.Link)
	}
	if item.ImageURL != "" {
		t.Fatalf("absent image should yield no value, got %q", item.ImageURL)
	}
}

func TestNormalizeNeverEmitsEmbeddedNewlines(t *testing.T) {
	entry := RawEntry{
		"seq": "7",
		"txt": map[string]any{"title": "line1\rline2\nline3"},
		"hashtag": []any{
			map[string]any{"title": "tag\r\nbroken"},
		},
	}

	item, err := NormalizePressEntry(entry, BaseURL)
	if err != nil {
		t.Fatalf("NormalizePressEntry error: %v", err)
	}
	if strings.ContainsAny(item.Title, "\r\n") {
		t.Fatalf("Title contains newline: %q", item.Title)
	}
	for _, h := range item.Hashtags {
		if strings.ContainsAny(h, "\r\n") {
			t.Fatalf("hashtag contains newline: %q", h)
		}
	}
}

func TestNormalizeSeqFallsBackToLink(t *testing.T) {
	entry := RawEntry{
		"txt":  map[string]any{"title": "no seq"},
		"link": "/media/news/fallback",
	}

	item, err := NormalizePressEntry(entry, BaseURL)
	if err != nil {
		t.Fatalf("NormalizePressEntry error: %v", err)
	}
	// The raw link string is the identifier, not the resolved one.
	if item.Seq != "/media/news/fallback" {
		t.Fatalf("Seq = %q, want raw link fallback", item.Seq)
	}
}

func TestNormalizeWrongShapesFail(t *testing.T) {
	cases := []struct {
		name  string
		entry RawEntry
	}{
		{"txt is a string", RawEntry{"txt": "not a mapping"}},
		{"title is a mapping", RawEntry{"txt": map[string]any{"title": map[string]any{}}}},
		{"link is a list", RawEntry{"link": []any{"x"}}},
		{"hashtag is a string", RawEntry{"hashtag": "#tag"}},
	}

	for _, tc := range cases {
		_, err := NormalizePressEntry(tc.entry, BaseURL)
		if err == nil {
			t.Fatalf("%s: expected error", tc.name)
		}
		var nerr *NormalizeError
		if !errors.As(err, &nerr) {
			t.Fatalf("%s: error type = %T, want *NormalizeError", tc.name, err)
		}
		if nerr.Entry == nil {
			t.Fatalf("%s: NormalizeError should carry the offending entry", tc.name)
		}
	}
}

func TestNormalizeToleratesNonMappingImg(t *testing.T) {
	entry := RawEntry{
		"seq": "9",
		"img": "not a mapping",
	}

	item, err := NormalizePressEntry(entry, BaseURL)
	if err != nil {
		t.Fatalf("NormalizePressEntry error: %v", err)
	}
	if item.ImageURL != "" {
		t.Fatalf("ImageURL = %q, want empty", item.ImageURL)
	}
}

func TestNormalizeSocialEntryPlatform(t *testing.T) {
	entry := RawEntry{
		"seq":    "11",
		"social": "instagram",
		"txt":    map[string]any{"title": "behind the scenes"},
		"link":   "/media/social/11",
	}

	item, err := NormalizeSocialEntry(entry, BaseURL)
	if err != nil {
		t.Fatalf("NormalizeSocialEntry error: %v", err)
	}
	if item.Platform != "instagram" {
		t.Fatalf("Platform = %q", item.Platform)
	}
	if item.Link != BaseURL+"/media/social/11" {
		t.Fatalf("relative social link should resolve, got %q", item.Link)
	}

	// Falls back to the type field when social is absent.
	delete(entry, "social")
	entry["type"] = "youtube"
	item, err = NormalizeSocialEntry(entry, BaseURL)
	if err != nil {
		t.Fatalf("NormalizeSocialEntry error: %v", err)
	}
	if item.Platform != "youtube" {
		t.Fatalf("Platform fallback = %q, want %q", item.Platform, "youtube")
	}
}

func TestNormalizeSanitizesCategoryAndPlatform(t *testing.T) {
	entry := RawEntry{
		"seq": "13",
		"txt": map[string]any{"category": " Press\r\nRelease "},
	}
	item, err := NormalizePressEntry(entry, BaseURL)
	if err != nil {
		t.Fatalf("NormalizePressEntry error: %v", err)
	}
	if item.Category != "Press  Release" {
		t.Fatalf("Category = %q, want sanitized", item.Category)
	}

	social := RawEntry{
		"seq":    "14",
		"social": "insta\ngram",
	}
	sitem, err := NormalizeSocialEntry(social, BaseURL)
	if err != nil {
		t.Fatalf("NormalizeSocialEntry error: %v", err)
	}
	if sitem.Platform != "insta gram" {
		t.Fatalf("Platform = %q, want sanitized", sitem.Platform)
	}
}

func TestNormalizeSkipsNonMappingHashtagElements(t *testing.T) {
	entry := RawEntry{
		"seq": "12",
		"hashtag": []any{
			"just a string",
			map[string]any{"title": "#valid"},
			map[string]any{"title": ""},
		},
	}

	item, err := NormalizePressEntry(entry, BaseURL)
	if err != nil {
		t.Fatalf("NormalizePressEntry error: %v", err)
	}
	if len(item.Hashtags) != 1 || item.Hashtags[0] != "#valid" {
		t.Fatalf("Hashtags = %v, want only #valid", item.Hashtags)
	}
}
