// Package exporter writes collected datasets into a multi-sheet workbook.
package exporter

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/minsu-kang/hanwha-trends/internal/newsroom"
	"github.com/minsu-kang/hanwha-trends/internal/twitter"
)

const (
	SheetPress   = "PressReleases"
	SheetSocial  = "SocialMedia"
	SheetTwitter = "Twitter"
)

var (
	pressHeader  = []any{"seq", "title", "category", "date", "link", "image_url", "hashtags"}
	socialHeader = []any{"seq", "platform", "title", "date", "link", "image_url", "hashtags"}
	tweetHeader  = []any{"tweet_id", "username", "display_name", "content", "created_at", "url",
		"like_count", "retweet_count", "reply_count", "quote_count"}
)

// WriteWorkbook writes the three sheets to path, creating parent directories
// as needed. Header rows are written even when a dataset is empty.
func WriteWorkbook(press []newsroom.PressItem, social []newsroom.SocialItem, tweets []twitter.Tweet, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := writeSheet(f, SheetPress, pressHeader, pressRows(press)); err != nil {
		return err
	}
	if err := writeSheet(f, SheetSocial, socialHeader, socialRows(social)); err != nil {
		return err
	}
	if err := writeSheet(f, SheetTwitter, tweetHeader, tweetRows(tweets)); err != nil {
		return err
	}

	// excelize creates a default "Sheet1"; rename it into the first sheet.
	if err := f.SetSheetName("Sheet1", SheetPress); err != nil {
		return fmt.Errorf("exporter: rename sheet: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("exporter: create output dir: %w", err)
		}
	}
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("exporter: save %s: %w", path, err)
	}
	return nil
}

func writeSheet(f *excelize.File, sheet string, header []any, rows [][]any) error {
	target := sheet
	if sheet == SheetPress {
		target = "Sheet1" // renamed at the end
	} else if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("exporter: new sheet %s: %w", sheet, err)
	}

	if err := f.SetSheetRow(target, "A1", &header); err != nil {
		return fmt.Errorf("exporter: write header of %s: %w", sheet, err)
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(target, cell, &row); err != nil {
			return fmt.Errorf("exporter: write row %d of %s: %w", i+2, sheet, err)
		}
	}
	return nil
}

func pressRows(items []newsroom.PressItem) [][]any {
	rows := make([][]any, 0, len(items))
	for _, it := range items {
		rows = append(rows, []any{
			it.Seq, it.Title, it.Category, it.Date, it.Link, it.ImageURL,
			strings.Join(it.Hashtags, ", "),
		})
	}
	return rows
}

func socialRows(items []newsroom.SocialItem) [][]any {
	rows := make([][]any, 0, len(items))
	for _, it := range items {
		rows = append(rows, []any{
			it.Seq, it.Platform, it.Title, it.Date, it.Link, it.ImageURL,
			strings.Join(it.Hashtags, ", "),
		})
	}
	return rows
}

func tweetRows(tweets []twitter.Tweet) [][]any {
	rows := make([][]any, 0, len(tweets))
	for _, t := range tweets {
		createdAt := ""
		if !t.CreatedAt.IsZero() {
			createdAt = t.CreatedAt.Format(time.RFC3339)
		}
		rows = append(rows, []any{
			t.ID, t.Username, t.DisplayName, t.Content, createdAt, t.URL,
			t.LikeCount, t.RetweetCount, t.ReplyCount, t.QuoteCount,
		})
	}
	return rows
}
