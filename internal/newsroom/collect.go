package newsroom

import (
	"context"
	"iter"
	"log"
)

// PageFunc fetches one 1-indexed page of raw entries.
type PageFunc func(page int) (*PageResponse, error)

// collectEntries walks pages strictly one at a time, starting at page 1, and
// yields raw entries in page order then entry order. The walk ends on the
// first of:
//   - maxPages pages have been retrieved (maxPages <= 0 means unbounded),
//   - the fetch returns an empty response,
//   - the page carries no entries,
//   - the next page number would exceed the reported latestTotalPage.
//
// A fetch error is yielded once and terminates the walk. Each call owns its
// own counters; the returned sequence is finite and not restartable.
func collectEntries(fetch PageFunc, maxPages int) iter.Seq2[RawEntry, error] {
	return func(yield func(RawEntry, error) bool) {
		page := 1
		pagesRetrieved := 0

		for {
			if maxPages > 0 && pagesRetrieved >= maxPages {
				return
			}

			resp, err := fetch(page)
			if err != nil {
				yield(nil, err)
				return
			}
			if resp == nil {
				return
			}
			if len(resp.News) == 0 {
				return
			}
			pagesRetrieved++

			for _, entry := range resp.News {
				if !yield(entry, nil) {
					return
				}
			}

			page++
			if resp.LatestTotalPage != nil && page > *resp.LatestTotalPage {
				return
			}
		}
	}
}

// PressReleases yields normalized press releases across pages. Entries that
// fail normalization are logged and dropped; the page keeps processing.
// A transport error is yielded once (with a zero item) and ends the sequence.
func (c *Client) PressReleases(ctx context.Context, maxPages int) iter.Seq2[PressItem, error] {
	fetch := func(page int) (*PageResponse, error) {
		log.Printf("newsroom: fetch %s page %d", CategoryPress, page)
		return c.FetchMediaPage(ctx, CategoryPress, page)
	}
	return func(yield func(PressItem, error) bool) {
		for entry, err := range collectEntries(fetch, maxPages) {
			if err != nil {
				yield(PressItem{}, err)
				return
			}
			item, nerr := NormalizePressEntry(entry, c.baseURL)
			if nerr != nil {
				log.Printf("newsroom: drop press entry: %v", nerr)
				continue
			}
			if !yield(item, nil) {
				return
			}
		}
	}
}

// SocialPosts yields normalized social feed posts across pages, with the
// same pagination and error semantics as PressReleases.
func (c *Client) SocialPosts(ctx context.Context, maxPages int) iter.Seq2[SocialItem, error] {
	fetch := func(page int) (*PageResponse, error) {
		log.Printf("newsroom: fetch %s page %d", CategorySocial, page)
		return c.FetchMediaPage(ctx, CategorySocial, page)
	}
	return func(yield func(SocialItem, error) bool) {
		for entry, err := range collectEntries(fetch, maxPages) {
			if err != nil {
				yield(SocialItem{}, err)
				return
			}
			item, nerr := NormalizeSocialEntry(entry, c.baseURL)
			if nerr != nil {
				log.Printf("newsroom: drop social entry: %v", nerr)
				continue
			}
			if !yield(item, nil) {
				return
			}
		}
	}
}

// CollectPress gathers the press sequence into a slice. On a transport error
// it returns the items collected so far together with the error.
func (c *Client) CollectPress(ctx context.Context, maxPages int) ([]PressItem, error) {
	var items []PressItem
	for item, err := range c.PressReleases(ctx, maxPages) {
		if err != nil {
			return items, err
		}
		items = append(items, item)
	}
	return items, nil
}

// CollectSocial gathers the social sequence into a slice.
func (c *Client) CollectSocial(ctx context.Context, maxPages int) ([]SocialItem, error) {
	var items []SocialItem
	for item, err := range c.SocialPosts(ctx, maxPages) {
		if err != nil {
			return items, err
		}
		items = append(items, item)
	}
	return items, nil
}

// FetchPressPage returns the normalized items of a single press page.
func (c *Client) FetchPressPage(ctx context.Context, page int) ([]PressItem, error) {
	resp, err := c.FetchMediaPage(ctx, CategoryPress, page)
	if err != nil {
		return nil, err
	}
	items := make([]PressItem, 0, len(resp.News))
	for _, entry := range resp.News {
		item, nerr := NormalizePressEntry(entry, c.baseURL)
		if nerr != nil {
			log.Printf("newsroom: drop press entry: %v", nerr)
			continue
		}
		items = append(items, item)
	}
	return items, nil
}

// FetchSocialPage returns the normalized items of a single social page.
func (c *Client) FetchSocialPage(ctx context.Context, page int) ([]SocialItem, error) {
	resp, err := c.FetchMediaPage(ctx, CategorySocial, page)
	if err != nil {
		return nil, err
	}
	items := make([]SocialItem, 0, len(resp.News))
	for _, entry := range resp.News {
		item, nerr := NormalizeSocialEntry(entry, c.baseURL)
		if nerr != nil {
			log.Printf("newsroom: drop social entry: %v", nerr)
			continue
		}
		items = append(items, item)
	}
	return items, nil
}
