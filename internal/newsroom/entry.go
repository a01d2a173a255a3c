package newsroom

// RawEntry is one raw record as returned by the newsroom API. It is loosely
// typed on purpose: the shape is owned by the remote API and must not leak
// past the normalizer boundary.
type RawEntry map[string]any

// PageResponse is the JSON body of one media list page.
// LatestTotalPage is nil when the API does not report a page count.
type PageResponse struct {
	News            []RawEntry `json:"news"`
	LatestTotalPage *int       `json:"latestTotalPage"`
}
