package newsroom

import (
	"fmt"
	"strconv"
	"strings"
)

// PressItem is one normalized press release. Immutable once built.
type PressItem struct {
	Seq      string   `json:"seq"`
	Title    string   `json:"title"`
	Category string   `json:"category"`
	Date     string   `json:"date"`
	Link     string   `json:"link"`
	ImageURL string   `json:"imageUrl,omitempty"` // empty means the entry carried no image
	Hashtags []string `json:"hashtags"`
}

// SocialItem is one normalized social feed post. Immutable once built.
type SocialItem struct {
	Seq      string   `json:"seq"`
	Platform string   `json:"platform"`
	Title    string   `json:"title"`
	Date     string   `json:"date"`
	Link     string   `json:"link"`
	ImageURL string   `json:"imageUrl,omitempty"`
	Hashtags []string `json:"hashtags"`
}

// NormalizeError reports one malformed raw entry. It carries the offending
// payload so the drop can be logged with full context; the surrounding page
// keeps processing.
type NormalizeError struct {
	Entry RawEntry
	Err   error
}

func (e *NormalizeError) Error() string {
	return fmt.Sprintf("normalize entry: %v (entry=%v)", e.Err, e.Entry)
}

func (e *NormalizeError) Unwrap() error {
	return e.Err
}

var crlfReplacer = strings.NewReplacer("\r", " ", "\n", " ")

// cleanText collapses CR/LF into spaces and trims the result.
func cleanText(s string) string {
	return strings.TrimSpace(crlfReplacer.Replace(s))
}

// resolveURL prefixes site-relative paths with the base origin.
func resolveURL(raw, baseURL string) string {
	if strings.HasPrefix(raw, "/") {
		return baseURL + raw
	}
	return raw
}

// scalarString stringifies a scalar field value. Missing values become the
// empty string; nested mappings or lists are a shape error.
func scalarString(v any) (string, error) {
	switch t := v.(type) {
	case nil:
		return "", nil
	case string:
		return t, nil
	case float64: // encoding/json decodes all numbers into float64
		return strconv.FormatFloat(t, 'f', -1, 64), nil
	case int:
		return strconv.Itoa(t), nil
	case int64:
		return strconv.FormatInt(t, 10), nil
	case bool:
		return strconv.FormatBool(t), nil
	default:
		return "", fmt.Errorf("unexpected type %T", v)
	}
}

func textField(m map[string]any, key string) (string, error) {
	s, err := scalarString(m[key])
	if err != nil {
		return "", fmt.Errorf("field %q: %w", key, err)
	}
	return s, nil
}

// subMap returns m[key] as a mapping. A missing or nil value yields nil,
// any other non-mapping value is a shape error.
func subMap(m map[string]any, key string) (map[string]any, error) {
	switch t := m[key].(type) {
	case nil:
		return nil, nil
	case map[string]any:
		return t, nil
	default:
		return nil, fmt.Errorf("field %q: unexpected type %T", key, m[key])
	}
}

// mediaFields is the part shared by press and social entries.
type mediaFields struct {
	seq      string
	title    string
	date     string
	link     string
	imageURL string
	hashtags []string
}

func normalizeMediaFields(entry RawEntry, baseURL string) (mediaFields, error) {
	var f mediaFields

	seq, err := textField(entry, "seq")
	if err != nil {
		return f, err
	}
	link, err := textField(entry, "link")
	if err != nil {
		return f, err
	}
	if seq == "" {
		seq = link // fall back to the raw link string as identifier
	}

	txt, err := subMap(entry, "txt")
	if err != nil {
		return f, err
	}
	title, err := textField(txt, "title")
	if err != nil {
		return f, err
	}
	date, err := textField(txt, "date")
	if err != nil {
		return f, err
	}

	// img is tolerated in any shape; only a mapping with a src contributes.
	var imageURL string
	if img, ok := entry["img"].(map[string]any); ok {
		if src, err := textField(img, "src"); err == nil && src != "" {
			imageURL = resolveURL(src, baseURL)
		}
	}

	hashtags, err := normalizeHashtags(entry)
	if err != nil {
		return f, err
	}

	f.seq = seq
	f.title = cleanText(title)
	f.date = cleanText(date)
	f.link = resolveURL(link, baseURL)
	f.imageURL = imageURL
	f.hashtags = hashtags
	return f, nil
}

// normalizeHashtags collects the sanitized title of every tag mapping,
// preserving order and duplicates. Non-mapping elements are skipped; a
// non-list hashtag field is a shape error.
func normalizeHashtags(entry RawEntry) ([]string, error) {
	raw := entry["hashtag"]
	if raw == nil {
		return nil, nil
	}
	list, ok := raw.([]any)
	if !ok {
		return nil, fmt.Errorf("field %q: unexpected type %T", "hashtag", raw)
	}

	var tags []string
	for _, el := range list {
		tag, ok := el.(map[string]any)
		if !ok {
			continue
		}
		title, err := textField(tag, "title")
		if err != nil {
			return nil, fmt.Errorf("hashtag %w", err)
		}
		if t := cleanText(title); t != "" {
			tags = append(tags, t)
		}
	}
	return tags, nil
}

// NormalizePressEntry projects one raw press entry into a PressItem.
// Missing fields default to empty values; wrong-type shapes come back as a
// *NormalizeError carrying the offending entry.
func NormalizePressEntry(entry RawEntry, baseURL string) (PressItem, error) {
	f, err := normalizeMediaFields(entry, baseURL)
	if err != nil {
		return PressItem{}, &NormalizeError{Entry: entry, Err: err}
	}

	txt, _ := subMap(entry, "txt") // shape already validated above
	category, err := textField(txt, "category")
	if err != nil {
		return PressItem{}, &NormalizeError{Entry: entry, Err: err}
	}
	if category == "" {
		if category, err = textField(entry, "type"); err != nil {
			return PressItem{}, &NormalizeError{Entry: entry, Err: err}
		}
	}

	return PressItem{
		Seq:      f.seq,
		Title:    f.title,
		Category: cleanText(category),
		Date:     f.date,
		Link:     f.link,
		ImageURL: f.imageURL,
		Hashtags: f.hashtags,
	}, nil
}

// NormalizeSocialEntry projects one raw social feed entry into a SocialItem.
func NormalizeSocialEntry(entry RawEntry, baseURL string) (SocialItem, error) {
	f, err := normalizeMediaFields(entry, baseURL)
	if err != nil {
		return SocialItem{}, &NormalizeError{Entry: entry, Err: err}
	}

	platform, err := textField(entry, "social")
	if err != nil {
		return SocialItem{}, &NormalizeError{Entry: entry, Err: err}
	}
	if platform == "" {
		if platform, err = textField(entry, "type"); err != nil {
			return SocialItem{}, &NormalizeError{Entry: entry, Err: err}
		}
	}

	return SocialItem{
		Seq:      f.seq,
		Platform: cleanText(platform),
		Title:    f.title,
		Date:     f.date,
		Link:     f.link,
		ImageURL: f.imageURL,
		Hashtags: f.hashtags,
	}, nil
}
