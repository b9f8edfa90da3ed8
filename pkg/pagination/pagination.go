package pagination

import (
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"
)

const (
	// DefaultLimit is the standard page size when a limit is not provided.
	DefaultLimit = 25
	// MaxLimit caps how many rows any list query can request.
	MaxLimit = 100
)

// ListParams holds the filter/sort/page state a list view was rendered for.
type ListParams struct {
	Page    int
	Limit   int
	Sort    string
	Filters map[string]string
}

// NormalizeLimit enforces the configured default and maximum limits.
func NormalizeLimit(limit int) int {
	if limit <= 0 {
		return DefaultLimit
	}
	if limit > MaxLimit {
		return MaxLimit
	}
	return limit
}

// NormalizePage clamps the page number to 1-based indexing.
func NormalizePage(page int) int {
	if page <= 0 {
		return 1
	}
	return page
}

// Normalize returns a copy with page and limit clamped and empty filters dropped.
func (p ListParams) Normalize() ListParams {
	out := ListParams{
		Page:  NormalizePage(p.Page),
		Limit: NormalizeLimit(p.Limit),
		Sort:  strings.TrimSpace(p.Sort),
	}
	for k, v := range p.Filters {
		if strings.TrimSpace(v) == "" {
			continue
		}
		if out.Filters == nil {
			out.Filters = map[string]string{}
		}
		out.Filters[strings.TrimSpace(k)] = strings.TrimSpace(v)
	}
	return out
}

// Key produces the canonical cache key for these parameters. Filter order
// does not matter: two param sets describing the same view share a key.
func (p ListParams) Key() string {
	n := p.Normalize()
	parts := []string{
		fmt.Sprintf("page=%d", n.Page),
		fmt.Sprintf("limit=%d", n.Limit),
	}
	if n.Sort != "" {
		parts = append(parts, "sort="+n.Sort)
	}
	filterKeys := make([]string, 0, len(n.Filters))
	for k := range n.Filters {
		filterKeys = append(filterKeys, k)
	}
	sort.Strings(filterKeys)
	for _, k := range filterKeys {
		parts = append(parts, k+"="+n.Filters[k])
	}
	return strings.Join(parts, "&")
}

// QueryValues encodes the parameters for the backend list endpoints.
func (p ListParams) QueryValues() url.Values {
	n := p.Normalize()
	values := url.Values{}
	values.Set("page", strconv.Itoa(n.Page))
	values.Set("limit", strconv.Itoa(n.Limit))
	if n.Sort != "" {
		values.Set("sort", n.Sort)
	}
	for k, v := range n.Filters {
		values.Set(k, v)
	}
	return values
}

// Page wraps a single list response the way the backend returns it.
type Page[T any] struct {
	Data       []T `json:"data"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
	Page       int `json:"page"`
}
