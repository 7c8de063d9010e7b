package search

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// FactsHeader opens the formatted block injected into the system prompt.
const FactsHeader = "FAKTA TERBARU DARI INTERNET:"

// Fetcher produces a plain-text facts block for a query. An empty string
// means "no enrichment available"; callers treat errors as log-only.
type Fetcher interface {
	Search(ctx context.Context, query string) (string, error)
}

type Result struct {
	Title   string
	Snippet string
}

// DuckDuckGo queries the static html endpoint, no JS rendering needed.
type DuckDuckGo struct {
	baseURL    string
	region     string
	maxResults int
	client     *http.Client
}

func NewDuckDuckGo(region string, maxResults int) *DuckDuckGo {
	return &DuckDuckGo{
		baseURL:    "https://html.duckduckgo.com/html/",
		region:     region,
		maxResults: maxResults,
		client:     &http.Client{Timeout: 10 * time.Second},
	}
}

// NewDuckDuckGoWithBaseURL exists for tests that serve canned result pages.
func NewDuckDuckGoWithBaseURL(baseURL, region string, maxResults int) *DuckDuckGo {
	d := NewDuckDuckGo(region, maxResults)
	d.baseURL = baseURL
	return d
}

// Search returns the formatted facts block, or "" when the engine yields
// nothing or the call fails.
func (d *DuckDuckGo) Search(ctx context.Context, query string) (string, error) {
	results, err := d.queryWeb(ctx, query)
	if err != nil {
		return "", err
	}
	return Format(results), nil
}

func (d *DuckDuckGo) queryWeb(ctx context.Context, query string) ([]Result, error) {
	params := url.Values{}
	params.Add("q", query)
	params.Add("kl", d.region)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, d.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "Mozilla/5.0")

	resp, err := d.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("bad status: %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, err
	}

	var results []Result
	doc.Find(".result__body").EachWithBreak(func(i int, s *goquery.Selection) bool {
		if len(results) >= d.maxResults {
			return false
		}
		titleSel := s.Find(".result__title a")
		snippetSel := s.Find(".result__snippet")
		if titleSel.Length() == 0 || snippetSel.Length() == 0 {
			return true
		}

		title := strings.TrimSpace(titleSel.Text())
		snippet := flattenHTML(snippetSel)
		if title == "" || snippet == "" {
			return true
		}

		results = append(results, Result{Title: title, Snippet: snippet})
		return true
	})

	return results, nil
}

// flattenHTML collapses a snippet selection to plain text. DuckDuckGo
// wraps matched terms in <b> tags.
func flattenHTML(sel *goquery.Selection) string {
	raw, err := sel.Html()
	if err != nil {
		return strings.TrimSpace(sel.Text())
	}
	doc, err := html.Parse(strings.NewReader(raw))
	if err != nil {
		return strings.TrimSpace(sel.Text())
	}

	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return strings.Join(strings.Fields(sb.String()), " ")
}

// Format renders results as the numbered facts block. Empty input means
// empty output, never a header with no lines under it.
func Format(results []Result) string {
	if len(results) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.WriteString(FactsHeader)
	for i, r := range results {
		sb.WriteString(fmt.Sprintf("\n%d. %s - %s", i+1, r.Title, r.Snippet))
	}
	return sb.String()
}
