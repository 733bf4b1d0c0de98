package provider

import (
	"bytes"
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/ZaguanLabs/gotrans"
	"golang.org/x/net/html"
)

// DefaultBingURL is the dictionary hover endpoint.
const DefaultBingURL = "http://cn.bing.com/dict/SerpHoverTrans"

// Markup of the SerpHoverTrans fragment. Upstream layout changes only need
// to be reflected here.
const (
	bingPhoneticSelector     = "span.ht_attr[lang]"
	bingPartOfSpeechSelector = "span.ht_pos"
	bingMeaningSelector      = "span.ht_trs"
)

// BingProvider scrapes the Bing dictionary hover card.
type BingProvider struct {
	client  *http.Client
	baseURL string
	headers http.Header
}

// BingConfig holds configuration for the Bing provider.
type BingConfig struct {
	BaseURL    string       // Endpoint override (default: DefaultBingURL)
	HTTPClient *http.Client // HTTP client (default: http.DefaultClient)
}

// NewBingProvider creates a new Bing provider.
func NewBingProvider(cfg BingConfig) *BingProvider {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBingURL
	}

	headers := make(http.Header)
	headers.Set("User-Agent", desktopUserAgent)
	headers.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	headers.Set("Accept-Language", "en-US,en;q=0.5")

	return &BingProvider{
		client:  clientOrDefault(cfg.HTTPClient),
		baseURL: baseURL,
		headers: headers,
	}
}

// Name returns "bing".
func (p *BingProvider) Name() string {
	return EngineBing
}

// Translate looks text up in the hover dictionary. The endpoint is not
// language aware, so sourceLang and targetLang are ignored.
func (p *BingProvider) Translate(ctx context.Context, text, _, _ string) (*gotrans.Translation, error) {
	endpoint, err := url.Parse(p.baseURL)
	if err != nil {
		return nil, &gotrans.RequestBuildError{Engine: EngineBing, Message: "invalid endpoint", Cause: err}
	}
	query := endpoint.Query()
	query.Set("q", text)
	endpoint.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, &gotrans.RequestBuildError{Engine: EngineBing, Message: "creating request", Cause: err}
	}
	req.Header = p.headers.Clone()

	body, err := fetch(p.client, EngineBing, req)
	if err != nil {
		return nil, err
	}

	root, err := html.Parse(bytes.NewReader(body))
	if err != nil {
		return nil, &gotrans.DecodeError{Engine: EngineBing, Message: "parsing HTML", Cause: err}
	}
	doc := goquery.NewDocumentFromNode(root)

	phonetic, err := bingPhonetic(doc)
	if err != nil {
		return nil, err
	}

	return &gotrans.Translation{
		Text:     text,
		Engine:   EngineBing,
		Phonetic: gotrans.StringPtr(phonetic),
		Explains: bingExplains(doc),
	}, nil
}

// bingPhonetic returns the bracketed pronunciation, without the brackets.
// The marker is required: its absence means the page is not a hover card.
func bingPhonetic(doc *goquery.Document) (string, error) {
	marker := doc.Find(bingPhoneticSelector).First()
	if marker.Length() == 0 {
		return "", &gotrans.DecodeError{Engine: EngineBing, Message: "phonetic marker not found"}
	}

	raw := strings.TrimSpace(marker.Text())
	if !strings.HasPrefix(raw, "[") || !strings.HasSuffix(raw, "]") {
		return "", &gotrans.DecodeError{Engine: EngineBing, Message: "malformed phonetic marker " + raw}
	}
	return strings.TrimSpace(raw[1 : len(raw)-1]), nil
}

// bingExplains pairs every part-of-speech marker with the meaning that
// immediately follows it, in document order.
func bingExplains(doc *goquery.Document) []string {
	explains := []string{}
	doc.Find(bingPartOfSpeechSelector).Each(func(_ int, pos *goquery.Selection) {
		meaning := pos.Next()
		if !meaning.Is(bingMeaningSelector) {
			return
		}
		explains = append(explains, pos.Text()+meaning.Text())
	})
	return explains
}

// Verify BingProvider implements Backend
var _ Backend = (*BingProvider)(nil)
