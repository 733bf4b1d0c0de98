package provider

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/ZaguanLabs/gotrans"
)

// DefaultCibaURL is the iCIBA quick translation endpoint.
const DefaultCibaURL = "https://fy.iciba.com/ajax.php"

// CibaProvider calls the iCIBA quick translation API.
type CibaProvider struct {
	client  *http.Client
	baseURL string
}

// CibaConfig holds configuration for the iCIBA provider.
type CibaConfig struct {
	BaseURL    string       // Endpoint override (default: DefaultCibaURL)
	HTTPClient *http.Client // HTTP client (default: http.DefaultClient)
}

type cibaContent struct {
	PhEn     string   `json:"ph_en"`
	PhAm     string   `json:"ph_am"`
	PhEnMp3  string   `json:"ph_en_mp3"`
	PhAmMp3  string   `json:"ph_am_mp3"`
	PhTtsMp3 string   `json:"ph_tts_mp3"`
	WordMean []string `json:"word_mean"`
}

type cibaResponse struct {
	Status  int          `json:"status"`
	Content *cibaContent `json:"content"`
}

// NewCibaProvider creates a new iCIBA provider.
func NewCibaProvider(cfg CibaConfig) *CibaProvider {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultCibaURL
	}

	return &CibaProvider{
		client:  clientOrDefault(cfg.HTTPClient),
		baseURL: baseURL,
	}
}

// Name returns "ciba".
func (p *CibaProvider) Name() string {
	return EngineCiba
}

// Translate queries iCIBA for text. The API never returns a paraphrase.
func (p *CibaProvider) Translate(ctx context.Context, text, sourceLang, targetLang string) (*gotrans.Translation, error) {
	endpoint, err := url.Parse(p.baseURL)
	if err != nil {
		return nil, &gotrans.RequestBuildError{Engine: EngineCiba, Message: "invalid endpoint", Cause: err}
	}
	query := endpoint.Query()
	query.Set("a", "fy")
	query.Set("f", sourceLang)
	query.Set("t", targetLang)
	query.Set("w", text)
	endpoint.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, &gotrans.RequestBuildError{Engine: EngineCiba, Message: "creating request", Cause: err}
	}

	body, err := fetch(p.client, EngineCiba, req)
	if err != nil {
		return nil, err
	}

	var resp cibaResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, &gotrans.DecodeError{Engine: EngineCiba, Message: "parsing JSON response", Cause: err}
	}
	if resp.Content == nil {
		return nil, &gotrans.DecodeError{Engine: EngineCiba, Message: "response has no content"}
	}

	return &gotrans.Translation{
		Text:     text,
		Engine:   EngineCiba,
		Phonetic: gotrans.StringPtr(resp.Content.PhEn),
		Explains: append([]string{}, resp.Content.WordMean...),
	}, nil
}

// Verify CibaProvider implements Backend
var _ Backend = (*CibaProvider)(nil)
