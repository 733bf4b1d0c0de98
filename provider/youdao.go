package provider

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/ZaguanLabs/gotrans"
)

// DefaultYoudaoURL is the web translation endpoint.
const DefaultYoudaoURL = "https://fanyi.youdao.com/translate_o"

// Fixed protocol values of the Youdao web client.
const (
	youdaoClientID = "fanyideskweb"
	youdaoSecret   = "97_3(jkMYg@T[KZQmqjTK"
	youdaoReferer  = "http://fanyi.youdao.com/"
	youdaoCookie   = "OUTFOX_SEARCH_USER_ID=-2022895048@10.168.8.76;"
)

// YoudaoProvider calls the signed Youdao web translation API.
type YoudaoProvider struct {
	client  *http.Client
	baseURL string
	headers http.Header
	now     func() time.Time
}

// YoudaoConfig holds configuration for the Youdao provider.
type YoudaoConfig struct {
	BaseURL    string           // Endpoint override (default: DefaultYoudaoURL)
	HTTPClient *http.Client     // HTTP client (default: http.DefaultClient)
	Now        func() time.Time // Clock used for the salt (default: time.Now)
}

type youdaoSegment struct {
	Src string `json:"src"`
	Tgt string `json:"tgt"`
}

type youdaoSmartResult struct {
	Entries []string `json:"entries"`
}

type youdaoResponse struct {
	TranslateResult [][]youdaoSegment  `json:"translateResult"`
	ErrorCode       int                `json:"errorCode"`
	Type            string             `json:"type"`
	SmartResult     *youdaoSmartResult `json:"smartResult"`
}

// NewYoudaoProvider creates a new Youdao provider.
func NewYoudaoProvider(cfg YoudaoConfig) *YoudaoProvider {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultYoudaoURL
	}

	now := cfg.Now
	if now == nil {
		now = time.Now
	}

	headers := make(http.Header)
	headers.Set("User-Agent", desktopUserAgent)
	headers.Set("Referer", youdaoReferer)
	headers.Set("Cookie", youdaoCookie)

	return &YoudaoProvider{
		client:  clientOrDefault(cfg.HTTPClient),
		baseURL: baseURL,
		headers: headers,
		now:     now,
	}
}

// Name returns "youdao".
func (p *YoudaoProvider) Name() string {
	return EngineYoudao
}

// Salt returns the request nonce: the current Unix time in whole seconds.
func (p *YoudaoProvider) Salt() string {
	return strconv.FormatInt(p.now().Unix(), 10)
}

// Sign returns the lower-case hex MD5 of client id, text, salt and secret.
func (p *YoudaoProvider) Sign(text, salt string) string {
	sum := md5.Sum([]byte(youdaoClientID + text + salt + youdaoSecret))
	return hex.EncodeToString(sum[:])
}

// Translate posts a freshly signed form for text.
func (p *YoudaoProvider) Translate(ctx context.Context, text, sourceLang, targetLang string) (*gotrans.Translation, error) {
	endpoint, err := url.Parse(p.baseURL)
	if err != nil {
		return nil, &gotrans.RequestBuildError{Engine: EngineYoudao, Message: "invalid endpoint", Cause: err}
	}

	salt := p.Salt()
	form := url.Values{
		"i":           {text},
		"from":        {sourceLang},
		"to":          {targetLang},
		"smartresult": {"dict"},
		"client":      {youdaoClientID},
		"doctype":     {"json"},
		"version":     {"2.1"},
		"keyfrom":     {"fanyi.web"},
		"action":      {"FY_BY_CL1CKBUTTON"},
		"typoResult":  {"true"},
		"salt":        {salt},
		"sign":        {p.Sign(text, salt)},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint.String(), strings.NewReader(form.Encode()))
	if err != nil {
		return nil, &gotrans.RequestBuildError{Engine: EngineYoudao, Message: "creating request", Cause: err}
	}
	req.Header = p.headers.Clone()
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	body, err := fetch(p.client, EngineYoudao, req)
	if err != nil {
		return nil, err
	}

	var resp youdaoResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, &gotrans.DecodeError{Engine: EngineYoudao, Message: "parsing JSON response", Cause: err}
	}

	paraphrase, err := youdaoParaphrase(resp)
	if err != nil {
		return nil, err
	}

	if resp.SmartResult == nil {
		return nil, &gotrans.DecodeError{Engine: EngineYoudao, Message: "response has no smartResult"}
	}

	return &gotrans.Translation{
		Text:       text,
		Engine:     EngineYoudao,
		Paraphrase: gotrans.StringPtr(paraphrase),
		Explains:   append([]string{}, resp.SmartResult.Entries...),
	}, nil
}

// youdaoParaphrase returns the target of the first segment. An empty
// translation table is a decode failure, not an absent paraphrase.
func youdaoParaphrase(resp youdaoResponse) (string, error) {
	if len(resp.TranslateResult) == 0 || len(resp.TranslateResult[0]) == 0 {
		return "", &gotrans.DecodeError{
			Engine:  EngineYoudao,
			Message: fmt.Sprintf("empty translateResult (errorCode %d)", resp.ErrorCode),
		}
	}
	return resp.TranslateResult[0][0].Tgt, nil
}

// Verify YoudaoProvider implements Backend
var _ Backend = (*YoudaoProvider)(nil)
