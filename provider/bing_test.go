package provider

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ZaguanLabs/gotrans"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const bingHoverFixture = `<!DOCTYPE html>
<html><head><meta charset="utf-8"></head><body>
<div class="ht_hd"><span class="ht_word">good</span>
<span class="ht_attr" lang="en">[ɡʊd] </span></div>
<ul>
<li><span class="ht_pos">adv.</span><span class="ht_trs">好</span></li>
<li><span class="ht_pos">n.</span><span class="ht_trs">好处；好人；益处；善行</span></li>
<li><span class="ht_pos">adj.</span><span class="ht_trs">有好处；好的；优质的；符合标准的</span></li>
</ul>
</body></html>`

func newBingServer(t *testing.T, status int, body string) (*httptest.Server, *http.Request) {
	t.Helper()
	var captured http.Request
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = *r.Clone(context.Background())
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv, &captured
}

func TestBingProvider_Translate(t *testing.T) {
	srv, captured := newBingServer(t, http.StatusOK, bingHoverFixture)
	p := NewBingProvider(BingConfig{BaseURL: srv.URL + "/dict/SerpHoverTrans", HTTPClient: srv.Client()})

	result, err := p.Translate(context.Background(), "good", "en", "zh")
	require.NoError(t, err)

	assert.Equal(t, "good", result.Text)
	assert.Equal(t, "bing", result.Engine)
	assert.Nil(t, result.Paraphrase)
	require.NotNil(t, result.Phonetic)
	assert.Equal(t, "ɡʊd", *result.Phonetic)
	assert.Equal(t, []string{
		"adv.好",
		"n.好处；好人；益处；善行",
		"adj.有好处；好的；优质的；符合标准的",
	}, result.Explains)

	assert.Equal(t, http.MethodGet, captured.Method)
	assert.Equal(t, "/dict/SerpHoverTrans", captured.URL.Path)
	assert.Equal(t, "good", captured.URL.Query().Get("q"))
	assert.Equal(t, desktopUserAgent, captured.Header.Get("User-Agent"))
	assert.Contains(t, captured.Header.Get("Accept"), "text/html")
	assert.Equal(t, "en-US,en;q=0.5", captured.Header.Get("Accept-Language"))
}

func TestBingProvider_IgnoresLanguages(t *testing.T) {
	srv, captured := newBingServer(t, http.StatusOK, bingHoverFixture)
	p := NewBingProvider(BingConfig{BaseURL: srv.URL, HTTPClient: srv.Client()})

	_, err := p.Translate(context.Background(), "good", "fr", "de")
	require.NoError(t, err)

	query := captured.URL.Query()
	assert.Len(t, query, 1)
	assert.Equal(t, "good", query.Get("q"))
}

func TestBingProvider_NoExplains(t *testing.T) {
	body := `<div><span class="ht_attr" lang="en">[ɡʊd] </span></div>`
	srv, _ := newBingServer(t, http.StatusOK, body)
	p := NewBingProvider(BingConfig{BaseURL: srv.URL, HTTPClient: srv.Client()})

	result, err := p.Translate(context.Background(), "good", "en", "zh")
	require.NoError(t, err)

	assert.NotNil(t, result.Explains)
	assert.Empty(t, result.Explains)
}

func TestBingProvider_UnpairedPartOfSpeech(t *testing.T) {
	body := `<span class="ht_attr" lang="en">[x]</span>
<span class="ht_pos">n.</span><span class="other">skip</span>
<span class="ht_pos">v.</span><span class="ht_trs">keep</span>`
	srv, _ := newBingServer(t, http.StatusOK, body)
	p := NewBingProvider(BingConfig{BaseURL: srv.URL, HTTPClient: srv.Client()})

	result, err := p.Translate(context.Background(), "x", "", "")
	require.NoError(t, err)
	assert.Equal(t, []string{"v.keep"}, result.Explains)
}

func TestBingProvider_MissingPhonetic(t *testing.T) {
	body := `<span class="ht_pos">adv.</span><span class="ht_trs">好</span>`
	srv, _ := newBingServer(t, http.StatusOK, body)
	p := NewBingProvider(BingConfig{BaseURL: srv.URL, HTTPClient: srv.Client()})

	result, err := p.Translate(context.Background(), "good", "en", "zh")
	assert.Nil(t, result)

	var decodeErr *gotrans.DecodeError
	require.ErrorAs(t, err, &decodeErr)
	assert.Equal(t, "bing", decodeErr.Engine)
}

func TestBingProvider_MalformedPhonetic(t *testing.T) {
	body := `<span class="ht_attr" lang="en">no brackets</span>`
	srv, _ := newBingServer(t, http.StatusOK, body)
	p := NewBingProvider(BingConfig{BaseURL: srv.URL, HTTPClient: srv.Client()})

	_, err := p.Translate(context.Background(), "good", "en", "zh")

	var decodeErr *gotrans.DecodeError
	assert.ErrorAs(t, err, &decodeErr)
}

func TestBingProvider_HTTPStatus(t *testing.T) {
	srv, _ := newBingServer(t, http.StatusServiceUnavailable, "busy")
	p := NewBingProvider(BingConfig{BaseURL: srv.URL, HTTPClient: srv.Client()})

	result, err := p.Translate(context.Background(), "good", "en", "zh")
	assert.Nil(t, result)

	var transportErr *gotrans.TransportError
	require.ErrorAs(t, err, &transportErr)
	assert.Equal(t, http.StatusServiceUnavailable, transportErr.StatusCode)
	assert.Contains(t, err.Error(), "busy")
}

func TestBingProvider_ConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	p := NewBingProvider(BingConfig{BaseURL: url})
	_, err := p.Translate(context.Background(), "good", "en", "zh")

	var transportErr *gotrans.TransportError
	require.ErrorAs(t, err, &transportErr)
	assert.Equal(t, 0, transportErr.StatusCode)
	assert.NotNil(t, errors.Unwrap(err))
}

func TestBingProvider_InvalidEndpoint(t *testing.T) {
	p := NewBingProvider(BingConfig{BaseURL: "://missing-scheme"})

	_, err := p.Translate(context.Background(), "good", "en", "zh")

	var buildErr *gotrans.RequestBuildError
	assert.ErrorAs(t, err, &buildErr)
}

func TestBingProvider_Defaults(t *testing.T) {
	p := NewBingProvider(BingConfig{})

	assert.Equal(t, DefaultBingURL, p.baseURL)
	assert.Equal(t, http.DefaultClient, p.client)
	assert.Equal(t, "bing", p.Name())
}
