package provider

import (
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/ZaguanLabs/gotrans"
)

// desktopUserAgent is the browser identity sent by the scraping and signing backends.
const desktopUserAgent = "Mozilla/5.0 (Windows NT 6.2; rv:51.0) Gecko/20100101 Firefox/51.0"

// maxErrorBody caps how much of a failed response is quoted in errors.
const maxErrorBody = 200

func clientOrDefault(c *http.Client) *http.Client {
	if c == nil {
		return http.DefaultClient
	}
	return c
}

// fetch performs req and returns the full body of a 2xx response.
// Every failure is reported as *gotrans.TransportError.
func fetch(client *http.Client, engine string, req *http.Request) ([]byte, error) {
	resp, err := client.Do(req)
	if err != nil {
		return nil, &gotrans.TransportError{
			Engine:  engine,
			Message: "request failed",
			Cause:   err,
		}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &gotrans.TransportError{
			Engine:     engine,
			Message:    "reading response body",
			StatusCode: resp.StatusCode,
			Cause:      err,
		}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet := strings.TrimSpace(string(body))
		if len(snippet) > maxErrorBody {
			snippet = snippet[:maxErrorBody] + "..."
		}
		return nil, &gotrans.TransportError{
			Engine:     engine,
			Message:    fmt.Sprintf("unexpected response %q", snippet),
			StatusCode: resp.StatusCode,
		}
	}

	return body, nil
}
