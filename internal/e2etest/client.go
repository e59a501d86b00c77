package e2etest

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net/http"
	neturl "net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/myrjola/detective/internal/errors"
	"github.com/myrjola/detective/internal/game"
)

// Client plays the web shell like a browser: it keeps the session cookie and answers forms with their CSRF token.
type Client struct {
	client *http.Client
	url    string
}

// NewClient creates a cookie-aware HTTP client for the server at url.
func NewClient(url string) (*Client, error) {
	jar, err := newUnsafeCookieJar()
	if err != nil {
		return nil, errors.Wrap(err, "create unsafe cookie jar")
	}
	return &Client{
		client: &http.Client{Jar: jar},
		url:    url,
	}, nil
}

// WaitForReady calls the specified endpoint until it gets a HTTP 200 Success
// response or until the context is cancelled or the 1-second timeout is reached.
func (c *Client) WaitForReady(ctx context.Context, urlPath string) error {
	timeout := 1 * time.Second
	startTime := time.Now()
	var (
		err  error
		req  *http.Request
		resp *http.Response
	)
	for {
		if req, err = http.NewRequestWithContext(
			ctx,
			http.MethodGet,
			c.url+urlPath,
			nil,
		); err != nil {
			return errors.Wrap(err, "create request")
		}

		if resp, err = c.client.Do(req); err == nil {
			if resp.StatusCode == http.StatusOK {
				if err = resp.Body.Close(); err != nil {
					return errors.Wrap(err, "close response body")
				}
				return nil
			}
			if err = resp.Body.Close(); err != nil {
				return errors.Wrap(err, "close response body")
			}
		}
		select {
		case <-ctx.Done():
			return errors.Wrap(ctx.Err(), "context cancelled")
		default:
			if time.Since(startTime) >= timeout {
				return errors.New("timeout waiting for endpoint to be ready")
			}
			time.Sleep(100 * time.Millisecond) //nolint:mnd // 100ms
		}
	}
}

// Get fetches a URL and returns the response.
func (c *Client) Get(ctx context.Context, urlPath string) (*http.Response, error) {
	var (
		err  error
		req  *http.Request
		resp *http.Response
	)
	if req, err = c.newRequestWithContext(ctx, http.MethodGet, urlPath, nil); err != nil {
		return nil, errors.Wrap(err, "create request with context")
	}
	if resp, err = c.client.Do(req); err != nil {
		return nil, errors.Wrap(err, "do request")
	}
	return resp, nil
}

// GetDoc fetches a URL and returns a goquery document.
func (c *Client) GetDoc(ctx context.Context, urlPath string) (*goquery.Document, error) {
	var (
		err  error
		resp *http.Response
	)
	if resp, err = c.Get(ctx, urlPath); err != nil {
		return nil, errors.Wrap(err, "client get")
	}
	return readDoc(resp)
}

// newRequestWithContext creates a new HTTP request to the server that respects the given context.
func (c *Client) newRequestWithContext(
	ctx context.Context,
	method, urlPath string,
	body io.Reader,
) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.url+urlPath, body)
	if err != nil {
		return nil, errors.Wrap(err, "create request")
	}
	return req, nil
}

// Start enters the detective name on the front page and returns the game page.
func (c *Client) Start(ctx context.Context, name string) (*goquery.Document, error) {
	doc, err := c.SubmitForm(ctx, "/", "/session", neturl.Values{"name": {name}})
	if err != nil {
		return nil, errors.Wrap(err, "submit name", slog.String("name", name))
	}
	return doc, nil
}

// Act presses one of the action buttons that need no answer.
func (c *Client) Act(ctx context.Context, kind game.Kind) (*goquery.Document, error) {
	doc, err := c.SubmitForm(ctx, "/", "/actions/"+kind.String(), nil)
	if err != nil {
		return nil, errors.Wrap(err, "submit action", slog.String("action", kind.String()))
	}
	return doc, nil
}

// Accuse answers the accusation prompt with suspectID.
func (c *Client) Accuse(ctx context.Context, suspectID string) (*goquery.Document, error) {
	doc, err := c.SubmitForm(ctx, "/accuse", "/accuse", neturl.Values{
		"suspect": {suspectID},
		"intent":  {"accuse"},
	})
	if err != nil {
		return nil, errors.Wrap(err, "submit accusation", slog.String("suspect_id", suspectID))
	}
	return doc, nil
}

// CancelAccusation dismisses the accusation prompt.
func (c *Client) CancelAccusation(ctx context.Context) (*goquery.Document, error) {
	doc, err := c.SubmitForm(ctx, "/accuse", "/accuse", neturl.Values{"intent": {"cancel"}})
	if err != nil {
		return nil, errors.Wrap(err, "cancel accusation")
	}
	return doc, nil
}

// SaveNotes downloads the notes and returns their contents with the suggested file name.
func (c *Client) SaveNotes(ctx context.Context) (string, string, error) {
	resp, err := c.PostForm(ctx, "/", "/notes", nil)
	if err != nil {
		return "", "", errors.Wrap(err, "post notes form")
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	if http.StatusOK != resp.StatusCode {
		return "", "", errors.New("unexpected status code", slog.Int("status", resp.StatusCode))
	}
	var params map[string]string
	if _, params, err = mime.ParseMediaType(resp.Header.Get("Content-Disposition")); err != nil {
		return "", "", errors.Wrap(err, "parse content disposition")
	}
	var body []byte
	if body, err = io.ReadAll(resp.Body); err != nil {
		return "", "", errors.Wrap(err, "read notes")
	}
	return string(body), params["filename"], nil
}

func (c *Client) extractCSRFToken(doc *goquery.Document, formActionURLPath string) (string, error) {
	formSelector := fmt.Sprintf("form[action='%s']", formActionURLPath)
	form := doc.Find(formSelector)
	csrfToken, ok := form.Find("input[name=csrf_token]").Attr("value")
	if !ok {
		return "", errors.New("csrf_token not found in form", slog.String("form", formSelector))
	}
	return csrfToken, nil
}

// SubmitForm submits a form at formUrlPath with action formActionUrlPath and returns the response document.
func (c *Client) SubmitForm(
	ctx context.Context,
	formURLPath string,
	formActionURLPath string,
	values neturl.Values,
) (*goquery.Document, error) {
	resp, err := c.PostForm(ctx, formURLPath, formActionURLPath, values)
	if err != nil {
		return nil, err
	}
	return readDoc(resp)
}

// PostForm fetches the form at formURLPath and posts values to formActionURLPath with the form's CSRF token.
func (c *Client) PostForm(
	ctx context.Context,
	formURLPath string,
	formActionURLPath string,
	values neturl.Values,
) (*http.Response, error) {
	var (
		doc *goquery.Document
		err error
	)
	if doc, err = c.GetDoc(ctx, formURLPath); err != nil {
		return nil, errors.Wrap(err, "get document")
	}

	// Extract CSRF token from the form.
	var csrfToken string
	if csrfToken, err = c.extractCSRFToken(doc, formActionURLPath); err != nil {
		return nil, errors.Wrap(err, "extract CSRF token")
	}

	// Build form data
	formData := neturl.Values{}
	for key, vs := range values {
		formData[key] = vs
	}
	formData.Set("csrf_token", csrfToken)
	data := strings.NewReader(formData.Encode())

	// Submit the form
	var req *http.Request
	if req, err = c.newRequestWithContext(ctx, http.MethodPost, formActionURLPath, data); err != nil {
		return nil, errors.Wrap(err, "new request with context")
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	var resp *http.Response
	if resp, err = c.client.Do(req); err != nil {
		return nil, errors.Wrap(err, "do request")
	}
	return resp, nil
}

// readDoc parses a successful response and closes its body.
func readDoc(resp *http.Response) (*goquery.Document, error) {
	defer func() {
		_ = resp.Body.Close()
	}()
	if http.StatusOK != resp.StatusCode {
		return nil, errors.New("unexpected status code", slog.Int("status", resp.StatusCode))
	}
	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "create document from reader")
	}
	return doc, nil
}

// Display is the text of the display area of a game page.
func Display(doc *goquery.Document) string {
	return doc.Find("#display").Text()
}

// Notice is the text of the notice shown on a page, if any.
func Notice(doc *goquery.Document) string {
	return strings.TrimSpace(doc.Find("#notice").Text())
}
