package testrail

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httputil"
	"strings"

	"github.com/bitrise-io/go-utils/v2/log"
	"github.com/bitrise-io/go-utils/v2/retryhttp"
	"github.com/hashicorp/go-retryablehttp"
)

// ClientAPI is the part of the TestRail API the reporter needs.
type ClientAPI interface {
	GetRunForBranch(ctx context.Context, projectID, suiteID int, name string) (*Run, error)
	CreateRun(ctx context.Context, projectID, suiteID int, name string) (Run, error)
	GetCases(ctx context.Context, projectID, suiteID int) ([]Case, error)
	CreateResult(ctx context.Context, params ResultParams) error
}

// HTTPClient ...
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client talks to the TestRail API v2.
type Client struct {
	logger     log.Logger
	httpClient HTTPClient
	baseURL    string
	username   string
	apiKey     string
}

// NewClient ...
func NewClient(baseURL, username, apiKey string, logger log.Logger) *Client {
	retryClient := retryhttp.NewClient(logger)
	// Hand the last response back instead of a generic "giving up" error,
	// so TestRail's error message can be reported.
	retryClient.ErrorHandler = retryablehttp.PassthroughErrorHandler

	return &Client{
		logger:     logger,
		httpClient: retryClient.StandardClient(),
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		username:   username,
		apiKey:     apiKey,
	}
}

// GetRunForBranch returns the first open run of the project's suite named name, or nil if there is none.
func (c *Client) GetRunForBranch(ctx context.Context, projectID, suiteID int, name string) (*Run, error) {
	endpoint := fmt.Sprintf("get_runs/%d&is_completed=0&suite_id=%d", projectID, suiteID)

	for endpoint != "" {
		var page runsPage
		if err := c.get(ctx, endpoint, &page); err != nil {
			return nil, err
		}

		for _, run := range page.Runs {
			if run.Name == name {
				found := run
				return &found, nil
			}
		}

		endpoint = page.Links.nextEndpoint()
	}

	return nil, nil
}

// CreateRun creates a run including every case of the suite.
func (c *Client) CreateRun(ctx context.Context, projectID, suiteID int, name string) (Run, error) {
	params := CreateRunParameters{
		SuiteID:    suiteID,
		Name:       name,
		IncludeAll: true,
	}

	var run Run
	if err := c.post(ctx, fmt.Sprintf("add_run/%d", projectID), params, &run); err != nil {
		return Run{}, err
	}

	return run, nil
}

// GetCases lists every case of the project's suite, following pagination.
func (c *Client) GetCases(ctx context.Context, projectID, suiteID int) ([]Case, error) {
	endpoint := fmt.Sprintf("get_cases/%d&suite_id=%d", projectID, suiteID)

	var cases []Case
	for endpoint != "" {
		var page casesPage
		if err := c.get(ctx, endpoint, &page); err != nil {
			return nil, err
		}

		cases = append(cases, page.Cases...)
		endpoint = page.Links.nextEndpoint()
	}

	return cases, nil
}

// CreateResult ...
func (c *Client) CreateResult(ctx context.Context, params ResultParams) error {
	if params.Elapsed == "0s" {
		params.Elapsed = ""
	}

	return c.post(ctx, fmt.Sprintf("add_result_for_case/%d/%d", params.RunID, params.CaseID), params, nil)
}

func (c *Client) endpointURL(endpoint string) string {
	return fmt.Sprintf("%s/index.php?/api/v2/%s", c.baseURL, endpoint)
}

func (c *Client) get(ctx context.Context, endpoint string, output interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpointURL(endpoint), nil)
	if err != nil {
		return err
	}

	return c.perform(req, output)
}

func (c *Client) post(ctx context.Context, endpoint string, input, output interface{}) error {
	body, err := json.Marshal(input)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpointURL(endpoint), bytes.NewReader(body))
	if err != nil {
		return err
	}

	return c.perform(req, output)
}

func (c *Client) perform(request *http.Request, output interface{}) error {
	request.Header.Set("Content-Type", "application/json")
	request.SetBasicAuth(c.username, c.apiKey)

	dump, err := httputil.DumpRequest(request, false)
	if err != nil {
		c.logger.Warnf("Request dump failed: %s", err)
	} else {
		c.logger.Debugf("Request dump: %s", redactAuthorization(string(dump)))
	}

	resp, err := c.httpClient.Do(request)
	if err != nil {
		return err
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			c.logger.Warnf("Failed to close response body: %s", err)
		}
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response of %s: %w", request.URL, err)
	}
	c.logger.Debugf("Response (%d): %s", resp.StatusCode, string(body))

	if resp.StatusCode >= 300 || resp.StatusCode < 200 {
		message, err := parseErrorMessage(body)
		if err != nil {
			c.logger.Warnf("Failed to parse error message from the response: %s", err)
		}

		return fmt.Errorf("request to %s failed: status code should be 2xx (%d): %s", request.URL, resp.StatusCode, message)
	}

	if output == nil {
		return nil
	}

	if err := json.Unmarshal(body, output); err != nil {
		return fmt.Errorf("failed to parse response of %s: %w", request.URL, err)
	}

	return nil
}

func parseErrorMessage(body []byte) (string, error) {
	type errorResponse struct {
		Message string `json:"error"`
	}

	var response errorResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return "", err
	}

	return response.Message, nil
}

func redactAuthorization(dump string) string {
	lines := strings.Split(dump, "\r\n")
	for i, line := range lines {
		if strings.HasPrefix(line, "Authorization:") {
			lines[i] = "Authorization: [REDACTED]"
		}
	}
	return strings.Join(lines, "\r\n")
}
