// Package practicum talks to the homework status API.
package practicum

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/sirupsen/logrus"
)

const fromDateParam = "from_date"

// errorFields are payload keys the API uses to report failures with a 200 status.
var errorFields = []string{"code", "error"}

var ErrNegativeCursor = errors.New("from_date must not be negative")

// Client fetches homework statuses for one account.
type Client struct {
	client   *resty.Client
	endpoint string
	logger   logrus.FieldLogger
}

// NewClient creates an API client authorised with the given OAuth token.
func NewClient(endpoint, token string, timeout time.Duration, logger logrus.FieldLogger) *Client {
	client := resty.New().
		SetTimeout(timeout).
		SetAuthScheme("OAuth").
		SetAuthToken(token).
		SetHeader("Accept", "application/json")
	return &Client{client: client, endpoint: endpoint, logger: logger}
}

// GetHomeworkStatuses requests statuses changed since fromDate (unix seconds)
// and returns the decoded JSON body without any shape assumptions.
func (c *Client) GetHomeworkStatuses(ctx context.Context, fromDate int64) (any, error) {
	if fromDate < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeCursor, fromDate)
	}
	params := url.Values{fromDateParam: []string{strconv.FormatInt(fromDate, 10)}}

	c.logger.WithField(fromDateParam, fromDate).Debug("Sending homework status request")
	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParamsFromValues(params).
		Get(c.endpoint)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, &TransportError{URL: c.endpoint, Params: params, Err: err}
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, &ServiceError{URL: c.endpoint, Params: params, StatusCode: resp.StatusCode()}
	}

	var decoded any
	dec := json.NewDecoder(bytes.NewReader(resp.Body()))
	dec.UseNumber()
	if err := dec.Decode(&decoded); err != nil {
		return nil, &ServiceError{
			URL:        c.endpoint,
			Params:     params,
			StatusCode: resp.StatusCode(),
			Reason:     fmt.Sprintf("body is not valid JSON: %v", err),
		}
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return nil, &ServiceError{
			URL:        c.endpoint,
			Params:     params,
			StatusCode: resp.StatusCode(),
			Reason:     "body has data after the JSON value",
		}
	}

	if obj, ok := decoded.(map[string]any); ok {
		for _, field := range errorFields {
			if v, found := obj[field]; found {
				return nil, &ServiceError{
					URL:        c.endpoint,
					Params:     params,
					StatusCode: resp.StatusCode(),
					Field:      field,
					Reason:     fmt.Sprint(v),
				}
			}
		}
	}

	c.logger.WithField("duration", resp.Time()).Debug("Received homework status response")
	return decoded, nil
}
