package upstream

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"camsd/internal/models"
	"camsd/internal/structures"
)

// attendanceFields is the field-name list the CAMS attendance endpoint
// expects, including the SQL-style aliases the terminal software applies.
// The parser's alias table folds both spellings back together.
var attendanceFields = []string{
	"UserID", "UserName", "short_name", "integration_reference",
	"PROCESSDATE as [PROCESSDATE]",
	"PUNCH1_TIME", "PUNCH2_TIME", "PUNCH3_TIME", "PUNCH4_TIME",
	"PUNCH5_TIME", "PUNCH6_TIME", "PUNCH7_TIME", "PUNCH8_TIME",
	"PUNCH9_TIME", "PUNCH10_TIME", "PUNCH11_TIME", "PUNCH12_TIME",
	"SCHEDULESHIFT", "WORKINGSHIFT as [WorkingShift]",
	"EARLYIN", "EARLYIN_HHMM", "LATEIN as [LateIn]", "LATEIN_HHMM",
	"EARLYOUT as [EarlyOut]", "EARLYOUT_HHMM", "OVERSTAY", "OVERSTAY_HHMM",
	"OVERTIME as [Overtime]", "OVERTIME_HHMM", "WORKTIME as [WorkTime]",
	"WORKTIME_HHMM as [Working Time]", "FIRSTHALF", "SECONDHALF",
	"SHIFTSTART", "SHIFTEND", "LUNCHSTART", "LUNCHEND",
	"OUTPUNCH", "OUTPUNCH_DATE", "OUTPUNCH_TIME",
	"DAYSTATUS", "NETWORKHRS", "ADJUSTEDHRS",
}

type ClientInterface interface {
	FetchAttendance(ctx context.Context, userID, startDate, endDate string) ([]byte, error)
	MarkAttendance(ctx context.Context, userID string, action models.NextAction) error
	FetchLeaves(ctx context.Context, userID string) ([]byte, error)
	FetchLeaveBalance(ctx context.Context, userID string) ([]byte, error)
	FetchReimbursements(ctx context.Context, userID string) ([]byte, error)
	FetchSettings(ctx context.Context) ([]byte, error)
}

// Client talks to the CAMS terminal API. It carries no retry logic; a
// failed fetch leaves the previously synced data in place and the next
// scheduled sync tries again.
type Client struct {
	conf       *structures.Config
	httpClient *http.Client
}

func NewClient(conf *structures.Config) ClientInterface {
	return &Client{
		conf: conf,
		httpClient: &http.Client{
			Timeout: conf.Upstream.Timeout,
		},
	}
}

func (c *Client) buildURL(path string, params url.Values) string {
	base := strings.TrimRight(c.conf.Upstream.BaseURL, "/")
	return base + path + "?" + params.Encode()
}

func (c *Client) do(ctx context.Context, method, rawURL, accept string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, rawURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", accept)

	switch c.conf.Upstream.AuthType {
	case "bearer":
		req.Header.Set("Authorization", "Bearer "+c.conf.Upstream.AuthKey)
	case "api-key":
		req.Header.Set("X-API-Key", c.conf.Upstream.AuthKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("HTTP %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode))
	}
	return body, nil
}

// FetchAttendance pulls the raw attendance export for one user and date
// range (dates in YYYYMMDD). The response is the pipe-delimited or JSON
// payload as-is; parsing happens downstream.
func (c *Client) FetchAttendance(ctx context.Context, userID, startDate, endDate string) ([]byte, error) {
	params := url.Values{}
	params.Set("action", "get")
	params.Set("field-name", strings.Join(attendanceFields, ","))
	params.Set("date-range", startDate+"-"+endDate)
	params.Set("range", "user")
	params.Set("Id", userID)

	return c.do(ctx, http.MethodGet, c.buildURL(c.conf.Upstream.AttendancePath, params), "text/plain")
}

// MarkAttendance forwards a resolved punch to the upstream.
func (c *Client) MarkAttendance(ctx context.Context, userID string, action models.NextAction) error {
	params := url.Values{}
	params.Set("action", "mark")
	params.Set("userId", userID)
	params.Set("type", string(action))
	params.Set("timestamp", time.Now().UTC().Format(time.RFC3339))

	_, err := c.do(ctx, http.MethodPost, c.buildURL(c.conf.Upstream.AttendancePath, params), "application/json")
	return err
}

func (c *Client) FetchLeaves(ctx context.Context, userID string) ([]byte, error) {
	params := url.Values{}
	params.Set("action", "get")
	params.Set("userId", userID)
	params.Set("type", "history")

	return c.do(ctx, http.MethodGet, c.buildURL(c.conf.Upstream.LeavesPath, params), "application/json")
}

func (c *Client) FetchLeaveBalance(ctx context.Context, userID string) ([]byte, error) {
	params := url.Values{}
	params.Set("action", "balance")
	params.Set("userId", userID)

	return c.do(ctx, http.MethodGet, c.buildURL(c.conf.Upstream.LeavesPath, params), "application/json")
}

func (c *Client) FetchReimbursements(ctx context.Context, userID string) ([]byte, error) {
	params := url.Values{}
	params.Set("action", "get")
	params.Set("userId", userID)

	return c.do(ctx, http.MethodGet, c.buildURL(c.conf.Upstream.ReimbursementsPath, params), "application/json")
}

// FetchSettings pulls the org-wide settings document. It carries no user
// parameter; the upstream serves one document per deployment.
func (c *Client) FetchSettings(ctx context.Context) ([]byte, error) {
	params := url.Values{}
	params.Set("action", "get")

	return c.do(ctx, http.MethodGet, c.buildURL(c.conf.Upstream.SettingsPath, params), "application/json")
}
