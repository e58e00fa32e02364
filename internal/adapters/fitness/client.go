// Package fitness is the HTTP adapter for the remote fitness-club
// scheduling API. It implements ports.StudioAPI: every call sends the raw
// session token in the Authorization header, and every non-2xx response is
// surfaced as an *AppError carrying the server's plain-text body verbatim.
package fitness

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/fitpulse/studio-ui/config"
	"github.com/fitpulse/studio-ui/internal/domain/auth"
	"github.com/fitpulse/studio-ui/internal/domain/model"
	apperrors "github.com/fitpulse/studio-ui/internal/errors"
	"github.com/fitpulse/studio-ui/internal/ports"
)

// participantHeader carries a substitute participant id on registration
// calls. The remote API honors it for admins only.
const participantHeader = "X-Participant-Id"

// maxErrorBody caps how much of an error response we read back.
const maxErrorBody = 4 << 10

var _ ports.StudioAPI = (*Client)(nil)

// Client talks to the remote scheduling platform.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *slog.Logger
}

// Options configures NewClient beyond the required config.
type Options struct {
	// HTTPClient overrides the default client. Mainly for tests.
	HTTPClient *http.Client
	// Logger receives request-level debug logs. Defaults to slog.Default().
	Logger *slog.Logger
}

// NewClient creates a Client for the configured API base URL.
func NewClient(cfg config.BackendConfig, opts Options) *Client {
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http:    httpClient,
		logger:  logger,
	}
}

// do issues one API request. Body (when non-nil) is JSON-encoded; out (when
// non-nil) receives the decoded response. The token travels raw, without a
// scheme prefix, matching what the remote API expects.
func (c *Client) do(ctx context.Context, method, path, token string, body, out any, header http.Header) error {
	var reqBody io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return apperrors.Wrap(err, apperrors.ErrCodeInternal, "encode request")
		}
		reqBody = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return apperrors.Wrap(err, apperrors.ErrCodeInternal, "build request")
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", token)
	}
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.WarnContext(ctx, "api request failed",
			slog.String("method", method), slog.String("path", path), slog.Any("error", err))
		return apperrors.Wrap(err, apperrors.ErrCodeLoad, "fitness API unreachable")
	}
	defer resp.Body.Close()

	c.logger.DebugContext(ctx, "api request",
		slog.String("method", method), slog.String("path", path),
		slog.Int("status", resp.StatusCode), slog.Duration("elapsed", time.Since(start)))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		msg := strings.TrimSpace(string(raw))
		if msg == "" {
			msg = fmt.Sprintf("request failed with status %d", resp.StatusCode)
		}
		return apperrors.Remote(resp.StatusCode, msg)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return apperrors.Wrap(err, apperrors.ErrCodeLoad, "invalid data format")
		}
	}
	return nil
}

// getList fetches a collection endpoint into dst, which must be a pointer
// to a slice. A well-formed non-array payload is rejected as a load error,
// keeping list renderers away from surprise objects.
func getList[T any](ctx context.Context, c *Client, path, token string) ([]T, error) {
	var raw json.RawMessage
	if err := c.do(ctx, http.MethodGet, path, token, nil, &raw, nil); err != nil {
		return nil, err
	}
	trimmed := bytes.TrimLeft(raw, " \t\r\n")
	if len(trimmed) == 0 || (trimmed[0] != '[' && !bytes.Equal(trimmed, []byte("null"))) {
		return nil, apperrors.Load("invalid data format")
	}
	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeLoad, "invalid data format")
	}
	return items, nil
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (c *Client) Login(ctx context.Context, email, password string) (auth.Session, error) {
	var sess auth.Session
	err := c.do(ctx, http.MethodPost, "/auth/login", "", loginRequest{Email: email, Password: password}, &sess, nil)
	if err != nil {
		return auth.Session{}, err
	}
	return sess, nil
}

func (c *Client) Logout(ctx context.Context, token string) error {
	return c.do(ctx, http.MethodPost, "/auth/logout", token, nil, nil, nil)
}

func (c *Client) ListUsers(ctx context.Context, token string) ([]model.User, error) {
	return getList[model.User](ctx, c, "/users", token)
}

func (c *Client) CreateUser(ctx context.Context, token string, in ports.CreateUserInput) (model.User, error) {
	var u model.User
	if err := c.do(ctx, http.MethodPost, "/users", token, in, &u, nil); err != nil {
		return model.User{}, err
	}
	return u, nil
}

func (c *Client) DeleteUser(ctx context.Context, token string, id int) error {
	return c.do(ctx, http.MethodDelete, "/users/"+strconv.Itoa(id), token, nil, nil, nil)
}

func (c *Client) ListClients(ctx context.Context, token string) ([]model.Client, error) {
	return getList[model.Client](ctx, c, "/clients", token)
}

func (c *Client) DeleteClient(ctx context.Context, token string, id int) error {
	return c.do(ctx, http.MethodDelete, "/clients/"+strconv.Itoa(id), token, nil, nil, nil)
}

func (c *Client) ListTrainings(ctx context.Context, token string, f ports.TrainingFilter) ([]model.Training, error) {
	q := url.Values{}
	if f.HallType != "" {
		q.Set("hall_type", f.HallType)
	}
	if f.Status != "" {
		q.Set("status", f.Status)
	}
	if f.TrainerID != 0 {
		q.Set("trainer_id", strconv.Itoa(f.TrainerID))
	}
	path := "/trainings"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}
	return getList[model.Training](ctx, c, path, token)
}

func (c *Client) CreateTraining(ctx context.Context, token string, in ports.CreateTrainingInput) (model.Training, error) {
	var t model.Training
	if err := c.do(ctx, http.MethodPost, "/trainings", token, in, &t, nil); err != nil {
		return model.Training{}, err
	}
	return t, nil
}

type statusRequest struct {
	Status model.TrainingStatus `json:"status"`
}

func (c *Client) UpdateTrainingStatus(ctx context.Context, token string, id int, status model.TrainingStatus) error {
	if !status.Known() {
		return apperrors.Validationf("unknown training status %q", status)
	}
	path := "/trainings/" + strconv.Itoa(id) + "/status"
	return c.do(ctx, http.MethodPut, path, token, statusRequest{Status: status}, nil, nil)
}

func (c *Client) DeleteTraining(ctx context.Context, token string, id int) error {
	return c.do(ctx, http.MethodDelete, "/trainings/"+strconv.Itoa(id), token, nil, nil, nil)
}

func (c *Client) RegisterForTraining(ctx context.Context, token string, trainingID, participantID int) error {
	var header http.Header
	if participantID != 0 {
		header = http.Header{participantHeader: []string{strconv.Itoa(participantID)}}
	}
	path := "/trainings/" + strconv.Itoa(trainingID) + "/register"
	return c.do(ctx, http.MethodPost, path, token, nil, nil, header)
}

func (c *Client) CancelRegistration(ctx context.Context, token string, trainingID int) error {
	path := "/trainings/" + strconv.Itoa(trainingID) + "/cancel"
	return c.do(ctx, http.MethodPost, path, token, nil, nil, nil)
}

func (c *Client) ListSubscriptions(ctx context.Context, token string) ([]model.Subscription, error) {
	return getList[model.Subscription](ctx, c, "/subscriptions", token)
}

func (c *Client) CreateSubscription(ctx context.Context, token string, in ports.CreateSubscriptionInput) (model.Subscription, error) {
	var s model.Subscription
	if err := c.do(ctx, http.MethodPost, "/subscriptions", token, in, &s, nil); err != nil {
		return model.Subscription{}, err
	}
	return s, nil
}

func (c *Client) DeleteSubscription(ctx context.Context, token string, id int) error {
	return c.do(ctx, http.MethodDelete, "/subscriptions/"+strconv.Itoa(id), token, nil, nil, nil)
}

func (c *Client) ListEmployees(ctx context.Context, token string) ([]model.Employee, error) {
	return getList[model.Employee](ctx, c, "/employees", token)
}
