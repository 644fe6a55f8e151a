package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"rangeiq/internal/domain"
	"rangeiq/internal/dto"
	"rangeiq/internal/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const defaultTimeout = 5 * time.Second

// HTTPClient calls the REST API with fiber's HTTP agent.
type HTTPClient struct {
	baseURL string
	timeout time.Duration
	token   string
}

// NewHTTPClient returns a client for baseURL, e.g. "http://localhost:8090/api".
// A zero timeout uses a five second default.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &HTTPClient{baseURL: strings.TrimRight(baseURL, "/"), timeout: timeout}
}

// Token returns the ownership token received from CreateUser, if any.
func (c *HTTPClient) Token() string {
	return c.token
}

// SetToken sets the bearer token sent with every request.
func (c *HTTPClient) SetToken(token string) {
	c.token = token
}

func (c *HTTPClient) do(ctx context.Context, method, path string, body, out interface{}) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var agent *fiber.Agent
	switch method {
	case fiber.MethodPost:
		agent = fiber.Post(c.baseURL + path)
	default:
		agent = fiber.Get(c.baseURL + path)
	}

	timeout := c.timeout
	if deadline, ok := ctx.Deadline(); ok {
		if left := time.Until(deadline); left < timeout {
			timeout = left
		}
	}
	agent.Timeout(timeout)
	agent.Set(fiber.HeaderAccept, fiber.MIMEApplicationJSON)
	if c.token != "" {
		agent.Set(fiber.HeaderAuthorization, "Bearer "+c.token)
	}
	if body != nil {
		agent.JSON(body)
	}

	if err := agent.Parse(); err != nil {
		fiber.ReleaseAgent(agent)
		return fmt.Errorf("invalid request to %s: %w", path, err)
	}

	resp := fiber.AcquireResponse()
	defer fiber.ReleaseResponse(resp)
	agent.SetResponse(resp)

	code, respBody, errs := agent.Bytes()
	if len(errs) > 0 {
		logger.Get().Debug("RangeIQ API unreachable", zap.String("path", path), zap.Error(errs[0]))
		return fmt.Errorf("%w: %s %s: %v", ErrUnavailable, method, path, errors.Join(errs...))
	}
	if code == fiber.StatusBadGateway || code == fiber.StatusGatewayTimeout {
		return fmt.Errorf("%w: %s %s returned %d", ErrUnavailable, method, path, code)
	}
	if code < 200 || code >= 300 {
		apiErr := &APIError{}
		if err := json.Unmarshal(respBody, apiErr); err != nil || apiErr.Message == "" {
			apiErr.Message = strings.TrimSpace(string(respBody))
		}
		apiErr.Status = code
		return apiErr
	}

	if out != nil {
		if err := json.Unmarshal(respBody, out); err != nil {
			return fmt.Errorf("failed to decode %s response: %w", path, err)
		}
	}
	if token := resp.Header.Peek("X-User-Token"); len(token) > 0 {
		c.token = string(token)
	}
	return nil
}

func (c *HTTPClient) CreateUser(ctx context.Context, userID string) (*dto.UserResponse, error) {
	var user dto.UserResponse
	if err := c.do(ctx, fiber.MethodPost, "/users", dto.CreateUserRequest{ID: userID}, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *HTTPClient) GetUser(ctx context.Context, userID string) (*dto.UserResponse, error) {
	var user dto.UserResponse
	if err := c.do(ctx, fiber.MethodGet, "/users/"+url.PathEscape(userID), nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *HTTPClient) ListScenarios(ctx context.Context, filter domain.ScenarioFilter) ([]domain.Scenario, error) {
	query := url.Values{}
	if filter.Difficulty != "" {
		query.Set("difficulty", filter.Difficulty)
	}
	if filter.Category != "" {
		query.Set("category", filter.Category)
	}
	path := "/scenarios"
	if len(query) > 0 {
		path += "?" + query.Encode()
	}
	var scenarios []domain.Scenario
	if err := c.do(ctx, fiber.MethodGet, path, nil, &scenarios); err != nil {
		return nil, err
	}
	return scenarios, nil
}

func (c *HTTPClient) GetScenario(ctx context.Context, id int) (*domain.Scenario, error) {
	var s domain.Scenario
	if err := c.do(ctx, fiber.MethodGet, "/scenarios/"+strconv.Itoa(id), nil, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (c *HTTPClient) ListRanges(ctx context.Context) ([]domain.Range, error) {
	var ranges []domain.Range
	if err := c.do(ctx, fiber.MethodGet, "/ranges", nil, &ranges); err != nil {
		return nil, err
	}
	return ranges, nil
}

func (c *HTTPClient) GetRange(ctx context.Context, id int) (*domain.Range, error) {
	var r domain.Range
	if err := c.do(ctx, fiber.MethodGet, "/ranges/"+strconv.Itoa(id), nil, &r); err != nil {
		return nil, err
	}
	return &r, nil
}

func (c *HTTPClient) ListConcepts(ctx context.Context) ([]domain.ConceptSummary, error) {
	var concepts []domain.ConceptSummary
	if err := c.do(ctx, fiber.MethodGet, "/concepts", nil, &concepts); err != nil {
		return nil, err
	}
	return concepts, nil
}

func (c *HTTPClient) GetConcept(ctx context.Context, id string) (*domain.Concept, error) {
	var concept domain.Concept
	if err := c.do(ctx, fiber.MethodGet, "/concepts/"+url.PathEscape(id), nil, &concept); err != nil {
		return nil, err
	}
	return &concept, nil
}

func (c *HTTPClient) SubmitAnswer(ctx context.Context, req dto.QuizSubmitRequest) (*dto.QuizSubmitResponse, error) {
	var resp dto.QuizSubmitResponse
	if err := c.do(ctx, fiber.MethodPost, "/quiz/submit", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) SubmitRange(ctx context.Context, req dto.RangeSubmitRequest) (*dto.RangeSubmitResponse, error) {
	var resp dto.RangeSubmitResponse
	if err := c.do(ctx, fiber.MethodPost, "/ranges/submit", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) GetDaily(ctx context.Context) (*domain.DailySelection, error) {
	var sel domain.DailySelection
	if err := c.do(ctx, fiber.MethodGet, "/daily", nil, &sel); err != nil {
		return nil, err
	}
	return &sel, nil
}

func (c *HTTPClient) SubmitDaily(ctx context.Context, req dto.DailySubmitRequest) (*dto.DailySubmitResponse, error) {
	var resp dto.DailySubmitResponse
	if err := c.do(ctx, fiber.MethodPost, "/daily/submit", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) GetStats(ctx context.Context, userID string) (*dto.StatsResponse, error) {
	var stats dto.StatsResponse
	if err := c.do(ctx, fiber.MethodGet, "/stats/"+url.PathEscape(userID), nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

var _ API = (*HTTPClient)(nil)
