package apiclient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"konsulin-admin-console/internal/app/contracts"
	"konsulin-admin-console/internal/pkg/constvars"
	"konsulin-admin-console/internal/pkg/dto/responses"
	"konsulin-admin-console/internal/pkg/exceptions"
	"konsulin-admin-console/internal/pkg/utils"
	"net/http"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

type apiClient struct {
	BaseUrl    string
	HTTPClient *http.Client
	Tokens     contracts.TokenProvider
	Limiter    *rate.Limiter
	Log        *zap.Logger
}

type Options struct {
	BaseUrl              string
	Timeout              time.Duration
	MaxRequestsPerSecond float64
	RequestBurst         int
	HTTPClient           *http.Client
}

// NewAPIClient builds the backend client. A zero MaxRequestsPerSecond leaves
// outbound calls unpaced.
func NewAPIClient(options Options, tokens contracts.TokenProvider, logger *zap.Logger) contracts.APIClient {
	httpClient := options.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: options.Timeout}
	}

	var limiter *rate.Limiter
	if options.MaxRequestsPerSecond > 0 {
		burst := options.RequestBurst
		if burst < 1 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(options.MaxRequestsPerSecond), burst)
	}

	return &apiClient{
		BaseUrl:    strings.TrimRight(options.BaseUrl, "/"),
		HTTPClient: httpClient,
		Tokens:     tokens,
		Limiter:    limiter,
		Log:        logger,
	}
}

func (c *apiClient) Do(ctx context.Context, method, path string, body interface{}) (*responses.APIResponse, error) {
	requestID := utils.RequestIDFromContext(ctx)
	url := c.BaseUrl + path
	c.Log.Info("apiClient.Do called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingMethodKey, method),
		zap.String(constvars.LoggingURLKey, url),
	)

	bearer, ok := c.Tokens.GetToken(ctx)
	if !ok {
		c.Log.Info("apiClient.Do no token, request not sent",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Bool(constvars.LoggingTokenPresentKey, false),
		)
		return nil, exceptions.ErrNoToken()
	}

	var reader io.Reader
	if body != nil {
		requestJSON, err := json.Marshal(body)
		if err != nil {
			c.Log.Error("apiClient.Do error marshaling JSON",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return nil, exceptions.ErrCannotMarshalJSON(err)
		}
		reader = bytes.NewReader(requestJSON)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		c.Log.Error("apiClient.Do error creating HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderAuthorization, constvars.AuthorizationBearerPrefix+bearer)
	req.Header.Set(constvars.HeaderAccept, constvars.MIMEApplicationJSON)
	if method != constvars.MethodGet {
		req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	}
	if requestID != "" {
		req.Header.Set(constvars.HeaderXRequestID, requestID)
	}

	statusCode, bodyBytes, err := c.send(ctx, req)
	if err != nil {
		c.Log.Error("apiClient.Do error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	if statusCode == constvars.StatusUnauthorized {
		c.Log.Warn("apiClient.Do backend answered unauthorized, session kept",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingURLKey, url),
		)
		return nil, exceptions.ErrUnauthorized(fmt.Errorf("%s", strings.TrimSpace(string(bodyBytes))))
	}

	if statusCode < 200 || statusCode > 299 {
		message := errorMessageFromBody(statusCode, bodyBytes)
		c.Log.Error("apiClient.Do backend error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingStatusCodeKey, statusCode),
			zap.String("message", message),
		)
		return nil, exceptions.ErrHTTPStatus(statusCode, message)
	}

	c.Log.Info("apiClient.Do succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingStatusCodeKey, statusCode),
		zap.Int(constvars.LoggingResponseLengthKey, len(bodyBytes)),
	)
	return &responses.APIResponse{StatusCode: statusCode, Body: bodyBytes}, nil
}

// Health probes the public health endpoint. It is the one call sent without a bearer.
func (c *apiClient) Health(ctx context.Context) (*responses.HealthStatus, error) {
	requestID := utils.RequestIDFromContext(ctx)
	c.Log.Info("apiClient.Health called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	req, err := http.NewRequestWithContext(ctx, constvars.MethodGet, c.BaseUrl+constvars.APIPathHealth, nil)
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	if requestID != "" {
		req.Header.Set(constvars.HeaderXRequestID, requestID)
	}

	statusCode, _, err := c.send(ctx, req)
	if err != nil {
		c.Log.Warn("apiClient.Health backend unreachable",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return &responses.HealthStatus{Reachable: false, Message: constvars.ErrClientBackendUnreachable}, err
	}

	status := &responses.HealthStatus{
		Reachable:  statusCode == constvars.StatusOK,
		StatusCode: statusCode,
	}
	if !status.Reachable {
		status.Message = fmt.Sprintf(constvars.ErrClientHTTPStatusFallbackFormat, statusCode)
	}
	return status, nil
}

func (c *apiClient) send(ctx context.Context, req *http.Request) (int, []byte, error) {
	if c.Limiter != nil {
		if err := c.Limiter.Wait(ctx); err != nil {
			return 0, nil, exceptions.ErrRateLimiterWait(err)
		}
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return 0, nil, exceptions.ErrTransportFailure(err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, exceptions.ErrTransportFailure(err)
	}
	return resp.StatusCode, bodyBytes, nil
}

// errorMessageFromBody prefers detail, then message, then "Failed: <status>".
func errorMessageFromBody(statusCode int, bodyBytes []byte) string {
	var errorBody responses.APIErrorBody
	if err := json.Unmarshal(bodyBytes, &errorBody); err == nil {
		if errorBody.Detail != "" {
			return errorBody.Detail
		}
		if errorBody.Message != "" {
			return errorBody.Message
		}
	}
	return fmt.Sprintf(constvars.ErrClientHTTPStatusFallbackFormat, statusCode)
}
