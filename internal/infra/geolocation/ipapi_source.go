package geolocation

import (
	"context"
	"encoding/json"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"storefront/internal/domain/service"
	"storefront/internal/errors"
)

// IP lookups are coarse; report roughly a city sized uncertainty.
const ipLookupAccuracyM = 5000

// IPAPISource locates the caller by public IP through an ip-api.com compatible endpoint.
type IPAPISource struct {
	endpoint   string
	httpClient *http.Client
	logger     *slog.Logger
	now        func() time.Time
}

type ipAPIResponse struct {
	Status  string  `json:"status"`
	Message string  `json:"message"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
}

// NewIPAPISource creates a source querying endpoint. The request deadline comes from the caller.
func NewIPAPISource(endpoint string, logger *slog.Logger) *IPAPISource {
	return &IPAPISource{
		endpoint:   strings.TrimRight(endpoint, "/") + "/",
		httpClient: &http.Client{},
		logger:     logger,
		now:        time.Now,
	}
}

func (s *IPAPISource) GetCurrentPosition(ctx context.Context, opts service.PositionOptions, onSuccess func(service.Position), onError func(*service.PositionError)) {
	ip := ClientIPFromContext(ctx)
	if parsed := net.ParseIP(ip); parsed == nil || parsed.IsLoopback() || parsed.IsPrivate() {
		// ip-api resolves the server's own address for an empty path, which says nothing about the customer.
		onError(&service.PositionError{Code: service.PositionUnavailable, Message: "caller address cannot be located: " + ip})

		return
	}

	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	body, err := s.lookup(ctx, ip)
	if err != nil {
		code := service.PositionUnavailable
		if errors.Is(err, context.DeadlineExceeded) {
			code = service.PositionTimeout
		}
		onError(&service.PositionError{Code: code, Message: err.Error()})

		return
	}

	if body.Status != "success" {
		onError(&service.PositionError{Code: service.PositionUnavailable, Message: "ip lookup failed: " + body.Message})

		return
	}

	s.logger.DebugContext(ctx, "IP position resolved",
		slog.Float64("latitude", body.Lat),
		slog.Float64("longitude", body.Lon),
	)

	onSuccess(service.Position{
		Coords:    service.Coordinates{Latitude: body.Lat, Longitude: body.Lon, Accuracy: ipLookupAccuracyM},
		Timestamp: s.now(),
	})
}

func (s *IPAPISource) lookup(ctx context.Context, ip string) (*ipAPIResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.endpoint+ip+"?fields=status,message,lat,lon", nil)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("ip lookup returned status %d", resp.StatusCode)
	}

	var body ipAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, errors.Wrap(err, "decode ip lookup response")
	}

	return &body, nil
}
