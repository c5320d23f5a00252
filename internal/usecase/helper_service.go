package usecase

import (
	"context"
	"math"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/cp25sy5-modjot/helpers-service/internal/domain"
	"github.com/cp25sy5-modjot/helpers-service/internal/ports"
	"github.com/cp25sy5-modjot/helpers-service/pkg/helpers"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type HelperService struct {
	formatter ports.FormatterPort
	health    ports.HealthPort
	logger    zerolog.Logger
}

func NewHelperService(formatter ports.FormatterPort, health ports.HealthPort, logger zerolog.Logger) *HelperService {
	return &HelperService{
		formatter: formatter,
		health:    health,
		logger:    logger.With().Str("component", "helper-service").Logger(),
	}
}

func (s *HelperService) Check(ctx context.Context, req *domain.HealthCheckRequest) (*domain.HealthCheckResponse, error) {
	name := strings.TrimSpace(req.Name)
	s.logger.Debug().Str("name", name).Msg("health check requested")

	if name == "" {
		name = "helpers"
	}
	// the aggregate "" entry covers the whole server
	healthy, msg := s.health.Check(ctx, "")

	return &domain.HealthCheckResponse{
		Healthy: healthy,
		Message: msg + ": " + name,
	}, nil
}

func (s *HelperService) ParseTime(ctx context.Context, req *domain.ParseTimeRequest) (*domain.ParseTimeResponse, error) {
	d := strings.TrimSpace(req.Duration)
	if d == "" {
		return nil, status.Error(codes.InvalidArgument, "duration is empty")
	}

	ms, err := helpers.ParseTime(d)
	if err != nil {
		return nil, s.invalid(err, "parse time")
	}
	return &domain.ParseTimeResponse{Milliseconds: ms}, nil
}

func (s *HelperService) SumTimes(ctx context.Context, req *domain.SumTimesRequest) (*domain.SumTimesResponse, error) {
	total, err := helpers.SumTimes(req.Durations)
	if err != nil {
		return nil, s.invalid(err, "sum times")
	}
	return &domain.SumTimesResponse{Total: total}, nil
}

func (s *HelperService) FormatTime(ctx context.Context, req *domain.FormatTimeRequest) (*domain.FormattedResponse, error) {
	clock := strings.TrimSpace(req.Time)
	if clock == "" {
		return nil, status.Error(codes.InvalidArgument, "time is empty")
	}

	out, err := s.formatter.FormatTime(clock)
	if err != nil {
		return nil, s.invalid(err, "format time")
	}
	return &domain.FormattedResponse{Formatted: out}, nil
}

func (s *HelperService) ParseDate(ctx context.Context, req *domain.ParseDateRequest) (*domain.ParseDateResponse, error) {
	date := strings.TrimSpace(req.Date)
	if date == "" {
		return nil, status.Error(codes.InvalidArgument, "date is empty")
	}

	t, err := helpers.ParseDate(date)
	if err != nil {
		return nil, s.invalid(err, "parse date")
	}
	return &domain.ParseDateResponse{Date: t.Format(time.RFC3339)}, nil
}

func (s *HelperService) FormatDate(ctx context.Context, req *domain.FormatDateRequest) (*domain.FormattedResponse, error) {
	date := strings.TrimSpace(req.Date)
	if date == "" {
		return nil, status.Error(codes.InvalidArgument, "date is empty")
	}

	out, err := s.formatter.FormatDateString(date)
	if err != nil {
		return nil, s.invalid(err, "format date")
	}
	return &domain.FormattedResponse{Formatted: out}, nil
}

func (s *HelperService) FormatCurrency(ctx context.Context, req *domain.FormatCurrencyRequest) (*domain.FormattedResponse, error) {
	return &domain.FormattedResponse{Formatted: s.formatter.FormatCurrency(req.Amount)}, nil
}

func (s *HelperService) SumNumbers(ctx context.Context, req *domain.SumNumbersRequest) (*domain.SumNumbersResponse, error) {
	sum := helpers.SumNumbers(req.Numbers)
	if math.IsInf(sum, 0) || math.IsNaN(sum) {
		s.logger.Warn().Int("count", len(req.Numbers)).Msg("sum is not finite")
		return nil, status.Error(codes.OutOfRange, "sum overflows")
	}
	return &domain.SumNumbersResponse{Sum: sum}, nil
}

// invalid logs a rejected input and maps it to InvalidArgument.
func (s *HelperService) invalid(err error, op string) error {
	s.logger.Warn().Err(err).Str("op", op).Msg("rejected input")
	return status.Errorf(codes.InvalidArgument, "%s: %v", op, err)
}
