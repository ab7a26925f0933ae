package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	"github.com/riskibarqy/draft-prospects/internal/domain/prospect"
	"github.com/riskibarqy/draft-prospects/internal/platform/csvsource"
	"github.com/riskibarqy/draft-prospects/internal/platform/logging"
)

type LoadResult struct {
	Accepted int
	Skipped  int
}

type loadFileInput struct {
	Path string `validate:"required,notblank"`
}

type LoadService struct {
	repo      prospect.Repository
	validator *validator.Validate
	logger    *logging.Logger
}

func NewLoadService(repo prospect.Repository, logger *logging.Logger) *LoadService {
	if logger == nil {
		logger = logging.Default()
	}
	return &LoadService{
		repo:      repo,
		validator: newValidator(),
		logger:    logger,
	}
}

func newValidator() *validator.Validate {
	v := validator.New()
	// notblank is registered under a fixed name and a valid func; the error is unreachable.
	_ = v.RegisterValidation("notblank", validators.NotBlank)
	return v
}

// LoadFile replaces the table contents with the rows of the CSV at csvPath.
// Rows with fewer than prospect.FieldCount fields are skipped. Unparsable
// numbers become zero.
func (s *LoadService) LoadFile(ctx context.Context, csvPath string) (LoadResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LoadService.LoadFile")
	defer span.End()

	if err := s.validate(ctx, loadFileInput{Path: csvPath}); err != nil {
		return LoadResult{}, err
	}

	reader, err := csvsource.Open(csvPath)
	if err != nil {
		return LoadResult{}, fmt.Errorf("load prospects: %w", err)
	}
	defer reader.Close()

	return s.load(ctx, reader)
}

// Load is LoadFile for an already open CSV stream.
func (s *LoadService) Load(ctx context.Context, r io.Reader) (LoadResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LoadService.Load")
	defer span.End()

	return s.load(ctx, csvsource.NewReader(r))
}

func (s *LoadService) load(ctx context.Context, reader *csvsource.Reader) (LoadResult, error) {
	if _, err := reader.Header(); err != nil {
		return LoadResult{}, fmt.Errorf("load prospects: %w", err)
	}

	var (
		result LoadResult
		items  []prospect.Prospect
	)
	for {
		record, err := reader.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return LoadResult{}, fmt.Errorf("load prospects: %w", err)
		}

		item, ok := parseProspectRecord(record.Fields)
		if !ok {
			result.Skipped++
			s.logger.WarnContext(ctx, "skipping malformed row",
				"line", record.Line,
				"fields", record.Fields,
			)
			continue
		}
		items = append(items, item)
	}
	result.Accepted = len(items)

	if err := s.replace(ctx, items, result); err != nil {
		return LoadResult{}, err
	}
	return result, nil
}

func (s *LoadService) replace(ctx context.Context, items []prospect.Prospect, result LoadResult) error {
	if err := s.repo.ReplaceAll(ctx, items); err != nil {
		return fmt.Errorf("replace prospects: %w", err)
	}
	s.logger.InfoContext(ctx, "prospects loaded",
		"accepted", result.Accepted,
		"skipped", result.Skipped,
	)
	return nil
}

func parseProspectRecord(fields []string) (prospect.Prospect, bool) {
	if len(fields) < prospect.FieldCount {
		return prospect.Prospect{}, false
	}
	return prospect.Prospect{
		Player:       fields[0],
		Position:     fields[1],
		ID:           fields[2],
		DraftYear:    parseYearOrZero(fields[3]),
		ProjectedSPM: parseFloatOrZero(fields[4]),
		Superstar:    parseFloatOrZero(fields[5]),
		Starter:      parseFloatOrZero(fields[6]),
		RolePlayer:   parseFloatOrZero(fields[7]),
		Bust:         parseFloatOrZero(fields[8]),
	}, true
}

// parseYearOrZero also maps values outside the int32 range to zero.
func parseYearOrZero(raw string) int32 {
	v, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		return 0
	}
	return int32(v)
}

func parseFloatOrZero(raw string) float64 {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0
	}
	return v
}

func (s *LoadService) validate(ctx context.Context, payload any) error {
	if err := s.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", ErrInvalidInput, err)
	}
	return nil
}
