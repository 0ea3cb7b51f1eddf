package pages

import (
	"context"
	"strings"
	"time"

	"github.com/goliatone/go-localpages/internal/logging"
	"github.com/goliatone/go-localpages/pages"
	"github.com/goliatone/go-localpages/pkg/interfaces"
	"github.com/google/uuid"
)

// Service exposes read and curation use-cases over generated pages.
type Service interface {
	GetPage(ctx context.Context, id uuid.UUID) (*pages.ServicePage, error)
	GetPageBySlug(ctx context.Context, slug string) (*pages.ServicePage, error)
	ListPages(ctx context.Context, filter ListFilter) ([]*pages.ServicePage, error)
	UpdatePageMeta(ctx context.Context, req UpdateMetaRequest) (*pages.ServicePage, error)
	DeletePage(ctx context.Context, id uuid.UUID) error
}

// UpdateMetaRequest carries an administrator's manual edits to a generated
// page. Nil fields are left untouched. Applying any edit marks the page as
// hand-curated so later generate runs leave it alone.
type UpdateMetaRequest struct {
	ID              uuid.UUID
	Title           *string
	MetaTitle       *string
	MetaDescription *string
	Keywords        []string
	Content         *string
}

// ServiceOption configures the page service.
type ServiceOption func(*service)

// WithClock overrides the clock used to stamp updates.
func WithClock(clock func() time.Time) ServiceOption {
	return func(s *service) {
		if clock != nil {
			s.now = clock
		}
	}
}

// WithLogger injects the logger used by the service.
func WithLogger(logger interfaces.Logger) ServiceOption {
	return func(s *service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

type service struct {
	repo   PageRepository
	now    func() time.Time
	logger interfaces.Logger
}

// NewService constructs the page service.
func NewService(repo PageRepository, opts ...ServiceOption) Service {
	s := &service{
		repo:   repo,
		now:    time.Now,
		logger: logging.NoOp(),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

func (s *service) GetPage(ctx context.Context, id uuid.UUID) (*pages.ServicePage, error) {
	if id == uuid.Nil {
		return nil, pages.ErrPageIDRequired
	}
	return s.repo.GetByID(ctx, id)
}

func (s *service) GetPageBySlug(ctx context.Context, slug string) (*pages.ServicePage, error) {
	return s.repo.GetBySlug(ctx, strings.TrimSpace(slug))
}

func (s *service) ListPages(ctx context.Context, filter ListFilter) ([]*pages.ServicePage, error) {
	return s.repo.List(ctx, filter)
}

// UpdatePageMeta applies manual edits and flips IsGenerated off so generate
// runs skip the page from now on.
func (s *service) UpdatePageMeta(ctx context.Context, req UpdateMetaRequest) (*pages.ServicePage, error) {
	if req.ID == uuid.Nil {
		return nil, pages.ErrPageIDRequired
	}

	record, err := s.repo.GetByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	edited := false
	if req.Title != nil {
		record.Title = strings.TrimSpace(*req.Title)
		edited = true
	}
	if req.MetaTitle != nil {
		record.MetaTitle = strings.TrimSpace(*req.MetaTitle)
		edited = true
	}
	if req.MetaDescription != nil {
		record.MetaDescription = strings.TrimSpace(*req.MetaDescription)
		edited = true
	}
	if req.Keywords != nil {
		record.Keywords = req.Keywords
		edited = true
	}
	if req.Content != nil {
		record.Content = *req.Content
		edited = true
	}

	if !edited {
		return record, nil
	}

	record.IsGenerated = false
	record.UpdatedAt = s.now()

	updated, err := s.repo.Update(ctx, record)
	if err != nil {
		return nil, err
	}

	s.logger.Info("pages.meta_edited", "slug", updated.Slug)
	return updated, nil
}

func (s *service) DeletePage(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return pages.ErrPageIDRequired
	}
	return s.repo.Delete(ctx, id)
}
