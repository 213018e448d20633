package service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/lib/pq"
	"github.com/microcosm-cc/bluemonday"

	"instituteCMS/internal/models"
	"instituteCMS/internal/repository"
	"instituteCMS/internal/storage"
)

const blogImageNamespace = "blogs"

// contentPolicy keeps the markup a rich-text editor produces and drops scripts.
var contentPolicy = bluemonday.UGCPolicy()

type BlogService interface {
	CreateBlog(ctx context.Context, req models.CreateBlogRequest) (*models.Blog, error)
	GetBlogs(ctx context.Context) ([]models.Blog, error)
	// GetBlog counts a view of the referenced blog and returns it.
	GetBlog(ctx context.Context, ref models.BlogRef) (*models.Blog, error)
	UpdateBlog(ctx context.Context, blogID string, req models.UpdateBlogRequest) (*models.Blog, error)
	DeleteBlog(ctx context.Context, blogID string) error
}

type blogService struct {
	blogRepo repository.BlogRepository
	media    storage.MediaDelegate
	logger   *slog.Logger
}

func NewBlogService(blogRepo repository.BlogRepository, media storage.MediaDelegate, logger *slog.Logger) BlogService {
	return &blogService{
		blogRepo: blogRepo,
		media:    media,
		logger:   logger,
	}
}

// imageSlot pairs an incoming payload with the field its URL goes to.
type imageSlot struct {
	payload string
	dst     **string
}

func (s *blogService) CreateBlog(ctx context.Context, req models.CreateBlogRequest) (*models.Blog, error) {
	blog := &models.Blog{
		Title:    strings.TrimSpace(req.Title),
		SubTitle: req.SubTitle,
		Content:  contentPolicy.Sanitize(req.Content),
		Tags:     normalizeTags(req.Tags),
		Category: defaultCategory(req.Category),
		AuthorID: strings.TrimSpace(req.Author),
	}

	slug, err := normalizeSlug(req.Slug)
	if err != nil {
		return nil, err
	}
	blog.Slug = slug

	if err := validateStruct(blog); err != nil {
		return nil, err
	}

	// title image first
	uploaded, err := s.uploadImages(ctx, []imageSlot{
		{payload: req.TitleImage, dst: &blog.TitleImage},
		{payload: req.SecondImage, dst: &blog.SecondImage},
	})
	if err != nil {
		return nil, err
	}

	if err := s.blogRepo.Create(ctx, blog); err != nil {
		s.discardImages(ctx, uploaded)
		return nil, err
	}

	return blog, nil
}

func (s *blogService) GetBlogs(ctx context.Context) ([]models.Blog, error) {
	return s.blogRepo.List(ctx)
}

func (s *blogService) GetBlog(ctx context.Context, ref models.BlogRef) (*models.Blog, error) {
	return s.blogRepo.IncrementViews(ctx, ref)
}

func (s *blogService) UpdateBlog(ctx context.Context, blogID string, req models.UpdateBlogRequest) (*models.Blog, error) {
	blog, err := s.blogRepo.GetByID(ctx, blogID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		blog.Title = strings.TrimSpace(*req.Title)
	}
	if req.SubTitle != nil {
		blog.SubTitle = *req.SubTitle
	}
	if req.Content != nil {
		blog.Content = contentPolicy.Sanitize(*req.Content)
	}
	if req.Tags != nil {
		blog.Tags = normalizeTags(*req.Tags)
	}
	if req.Category != nil {
		blog.Category = defaultCategory(*req.Category)
	}
	if req.Slug != nil {
		slug, err := normalizeSlug(*req.Slug)
		if err != nil {
			return nil, err
		}
		blog.Slug = slug
	}

	if err := validateStruct(blog); err != nil {
		return nil, err
	}

	// replaced images stay in the media store
	var slots []imageSlot
	if req.TitleImage != nil {
		slots = append(slots, imageSlot{payload: *req.TitleImage, dst: &blog.TitleImage})
	}
	if req.SecondImage != nil {
		slots = append(slots, imageSlot{payload: *req.SecondImage, dst: &blog.SecondImage})
	}

	uploaded, err := s.uploadImages(ctx, slots)
	if err != nil {
		return nil, err
	}

	if err := s.blogRepo.Update(ctx, blog); err != nil {
		s.discardImages(ctx, uploaded)
		return nil, err
	}

	return blog, nil
}

func (s *blogService) DeleteBlog(ctx context.Context, blogID string) error {
	blog, err := s.blogRepo.GetByID(ctx, blogID)
	if err != nil {
		return err
	}

	s.discardImages(ctx, blog.Images())

	return s.blogRepo.Delete(ctx, blogID)
}

// uploadImages sends the non-empty payloads to the media delegate one at a
// time. On failure the images stored so far are discarded.
func (s *blogService) uploadImages(ctx context.Context, slots []imageSlot) ([]string, error) {
	var uploaded []string

	for _, slot := range slots {
		if strings.TrimSpace(slot.payload) == "" {
			continue
		}

		url, err := s.media.Upload(ctx, blogImageNamespace, slot.payload)
		if err != nil {
			s.discardImages(ctx, uploaded)
			return nil, err
		}

		uploaded = append(uploaded, url)
		*slot.dst = &url
	}

	return uploaded, nil
}

// discardImages asks the media delegate to delete each image and only logs
// failures.
func (s *blogService) discardImages(ctx context.Context, urls []string) {
	deleteImages(ctx, s.media, s.logger, blogImageNamespace, urls)
}

func deleteImages(ctx context.Context, media storage.MediaDelegate, logger *slog.Logger, namespace string, urls []string) {
	ctx = context.WithoutCancel(ctx)

	for _, url := range urls {
		publicID := storage.PublicIDFromURL(namespace, url)
		if publicID == "" {
			continue
		}

		if err := media.Delete(ctx, publicID); err != nil {
			logger.Warn("failed to delete image",
				slog.String("public_id", publicID),
				slog.String("error", err.Error()),
			)
		}
	}
}

func normalizeTags(tags []string) pq.StringArray {
	out := pq.StringArray{}
	for _, tag := range tags {
		if tag = strings.TrimSpace(tag); tag != "" {
			out = append(out, tag)
		}
	}
	return out
}

func defaultCategory(category string) string {
	if category = strings.TrimSpace(category); category == "" {
		return models.DefaultBlogCategory
	}
	return category
}
