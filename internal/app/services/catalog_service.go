package services

import (
	"errors"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/eduvault/eduvault/internal/app/models"
	"github.com/eduvault/eduvault/internal/app/repositories"
	"github.com/eduvault/eduvault/internal/pkg/apperrors"
	"github.com/eduvault/eduvault/internal/pkg/helpers"
	"github.com/eduvault/eduvault/internal/pkg/logger"
	"github.com/eduvault/eduvault/internal/seed"
)

// UploadRequest carries the upload form fields. Every field is optional
// text; missing or unparseable values fall back to documented defaults.
type UploadRequest struct {
	Title    string
	Type     string
	Grade    string
	Uploader string
	Size     string
	Rating   string
}

// UploaderStats aggregates one uploader's resources.
type UploaderStats struct {
	Name          string
	Uploads       int
	AverageRating float64
}

// Summary holds the dashboard counters.
type Summary struct {
	UploadsToday        int
	TotalUploads        int
	TotalSaved          int
	TotalDownloaded     int
	UnreadNotifications int
}

// CatalogService defines the interface for the resource catalog: the
// resource collection plus the download history. Query results are deep
// copies; all changes must go through the mutation operations so that the
// persisted collections stay consistent with memory.
type CatalogService interface {
	ListRecent(gradeFilter, searchText string) []models.Resource
	ListUploads(typeFilter, gradeFilter, searchText string) ([]models.Resource, error)
	ListMyUploads(uploaderName string) []models.Resource
	ListSaved() []models.Resource
	ListDownloaded() []models.Resource
	AggregateByUploader() []UploaderStats
	SummaryCounts(today string) Summary
	Get(id string) (models.Resource, bool)

	Upload(req UploadRequest) (models.Resource, error)
	ToggleSave(id string) (*models.Resource, error)
	Rate(id string, value int) error
	AddComment(id, text string) error
	RecordDownload(id string) error
}

// catalogServiceImpl implements CatalogService
type catalogServiceImpl struct {
	resourceRepo *repositories.ResourceRepository
	downloadRepo *repositories.DownloadRepository
	notifier     Notifier
	currentUser  func() models.User
	now          func() time.Time

	resources []models.Resource
	downloads []string
}

// NewCatalogService creates a new CatalogService. Each of its two
// collections is loaded from the repository, replaced by its seed/default
// when absent or unreadable, and persisted back, so construction is
// idempotent and a first run materializes the example catalog.
func NewCatalogService(
	resourceRepo *repositories.ResourceRepository,
	downloadRepo *repositories.DownloadRepository,
	notifier Notifier,
	currentUser func() models.User,
	now func() time.Time,
) (CatalogService, error) {
	if now == nil {
		now = time.Now
	}

	resources, err := resourceRepo.Load()
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotPersisted) {
			logger.Warn().Err(err).Msg("Persisted resources unreadable, falling back to seed catalog")
		}
		resources = seed.Resources()
	}
	if err := resourceRepo.Save(resources); err != nil {
		return nil, err
	}

	downloads, err := downloadRepo.Load()
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotPersisted) {
			logger.Warn().Err(err).Msg("Persisted download history unreadable, starting empty")
		}
		downloads = seed.Downloads()
	}
	if err := downloadRepo.Save(downloads); err != nil {
		return nil, err
	}

	return &catalogServiceImpl{
		resourceRepo: resourceRepo,
		downloadRepo: downloadRepo,
		notifier:     notifier,
		currentUser:  currentUser,
		now:          now,
		resources:    resources,
		downloads:    downloads,
	}, nil
}

// ListRecent returns the catalog sorted by creation date descending (ties
// keep their original relative order), optionally narrowed by grade and by
// a case-insensitive substring search over title, uploader and type.
func (s *catalogServiceImpl) ListRecent(gradeFilter, searchText string) []models.Resource {
	list := models.CloneResources(s.resources)

	sort.SliceStable(list, func(i, j int) bool {
		return helpers.ParseISODate(list[i].Created).After(helpers.ParseISODate(list[j].Created))
	})

	if gradeFilter != "" && gradeFilter != models.GradeFilterAll {
		list = filterResources(list, func(r models.Resource) bool {
			return r.Grade == gradeFilter
		})
	}

	if q := strings.ToLower(strings.TrimSpace(searchText)); q != "" {
		list = filterResources(list, func(r models.Resource) bool {
			return strings.Contains(strings.ToLower(r.Title+r.Uploader+string(r.Type)), q)
		})
	}

	return list
}

// ListUploads returns the catalog in native collection order, filtered by
// type, grade and a substring search over title and uploader. An empty
// result is reported as ErrNoUploadsFound so the caller can show its
// "no uploads found" indicator.
func (s *catalogServiceImpl) ListUploads(typeFilter, gradeFilter, searchText string) ([]models.Resource, error) {
	list := models.CloneResources(s.resources)

	if typeFilter != "" && typeFilter != models.TypeFilterAll {
		list = filterResources(list, func(r models.Resource) bool {
			return string(r.Type) == typeFilter
		})
	}

	if gradeFilter != "" && gradeFilter != models.GradeFilterAll {
		list = filterResources(list, func(r models.Resource) bool {
			return r.Grade == gradeFilter
		})
	}

	if q := strings.ToLower(strings.TrimSpace(searchText)); q != "" {
		list = filterResources(list, func(r models.Resource) bool {
			return strings.Contains(strings.ToLower(r.Title+r.Uploader), q)
		})
	}

	if len(list) == 0 {
		return nil, apperrors.ErrNoUploadsFound
	}
	return list, nil
}

// ListMyUploads returns the resources whose uploader exactly equals name.
func (s *catalogServiceImpl) ListMyUploads(uploaderName string) []models.Resource {
	return filterResources(models.CloneResources(s.resources), func(r models.Resource) bool {
		return r.Uploader == uploaderName
	})
}

// ListSaved returns the resources flagged as saved.
func (s *catalogServiceImpl) ListSaved() []models.Resource {
	return filterResources(models.CloneResources(s.resources), func(r models.Resource) bool {
		return r.Saved
	})
}

// ListDownloaded resolves the download history, in recorded order, against
// the current catalog. Ids that no longer resolve are skipped silently;
// duplicate downloads appear once per record.
func (s *catalogServiceImpl) ListDownloaded() []models.Resource {
	out := make([]models.Resource, 0, len(s.downloads))
	for _, id := range s.downloads {
		if r, ok := s.findResource(id); ok {
			out = append(out, r.Clone())
		}
	}
	return out
}

// AggregateByUploader groups the catalog by uploader, in order of each
// uploader's first appearance, with upload count and mean rating.
func (s *catalogServiceImpl) AggregateByUploader() []UploaderStats {
	index := make(map[string]int)
	stats := make([]UploaderStats, 0)
	sums := make([]int, 0)

	for _, r := range s.resources {
		i, ok := index[r.Uploader]
		if !ok {
			i = len(stats)
			index[r.Uploader] = i
			stats = append(stats, UploaderStats{Name: r.Uploader})
			sums = append(sums, 0)
		}
		stats[i].Uploads++
		sums[i] += r.Rating
	}

	for i := range stats {
		stats[i].AverageRating = float64(sums[i]) / float64(stats[i].Uploads)
	}
	return stats
}

// SummaryCounts returns the dashboard counters for the given ISO date.
func (s *catalogServiceImpl) SummaryCounts(today string) Summary {
	sum := Summary{
		TotalUploads:    len(s.resources),
		TotalDownloaded: len(s.downloads),
	}
	for _, r := range s.resources {
		if r.Created == today {
			sum.UploadsToday++
		}
		if r.Saved {
			sum.TotalSaved++
		}
	}
	if s.notifier != nil {
		sum.UnreadNotifications = s.notifier.UnreadCount()
	}
	return sum
}

// Get returns a copy of the resource with the given id.
func (s *catalogServiceImpl) Get(id string) (models.Resource, bool) {
	if r, ok := s.findResource(id); ok {
		return r.Clone(), true
	}
	return models.Resource{}, false
}

// Upload constructs a new resource from the request, prepends it to the
// catalog (newest-first native order), persists, and announces it on the
// notification feed. Defaults: title "Untitled", type "pdf", grade "8",
// uploader = current user (or "Guest"), size "1 MB" unless a numeric size
// was supplied, rating 3 unless a rating was supplied. The supplied rating
// is deliberately not checked against the 1-5 bound; only Rate enforces it.
func (s *catalogServiceImpl) Upload(req UploadRequest) (models.Resource, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		title = "Untitled"
	}

	typ := strings.TrimSpace(req.Type)
	if typ == "" {
		typ = string(models.TypePDF)
	}

	grade := strings.TrimSpace(req.Grade)
	if grade == "" {
		grade = "8"
	}

	uploader := strings.TrimSpace(req.Uploader)
	if uploader == "" {
		uploader = "Guest"
		if s.currentUser != nil {
			if name := s.currentUser().Name; name != "" {
				uploader = name
			}
		}
	}

	size := "1 MB"
	if v := strings.TrimSpace(req.Size); v != "" {
		if _, err := strconv.ParseFloat(v, 64); err == nil {
			size = v + " MB"
		}
	}

	rating := 3
	if v := strings.TrimSpace(req.Rating); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n != 0 {
			rating = n
		}
	}

	resource := models.Resource{
		ID:       "r-" + uuid.NewString(),
		Title:    title,
		Type:     models.ResourceType(typ),
		Size:     size,
		Uploader: uploader,
		Grade:    grade,
		Rating:   rating,
		Saved:    false,
		Comments: []string{},
		Created:  helpers.ISODate(s.now()),
	}

	updated := append([]models.Resource{resource}, s.resources...)
	if err := s.resourceRepo.Save(updated); err != nil {
		return models.Resource{}, err
	}
	s.resources = updated

	if s.notifier != nil {
		if _, err := s.notifier.Notify("New resource uploaded: " + title); err != nil {
			logger.Warn().Err(err).Msg("Failed to record upload notification")
		}
	}

	logger.Debug().Str("id", resource.ID).Str("title", resource.Title).Msg("Resource uploaded")
	return resource.Clone(), nil
}

// ToggleSave flips the saved flag on the resource with the given id and
// persists the catalog. A lookup miss is a silent no-op: ToggleSave returns
// (nil, nil) and nothing is written.
func (s *catalogServiceImpl) ToggleSave(id string) (*models.Resource, error) {
	i, ok := s.findIndex(id)
	if !ok {
		return nil, nil
	}

	s.resources[i].Saved = !s.resources[i].Saved
	if err := s.resourceRepo.Save(s.resources); err != nil {
		s.resources[i].Saved = !s.resources[i].Saved
		return nil, err
	}

	r := s.resources[i].Clone()
	return &r, nil
}

// Rate sets the rating on the resource with the given id. Values outside
// 1-5 are rejected with ErrInvalidRating and nothing is written. A lookup
// miss is a silent no-op.
func (s *catalogServiceImpl) Rate(id string, value int) error {
	if value < 1 || value > 5 {
		return apperrors.ErrInvalidRating
	}

	i, ok := s.findIndex(id)
	if !ok {
		return nil
	}

	previous := s.resources[i].Rating
	s.resources[i].Rating = value
	if err := s.resourceRepo.Save(s.resources); err != nil {
		s.resources[i].Rating = previous
		return err
	}
	return nil
}

// AddComment appends a comment to the resource with the given id. Empty or
// whitespace-only text is rejected with ErrEmptyComment. A lookup miss is a
// silent no-op.
func (s *catalogServiceImpl) AddComment(id, text string) error {
	if strings.TrimSpace(text) == "" {
		return apperrors.ErrEmptyComment
	}

	i, ok := s.findIndex(id)
	if !ok {
		return nil
	}

	s.resources[i].Comments = append(s.resources[i].Comments, text)
	if err := s.resourceRepo.Save(s.resources); err != nil {
		s.resources[i].Comments = s.resources[i].Comments[:len(s.resources[i].Comments)-1]
		return err
	}
	return nil
}

// RecordDownload appends the id to the download history unconditionally.
// The id is not checked against the catalog here; ListDownloaded skips
// entries that no longer resolve.
func (s *catalogServiceImpl) RecordDownload(id string) error {
	updated := append(append([]string{}, s.downloads...), id)
	if err := s.downloadRepo.Save(updated); err != nil {
		return err
	}
	s.downloads = updated
	return nil
}

func (s *catalogServiceImpl) findIndex(id string) (int, bool) {
	for i := range s.resources {
		if s.resources[i].ID == id {
			return i, true
		}
	}
	return 0, false
}

func (s *catalogServiceImpl) findResource(id string) (models.Resource, bool) {
	if i, ok := s.findIndex(id); ok {
		return s.resources[i], true
	}
	return models.Resource{}, false
}

func filterResources(list []models.Resource, keep func(models.Resource) bool) []models.Resource {
	out := list[:0]
	for _, r := range list {
		if keep(r) {
			out = append(out, r)
		}
	}
	return out
}
