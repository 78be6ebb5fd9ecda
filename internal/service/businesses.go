package service

import (
	"context"
	"strconv"

	"github.com/nyaruka/phonenumbers"

	"github.com/localspot/discovery-api/internal/dto"
	"github.com/localspot/discovery-api/internal/entity"
	"github.com/localspot/discovery-api/internal/repository"
)

// DefaultPhoneRegion is the fallback region for parsing phone numbers stored
// without a country prefix.
const DefaultPhoneRegion = "US"

// placeholder detail-page values; the backing schema columns do not exist yet.
var (
	placeholderScores = dto.TrustScores{
		Trust:        95,
		Punctuality:  92,
		Friendliness: 96,
	}
	placeholderSpecials = []dto.Special{
		{Title: "Local favorite", Description: "Ask in store about this week's featured deal."},
	}
)

// BusinessesService exposes read operations for the business catalogue and
// owns the stored-row to view-model transform.
type BusinessesService struct {
	repo            repository.BusinessesRepository
	includeInactive bool
	defaultLimit    int
	phoneRegion     string
}

// NewBusinessesService creates a new instance of BusinessesService.
// includeInactive lifts the active-status filter on both the listing and the
// single-entity lookup; defaultLimit caps listings when the caller sends none;
// phoneRegion is the region used to parse prefixless phone numbers.
func NewBusinessesService(repo repository.BusinessesRepository, includeInactive bool, defaultLimit int, phoneRegion string) *BusinessesService {
	if defaultLimit <= 0 {
		defaultLimit = 20
	}
	if phoneRegion == "" {
		phoneRegion = DefaultPhoneRegion
	}
	return &BusinessesService{repo: repo, includeInactive: includeInactive, defaultLimit: defaultLimit, phoneRegion: phoneRegion}
}

// ListBusinesses returns transformed business records matching the filter.
func (s *BusinessesService) ListBusinesses(ctx context.Context, filter dto.BusinessFilter) ([]dto.BusinessView, error) {
	if filter.Limit <= 0 {
		filter.Limit = s.defaultLimit
	}
	filter.IncludeInactive = s.includeInactive

	records, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	views := make([]dto.BusinessView, 0, len(records))
	for _, record := range records {
		views = append(views, BusinessViewFrom(record, s.phoneRegion))
	}
	return views, nil
}

// GetBusiness resolves one business by primary key or slug and returns its
// detail view.
func (s *BusinessesService) GetBusiness(ctx context.Context, key string) (*dto.BusinessDetailView, error) {
	record, err := s.repo.FindByIDOrSlug(ctx, key, s.includeInactive)
	if err != nil {
		return nil, err
	}

	view := BusinessDetailViewFrom(*record, s.phoneRegion)
	return &view, nil
}

// BusinessViewFrom maps a stored business row to its frontend shape. Pure and
// total: every optional column may be absent.
func BusinessViewFrom(b entity.Business, phoneRegion string) dto.BusinessView {
	view := dto.BusinessView{
		ID:          b.ID,
		Slug:        b.Slug,
		Name:        b.Name,
		Category:    b.Category,
		Location:    b.Location,
		Rating:      b.Rating,
		TotalRating: b.TotalRating,
		Reviews:     b.Reviews,
		Badge:       b.Badge,
		Verified:    b.Verified,
		Image:       b.ImageURL,
		ImageAlt:    b.ImageAlt,
		Href:        hrefOrDefault(b),
		Percentiles: percentileGroup(b),
		Distance:    distanceDisplay(b.DistanceKm),
		PriceRange:  b.PriceRange,
		Description: b.Description,
		Phone:       displayPhone(b.Phone, phoneRegion),
		Website:     b.Website,
		Address:     b.Address,
	}
	return view
}

// BusinessDetailViewFrom maps a stored row to the detail-page shape, adding
// the placeholder trust scores and specials list.
func BusinessDetailViewFrom(b entity.Business, phoneRegion string) dto.BusinessDetailView {
	return dto.BusinessDetailView{
		BusinessView: BusinessViewFrom(b, phoneRegion),
		Scores:       placeholderScores,
		Specials:     placeholderSpecials,
	}
}

func hrefOrDefault(b entity.Business) string {
	if b.Href != nil && *b.Href != "" {
		return *b.Href
	}
	return "/business/" + b.Slug
}

// percentileGroup emits the group only when all three scores are stored. A
// stored zero counts as present.
func percentileGroup(b entity.Business) *dto.PercentileGroup {
	if b.ServiceScore == nil || b.PriceScore == nil || b.AmbienceScore == nil {
		return nil
	}
	return &dto.PercentileGroup{
		Service:  *b.ServiceScore,
		Price:    *b.PriceScore,
		Ambience: *b.AmbienceScore,
	}
}

// distanceDisplay renders the stored kilometre value verbatim with a unit
// suffix; no conversion or rounding.
func distanceDisplay(km *float64) *string {
	if km == nil {
		return nil
	}
	display := strconv.FormatFloat(*km, 'f', -1, 64) + " km"
	return &display
}

// displayPhone normalizes a stored phone number to international display
// format. Values that do not parse as valid numbers pass through unchanged.
func displayPhone(raw *string, region string) *string {
	if raw == nil || *raw == "" {
		return raw
	}
	number, err := phonenumbers.Parse(*raw, region)
	if err != nil || !phonenumbers.IsValidNumber(number) {
		return raw
	}
	formatted := phonenumbers.Format(number, phonenumbers.INTERNATIONAL)
	return &formatted
}
