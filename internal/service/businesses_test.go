package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/localspot/discovery-api/internal/dto"
	"github.com/localspot/discovery-api/internal/entity"
)

type fakeBusinessesRepo struct {
	lastFilter   dto.BusinessFilter
	lastKey      string
	lastInactive bool
	listResult   []entity.Business
	listErr      error
	findResult   *entity.Business
	findErr      error
}

func (f *fakeBusinessesRepo) List(ctx context.Context, filter dto.BusinessFilter) ([]entity.Business, error) {
	f.lastFilter = filter
	return f.listResult, f.listErr
}

func (f *fakeBusinessesRepo) FindByIDOrSlug(ctx context.Context, key string, includeInactive bool) (*entity.Business, error) {
	f.lastKey = key
	f.lastInactive = includeInactive
	return f.findResult, f.findErr
}

func floatPtr(v float64) *float64 { return &v }
func strPtr(v string) *string     { return &v }

func baseBusiness() entity.Business {
	return entity.Business{
		ID:       uuid.MustParse("aaaaaaaa-aaaa-aaaa-aaaa-aaaaaaaaaaaa"),
		Slug:     "sunrise-bakery",
		Name:     "Sunrise Bakery",
		Status:   entity.StatusActive,
		Verified: true,
	}
}

func TestBusinessViewFrom_PercentileGroup(t *testing.T) {
	b := baseBusiness()
	b.ServiceScore = floatPtr(88)
	b.PriceScore = floatPtr(72)
	b.AmbienceScore = floatPtr(91)

	view := BusinessViewFrom(b, DefaultPhoneRegion)
	if view.Percentiles == nil {
		t.Fatalf("expected percentiles group when all three scores stored")
	}
	if view.Percentiles.Service != 88 || view.Percentiles.Price != 72 || view.Percentiles.Ambience != 91 {
		t.Fatalf("unexpected percentile values: %+v", view.Percentiles)
	}

	// a stored zero still counts as present
	b.PriceScore = floatPtr(0)
	view = BusinessViewFrom(b, DefaultPhoneRegion)
	if view.Percentiles == nil {
		t.Fatalf("expected percentiles group with a zero score")
	}
	if view.Percentiles.Price != 0 {
		t.Fatalf("expected zero price score preserved, got %v", view.Percentiles.Price)
	}

	// any missing score suppresses the group
	b.PriceScore = nil
	view = BusinessViewFrom(b, DefaultPhoneRegion)
	if view.Percentiles != nil {
		t.Fatalf("expected no percentiles group when a score is absent")
	}
}

func TestBusinessViewFrom_Distance(t *testing.T) {
	b := baseBusiness()
	b.DistanceKm = floatPtr(5)

	view := BusinessViewFrom(b, DefaultPhoneRegion)
	if view.Distance == nil || *view.Distance != "5 km" {
		t.Fatalf("expected \"5 km\", got %v", view.Distance)
	}

	b.DistanceKm = floatPtr(2.5)
	view = BusinessViewFrom(b, DefaultPhoneRegion)
	if view.Distance == nil || *view.Distance != "2.5 km" {
		t.Fatalf("expected \"2.5 km\", got %v", view.Distance)
	}

	b.DistanceKm = nil
	view = BusinessViewFrom(b, DefaultPhoneRegion)
	if view.Distance != nil {
		t.Fatalf("expected absent distance, got %v", *view.Distance)
	}
}

func TestBusinessViewFrom_Href(t *testing.T) {
	b := baseBusiness()

	view := BusinessViewFrom(b, DefaultPhoneRegion)
	if view.Href != "/business/sunrise-bakery" {
		t.Fatalf("expected derived href, got %s", view.Href)
	}

	b.Href = strPtr("/featured/sunrise")
	view = BusinessViewFrom(b, DefaultPhoneRegion)
	if view.Href != "/featured/sunrise" {
		t.Fatalf("expected stored href preserved, got %s", view.Href)
	}

	b.Href = strPtr("")
	view = BusinessViewFrom(b, DefaultPhoneRegion)
	if view.Href != "/business/sunrise-bakery" {
		t.Fatalf("expected empty href to fall back, got %s", view.Href)
	}
}

func TestBusinessViewFrom_Phone(t *testing.T) {
	b := baseBusiness()
	b.Phone = strPtr("+442071838750")

	view := BusinessViewFrom(b, DefaultPhoneRegion)
	if view.Phone == nil || *view.Phone != "+44 20 7183 8750" {
		t.Fatalf("expected international format, got %v", view.Phone)
	}

	b.Phone = strPtr("front desk")
	view = BusinessViewFrom(b, DefaultPhoneRegion)
	if view.Phone == nil || *view.Phone != "front desk" {
		t.Fatalf("expected unparseable value passed through, got %v", view.Phone)
	}

	b.Phone = nil
	view = BusinessViewFrom(b, DefaultPhoneRegion)
	if view.Phone != nil {
		t.Fatalf("expected absent phone to stay absent")
	}
}

func TestBusinessViewFrom_PhoneRegion(t *testing.T) {
	b := baseBusiness()
	b.Phone = strPtr("020 7183 8750")

	// national-format numbers resolve against the configured region
	view := BusinessViewFrom(b, "GB")
	if view.Phone == nil || *view.Phone != "+44 20 7183 8750" {
		t.Fatalf("expected GB region to resolve national number, got %v", view.Phone)
	}

	view = BusinessViewFrom(b, "US")
	if view.Phone == nil || *view.Phone != "020 7183 8750" {
		t.Fatalf("expected mismatched region to pass value through, got %v", view.Phone)
	}
}

func TestNewBusinessesService_PhoneRegionDefault(t *testing.T) {
	repo := &fakeBusinessesRepo{}
	svc := NewBusinessesService(repo, false, 20, "")
	if svc.phoneRegion != DefaultPhoneRegion {
		t.Fatalf("expected blank region to fall back to %s, got %s", DefaultPhoneRegion, svc.phoneRegion)
	}
}

func TestBusinessDetailViewFrom_Placeholders(t *testing.T) {
	view := BusinessDetailViewFrom(baseBusiness(), DefaultPhoneRegion)
	if view.Scores != placeholderScores {
		t.Fatalf("unexpected scores: %+v", view.Scores)
	}
	if len(view.Specials) != 1 {
		t.Fatalf("expected one special, got %d", len(view.Specials))
	}
}

func TestListBusinesses_Defaults(t *testing.T) {
	repo := &fakeBusinessesRepo{listResult: []entity.Business{baseBusiness()}}
	svc := NewBusinessesService(repo, false, 20, DefaultPhoneRegion)

	views, err := svc.ListBusinesses(context.Background(), dto.BusinessFilter{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(views) != 1 {
		t.Fatalf("expected 1 view, got %d", len(views))
	}
	if repo.lastFilter.Limit != 20 {
		t.Fatalf("expected default limit 20, got %d", repo.lastFilter.Limit)
	}
	if repo.lastFilter.IncludeInactive {
		t.Fatalf("expected active-only listing by default")
	}

	// explicit limit is not clamped
	if _, err := svc.ListBusinesses(context.Background(), dto.BusinessFilter{Limit: 500}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.lastFilter.Limit != 500 {
		t.Fatalf("expected limit 500 passed through, got %d", repo.lastFilter.Limit)
	}
}

func TestListBusinesses_IncludeInactive(t *testing.T) {
	repo := &fakeBusinessesRepo{}
	svc := NewBusinessesService(repo, true, 20, DefaultPhoneRegion)

	if _, err := svc.ListBusinesses(context.Background(), dto.BusinessFilter{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !repo.lastFilter.IncludeInactive {
		t.Fatalf("expected inactive rows included")
	}
}

func TestGetBusiness(t *testing.T) {
	record := baseBusiness()
	repo := &fakeBusinessesRepo{findResult: &record}
	svc := NewBusinessesService(repo, false, 20, DefaultPhoneRegion)

	view, err := svc.GetBusiness(context.Background(), "sunrise-bakery")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if view.Slug != "sunrise-bakery" {
		t.Fatalf("unexpected view: %+v", view)
	}
	if repo.lastKey != "sunrise-bakery" || repo.lastInactive {
		t.Fatalf("unexpected repo call: key=%s inactive=%v", repo.lastKey, repo.lastInactive)
	}

	repo.findResult = nil
	repo.findErr = errors.New("boom")
	if _, err := svc.GetBusiness(context.Background(), "missing"); err == nil {
		t.Fatalf("expected error to propagate")
	}
}
