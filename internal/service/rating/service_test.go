package rating

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/serviceportals/ops-backend-go/internal/domain/rating"
	"github.com/serviceportals/ops-backend-go/internal/domain/workorder"
	"github.com/serviceportals/ops-backend-go/internal/pkg/jwt"
)

type fakeLinkRepo struct {
	links  map[string]rating.RatingLink
	nextID int
}

func newFakeLinkRepo() *fakeLinkRepo {
	return &fakeLinkRepo{links: map[string]rating.RatingLink{}}
}

func (f *fakeLinkRepo) Create(ctx context.Context, link rating.RatingLink) (rating.RatingLink, error) {
	for _, existing := range f.links {
		if existing.WorkOrderID == link.WorkOrderID && existing.UnitID == link.UnitID {
			return rating.RatingLink{}, rating.ErrLinkExists
		}
	}
	f.nextID++
	link.ID = "link-" + string(rune('0'+f.nextID))
	link.CreatedAt = time.Now()
	f.links[link.ID] = link
	return link, nil
}

func (f *fakeLinkRepo) GetByID(ctx context.Context, id string, unitID string) (rating.RatingLink, error) {
	if link, ok := f.links[id]; ok && link.UnitID == unitID {
		return link, nil
	}
	return rating.RatingLink{}, rating.ErrRatingLinkNotFound
}

func (f *fakeLinkRepo) GetByToken(ctx context.Context, token string) (rating.RatingLink, error) {
	for _, link := range f.links {
		if link.Token == token {
			return link, nil
		}
	}
	return rating.RatingLink{}, rating.ErrRatingLinkNotFound
}

func (f *fakeLinkRepo) GetByWorkOrderID(ctx context.Context, workOrderID string, unitID string) (rating.RatingLink, error) {
	for _, link := range f.links {
		if link.WorkOrderID == workOrderID && link.UnitID == unitID {
			return link, nil
		}
	}
	return rating.RatingLink{}, rating.ErrRatingLinkNotFound
}

func (f *fakeLinkRepo) GetByUnitID(ctx context.Context, unitID string) ([]rating.RatingLink, error) {
	var out []rating.RatingLink
	for _, link := range f.links {
		if link.UnitID == unitID {
			out = append(out, link)
		}
	}
	return out, nil
}

func (f *fakeLinkRepo) SaveSubmission(ctx context.Context, id string, score int, comment *string) error {
	link, ok := f.links[id]
	if !ok {
		return rating.ErrRatingLinkNotFound
	}
	now := time.Now()
	link.Score = &score
	link.Comment = comment
	link.SubmittedAt = &now
	f.links[id] = link
	return nil
}

type fakeOrderRepo struct {
	orders map[string]workorder.WorkOrder
}

func (f *fakeOrderRepo) Create(ctx context.Context, wo workorder.WorkOrder) (workorder.WorkOrder, error) {
	return wo, nil
}

func (f *fakeOrderRepo) GetByID(ctx context.Context, id string, unitID string) (workorder.WorkOrder, error) {
	if wo, ok := f.orders[id]; ok && wo.UnitID == unitID {
		return wo, nil
	}
	return workorder.WorkOrder{}, workorder.ErrWorkOrderNotFound
}

func (f *fakeOrderRepo) List(ctx context.Context, unitID string, filter workorder.ListFilter) ([]workorder.WorkOrder, error) {
	return nil, nil
}

func (f *fakeOrderRepo) Update(ctx context.Context, wo workorder.WorkOrder) error { return nil }

func (f *fakeOrderRepo) Delete(ctx context.Context, id string, unitID string) error { return nil }

func adminPrincipal() jwt.Principal {
	return jwt.Principal{ID: "admin-1", Role: jwt.RoleAdmin, UnitID: "unit-a"}
}

func setup(orders map[string]workorder.WorkOrder) (rating.Service, *fakeLinkRepo) {
	links := newFakeLinkRepo()
	svc := NewRatingService(links, &fakeOrderRepo{orders: orders})
	return svc, links
}

func TestCreateLink_SubmittedOrder(t *testing.T) {
	ctx := context.Background()
	svc, _ := setup(map[string]workorder.WorkOrder{
		"wo-1": {ID: "wo-1", UnitID: "unit-a", Status: workorder.StatusSubmitted},
	})

	link, err := svc.CreateLink(ctx, adminPrincipal(), rating.CreateRatingLinkRequest{WorkOrderID: "wo-1"})
	require.NoError(t, err)
	assert.Equal(t, "wo-1", link.WorkOrderID)
	assert.NotEmpty(t, link.Token)
	assert.False(t, link.Submitted())
}

func TestCreateLink_RequiresSubmittedOrder(t *testing.T) {
	ctx := context.Background()
	svc, _ := setup(map[string]workorder.WorkOrder{
		"wo-draft":    {ID: "wo-draft", UnitID: "unit-a", Status: workorder.StatusDraft},
		"wo-assigned": {ID: "wo-assigned", UnitID: "unit-a", Status: workorder.StatusAssigned},
	})

	_, err := svc.CreateLink(ctx, adminPrincipal(), rating.CreateRatingLinkRequest{WorkOrderID: "wo-draft"})
	assert.ErrorIs(t, err, rating.ErrOrderNotSubmitted)

	_, err = svc.CreateLink(ctx, adminPrincipal(), rating.CreateRatingLinkRequest{WorkOrderID: "wo-assigned"})
	assert.ErrorIs(t, err, rating.ErrOrderNotSubmitted)
}

func TestCreateLink_UnknownOrder(t *testing.T) {
	ctx := context.Background()
	svc, _ := setup(nil)

	_, err := svc.CreateLink(ctx, adminPrincipal(), rating.CreateRatingLinkRequest{WorkOrderID: "wo-missing"})
	assert.ErrorIs(t, err, workorder.ErrWorkOrderNotFound)
}

func TestCreateLink_SecondLinkIsConflict(t *testing.T) {
	ctx := context.Background()
	svc, _ := setup(map[string]workorder.WorkOrder{
		"wo-1": {ID: "wo-1", UnitID: "unit-a", Status: workorder.StatusSubmitted},
	})

	_, err := svc.CreateLink(ctx, adminPrincipal(), rating.CreateRatingLinkRequest{WorkOrderID: "wo-1"})
	require.NoError(t, err)

	_, err = svc.CreateLink(ctx, adminPrincipal(), rating.CreateRatingLinkRequest{WorkOrderID: "wo-1"})
	assert.ErrorIs(t, err, rating.ErrLinkExists)
}

func TestSubmit_AcceptsExactlyOneSubmission(t *testing.T) {
	ctx := context.Background()
	svc, _ := setup(map[string]workorder.WorkOrder{
		"wo-1": {ID: "wo-1", UnitID: "unit-a", Status: workorder.StatusSubmitted},
	})

	link, err := svc.CreateLink(ctx, adminPrincipal(), rating.CreateRatingLinkRequest{WorkOrderID: "wo-1"})
	require.NoError(t, err)

	comment := "Great service"
	submitted, err := svc.Submit(ctx, rating.SubmitRatingRequest{Token: link.Token, Score: 5, Comment: &comment})
	require.NoError(t, err)
	require.NotNil(t, submitted.Score)
	assert.Equal(t, 5, *submitted.Score)
	assert.True(t, submitted.Submitted())

	_, err = svc.Submit(ctx, rating.SubmitRatingRequest{Token: link.Token, Score: 1})
	assert.ErrorIs(t, err, rating.ErrAlreadySubmitted)
}

func TestSubmit_UnknownToken(t *testing.T) {
	ctx := context.Background()
	svc, _ := setup(nil)

	_, err := svc.Submit(ctx, rating.SubmitRatingRequest{Token: "nope", Score: 4})
	assert.ErrorIs(t, err, rating.ErrRatingLinkNotFound)
}
