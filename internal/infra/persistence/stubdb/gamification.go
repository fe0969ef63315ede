package stubdb

import (
	"context"
	"slices"

	"freshdeal/internal/domain/entity"
	"freshdeal/internal/errors"
	"freshdeal/internal/infra/persistence/model"

	"github.com/shopspring/decimal"
)

// foodPerPortion is the weight in kilograms credited for each rescued portion.
var foodPerPortion = decimal.RequireFromString("0.4")

// savedStatuses are the orders that count towards stats and rankings.
var savedStatuses = []string{string(entity.PurchaseAccepted), string(entity.PurchaseCompleted)}

type achievementRule struct {
	id          int64
	name        string
	description string
	kind        string
	orders      int
	discount    int
}

var achievementCatalog = []achievementRule{
	{id: 1, name: "First Rescue", description: "Complete your first order", kind: "ORDER_COUNT", orders: 1, discount: 5},
	{id: 2, name: "Regular Saver", description: "Complete five orders", kind: "ORDER_COUNT", orders: 5, discount: 10},
	{id: 3, name: "Food Hero", description: "Complete twenty orders", kind: "ORDER_COUNT", orders: 20, discount: 15},
}

// Stats sums the savings of a user.
func (b *Backend) Stats(ctx context.Context, userID int64) (*entity.Stats, error) {
	var purchases []model.PurchaseModel
	err := b.db.WithContext(ctx).
		Where("user_id = ? AND status IN ?", userID, savedStatuses).
		Find(&purchases).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to load purchases")
	}

	stats := &entity.Stats{
		MoneySaved:    decimal.Zero,
		FoodSaved:     decimal.Zero,
		TotalDiscount: decimal.Zero,
	}
	for i := range purchases {
		p := &purchases[i]
		stats.MoneySaved = stats.MoneySaved.Add(p.SavedAmount)
		stats.TotalDiscount = stats.TotalDiscount.Add(p.SavedAmount)
		stats.FoodSaved = stats.FoodSaved.Add(foodPerPortion.Mul(decimal.NewFromInt(int64(p.Quantity))))
	}

	return stats, nil
}

// Achievements evaluates the catalog against the completed orders of a user.
// An unlocked badge is dated by the order that earned it.
func (b *Backend) Achievements(ctx context.Context, userID int64) ([]entity.Achievement, error) {
	var completed []model.PurchaseModel
	err := b.db.WithContext(ctx).
		Where("user_id = ? AND status = ?", userID, string(entity.PurchaseCompleted)).
		Order("updated_at, id").
		Find(&completed).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to load purchases")
	}

	achievements := make([]entity.Achievement, 0, len(achievementCatalog))
	for _, rule := range achievementCatalog {
		threshold, discount := rule.orders, rule.discount
		a := entity.Achievement{
			ID:                 rule.id,
			Name:               rule.name,
			Description:        rule.description,
			Type:               rule.kind,
			Threshold:          &threshold,
			DiscountPercentage: &discount,
		}
		if len(completed) >= rule.orders {
			earned := completed[rule.orders-1].UpdatedAt
			a.Unlocked = true
			a.EarnedAt = &earned
		}
		achievements = append(achievements, a)
	}

	return achievements, nil
}

// Rankings orders every user with savings by total discount. The caller's own
// row is nil when they have not saved anything yet.
func (b *Backend) Rankings(ctx context.Context, userID int64) ([]entity.Rank, *entity.Rank, error) {
	var purchases []model.PurchaseModel
	if err := b.db.WithContext(ctx).Where("status IN ?", savedStatuses).Find(&purchases).Error; err != nil {
		return nil, nil, errors.Wrap(err, "failed to load purchases")
	}

	totals := make(map[int64]decimal.Decimal)
	order := make([]int64, 0)
	for i := range purchases {
		p := &purchases[i]
		if _, ok := totals[p.UserID]; !ok {
			order = append(order, p.UserID)
		}
		totals[p.UserID] = totals[p.UserID].Add(p.SavedAmount)
	}
	if len(order) == 0 {
		return []entity.Rank{}, nil, nil
	}

	var users []model.UserModel
	if err := b.db.WithContext(ctx).Where("id IN ?", order).Find(&users).Error; err != nil {
		return nil, nil, errors.Wrap(err, "failed to load users")
	}
	names := make(map[int64]string, len(users))
	for _, u := range users {
		names[u.ID] = u.Name
	}

	ranks := make([]entity.Rank, 0, len(order))
	for _, id := range order {
		ranks = append(ranks, entity.Rank{UserID: id, UserName: names[id], TotalDiscount: totals[id]})
	}
	slices.SortStableFunc(ranks, func(x, y entity.Rank) int {
		return y.TotalDiscount.Cmp(x.TotalDiscount)
	})

	var own *entity.Rank
	for i := range ranks {
		ranks[i].Rank = i + 1
		if ranks[i].UserID == userID {
			r := ranks[i]
			own = &r
		}
	}

	return ranks, own, nil
}
