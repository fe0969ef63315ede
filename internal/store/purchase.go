package store

import (
	"slices"

	"freshdeal/internal/domain/entity"
)

// PurchaseState owns the orders of the user.
type PurchaseState struct {
	Order       Progress
	LastCreated []entity.Purchase

	Active Remote[[]entity.Purchase]

	// Previous accumulates pages; page 1 replaces the list.
	Previous        Remote[[]entity.Purchase]
	PreviousPage    int
	PreviousHasNext bool

	Detail           Remote[*entity.Purchase]
	DetailPurchaseID int64
}

func initialPurchaseState() PurchaseState {
	return PurchaseState{
		Order:    idle(),
		Active:   idleRemote[[]entity.Purchase](nil),
		Previous: idleRemote[[]entity.Purchase](nil),
		Detail:   idleRemote[*entity.Purchase](nil),
	}
}

func replacePurchase(list []entity.Purchase, purchase entity.Purchase) []entity.Purchase {
	i := slices.IndexFunc(list, func(p entity.Purchase) bool { return p.ID == purchase.ID })
	if i < 0 {
		return list
	}
	list = slices.Clone(list)
	list[i] = purchase

	return list
}

func reducePurchase(s PurchaseState, action Action) PurchaseState {
	switch a := action.(type) {
	case Logout:
		return initialPurchaseState()

	case OrderPending:
		s.Order = s.Order.pending()

		return s

	case OrderCreated:
		s.Order = s.Order.succeeded()
		s.LastCreated = slices.Clone(a.Purchases)
		s.Active.Data = append(slices.Clone(s.Active.Data), a.Purchases...)

		return s

	case OrderRejected:
		s.Order = s.Order.failed(a.Message)

		return s

	case OrderResponded:
		s.Active.Data = replacePurchase(s.Active.Data, a.Purchase)
		if !a.Purchase.Active() {
			s.Active.Data = slices.DeleteFunc(slices.Clone(s.Active.Data), func(p entity.Purchase) bool { return p.ID == a.Purchase.ID })
		}
		if s.Detail.Data != nil && s.Detail.Data.ID == a.Purchase.ID {
			purchase := a.Purchase
			s.Detail.Data = &purchase
		}

		return s

	case ActiveOrdersPending:
		s.Active = s.Active.pending()

		return s

	case ActiveOrdersFulfilled:
		s.Active = s.Active.fulfilled(slices.Clone(a.Purchases))

		return s

	case ActiveOrdersRejected:
		s.Active = s.Active.rejected(a.Message)

		return s

	case PreviousOrdersPending:
		s.Previous = s.Previous.pending()

		return s

	case PreviousOrdersFulfilled:
		purchases := slices.Clone(a.Page.Purchases)
		if a.Page.Page > 1 {
			purchases = append(slices.Clone(s.Previous.Data), a.Page.Purchases...)
		}
		s.Previous = s.Previous.fulfilled(purchases)
		s.PreviousPage = a.Page.Page
		s.PreviousHasNext = a.Page.HasNext

		return s

	case PreviousOrdersRejected:
		s.Previous = s.Previous.rejected(a.Message)

		return s

	case OrderDetailPending:
		s.DetailPurchaseID = a.PurchaseID
		s.Detail = s.Detail.pending()

		return s

	case OrderDetailFulfilled:
		if a.Purchase.ID != s.DetailPurchaseID {
			return s
		}
		purchase := a.Purchase
		s.Detail = s.Detail.fulfilled(&purchase)

		return s

	case OrderDetailRejected:
		if a.PurchaseID != s.DetailPurchaseID {
			return s
		}
		s.Detail = s.Detail.rejected(a.Message)

		return s

	default:
		return s
	}
}
