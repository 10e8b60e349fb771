package search

import (
	"context"
	"regexp"
	"strings"

	"carsline/internal/domain"
)

const (
	minQueryChars    = 3
	perCategoryLimit = 10
)

var (
	orderNumberShape = regexp.MustCompile(`^[A-Z]{3}-\d+$`)
	vinFragmentShape = regexp.MustCompile(`^[A-Z0-9]{4}$`)
	hasLetter        = regexp.MustCompile(`[A-Z]`)
)

// Results groups the per-category hits of one query. Categories the query
// shape does not map to stay empty.
type Results struct {
	Orders    []domain.Order    `json:"orders"`
	Vehicles  []domain.Vehicle  `json:"vehicles"`
	Customers []domain.Customer `json:"customers"`
}

func (r Results) Total() int {
	return len(r.Orders) + len(r.Vehicles) + len(r.Customers)
}

type Service struct {
	orders    OrderSearcher
	vehicles  VehicleSearcher
	customers CustomerSearcher
}

func NewService(orders OrderSearcher, vehicles VehicleSearcher, customers CustomerSearcher) *Service {
	return &Service{
		orders:    orders,
		vehicles:  vehicles,
		customers: customers,
	}
}

// Search classifies the term by shape and queries every matching category:
// an order-number shape hits orders, exactly four alphanumerics hit VIN
// suffixes, and anything with a letter hits customer names. The shapes
// overlap, so one term can hit several categories; each is capped
// independently.
func (s *Service) Search(ctx context.Context, term string) (Results, error) {
	var res Results

	term = strings.ToUpper(strings.TrimSpace(term))
	if len(term) < minQueryChars {
		return res, ErrQueryTooShort
	}

	if orderNumberShape.MatchString(term) {
		orders, err := s.orders.SearchByNumber(ctx, term, perCategoryLimit)
		if err != nil {
			return res, err
		}
		res.Orders = orders
	}

	if vinFragmentShape.MatchString(term) {
		vehicles, err := s.vehicles.SearchByVINSuffix(ctx, term, perCategoryLimit)
		if err != nil {
			return res, err
		}
		res.Vehicles = vehicles
	}

	if hasLetter.MatchString(term) {
		customers, err := s.customers.SearchByName(ctx, term, perCategoryLimit)
		if err != nil {
			return res, err
		}
		res.Customers = customers
	}

	return res, nil
}
