package handler

import (
	"github.com/labstack/echo/v4"

	"earnhub/internal/domain/entity"
	"earnhub/internal/usecase"
	"earnhub/pkg/response"
	"earnhub/pkg/utils"
)

type DashboardHandler struct {
	registry *usecase.ContextRegistry
}

func NewDashboardHandler(registry *usecase.ContextRegistry) *DashboardHandler {
	return &DashboardHandler{
		registry: registry,
	}
}

type dashboardView struct {
	User               *entity.Identity      `json:"user"`
	AdStats            usecase.AdStats       `json:"adStats"`
	RecentTransactions []*entity.Transaction `json:"recentTransactions"`
	ReferralEarnings   float64               `json:"referralEarnings"`
}

// UserDashboard is the signed-in user's landing screen.
func (h *DashboardHandler) UserDashboard(c echo.Context) error {
	set, identity, err := currentSet(c, h.registry)
	if err != nil {
		return response.Error(c, err)
	}

	ctx := c.Request().Context()
	if _, err := set.Data.LoadAds(ctx); err != nil {
		return response.Error(c, err)
	}
	transactions, err := set.Data.LoadTransactions(ctx)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, dashboardView{
		User:               identity,
		AdStats:            set.Data.AdStats(),
		RecentTransactions: utils.Paginate(transactions, 0, 5),
		ReferralEarnings:   set.Data.ReferralEarnings(),
	})
}

type referralsView struct {
	ReferralCode     string                `json:"referralCode"`
	ReferralEarnings float64               `json:"referralEarnings"`
	Referrals        []*entity.Transaction `json:"referrals"`
}

// Referrals shows the user's referral code and the earnings it generated.
func (h *DashboardHandler) Referrals(c echo.Context) error {
	set, identity, err := currentSet(c, h.registry)
	if err != nil {
		return response.Error(c, err)
	}

	transactions, err := set.Data.LoadTransactions(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	referrals := make([]*entity.Transaction, 0)
	for _, tx := range transactions {
		if tx.Type == entity.TransactionTypeReferral {
			referrals = append(referrals, tx)
		}
	}

	return response.Success(c, referralsView{
		ReferralCode:     identity.ReferralCode,
		ReferralEarnings: set.Data.ReferralEarnings(),
		Referrals:        referrals,
	})
}
