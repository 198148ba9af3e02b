package dto

import "github.com/AdonesMapula/atay/internal/domain/model"

type DashboardResponse struct {
	RecentEvents []model.Event         `json:"recent_events"`
	Tickets      DashboardStatusCounts `json:"tickets"`
	Merch        DashboardStatusCounts `json:"merch"`
}

type DashboardStatusCounts struct {
	Pending  int `json:"pending"`
	Approved int `json:"approved"`
	Declined int `json:"declined"`
}
