package models

// DashboardStats is the summary block shown on the admin landing screen.
type DashboardStats struct {
	OrdersToday          int     `json:"orders_today"`
	SalesToday           float64 `json:"sales_today"`
	OpenTimeEntries      int     `json:"open_time_entries"`
	PendingNotifications int     `json:"pending_notifications"`
	UnconfirmedSafeDrops int     `json:"unconfirmed_safe_drops"`
}
