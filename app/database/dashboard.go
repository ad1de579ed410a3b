package database

import (
	"database/sql"
	"pitstop/app/models"
	"time"
)

// GetDashboardStats returns statistics for the admin dashboard. The
// "today" figures use the business day window passed by the caller.
func GetDashboardStats(db *sql.DB, dayStart, dayEnd time.Time) (*models.DashboardStats, error) {
	stats := &models.DashboardStats{}

	err := db.QueryRow(`SELECT COUNT(*), COALESCE(SUM(total), 0) FROM orders
	                    WHERE created_at >= $1 AND created_at < $2 AND status != 'rejected'`,
		dayStart, dayEnd).Scan(&stats.OrdersToday, &stats.SalesToday)
	if err != nil {
		return nil, err
	}

	err = db.QueryRow(`SELECT COUNT(*) FROM time_entries WHERE clock_out IS NULL`).Scan(&stats.OpenTimeEntries)
	if err != nil {
		return nil, err
	}

	stats.PendingNotifications, err = CountPendingNotifications(db)
	if err != nil {
		return nil, err
	}

	err = db.QueryRow(`SELECT COUNT(*) FROM safe_drops WHERE confirmed = false`).Scan(&stats.UnconfirmedSafeDrops)
	if err != nil {
		return nil, err
	}

	return stats, nil
}
