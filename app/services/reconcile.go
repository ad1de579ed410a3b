package services

import (
	"database/sql"
	"time"

	"pitstop/app/database"
	"pitstop/app/models"
)

// The business day starts at 03:00 rather than midnight because the
// station stays open past midnight; late-night activity belongs to the
// previous day's till.
const businessDayStartHour = 3

// BusinessDayWindow returns [date 03:00, date+1d 03:00) in the date's
// location.
func BusinessDayWindow(date time.Time) (time.Time, time.Time) {
	from := time.Date(date.Year(), date.Month(), date.Day(), businessDayStartHour, 0, 0, 0, date.Location())
	return from, from.AddDate(0, 0, 1)
}

// CashDayReport summarizes cash movement for one business day.
type CashDayReport struct {
	Date             string  `json:"date"`
	SafeDropTotal    float64 `json:"safe_drop_total"`
	CashExpenseTotal float64 `json:"cash_expense_total"`
	CashSales        float64 `json:"cash_sales"`
}

// DepositsReport compares expected deposits against actual deposits
// over an inclusive date range.
type DepositsReport struct {
	Start            string  `json:"start"`
	End              string  `json:"end"`
	CardSales        float64 `json:"card_sales"`
	CheckExpenses    float64 `json:"check_expenses"`
	ExpectedDeposits float64 `json:"expected_deposits"`
	ActualDeposits   float64 `json:"actual_deposits"`
	Variance         float64 `json:"variance"`
}

// CashSalesTotal is the reconciliation identity: cash that should be in
// the safe equals confirmed drops plus cash paid out as expenses.
func CashSalesTotal(safeDrops, cashExpenses float64) float64 {
	return Round2(safeDrops + cashExpenses)
}

// LoadCashDayReport computes cash sales for one business day.
func LoadCashDayReport(db *sql.DB, date time.Time) (*CashDayReport, error) {
	from, to := BusinessDayWindow(date)

	drops, err := database.ConfirmedSafeDropTotal(db, from, to)
	if err != nil {
		return nil, err
	}
	cashExpenses, err := database.BusinessExpenseTotalByMethod(db, models.ExpenseCash, from, to)
	if err != nil {
		return nil, err
	}

	return &CashDayReport{
		Date:             date.Format("2006-01-02"),
		SafeDropTotal:    Round2(drops),
		CashExpenseTotal: Round2(cashExpenses),
		CashSales:        CashSalesTotal(drops, cashExpenses),
	}, nil
}

// LoadDepositsReport computes expected vs actual deposits over an
// inclusive date range. Expected = card sales + check expenses.
func LoadDepositsReport(db *sql.DB, start, end time.Time) (*DepositsReport, error) {
	from, to := DateWindow(start, end)

	cardSales, err := database.CardSalesTotal(db, from, to)
	if err != nil {
		return nil, err
	}
	checkExpenses, err := database.BusinessExpenseTotalByMethod(db, models.ExpenseCheck, from, to)
	if err != nil {
		return nil, err
	}
	actual, err := database.DepositTotal(db, from, to)
	if err != nil {
		return nil, err
	}

	expected := Round2(cardSales + checkExpenses)
	return &DepositsReport{
		Start:            start.Format("2006-01-02"),
		End:              end.Format("2006-01-02"),
		CardSales:        Round2(cardSales),
		CheckExpenses:    Round2(checkExpenses),
		ExpectedDeposits: expected,
		ActualDeposits:   Round2(actual),
		Variance:         Round2(actual - expected),
	}, nil
}
