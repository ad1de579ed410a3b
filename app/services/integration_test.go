package services

import (
	"database/sql"
	"fmt"
	"os"
	"testing"
	"time"

	"pitstop/app/database"
	"pitstop/app/models"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
)

// Integration tests require a throwaway Postgres. Set TEST_DATABASE_URL
// to run them; they are skipped otherwise and in -short mode.
func testDB(t *testing.T) *sql.DB {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("skipping integration test: TEST_DATABASE_URL not set")
	}

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	if err := db.Ping(); err != nil {
		t.Fatalf("ping test database: %v", err)
	}
	if err := database.RunMigrations(db); err != nil {
		t.Fatalf("migrations: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func createTestEmployee(t *testing.T, db *sql.DB) *models.Employee {
	t.Helper()
	e := &models.Employee{
		FirstName:  "Test",
		LastName:   fmt.Sprintf("Employee%d", time.Now().UnixNano()),
		HourlyRate: 12.50,
		Code:       "0000",
		IsActive:   true,
	}
	if err := database.CreateEmployee(db, e); err != nil {
		t.Fatalf("create employee: %v", err)
	}
	return e
}

func TestSessionLifecycle(t *testing.T) {
	db := testDB(t)

	user := &models.User{
		Email:     fmt.Sprintf("admin%d@example.com", time.Now().UnixNano()),
		Password:  "irrelevant-hash",
		FirstName: "Ada",
		LastName:  "Admin",
	}
	if err := database.CreateUser(db, user); err != nil {
		t.Fatalf("create user: %v", err)
	}

	live := uuid.New()
	if err := database.CreateSession(db, live, user.ID, time.Now().Add(time.Hour)); err != nil {
		t.Fatalf("create session: %v", err)
	}
	expired := uuid.New()
	if err := database.CreateSession(db, expired, user.ID, time.Now().Add(-time.Hour)); err != nil {
		t.Fatalf("create expired session: %v", err)
	}

	if _, err := database.GetSessionByID(db, live.String()); err != nil {
		t.Errorf("live session should resolve: %v", err)
	}
	if _, err := database.GetSessionByID(db, expired.String()); err == nil {
		t.Error("expired session should not resolve")
	}

	if err := database.DeleteExpiredSessions(db); err != nil {
		t.Fatalf("sweep expired sessions: %v", err)
	}
	if _, err := database.GetSessionByID(db, live.String()); err != nil {
		t.Errorf("sweep must not remove live sessions: %v", err)
	}

	if err := database.DeleteSession(db, live.String()); err != nil {
		t.Fatalf("delete session: %v", err)
	}
	if _, err := database.GetSessionByID(db, live.String()); err == nil {
		t.Error("deleted session should not resolve")
	}
}

func TestCreatePaycheck_Idempotent(t *testing.T) {
	db := testDB(t)
	e := createTestEmployee(t, db)

	weekStart := date(2024, 1, 1)
	weekEnd := date(2024, 1, 7)

	clockIn := ts(2024, 1, 2, 9, 0, 0)
	clockOut := ts(2024, 1, 2, 17, 0, 0)
	entry, err := database.CreateTimeEntry(db, e.ID, clockIn)
	if err != nil {
		t.Fatalf("create time entry: %v", err)
	}
	if err := database.CloseTimeEntry(db, entry.ID, clockOut); err != nil {
		t.Fatalf("close time entry: %v", err)
	}

	expense := &models.EmployeeExpense{EmployeeID: e.ID, Amount: 20, Description: "gloves", SpentAt: clockIn}
	if err := database.CreateEmployeeExpense(db, expense); err != nil {
		t.Fatalf("create expense: %v", err)
	}

	windowStart, windowEnd := DateWindow(weekStart, weekEnd)
	paycheck := &models.Paycheck{
		EmployeeID: e.ID, WeekStart: weekStart, WeekEnd: weekEnd,
		Hours: 8, HourlyRate: 12.50, GrossPay: 100, ExpensesTotal: 20, NetPay: 80,
	}
	taggedEntries, taggedExpenses, err := database.CreatePaycheck(db, paycheck, "Test Employee", windowStart, windowEnd)
	if err != nil {
		t.Fatalf("first paycheck: %v", err)
	}
	if taggedEntries != 1 || taggedExpenses != 1 {
		t.Errorf("first run tagged %d entries, %d expenses, want 1 and 1", taggedEntries, taggedExpenses)
	}

	// Second run over the same week must find nothing left to tag
	second := &models.Paycheck{
		EmployeeID: e.ID, WeekStart: weekStart, WeekEnd: weekEnd,
		Hours: 0, HourlyRate: 12.50, GrossPay: 0, ExpensesTotal: 0, NetPay: 0,
	}
	taggedEntries, taggedExpenses, err = database.CreatePaycheck(db, second, "Test Employee", windowStart, windowEnd)
	if err != nil {
		t.Fatalf("second paycheck: %v", err)
	}
	if taggedEntries != 0 || taggedExpenses != 0 {
		t.Errorf("second run tagged %d entries, %d expenses, want 0 and 0", taggedEntries, taggedExpenses)
	}
}

func TestCreatePaycheck_TaggedExpensesReduceNetPay(t *testing.T) {
	db := testDB(t)
	e := createTestEmployee(t, db)

	weekStart := date(2024, 2, 5)
	weekEnd := date(2024, 2, 11)
	windowStart, windowEnd := DateWindow(weekStart, weekEnd)

	entry, err := database.CreateTimeEntry(db, e.ID, ts(2024, 2, 6, 9, 0, 0))
	if err != nil {
		t.Fatalf("create time entry: %v", err)
	}
	if err := database.CloseTimeEntry(db, entry.ID, ts(2024, 2, 6, 17, 0, 0)); err != nil {
		t.Fatalf("close time entry: %v", err)
	}
	expense := &models.EmployeeExpense{EmployeeID: e.ID, Amount: 20, Description: "squeegees", SpentAt: ts(2024, 2, 6, 12, 0, 0)}
	if err := database.CreateEmployeeExpense(db, expense); err != nil {
		t.Fatalf("create expense: %v", err)
	}

	// The derived expenses figure is the window's untagged total, the
	// same rows CreatePaycheck is about to claim
	expensesTotal, err := database.UntaggedEmployeeExpenseTotal(db, e.ID, windowStart, windowEnd)
	if err != nil {
		t.Fatalf("untagged expense total: %v", err)
	}
	if expensesTotal != 20 {
		t.Fatalf("untagged expense total = %v, want 20", expensesTotal)
	}

	gross := Round2(8 * e.HourlyRate)
	paycheck := &models.Paycheck{
		EmployeeID: e.ID, WeekStart: weekStart, WeekEnd: weekEnd,
		Hours: 8, HourlyRate: e.HourlyRate, GrossPay: gross,
		ExpensesTotal: expensesTotal, NetPay: Round2(gross - expensesTotal),
	}
	_, taggedExpenses, err := database.CreatePaycheck(db, paycheck, "Test Employee", windowStart, windowEnd)
	if err != nil {
		t.Fatalf("create paycheck: %v", err)
	}
	if taggedExpenses != 1 {
		t.Fatalf("tagged %d expenses, want 1", taggedExpenses)
	}

	saved, err := database.GetPaychecksByEmployee(db, e.ID)
	if err != nil {
		t.Fatalf("load paychecks: %v", err)
	}
	if len(saved) != 1 {
		t.Fatalf("got %d paychecks, want 1", len(saved))
	}
	if saved[0].NetPay != Round2(gross-20) {
		t.Errorf("net pay = %v, want %v (gross %v minus tagged expenses)", saved[0].NetPay, Round2(gross-20), gross)
	}
	if saved[0].ExpensesTotal != 20 {
		t.Errorf("expenses total = %v, want 20", saved[0].ExpensesTotal)
	}

	// Nothing left untagged once the paycheck owns the expense
	remaining, err := database.UntaggedEmployeeExpenseTotal(db, e.ID, windowStart, windowEnd)
	if err != nil {
		t.Fatalf("untagged expense total: %v", err)
	}
	if remaining != 0 {
		t.Errorf("untagged total after paycheck = %v, want 0", remaining)
	}
}

func TestRejectOrder_NotificationFailureDoesNotFailTransition(t *testing.T) {
	db := testDB(t)

	attempts := 0
	orig := smsTransport
	smsTransport = func(phone, message string) error {
		attempts++
		return fmt.Errorf("gateway down")
	}
	defer func() { smsTransport = orig }()

	order := &models.Order{
		CustomerName:  "Walk In",
		CustomerPhone: "+15550001111",
		Total:         9.99,
		PaymentMethod: models.MethodCash,
		PaymentStatus: models.PaymentPending,
		Status:        models.OrderPending,
	}
	if err := database.CreateOrder(db, order); err != nil {
		t.Fatalf("create order: %v", err)
	}

	if err := RejectOrder(db, order, "Kitchen closed"); err != nil {
		t.Fatalf("reject should succeed despite SMS failure: %v", err)
	}
	if attempts != 1 {
		t.Errorf("notification attempts = %d, want exactly 1", attempts)
	}

	reloaded, err := database.GetOrderByID(db, order.ID)
	if err != nil {
		t.Fatalf("reload order: %v", err)
	}
	if reloaded.Status != models.OrderRejected {
		t.Errorf("status = %s, want rejected", reloaded.Status)
	}
	if reloaded.RejectReason != "Kitchen closed" {
		t.Errorf("reject reason = %q, want persisted", reloaded.RejectReason)
	}

	listed, err := database.ListOrders(db, string(models.OrderRejected), 10)
	if err != nil {
		t.Fatalf("list rejected orders: %v", err)
	}
	if len(listed) == 0 {
		t.Error("rejected order missing from listing")
	}
}

func TestMarkOrderReady_EndsCompleted(t *testing.T) {
	db := testDB(t)

	attempts := 0
	orig := smsTransport
	smsTransport = func(phone, message string) error {
		attempts++
		return nil
	}
	defer func() { smsTransport = orig }()

	order := &models.Order{
		CustomerName:  "Walk In",
		CustomerPhone: "+15550002222",
		Total:         4.50,
		PaymentMethod: models.MethodCash,
		PaymentStatus: models.PaymentPending,
		Status:        models.OrderAccepted,
	}
	if err := database.CreateOrder(db, order); err != nil {
		t.Fatalf("create order: %v", err)
	}

	if err := MarkOrderReady(db, order); err != nil {
		t.Fatalf("mark ready: %v", err)
	}
	if attempts != 1 {
		t.Errorf("notification attempts = %d, want exactly 1", attempts)
	}

	reloaded, err := database.GetOrderByID(db, order.ID)
	if err != nil {
		t.Fatalf("reload order: %v", err)
	}
	if reloaded.Status != models.OrderCompleted {
		t.Errorf("terminal status = %s, want completed", reloaded.Status)
	}
}
