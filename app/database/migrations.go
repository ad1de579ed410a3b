package database

import (
	"database/sql"
	"log"
)

// RunMigrations creates missing tables and applies schema updates.
func RunMigrations(db *sql.DB) error {
	log.Println("Running database migrations...")

	tables := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			email VARCHAR(255) UNIQUE NOT NULL,
			password VARCHAR(255) NOT NULL,
			first_name VARCHAR(100) NOT NULL,
			last_name VARCHAR(100) NOT NULL,
			is_active BOOLEAN DEFAULT true,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			deleted_at TIMESTAMP WITH TIME ZONE
		)`,
		`CREATE TABLE IF NOT EXISTS sessions (
			id UUID PRIMARY KEY,
			user_id UUID NOT NULL REFERENCES users(id),
			expires_at TIMESTAMP WITH TIME ZONE NOT NULL,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS employees (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			first_name VARCHAR(100) NOT NULL,
			last_name VARCHAR(100) NOT NULL,
			phone VARCHAR(20),
			hourly_rate NUMERIC(10,2) NOT NULL DEFAULT 0,
			code VARCHAR(255) NOT NULL,
			is_active BOOLEAN DEFAULT true,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS paychecks (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			employee_id UUID NOT NULL REFERENCES employees(id),
			week_start DATE NOT NULL,
			week_end DATE NOT NULL,
			hours NUMERIC(10,2) NOT NULL,
			hourly_rate NUMERIC(10,2) NOT NULL,
			gross_pay NUMERIC(10,2) NOT NULL,
			expenses_total NUMERIC(10,2) NOT NULL DEFAULT 0,
			net_pay NUMERIC(10,2) NOT NULL,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS time_entries (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			employee_id UUID NOT NULL REFERENCES employees(id),
			clock_in TIMESTAMP WITH TIME ZONE NOT NULL,
			clock_out TIMESTAMP WITH TIME ZONE,
			paycheck_id UUID REFERENCES paychecks(id),
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS employee_expenses (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			employee_id UUID NOT NULL REFERENCES employees(id),
			amount NUMERIC(10,2) NOT NULL,
			description VARCHAR(255) NOT NULL,
			spent_at TIMESTAMP WITH TIME ZONE NOT NULL,
			paycheck_id UUID REFERENCES paychecks(id),
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS vendors (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			name VARCHAR(255) UNIQUE NOT NULL,
			is_active BOOLEAN DEFAULT true,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			deleted_at TIMESTAMP WITH TIME ZONE
		)`,
		`CREATE TABLE IF NOT EXISTS business_expenses (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			vendor_id UUID NOT NULL REFERENCES vendors(id),
			amount NUMERIC(10,2) NOT NULL,
			description VARCHAR(255) NOT NULL,
			method VARCHAR(10) NOT NULL DEFAULT 'cash',
			date TIMESTAMP WITH TIME ZONE NOT NULL,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			deleted_at TIMESTAMP WITH TIME ZONE
		)`,
		`CREATE TABLE IF NOT EXISTS safe_drops (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			amount NUMERIC(10,2) NOT NULL,
			dropped_at TIMESTAMP WITH TIME ZONE NOT NULL,
			confirmed BOOLEAN DEFAULT false,
			note VARCHAR(255) DEFAULT '',
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS deposits (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			amount NUMERIC(10,2) NOT NULL,
			deposited_at TIMESTAMP WITH TIME ZONE NOT NULL,
			note VARCHAR(255) DEFAULT '',
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS customers (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			name VARCHAR(255) NOT NULL,
			phone VARCHAR(20) UNIQUE NOT NULL,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS menu_items (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			name VARCHAR(255) NOT NULL,
			description TEXT DEFAULT '',
			price NUMERIC(10,2) NOT NULL,
			category VARCHAR(100) DEFAULT '',
			is_available BOOLEAN DEFAULT true,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			deleted_at TIMESTAMP WITH TIME ZONE
		)`,
		`CREATE TABLE IF NOT EXISTS menu_modifiers (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			menu_item_id UUID NOT NULL REFERENCES menu_items(id) ON DELETE CASCADE,
			name VARCHAR(255) NOT NULL,
			price NUMERIC(10,2) NOT NULL DEFAULT 0,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS orders (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			customer_id UUID REFERENCES customers(id),
			customer_name VARCHAR(255) NOT NULL DEFAULT '',
			customer_phone VARCHAR(20) NOT NULL DEFAULT '',
			total NUMERIC(10,2) NOT NULL,
			payment_method VARCHAR(10) NOT NULL,
			payment_status VARCHAR(10) NOT NULL DEFAULT 'pending',
			status VARCHAR(15) NOT NULL DEFAULT 'initiated',
			reject_reason VARCHAR(255) DEFAULT '',
			payment_intent_id VARCHAR(255),
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS order_items (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			order_id UUID NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
			menu_item_id UUID NOT NULL,
			name VARCHAR(255) NOT NULL,
			price NUMERIC(10,2) NOT NULL,
			quantity INT NOT NULL DEFAULT 1
		)`,
		`CREATE TABLE IF NOT EXISTS order_item_modifiers (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			order_item_id UUID NOT NULL REFERENCES order_items(id) ON DELETE CASCADE,
			modifier_id UUID NOT NULL,
			name VARCHAR(255) NOT NULL,
			price NUMERIC(10,2) NOT NULL DEFAULT 0
		)`,
		`CREATE TABLE IF NOT EXISTS notifications (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			phone VARCHAR(20) NOT NULL,
			message TEXT NOT NULL,
			status VARCHAR(10) NOT NULL DEFAULT 'pending',
			attempts INT NOT NULL DEFAULT 0,
			last_error TEXT DEFAULT '',
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			sent_at TIMESTAMP WITH TIME ZONE
		)`,
	}

	for _, q := range tables {
		if _, err := db.Exec(q); err != nil {
			log.Printf("Error creating table: %v", err)
			return err
		}
	}

	// Indexes. The partial unique index backs the "one open entry per
	// employee" rule so two concurrent clock-ins cannot both land.
	indexes := []string{
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_time_entries_open ON time_entries(employee_id) WHERE clock_out IS NULL`,
		`CREATE INDEX IF NOT EXISTS idx_time_entries_clock_in ON time_entries(clock_in)`,
		`CREATE INDEX IF NOT EXISTS idx_time_entries_paycheck ON time_entries(paycheck_id)`,
		`CREATE INDEX IF NOT EXISTS idx_employee_expenses_spent_at ON employee_expenses(spent_at)`,
		`CREATE INDEX IF NOT EXISTS idx_business_expenses_date ON business_expenses(date)`,
		`CREATE INDEX IF NOT EXISTS idx_safe_drops_dropped_at ON safe_drops(dropped_at)`,
		`CREATE INDEX IF NOT EXISTS idx_orders_status ON orders(status)`,
		`CREATE INDEX IF NOT EXISTS idx_orders_created_at ON orders(created_at)`,
		`CREATE INDEX IF NOT EXISTS idx_notifications_status ON notifications(status)`,
	}

	for _, q := range indexes {
		if _, err := db.Exec(q); err != nil {
			log.Printf("Error creating index: %v", err)
			// Continue as some might be duplicate index errors depending on PG version
		}
	}

	if err := addRejectReasonColumn(db); err != nil {
		return err
	}

	log.Println("Database migrations completed successfully")
	return nil
}

func addRejectReasonColumn(db *sql.DB) error {
	query := `
		DO $$
		BEGIN
			IF NOT EXISTS (
				SELECT 1
				FROM information_schema.columns
				WHERE table_name = 'orders'
				AND column_name = 'reject_reason'
			) THEN
				ALTER TABLE orders ADD COLUMN reject_reason VARCHAR(255) DEFAULT '';
				RAISE NOTICE 'Added reject_reason column to orders';
			END IF;
		END $$;
	`
	_, err := db.Exec(query)
	if err != nil {
		log.Printf("Failed to run migration for reject_reason column: %v", err)
		return err
	}
	return nil
}
