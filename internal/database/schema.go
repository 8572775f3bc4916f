package database

// sentinelTable marks that the CRM schema has been created
const sentinelTable = "customers"

// legacyTables are dropped when the CRM schema is first created
var legacyTables = []string{"comments"}

type tableDef struct {
	name string
	ddl  string
}

// coreTables are ensured on every call, independent of the sentinel
var coreTables = []tableDef{
	{
		name: "users",
		ddl: `
			CREATE TABLE IF NOT EXISTS users (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				username TEXT NOT NULL UNIQUE,
				password_hash TEXT NOT NULL,
				is_admin INTEGER NOT NULL DEFAULT 0,
				created_at INTEGER NOT NULL
			);
		`,
	},
	{
		name: "sessions",
		ddl: `
			CREATE TABLE IF NOT EXISTS sessions (
				id TEXT PRIMARY KEY,
				user_id INTEGER NOT NULL,
				created_at INTEGER NOT NULL,
				expires_at INTEGER NOT NULL,
				FOREIGN KEY (user_id) REFERENCES users(id)
			);
			CREATE INDEX IF NOT EXISTS idx_sessions_user_id ON sessions(user_id);
			CREATE INDEX IF NOT EXISTS idx_sessions_expires_at ON sessions(expires_at);
		`,
	},
	{
		name: "leads",
		ddl: `
			CREATE TABLE IF NOT EXISTS leads (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				first_name TEXT NOT NULL,
				last_name TEXT NOT NULL,
				email TEXT NOT NULL,
				phone TEXT,
				company TEXT,
				status TEXT NOT NULL DEFAULT 'new',
				source TEXT,
				notes TEXT,
				created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
				updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
			);
			CREATE INDEX IF NOT EXISTS idx_leads_status ON leads(status);
		`,
	},
	{
		name: "audit_logs",
		ddl: `
			CREATE TABLE IF NOT EXISTS audit_logs (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				timestamp INTEGER NOT NULL,
				user_id INTEGER,
				username TEXT NOT NULL,
				action TEXT NOT NULL,
				ip_address TEXT
			);
			CREATE INDEX IF NOT EXISTS idx_audit_logs_timestamp ON audit_logs(timestamp);
			CREATE INDEX IF NOT EXISTS idx_audit_logs_action ON audit_logs(action);
		`,
	},
}

// crmTables are created, in order, when the sentinel table is missing
var crmTables = []tableDef{
	{
		name: "companies",
		ddl: `
			CREATE TABLE IF NOT EXISTS companies (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				name TEXT NOT NULL,
				industry TEXT,
				website TEXT,
				address TEXT,
				city TEXT,
				state TEXT,
				zip_code TEXT,
				country TEXT,
				created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
				updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
			);
		`,
	},
	{
		name: "customers",
		ddl: `
			CREATE TABLE IF NOT EXISTS customers (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				first_name TEXT NOT NULL,
				last_name TEXT NOT NULL,
				email TEXT NOT NULL,
				phone TEXT,
				company_id INTEGER,
				created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
				updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
				FOREIGN KEY (company_id) REFERENCES companies(id)
			);
			CREATE INDEX IF NOT EXISTS idx_customers_company_id ON customers(company_id);
		`,
	},
	{
		name: "deals",
		ddl: `
			CREATE TABLE IF NOT EXISTS deals (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				title TEXT NOT NULL,
				customer_id INTEGER,
				company_id INTEGER,
				value REAL,
				stage TEXT NOT NULL,
				probability INTEGER,
				expected_close_date DATE,
				created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
				updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
				FOREIGN KEY (customer_id) REFERENCES customers(id),
				FOREIGN KEY (company_id) REFERENCES companies(id)
			);
		`,
	},
	{
		name: "activities",
		ddl: `
			CREATE TABLE IF NOT EXISTS activities (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				type TEXT NOT NULL,
				subject TEXT NOT NULL,
				customer_id INTEGER,
				company_id INTEGER,
				deal_id INTEGER,
				due_date DATETIME,
				status TEXT DEFAULT 'pending',
				created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
				updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
				FOREIGN KEY (customer_id) REFERENCES customers(id),
				FOREIGN KEY (company_id) REFERENCES companies(id),
				FOREIGN KEY (deal_id) REFERENCES deals(id)
			);
		`,
	},
	{
		name: "notes",
		ddl: `
			CREATE TABLE IF NOT EXISTS notes (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				content TEXT NOT NULL,
				customer_id INTEGER,
				company_id INTEGER,
				deal_id INTEGER,
				created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
				updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
				FOREIGN KEY (customer_id) REFERENCES customers(id),
				FOREIGN KEY (company_id) REFERENCES companies(id),
				FOREIGN KEY (deal_id) REFERENCES deals(id)
			);
		`,
	},
}

// seedStatements insert the sample rows. Primary keys are explicit and
// INSERT OR IGNORE makes a repeated run a no-op.
var seedStatements = []tableDef{
	{
		name: "companies",
		ddl: `
			INSERT OR IGNORE INTO companies (id, name, industry, website, address, city, state, zip_code, country)
			VALUES
				(1, 'Acme Corp', 'Technology', 'https://acme.com', '123 Tech Street', 'San Francisco', 'CA', '94105', 'USA'),
				(2, 'TechStart Inc', 'Software', 'https://techstart.io', '456 Innovation Ave', 'Austin', 'TX', '78701', 'USA'),
				(3, 'Global Solutions', 'Consulting', 'https://globalsolutions.com', '789 Business Blvd', 'New York', 'NY', '10001', 'USA')
		`,
	},
	{
		name: "customers",
		ddl: `
			INSERT OR IGNORE INTO customers (id, first_name, last_name, email, phone, company_id)
			VALUES
				(1, 'John', 'Smith', 'john.smith@acme.com', '+1-555-0101', 1),
				(2, 'Sarah', 'Johnson', 'sarah.johnson@techstart.io', '+1-555-0202', 2),
				(3, 'Michael', 'Brown', 'michael.brown@globalsolutions.com', '+1-555-0303', 3)
		`,
	},
	{
		name: "deals",
		ddl: `
			INSERT OR IGNORE INTO deals (id, title, customer_id, company_id, value, stage, probability, expected_close_date)
			VALUES
				(1, 'Enterprise License Agreement', 1, 1, 50000.00, 'negotiation', 75, '2025-03-15'),
				(2, 'Annual Support Contract', 2, 2, 25000.00, 'proposal', 60, '2025-02-28'),
				(3, 'Consulting Engagement', 3, 3, 100000.00, 'closed-won', 100, '2025-01-30')
		`,
	},
	{
		name: "activities",
		ddl: `
			INSERT OR IGNORE INTO activities (id, type, subject, customer_id, company_id, deal_id, due_date, status)
			VALUES
				(1, 'call', 'Follow-up call on proposal', 1, 1, 1, '2025-01-20 14:00:00', 'pending'),
				(2, 'meeting', 'Product demonstration', 2, 2, 2, '2025-01-18 10:00:00', 'completed'),
				(3, 'email', 'Send contract details', 3, 3, 3, '2025-01-16 09:00:00', 'completed')
		`,
	},
	{
		name: "notes",
		ddl: `
			INSERT OR IGNORE INTO notes (id, content, customer_id, company_id, deal_id)
			VALUES
				(1, 'Customer showed strong interest in enterprise features. Follow up next week.', 1, 1, 1),
				(2, 'Decision maker is the CTO. Technical requirements are clear.', 2, 2, 2),
				(3, 'Contract signed. Project kickoff scheduled for next month.', 3, 3, 3)
		`,
	},
}
