package migration

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"go.uber.org/zap"
)

type migrationStep struct {
	Name string
	SQL  string
}

// sentinelTable is created by the last step; its presence means the schema is complete.
const sentinelTable = "public.order_items"

var steps = []migrationStep{
	{
		Name: "create_extension_uuid_ossp",
		SQL:  `CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`,
	},
	{
		Name: "create_table_users",
		SQL: `CREATE TABLE IF NOT EXISTS users (
  id                      UUID        PRIMARY KEY DEFAULT uuid_generate_v4(),
  name                    TEXT        NOT NULL,
  email                   TEXT        NOT NULL,
  password_hash           TEXT        NOT NULL,
  role                    TEXT        NOT NULL DEFAULT 'user' CHECK (role IN ('user', 'admin')),
  avatar                  TEXT        NOT NULL DEFAULT '',
  age                     INT         NULL CHECK (age IS NULL OR age >= 0),
  phone_number            TEXT        NOT NULL DEFAULT '',
  address                 TEXT        NOT NULL DEFAULT '',
  active                  BOOLEAN     NOT NULL DEFAULT false,
  gender                  TEXT        NOT NULL DEFAULT 'male' CHECK (gender IN ('male', 'female')),
  verification_code_hash  TEXT        NOT NULL DEFAULT '',
  verification_expires_at TIMESTAMPTZ NULL,
  created_at              TIMESTAMPTZ NOT NULL DEFAULT now(),
  updated_at              TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_index_users_email",
		SQL:  `CREATE UNIQUE INDEX IF NOT EXISTS idx_users_email ON users (lower(email));`,
	},
	{
		Name: "create_table_categories",
		SQL: `CREATE TABLE IF NOT EXISTS categories (
  id         UUID        PRIMARY KEY DEFAULT uuid_generate_v4(),
  name       TEXT        NOT NULL UNIQUE,
  image      TEXT        NOT NULL DEFAULT '',
  created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
  updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_table_sub_categories",
		SQL: `CREATE TABLE IF NOT EXISTS sub_categories (
  id          UUID        PRIMARY KEY DEFAULT uuid_generate_v4(),
  name        TEXT        NOT NULL UNIQUE,
  category_id UUID        NOT NULL REFERENCES categories (id) ON DELETE RESTRICT,
  created_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
  updated_at  TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_table_brands",
		SQL: `CREATE TABLE IF NOT EXISTS brands (
  id         UUID        PRIMARY KEY DEFAULT uuid_generate_v4(),
  name       TEXT        NOT NULL UNIQUE,
  image      TEXT        NOT NULL DEFAULT '',
  created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
  updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_table_suppliers",
		SQL: `CREATE TABLE IF NOT EXISTS suppliers (
  id         UUID        PRIMARY KEY DEFAULT uuid_generate_v4(),
  name       TEXT        NOT NULL UNIQUE,
  website    TEXT        NOT NULL DEFAULT '',
  created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
  updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_table_coupons",
		SQL: `CREATE TABLE IF NOT EXISTS coupons (
  id                  UUID          PRIMARY KEY DEFAULT uuid_generate_v4(),
  name                TEXT          NOT NULL UNIQUE,
  expire_date         TIMESTAMPTZ   NOT NULL,
  discount            INT           NOT NULL CHECK (discount BETWEEN 1 AND 100),
  min_order_value     NUMERIC(12,2) NOT NULL DEFAULT 0 CHECK (min_order_value >= 0),
  max_discount_amount NUMERIC(12,2) NULL CHECK (max_discount_amount IS NULL OR max_discount_amount >= 0),
  is_active           BOOLEAN       NOT NULL DEFAULT true,
  max_usage           INT           NULL CHECK (max_usage IS NULL OR max_usage >= 1),
  used_count          INT           NOT NULL DEFAULT 0 CHECK (used_count >= 0),
  created_at          TIMESTAMPTZ   NOT NULL DEFAULT now(),
  updated_at          TIMESTAMPTZ   NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_table_coupon_usages",
		SQL: `CREATE TABLE IF NOT EXISTS coupon_usages (
  coupon_id UUID        NOT NULL REFERENCES coupons (id) ON DELETE CASCADE,
  user_id   UUID        NOT NULL REFERENCES users (id) ON DELETE CASCADE,
  used_at   TIMESTAMPTZ NOT NULL DEFAULT now(),
  PRIMARY KEY (coupon_id, user_id)
);`,
	},
	{
		Name: "create_table_taxes",
		SQL: `CREATE TABLE IF NOT EXISTS taxes (
  id             SMALLINT      PRIMARY KEY DEFAULT 1 CHECK (id = 1),
  tax_price      NUMERIC(12,2) NOT NULL DEFAULT 0 CHECK (tax_price >= 0),
  shipping_price NUMERIC(12,2) NOT NULL DEFAULT 0 CHECK (shipping_price >= 0),
  updated_at     TIMESTAMPTZ   NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_table_products",
		SQL: `CREATE TABLE IF NOT EXISTS products (
  id                   UUID          PRIMARY KEY DEFAULT uuid_generate_v4(),
  title                TEXT          NOT NULL UNIQUE,
  slug                 TEXT          NOT NULL UNIQUE,
  description          TEXT          NOT NULL,
  quantity             INT           NOT NULL DEFAULT 0 CHECK (quantity >= 0),
  sold                 INT           NOT NULL DEFAULT 0 CHECK (sold >= 0),
  price                NUMERIC(12,2) NOT NULL CHECK (price >= 0),
  price_after_discount NUMERIC(12,2) NULL CHECK (price_after_discount IS NULL OR price_after_discount >= 0),
  colors               JSONB         NOT NULL DEFAULT '[]'::jsonb,
  image_cover          TEXT          NOT NULL,
  images               JSONB         NOT NULL DEFAULT '[]'::jsonb,
  category_id          UUID          NOT NULL REFERENCES categories (id) ON DELETE RESTRICT,
  sub_category_id      UUID          NOT NULL REFERENCES sub_categories (id) ON DELETE RESTRICT,
  brand_id             UUID          NULL REFERENCES brands (id) ON DELETE SET NULL,
  supplier_id          UUID          NULL REFERENCES suppliers (id) ON DELETE SET NULL,
  ratings_average      NUMERIC(3,2)  NOT NULL DEFAULT 0 CHECK (ratings_average BETWEEN 0 AND 5),
  ratings_quantity     INT           NOT NULL DEFAULT 0,
  created_at           TIMESTAMPTZ   NOT NULL DEFAULT now(),
  updated_at           TIMESTAMPTZ   NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_index_products_category_id",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_products_category_id ON products (category_id);`,
	},
	{
		Name: "create_table_carts",
		SQL: `CREATE TABLE IF NOT EXISTS carts (
  id                   UUID          PRIMARY KEY DEFAULT uuid_generate_v4(),
  user_id              UUID          NOT NULL UNIQUE REFERENCES users (id) ON DELETE CASCADE,
  total_price          NUMERIC(12,2) NOT NULL DEFAULT 0,
  total_after_discount NUMERIC(12,2) NOT NULL DEFAULT 0,
  coupon_id            UUID          NULL REFERENCES coupons (id) ON DELETE SET NULL,
  coupon_name          TEXT          NOT NULL DEFAULT '',
  coupon_discount      INT           NOT NULL DEFAULT 0,
  coupon_amount        NUMERIC(12,2) NOT NULL DEFAULT 0,
  created_at           TIMESTAMPTZ   NOT NULL DEFAULT now(),
  updated_at           TIMESTAMPTZ   NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_table_cart_items",
		SQL: `CREATE TABLE IF NOT EXISTS cart_items (
  id         UUID          PRIMARY KEY DEFAULT uuid_generate_v4(),
  cart_id    UUID          NOT NULL REFERENCES carts (id) ON DELETE CASCADE,
  product_id UUID          NOT NULL REFERENCES products (id) ON DELETE CASCADE,
  quantity   INT           NOT NULL CHECK (quantity >= 1),
  color      TEXT          NOT NULL,
  price      NUMERIC(12,2) NOT NULL,
  position   SERIAL,
  UNIQUE (cart_id, product_id, color)
);`,
	},
	{
		Name: "create_table_orders",
		SQL: `CREATE TABLE IF NOT EXISTS orders (
  id                   UUID          PRIMARY KEY DEFAULT uuid_generate_v4(),
  user_id              UUID          NOT NULL REFERENCES users (id) ON DELETE RESTRICT,
  total_price          NUMERIC(12,2) NOT NULL,
  total_after_discount NUMERIC(12,2) NOT NULL,
  tax_price            NUMERIC(12,2) NOT NULL DEFAULT 0,
  shipping_price       NUMERIC(12,2) NOT NULL DEFAULT 0,
  total_order_price    NUMERIC(12,2) NOT NULL,
  coupon_id            UUID          NULL REFERENCES coupons (id) ON DELETE SET NULL,
  shipping_address     TEXT          NOT NULL,
  payment_method       TEXT          NOT NULL DEFAULT 'cash' CHECK (payment_method IN ('cash', 'card')),
  is_paid              BOOLEAN       NOT NULL DEFAULT false,
  paid_at              TIMESTAMPTZ   NULL,
  payment_result       JSONB         NULL,
  is_delivered         BOOLEAN       NOT NULL DEFAULT false,
  delivered_at         TIMESTAMPTZ   NULL,
  is_canceled          BOOLEAN       NOT NULL DEFAULT false,
  canceled_at          TIMESTAMPTZ   NULL,
  created_at           TIMESTAMPTZ   NOT NULL DEFAULT now(),
  updated_at           TIMESTAMPTZ   NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_index_orders_user_id_created_at",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_orders_user_id_created_at ON orders (user_id, created_at DESC);`,
	},
	{
		Name: "create_table_order_items",
		SQL: `CREATE TABLE IF NOT EXISTS order_items (
  order_id   UUID          NOT NULL REFERENCES orders (id) ON DELETE CASCADE,
  line_no    INT           NOT NULL,
  product_id UUID          NOT NULL REFERENCES products (id) ON DELETE RESTRICT,
  quantity   INT           NOT NULL CHECK (quantity >= 1),
  color      TEXT          NOT NULL,
  price      NUMERIC(12,2) NOT NULL,
  PRIMARY KEY (order_id, line_no)
);`,
	},
}

// EnsureMigrated checks for the sentinel table and applies every step when it is missing.
// All steps are idempotent, so a partially applied schema is completed on the next run.
func EnsureMigrated(ctx context.Context, db *sql.DB, lg *zap.Logger, dbHost string) error {
	start := time.Now()
	lg = lg.With(zap.String("component", "database"), zap.String("db_host", dbHost))

	lg.Info("db_migration_check", zap.String("event", "db_migration_check"), zap.String("status", "starting"))

	var exists bool
	query := "SELECT to_regclass('" + sentinelTable + "') IS NOT NULL"
	if err := db.QueryRowContext(ctx, query).Scan(&exists); err != nil {
		lg.Error("db_migration_failed",
			zap.String("event", "db_migration_failed"),
			zap.String("status", "error"),
			zap.String("error_message", fmt.Sprintf("failed to check sentinel table: %v", err)),
			zap.Int64("duration_ms", time.Since(start).Milliseconds()),
		)
		return fmt.Errorf("failed to check sentinel table: %w", err)
	}

	if exists {
		lg.Info("schema already exists, skipping migration",
			zap.String("event", "db_migration_skip"),
			zap.String("status", "success"),
			zap.Int64("duration_ms", time.Since(start).Milliseconds()),
		)
		return nil
	}

	lg.Info("db_migration_start", zap.String("event", "db_migration_start"), zap.String("status", "in_progress"))

	if err := Apply(ctx, db, lg); err != nil {
		return err
	}

	lg.Info("db_migration_success",
		zap.String("event", "db_migration_success"),
		zap.String("status", "success"),
		zap.Int64("duration_ms", time.Since(start).Milliseconds()),
	)
	return nil
}

// Apply runs every step unconditionally.
func Apply(ctx context.Context, db *sql.DB, lg *zap.Logger) error {
	for _, step := range steps {
		stepStart := time.Now()
		if _, err := db.ExecContext(ctx, step.SQL); err != nil {
			lg.Error("db_migration_failed",
				zap.String("event", "db_migration_failed"),
				zap.String("status", "error"),
				zap.String("migration_step", step.Name),
				zap.String("error_message", err.Error()),
				zap.Int64("step_duration_ms", time.Since(stepStart).Milliseconds()),
			)
			return fmt.Errorf("migration step %s failed: %w", step.Name, err)
		}

		lg.Info("db_migration_step",
			zap.String("event", "db_migration_step"),
			zap.String("status", "success"),
			zap.String("migration_step", step.Name),
			zap.Int64("step_duration_ms", time.Since(stepStart).Milliseconds()),
		)
	}
	return nil
}
