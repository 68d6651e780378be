package database

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/kipkoechd/fabworks-api/internal/config"
	"github.com/kipkoechd/fabworks-api/internal/domain/entity"
)

// NewPostgresDB creates a new PostgreSQL database connection
func NewPostgresDB(cfg *config.DatabaseConfig, log zerolog.Logger) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DSN(),
		PreferSimpleProtocol: true, // disables implicit prepared statement usage
	}), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	log.Info().Str("host", cfg.Host).Str("database", cfg.Name).Msg("connected to PostgreSQL")
	return db, nil
}

// AutoMigrate runs GORM auto-migration for all entities
func AutoMigrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		// User-related entities
		&entity.User{},
		&entity.Role{},
		&entity.Permission{},
		&entity.PasswordResetToken{},

		// Catalog entities
		&entity.Category{},
		&entity.Product{},
		&entity.Promotion{},

		// Customer-facing entities
		&entity.Customer{},
		&entity.Lead{},

		// Order entities and satellites
		&entity.Order{},
		&entity.OrderShippingAddress{},
		&entity.OrderBillingAddress{},
		&entity.OrderCustomerDetail{},
		&entity.OrderPaymentDetail{},

		// Quotations
		&entity.RentalQuotation{},

		// System entities
		&entity.IdempotencyKey{},
		&entity.OrganizationSettings{},
	)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}

// SeedDefaultData seeds roles, permissions, the admin account and the
// organization settings row.
func SeedDefaultData(db *gorm.DB, cfg *config.Config, log zerolog.Logger) error {
	permissions := []entity.Permission{
		{Name: "view-dashboard", GuardName: "web"},
		{Name: "manage-products", GuardName: "web"},
		{Name: "manage-categories", GuardName: "web"},
		{Name: "manage-orders", GuardName: "web"},
		{Name: "manage-quotations", GuardName: "web"},
		{Name: "manage-customers", GuardName: "web"},
		{Name: "manage-leads", GuardName: "web"},
		{Name: "manage-promotions", GuardName: "web"},
		{Name: "manage-settings", GuardName: "web"},
		{Name: "manage-users", GuardName: "web"},
		{Name: "print-documents", GuardName: "web"},
	}

	for i := range permissions {
		var existing entity.Permission
		if err := db.Where("name = ?", permissions[i].Name).First(&existing).Error; err != nil {
			if err := db.Create(&permissions[i]).Error; err != nil {
				log.Warn().Err(err).Str("permission", permissions[i].Name).Msg("failed to create permission")
			}
		}
	}

	var allPermissions []entity.Permission
	db.Find(&allPermissions)

	seedRole(db, log, "super-admin", allPermissions)
	seedRole(db, log, "admin", allPermissions)
	seedRole(db, log, "staff", pickPermissions(allPermissions,
		"view-dashboard",
		"manage-products",
		"manage-orders",
		"manage-customers",
		"manage-leads",
		"print-documents",
	))
	seedRole(db, log, "user", pickPermissions(allPermissions,
		"view-dashboard",
		"manage-customers",
	))

	if err := seedAdminUser(db, log); err != nil {
		return err
	}

	return seedOrganizationSettings(db, cfg)
}

func seedRole(db *gorm.DB, log zerolog.Logger, name string, perms []entity.Permission) {
	var existing entity.Role
	if err := db.Where("name = ?", name).First(&existing).Error; err != nil {
		role := entity.Role{Name: name, GuardName: "web", Permissions: perms}
		if err := db.Create(&role).Error; err != nil {
			log.Warn().Err(err).Str("role", name).Msg("failed to create role")
		}
	}
}

func pickPermissions(all []entity.Permission, names ...string) []entity.Permission {
	var picked []entity.Permission
	for _, name := range names {
		for _, p := range all {
			if p.Name == name {
				picked = append(picked, p)
				break
			}
		}
	}
	return picked
}

func seedAdminUser(db *gorm.DB, log zerolog.Logger) error {
	adminEmail := viper.GetString("ADMIN_EMAIL")
	adminPassword := viper.GetString("ADMIN_PASSWORD")
	adminName := viper.GetString("ADMIN_NAME")

	if adminEmail == "" || adminPassword == "" {
		return nil
	}

	var existing entity.User
	if err := db.Where("email = ?", adminEmail).First(&existing).Error; err == nil {
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	var saRole entity.Role
	if err := db.Where("name = ?", "super-admin").First(&saRole).Error; err != nil {
		return fmt.Errorf("super-admin role missing: %w", err)
	}

	if adminName == "" {
		adminName = "Super Admin"
	}
	firstName := adminName
	lastName := ""
	if idx := strings.IndexByte(adminName, ' '); idx > 0 {
		firstName = adminName[:idx]
		lastName = adminName[idx+1:]
	}

	admin := entity.User{
		FirstName: firstName,
		LastName:  lastName,
		Username:  adminEmail,
		Email:     adminEmail,
		Password:  string(hashed),
		Roles:     []entity.Role{saRole},
	}
	if err := db.Create(&admin).Error; err != nil {
		return fmt.Errorf("failed to create admin user: %w", err)
	}
	log.Info().Str("email", adminEmail).Msg("seeded super-admin user")
	return nil
}

// seedOrganizationSettings creates the single settings row from config
// defaults when none exists yet.
func seedOrganizationSettings(db *gorm.DB, cfg *config.Config) error {
	var existing entity.OrganizationSettings
	if err := db.First(&existing).Error; err == nil {
		return nil
	}

	settings := entity.OrganizationSettings{
		Name:          cfg.Organization.Name,
		Address:       cfg.Organization.Address,
		Email:         cfg.Organization.Email,
		Phone:         cfg.Organization.Phone,
		GSTIN:         cfg.Organization.GSTIN,
		Currency:      cfg.Organization.Currency,
		CurrencyGlyph: cfg.Organization.Glyph,
		Locale:        cfg.Organization.Locale,
	}
	if err := db.Create(&settings).Error; err != nil {
		return fmt.Errorf("failed to seed organization settings: %w", err)
	}
	return nil
}
