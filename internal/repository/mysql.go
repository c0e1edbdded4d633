package repository

import (
	"context"
	"time"

	"pulse/internal/config"
	"pulse/internal/model"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// MySQLRepository handles MySQL operations
type MySQLRepository struct {
	db *gorm.DB
}

// NewMySQLRepository creates a new MySQL repository
func NewMySQLRepository(cfg *config.MySQLConfig) *MySQLRepository {
	// Configure GORM logger
	var gormLogger logger.Interface
	if zerolog.GlobalLevel() > zerolog.DebugLevel {
		gormLogger = logger.Default.LogMode(logger.Silent)
	} else {
		gormLogger = logger.Default.LogMode(logger.Info)
	}

	db, err := gorm.Open(mysql.Open(cfg.DSN), &gorm.Config{
		Logger: gormLogger,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to MySQL")
	}

	// Auto migrate tables
	if err := db.AutoMigrate(&model.Account{}, &model.Site{}, &model.Counter{}, &model.RecentActivity{}); err != nil {
		log.Fatal().Err(err).Msg("Failed to migrate database")
	}

	log.Info().Msg("MySQL connected successfully")

	return &MySQLRepository{db: db}
}

// GetDB returns the GORM DB instance
func (r *MySQLRepository) GetDB() *gorm.DB {
	return r.db
}

// GetSiteByDomain retrieves a site and its owning account by the
// normalized domain
func (r *MySQLRepository) GetSiteByDomain(ctx context.Context, domain string) (*model.Site, error) {
	var site model.Site
	err := r.db.WithContext(ctx).
		Joins("Account").
		Where("sites.domain = ?", domain).
		First(&site).Error
	if err != nil {
		return nil, err
	}
	return &site, nil
}

// UpsertCounter atomically increments the counter row for
// (site, name, value, date), inserting it with count = 1 when absent.
// The increment-on-conflict runs as a single statement so concurrent
// requests for the same key never lose an update.
func (r *MySQLRepository) UpsertCounter(ctx context.Context, siteID int64, name, value, date string) error {
	counter := model.Counter{
		SiteID: siteID,
		Name:   name,
		Value:  value,
		Date:   date,
		Count:  1,
	}

	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "site_id"}, {Name: "name"}, {Name: "value"}, {Name: "date"},
			},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"count": gorm.Expr("`count` + 1"),
			}),
		}).
		Create(&counter).Error
}

// SaveRecentActivity appends an entry to the recent-activity feed
func (r *MySQLRepository) SaveRecentActivity(ctx context.Context, entry *model.RecentActivity) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

// Close closes the database connection
func (r *MySQLRepository) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
