// Package app builds the long-lived components from the environment config.
// The server binary and portfolioctl share it so both see the same store,
// cache and credentials.
package app

import (
	"context"
	"fmt"
	"io"
	stdlog "log"
	"os"
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/plugin/dbresolver"

	"github.com/rpupo63/portfolio-backend/auth"
	"github.com/rpupo63/portfolio-backend/cache"
	"github.com/rpupo63/portfolio-backend/config"
	"github.com/rpupo63/portfolio-backend/content"
	"github.com/rpupo63/portfolio-backend/database"
	"github.com/rpupo63/portfolio-backend/models"
	"github.com/rpupo63/portfolio-backend/services"
)

// App holds everything main and the CLI need. DB is nil when no database is
// configured; the reconciler then runs from defaults and cache only.
type App struct {
	Config     map[string]string
	DB         *database.Database
	Cache      cache.SnapshotCache
	Auth       *auth.Authenticator
	Tokens     *auth.TokenIssuer
	Assets     services.AssetStorage
	AssetDir   string
	Reconciler *content.Reconciler

	closers []io.Closer
}

// New wires the components but does not fetch remote content; call
// Reconciler.Init for that.
func New(ctx context.Context, c map[string]string) (*App, error) {
	a := &App{Config: c}

	if missing := config.Missing(c, "JWT_SECRET", "BASE_URL"); len(missing) > 0 {
		log.Warn().Strs("keys", missing).Msg("settings not configured, using defaults")
	}

	gormDB, err := OpenDatabase(c)
	if err != nil {
		return nil, err
	}
	if gormDB != nil {
		if sqlDB, err := gormDB.DB(); err == nil {
			a.closers = append(a.closers, sqlDB)
		}
		db := database.New(gormDB)
		if config.GetBool(c, "AUTO_MIGRATE", true) {
			if err := db.Migrate(); err != nil {
				a.Close()
				return nil, err
			}
		}
		a.DB = &db
	} else {
		log.Warn().Msg("no database configured, content is served from defaults and cache")
	}

	if err := a.openCache(c); err != nil {
		a.Close()
		return nil, err
	}

	hash, err := adminPasswordHash(ctx, c)
	if err != nil {
		a.Close()
		return nil, err
	}
	a.Auth = auth.NewAuthenticator(config.GetString(c, "ADMIN_USERNAME", auth.DefaultUsername), hash)

	secret := config.GetString(c, "JWT_SECRET", "")
	if secret == "" {
		// per-process secret; tokens do not survive a restart
		if secret, err = auth.RandomSecret(); err != nil {
			a.Close()
			return nil, err
		}
	}
	a.Tokens = auth.NewTokenIssuer(secret, config.GetDuration(c, "SESSION_TTL_HOURS", time.Hour, 12*time.Hour))

	if err := a.openAssets(ctx, c); err != nil {
		a.Close()
		return nil, err
	}

	lang := models.French
	if raw := config.GetString(c, "DEFAULT_LANGUAGE", ""); raw != "" {
		if lang, err = models.ParseLanguage(raw); err != nil {
			a.Close()
			return nil, err
		}
	}

	opts := content.Options{
		Cache:       a.Cache,
		Auth:        a.Auth,
		Language:    lang,
		SavedRevert: config.GetDuration(c, "SAVED_REVERT_MS", time.Millisecond, content.DefaultSavedRevert),
		ErrorRevert: config.GetDuration(c, "ERROR_REVERT_MS", time.Millisecond, content.DefaultErrorRevert),
	}
	if a.DB != nil {
		opts.Store = a.DB
	}
	a.Reconciler = content.New(ctx, opts)
	a.Reconciler.OnStatusChange(func(s content.SaveStatus) {
		log.Info().Str("saveStatus", s.String()).Msg("save status changed")
	})

	return a, nil
}

// Close stops the reconciler and releases connections.
func (a *App) Close() {
	if a.Reconciler != nil {
		a.Reconciler.Close()
	}
	for _, c := range a.closers {
		if err := c.Close(); err != nil {
			log.Warn().Err(err).Msg("closing resource")
		}
	}
	a.closers = nil
}

// DSN builds the postgres connection string. DB_TYPE=supa assembles it from
// the SUPABASE_DB_* parts, anything else reads DATABASE_URL. An empty result
// means no database is configured.
func DSN(c map[string]string) string {
	switch config.GetString(c, "DB_TYPE", "") {
	case "supa":
		if config.GetString(c, "SUPABASE_DB_HOST", "") == "" {
			return ""
		}
		return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=require",
			config.GetString(c, "SUPABASE_DB_HOST", ""),
			config.GetString(c, "SUPABASE_DB_USER", ""),
			config.GetString(c, "SUPABASE_DB_PASSWORD", ""),
			config.GetString(c, "SUPABASE_DB_NAME", ""),
			config.GetString(c, "SUPABASE_DB_PORT", "5432"),
		)
	default:
		return config.GetString(c, "DATABASE_URL", "")
	}
}

// OpenDatabase connects to postgres and registers DATABASE_REPLICA_URL as a
// read replica. It returns nil, nil when no DSN is configured.
func OpenDatabase(c map[string]string) (*gorm.DB, error) {
	dsn := DSN(c)
	if dsn == "" {
		return nil, nil
	}

	newLogger := logger.New(
		stdlog.New(os.Stdout, "\r\n", stdlog.LstdFlags),
		logger.Config{
			SlowThreshold:             10 * time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  true,
		},
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		PrepareStmt: false,
		Logger:      newLogger,
	})
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	if replica := config.GetString(c, "DATABASE_REPLICA_URL", ""); replica != "" {
		err := db.Use(dbresolver.Register(dbresolver.Config{
			Replicas: []gorm.Dialector{postgres.New(postgres.Config{
				DSN:                  replica,
				PreferSimpleProtocol: true,
			})},
			Policy: dbresolver.RandomPolicy{},
		}))
		if err != nil {
			return nil, fmt.Errorf("registering read replica: %w", err)
		}
		log.Info().Msg("read replica registered")
	}

	var result int
	if err := db.Raw("SELECT 1").Scan(&result).Error; err != nil {
		return nil, fmt.Errorf("testing database connection: %w", err)
	}
	return db, nil
}

func (a *App) openCache(c map[string]string) error {
	if url := config.GetString(c, "REDIS_URL", ""); url != "" {
		rc, err := cache.NewRedisCache(cache.RedisCacheOptions{
			URL:    url,
			Prefix: config.GetString(c, "CACHE_PREFIX", "portfolio:"),
		})
		if err != nil {
			return fmt.Errorf("connecting to redis: %w", err)
		}
		a.Cache = rc
		a.closers = append(a.closers, rc)
		return nil
	}

	fc, err := cache.NewFileCache(config.GetString(c, "CACHE_DIR", "./data/cache"))
	if err != nil {
		return err
	}
	a.Cache = fc
	return nil
}

// adminPasswordHash prefers the SSM parameter named by
// ADMIN_HASH_SSM_PARAMETER over ADMIN_PASSWORD_HASH. An empty result keeps
// the built-in hash.
func adminPasswordHash(ctx context.Context, c map[string]string) (string, error) {
	name := config.GetString(c, "ADMIN_HASH_SSM_PARAMETER", "")
	if name == "" {
		return config.GetString(c, "ADMIN_PASSWORD_HASH", ""), nil
	}

	awsCfg, err := services.LoadAWSConfig(ctx, config.GetString(c, "AWS_REGION", ""))
	if err != nil {
		return "", err
	}
	return services.NewParameterStore(services.NewSSMClient(awsCfg)).Get(ctx, name)
}

func (a *App) openAssets(ctx context.Context, c map[string]string) error {
	bucket := config.GetString(c, "ASSET_BUCKET", services.DefaultBucket)

	if s3Bucket := config.GetString(c, "S3_BUCKET", ""); s3Bucket != "" {
		awsCfg, err := services.LoadAWSConfig(ctx, config.GetString(c, "AWS_REGION", ""))
		if err != nil {
			return err
		}
		base := config.GetString(c, "S3_PUBLIC_BASE_URL", fmt.Sprintf("https://s3.%s.amazonaws.com", awsCfg.Region))
		a.Assets = services.NewS3AssetStorage(services.NewS3Client(awsCfg), s3Bucket, base)
		return nil
	}

	disk, err := services.NewDiskAssetStorage(
		config.GetString(c, "UPLOAD_DIR", "./data/uploads"),
		bucket,
		services.GetBaseURL(c),
	)
	if err != nil {
		return err
	}
	a.Assets = disk
	a.AssetDir = disk.Dir()
	return nil
}
