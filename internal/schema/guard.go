package schema

import (
	"context"
	"fmt"

	"iori_nav/internal/model"

	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Version bumps whenever the guarded column/index set changes; the
// persisted completion flag is keyed by it, so a bump re-runs the guard
// exactly once per deployment.
const Version = 3

// FlagKey is the Redis key marking the migration as globally complete
func FlagKey() string {
	return fmt.Sprintf("schema_migrated_v%d", Version)
}

// Guard ensures the columns and indexes the render pipeline relies on
// exist before queries run. Safe to call on every request: after the first
// successful run it is a single bool check.
//
// The migrated flag is intentionally unlocked. Concurrent cold starts may
// race into duplicate runs; every statement below is individually
// idempotent or failure-swallowed, so duplicates are wasted work, not
// corruption.
type Guard struct {
	db       *gorm.DB
	rdb      *redis.Client
	log      *logrus.Entry
	migrated bool
}

// New creates a schema guard
func New(db *gorm.DB, rdb *redis.Client) *Guard {
	return &Guard{
		db:  db,
		rdb: rdb,
		log: logrus.WithField("component", "schema-guard"),
	}
}

type columnAdd struct {
	table  interface{}
	name   string // table name, for log/backfill decisions
	column string
	ddl    string
}

// Ensure performs the schema check at most once per process lifetime and
// at most once globally (Redis flag). Never returns an error: a failed
// guard is logged and the page renders with best-effort schema.
func (g *Guard) Ensure(ctx context.Context) {
	// 热状态直接返回，不读 Redis
	if g.migrated {
		return
	}

	// 冷启动时检查 Redis 中是否已完成迁移
	flag, err := g.rdb.Get(ctx, FlagKey()).Result()
	if err == nil && flag != "" {
		g.migrated = true
		return
	}
	if err != nil && err != redis.Nil {
		g.log.WithError(err).Warn("failed to read schema flag, running guard anyway")
	}

	migrator := g.db.Migrator()

	if !migrator.HasIndex(&model.Site{}, "idx_sites_catelog_id") {
		if err := g.db.Exec("CREATE INDEX idx_sites_catelog_id ON sites(catelog_id)").Error; err != nil {
			g.log.WithError(err).Info("index idx_sites_catelog_id may already exist")
		}
	}
	if !migrator.HasIndex(&model.Site{}, "idx_sites_sort_order") {
		if err := g.db.Exec("CREATE INDEX idx_sites_sort_order ON sites(sort_order)").Error; err != nil {
			g.log.WithError(err).Info("index idx_sites_sort_order may already exist")
		}
	}

	adds := []columnAdd{
		{&model.Site{}, "sites", "is_private", "ALTER TABLE sites ADD COLUMN is_private INTEGER DEFAULT 0"},
		{&model.Site{}, "sites", "catelog_name", "ALTER TABLE sites ADD COLUMN catelog_name VARCHAR(255)"},
		{&model.PendingSite{}, "pending_sites", "catelog_name", "ALTER TABLE pending_sites ADD COLUMN catelog_name VARCHAR(255)"},
		{&model.Category{}, "category", "is_private", "ALTER TABLE category ADD COLUMN is_private INTEGER DEFAULT 0"},
		{&model.Category{}, "category", "parent_id", "ALTER TABLE category ADD COLUMN parent_id INTEGER DEFAULT 0"},
	}

	siteNameAdded := false
	for _, add := range adds {
		if migrator.HasColumn(add.table, add.column) {
			continue
		}
		// 逐条执行：并发实例先加成功会报“列已存在”，记日志后继续
		if err := g.db.Exec(add.ddl).Error; err != nil {
			g.log.WithError(err).Infof("column %s.%s may already exist", add.name, add.column)
			continue
		}
		if add.name == "sites" && add.column == "catelog_name" {
			siteNameAdded = true
		}
	}

	// 同步 catelog_name 数据（仅在新增字段后执行一次）
	if siteNameAdded {
		backfill := `UPDATE sites
			SET catelog_name = (SELECT catelog FROM category WHERE category.id = sites.catelog_id)
			WHERE catelog_name IS NULL`
		if err := g.db.Exec(backfill).Error; err != nil {
			g.log.WithError(err).Error("failed to backfill sites.catelog_name")
			return
		}
	}

	// 标记迁移完成（永久缓存，直到 Version 变更）
	if err := g.rdb.Set(ctx, FlagKey(), "true", 0).Err(); err != nil {
		g.log.WithError(err).Warn("failed to persist schema flag")
		return
	}
	g.migrated = true
	g.log.Info("schema migration completed")
}
