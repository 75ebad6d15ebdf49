package sql

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/hive.go/lo"
	"github.com/iotaledger/hive.go/runtime/options"
	"github.com/iotaledger/intervals/db"
	"github.com/iotaledger/intervals/interval"
	"github.com/iotaledger/intervals/kvstore"
	"github.com/iotaledger/intervals/kvstore/mapdb"
	"github.com/iotaledger/intervals/logger"
)

// cacheRealm is the realm of the cached Intervals in the KVStore of the cache.
var cacheRealm = []byte("intervals/")

// ErrIntervalNotFound is returned if no Interval is stored under the requested name.
var ErrIntervalNotFound = ierrors.New("interval not found")

// intervalRecord is the row of a named Interval.
type intervalRecord struct {
	Name      string `gorm:"primaryKey"`
	ValueType string `gorm:"not null"`
	Interval  string `gorm:"not null"`
	Canonical string `gorm:"not null;index"`
	UpdatedAt time.Time
}

func (intervalRecord) TableName() string {
	return "intervals"
}

// Store persists named Intervals in a SQL database. Loaded Intervals are kept in their binary form in a KVStore.
type Store struct {
	database *gorm.DB
	engine   db.Engine
	cache    *kvstore.TypedStore[string, *interval.Interval]
	cacheKV  kvstore.KVStore

	createDatabaseIfNotExists bool
	stepRegistry              *interval.StepRegistry
	log                       *logger.Logger
	databaseOptions           []options.Option[gormDatabaseOptions]

	*logger.WrappedLogger
}

// New opens (or creates) the database described by the parameters and migrates the schema of the Store.
func New(params DatabaseParameters, opts ...options.Option[Store]) (*Store, error) {
	store := options.Apply(&Store{
		createDatabaseIfNotExists: true,
		stepRegistry:              interval.DefaultStepRegistry,
		cacheKV:                   mapdb.NewMapDB(),
	}, opts)
	store.WrappedLogger = logger.NewWrappedLogger(store.log)
	store.cache = kvstore.NewTypedStore[string, *interval.Interval](
		store.cacheKV.WithRealm(cacheRealm),
		kvstore.StringToBytes,
		kvstore.BytesToString,
		func(i *interval.Interval) ([]byte, error) { return i.Bytes(), nil },
		interval.FromBytes,
	)

	database, engine, err := NewDatabase(store.log, params, store.createDatabaseIfNotExists, AllowedEngines, store.databaseOptions...)
	if err != nil {
		return nil, ierrors.Wrap(err, "failed to open database")
	}

	if err = database.AutoMigrate(&intervalRecord{}); err != nil {
		if sqlDB, dbErr := database.DB(); dbErr == nil {
			_ = sqlDB.Close()
		}

		return nil, ierrors.Wrap(err, "failed to migrate interval table")
	}

	store.database = database
	store.engine = engine

	store.LogInfof("opened interval store (engine: %s)", engine)

	return store, nil
}

// WithLogger sets the logger of the Store and of the underlying gorm database.
func WithLogger(log *logger.Logger) options.Option[Store] {
	return func(s *Store) {
		if log != nil {
			log = log.Named("IntervalStore")
		}

		s.log = log
	}
}

// WithStepRegistry sets the StepRegistry that is used to compute the canonical form of stored Intervals.
func WithStepRegistry(registry *interval.StepRegistry) options.Option[Store] {
	return func(s *Store) {
		s.stepRegistry = registry
	}
}

// WithCache sets the KVStore that caches the Intervals of the Store (an in-memory mapdb by default).
func WithCache(kv kvstore.KVStore) options.Option[Store] {
	return func(s *Store) {
		s.cacheKV = kv
	}
}

// WithCreateDatabaseIfNotExists defines if a missing database is created (default) or reported as an error.
func WithCreateDatabaseIfNotExists(create bool) options.Option[Store] {
	return func(s *Store) {
		s.createDatabaseIfNotExists = create
	}
}

// WithDatabaseOptions passes options to the gorm database.
func WithDatabaseOptions(opts ...options.Option[gormDatabaseOptions]) options.Option[Store] {
	return func(s *Store) {
		s.databaseOptions = append(s.databaseOptions, opts...)
	}
}

// Engine returns the engine the Store is running on.
func (s *Store) Engine() db.Engine {
	return s.engine
}

// Save stores the Interval under the given name and replaces any previous Interval of that name.
func (s *Store) Save(ctx context.Context, name string, i *interval.Interval) error {
	if name == "" {
		return ierrors.New("name must not be empty")
	}
	if i == nil {
		return ierrors.Errorf("interval %s must not be nil", name)
	}

	record := &intervalRecord{
		Name:      name,
		ValueType: valueTypeName(i),
		Interval:  i.String(),
		Canonical: interval.Canonicalize(i, interval.WithStepRegistry(s.stepRegistry)).String(),
	}

	if err := s.database.WithContext(ctx).Clauses(clause.OnConflict{UpdateAll: true}).Create(record).Error; err != nil {
		return ierrors.Wrapf(err, "failed to save interval %s", name)
	}

	if err := s.cache.Set(name, i); err != nil {
		s.LogWarnf("failed to cache interval %s: %s", name, err)
	}

	s.LogDebugf("saved interval %s = %s (canonical %s)", name, record.Interval, record.Canonical)

	return nil
}

// Load returns the Interval that is stored under the given name.
func (s *Store) Load(ctx context.Context, name string) (*interval.Interval, error) {
	if cached, err := s.cache.Get(name); err == nil {
		return cached, nil
	} else if !ierrors.Is(err, kvstore.ErrKeyNotFound) {
		s.LogWarnf("failed to read interval %s from cache: %s", name, err)
	}

	var record intervalRecord
	if err := s.database.WithContext(ctx).Where("name = ?", name).First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ierrors.Wrapf(ErrIntervalNotFound, "name: %s", name)
		}

		return nil, ierrors.Wrapf(err, "failed to load interval %s", name)
	}

	loaded, err := record.parse()
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(name, loaded); err != nil {
		s.LogWarnf("failed to cache interval %s: %s", name, err)
	}

	return loaded, nil
}

// Matching returns the names of the stored Intervals whose canonical form [lower, upper) equals the one of the given
// Interval (in ascending order). For discrete Values these are exactly the Intervals with the same members.
func (s *Store) Matching(ctx context.Context, i *interval.Interval) ([]string, error) {
	if i == nil {
		return nil, ierrors.New("interval must not be nil")
	}

	names := make([]string, 0)
	if err := s.database.WithContext(ctx).Model(&intervalRecord{}).
		Where("value_type = ? AND canonical = ?", valueTypeName(i), interval.Canonicalize(i, interval.WithStepRegistry(s.stepRegistry)).String()).
		Order("name").
		Pluck("name", &names).Error; err != nil {
		return nil, ierrors.Wrap(err, "failed to query intervals")
	}

	return names, nil
}

// Delete removes the Interval that is stored under the given name.
func (s *Store) Delete(ctx context.Context, name string) error {
	if err := s.cache.Delete(name); err != nil {
		s.LogWarnf("failed to remove interval %s from cache: %s", name, err)
	}

	result := s.database.WithContext(ctx).Where("name = ?", name).Delete(&intervalRecord{})
	if result.Error != nil {
		return ierrors.Wrapf(result.Error, "failed to delete interval %s", name)
	}

	if result.RowsAffected == 0 {
		return ierrors.Wrapf(ErrIntervalNotFound, "name: %s", name)
	}

	s.LogDebugf("deleted interval %s", name)

	return nil
}

// Names returns the names of all stored Intervals in ascending order.
func (s *Store) Names(ctx context.Context) ([]string, error) {
	names := make([]string, 0)
	if err := s.database.WithContext(ctx).Model(&intervalRecord{}).Order("name").Pluck("name", &names).Error; err != nil {
		return nil, ierrors.Wrap(err, "failed to list interval names")
	}

	return names, nil
}

// Containing returns the names of the stored Intervals that contain the given Value in ascending order.
func (s *Store) Containing(ctx context.Context, value interval.Value) ([]string, error) {
	if value == nil {
		return nil, ierrors.New("value must not be nil")
	}

	var records []*intervalRecord
	if err := s.database.WithContext(ctx).Where("value_type IN ?", []string{value.Type().String(), ""}).Order("name").Find(&records).Error; err != nil {
		return nil, ierrors.Wrap(err, "failed to query intervals")
	}

	names := make([]string, 0)
	for _, record := range records {
		storedInterval, err := record.parse()
		if err != nil {
			return nil, err
		}

		if storedInterval.Contains(value) {
			names = append(names, record.Name)
		}
	}

	return names, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	sqlDB, err := s.database.DB()
	if err != nil {
		return ierrors.Wrap(err, "failed to access database connection")
	}

	return sqlDB.Close()
}

func (r *intervalRecord) parse() (*interval.Interval, error) {
	parser := interval.ValueParser(func(text string) (interval.Value, error) {
		return nil, ierrors.Wrapf(interval.ErrUnsupportedValueType, "interval %s has no value type", r.Name)
	})

	if r.ValueType != "" {
		valueType, err := interval.ValueTypeFromName(r.ValueType)
		if err != nil {
			return nil, ierrors.Wrapf(err, "invalid value type of interval %s", r.Name)
		}

		if parser, err = valueType.Parser(); err != nil {
			return nil, ierrors.Wrapf(err, "invalid value type of interval %s", r.Name)
		}
	}

	parsedInterval, err := interval.FromString(r.Interval, parser)
	if err != nil {
		return nil, ierrors.Wrapf(err, "failed to parse interval %s", r.Name)
	}

	return parsedInterval, nil
}

func valueTypeName(i *interval.Interval) string {
	valueType, exists := i.ValueType()

	return lo.Cond(exists, valueType.String(), "")
}
