package store

import (
	"context"
	"fmt"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/postgres"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	BackendPostgres = "postgres"
	BackendMongo    = "mongo"
	BackendMemory   = "memory"
)

// ClosableHelpStore is a HelpStore holding connections which are released
// by Close on shutdown
type ClosableHelpStore interface {
	HelpStore
	Closer
}

// Open connects the backend configured by `store.backend`. Postgres is used
// when nothing is configured.
func Open(ctx context.Context) (ClosableHelpStore, error) {
	backend := viper.GetString("store.backend")
	if backend == "" {
		backend = BackendPostgres
	}

	log.WithField("prefix", "store").Infof("open %s help store", backend)

	switch backend {
	case BackendPostgres:
		ormDB, err := gorm.Open("postgres", viper.GetString("orm.conn"))
		if err != nil {
			return nil, err
		}
		return NewORMStore(ormDB), nil

	case BackendMongo:
		opts := options.Client().ApplyURI(viper.GetString("mongo.conn"))
		opts.SetMaxPoolSize(viper.GetUint64("mongo.pool"))
		mongoClient, err := mongo.NewClient(opts)
		if err != nil {
			return nil, fmt.Errorf("create mongo client with error: %s", err)
		}

		if err := mongoClient.Connect(ctx); err != nil {
			return nil, fmt.Errorf("connect mongo database with error: %s", err)
		}
		return NewMongoStore(mongoClient, viper.GetString("mongo.database")), nil

	case BackendMemory:
		return NewMemoryStore(), nil

	default:
		return nil, fmt.Errorf("unknown store backend: %s", backend)
	}
}
