package main

import (
	"strings"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/postgres"
	"github.com/spf13/viper"

	"github.com/bitmark-inc/relief-api/schema"
)

func init() {
	viper.AutomaticEnv()
	viper.SetEnvPrefix("relief")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
}

func main() {
	if conn := viper.GetString("orm.conn"); conn != "" {
		migrateORM(conn)
	}

	if conn := viper.GetString("mongo.conn"); conn != "" {
		schema.NewMongoDBIndexer(conn, viper.GetString("mongo.database")).IndexAll()
	}
}

func migrateORM(conn string) {
	db, err := gorm.Open("postgres", conn)
	if err != nil {
		panic(err)
	}
	defer db.Close()

	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error; err != nil {
		panic(err)
	}

	if err := db.AutoMigrate(
		&schema.HelpRequest{},
		&schema.HelpTransition{},
	).Error; err != nil {
		panic(err)
	}
}
