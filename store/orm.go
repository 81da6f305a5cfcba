package store

import (
	"github.com/jinzhu/gorm"
	log "github.com/sirupsen/logrus"
)

// ORMStore is the postgres implementation of HelpStore
type ORMStore struct {
	ormDB *gorm.DB
}

func NewORMStore(ormDB *gorm.DB) *ORMStore {
	return &ORMStore{
		ormDB: ormDB,
	}
}

// Ping is to check the storage health status
func (s *ORMStore) Ping() error {
	return s.ormDB.DB().Ping()
}

// Close releases the database connections
func (s *ORMStore) Close() {
	if err := s.ormDB.Close(); err != nil {
		log.WithField("prefix", "orm").Error(err)
	}
}
