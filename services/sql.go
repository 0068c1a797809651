package services

import (
	"os"

	"github.com/genspeak/genspeak_api/model"
	"gorm.io/gorm"
)

// SqlService is the storage adapter surface shared by the sqlite and
// postgres services. Exactly one of them is registered per process.
type SqlService interface {
	Db() *gorm.DB
	HandleError(err error) error
}

// ActiveSqlService names the adapter registered for this process. Postgres
// wins when DATABASE_URL is set, mirroring the runtime registration.
func ActiveSqlService() string {
	if os.Getenv("DATABASE_URL") != "" {
		return POSTGRES_SVC
	}
	return SQLITE_SVC
}

func migrationModels() []interface{} {
	return []interface{}{
		&model.User{},
		&model.UserSession{},
	}
}
