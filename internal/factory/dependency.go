package factory

import (
	"database/sql"

	"github.com/golangid/questionario-service/pkg/queue"
	"github.com/golangid/questionario-service/pkg/validator"
)

// Dependency base, shared to all service modules
type Dependency struct {
	Queue      queue.MessageQueue
	SQLReadDB  *sql.DB
	SQLWriteDB *sql.DB
	Validator  *validator.StructValidator
}
