package credentials

import (
	"github.com/m04kA/SMC-DentalScheduling/pkg/dbmetrics"
)

// Переиспользуем интерфейс из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor
