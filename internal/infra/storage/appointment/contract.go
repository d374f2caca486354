package appointment

import "github.com/barberhq/scheduling-service/pkg/dbmetrics"

// Переиспользуем интерфейсы исполнителей запросов из dbmetrics
type DBExecutor = dbmetrics.DBExecutor
type TxExecutor = dbmetrics.TxExecutor
