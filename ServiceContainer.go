package main

import (
	"fmt"
	"github.com/gin-gonic/gin"
	"scMicroservice/contracts"
)

type ServiceContainer struct {
	Store            contracts.CellStore
	Metrics          *Metrics
	FormulaEvaluator contracts.FormulaEvaluator
	ApiController    contracts.ApiController
	Router           *gin.Engine
}

func BuildServiceContainer(config Config) (container ServiceContainer, err error) {
	container.Store, err = NewCellStore(config)
	if err != nil {
		return
	}

	container.Metrics = NewMetrics()
	container.FormulaEvaluator = NewFormulaEvaluator(
		container.Store, NewReferenceScanner(), NewArithmeticEvaluator(), container.Metrics,
	)
	container.ApiController = NewApiController(container.Store, container.FormulaEvaluator)

	container.Router = SetupRouter(container.ApiController, container.Metrics)

	return
}

func NewCellStore(config Config) (store contracts.CellStore, err error) {
	switch config.Repository {
	case RepositorySqlite:
		var sqliteStore *SqliteCellStore
		if sqliteStore, err = NewSqliteCellStore(config.DatabasePath); err == nil {
			store = sqliteStore
		}
	case RepositoryBolt:
		var boltStore *BoltCellStore
		if boltStore, err = NewBoltCellStore(config.DatabasePath, NewCellBinarySerializer()); err == nil {
			store = boltStore
		}
	case RepositoryFirebase:
		store = NewFirebaseCellStore(config.FirebaseBaseUrl(), nil)
	default:
		err = fmt.Errorf("`%s`: %w", config.Repository, UnknownRepositoryError)
	}

	return
}
