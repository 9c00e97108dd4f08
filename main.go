package main

import (
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/budget-engine/api"
	"github.com/carson-networks/budget-engine/internal/config"
	"github.com/carson-networks/budget-engine/internal/logging"
	"github.com/carson-networks/budget-engine/internal/operator"
	"github.com/carson-networks/budget-engine/internal/service"
	"github.com/carson-networks/budget-engine/internal/storage"
)

func main() {
	logger := logging.SetupLogging()
	logrus.Info("budget-engine starting")

	envConfig, err := config.ProcessEnvironmentVariables()
	if err != nil {
		logrus.WithError(err).Fatal("config.ProcessEnvironmentVariables")
		return
	}

	dbStorage, err := storage.NewStorage(envConfig)
	if err != nil {
		logrus.WithError(err).Fatal("storage.NewStorage")
		return
	}

	svc := service.NewService(dbStorage)
	opDelegator := operator.NewOperatorDelegator(dbStorage)
	opDelegator.Start()

	wg := sync.WaitGroup{}
	wg.Add(1)

	go func() {
		httpRest := api.Rest{
			Logger:   logger,
			Port:     envConfig.HTTPPort,
			Service:  svc,
			Operator: opDelegator,
		}
		httpRest.Serve()
	}()

	wg.Wait()
}
