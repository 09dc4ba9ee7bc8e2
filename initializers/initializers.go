package initializers

import (
	"context"

	"personnel-backend/config"
	"personnel-backend/fiberlog"
	achievementprovider "personnel-backend/lib/achievement"
	"personnel-backend/lib/analytics"
	authhandler "personnel-backend/lib/auth"
	employeeprovider "personnel-backend/lib/employee"
	xlsexport "personnel-backend/lib/export/xls"
	inventoryprovider "personnel-backend/lib/inventory"
	leaveprovider "personnel-backend/lib/leave"
	reportprovider "personnel-backend/lib/report"
	vehicleprovider "personnel-backend/lib/vehicle"
	inspectionworker "personnel-backend/lib/vehicle/inspection-worker"
)

var LoggerConfig *fiberlog.Config

func InitAllServices(ctx context.Context) {
	LoggerConfig = InitLogger()
	config.InitConfig()
	InitDBConnection()
	InitSmtp()
	employeeprovider.NewHandler()
	leaveprovider.NewHandler()
	achievementprovider.NewHandler()
	inventoryprovider.NewHandler()
	vehicleprovider.NewHandler()
	authhandler.NewHandler()
	analytics.NewHandler()
	xlsexport.NewHandler()
	// report assembly reads analytics and xls instances, keep it last
	reportprovider.NewHandler()
	go initWorkers(ctx)
}

func initWorkers(ctx context.Context) {
	// inspection reminder pass, daily at the configured hour
	inspectionworker.StartWorker(ctx)
}
