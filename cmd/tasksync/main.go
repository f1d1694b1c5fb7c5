package main

import (
	"os"

	"github.com/MKhiriev/go-task-sync/internal/adapter"
	"github.com/MKhiriev/go-task-sync/internal/client"
	"github.com/MKhiriev/go-task-sync/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	app := client.NewApp(buildInfo, adapter.NewTodoistSyncClient)
	if err := app.Run(); err != nil {
		os.Exit(1)
	}
}
