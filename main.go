package main

import (
	"github.com/orgspacehq/orgspace/api"
	"github.com/orgspacehq/orgspace/appconfig"
	"github.com/orgspacehq/orgspace/common/log"
	"github.com/orgspacehq/orgspace/models"
	modelsbootstrap "github.com/orgspacehq/orgspace/models/bootstrap"
)

func main() {
	defer log.Sync()
	if err := appconfig.Load(); err != nil {
		log.Fatalf("failed loading configuration, err=%v", err)
	}
	conf := appconfig.Get()
	if err := modelsbootstrap.MigrateDB(conf.PgURI(), conf.MigrationPathFiles()); err != nil {
		log.Fatal(err)
	}
	store, err := models.Open(conf.PgURI())
	if err != nil {
		log.Fatal(err)
	}
	defer store.Close()

	a := &api.Api{Store: store}
	if err := a.StartAPI(); err != nil {
		log.Fatalf("failed to start HTTP server, err=%v", err)
	}
}
