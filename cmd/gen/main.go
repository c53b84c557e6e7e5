package main

import (
	"dealdrop/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.VendorListingModel{},
		model.FlashDealModel{},
		model.FavoriteSubscriptionModel{},
		model.AlertPreferencesModel{},
		model.UserDeviceModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
