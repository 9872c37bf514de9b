package jobs

import (
	"context"
	"log"
	"time"

	config "github.com/kokushiworks/exam_bank/configs"
	"github.com/kokushiworks/exam_bank/services"
)

// SyncAssetLinks refreshes asset links from the configured Cloudinary
// folder, so renders uploaded after ingestion get attached without a
// manual sync call.
func SyncAssetLinks(assetService *services.AssetService) {
	folder := config.Config("ASSET_FOLDER")
	if folder == "" {
		return
	}

	log.Println("Running job: SyncAssetLinks...")
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	res, listed, err := assetService.SyncFolder(ctx, folder)
	if err != nil {
		log.Printf("Error syncing asset links from %q: %v", folder, err)
		return
	}
	log.Printf("Asset sync: %d listed, %d patched, %d unmatched", listed, res.Patched, res.Unmatched)
}
