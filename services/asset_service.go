package services

import (
	"context"
	"log"
	"path"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/admin"

	config "github.com/kokushiworks/exam_bank/configs"
	"github.com/kokushiworks/exam_bank/keys"
	"github.com/kokushiworks/exam_bank/store"
)

type AssetService struct {
	store *store.QuestionStore
}

func NewAssetService(s *store.QuestionStore) *AssetService {
	return &AssetService{store: s}
}

// ParseManualLinks parses a hand-typed block of "key: url" lines into a
// normalized-key map. The first colon is the delimiter; the URL keeps any
// further colons. Lines without a delimiter, key or URL are skipped.
func ParseManualLinks(text string) map[string]string {
	links := make(map[string]string)
	for _, line := range strings.Split(text, "\n") {
		key, url, found := strings.Cut(line, ":")
		if !found {
			continue
		}
		key = keys.Normalize(key)
		url = strings.TrimSpace(url)
		if key == "" || url == "" {
			continue
		}
		links[key] = url
	}
	return links
}

// PatchLinks applies a normalized-key → URL map to the collection by the
// same scan strategy as the accuracy reconcile, touching only AssetLink.
func (as *AssetService) PatchLinks(ctx context.Context, links map[string]string) (ReconcileResult, error) {
	normalized := make(map[string]string, len(links))
	for key, url := range links {
		// filename-aware, so listing keys ("60A-4.png") and typed keys agree
		if k := keys.NormalizeFilename(key); k != "" && url != "" {
			normalized[k] = url
		}
	}

	var patched int
	err := as.store.Transaction(ctx, func(tx *store.QuestionStore) error {
		records, err := tx.GetAll(ctx)
		if err != nil {
			return err
		}
		for i := range records {
			url, ok := normalized[keys.Normalize(records[i].DisplayNumber)]
			if !ok {
				continue
			}
			records[i].ApplyAssetLink(url)
			if _, err := tx.Upsert(ctx, &records[i]); err != nil {
				return err
			}
			patched++
		}
		return nil
	})
	if err != nil {
		return ReconcileResult{}, err
	}

	res := ReconcileResult{Patched: patched, Unmatched: len(normalized) - patched}
	if res.Unmatched > 0 {
		log.Printf("Asset links: %d of %d keys matched no stored record", res.Unmatched, len(normalized))
	}
	return res, nil
}

// FetchFolderLinks lists a Cloudinary folder and maps each asset's
// filename-derived key to its delivery URL. Public IDs carry no extension,
// and NormalizeFilename strips one anyway, so a listed "60A-4" and a typed
// "60A-4" land on the same key.
func (as *AssetService) FetchFolderLinks(ctx context.Context, folder string) (map[string]string, error) {
	cld, err := cloudinary.NewFromURL(config.Config("CLOUDINARY_URL"))
	if err != nil {
		return nil, err
	}

	links := make(map[string]string)
	cursor := ""
	for {
		res, err := cld.Admin.Assets(ctx, admin.AssetsParams{
			Prefix:     strings.TrimSuffix(folder, "/") + "/",
			MaxResults: 500,
			NextCursor: cursor,
		})
		if err != nil {
			return nil, err
		}
		for _, asset := range res.Assets {
			key := keys.NormalizeFilename(path.Base(asset.PublicID))
			if key == "" {
				continue
			}
			links[key] = asset.SecureURL
		}
		if res.NextCursor == "" {
			break
		}
		cursor = res.NextCursor
	}
	return links, nil
}

// SyncFolder fetches a folder listing and patches the matching records.
// Returns the patch tally plus how many assets the listing produced.
func (as *AssetService) SyncFolder(ctx context.Context, folder string) (ReconcileResult, int, error) {
	links, err := as.FetchFolderLinks(ctx, folder)
	if err != nil {
		return ReconcileResult{}, 0, err
	}
	res, err := as.PatchLinks(ctx, links)
	if err != nil {
		return ReconcileResult{}, len(links), err
	}
	return res, len(links), nil
}
