package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/kokushiworks/exam_bank/services"
)

type AssetLinksRequest struct {
	// Text is a hand-typed "key: url" block; Links is a ready-made map
	// from an external listing. Either may be supplied; text entries win
	// on overlap.
	Text  string            `json:"text"`
	Links map[string]string `json:"links"`
}

func PatchAssetLinks(c *fiber.Ctx) error {
	var req AssetLinksRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	links := make(map[string]string, len(req.Links))
	for k, v := range req.Links {
		links[k] = v
	}
	for k, v := range services.ParseManualLinks(req.Text) {
		links[k] = v
	}
	if len(links) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "No links supplied"})
	}

	res, err := assetService.PatchLinks(c.Context(), links)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to patch asset links"})
	}
	return c.JSON(res)
}

type AssetSyncRequest struct {
	Folder string `json:"folder" validate:"required"`
}

// SyncAssetFolder pulls the Cloudinary folder listing and patches every
// matching record's asset link.
func SyncAssetFolder(c *fiber.Ctx) error {
	var req AssetSyncRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	res, listed, err := assetService.SyncFolder(c.Context(), req.Folder)
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "Failed to list asset folder"})
	}
	return c.JSON(fiber.Map{
		"patched":   res.Patched,
		"unmatched": res.Unmatched,
		"listed":    listed,
	})
}
