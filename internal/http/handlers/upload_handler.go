package handlers

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	applog "apotheka/internal/log"
	"apotheka/internal/validate"
)

// UploadHandler stores multipart image uploads under Dir. Stored names are
// generated server-side, so a hostile original filename never reaches disk.
type UploadHandler struct {
	Dir string
}

func (h *UploadHandler) Image(c *fiber.Ctx) error {
	fh, err := c.FormFile("image")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "no image file uploaded"})
	}
	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if !validate.ImageExt(ext) {
		applog.Security(c, "upload.ext.block", map[string]any{"name": fh.Filename})
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "unsupported file type"})
	}

	name := fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), uuid.NewString()[:8], ext)
	if err := os.MkdirAll(h.Dir, 0755); err != nil {
		applog.Error(c, "upload.mkdir.fail", err, map[string]any{"dir": h.Dir})
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "could not store upload"})
	}
	if err := c.SaveFile(fh, filepath.Join(h.Dir, name)); err != nil {
		applog.Error(c, "upload.save.fail", err, map[string]any{"file": name})
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "could not store upload"})
	}
	applog.Info(c, "upload.save", map[string]any{"file": name, "size": fh.Size})
	return c.JSON(fiber.Map{"filename": name, "url": "/uploads/" + name})
}
