package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"apotheka/internal/domain"
	applog "apotheka/internal/log"
	"apotheka/internal/repos"
	"apotheka/internal/validate"
)

// ResourceHandler dispatches the uniform CRUD surface for one collection.
// Label is the user-facing resource name used in error bodies ("Product").
type ResourceHandler struct {
	Col         *repos.Collection
	Label       string
	AllowDelete bool
}

// Register mounts the handler under an /api/<resource> group. Orders mount
// without the delete route.
func (h *ResourceHandler) Register(r fiber.Router) {
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Get("/:key", h.Get)
	r.Put("/:key", h.Update)
	if h.AllowDelete {
		r.Delete("/:key", h.Delete)
	}
}

func (h *ResourceHandler) notFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": h.Label + " not found"})
}

func (h *ResourceHandler) key(c *fiber.Ctx) (string, bool) {
	k, ok := validate.Key(c.Params("key"))
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": h.Col.Key})
	}
	return k, ok
}

func (h *ResourceHandler) body(c *fiber.Ctx) (domain.Record, error) {
	body := domain.Record{}
	if err := c.BodyParser(&body); err != nil {
		return nil, err
	}
	return body, nil
}

func (h *ResourceHandler) List(c *fiber.Ctx) error {
	return c.JSON(h.Col.List())
}

func (h *ResourceHandler) Get(c *fiber.Ctx) error {
	k, ok := h.key(c)
	if !ok {
		return h.notFound(c)
	}
	rec, err := h.Col.Get(k)
	if err != nil {
		return h.notFound(c)
	}
	return c.JSON(rec)
}

func (h *ResourceHandler) Create(c *fiber.Ctx) error {
	body, err := h.body(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid JSON body"})
	}
	rec, err := h.Col.Create(body)
	if errors.Is(err, repos.ErrDuplicate) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": h.Label + " with this " + h.Col.Key + " already exists",
		})
	}
	if errors.Is(err, repos.ErrInvalidKey) {
		applog.Security(c, "validation.fail", map[string]any{"field": h.Col.Key})
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid " + h.Col.Key})
	}
	if err != nil {
		applog.Error(c, h.Col.Name+".create.fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "could not save " + h.Col.Name})
	}
	applog.Audit(c, h.Col.Name+".create", map[string]any{h.Col.Key: rec[h.Col.Key]})
	return c.Status(fiber.StatusCreated).JSON(rec)
}

func (h *ResourceHandler) Update(c *fiber.Ctx) error {
	k, ok := h.key(c)
	if !ok {
		return h.notFound(c)
	}
	body, err := h.body(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid JSON body"})
	}
	rec, err := h.Col.Update(k, body)
	if errors.Is(err, repos.ErrNotFound) {
		return h.notFound(c)
	}
	if err != nil {
		applog.Error(c, h.Col.Name+".update.fail", err, map[string]any{h.Col.Key: k})
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "could not save " + h.Col.Name})
	}
	applog.Audit(c, h.Col.Name+".update", map[string]any{h.Col.Key: k})
	return c.JSON(rec)
}

func (h *ResourceHandler) Delete(c *fiber.Ctx) error {
	k, ok := h.key(c)
	if !ok {
		return h.notFound(c)
	}
	rec, err := h.Col.Delete(k)
	if errors.Is(err, repos.ErrNotFound) {
		return h.notFound(c)
	}
	if err != nil {
		applog.Error(c, h.Col.Name+".delete.fail", err, map[string]any{h.Col.Key: k})
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "could not save " + h.Col.Name})
	}
	applog.Audit(c, h.Col.Name+".delete", map[string]any{h.Col.Key: k})
	return c.JSON(rec)
}
