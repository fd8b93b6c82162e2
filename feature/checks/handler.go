package checks

import (
	"strings"

	"github.com/JamshedBosch/Requirements-import-export-check-compact/core/errors"
	"github.com/JamshedBosch/Requirements-import-export-check-compact/core/logger"
	"github.com/JamshedBosch/Requirements-import-export-check-compact/core/reconcile"
	"github.com/JamshedBosch/Requirements-import-export-check-compact/core/record"
	"github.com/JamshedBosch/Requirements-import-export-check-compact/core/source"
	"github.com/JamshedBosch/Requirements-import-export-check-compact/feature/report"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for project checks.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the check routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/checks")
	group.Get("/", h.HandleProjects)
	group.Get("/:project/rules", h.HandleRules)
	group.Post("/:project/:direction", h.HandleCheck)
}

// checkRequest is the body of a check. Each side is given either inline or as a location.
type checkRequest struct {
	Source            *source.Document `json:"source"`
	SourceLocation    string           `json:"source_location"`
	Reference         *source.Document `json:"reference"`
	ReferenceLocation string           `json:"reference_location"`
	RunID             string           `json:"run_id"`
}

// HandleProjects lists the known projects.
// @Summary List Projects
// @Description Returns the names of the projects with a rule family.
// @Tags checks
// @Produce json
// @Success 200 {object} map[string]interface{} "Projects"
// @Router /checks [get]
func (h *Handler) HandleProjects(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"projects": h.service.Projects()})
}

// HandleRules lists the rules of a project.
// @Summary List Rules
// @Description Lists the rules of a project for one direction, or for both when none is given.
// @Tags checks
// @Produce json
// @Param project path string true "Project (ppe, ssp, sdv01)"
// @Param direction query string false "import or export"
// @Success 200 {object} map[string]interface{} "Rules"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 404 {object} map[string]string "Unknown Project"
// @Router /checks/{project}/rules [get]
func (h *Handler) HandleRules(c *fiber.Ctx) error {
	project := c.Params("project")
	directions := []string{string(reconcile.Import), string(reconcile.Export)}
	if d := c.Query("direction"); d != "" {
		directions = []string{d}
	}

	out := fiber.Map{"project": strings.ToLower(project)}
	for _, d := range directions {
		defs, err := h.service.Rules(project, d)
		if err != nil {
			return h.fail(c, err)
		}
		out[strings.ToLower(d)] = defs
	}
	return c.JSON(out)
}

// HandleCheck runs the rules of a project on the posted datasets.
// @Summary Run Check
// @Description Reconciles the source dataset against the optional reference dataset. Datasets are posted inline or named by location (file path, "table:<name>", "object:<key>").
// @Tags checks
// @Accept json
// @Produce json
// @Param project path string true "Project (ppe, ssp, sdv01)"
// @Param direction path string true "import or export"
// @Param view query string false "result (default) or report"
// @Param markup query string false "brackets (default) or html"
// @Param publish query boolean false "Publish the report to the storage bucket"
// @Success 200 {object} map[string]interface{} "Check Result"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 404 {object} map[string]string "Unknown Project"
// @Failure 422 {object} map[string]string "Unusable Dataset"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /checks/{project}/{direction} [post]
func (h *Handler) HandleCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	ctx := c.Context()

	var body checkRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body", "details": err.Error()})
	}

	src, err := h.dataset(c, body.Source, body.SourceLocation, record.SideSource)
	if err != nil {
		return h.fail(c, err)
	}
	if src == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "a source dataset is required"})
	}
	ref, err := h.dataset(c, body.Reference, body.ReferenceLocation, record.SideReference)
	if err != nil {
		return h.fail(c, err)
	}

	req := Request{
		Project:   c.Params("project"),
		Direction: c.Params("direction"),
		Source:    src,
		Reference: ref,
		RunID:     body.RunID,
	}
	res, err := h.service.Check(ctx, req)
	if err != nil {
		l.Error("Check failed", zap.String("project", req.Project), zap.Error(err))
		return h.fail(c, err)
	}

	l.Info("Check completed",
		zap.String("run_id", res.RunID),
		zap.String("project", req.Project),
		zap.Int("findings", res.Summary.Findings),
		zap.Int("skipped_rules", res.Summary.Skipped))

	publish := c.QueryBool("publish")
	if c.Query("view") != "report" && !publish {
		return c.JSON(res)
	}

	rep := h.service.Report(req, res, c.Query("markup"))
	if !publish {
		return c.JSON(rep)
	}
	names, err := h.service.Publish(ctx, rep, report.FormatJSON, report.FormatMarkdown)
	if err != nil {
		l.Error("Report publishing failed", zap.String("run_id", res.RunID), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Failed to publish report",
			"details": err.Error(),
			"report":  rep,
		})
	}
	return c.JSON(fiber.Map{"report": rep, "published": names})
}

func (h *Handler) dataset(c *fiber.Ctx, doc *source.Document, location string, side record.Side) (*record.Dataset, error) {
	if doc != nil {
		return doc.Dataset("request "+string(side), side)
	}
	return h.service.Load(c.Context(), location, side)
}

// fail maps service errors onto status codes.
func (h *Handler) fail(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, errors.ErrUnknownProject):
		status = fiber.StatusNotFound
	case errors.Is(err, errors.ErrInvalidDataset):
		status = fiber.StatusBadRequest
	case errors.Is(err, errors.ErrInvariantViolation):
		status = fiber.StatusUnprocessableEntity
	case errors.Is(err, errors.ErrUnknownDirection):
		status = fiber.StatusBadRequest
	}
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}
