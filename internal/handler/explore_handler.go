package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/unboundhq/unbound-backend/internal/models"
	"github.com/unboundhq/unbound-backend/internal/service"
)

// ExploreHandler serves the unauthenticated browse endpoints.
type ExploreHandler struct {
	exploreService *service.ExploreService
}

func NewExploreHandler(exploreService *service.ExploreService) *ExploreHandler {
	return &ExploreHandler{exploreService: exploreService}
}

func (h *ExploreHandler) Fests(c *fiber.Ctx) error {
	q := models.ExploreFestQuery{
		Name:      c.Query("name"),
		College:   c.Query("college"),
		StartDate: c.Query("start_date"),
		EndDate:   c.Query("end_date"),
	}

	fests, err := h.exploreService.Fests(q)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(models.SuccessResponse(fests, "Fests retrieved successfully"))
}

func (h *ExploreHandler) Events(c *fiber.Ctx) error {
	q := models.ExploreEventQuery{
		Category: c.Query("category"),
		Mode:     c.Query("mode"),
		Date:     c.Query("date"),
		EntryFee: c.Query("entry_fee"),
		FestName: c.Query("fest"),
		College:  c.Query("college"),
		Location: c.Query("location"),
		Sort:     c.Query("sort"),
	}
	if team := c.Query("team"); team != "" {
		allowed := team == "true" || team == "1"
		q.Team = &allowed
	}

	events, err := h.exploreService.Events(q)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(models.SuccessResponse(events, "Events retrieved successfully"))
}
