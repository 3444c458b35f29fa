package handlers

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"oci_kiosk/dto"
	"oci_kiosk/internal/repository"
	"oci_kiosk/model"
	"oci_kiosk/services"
)

const agendasColl = "agendas"

// GetAgendasHandler godoc
// @Summary      List agenda documents
// @Description  Return all agenda documents, newest first. The first one is the live agenda.
// @Tags         agenda
// @Produce      json
// @Success      200  {array}   model.Agenda
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/agenda [get]
func GetAgendasHandler(db *mongo.Database) fiber.Handler {
	return func(c *fiber.Ctx) error {
		agendas, err := repository.FetchAgendas(context.Background(), db.Collection(agendasColl))
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).
				JSON(dto.ErrorResponse{Message: err.Error()})
		}
		if agendas == nil {
			agendas = []model.Agenda{}
		}
		return c.JSON(agendas)
	}
}

// GetActiveAgendaHandler godoc
// @Summary      Resolve the active speaker
// @Description  Manual isActive toggle wins; otherwise the item whose time window contains now.
// @Tags         agenda
// @Produce      json
// @Success      200  {object}  dto.ActiveAgendaResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/agenda/active [get]
func GetActiveAgendaHandler(db *mongo.Database) fiber.Handler {
	return func(c *fiber.Ctx) error {
		doc, err := repository.FetchNewestAgenda(context.Background(), db.Collection(agendasColl))
		if err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				return c.JSON(dto.ActiveAgendaResponse{})
			}
			return c.Status(fiber.StatusInternalServerError).
				JSON(dto.ErrorResponse{Message: err.Error()})
		}

		active, next := services.ComputeActive(doc.Items, time.Now())
		return c.JSON(dto.ActiveAgendaResponse{ActiveItem: active, NextItem: next})
	}
}

func GetAgendaHandler(db *mongo.Database) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := bson.ObjectIDFromHex(c.Params("id"))
		if err != nil {
			return c.Status(fiber.StatusBadRequest).
				JSON(dto.ErrorResponse{Message: "invalid agenda id"})
		}

		agenda, err := repository.FetchAgendaByID(context.Background(), db.Collection(agendasColl), id)
		if err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				return c.Status(fiber.StatusNotFound).
					JSON(dto.ErrorResponse{Message: "agenda not found"})
			}
			return c.Status(fiber.StatusInternalServerError).
				JSON(dto.ErrorResponse{Message: err.Error()})
		}
		return c.JSON(agenda)
	}
}

// CreateAgendaHandler godoc
// @Summary      Create an agenda document
// @Tags         agenda
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        data  body      dto.AgendaItemsDTO  true  "Agenda items"
// @Success      201   {object}  model.Agenda
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/agenda [post]
func CreateAgendaHandler(db *mongo.Database) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body dto.AgendaItemsDTO
		if err := c.BodyParser(&body); err != nil {
			return c.Status(fiber.StatusBadRequest).
				JSON(dto.ErrorResponse{Message: "invalid body"})
		}

		items, err := services.NormalizeItems(body.Items)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).
				JSON(dto.ErrorResponse{Message: err.Error()})
		}
		ensureItemIDs(items)

		agenda := model.Agenda{Items: items}
		if err := repository.InsertAgenda(context.Background(), db.Collection(agendasColl), &agenda); err != nil {
			return c.Status(fiber.StatusInternalServerError).
				JSON(dto.ErrorResponse{Message: err.Error()})
		}
		return c.Status(fiber.StatusCreated).JSON(agenda)
	}
}

// UpdateAgendaHandler replaces the item list. This is the single write path
// the CMS uses for add, edit, delete and the active toggle, so the one-active
// invariant is enforced here.
func UpdateAgendaHandler(db *mongo.Database) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := bson.ObjectIDFromHex(c.Params("id"))
		if err != nil {
			return c.Status(fiber.StatusBadRequest).
				JSON(dto.ErrorResponse{Message: "invalid agenda id"})
		}

		var body dto.AgendaItemsDTO
		if err := c.BodyParser(&body); err != nil {
			return c.Status(fiber.StatusBadRequest).
				JSON(dto.ErrorResponse{Message: "invalid body"})
		}

		items, err := services.NormalizeItems(body.Items)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).
				JSON(dto.ErrorResponse{Message: err.Error()})
		}
		ensureItemIDs(items)

		agenda, err := repository.ReplaceAgendaItems(context.Background(), db.Collection(agendasColl), id, items)
		if err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				return c.Status(fiber.StatusNotFound).
					JSON(dto.ErrorResponse{Message: "agenda not found"})
			}
			return c.Status(fiber.StatusInternalServerError).
				JSON(dto.ErrorResponse{Message: err.Error()})
		}
		return c.JSON(agenda)
	}
}

func DeleteAgendaHandler(db *mongo.Database) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := bson.ObjectIDFromHex(c.Params("id"))
		if err != nil {
			return c.Status(fiber.StatusBadRequest).
				JSON(dto.ErrorResponse{Message: "invalid agenda id"})
		}

		if err := repository.DeleteAgenda(context.Background(), db.Collection(agendasColl), id); err != nil {
			return c.Status(fiber.StatusInternalServerError).
				JSON(dto.ErrorResponse{Message: err.Error()})
		}
		return c.JSON(dto.DeleteResponse{Success: true})
	}
}

// ensureItemIDs assigns ids to items the CMS just created, so the kiosk can
// key speakers stably across polls.
func ensureItemIDs(items []model.AgendaItem) {
	for i := range items {
		if items[i].ID.IsZero() {
			items[i].ID = bson.NewObjectID()
		}
	}
}
