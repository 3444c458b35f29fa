package handlers

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"oci_kiosk/dto"
	"oci_kiosk/internal/repository"
	"oci_kiosk/internal/storage"
	"oci_kiosk/model"
	"oci_kiosk/services"
)

const nodesColl = "nodes"

// GetTreeHandler godoc
// @Summary      Get the content tree
// @Description  Return the nested forest of kiosk nodes, siblings ordered
// @Tags         nodes
// @Produce      json
// @Success      200  {array}   model.Node
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/nodes/tree [get]
func GetTreeHandler(db *mongo.Database) fiber.Handler {
	return func(c *fiber.Ctx) error {
		flat, err := repository.FetchAllNodes(context.Background(), db.Collection(nodesColl))
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).
				JSON(dto.ErrorResponse{Message: err.Error()})
		}

		tree := services.BuildTree(flat)
		if tree == nil {
			tree = []*model.Node{}
		}
		return c.JSON(tree)
	}
}

func GetNodeHandler(db *mongo.Database) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := bson.ObjectIDFromHex(c.Params("id"))
		if err != nil {
			return c.Status(fiber.StatusBadRequest).
				JSON(dto.ErrorResponse{Message: "invalid node id"})
		}

		node, err := repository.FetchNodeByID(context.Background(), db.Collection(nodesColl), id)
		if err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				return c.Status(fiber.StatusNotFound).
					JSON(dto.ErrorResponse{Message: "node not found"})
			}
			return c.Status(fiber.StatusInternalServerError).
				JSON(dto.ErrorResponse{Message: err.Error()})
		}
		return c.JSON(node)
	}
}

// CreateNodeHandler godoc
// @Summary      Create a node
// @Tags         nodes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        data  body      dto.CreateNodeDTO  true  "Node payload"
// @Success      201   {object}  model.Node
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/nodes [post]
func CreateNodeHandler(db *mongo.Database) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body dto.CreateNodeDTO
		if err := c.BodyParser(&body); err != nil {
			return c.Status(fiber.StatusBadRequest).
				JSON(dto.ErrorResponse{Message: "invalid body"})
		}
		if body.Title == "" {
			return c.Status(fiber.StatusBadRequest).
				JSON(dto.ErrorResponse{Message: "title is required"})
		}

		node := model.Node{
			Title:  body.Title,
			X:      body.X,
			Y:      body.Y,
			Order:  body.Order,
			Video:  body.Video,
			Action: body.Action,
		}
		if body.Parent != "" {
			pid, err := bson.ObjectIDFromHex(body.Parent)
			if err != nil {
				return c.Status(fiber.StatusBadRequest).
					JSON(dto.ErrorResponse{Message: "invalid parent id"})
			}
			node.Parent = &pid
		}

		if err := repository.InsertNode(context.Background(), db.Collection(nodesColl), &node); err != nil {
			return c.Status(fiber.StatusInternalServerError).
				JSON(dto.ErrorResponse{Message: err.Error()})
		}
		return c.Status(fiber.StatusCreated).JSON(node)
	}
}

func UpdateNodeHandler(db *mongo.Database) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := bson.ObjectIDFromHex(c.Params("id"))
		if err != nil {
			return c.Status(fiber.StatusBadRequest).
				JSON(dto.ErrorResponse{Message: "invalid node id"})
		}

		var body dto.UpdateNodeDTO
		if err := c.BodyParser(&body); err != nil {
			return c.Status(fiber.StatusBadRequest).
				JSON(dto.ErrorResponse{Message: "invalid body"})
		}

		set := bson.M{}
		unset := bson.M{}
		if body.Title != nil {
			set["title"] = *body.Title
		}
		if body.X != nil {
			set["x"] = *body.X
		}
		if body.Y != nil {
			set["y"] = *body.Y
		}
		if body.Order != nil {
			set["order"] = *body.Order
		}
		if body.Parent != nil {
			if *body.Parent == "" {
				unset["parent"] = ""
			} else {
				pid, err := bson.ObjectIDFromHex(*body.Parent)
				if err != nil {
					return c.Status(fiber.StatusBadRequest).
						JSON(dto.ErrorResponse{Message: "invalid parent id"})
				}
				set["parent"] = pid
			}
		}
		if body.Video != nil {
			set["video"] = body.Video
		}
		if body.Action != nil {
			set["action"] = body.Action
		}
		if len(set) == 0 && len(unset) == 0 {
			return c.Status(fiber.StatusBadRequest).
				JSON(dto.ErrorResponse{Message: "nothing to update"})
		}

		node, err := repository.UpdateNode(context.Background(), db.Collection(nodesColl), id, set, unset)
		if err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				return c.Status(fiber.StatusNotFound).
					JSON(dto.ErrorResponse{Message: "node not found"})
			}
			return c.Status(fiber.StatusInternalServerError).
				JSON(dto.ErrorResponse{Message: err.Error()})
		}
		return c.JSON(node)
	}
}

// DeleteNodeHandler removes a node and its whole subtree, then cleans the
// subtree's media out of S3.
func DeleteNodeHandler(db *mongo.Database, store *storage.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := bson.ObjectIDFromHex(c.Params("id"))
		if err != nil {
			return c.Status(fiber.StatusBadRequest).
				JSON(dto.ErrorResponse{Message: "invalid node id"})
		}

		ctx := context.Background()
		coll := db.Collection(nodesColl)

		flat, err := repository.FetchAllNodes(ctx, coll)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).
				JSON(dto.ErrorResponse{Message: err.Error()})
		}

		ids := services.SubtreeIDs(flat, id)
		doomed := make(map[bson.ObjectID]bool, len(ids))
		for _, did := range ids {
			doomed[did] = true
		}

		if _, err := repository.DeleteNodes(ctx, coll, ids); err != nil {
			return c.Status(fiber.StatusInternalServerError).
				JSON(dto.ErrorResponse{Message: err.Error()})
		}

		if store != nil {
			for i := range flat {
				if !doomed[flat[i].ID] {
					continue
				}
				for _, key := range services.MediaKeys(&flat[i]) {
					store.Delete(ctx, key)
				}
			}
		}

		return c.JSON(dto.DeleteResponse{Success: true})
	}
}
