package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"

	"oci_kiosk/internal/engine"
	"oci_kiosk/model"
)

// The display process polls the content API and exposes the reconciled
// display state to the on-screen renderer, which polls GET /state and posts
// input events back.
func main() {
	if err := godotenv.Overload(".env"); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	apiBase := os.Getenv("KIOSK_API_URL")
	if apiBase == "" {
		apiBase = "http://localhost:3000"
	}
	port := os.Getenv("DISPLAY_PORT")
	if port == "" {
		port = "7070"
	}

	eng := engine.New(engine.Options{
		BaseURL: apiBase,
		OnChange: func(st engine.State) {
			log.Printf("display: mode=%s node=%s video=%q overlay=%v",
				st.Mode(), nodeTitle(st.CurrentNode), st.CurrentVideoURL, st.OverlayOpen)
		},
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := eng.Run(ctx); err != nil && ctx.Err() == nil {
			log.Fatalf("engine stopped: %v", err)
		}
	}()

	app := fiber.New()

	app.Get("/state", func(c *fiber.Ctx) error {
		st := eng.State()
		return c.JSON(fiber.Map{
			"mode":    st.Mode().String(),
			"state":   st,
			"nodes":   st.VisibleNodes(eng.Index()),
			"overlay": engine.RenderOverlay(st),
			"marquee": st.MarqueeSpeakers(),
		})
	})

	app.Post("/input/touch", func(c *fiber.Ctx) error {
		eng.Touch()
		return c.SendStatus(fiber.StatusNoContent)
	})
	app.Post("/input/node/:id", func(c *fiber.Ctx) error {
		eng.ClickNode(c.Params("id"))
		return c.SendStatus(fiber.StatusNoContent)
	})
	app.Post("/input/back", func(c *fiber.Ctx) error {
		eng.Back()
		return c.SendStatus(fiber.StatusNoContent)
	})
	app.Post("/input/home", func(c *fiber.Ctx) error {
		eng.GoHome()
		return c.SendStatus(fiber.StatusNoContent)
	})
	app.Post("/input/close", func(c *fiber.Ctx) error {
		eng.CloseOverlay()
		return c.SendStatus(fiber.StatusNoContent)
	})
	app.Post("/input/video-started", func(c *fiber.Ctx) error {
		eng.VideoStarted()
		return c.SendStatus(fiber.StatusNoContent)
	})
	app.Post("/input/speaker", func(c *fiber.Ctx) error {
		var spk model.AgendaItem
		if err := c.BodyParser(&spk); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid speaker")
		}
		eng.SelectSpeaker(spk)
		return c.SendStatus(fiber.StatusNoContent)
	})
	app.Post("/input/slide/next", func(c *fiber.Ctx) error {
		eng.SlideNext()
		return c.SendStatus(fiber.StatusNoContent)
	})
	app.Post("/input/slide/prev", func(c *fiber.Ctx) error {
		eng.SlidePrev()
		return c.SendStatus(fiber.StatusNoContent)
	})
	app.Post("/input/slide/:idx", func(c *fiber.Ctx) error {
		idx, err := c.ParamsInt("idx")
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid slide index")
		}
		eng.SlideTo(idx)
		return c.SendStatus(fiber.StatusNoContent)
	})

	go func() {
		<-ctx.Done()
		_ = app.Shutdown()
	}()

	log.Printf("display state at http://localhost:%s/state (api %s)", port, apiBase)
	if err := app.Listen(":" + port); err != nil {
		log.Fatal(err)
	}
}

func nodeTitle(n *model.Node) string {
	if n == nil {
		return "-"
	}
	return n.Title
}
