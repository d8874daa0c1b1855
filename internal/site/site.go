// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package site

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/mia-platform/twinserve/internal/notify"
	"github.com/mia-platform/twinserve/internal/server"
)

const (
	cssContentType = "text/css; charset=utf-8"

	// NotFoundBody is sent for every path that is not part of the site.
	NotFoundBody = "<h1>404 - Page Not Found</h1>"
	// PageErrorBody is sent when a page or the menu cannot be read.
	PageErrorBody = "<h1>500 - Internal Server Error</h1><p>Could not load the requested page.</p>"
	// StylesheetErrorBody is sent when the stylesheet cannot be read.
	StylesheetErrorBody = "/* Could not read CSS file */"

	stylesheetPath = "/styles.css"
	faviconPath    = "/favicon.ico"
)

// page binds a path to the file it serves. Pages with a name emit a route
// accessed notification when they are requested.
type page struct {
	path string
	file string
	name string
}

var pages = []page{
	{path: "/", file: "index.html"},
	{path: "/about", file: "about.html", name: "About"},
	{path: "/contact", file: "contact.html", name: "Contact"},
	{path: "/products", file: "products.html", name: "Products"},
	{path: "/subscribe", file: "subscribe.html", name: "Subscribe"},
}

// Site serves the pages, the stylesheet and the favicon.
type Site struct {
	views *Views
	bus   *notify.Bus
}

// New returns a Site reading from views and publishing its events on bus.
func New(views *Views, bus *notify.Bus) *Site {
	return &Site{
		views: views,
		bus:   bus,
	}
}

// Routes installs the site routes on app. Every path not listed ends on the
// not found handler; the HTTP method is never considered.
func (s *Site) Routes(app *fiber.App) {
	app.All(stylesheetPath, s.stylesheet)
	app.All(faviconPath, s.favicon)
	for _, p := range pages {
		app.All(p.path, s.page(p))
	}
	app.Use(s.notFound)
}

// NewServer returns the server for the site program.
func (s *Site) NewServer(ctx context.Context, cfg server.Config) *server.Server {
	return server.NewServer(ctx, cfg, s.Routes)
}

func (s *Site) page(p page) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx := c.UserContext()
		if p.name != "" {
			s.bus.Publish(ctx, notify.RouteAccessedEvent(p.name))
		}

		content, file, err := s.views.Page(p.file)
		c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
		if err != nil {
			s.bus.Publish(ctx, notify.FileReadErrorEvent(s.views.Path(file), err))
			return c.Status(fiber.StatusInternalServerError).SendString(PageErrorBody)
		}

		s.bus.Publish(ctx, notify.FileReadSuccessEvent(s.views.Path(file)))
		return c.Status(fiber.StatusOK).SendString(content)
	}
}

func (s *Site) stylesheet(c *fiber.Ctx) error {
	content, err := s.views.Stylesheet()
	c.Set(fiber.HeaderContentType, cssContentType)
	if err != nil {
		s.bus.Publish(c.UserContext(), notify.FileReadErrorEvent(s.views.Path(stylesheetFile), err))
		return c.Status(fiber.StatusInternalServerError).SendString(StylesheetErrorBody)
	}

	return c.Status(fiber.StatusOK).Send(content)
}

func (s *Site) favicon(c *fiber.Ctx) error {
	c.Status(fiber.StatusNoContent)
	return nil
}

func (s *Site) notFound(c *fiber.Ctx) error {
	s.bus.Publish(c.UserContext(), notify.StatusCodeEvent(fiber.StatusNotFound))
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Status(fiber.StatusNotFound).SendString(NotFoundBody)
}
