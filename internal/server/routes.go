package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"runtime"

	"notes/internal/database/dto"
	"notes/internal/database/models"
	"notes/internal/database/repositories"

	"github.com/gofiber/fiber/v2"
)

const greetingHTML = "<h1>Hello World!</h1>"

var errMalformedBody = fiber.NewError(fiber.StatusBadRequest, "malformed JSON body")

func bToMb(b uint64) uint64 {
	return b / 1024 / 1024
}

func (s *FiberServer) RegisterFiberRoutes() {
	s.App.Get("/", s.greeting)
	s.App.Get("/api/notes", s.getAllNotes)
	s.App.Get("/api/notes/:id", s.getSingleNote)
	s.App.Post("/api/notes", s.createNote)
	s.App.Delete("/api/notes/:id", s.deleteNote)

	s.App.Get("/health", s.healthHandler)
	// endpoint to monitor memory
	s.App.Get("/memory", func(c *fiber.Ctx) error {
		var m runtime.MemStats
		runtime.ReadMemStats(&m)
		memoryInfo := fmt.Sprintf("Alloc = %v MiB, TotalAlloc = %v MiB, Sys = %v MiB, NumGC = %v",
			bToMb(m.Alloc), bToMb(m.TotalAlloc), bToMb(m.Sys), m.NumGC)
		return c.SendString(memoryInfo)
	})

	// must stay last
	s.App.Use(s.unknownEndpoint)
}

func (s *FiberServer) healthHandler(c *fiber.Ctx) error {
	return c.JSON(s.db.Health())
}

func (s *FiberServer) greeting(c *fiber.Ctx) error {
	c.Type("html")
	return c.SendString(greetingHTML)
}

// getAllNotes returns every note in the store. A non-empty q narrows the list
// to notes whose content holds every term of q; without q the whole store is
// returned.
func (s *FiberServer) getAllNotes(c *fiber.Ctx) error {
	var (
		notes []models.Note
		err   error
	)
	if q := c.Query("q"); q != "" {
		searchRepo := repositories.NewSearchRepository(s.db.Store())
		notes, err = searchRepo.SearchQuery(c.UserContext(), q)
	} else {
		noteRepo := repositories.NewNoteRepository(s.db.Store())
		notes, err = noteRepo.GetAll(c.UserContext())
	}
	if err != nil {
		return err
	}
	return c.JSON(notes)
}

// getSingleNote reads the id leniently, so "2abc" and "2.5" both look up note 2.
func (s *FiberServer) getSingleNote(c *fiber.Ctx) error {
	id, ok := parseLeadingInt(idParam(c))
	if !ok {
		return sendEmpty(c, fiber.StatusNotFound)
	}
	noteRepo := repositories.NewNoteRepository(s.db.Store())
	note, err := noteRepo.GetByID(c.UserContext(), id)
	if errors.Is(err, repositories.ErrNoteNotFound) {
		return sendEmpty(c, fiber.StatusNotFound)
	}
	if err != nil {
		return err
	}
	return c.JSON(note)
}

func (s *FiberServer) createNote(c *fiber.Ctx) error {
	body := dto.NewNote{}
	if err := parseJSONBody(c, &body); err != nil {
		return err
	}
	note := models.Note{
		Content:   body.Content,
		Important: body.Important,
	}
	noteRepo := repositories.NewNoteRepository(s.db.Store())
	err := noteRepo.Create(c.UserContext(), &note)
	if errors.Is(err, repositories.ErrContentMissing) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "content missing",
		})
	}
	if err != nil {
		return err
	}
	slog.Debug("note created", "id", note.ID)
	return c.JSON(note)
}

// deleteNote needs the whole id to be an integral number: "2.0" deletes note 2,
// "2abc" and "2.5" delete nothing. The answer is 204 either way.
func (s *FiberServer) deleteNote(c *fiber.Ctx) error {
	if id, ok := parseNumberID(idParam(c)); ok {
		noteRepo := repositories.NewNoteRepository(s.db.Store())
		if err := noteRepo.Delete(c.UserContext(), id); err != nil {
			return err
		}
		slog.Debug("note deleted", "id", id)
	}
	return sendEmpty(c, fiber.StatusNoContent)
}

func (s *FiberServer) unknownEndpoint(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
		Error: "unknown endpoint",
	})
}

// parseJSONBody decodes a JSON request body into out. Only objects and arrays
// are accepted. Bodies that are empty or not JSON leave out untouched, and so
// does a well-formed array, which has no fields to read.
func parseJSONBody(c *fiber.Ctx, out any) error {
	body := bytes.TrimSpace(c.Body())
	if len(body) == 0 || !c.Is("json") {
		return nil
	}
	switch body[0] {
	case '{':
		if err := c.BodyParser(out); err != nil {
			return errMalformedBody
		}
	case '[':
		if !json.Valid(body) {
			return errMalformedBody
		}
	default:
		return errMalformedBody
	}
	return nil
}

func sendEmpty(c *fiber.Ctx, status int) error {
	c.Status(status)
	return nil
}
