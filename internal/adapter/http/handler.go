package http

import (
	"context"
	"errors"
	"io"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"resume-builder/internal/adapter/repository"
	"resume-builder/internal/auth"
	"resume-builder/internal/domain"
	"resume-builder/internal/model"
	"resume-builder/pkg/ai"
)

// UserStore and ResumeStore are the repository slices the handlers need.
type UserStore interface {
	Create(ctx context.Context, u *domain.User) error
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
}

type ResumeStore interface {
	Create(ctx context.Context, userEmail string, doc model.Resume) (*domain.StoredResume, error)
	Update(ctx context.Context, id uuid.UUID, userEmail string, doc model.Resume) (*domain.StoredResume, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.StoredResume, error)
	ListByOwner(ctx context.Context, userEmail string) ([]model.Resume, error)
	Delete(ctx context.Context, id uuid.UUID, userEmail string) error
}

// AIService mirrors the adapter's never-fail contract.
type AIService interface {
	ParseResumeFromBinary(ctx context.Context, data []byte, mimeType string) model.Resume
	CheckATSScore(ctx context.Context, r model.Resume) *ai.ATSReport
	OptimizeSummary(ctx context.Context, jobTitle string, skills []string) string
	GenerateCoverLetter(ctx context.Context, r model.Resume, jobTitle, company, jobDescription string) string
	OptimizeResumeForATS(ctx context.Context, r model.Resume) model.Resume
}

type Mailer interface {
	SendResume(ctx context.Context, to, subject string, r model.Resume) error
}

type Handler struct {
	users   UserStore
	resumes ResumeStore
	tokens  *auth.TokenManager
	ai      AIService
	mailer  Mailer
	log     *zap.Logger
}

func NewHandler(users UserStore, resumes ResumeStore, tokens *auth.TokenManager, aiSvc AIService, mailer Mailer, log *zap.Logger) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{users: users, resumes: resumes, tokens: tokens, ai: aiSvc, mailer: mailer, log: log}
}

// ---- auth ----

type registerReq struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) Register(c *fiber.Ctx) error {
	var req registerReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid payload"})
	}
	if req.Email == "" || req.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "email and password are required"})
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "registration failed"})
	}

	u := &domain.User{FullName: req.FullName, Email: req.Email, PasswordHash: hash}
	if err := h.users.Create(c.Context(), u); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"message": "email already registered"})
		}
		h.log.Error("register failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "registration failed"})
	}
	return c.JSON(fiber.Map{"fullName": u.FullName, "email": u.Email})
}

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) Login(c *fiber.Ctx) error {
	var req loginReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid payload"})
	}

	u, err := h.users.FindByEmail(c.Context(), req.Email)
	if err != nil || !auth.CheckPassword(u.PasswordHash, req.Password) {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "invalid email or password"})
	}

	token, err := h.tokens.Generate(u.Email)
	if err != nil {
		h.log.Error("token generation failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "login failed"})
	}
	return c.JSON(fiber.Map{
		"token": token,
		"user":  fiber.Map{"fullName": u.FullName, "email": u.Email},
	})
}

// ---- resumes ----

func (h *Handler) CreateResume(c *fiber.Ctx) error {
	var doc model.Resume
	if err := c.BodyParser(&doc); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid resume payload"})
	}
	stored, err := h.resumes.Create(c.Context(), requestEmail(c), doc)
	if err != nil {
		h.log.Error("create resume failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "failed to create resume"})
	}
	return c.JSON(stored.Document)
}

func (h *Handler) UpdateResume(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		// timestamp-style client ids never match a stored row
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "resume not found"})
	}
	var doc model.Resume
	if err := c.BodyParser(&doc); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid resume payload"})
	}
	stored, err := h.resumes.Update(c.Context(), id, requestEmail(c), doc)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "resume not found"})
	case errors.Is(err, repository.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"message": "resume belongs to another account"})
	case err != nil:
		h.log.Error("update resume failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "failed to update resume"})
	}
	return c.JSON(stored.Document)
}

func (h *Handler) GetResume(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "resume not found"})
	}
	stored, err := h.resumes.GetByID(c.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "resume not found"})
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "failed to load resume"})
	}
	return c.JSON(stored.Document)
}

func (h *Handler) ListResumes(c *fiber.Ctx) error {
	resumes, err := h.resumes.ListByOwner(c.Context(), requestEmail(c))
	if err != nil {
		h.log.Error("list resumes failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "failed to list resumes"})
	}
	return c.JSON(resumes)
}

func (h *Handler) DeleteResume(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "resume not found"})
	}
	if err := h.resumes.Delete(c.Context(), id, requestEmail(c)); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "resume not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "failed to delete resume"})
	}
	return c.JSON(fiber.Map{"message": "resume deleted"})
}

// ---- AI ----

func (h *Handler) ParseResume(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "a resume file is required"})
	}
	f, err := file.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "unreadable file"})
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "unreadable file"})
	}

	doc := h.ai.ParseResumeFromBinary(c.Context(), data, file.Header.Get(fiber.HeaderContentType))
	return c.JSON(doc)
}

func (h *Handler) ScoreResume(c *fiber.Ctx) error {
	var doc model.Resume
	if err := c.BodyParser(&doc); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid resume payload"})
	}
	return c.JSON(h.ai.CheckATSScore(c.Context(), doc))
}

type summaryReq struct {
	JobTitle string   `json:"jobTitle"`
	Skills   []string `json:"skills"`
}

func (h *Handler) Summary(c *fiber.Ctx) error {
	var req summaryReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid payload"})
	}
	return c.JSON(fiber.Map{"summary": h.ai.OptimizeSummary(c.Context(), req.JobTitle, req.Skills)})
}

type coverLetterReq struct {
	Resume         model.Resume `json:"resume"`
	JobTitle       string       `json:"jobTitle"`
	Company        string       `json:"company"`
	JobDescription string       `json:"jobDescription"`
}

func (h *Handler) CoverLetter(c *fiber.Ctx) error {
	var req coverLetterReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid payload"})
	}
	letter := h.ai.GenerateCoverLetter(c.Context(), req.Resume, req.JobTitle, req.Company, req.JobDescription)
	return c.JSON(fiber.Map{"coverLetter": letter})
}

func (h *Handler) Optimize(c *fiber.Ctx) error {
	var doc model.Resume
	if err := c.BodyParser(&doc); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid resume payload"})
	}
	return c.JSON(h.ai.OptimizeResumeForATS(c.Context(), doc))
}

// ---- email ----

type emailReq struct {
	To      string       `json:"to"`
	Subject string       `json:"subject"`
	Resume  model.Resume `json:"resume"`
}

func (h *Handler) SendResume(c *fiber.Ctx) error {
	if h.mailer == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"message": "email delivery is not configured"})
	}
	var req emailReq
	if err := c.BodyParser(&req); err != nil || req.To == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "recipient email is required"})
	}
	if err := h.mailer.SendResume(c.Context(), req.To, req.Subject, req.Resume); err != nil {
		h.log.Error("send resume email failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "failed to send email"})
	}
	return c.JSON(fiber.Map{"message": "email sent"})
}
