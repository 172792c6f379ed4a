package api

import (
	"io"
	"net/http"
	"strings"

	"github.com/labstack/echo/v5"

	"github.com/samcharles93/elfscope/internal/logger"
	"github.com/samcharles93/elfscope/internal/version"
	"github.com/samcharles93/elfscope/pkg/ehdr"
)

// DefaultMaxBodyBytes bounds an uploaded object file.
const DefaultMaxBodyBytes int64 = 64 << 20

type Config struct {
	MaxBodyBytes int64
	Logger       logger.Logger
}

// Server decodes object file headers posted over HTTP. Each request works on
// its own buffer; the server holds no per-request state.
type Server struct {
	maxBody int64
	log     logger.Logger
}

func NewServer(cfg Config) *Server {
	if cfg.MaxBodyBytes <= 0 {
		cfg.MaxBodyBytes = DefaultMaxBodyBytes
	}
	if cfg.Logger == nil {
		cfg.Logger = logger.Discard()
	}
	return &Server{maxBody: cfg.MaxBodyBytes, log: cfg.Logger}
}

func (s *Server) Register(e *echo.Echo) {
	e.Use(requestID)
	e.GET("/healthz", s.handleHealth)
	e.POST("/v1/header", s.handleHeader)
}

func (s *Server) handleHealth(c *echo.Context) error {
	return writeJSON(c, http.StatusOK, HealthResponse{Status: "ok", Version: version.String()})
}

func (s *Server) handleHeader(c *echo.Context) error {
	log := s.log.With("request_id", currentRequestID(c))

	strict, err := boolParam(c, "strict")
	if err != nil {
		return writeBadRequest(c, err.Error())
	}
	format := strings.ToLower(c.QueryParam("format"))
	if format == "" {
		format = "json"
	}
	if format != "json" && format != "text" {
		return writeBadRequest(c, "format must be json or text")
	}

	body, err := io.ReadAll(io.LimitReader(c.Request().Body, s.maxBody+1))
	if err != nil {
		return writeError(c, http.StatusBadRequest, "invalid_request", "read body: "+err.Error())
	}
	if int64(len(body)) > s.maxBody {
		return writeError(c, http.StatusRequestEntityTooLarge, "invalid_request", "object file exceeds upload limit")
	}

	decode := ehdr.Decode
	if strict {
		decode = ehdr.DecodeStrict
	}
	h, err := decode(body)
	if err != nil {
		status, code := decodeErrorCode(err)
		log.Warn("decode failed", "size", len(body), "strict", strict, "error", err)
		return writeError(c, status, code, err.Error())
	}
	log.Debug("decoded header", "size", len(body), "class", h.Ident.Class, "machine", h.Machine)

	if format == "text" {
		return writeBody(c, http.StatusOK, mimeTextPlain, []byte(ehdr.Format(h)))
	}
	return writeJSON(c, http.StatusOK, HeaderResponse{
		ID:     currentRequestID(c),
		Object: "elf.header",
		Size:   len(body),
		Strict: strict,
		Header: ehdr.Summarize(h),
	})
}
