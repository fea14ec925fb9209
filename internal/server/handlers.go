// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pdiddy/settle-convert/internal/convert"
	"github.com/pdiddy/settle-convert/pkg/types"
)

// convertRequest is the body of POST /api/convert.
type convertRequest struct {
	Type     string `json:"type"`
	Content  string `json:"content"`
	Filename string `json:"filename,omitempty"`
}

// errorResponse is the body of every non-2xx response.
type errorResponse struct {
	Message string   `json:"message"`
	Errors  []string `json:"errors,omitempty"`
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message":   "settle-convert is running",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"endpoints": endpoints,
	})
}

func (s *Server) handleConvert(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		s.abortRead(c, err)
		return
	}

	violations, err := s.validator.validate(body)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Message: "Request body must be JSON"})
		return
	}
	if len(violations) > 0 {
		c.JSON(http.StatusBadRequest, errorResponse{Message: "Invalid request body", Errors: violations})
		return
	}

	var req convertRequest
	if err := json.Unmarshal(body, &req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Message: "Request body must be JSON"})
		return
	}

	s.respond(c, req.Type, req.Content, req.Filename)
}

// handleUpload converts a multipart file upload. The form carries the file
// under "file" and the conversion type under "type".
func (s *Server) handleUpload(c *gin.Context) {
	// The multipart parser hides the size-limit error, so the capped body
	// is read in full before parsing.
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		s.abortRead(c, err)
		return
	}
	c.Request.Body = io.NopCloser(bytes.NewReader(body))

	fh, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Message: "No file uploaded"})
		return
	}

	f, err := fh.Open()
	if err != nil {
		s.abortRead(c, err)
		return
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		s.abortRead(c, err)
		return
	}

	s.respond(c, c.PostForm("type"), string(data), fh.Filename)
}

// respond dispatches to the conversion engine and writes the result.
func (s *Server) respond(c *gin.Context, convType, content, filename string) {
	log := s.log.With(
		zap.String("request_id", c.GetString(requestIDHeader)),
		zap.String("type", convType),
		zap.String("filename", filename),
		zap.Int("bytes", len(content)),
	)

	res, err := convert.Convert(types.ConversionType(convType), content)
	if errors.Is(err, convert.ErrUnknownConversionType) {
		log.Warn("unknown conversion type")
		c.JSON(http.StatusBadRequest, errorResponse{Message: "Unknown conversion type"})
		return
	}
	if err != nil {
		log.Error("conversion failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, errorResponse{Message: "Error during conversion"})
		return
	}

	if res.Error != "" {
		log.Warn("conversion returned failure report", zap.String("error", res.Error))
	} else {
		log.Debug("document converted",
			zap.Int("courses", len(res.Courses)),
			zap.Int("conversions", len(res.Conversions)))
	}
	c.JSON(http.StatusOK, res)
}

// abortRead maps body read errors to 413 or 400.
func (s *Server) abortRead(c *gin.Context, err error) {
	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		c.JSON(http.StatusRequestEntityTooLarge, errorResponse{Message: "Upload exceeds size limit"})
		return
	}
	s.log.Warn("reading request body", zap.Error(err))
	c.JSON(http.StatusBadRequest, errorResponse{Message: "Could not read request body"})
}
