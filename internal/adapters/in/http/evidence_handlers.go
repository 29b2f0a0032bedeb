package http

import (
	"io"
	"net/http"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/evidence"
	"fulfillment/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// UploadEvidence handles POST /api/v1/evidence. The photo bytes come in
// the request body; the Content-Type header declares the media type.
func (s *Server) UploadEvidence(ctx echo.Context) error {
	raw, err := io.ReadAll(io.LimitReader(ctx.Request().Body, evidence.MaxFileSize+1))
	if err != nil {
		return s.writeError(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	cmd, err := commands.NewUploadEvidenceCommand(raw, ctx.Request().Header.Get(echo.HeaderContentType))
	if err != nil {
		return s.writeError(ctx, err)
	}

	file, err := s.uploadEvidenceHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, EvidenceFileResponse{
		ID:         file.ID().Int64(),
		URL:        file.URL(),
		Size:       file.Size(),
		MimeType:   file.MimeType(),
		UploadedAt: file.UploadedAt(),
	})
}
