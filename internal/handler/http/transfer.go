package http

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"

	"github.com/safepass/safepass/internal/importer"
	"github.com/safepass/safepass/internal/logger"
	"github.com/safepass/safepass/internal/utils"
	"github.com/safepass/safepass/models"
)

// maxImportSize bounds the accepted upload body.
const maxImportSize = 16 << 20 // 16 MiB

// importCredentials accepts a multipart form with a "file" part holding the
// export to import and an optional "passphrase" field used to encrypt
// plaintext secrets found in the file. The file extension selects the parser.
func (h *Handler) importCredentials(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxImportSize)
	if err := r.ParseMultipartForm(maxImportSize); err != nil {
		log.Err(err).Msg("invalid multipart form")
		http.Error(w, "invalid multipart form", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		log.Err(err).Msg("missing file part")
		http.Error(w, "missing file part", http.StatusBadRequest)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		log.Err(err).Msg("reading uploaded file failed")
		http.Error(w, "reading uploaded file failed", http.StatusBadRequest)
		return
	}

	extension := filepath.Ext(header.Filename)
	passphrase := r.FormValue("passphrase")

	result, err := h.services.TransferService.ImportCredentials(ctx, userID, data, extension, passphrase)
	if err != nil {
		switch {
		case errors.Is(err, importer.ErrUnsupportedFormat):
			log.Err(err).Str("filename", header.Filename).Msg("unsupported import format")
			http.Error(w, "unsupported import format", http.StatusUnsupportedMediaType)
			return
		case errors.Is(err, importer.ErrMalformedInput):
			log.Err(err).Str("filename", header.Filename).Msg("malformed import file")
			http.Error(w, "malformed import file", http.StatusBadRequest)
			return
		default:
			log.Err(err).Msg("import failed")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	warnings := make([]string, 0, len(result.Warnings))
	for _, warning := range result.Warnings {
		warnings = append(warnings, warning.String())
	}

	writeJSON(w, http.StatusOK, models.ImportResponse{
		Imported: result.ImportedCount,
		Warnings: warnings,
	})
}

// exportContentTypes maps an export format to the Content-Type of the
// download.
var exportContentTypes = map[string]string{
	"csv":  "text/csv",
	"xlsx": "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	"xlsm": "application/vnd.ms-excel.sheet.macroEnabled.12",
	"xml":  "application/xml",
}

// exportCredentials streams the user's vault as a downloadable file in the
// format given by the "format" query parameter (default "csv").
func (h *Handler) exportCredentials(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	format := r.URL.Query().Get("format")
	if format == "" {
		format = "csv"
	}

	data, err := h.services.TransferService.ExportCredentials(ctx, userID, format)
	if err != nil {
		switch {
		case errors.Is(err, importer.ErrUnsupportedFormat):
			log.Err(err).Str("format", format).Msg("unsupported export format")
			http.Error(w, "unsupported export format", http.StatusBadRequest)
			return
		default:
			log.Err(err).Msg("export failed")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	contentType, ok := exportContentTypes[format]
	if !ok {
		contentType = "application/octet-stream"
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "passwords."+format))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
