package document

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"

	"github.com/naufalhakim/hr-management/internal/transport"
	"github.com/naufalhakim/hr-management/pkg/logger"
)

// maxUploadMemory bounds the in-memory part of multipart parsing;
// larger files spill to disk.
const maxUploadMemory = 32 << 20

type ServiceAPI interface {
	ListDocuments(ctx context.Context) ([]Descriptor, error)
	UploadDocument(ctx context.Context, filename, contentType string, body io.Reader, size int64, docType, description string) (string, error)
	DownloadDocument(ctx context.Context, key string) (*Download, error)
	DeleteDocument(ctx context.Context, key string) error
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(service ServiceAPI) *Handler {
	lg := logger.LoggerWrapper()
	if lg == nil {
		lg = slog.Default()
	}
	return &Handler{
		BaseHandler: transport.NewBaseHandler(lg),
		Service:     service,
	}
}

func (h *Handler) ListDocuments(w http.ResponseWriter, r *http.Request) {
	docs, err := h.Service.ListDocuments(r.Context())
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"documents": docs,
	})
}

func (h *Handler) UploadDocument(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "no file selected")
		return
	}
	defer file.Close()

	docType := r.FormValue("document_type")
	description := r.FormValue("description")
	contentType := header.Header.Get("Content-Type")

	key, err := h.Service.UploadDocument(r.Context(), header.Filename, contentType, file, header.Size, docType, description)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, map[string]string{"key": key})
}

func (h *Handler) DownloadDocument(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	if key == "" {
		h.WriteError(w, http.StatusBadRequest, "missing document key")
		return
	}

	download, err := h.Service.DownloadDocument(r.Context(), key)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	defer download.Object.Body.Close()

	contentType := download.Object.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", download.Filename))
	if download.Object.Size > 0 {
		w.Header().Set("Content-Length", strconv.FormatInt(download.Object.Size, 10))
	}

	if _, err := io.Copy(w, download.Object.Body); err != nil {
		h.Logger.Error("failed to stream document", "error", err, "key", key)
	}
}

func (h *Handler) DeleteDocument(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	if key == "" {
		h.WriteError(w, http.StatusBadRequest, "missing document key")
		return
	}

	if err := h.Service.DeleteDocument(r.Context(), key); err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
