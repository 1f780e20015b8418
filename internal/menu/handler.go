package menu

import (
	"bytes"
	"errors"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"github.com/vmihailenco/msgpack/v5"

	"menuparser/internal/metrics"
	"menuparser/internal/middleware"
)

const MIMEMsgPack = "application/x-msgpack"

type Handler struct {
	service        *Service
	maxUploadBytes int64
}

func NewHandler(service *Service, maxUploadBytes int64) *Handler {
	return &Handler{service: service, maxUploadBytes: maxUploadBytes}
}

// --------------------------------------------------
// POST /api/process: menu photo in, items out
// --------------------------------------------------
func (h *Handler) Process(c *gin.Context) {
	logger := middleware.LoggerFrom(c)

	if h.maxUploadBytes > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUploadBytes)
	}

	header, err := c.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			metrics.ExtractionsTotal.WithLabelValues("too_large").Inc()
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "File too large"})
			return
		}

		metrics.ExtractionsTotal.WithLabelValues("no_file").Inc()
		logger.WithError(err).Debug("no file in upload")
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file uploaded"})
		return
	}

	data, err := readUpload(header)
	if err != nil {
		metrics.ExtractionsTotal.WithLabelValues("read_error").Inc()
		logger.WithError(err).Error("Error reading uploaded file")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error processing file"})
		return
	}

	upload := Upload{
		Filename: header.Filename,
		MIMEType: header.Header.Get("Content-Type"),
		Data:     data,
	}

	items, err := h.service.Extract(c.Request.Context(), upload)
	if err != nil {
		h.fail(c, logger, upload, err)
		return
	}

	metrics.ExtractionsTotal.WithLabelValues("ok").Inc()
	metrics.ItemsExtracted.Observe(float64(len(items)))

	logger.WithFields(log.Fields{
		"filename": upload.Filename,
		"items":    len(items),
	}).Info("menu processed")

	if c.NegotiateFormat(gin.MIMEJSON, MIMEMsgPack) == MIMEMsgPack {
		body, err := encodeMsgpack(items)
		if err != nil {
			logger.WithError(err).Error("Error encoding msgpack response")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error processing file"})
			return
		}
		c.Data(http.StatusOK, MIMEMsgPack, body)
		return
	}

	c.JSON(http.StatusOK, items)
}

func (h *Handler) fail(c *gin.Context, logger *log.Entry, upload Upload, err error) {
	outcome := outcomeOf(err)
	metrics.ExtractionsTotal.WithLabelValues(outcome).Inc()

	entry := logger.WithError(err).WithFields(log.Fields{
		"filename": upload.Filename,
		"mime":     upload.MIMEType,
		"bytes":    len(upload.Data),
		"outcome":  outcome,
	})

	switch {
	case errors.Is(err, ErrEmptyFile):
		entry.Warn("rejected upload")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Uploaded file is empty"})
	case errors.Is(err, ErrUnsupportedType):
		entry.Warn("rejected upload")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unsupported file type"})
	default:
		entry.Error("Error processing file")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error processing file"})
	}
}

func readUpload(header *multipart.FileHeader) ([]byte, error) {
	f, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}

func outcomeOf(err error) string {
	switch {
	case errors.Is(err, ErrEmptyFile):
		return "empty_file"
	case errors.Is(err, ErrUnsupportedType):
		return "unsupported_type"
	case errors.Is(err, ErrContractViolation):
		return "contract_violation"
	case errors.Is(err, ErrUpstream):
		return "upstream_error"
	}
	return "internal_error"
}

func encodeMsgpack(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	enc.SetCustomStructTag("json")
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
