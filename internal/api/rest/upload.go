package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/feral-file/ff-guarantees/internal/attachment"
	"github.com/feral-file/ff-guarantees/internal/domain"
)

const (
	// MaxRequestBodySize caps the size of a request body, attachments included
	MaxRequestBodySize = 64 << 20

	// multipartMemory is the part of a multipart body kept in memory; the rest spills to temp files
	multipartMemory = 16 << 20

	// dataField carries the JSON document of a multipart request
	dataField = "data"
	// filesField carries the attachments of a multipart request
	filesField = "files"
)

var errTooLarge = errors.New("request body too large")

// bindBody decodes the request into dst and collects the uploaded attachments.
// JSON bodies carry no attachments. Multipart bodies carry the JSON document
// in the "data" field and the attachments in "files".
func bindBody(c *gin.Context, dst any) ([]attachment.Upload, error) {
	if strings.HasPrefix(c.ContentType(), gin.MIMEMultipartPOSTForm) {
		return bindMultipart(c, dst)
	}

	return nil, bindJSON(c, dst)
}

// bindJSON decodes a JSON request body into dst
func bindJSON(c *gin.Context, dst any) error {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, MaxRequestBodySize)
	if err := json.NewDecoder(c.Request.Body).Decode(dst); err != nil {
		return decodeError(err)
	}
	return nil
}

func bindMultipart(c *gin.Context, dst any) ([]attachment.Upload, error) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, MaxRequestBodySize)
	if err := c.Request.ParseMultipartForm(multipartMemory); err != nil {
		return nil, decodeError(err)
	}
	form := c.Request.MultipartForm
	defer func() {
		_ = form.RemoveAll()
	}()

	if values := form.Value[dataField]; len(values) > 0 && strings.TrimSpace(values[0]) != "" {
		if err := json.Unmarshal([]byte(values[0]), dst); err != nil {
			return nil, decodeError(err)
		}
	}

	headers := form.File[filesField]
	uploads := make([]attachment.Upload, 0, len(headers))
	for _, fh := range headers {
		u, err := readUpload(fh)
		if err != nil {
			return nil, err
		}
		uploads = append(uploads, u)
	}
	return uploads, nil
}

// readUpload reads at most one byte past the attachment limit so oversized
// files are reported by validation without buffering them whole
func readUpload(fh *multipart.FileHeader) (attachment.Upload, error) {
	f, err := fh.Open()
	if err != nil {
		return attachment.Upload{}, fmt.Errorf("failed to open upload %q: %w", fh.Filename, err)
	}
	defer f.Close()

	content, err := io.ReadAll(io.LimitReader(f, domain.MaxAttachmentSize+1))
	if err != nil {
		return attachment.Upload{}, fmt.Errorf("failed to read upload %q: %w", fh.Filename, err)
	}

	return attachment.Upload{
		FileName:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Content:     content,
	}, nil
}

func decodeError(err error) error {
	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) || errors.Is(err, multipart.ErrMessageTooLarge) {
		return errTooLarge
	}
	if errors.Is(err, io.EOF) {
		return domain.NewValidationError("body", "request body is empty")
	}
	return domain.NewValidationError("body", "malformed request: "+err.Error())
}
