// File: internal/handler/uploads/uploads.go
package uploads

import (
	"context"
	"errors"
	"io"
	"mime"
	"net/http"
	"net/url"
	"path"

	"marketplace-api/internal/assets"
	"marketplace-api/internal/dto"
	"marketplace-api/internal/logger"

	"github.com/labstack/echo/v4"
)

// Opener is implemented by *assets.Store.
type Opener interface {
	Open(ctx context.Context, name string) (io.ReadCloser, error)
}

// ServeHandler 提供已上傳的圖片
// @Summary     取得上傳檔案
// @Tags        uploads
// @Produce     image/jpeg
// @Param       name path string true "檔名"
// @Success     200 {file} file
// @Failure     404 {object} dto.HTTPError
// @Router      /uploads/{name} [get]
func ServeHandler(files Opener) echo.HandlerFunc {
	return func(c echo.Context) error {
		name, err := url.PathUnescape(c.Param("*"))
		if err != nil {
			return c.JSON(http.StatusNotFound, dto.Error("File not found."))
		}

		r, err := files.Open(c.Request().Context(), name)
		if errors.Is(err, assets.ErrNotFound) {
			return c.JSON(http.StatusNotFound, dto.Error("File not found."))
		}
		if err != nil {
			logger.Errorf("open upload %q: %v", name, err)
			return c.JSON(http.StatusInternalServerError, dto.Error("Could not read file."))
		}
		defer r.Close()

		return c.Stream(http.StatusOK, contentType(name), r)
	}
}

func contentType(name string) string {
	ext := path.Ext(name)
	if ext == assets.Ext {
		return assets.ContentType
	}
	if t := mime.TypeByExtension(ext); t != "" {
		return t
	}
	return echo.MIMEOctetStream
}
