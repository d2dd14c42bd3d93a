package handlers

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/studio-rental/internal/domain/booking"
	"github.com/BruksfildServices01/studio-rental/internal/httperr"
	"github.com/BruksfildServices01/studio-rental/internal/imaging"
	"github.com/BruksfildServices01/studio-rental/internal/middleware"
)

func actorFrom(c *gin.Context) booking.Actor {
	return middleware.ActorFrom(c)
}

// paramID lê :id; em caso de erro já respondeu 400.
func paramID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		httperr.BadRequest(c, "invalid_id", "Invalid id.")
		return 0, false
	}
	return uint(id), true
}

func queryInt(c *gin.Context, key string, def int) int {
	v, err := strconv.Atoi(c.Query(key))
	if err != nil {
		return def
	}
	return v
}

// readUpload lê o arquivo do form até MaxUploadSize+1 bytes, o suficiente
// para imaging.Inspect recusar arquivos grandes sem carregar tudo.
// Campo ausente devolve nil sem erro.
func readUpload(c *gin.Context, field string) ([]byte, error) {
	fh, err := c.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil, nil
		}
		return nil, err
	}

	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return io.ReadAll(io.LimitReader(f, imaging.MaxUploadSize+1))
}
