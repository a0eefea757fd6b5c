package album

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"mediacatalog/internal/auth"
)

func TestWriteErrorStatusMapping(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := &Handler{}

	cases := []struct {
		err  error
		want int
	}{
		{auth.ErrAdminOnly, http.StatusUnauthorized},
		{ErrAlbumNotFound, http.StatusNotFound},
		{ErrDuplicateAlbum, http.StatusConflict},
		{ErrCoverRequired, http.StatusBadRequest},
		{ErrImagesRequired, http.StatusBadRequest},
		{ErrNoImageRemoved, http.StatusBadRequest},
		{ErrFilesLost, http.StatusInternalServerError},
		// the service wraps repository errors; the mapping must see through
		{fmt.Errorf("create album: %w", ErrDuplicateAlbum), http.StatusConflict},
		{fmt.Errorf("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		h.writeError(c, tc.err)
		assert.Equal(t, tc.want, w.Code, "error %v", tc.err)
	}
}
