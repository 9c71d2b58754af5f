package server

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(&ErrUnknownSource{Mode: "x"}))
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(&ErrValidation{Field: "id"}))
	assert.Equal(t, http.StatusNotFound, HTTPStatus(&ErrProfileNotFound{Source: "github", ID: "x"}))
	assert.Equal(t, http.StatusServiceUnavailable, HTTPStatus(&ErrAnalysisUnavailable{}))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(errors.New("anything else")))
}

func TestErrorMessages(t *testing.T) {
	assert.Contains(t, (&ErrUnknownSource{Mode: "darkweb"}).Error(), "darkweb")
	assert.Contains(t, (&ErrProfileNotFound{Source: "github", ID: "alice"}).Error(), "alice")
	assert.Contains(t, (&ErrValidation{Field: "id", Message: "required"}).Error(), "id")
}
