package http

import (
	"errors"
	"net/http"

	"github.com/photogear/camera-catalog/internal/service"
	"github.com/photogear/camera-catalog/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrInvalidCredentials:      http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,

	store.ErrUsernameAlreadyExists: http.StatusConflict,
	store.ErrUserNotFound:          http.StatusNotFound,
	store.ErrBrandNotFound:         http.StatusNotFound,
	store.ErrCameraNotFound:        http.StatusNotFound,
	store.ErrLensNotFound:          http.StatusNotFound,

	// an UPDATE with no fields set means the client sent an empty payload
	store.ErrBuildingSQLQuery: http.StatusBadRequest,

	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
	store.ErrScanningRows:       http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
