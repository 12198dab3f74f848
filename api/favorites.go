package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/zvrva/tourbooking/internal/service/favorites"
)

type FavoriteHandler struct {
	service favorites.FavoriteUseCase
}

func NewFavoriteHandler(service favorites.FavoriteUseCase) *FavoriteHandler {
	return &FavoriteHandler{service: service}
}

func (h *FavoriteHandler) RegisterPackages(router *gin.RouterGroup) {
	router.POST("/:id/favorite", h.toggle)
	router.GET("/:id/favorite", h.status)
}

func (h *FavoriteHandler) RegisterFavorites(router *gin.RouterGroup) {
	router.GET("/", h.list)
}

func (h *FavoriteHandler) toggle(c *gin.Context) {
	favorite, err := h.service.Toggle(c.Request.Context(), currentUserID(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"favorite": favorite})
}

func (h *FavoriteHandler) status(c *gin.Context) {
	favorite, err := h.service.IsFavorite(c.Request.Context(), currentUserID(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"favorite": favorite})
}

func (h *FavoriteHandler) list(c *gin.Context) {
	list, err := h.service.ListPackages(c.Request.Context(), currentUserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	out := make([]packageResponse, 0, len(list))
	for _, p := range list {
		out = append(out, toPackageResponse(p))
	}
	c.JSON(http.StatusOK, out)
}
