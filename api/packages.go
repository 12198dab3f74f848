package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/zvrva/tourbooking/internal/domain"
	"github.com/zvrva/tourbooking/internal/service/packages"
)

type PackageHandler struct {
	service packages.PackageUseCase
}

func NewPackageHandler(service packages.PackageUseCase) *PackageHandler {
	return &PackageHandler{service: service}
}

func (h *PackageHandler) Register(router *gin.RouterGroup) {
	router.GET("/", h.list)
	router.GET("/:id", h.get)
}

type packageResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Location    string `json:"location"`
	Description string `json:"description"`
	PricePaisa  int64  `json:"price_paisa"`
	Duration    string `json:"duration"`
	ImageURL    string `json:"image_url,omitempty"`
	CreatedAt   string `json:"created_at"`
}

func toPackageResponse(p domain.Package) packageResponse {
	return packageResponse{
		ID:          p.ID,
		Title:       p.Title,
		Location:    p.Location,
		Description: p.Description,
		PricePaisa:  p.PricePaisa,
		Duration:    p.Duration,
		ImageURL:    p.ImageURL,
		CreatedAt:   p.CreatedAt.Format(time.RFC3339),
	}
}

func (h *PackageHandler) list(c *gin.Context) {
	list, err := h.service.List(c.Request.Context())
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

func (h *PackageHandler) get(c *gin.Context) {
	pkg, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toPackageResponse(*pkg))
}
