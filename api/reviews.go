package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/zvrva/tourbooking/internal/service/reviews"
)

type ReviewHandler struct {
	service reviews.ReviewUseCase
}

func NewReviewHandler(service reviews.ReviewUseCase) *ReviewHandler {
	return &ReviewHandler{service: service}
}

func (h *ReviewHandler) RegisterPublic(router *gin.RouterGroup) {
	router.GET("/:id/reviews", h.list)
}

func (h *ReviewHandler) RegisterAuthed(router *gin.RouterGroup) {
	router.POST("/:id/reviews", h.create)
}

type createReviewRequest struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

type reviewResponse struct {
	ID         string `json:"id"`
	Rating     int    `json:"rating"`
	Comment    string `json:"comment"`
	AuthorName string `json:"author_name,omitempty"`
	CreatedAt  string `json:"created_at"`
}

type reviewListResponse struct {
	Reviews       []reviewResponse `json:"reviews"`
	AverageRating float64          `json:"average_rating"`
}

func (h *ReviewHandler) list(c *gin.Context) {
	list, avg, err := h.service.ListForPackage(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	out := reviewListResponse{Reviews: make([]reviewResponse, 0, len(list)), AverageRating: avg}
	for _, r := range list {
		out.Reviews = append(out.Reviews, reviewResponse{
			ID:         r.ID,
			Rating:     r.Rating,
			Comment:    r.Comment,
			AuthorName: r.AuthorName,
			CreatedAt:  r.CreatedAt.Format(time.RFC3339),
		})
	}
	c.JSON(http.StatusOK, out)
}

func (h *ReviewHandler) create(c *gin.Context) {
	var req createReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	review, err := h.service.Submit(c.Request.Context(), reviews.SubmitReviewInput{
		UserID:    currentUserID(c),
		PackageID: c.Param("id"),
		Rating:    req.Rating,
		Comment:   req.Comment,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, reviewResponse{
		ID:        review.ID,
		Rating:    review.Rating,
		Comment:   review.Comment,
		CreatedAt: review.CreatedAt.Format(time.RFC3339),
	})
}
