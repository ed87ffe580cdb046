package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/inkpress/article-service/internal/api/metrics"
	"github.com/inkpress/article-service/internal/core/domain"
	"github.com/inkpress/article-service/internal/core/ports"
)

// ArticleHandler handles HTTP requests for article CRUD.
type ArticleHandler struct {
	service ports.ArticleService
}

func NewArticleHandler(service ports.ArticleService) *ArticleHandler {
	return &ArticleHandler{service: service}
}

// Create handles POST /articles.
//
// @Summary      Create an article
// @Tags         articles
// @Accept       json
// @Produce      json
// @Security     TokenAuth
// @Param        body  body      createArticleRequest  true  "Article fields"
// @Success      201   {object}  domain.Article
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /articles [post]
func (h *ArticleHandler) Create(c echo.Context) error {
	var req createArticleRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return domain.ErrMissingFields
	}

	authorID, err := callerID(c)
	if err != nil {
		return err
	}

	article, err := h.service.Create(c.Request().Context(), authorID, req.Title, req.Content)
	if err != nil {
		return err
	}

	metrics.ArticleOperationsTotal.WithLabelValues("create").Inc()

	return c.JSON(http.StatusCreated, article)
}

// List handles GET /articles. Every authenticated caller sees all articles.
//
// @Summary      List all articles
// @Tags         articles
// @Produce      json
// @Security     TokenAuth
// @Success      200  {array}   domain.Article
// @Failure      401  {object}  errorResponse
// @Router       /articles [get]
func (h *ArticleHandler) List(c echo.Context) error {
	articles, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, articles)
}

// Get handles GET /articles/:id.
//
// @Summary      Get an article by id
// @Tags         articles
// @Produce      json
// @Security     TokenAuth
// @Param        id   path      int  true  "Article id"
// @Success      200  {object}  domain.Article
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /articles/{id} [get]
func (h *ArticleHandler) Get(c echo.Context) error {
	id, err := articleID(c)
	if err != nil {
		return err
	}

	article, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, article)
}

// Update handles PUT /articles/:id. Only the author may update; empty fields
// are left unchanged.
//
// @Summary      Update an article
// @Tags         articles
// @Accept       json
// @Produce      json
// @Security     TokenAuth
// @Param        id    path      int                   true  "Article id"
// @Param        body  body      updateArticleRequest  true  "Fields to change"
// @Success      200   {object}  domain.Article
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /articles/{id} [put]
func (h *ArticleHandler) Update(c echo.Context) error {
	id, err := articleID(c)
	if err != nil {
		return err
	}

	var req updateArticleRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}

	caller, err := callerID(c)
	if err != nil {
		return err
	}

	article, err := h.service.Update(c.Request().Context(), id, caller, req.Title, req.Content)
	if err != nil {
		return err
	}

	metrics.ArticleOperationsTotal.WithLabelValues("update").Inc()

	return c.JSON(http.StatusOK, article)
}

// Delete handles DELETE /articles/:id. Only the author may delete.
//
// @Summary      Delete an article
// @Tags         articles
// @Security     TokenAuth
// @Param        id  path  int  true  "Article id"
// @Success      204
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /articles/{id} [delete]
func (h *ArticleHandler) Delete(c echo.Context) error {
	id, err := articleID(c)
	if err != nil {
		return err
	}

	caller, err := callerID(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), id, caller); err != nil {
		return err
	}

	metrics.ArticleOperationsTotal.WithLabelValues("delete").Inc()

	return c.NoContent(http.StatusNoContent)
}

// articleID parses the :id path parameter. A non-numeric id behaves like a
// missing article rather than a bad request.
func articleID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, domain.ErrArticleNotFound
	}
	return id, nil
}
