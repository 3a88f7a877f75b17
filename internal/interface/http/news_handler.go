package handlers

import (
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/dilvertex/pipesite-backend/internal/application"
	"github.com/dilvertex/pipesite-backend/internal/domain/entity"
	"github.com/dilvertex/pipesite-backend/internal/storage"
	"github.com/dilvertex/pipesite-backend/pkg/response"
	"github.com/dilvertex/pipesite-backend/pkg/validation"
)

type NewsHandler struct {
	Sync    *application.FileSyncer[entity.News, *entity.News]
	Indexer *application.NewsIndexer
	Logger  *logrus.Logger
}

func NewNewsHandler(sync *application.FileSyncer[entity.News, *entity.News], indexer *application.NewsIndexer, logger *logrus.Logger) *NewsHandler {
	return &NewsHandler{Sync: sync, Indexer: indexer, Logger: logger}
}

type createNewsRequest struct {
	Title            string `form:"title" binding:"required"`
	Status           string `form:"status" binding:"omitempty,oneof='Latest News' 'Feature News'"`
	Date             string `form:"date" binding:"omitempty,datetime=2006-01-02"`
	ShortDescription string `form:"shortDescription"`
	LongDescription  string `form:"longDescription"`
}

func newsView(n entity.News) gin.H {
	v := gin.H{
		"id":               n.ID,
		"title":            n.Title,
		"status":           n.Status,
		"date":             n.Date,
		"shortDescription": n.ShortDescription,
		"longDescription":  n.LongDescription,
	}
	if !n.Thumbnail.IsZero() {
		v["thumbnailUrl"] = n.Thumbnail.URL
	}
	urls := make([]string, 0, len(n.Photos))
	for _, p := range n.Photos {
		if !p.IsZero() {
			urls = append(urls, p.URL)
		}
	}
	v["photoUrls"] = urls
	return v
}

// openUploads turns the multipart "photos" headers into Uploads. The caller
// must invoke the returned cleanup once the uploads have been consumed.
func openUploads(headers []*multipart.FileHeader) ([]storage.Upload, func(), error) {
	ups := make([]storage.Upload, 0, len(headers))
	files := make([]multipart.File, 0, len(headers))
	cleanup := func() {
		for _, f := range files {
			_ = f.Close()
		}
	}
	for _, fh := range headers {
		f, err := fh.Open()
		if err != nil {
			cleanup()
			return nil, nil, err
		}
		files = append(files, f)
		ups = append(ups, storage.Upload{
			Reader:      f,
			Filename:    fh.Filename,
			ContentType: fh.Header.Get("Content-Type"),
			Size:        fh.Size,
		})
	}
	return ups, cleanup, nil
}

// Create handles POST /createNews (multipart). The thumbnail is mandatory;
// gallery photos are optional.
func (h *NewsHandler) Create(c *gin.Context) {
	var req createNewsRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	thumb, closer, err := uploadFromForm(c, "thumbnail")
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid file upload", nil)
		return
	}
	if closer != nil {
		defer func() { _ = closer.Close() }()
	}
	if thumb == nil {
		response.Error[any](c, http.StatusBadRequest, "thumbnail is required", nil)
		return
	}

	var photoHeaders []*multipart.FileHeader
	if form, ferr := c.MultipartForm(); ferr == nil && form != nil {
		photoHeaders = form.File["photos"]
	}
	ups, cleanup, err := openUploads(photoHeaders)
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid file upload", nil)
		return
	}
	defer cleanup()

	photoRefs, err := h.Sync.PutAll(c.Request.Context(), ups)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}

	status := req.Status
	if status == "" {
		status = entity.NewsStatusLatest
	}
	n := entity.News{
		Title:            req.Title,
		Status:           status,
		Date:             req.Date,
		ShortDescription: req.ShortDescription,
		LongDescription:  req.LongDescription,
		Photos:           photoRefs,
	}
	if err := h.Sync.Create(c.Request.Context(), &n, thumb); err != nil {
		writeError(c, h.Logger, err)
		return
	}
	_ = h.Indexer.IndexNews(c.Request.Context(), &n)
	response.Success(c, http.StatusOK, newsView(n), "news created", nil)
}

// List handles GET /admin/news.
func (h *NewsHandler) List(c *gin.Context) {
	ns, err := h.Sync.All(c.Request.Context())
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	out := make([]gin.H, 0, len(ns))
	for _, n := range ns {
		out = append(out, newsView(n))
	}
	response.Success(c, http.StatusOK, out, "news", nil)
}

// Get handles GET /admin/news/getNews/:id.
func (h *NewsHandler) Get(c *gin.Context) {
	n, err := h.Sync.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, newsView(*n), "news", nil)
}

// Update handles PUT /updateNews/:id. Only provided fields overwrite; a new
// thumbnail replaces (and deletes) the old one, an absent thumbnail part
// leaves it untouched. Gallery photos are fixed at creation.
func (h *NewsHandler) Update(c *gin.Context) {
	up, closer, err := uploadFromForm(c, "thumbnail")
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid file upload", nil)
		return
	}
	if closer != nil {
		defer func() { _ = closer.Close() }()
	}

	patch := patchFromForm(c, "title", "status", "date", "shortDescription", "longDescription")
	n, err := h.Sync.Update(c.Request.Context(), c.Param("id"), patch, up)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	_ = h.Indexer.IndexNews(c.Request.Context(), n)
	response.Success(c, http.StatusOK, newsView(*n), "news updated", nil)
}

// Delete handles DELETE /admin/news/deleteNews/:id. Thumbnail and every
// gallery photo are removed with the record.
func (h *NewsHandler) Delete(c *gin.Context) {
	n, err := h.Sync.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	_ = h.Indexer.DeleteNews(c.Request.Context(), n.ID)
	response.Success(c, http.StatusOK, newsView(*n), "news deleted", nil)
}

// Search handles GET /searchNews?q=. Results come from the Elasticsearch
// mirror, not the database.
func (h *NewsHandler) Search(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		response.Error[any](c, http.StatusBadRequest, "q is required", nil)
		return
	}
	hits, err := h.Indexer.Search(c.Request.Context(), q, 10)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, hits, "search results", nil)
}
