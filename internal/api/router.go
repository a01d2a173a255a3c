package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/minsu-kang/hanwha-trends/internal/keywords"
	"github.com/minsu-kang/hanwha-trends/internal/snapshot"
)

const (
	defaultTopKeywords = 20
	maxTopKeywords     = 100
)

type Server struct {
	store   *snapshot.Store
	refresh func()
}

// NewServer serves the current snapshot. refresh is invoked (async) by the
// manual refresh endpoint; it may be nil.
func NewServer(store *snapshot.Store, refresh func()) *Server {
	return &Server{store: store, refresh: refresh}
}

func (s *Server) RegisterRoutes(r *gin.Engine) {
	r.GET("/health", s.health)

	v1 := r.Group("/api/v1")
	{
		v1.GET("/articles", s.listArticles)
		v1.GET("/press", s.listPress)
		v1.GET("/social", s.listSocial)
		v1.GET("/keywords", s.listKeywords)
		v1.POST("/refresh", s.triggerRefresh)
	}
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) listArticles(c *gin.Context) {
	limit := parseLimit(c.DefaultQuery("limit", "50"), 50)

	snap := s.store.Current()
	items := snap.Articles
	if len(items) > limit {
		items = items[:limit]
	}

	c.JSON(http.StatusOK, gin.H{
		"code":        "ok",
		"message":     "success",
		"refreshedAt": snap.RefreshedAt,
		"data":        items,
	})
}

func (s *Server) listPress(c *gin.Context) {
	limit := parseLimit(c.DefaultQuery("limit", "50"), 50)

	snap := s.store.Current()
	items := snap.Press
	if len(items) > limit {
		items = items[:limit]
	}

	c.JSON(http.StatusOK, gin.H{
		"code":        "ok",
		"message":     "success",
		"refreshedAt": snap.RefreshedAt,
		"data":        items,
	})
}

func (s *Server) listSocial(c *gin.Context) {
	limit := parseLimit(c.DefaultQuery("limit", "50"), 50)

	snap := s.store.Current()
	items := snap.Social
	if len(items) > limit {
		items = items[:limit]
	}

	c.JSON(http.StatusOK, gin.H{
		"code":        "ok",
		"message":     "success",
		"refreshedAt": snap.RefreshedAt,
		"data":        items,
	})
}

// listKeywords recomputes the ranked table from the current articles on
// every call; aggregation is cheap and pure, so there is nothing to cache.
func (s *Server) listKeywords(c *gin.Context) {
	top := parseLimit(c.DefaultQuery("top", strconv.Itoa(defaultTopKeywords)), defaultTopKeywords)
	if top > maxTopKeywords {
		top = maxTopKeywords
	}

	snap := s.store.Current()
	docs := make([]keywords.Document, 0, len(snap.Articles))
	for _, a := range snap.Articles {
		docs = append(docs, keywords.Document{Title: a.Title, Summary: a.Summary})
	}

	c.JSON(http.StatusOK, gin.H{
		"code":        "ok",
		"message":     "success",
		"refreshedAt": snap.RefreshedAt,
		"data":        keywords.Aggregate(docs, top),
	})
}

func (s *Server) triggerRefresh(c *gin.Context) {
	if s.refresh == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"code":    "unavailable",
			"message": "refresh not configured",
		})
		return
	}
	go s.refresh()
	c.JSON(http.StatusAccepted, gin.H{
		"code":    "ok",
		"message": "refresh started",
	})
}

func parseLimit(raw string, def int) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return def
	}
	return n
}
