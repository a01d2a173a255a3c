package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/minsu-kang/hanwha-trends/internal/api"
	"github.com/minsu-kang/hanwha-trends/internal/config"
	"github.com/minsu-kang/hanwha-trends/internal/newsroom"
	"github.com/minsu-kang/hanwha-trends/internal/rss"
	"github.com/minsu-kang/hanwha-trends/internal/scheduler"
	"github.com/minsu-kang/hanwha-trends/internal/snapshot"
)

func main() {
	cfg := config.Load()

	store := snapshot.NewStore()

	src := scheduler.Sources{
		News:        rss.NewClient(cfg.HTTPTimeout),
		Newsroom:    newsroom.NewClient(cfg.NewsroomBaseURL, cfg.HTTPTimeout),
		Query:       cfg.SearchQuery,
		Lang:        cfg.SearchLang,
		PressPages:  cfg.PressPages,
		SocialPages: cfg.SocialPages,
	}

	s, err := scheduler.New(cfg.CronSpec, src, store)
	if err != nil {
		log.Fatalf("init scheduler failed: %v", err)
	}
	s.Start()

	r := gin.Default()
	apiServer := api.NewServer(store, s.RunOnce)
	apiServer.RegisterRoutes(r)

	addr := ":" + cfg.AppPort
	log.Printf("starting dashboard server at %s ...", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("server exit: %v", err)
	}
}
