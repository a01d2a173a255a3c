package scheduler

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/minsu-kang/hanwha-trends/internal/newsroom"
	"github.com/minsu-kang/hanwha-trends/internal/rss"
	"github.com/minsu-kang/hanwha-trends/internal/snapshot"
)

// NewsSource loads articles from the search feed.
type NewsSource interface {
	Search(ctx context.Context, query, lang string) ([]rss.Article, error)
}

// NewsroomSource collects normalized newsroom items across pages.
type NewsroomSource interface {
	CollectPress(ctx context.Context, maxPages int) ([]newsroom.PressItem, error)
	CollectSocial(ctx context.Context, maxPages int) ([]newsroom.SocialItem, error)
}

// Sources bundles everything a refresh round needs.
type Sources struct {
	News     NewsSource
	Newsroom NewsroomSource

	Query       string
	Lang        string
	PressPages  int
	SocialPages int
}

type Scheduler struct {
	cron  *cron.Cron
	src   Sources
	store *snapshot.Store
}

func New(spec string, src Sources, store *snapshot.Store) (*Scheduler, error) {
	c := cron.New()

	s := &Scheduler{
		cron:  c,
		src:   src,
		store: store,
	}

	if _, err := c.AddFunc(spec, s.runOnce); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Scheduler) Start() {
	s.cron.Start()
	// Run the first round shortly after startup so the dashboard is not
	// empty until the first cron tick.
	const startupDelay = 5 * time.Second
	time.AfterFunc(startupDelay, func() {
		go s.runOnce()
	})
}

func (s *Scheduler) Stop() {
	s.cron.Stop()
}

// Cron exposes the underlying cron for extra jobs.
func (s *Scheduler) Cron() *cron.Cron {
	return s.cron
}

// RunOnce triggers a refresh round outside the cron schedule.
func (s *Scheduler) RunOnce() {
	s.runOnce()
}

func (s *Scheduler) runOnce() {
	log.Println("start refresh round...")
	start := time.Now()
	ctx := context.Background()

	var (
		wg       sync.WaitGroup
		articles []rss.Article
		press    []newsroom.PressItem
		social   []newsroom.SocialItem
	)

	wg.Add(1)
	go func() {
		defer wg.Done()
		items, err := s.src.News.Search(ctx, s.src.Query, s.src.Lang)
		if err != nil {
			log.Printf("refresh: search feed error: %v", err)
			return
		}
		articles = items
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		items, err := s.src.Newsroom.CollectPress(ctx, s.src.PressPages)
		if err != nil {
			log.Printf("refresh: press collect error: %v", err)
		}
		press = items // keep whatever pages made it before the error
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		items, err := s.src.Newsroom.CollectSocial(ctx, s.src.SocialPages)
		if err != nil {
			log.Printf("refresh: social collect error: %v", err)
		}
		social = items
	}()

	wg.Wait()

	s.store.Replace(snapshot.Snapshot{
		Articles:    articles,
		Press:       press,
		Social:      social,
		RefreshedAt: time.Now(),
	})

	log.Printf("refresh round done in %s: articles=%d press=%d social=%d",
		time.Since(start).Round(time.Millisecond), len(articles), len(press), len(social))
}
