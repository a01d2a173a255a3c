package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/minsu-kang/hanwha-trends/internal/exporter"
	"github.com/minsu-kang/hanwha-trends/internal/newsroom"
	"github.com/minsu-kang/hanwha-trends/internal/twitter"
)

// stringList collects repeatable flag values.
type stringList []string

func (s *stringList) String() string {
	return strings.Join(*s, ",")
}

func (s *stringList) Set(v string) error {
	*s = append(*s, v)
	return nil
}

// Command line entry-point for exporting Hanwha newsroom and social updates
// into an Excel workbook.
func main() {
	var (
		pressPages   = flag.Int("press-pages", 1, "number of press-release pages to fetch")
		socialPages  = flag.Int("social-pages", 1, "number of social feed pages to fetch")
		twitterLimit = flag.Int("twitter-limit", twitter.DefaultLimit, "max tweets to collect per account")
		output       = flag.String("output", "hanwha_updates.xlsx", "path for the resulting Excel file")
		noTwitter    = flag.Bool("no-twitter", false, "skip Twitter scraping")
		timeout      = flag.Duration("timeout", 10*time.Second, "HTTP timeout per request")
		baseURL      = flag.String("base-url", newsroom.BaseURL, "newsroom origin")

		twitterUsers stringList
	)
	flag.Var(&twitterUsers, "twitter-user", "Twitter username to scrape without @ (repeatable)")
	flag.Parse()

	for name, v := range map[string]int{
		"press-pages":   *pressPages,
		"social-pages":  *socialPages,
		"twitter-limit": *twitterLimit,
	} {
		if v <= 0 {
			fmt.Fprintf(os.Stderr, "flag -%s must be positive\n", name)
			os.Exit(2)
		}
	}
	if len(twitterUsers) == 0 {
		twitterUsers = stringList{"hanwha_official"}
	}

	ctx := context.Background()
	client := newsroom.NewClient(*baseURL, *timeout)

	log.Printf("fetching press releases (pages=%d)", *pressPages)
	press, err := client.CollectPress(ctx, *pressPages)
	if err != nil {
		log.Fatalf("collect press releases: %v", err)
	}
	log.Printf("collected %d press releases", len(press))

	log.Printf("fetching social feed (pages=%d)", *socialPages)
	social, err := client.CollectSocial(ctx, *socialPages)
	if err != nil {
		log.Fatalf("collect social posts: %v", err)
	}
	log.Printf("collected %d social posts", len(social))

	var tweets []twitter.Tweet
	if *noTwitter {
		log.Println("skipping Twitter scraping")
	} else {
		scraper := twitter.NewScraper()
		for _, username := range twitterUsers {
			log.Printf("fetching tweets for @%s (limit=%d)", username, *twitterLimit)
			accountTweets, err := scraper.UserTweets(username, *twitterLimit)
			if err != nil {
				log.Printf("warn: tweets for @%s: %v", username, err)
				continue
			}
			log.Printf("collected %d tweets for @%s", len(accountTweets), username)
			tweets = append(tweets, accountTweets...)
		}
	}

	if err := exporter.WriteWorkbook(press, social, tweets, *output); err != nil {
		log.Fatalf("write workbook: %v", err)
	}
	log.Printf("Excel written to %s", *output)
}
