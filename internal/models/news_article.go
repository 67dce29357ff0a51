package models

// NewsArticle is a single headline returned by /api/news.
type NewsArticle struct {
	Title       string `json:"title"`
	URL         string `json:"url"`
	URLToImage  string `json:"urlToImage"`
	PublishedAt string `json:"publishedAt"`
}
