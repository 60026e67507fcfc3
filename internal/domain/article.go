package domain

// ArticleRecord is one row of the output snapshot. The JSON keys are a fixed
// contract consumed downstream and must not change with the fetch year.
type ArticleRecord struct {
	SourceTitle string  `json:"hebrew_article"`
	StartDate   *string `json:"start_date"`
	EndDate     *string `json:"end_date"`
	TargetTitle string  `json:"english_article"`
	PageViews   int64   `json:"english_pageviews_2025"`
}

// EntityInfo carries what a Wikidata entity contributes to a record: the
// English sitelink title and the resolved start/end dates. Transient, consumed
// by the pipeline right after the fetch.
type EntityInfo struct {
	TargetTitle string
	Start       *Date
	End         *Date
}
