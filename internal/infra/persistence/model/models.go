package model

// All returns the GORM models backing the postgres persistence driver.
func All() []any {
	return []any{
		&GmailConnectionModel{},
		&PodcastModel{},
		&PodcastJobModel{},
	}
}
