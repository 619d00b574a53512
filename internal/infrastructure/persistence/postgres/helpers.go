package postgres

import (
	"strings"
	"time"
)

func fromUnix(ts int64) time.Time {
	return time.Unix(ts, 0).UTC()
}

func fromUnixPtr(ts *int64) *time.Time {
	if ts == nil {
		return nil
	}
	t := fromUnix(*ts)
	return &t
}

// likePattern escapa curingas e envolve o termo em %...%
func likePattern(term string) string {
	replacer := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + replacer.Replace(strings.TrimSpace(term)) + "%"
}
