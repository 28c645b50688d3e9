package utils

import (
	"crypto/rand"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
)

type IUtils interface {
	NewULIDFromTimestamp(t time.Time) (string, error)
	Slugify(title string) string
	EstimateReadingTime(body string) string
}

type utils struct {
	wordsPerMinute int
}

func New() IUtils {
	return &utils{
		wordsPerMinute: 200,
	}
}

func (u *utils) NewULIDFromTimestamp(t time.Time) (string, error) {
	ms := ulid.Timestamp(t)
	entropy := ulid.Monotonic(rand.Reader, 0)

	id, err := ulid.New(ms, entropy)
	if err != nil {
		return "", err
	}

	return id.String(), nil
}

var nonSlugChars = regexp.MustCompile(`[^a-z0-9]+`)

func (u *utils) Slugify(title string) string {
	slug := strings.ToLower(strings.TrimSpace(title))
	slug = nonSlugChars.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}

func (u *utils) EstimateReadingTime(body string) string {
	words := len(strings.Fields(body))
	minutes := words / u.wordsPerMinute
	if minutes < 1 {
		minutes = 1
	}
	return fmt.Sprintf("%d min read", minutes)
}
