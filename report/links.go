// Package report implements quality-aware link selection and deterministic text report rendering.
package report

import (
	"net/url"
	"strings"

	"github.com/coursex-bot/coursex/course"
	"github.com/coursex-bot/coursex/preference"
	"golang.org/x/exp/slices"
)

// MainLinkLabel tags the fallback/main video URL of a class.
// A main link never matches a quality preference, even when the preference
// happens to equal its implicit quality.
const MainLinkLabel = "Main Link"

// Link is a single selectable video URL with its quality label.
type Link struct {
	URL     string
	Quality string
	// Preferred is set when the quality label matches the user's preference.
	Preferred bool
}

// SelectLinks extracts the orderable video links of a class.
//
// The main link, when valid, is emitted first and never preferred. Recordings
// follow in their original order; entries with a missing or non-http(s) URL
// are dropped. When a concrete preference is active the list is stably
// re-sorted so preferred links come first, ties broken by ascending quality
// label. The sentinel "all" preserves emission order untouched.
func SelectLinks(entry *course.ClassEntry, pref string) []Link {
	var links []Link

	if mainLink, ok := entry.ClassLink.Get(); ok && isHTTPURL(mainLink) {
		links = append(links, Link{URL: mainLink, Quality: MainLinkLabel})
	}

	for _, recording := range entry.Recordings {
		if !isHTTPURL(recording.URL) {
			continue
		}
		links = append(links, Link{
			URL:       recording.URL,
			Quality:   recording.Quality,
			Preferred: pref != preference.All && strings.EqualFold(recording.Quality, pref),
		})
	}

	if pref != preference.All {
		slices.SortStableFunc(links, func(a, b Link) int {
			if a.Preferred != b.Preferred {
				if a.Preferred {
					return -1
				}
				return 1
			}
			return strings.Compare(a.Quality, b.Quality)
		})
	}

	return links
}

// isHTTPURL reports whether raw parses as an absolute http(s) URL.
func isHTTPURL(raw string) bool {
	if raw == "" {
		return false
	}
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return u.Scheme == "http" || u.Scheme == "https"
}
